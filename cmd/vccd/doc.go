// Package main hosts the vccd CLI entrypoint and command graph.
//
// The Cobra-based command tree compiles caption sources, prints the directory
// a compile would produce, manages the build history and scaffolds
// configuration. Configuration and logger setup live in commandContext so
// subcommands only deal with their own flags and output.
package main
