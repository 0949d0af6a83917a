// Package compiler turns caption source files into compiled VCCD files.
//
// A Service loads and decodes a source, resolves its language and output
// path, encodes the caption set, writes the result atomically and records
// the build in the history database. Failures are tagged with the services
// error markers so the CLI can map them to hints and exit codes.
package compiler
