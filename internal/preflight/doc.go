// Package preflight provides readiness checks for the directories and the
// history database vccd depends on.
//
// The CLI "vccd config validate" command runs RunAll and prints each result.
// Checks for optional features are skipped when the feature is disabled.
package preflight
