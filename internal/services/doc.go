// Package services defines the error markers shared by the compiler and the
// CLI.
//
// Wrap tags a failure with a marker (validation, configuration, not found,
// conflict, transient) and stage context. Callers classify the result with
// errors.Is, Hint (for the error_hint log field) and ExitCode.
package services
