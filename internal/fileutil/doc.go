// Package fileutil writes compiled outputs safely.
//
// WriteFileAtomic serializes writers of the same path with an advisory
// flock on a sibling ".lock" file, writes to a temporary file in the target
// directory, syncs it, and renames it into place so readers never observe a
// partially written file.
package fileutil
