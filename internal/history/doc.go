// Package history records compiled caption builds in a SQLite database.
//
// Each successful compile stores the source and output paths with their
// SHA-256 digests, the resolved language, and the layout summary of the
// written file. The compiler consults the latest record for a source to skip
// work when neither the source nor the previous output has changed.
//
// The schema is embedded and versioned through a schema_version table; a
// database written by a different schema version is rejected with
// ErrSchemaMismatch and must be cleared.
package history
