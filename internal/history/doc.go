// Package history journals completed publishes in SQLite.
//
// Each successful publish of a mapping appends one row carrying the batch
// run ID, both paths, the resolved original date, whether the target was an
// asset-bearing post, and where its images went. The journal is append-only
// and purely informational: publishing never reads it back.
//
// Schema changes bump schemaVersion; users delete the database to adopt the
// new schema.
package history
