// Package sqlite persists fetched issue pages in a SQLite database.
//
// It uses modernc.org/sqlite, a pure Go SQLite implementation, so the
// binary cross-compiles without CGO. Pages are stored as JSON keyed by
// the issue query together with the time they were fetched; expiry is
// decided by the caching decorator, not by the store.
//
// # Schema
//
// The schema is managed through numbered migrations in the migrations/
// directory. Each applied version is recorded in schema_migrations.
//
// # Data Location
//
// By default the database is stored at ~/.issueblog/cache.db.
//
// # Thread Safety
//
// All operations are safe for concurrent use; SQLite runs in WAL mode
// with a busy timeout so CLI invocations can share the file.
package sqlite
