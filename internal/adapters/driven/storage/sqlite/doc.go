// Package sqlite provides SQLite-backed implementations of driven port
// interfaces. The schema is managed through embedded migrations applied
// at startup.
package sqlite
