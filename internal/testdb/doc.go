// Package testdb provides helpers for tests that need a real PostgreSQL
// database. Tests are skipped when no database URL is configured, except in
// CI where a missing database is a failure.
//
// Each test runs inside a transaction that is rolled back afterwards, so
// tests can share one database and run in parallel.
package testdb
