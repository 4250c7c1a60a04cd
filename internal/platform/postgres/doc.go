// Package postgres implements the store interfaces on PostgreSQL through
// database/sql and the pgx stdlib driver. It also owns the embedded goose
// migrations for the contact archive schema.
package postgres
