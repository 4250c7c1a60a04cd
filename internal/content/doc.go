// Package content loads the site's JSON content files (projects, academic
// history, experience, site settings, technologies), validates each against
// an embedded JSON Schema, and serves them from an in-memory snapshot that
// can be swapped atomically when the files change.
package content
