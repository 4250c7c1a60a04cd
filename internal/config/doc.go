// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional config file. Environment
// variables use the PORTFOLIO_ prefix (PORTFOLIO_SERVER_PORT,
// PORTFOLIO_CONTENT_DIR, ...); the SMTP settings keep their conventional
// unprefixed names (SMTP_HOST, SMTP_PORT, ..., CONTACT_EMAIL_FROM).
package config
