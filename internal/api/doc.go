// Package api holds the HTTP handlers for the portfolio: the JSON endpoints
// under /api and the server-rendered pages. Handlers translate requests into
// service and content calls and map errors to status codes and safe
// messages; routing itself lives in cmd/server.
package api
