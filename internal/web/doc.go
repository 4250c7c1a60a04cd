// Package web renders the site's HTML pages from embedded html/template
// files and serves the embedded static assets.
package web
