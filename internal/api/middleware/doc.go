// Package middleware holds HTTP middleware shared by every route.
package middleware
