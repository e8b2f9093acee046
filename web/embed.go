// Package web holds the embedded static assets served at the root path.
package web

import "embed"

//go:embed static
var StaticFS embed.FS
