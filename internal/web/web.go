// Package web carries the embedded dashboard frontend.
package web

import _ "embed"

// Dashboard is the single-page UI served at /. It polls the JSON API
// and renders everything client-side, so the binary ships self-contained.
//
//go:embed dashboard.html
var Dashboard []byte
