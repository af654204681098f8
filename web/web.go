// Package web embeds the HTML templates served by the API.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
