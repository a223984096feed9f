// Package web embeds the single-page client form served at /.
package web

import "embed"

//go:embed index.html
var Static embed.FS
