// Package web embeds the single-page frontend served by the API process.
package web

import "embed"

//go:embed static
var Assets embed.FS
