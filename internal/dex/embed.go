// Package dex provides embedded species and type-chart data and the
// registry that serves it to the battle engine.
package dex

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
