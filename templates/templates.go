// Package templates embeds the HTML views rendered by the controllers.
package templates

import "embed"

// FS holds the layout and every page template
//
//go:embed *.html
var FS embed.FS
