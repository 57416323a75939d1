// Package templates embeds the HTML pages so the binary and the tests do not
// depend on the working directory.
package templates

import "embed"

//go:embed layouts/*.html pages/*.html
var Files embed.FS
