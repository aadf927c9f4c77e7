// Package web holds the HTML templates served by the site.
package web

import "embed"

// Templates contains every page template under template/.
//
//go:embed template/*.html
var Templates embed.FS
