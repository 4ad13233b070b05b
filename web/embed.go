// Package web embeds the static dashboard page. The page is a thin shell:
// it renders tabs and a date picker, and fetches figure JSON from the API
// for plotly.js to draw.
package web

import "embed"

//go:embed static
var static embed.FS

// Index returns the dashboard page.
func Index() ([]byte, error) {
	return static.ReadFile("static/index.html")
}
