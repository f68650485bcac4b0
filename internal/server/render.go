package server

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// md renders advisory markdown (bold labels, bullet lists) for web clients.
// Replies never contain raw HTML, so unsafe rendering stays off.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// renderHTML converts a markdown reply to an HTML fragment.
func renderHTML(text string) (string, error) {
	var buf strings.Builder
	if err := md.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("rendering reply: %w", err)
	}
	return buf.String(), nil
}
