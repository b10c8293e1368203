package views

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Pages parses the page templates served by the storefront.
func Pages() (*template.Template, error) {
	return template.New("pages").ParseFS(templateFS, "templates/*.tmpl")
}
