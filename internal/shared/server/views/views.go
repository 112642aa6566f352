// Package views holds the HTML templates rendered by the portfolio routes.
package views

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// NavItem is one entry of the site navigation.
type NavItem struct {
	Title string
	Path  string
}

// Load parses every embedded template. nav is exposed to templates as the "nav" func.
func Load(nav []NavItem) (*template.Template, error) {
	items := append([]NavItem(nil), nav...)
	funcs := template.FuncMap{
		"nav": func() []NavItem { return items },
	}
	return template.New("views").Funcs(funcs).ParseFS(files, "templates/*.html")
}
