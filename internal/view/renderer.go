// Package view wires html/template into Echo's Renderer interface. The
// templates are compiled into the binary with embed so the console ships as
// a single executable. Handlers never receive template errors back from the
// repository layer; rendering is the last step of every request.
package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var files embed.FS

// Renderer implements echo.Renderer over a set of named templates.
type Renderer struct {
	templates *template.Template
}

// New parses every embedded template and returns a ready Renderer. A parse
// failure is a programming error and should abort startup.
func New() (*Renderer, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		// money formatting used by the payment and report views
		"money": formatMoney,
	}).ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

// Render executes the named template with the provided data.
func (r *Renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
