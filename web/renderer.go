// Package web holds the storefront's HTML templates and the echo renderer
// that executes them.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/Madhav-Gupta-28/noemie-shop-go/utils"
	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = []string{"products", "cart", "checkout", "payment", "confirmation"}

// Page is the data every template receives. Count feeds the cart-count badge.
type Page struct {
	Title string
	Count int
	Data  any
}

// Renderer implements echo.Renderer with one template set per page, each
// sharing layout.html.
type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"money": utils.FormatMoney,
	}

	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		r.templates[name] = t
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return t.ExecuteTemplate(w, "layout.html", data)
}
