package site

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"path"

	"github.com/dustin/go-humanize"
	"github.com/kumobot/botsite/internal/status"
)

const (
	PageIndex    = "index.html"
	PageCommands = "commands.html"
	PageStatus   = "status.html"
	PageNotFound = "404.html"

	layoutFile = "base.html"
	layoutName = "base"
)

// Pages is every page the web server renders.
var Pages = []string{PageIndex, PageCommands, PageStatus, PageNotFound}

var ErrTemplateNotFound = errors.New("template not found")

// PageData is the context every page template executes against.
type PageData struct {
	Request  *http.Request
	Path     string
	Page     string
	SiteName string
	Version  string

	// Status is only set on the status page
	Status *status.Snapshot
}

type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the layout together with each named page.
// Pages are parsed once; a page missing from fsys fails here rather than at request time.
func NewRenderer(fsys fs.FS, pages ...string) (*Renderer, error) {
	funcMap := template.FuncMap{
		"comma": func(v int) string {
			return humanize.Comma(int64(v))
		},
		"active": func(current, page string) string {
			if current == page {
				return "active"
			}
			return ""
		},
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		tpl, err := template.New(name).Funcs(funcMap).ParseFS(fsys,
			path.Join(templatesDir, layoutFile),
			path.Join(templatesDir, name),
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[name] = tpl
	}
	return r, nil
}

// Render executes the named page into w. Output is buffered so that nothing is
// written when execution fails half way.
func (r *Renderer) Render(w io.Writer, name string, data *PageData) error {
	tpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, layoutName, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	_, err := buf.WriteTo(w)
	return err
}
