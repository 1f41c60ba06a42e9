package unitfile

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/conn-castle/systemd-pixi-generator/internal/messages"
)

// TemplateData is the record a unit template is rendered against.
type TemplateData struct {
	Name         string
	Description  string
	After        string
	ExecStartPre string
	ExecStart    string
}

// Renderer is a parsed unit template.
type Renderer struct {
	path string
	tpl  *template.Template
}

// Compile parses t with the sprig function map. Unknown fields fail at render time.
func Compile(t Template) (*Renderer, error) {
	name := filepath.Base(t.Path)
	if t.Path == "" {
		name = "unit"
	}
	tpl, err := template.New(name).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(t.Text)
	if err != nil {
		return nil, fmt.Errorf(messages.TemplateParseFailedFmt, t.Path, err)
	}
	return &Renderer{path: t.Path, tpl: tpl}, nil
}

// Render executes the template against data.
func (r *Renderer) Render(data TemplateData) (string, error) {
	var buf strings.Builder
	if err := r.tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf(messages.TemplateRenderFailedFmt, r.path, data.Name, err)
	}
	return buf.String(), nil
}

// Render compiles t and renders it once.
func Render(t Template, data TemplateData) (string, error) {
	r, err := Compile(t)
	if err != nil {
		return "", err
	}
	return r.Render(data)
}
