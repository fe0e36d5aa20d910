package render

import (
	"context"
	_ "embed"
	"os"

	"sheetgen/internal/errors"
	"sheetgen/ports"

	"github.com/flosch/pongo2/v6"
)

// DefaultTemplate is the built-in C# class template. Its context is
// namespace, class_name and fields (each with Name, Type and Remark).
//
//go:embed templates/code.txt
var DefaultTemplate string

func init() {
	// Generated source must come out verbatim, not HTML-escaped.
	pongo2.SetAutoescape(false)
}

// TemplateRenderer renders fields through a pongo2 template
type TemplateRenderer struct {
	name string
	load func() ([]byte, error)
}

// NewRenderer compiles templates from src
func NewRenderer(name, src string) *TemplateRenderer {
	return &TemplateRenderer{
		name: name,
		load: func() ([]byte, error) { return []byte(src), nil },
	}
}

// NewDefaultRenderer renders with DefaultTemplate
func NewDefaultRenderer() *TemplateRenderer {
	return NewRenderer("builtin:code.txt", DefaultTemplate)
}

// NewFileRenderer reads the template at path on every Render, so edits to
// the template apply without restarting and a missing file fails per job.
func NewFileRenderer(path string) *TemplateRenderer {
	return &TemplateRenderer{
		name: path,
		load: func() ([]byte, error) { return os.ReadFile(path) },
	}
}

// Name returns where the template comes from
func (r *TemplateRenderer) Name() string {
	return r.name
}

// Render executes the template; fields are passed through in order.
func (r *TemplateRenderer) Render(ctx context.Context, in ports.RenderInput) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src, err := r.load()
	if err != nil {
		return nil, errors.RenderError("failed to resolve template "+r.name, err)
	}

	tpl, err := pongo2.FromBytes(src)
	if err != nil {
		return nil, errors.RenderError("failed to parse template "+r.name, err)
	}

	out, err := tpl.ExecuteBytes(pongo2.Context{
		"namespace":  in.Namespace,
		"class_name": in.ClassName,
		"fields":     in.Fields,
	})
	if err != nil {
		return nil, errors.RenderError("failed to render template "+r.name, err)
	}
	return out, nil
}
