package ports

import (
	"context"

	"sheetgen/domain/codegen"
)

// RenderInput is everything a template may reference
type RenderInput struct {
	Namespace string
	ClassName string
	Fields    []codegen.FieldTriple
}

// Renderer turns render input into generated source text
type Renderer interface {
	Render(ctx context.Context, in RenderInput) ([]byte, error)
}
