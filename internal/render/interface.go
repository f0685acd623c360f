// Package render generates cover letters from named templates, retrying
// transient rendering failures a bounded number of times.
package render

import (
	"context"

	"github.com/allisson/caseflow/internal/errors"
)

// GenerateRequest is one template render call to the external rendering service.
type GenerateRequest struct {
	TemplateName string
	OutputName   string
	Fields       map[string]any
	Archive      bool
}

// TemplateClient performs a single render call against the external template
// rendering service.
type TemplateClient interface {
	Generate(ctx context.Context, req GenerateRequest) ([]byte, error)
}

// Renderer renders a named template with a field map into binary document
// content.
type Renderer interface {
	Render(ctx context.Context, templateName, outputName string, fields map[string]any) ([]byte, error)
}

// ErrRendererUnavailable is raised once the configured attempt count is
// exceeded. It is terminal: callers must not retry it further up the stack.
var ErrRendererUnavailable = errors.Wrap(errors.ErrUnavailable, "could not reach template renderer")
