package render

import (
	"context"
	"log/slog"

	apperrors "github.com/allisson/caseflow/internal/errors"
)

// coverLetterRenderer implements Renderer with an explicit bounded retry loop.
// Retries are immediate, with no backoff: rendering failures are typically
// connection resets rather than overload.
type coverLetterRenderer struct {
	client      TemplateClient
	maxAttempts int
	logger      *slog.Logger
}

// NewCoverLetterRenderer creates a Renderer that retries each render request
// up to maxAttempts times. Values below 1 are treated as 1.
func NewCoverLetterRenderer(client TemplateClient, maxAttempts int, logger *slog.Logger) Renderer {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &coverLetterRenderer{
		client:      client,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

// Render renders the template, retrying the identical request on any failure
// until the attempt count is exhausted.
func (r *coverLetterRenderer) Render(
	ctx context.Context,
	templateName, outputName string,
	fields map[string]any,
) ([]byte, error) {
	req := GenerateRequest{
		TemplateName: templateName,
		OutputName:   outputName,
		Fields:       fields,
	}

	var lastErr error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		content, err := r.client.Generate(ctx, req)
		if err == nil {
			return content, nil
		}

		lastErr = err
		r.logger.Warn("cover letter render attempt failed",
			slog.String("template", templateName),
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", r.maxAttempts),
			slog.Any("error", err),
		)
	}

	return nil, apperrors.Wrap(ErrRendererUnavailable, lastErr.Error())
}
