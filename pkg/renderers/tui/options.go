package tui

import (
	"context"
	"log/slog"

	"github.com/goliatone/go-empform/pkg/model"
	"github.com/goliatone/go-empform/pkg/render"
	"github.com/goliatone/go-empform/pkg/uischema"
)

// Theme captures optional formatting hints the driver can apply when printing
// messages.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// SubmitHandler performs the submission side effect once the form validated.
// payload is the encoded form data in the renderer's output format.
type SubmitHandler func(ctx context.Context, data model.FormData, payload []byte) error

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the payload serialization format.
func WithOutputFormat(format render.OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithLayout sets the labels and messages shown while prompting.
func WithLayout(layout uischema.Layout) Option {
	return func(r *Renderer) {
		r.layout = layout
	}
}

// WithSubmitHandler registers the submission side effect.
func WithSubmitHandler(fn SubmitHandler) Option {
	return func(r *Renderer) {
		r.submit = fn
	}
}

// WithLogger sets the logger used for submission events.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}
