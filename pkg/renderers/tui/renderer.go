package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goliatone/go-empform/pkg/form"
	"github.com/goliatone/go-empform/pkg/model"
	"github.com/goliatone/go-empform/pkg/render"
	"github.com/goliatone/go-empform/pkg/uischema"
)

// Renderer drives a terminal registration session against a form.Store. It
// plays the part of the presentation layer: every answer is fed to the store
// as an input change followed by a blur, and the store decides what is shown.
type Renderer struct {
	driver       PromptDriver
	outputFormat render.OutputFormat
	layout       uischema.Layout
	submit       SubmitHandler
	logger       *slog.Logger
	theme        Theme
}

// New constructs a TUI renderer with defaults (survey driver, JSON output,
// built-in layout).
func New(options ...Option) *Renderer {
	r := &Renderer{
		driver:       newSurveyDriver(),
		outputFormat: render.OutputFormatJSON,
		layout:       uischema.Default(),
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		theme: Theme{
			ErrorPrefix: "✗ ",
		},
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format of the payload Run returns.
func (r *Renderer) ContentType() string {
	return render.ContentType(r.outputFormat)
}

// Run prompts for every field until it validates, asks for confirmation and
// submits. On success the encoded payload is returned and the store is reset.
func (r *Renderer) Run(ctx context.Context, store *form.Store) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if store == nil {
		return nil, errors.New("tui: store is nil")
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	if err := r.header(ctx); err != nil {
		return nil, err
	}

	for _, fl := range r.layout.Fields {
		if err := r.promptField(ctx, store, fl); err != nil {
			return nil, err
		}
	}

	valid := store.IsFormValid()
	r.logger.Debug("registration form completed", "valid", valid)

	submitLabel := r.layout.SubmitLabel
	if submitLabel == "" {
		submitLabel = "Submit"
	}
	ok, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: submitLabel + "?",
		Default: valid,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCancelled
	}

	if !store.ValidateForm() {
		for _, field := range model.Fields() {
			if msg := store.VisibleError(field); msg != "" {
				if err := r.driver.Info(ctx, r.theme.ErrorPrefix+msg); err != nil {
					return nil, errors.Join(ErrInvalid, err)
				}
			}
		}
		return nil, ErrInvalid
	}

	data := store.FormData()
	payload, err := render.Encode(r.outputFormat, data)
	if err != nil {
		return nil, fmt.Errorf("tui: encode payload: %w", err)
	}

	if r.submit != nil {
		if err := r.submit(ctx, data, payload); err != nil {
			return nil, fmt.Errorf("tui: submit: %w", err)
		}
	}
	r.logger.Info("employee registration submitted",
		"employee_id", data.EmployeeID,
		"email", data.Email,
		"joining_date", data.JoiningDate,
		"content_type", r.ContentType(),
	)

	store.ResetForm()

	if msg := r.layout.SuccessMessage; msg != "" {
		if err := r.driver.Info(ctx, r.theme.InfoPrefix+msg); err != nil {
			return nil, err
		}
	}
	return payload, nil
}

func (r *Renderer) header(ctx context.Context) error {
	for _, line := range []string{r.layout.Title, r.layout.Subtitle} {
		if line == "" {
			continue
		}
		if err := r.driver.Info(ctx, r.theme.InfoPrefix+line); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) promptField(ctx context.Context, store *form.Store, fl uischema.FieldLayout) error {
	for {
		response, err := r.driver.Input(ctx, InputConfig{
			Message: fl.DisplayLabel(),
			Default: store.FormData().Get(fl.Field),
			Help:    displayHelp(fl),
		})
		if err != nil {
			return err
		}

		store.HandleInputChange(fl.Field, clampLength(response, fl.MaxLength))
		store.HandleBlur(fl.Field)

		msg := store.VisibleError(fl.Field)
		if msg == "" {
			return nil
		}
		r.logger.Debug("field rejected", "field", fl.Field.String(), "error", msg)
		if err := r.driver.Info(ctx, r.theme.ErrorPrefix+msg); err != nil {
			return err
		}
	}
}

func displayHelp(fl uischema.FieldLayout) string {
	parts := make([]string, 0, 2)
	if fl.Placeholder != "" {
		parts = append(parts, fl.Placeholder)
	}
	if fl.Help != "" {
		parts = append(parts, fl.Help)
	}
	return strings.Join(parts, " ")
}

// clampLength mimics the maxlength attribute of an HTML input.
func clampLength(value string, max int) string {
	if max <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= max {
		return value
	}
	return string(runes[:max])
}
