package uischema

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-empform/pkg/model"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Default returns the built-in layout.
func Default() Layout {
	layout, err := build(Layout{}, defaultsYAML, "defaults.yaml")
	if err != nil {
		panic(fmt.Sprintf("uischema: embedded defaults: %v", err))
	}
	return layout
}

// LoadFile reads a YAML layout file and merges it onto the defaults. An empty
// path returns the defaults unchanged.
func LoadFile(path string) (Layout, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("uischema: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse merges the YAML overrides in data onto the default layout. name is
// only used in error messages.
func Parse(data []byte, name string) (Layout, error) {
	return build(Default(), data, name)
}

func build(base Layout, data []byte, name string) (Layout, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Layout{}, fmt.Errorf("uischema: parse %s: %w", name, err)
	}

	out := Layout{
		Title:          pick(doc.Title, base.Title),
		Subtitle:       pick(doc.Subtitle, base.Subtitle),
		SubmitLabel:    pick(doc.SubmitLabel, base.SubmitLabel),
		SuccessMessage: pick(doc.SuccessMessage, base.SuccessMessage),
	}

	overrides := make(map[model.Field]fieldDocument, len(doc.Fields))
	for key, fd := range doc.Fields {
		field, ok := model.ParseField(key)
		if !ok {
			return Layout{}, fmt.Errorf("uischema: file %s defines unknown field %q", name, key)
		}
		overrides[field] = fd
	}

	for _, field := range model.Fields() {
		current, _ := base.Field(field)
		current.Field = field
		fd := overrides[field]

		current.Label = pick(fd.Label, current.Label)
		current.Placeholder = pick(fd.Placeholder, current.Placeholder)
		current.Help = pick(fd.Help, current.Help)
		if fd.Input != "" {
			kind, err := parseInputKind(fd.Input)
			if err != nil {
				return Layout{}, fmt.Errorf("uischema: file %s field %s: %w", name, field, err)
			}
			current.Input = kind
		}
		if current.Input == "" {
			current.Input = InputText
		}
		if fd.MaxLength < 0 {
			return Layout{}, fmt.Errorf("uischema: file %s field %s: maxLength must not be negative", name, field)
		}
		if fd.MaxLength > 0 {
			current.MaxLength = fd.MaxLength
		}
		out.Fields = append(out.Fields, current)
	}

	return out, nil
}

func parseInputKind(raw string) (InputKind, error) {
	switch kind := InputKind(strings.ToLower(strings.TrimSpace(raw))); kind {
	case InputText, InputEmail, InputDate:
		return kind, nil
	default:
		return "", fmt.Errorf("unsupported input kind %q", raw)
	}
}

// pick returns the sanitized override when it is non-empty, else fallback.
func pick(override, fallback string) string {
	if cleaned := sanitizeText(override); cleaned != "" {
		return cleaned
	}
	return fallback
}
