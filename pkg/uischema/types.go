package uischema

import "github.com/goliatone/go-empform/pkg/model"

// InputKind mirrors the HTML input type a field is rendered with.
type InputKind string

const (
	InputText  InputKind = "text"
	InputEmail InputKind = "email"
	InputDate  InputKind = "date"
)

// Layout carries the presentational metadata of the registration form.
type Layout struct {
	Title          string
	Subtitle       string
	SubmitLabel    string
	SuccessMessage string
	Fields         []FieldLayout
}

// FieldLayout describes how a single field is labelled and entered.
type FieldLayout struct {
	Field       model.Field
	Label       string
	Placeholder string
	Help        string
	Input       InputKind
	MaxLength   int
}

// Field returns the layout for field.
func (l Layout) Field(field model.Field) (FieldLayout, bool) {
	for _, fl := range l.Fields {
		if fl.Field == field {
			return fl, true
		}
	}
	return FieldLayout{}, false
}

// DisplayLabel returns the configured label, falling back to the field name.
func (f FieldLayout) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Field.String()
}

type document struct {
	Title          string                   `yaml:"title"`
	Subtitle       string                   `yaml:"subtitle"`
	SubmitLabel    string                   `yaml:"submitLabel"`
	SuccessMessage string                   `yaml:"successMessage"`
	Fields         map[string]fieldDocument `yaml:"fields"`
}

type fieldDocument struct {
	Label       string `yaml:"label"`
	Placeholder string `yaml:"placeholder"`
	Help        string `yaml:"help"`
	Input       string `yaml:"input"`
	MaxLength   int    `yaml:"maxLength"`
}
