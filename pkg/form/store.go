package form

import (
	"github.com/goliatone/go-empform/pkg/model"
	"github.com/goliatone/go-empform/pkg/validation"
)

// FieldValidator validates a single field value, returning an error message
// or "".
type FieldValidator interface {
	ValidateField(field model.Field, value string) string
}

// Store tracks form values, per-field errors and per-field touched state for
// the employee registration form. The zero value is ready to use with the
// default validator. A Store has exactly one owner and is not safe for
// concurrent use.
type Store struct {
	validator FieldValidator
	data      model.FormData
	errors    model.FormErrors
	touched   model.TouchedState
}

// Option configures a Store.
type Option func(*Store)

// WithValidator replaces the default wall-clock validator.
func WithValidator(v FieldValidator) Option {
	return func(s *Store) {
		if v != nil {
			s.validator = v
		}
	}
}

// WithInitial seeds the form values. Errors and touched state still start
// empty.
func WithInitial(data model.FormData) Option {
	return func(s *Store) {
		s.data = data
	}
}

// New returns a store with empty values, no errors and nothing touched.
func New(options ...Option) *Store {
	s := &Store{
		validator: validation.New(),
		errors:    make(model.FormErrors),
		touched:   make(model.TouchedState),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// FormData returns the current values.
func (s *Store) FormData() model.FormData {
	if s == nil {
		return model.FormData{}
	}
	return s.data
}

// Errors returns a copy of the current error map.
func (s *Store) Errors() model.FormErrors {
	if s == nil {
		return model.FormErrors{}
	}
	return s.errors.Clone()
}

// Touched returns a copy of the current touched map.
func (s *Store) Touched() model.TouchedState {
	if s == nil {
		return model.TouchedState{}
	}
	return s.touched.Clone()
}

// ValidateField runs the store's validator without touching state.
func (s *Store) ValidateField(field model.Field, value string) string {
	return s.fieldValidator().ValidateField(field, value)
}

// HandleInputChange records a new value for field. Once the field has been
// touched the value is re-validated immediately; before that, errors are left
// alone until the first blur.
func (s *Store) HandleInputChange(field model.Field, value string) {
	s.data.Set(field, value)
	if s.touched[field] {
		s.setError(field, s.fieldValidator().ValidateField(field, value))
	}
}

// HandleBlur marks field as touched and validates its current value.
func (s *Store) HandleBlur(field model.Field) {
	if s.touched == nil {
		s.touched = make(model.TouchedState)
	}
	s.touched[field] = true
	s.setError(field, s.fieldValidator().ValidateField(field, s.data.Get(field)))
}

// ValidateForm validates every field, replacing the error map with the
// failures found and marking all fields touched. It reports whether the form
// is free of errors.
func (s *Store) ValidateForm() bool {
	errs := make(model.FormErrors)
	for _, field := range model.Fields() {
		if msg := s.fieldValidator().ValidateField(field, s.data.Get(field)); msg != "" {
			errs[field] = msg
		}
	}

	touched := make(model.TouchedState, len(model.Fields()))
	for _, field := range model.Fields() {
		touched[field] = true
	}

	s.errors = errs
	s.touched = touched
	return len(errs) == 0
}

// ResetForm restores the initial empty state.
func (s *Store) ResetForm() {
	s.data = model.FormData{}
	s.errors = make(model.FormErrors)
	s.touched = make(model.TouchedState)
}

// IsFormValid re-runs validation on every call and reports whether all
// fields are non-empty and pass. It ignores the error map, so it can be true
// for fields whose errors have not been revealed yet.
func (s *Store) IsFormValid() bool {
	if s == nil {
		return false
	}
	for _, field := range model.Fields() {
		value := s.data.Get(field)
		if value == "" || s.fieldValidator().ValidateField(field, value) != "" {
			return false
		}
	}
	return true
}

// VisibleError returns the error for field if the field has been touched.
func (s *Store) VisibleError(field model.Field) string {
	if s == nil || !s.touched[field] {
		return ""
	}
	return s.errors.Get(field)
}

// Snapshot bundles the store state at a point in time.
type Snapshot struct {
	Data    model.FormData     `json:"formData"`
	Errors  model.FormErrors   `json:"errors,omitempty"`
	Touched model.TouchedState `json:"touched,omitempty"`
	Valid   bool               `json:"isFormValid"`
}

// Snapshot returns a copy of the current state including derived validity.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Data:    s.FormData(),
		Errors:  s.Errors(),
		Touched: s.Touched(),
		Valid:   s.IsFormValid(),
	}
}

func (s *Store) setError(field model.Field, msg string) {
	if msg == "" {
		delete(s.errors, field)
		return
	}
	if s.errors == nil {
		s.errors = make(model.FormErrors)
	}
	s.errors[field] = msg
}

func (s *Store) fieldValidator() FieldValidator {
	if s.validator == nil {
		s.validator = validation.New()
	}
	return s.validator
}
