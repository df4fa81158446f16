package validation

import (
	"time"
	"unicode/utf8"

	"github.com/goliatone/go-empform/pkg/model"
)

// Validator evaluates single field values. It holds no form state; the clock
// and location only decide what "today" means for the joining date.
type Validator struct {
	now      func() time.Time
	location *time.Location
}

// Option configures a Validator.
type Option func(*Validator)

// WithClock overrides the time source used to resolve today's date.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		if now != nil {
			v.now = now
		}
	}
}

// WithLocation sets the time zone in which dates are compared.
func WithLocation(loc *time.Location) Option {
	return func(v *Validator) {
		if loc != nil {
			v.location = loc
		}
	}
}

// New constructs a Validator using the wall clock and local time by default.
func New(options ...Option) *Validator {
	v := &Validator{
		now:      time.Now,
		location: time.Local,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(v)
	}
	return v
}

var defaultValidator = New()

// ValidateField runs the default validator against a single value.
func ValidateField(field model.Field, value string) string {
	return defaultValidator.ValidateField(field, value)
}

// ValidateField returns the error message for value, or "" when the value is
// acceptable. Unknown fields always pass.
func (v *Validator) ValidateField(field model.Field, value string) string {
	switch field {
	case model.FieldName:
		if utf8.RuneCountInString(value) < nameMinLength || !nameExpr.MatchString(value) {
			return MessageName
		}
	case model.FieldEmail:
		if !emailExpr.MatchString(value) {
			return MessageEmail
		}
	case model.FieldEmployeeID:
		if !employeeIDExpr.MatchString(value) {
			return MessageEmployeeID
		}
	case model.FieldJoiningDate:
		return v.validateJoiningDate(value)
	}
	return ""
}

// Today returns midnight of the current day in the validator's location.
func (v *Validator) Today() time.Time {
	return midnight(v.now().In(v.location))
}

func (v *Validator) validateJoiningDate(value string) string {
	if value == "" {
		return MessageJoiningDateEmpty
	}
	selected, ok := v.parseDate(value)
	if !ok {
		return MessageJoiningDateParse
	}
	if selected.After(v.Today()) {
		return MessageJoiningDateAhead
	}
	return ""
}

func (v *Validator) parseDate(value string) (time.Time, bool) {
	if parsed, err := time.ParseInLocation(DateLayout, value, v.location); err == nil {
		return parsed, true
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return midnight(parsed.In(v.location)), true
	}
	return time.Time{}, false
}

func midnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
