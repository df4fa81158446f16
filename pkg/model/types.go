package model

import "strings"

// Field names a single input of the employee registration form. The string
// value matches the wire name used in submissions.
type Field string

const (
	FieldName        Field = "name"
	FieldEmail       Field = "email"
	FieldEmployeeID  Field = "employeeId"
	FieldJoiningDate Field = "joiningDate"
)

var fieldOrder = []Field{FieldName, FieldEmail, FieldEmployeeID, FieldJoiningDate}

// Fields returns the form fields in display order.
func Fields() []Field {
	return append([]Field(nil), fieldOrder...)
}

// ParseField maps a raw field name onto a Field. Names are matched
// case-insensitively against the known fields; anything else is returned
// verbatim with ok set to false so callers can stay permissive.
func ParseField(raw string) (Field, bool) {
	trimmed := strings.TrimSpace(raw)
	for _, field := range fieldOrder {
		if strings.EqualFold(string(field), trimmed) {
			return field, true
		}
	}
	return Field(trimmed), false
}

// Known reports whether the field is one of the four registration fields.
func (f Field) Known() bool {
	for _, field := range fieldOrder {
		if field == f {
			return true
		}
	}
	return false
}

func (f Field) String() string {
	return string(f)
}

// FormData holds the raw, unvalidated user input.
type FormData struct {
	Name        string `json:"name" yaml:"name"`
	Email       string `json:"email" yaml:"email"`
	EmployeeID  string `json:"employeeId" yaml:"employeeId"`
	JoiningDate string `json:"joiningDate" yaml:"joiningDate"`
}

// Get returns the value stored for field. Unknown fields read as empty.
func (d FormData) Get(field Field) string {
	switch field {
	case FieldName:
		return d.Name
	case FieldEmail:
		return d.Email
	case FieldEmployeeID:
		return d.EmployeeID
	case FieldJoiningDate:
		return d.JoiningDate
	default:
		return ""
	}
}

// Set writes value into field and reports whether the field exists.
func (d *FormData) Set(field Field, value string) bool {
	switch field {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldEmployeeID:
		d.EmployeeID = value
	case FieldJoiningDate:
		d.JoiningDate = value
	default:
		return false
	}
	return true
}

// IsZero reports whether every field is empty.
func (d FormData) IsZero() bool {
	return d == FormData{}
}

// Values returns the data keyed by wire name.
func (d FormData) Values() map[string]any {
	out := make(map[string]any, len(fieldOrder))
	for _, field := range fieldOrder {
		out[string(field)] = d.Get(field)
	}
	return out
}

// FormErrors maps a field to its current error message. Only non-empty
// messages are stored.
type FormErrors map[Field]string

// Get returns the message for field, or "" when the field has no error.
func (e FormErrors) Get(field Field) string {
	if e == nil {
		return ""
	}
	return e[field]
}

// Has reports whether field currently carries an error.
func (e FormErrors) Has(field Field) bool {
	return e.Get(field) != ""
}

// Len returns the number of fields with errors.
func (e FormErrors) Len() int {
	return len(e)
}

// Clone returns an independent copy.
func (e FormErrors) Clone() FormErrors {
	out := make(FormErrors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// TouchedState records which fields have been blurred or included in a full
// validation pass.
type TouchedState map[Field]bool

// Get reports whether field has been touched.
func (t TouchedState) Get(field Field) bool {
	if t == nil {
		return false
	}
	return t[field]
}

// Len returns the number of touched fields.
func (t TouchedState) Len() int {
	return len(t)
}

// Clone returns an independent copy.
func (t TouchedState) Clone() TouchedState {
	out := make(TouchedState, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}
