// Package form provides the validation store backing the employee
// registration form.
//
// A presentation layer owns one Store, forwards input changes and blur events
// to it, and reads back values, errors and validity to render:
//
//	store := form.New()
//	store.HandleInputChange(model.FieldName, "Al")
//	store.HandleBlur(model.FieldName)
//	store.VisibleError(model.FieldName) // "Name must be at least 4 ..."
//
// On submission the caller runs ValidateForm, performs its side effect when
// it returns true, then calls ResetForm.
package form
