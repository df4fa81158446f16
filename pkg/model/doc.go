// Package model defines the value types shared by the employee registration
// form: the field enumeration, the raw form data record, and the error and
// touched bookkeeping maps the validation store maintains.
//
// The types carry no validation logic of their own; see package validation
// for the per-field rules and package form for the stateful store.
package model
