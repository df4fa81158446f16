// Package validation implements the per-field rules of the employee
// registration form. Results are plain strings: an empty string means the
// value passed, anything else is the message shown next to the field.
package validation
