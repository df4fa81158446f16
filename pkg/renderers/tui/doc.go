// Package tui is a terminal front end for the registration form built on
// survey. It forwards every answer to a form.Store, re-prompts while the
// store reports a visible error, and submits once the full validation pass
// succeeds.
package tui
