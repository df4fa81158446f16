// Package uischema loads the presentational layout of the registration form
// (titles, labels, placeholders, input kinds) from YAML. Built-in defaults are
// embedded; files only need to list the keys they override.
package uischema
