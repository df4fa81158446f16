// Package config loads command settings from a dotenv file, an optional
// config file, EMPFORM_* environment variables and flag overrides, and
// validates the result.
package config
