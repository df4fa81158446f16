// Package openapi publishes the registration payload as an OpenAPI 3
// document built with kin-openapi, so a receiving service can share the
// client-side constraints.
package openapi
