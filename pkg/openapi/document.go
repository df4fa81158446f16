package openapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-empform/pkg/render"
	"github.com/goliatone/go-empform/pkg/uischema"
	"github.com/goliatone/go-empform/pkg/validation"
)

const (
	// SchemaName is the component name of the submission payload.
	SchemaName = "EmployeeRegistration"
	// OperationID identifies the submission operation.
	OperationID = "submitEmployeeRegistration"
	// SubmitPath is the path the submission operation is mounted on.
	SubmitPath = "/employees"

	documentVersion = "1.0.0"
)

// Document describes the registration payload as an OpenAPI 3 document. The
// schema constraints come from validation.Rules so the description cannot
// drift from the client-side checks; labels and placeholders come from layout.
func Document(ctx context.Context, layout uischema.Layout) (*openapi3.T, error) {
	schema, err := RegistrationSchema(layout)
	if err != nil {
		return nil, err
	}
	ref := &openapi3.SchemaRef{
		Ref:   "#/components/schemas/" + SchemaName,
		Value: schema,
	}

	body := openapi3.NewRequestBody().
		WithRequired(true).
		WithDescription(layout.Subtitle).
		WithContent(openapi3.Content{
			render.ContentType(render.OutputFormatJSON):           openapi3.NewMediaType().WithSchemaRef(ref),
			render.ContentType(render.OutputFormatFormURLEncoded): openapi3.NewMediaType().WithSchemaRef(ref),
		})

	op := openapi3.NewOperation()
	op.OperationID = OperationID
	op.Summary = layout.Title
	op.RequestBody = &openapi3.RequestBodyRef{Value: body}
	op.Responses = openapi3.NewResponses(
		openapi3.WithStatus(http.StatusCreated, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().WithDescription(layout.SuccessMessage),
		}),
		openapi3.WithStatus(http.StatusUnprocessableEntity, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().WithDescription("One or more fields failed validation."),
		}),
	)

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       layout.Title,
			Description: layout.Subtitle,
			Version:     documentVersion,
		},
		Paths: openapi3.NewPaths(openapi3.WithPath(SubmitPath, &openapi3.PathItem{Post: op})),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{SchemaName: &openapi3.SchemaRef{Value: schema}},
		},
	}

	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("openapi: validate document: %w", err)
	}
	return doc, nil
}

// RegistrationSchema builds the object schema for the submission payload.
func RegistrationSchema(layout uischema.Layout) (*openapi3.Schema, error) {
	schema := openapi3.NewObjectSchema()
	schema.Title = SchemaName
	schema.Required = []string{}

	for _, rule := range validation.Rules() {
		fl, ok := layout.Field(rule.Field)
		if !ok {
			return nil, fmt.Errorf("openapi: layout is missing field %s", rule.Field)
		}

		prop := openapi3.NewStringSchema()
		prop.Title = fl.DisplayLabel()
		prop.Description = rule.Message
		if rule.Pattern != "" {
			prop.WithPattern(rule.Pattern)
		}
		if rule.Format != "" {
			prop.WithFormat(rule.Format)
		}
		if rule.MinLength > 0 {
			prop.WithMinLength(int64(rule.MinLength))
		}
		maxLength := rule.MaxLength
		if fl.MaxLength > 0 && (maxLength == 0 || fl.MaxLength < maxLength) {
			maxLength = fl.MaxLength
		}
		if maxLength > 0 {
			prop.WithMaxLength(int64(maxLength))
		}
		if fl.Placeholder != "" {
			prop.Extensions = map[string]any{"x-placeholder": fl.Placeholder}
		}

		schema.WithProperty(rule.Field.String(), prop)
		schema.Required = append(schema.Required, rule.Field.String())
	}
	return schema, nil
}

// MarshalYAML renders doc as block-style YAML preserving the JSON key order.
func MarshalYAML(doc *openapi3.T) ([]byte, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("openapi: encode json: %w", err)
	}
	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return nil, fmt.Errorf("openapi: decode json as yaml: %w", err)
	}
	resetStyle(&node)
	out, err := yaml.Marshal(&node)
	if err != nil {
		return nil, fmt.Errorf("openapi: encode yaml: %w", err)
	}
	return out, nil
}

func resetStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		resetStyle(child)
	}
}
