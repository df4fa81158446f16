package render

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-empform/pkg/model"
)

// OutputFormat controls how submitted form data is serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits application/json payloads.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatFormURLEncoded emits application/x-www-form-urlencoded payloads.
	OutputFormatFormURLEncoded OutputFormat = "form"
	// OutputFormatPrettyText emits a human-friendly key=value listing.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// ParseOutputFormat normalises raw into a known format.
func ParseOutputFormat(raw string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case "", OutputFormatJSON:
		return OutputFormatJSON, nil
	case OutputFormatFormURLEncoded:
		return OutputFormatFormURLEncoded, nil
	case OutputFormatPrettyText:
		return OutputFormatPrettyText, nil
	default:
		return "", fmt.Errorf("render: unknown output format %q", raw)
	}
}

// ContentType reports the media type for format.
func ContentType(format OutputFormat) string {
	switch format {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Encode serializes data using format. Fields are always written in display
// order.
func Encode(format OutputFormat, data model.FormData) ([]byte, error) {
	switch format {
	case OutputFormatFormURLEncoded:
		return []byte(encodeForm(data)), nil
	case OutputFormatPrettyText:
		return []byte(prettyPrint(data)), nil
	case OutputFormatJSON, "":
		out, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("render: encode json: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("render: unknown output format %q", format)
	}
}

func encodeForm(data model.FormData) string {
	var b strings.Builder
	for _, field := range model.Fields() {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(field.String()))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(data.Get(field)))
	}
	return b.String()
}

func prettyPrint(data model.FormData) string {
	var b strings.Builder
	for _, field := range model.Fields() {
		fmt.Fprintf(&b, "%s=%s\n", field, data.Get(field))
	}
	return b.String()
}
