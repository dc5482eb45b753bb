package usecase

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	santhosh "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/tripstack/travelapi/internal/core/domain"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Validator holds the compiled JSON schema for every mutable resource.
// Schemas are embedded and compiled once at construction.
type Validator struct {
	schemas map[string]*santhosh.Schema
}

func NewValidator() (*Validator, error) {
	v := &Validator{schemas: make(map[string]*santhosh.Schema)}
	for _, name := range []string{domain.CollectionAirport, domain.CollectionAirline, domain.CollectionRoute} {
		raw, err := schemaFS.ReadFile("schemas/" + name + ".json")
		if err != nil {
			return nil, fmt.Errorf("read %s schema: %w", name, err)
		}
		compiled, err := compileSchema(name, raw)
		if err != nil {
			return nil, fmt.Errorf("compile %s schema: %w", name, err)
		}
		v.schemas[name] = compiled
	}
	return v, nil
}

// Validate checks data against the resource's schema. On failure it returns
// *domain.ErrSchemaViolation listing every broken constraint, with dotted
// field paths (geo.lat, schedule.0.day).
func (v *Validator) Validate(resource string, data json.RawMessage) error {
	sch, ok := v.schemas[resource]
	if !ok {
		return fmt.Errorf("no schema registered for resource %q", resource)
	}

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return &domain.ErrSchemaViolation{Violations: []domain.FieldViolation{
			{Message: "body must be valid json"},
		}}
	}

	if err := sch.Validate(value); err != nil {
		var ve *santhosh.ValidationError
		if errors.As(err, &ve) {
			return &domain.ErrSchemaViolation{Violations: collectViolations(ve)}
		}
		return &domain.ErrSchemaViolation{Violations: []domain.FieldViolation{{Message: err.Error()}}}
	}
	return nil
}

func compileSchema(name string, raw json.RawMessage) (*santhosh.Schema, error) {
	compiler := santhosh.NewCompiler()
	compiler.Draft = santhosh.Draft7
	url := name + ".schema.json"
	if err := compiler.AddResource(url, bytes.NewReader(raw)); err != nil {
		return nil, err
	}
	return compiler.Compile(url)
}

// collectViolations flattens the validator's error tree into one entry per
// broken constraint. A single "required" error names several properties at
// once, so it is split into one violation per missing field.
func collectViolations(ve *santhosh.ValidationError) []domain.FieldViolation {
	var out []domain.FieldViolation
	for _, cause := range ve.Causes {
		out = append(out, collectViolations(cause)...)
	}
	if len(out) > 0 {
		return out
	}
	base := fieldPath(ve.InstanceLocation)
	if missing := missingProperties(ve.Message); len(missing) > 0 {
		for _, field := range missing {
			out = append(out, domain.FieldViolation{
				Field:   joinPath(base, field),
				Message: "required field is missing",
			})
		}
		return out
	}
	return append(out, domain.FieldViolation{Field: base, Message: ve.Message})
}

// missingProperties extracts field names from a "required" keyword message
// of the form: missing properties: 'a', 'b'.
func missingProperties(message string) []string {
	const prefix = "missing propert"
	if !strings.HasPrefix(message, prefix) {
		return nil
	}
	colon := strings.Index(message, ":")
	if colon < 0 {
		return nil
	}
	var fields []string
	for _, part := range strings.Split(message[colon+1:], ",") {
		field := strings.Trim(strings.TrimSpace(part), "'\"")
		if field != "" {
			fields = append(fields, field)
		}
	}
	return fields
}

// fieldPath converts a JSON pointer like /geo/lat to a dotted path geo.lat.
func fieldPath(pointer string) string {
	trimmed := strings.TrimPrefix(pointer, "/")
	if trimmed == "" {
		return ""
	}
	return strings.ReplaceAll(trimmed, "/", ".")
}

func joinPath(base, field string) string {
	if base == "" {
		return field
	}
	return base + "." + field
}
