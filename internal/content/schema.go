package content

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

// SchemaError reports every schema violation found in one content file.
type SchemaError struct {
	File   string
	Errors []FieldError
}

// FieldError is a single violation at a JSON field path.
type FieldError struct {
	Field   string
	Message string
}

func (e *SchemaError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s does not match its schema:", e.File)
	for i, fe := range e.Errors {
		fmt.Fprintf(&sb, "\n  %d. %s: %s", i+1, fe.Field, fe.Message)
	}
	return sb.String()
}

// Unwrap lets callers match schema failures with errors.Is(err, ErrInvalidContent).
func (e *SchemaError) Unwrap() error {
	return ErrInvalidContent
}

// validateDocument checks data against the embedded schema for file.
func validateDocument(file string, data []byte) error {
	schema, err := schemaFS.ReadFile("schemas/" + schemaName(file))
	if err != nil {
		return fmt.Errorf("no schema for %s: %w", file, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		// Document is not parseable JSON (or the schema itself is broken).
		return fmt.Errorf("%w: %s: %v", ErrInvalidContent, file, err)
	}

	if result.Valid() {
		return nil
	}

	schemaErr := &SchemaError{
		File:   file,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		schemaErr.Errors = append(schemaErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return schemaErr
}

// schemaName maps "projects.json" to "projects.schema.json".
func schemaName(file string) string {
	return strings.TrimSuffix(file, ".json") + ".schema.json"
}
