package form

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed formdefinition.schema.json
var rawDefinitionSchema []byte

// definitionSchema lazily parses the embedded schema once per process. The
// schema is read-only after initialization.
var definitionSchema = sync.OnceValues(func() (*openapi3.Schema, error) {
	var schema openapi3.Schema
	if err := json.Unmarshal(rawDefinitionSchema, &schema); err != nil {
		return nil, fmt.Errorf("form: parse embedded schema: %w", err)
	}
	return &schema, nil
})

// validateDocument checks the raw definition document against the embedded
// schema before it is trusted enough to unmarshal.
func validateDocument(doc map[string]any) error {
	schema, err := definitionSchema()
	if err != nil {
		return err
	}
	return schema.VisitJSON(doc, openapi3.MultiErrors())
}
