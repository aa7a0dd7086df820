package form

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var errEmptyDocument = errors.New("form: document is empty")

// Decode parses a FormDefinition from JSON or YAML, validates the raw
// document against the embedded schema, then runs the navigation target
// checks. Definitions frequently come from a less-trusted generator, so the
// schema gate runs before any field is trusted.
func Decode(data []byte) (FormDefinition, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return FormDefinition{}, errEmptyDocument
	}

	doc, err := decodeDocument(data)
	if err != nil {
		return FormDefinition{}, err
	}
	if err := validateDocument(doc); err != nil {
		return FormDefinition{}, fmt.Errorf("form: schema validation: %w", err)
	}

	def, err := documentToDefinition(doc)
	if err != nil {
		return FormDefinition{}, err
	}
	if err := def.ValidateTargets(); err != nil {
		return FormDefinition{}, err
	}
	return def, nil
}

// Load reads and decodes a definition file. The extension only picks the
// error message; Decode sniffs the actual syntax.
func Load(path string) (FormDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FormDefinition{}, fmt.Errorf("form: read definition: %w", err)
	}
	def, err := Decode(data)
	if err != nil {
		ext := strings.TrimPrefix(filepath.Ext(path), ".")
		if ext == "" {
			ext = "json"
		}
		return FormDefinition{}, fmt.Errorf("form: decode %s definition %q: %w", ext, path, err)
	}
	return def, nil
}

// decodeDocument produces a generic map from JSON or YAML input. YAML is the
// fallback because every JSON document is also valid YAML.
func decodeDocument(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	var node map[string]any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("form: document is neither valid JSON nor YAML: %w", err)
	}
	return normalizeYAML(node), nil
}

// documentToDefinition converts the validated generic document into the typed
// model via a JSON round trip, keeping the struct tags as the single source
// of field mapping.
func documentToDefinition(doc map[string]any) (FormDefinition, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return FormDefinition{}, fmt.Errorf("form: marshal document: %w", err)
	}
	var def FormDefinition
	if err := json.Unmarshal(payload, &def); err != nil {
		return FormDefinition{}, fmt.Errorf("form: unmarshal definition: %w", err)
	}
	return def, nil
}

// normalizeYAML rewrites yaml.v3 map[any]any containers into map[string]any
// so the document can round-trip through encoding/json.
func normalizeYAML(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for key, value := range in {
		out[key] = normalizeYAMLValue(value)
	}
	return out
}

func normalizeYAMLValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return normalizeYAML(v)
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[fmt.Sprint(key)] = normalizeYAMLValue(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalizeYAMLValue(item)
		}
		return out
	default:
		return v
	}
}
