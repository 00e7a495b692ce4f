package fakesmith

import (
	"encoding/json"
	"errors"

	"github.com/invopop/jsonschema"
)

// reflectSchema produces the JSON Schema for request type T as raw JSON.
// It is called once per argument shape when building an Engine. The schema
// serves double duty: it is advertised to MCP hosts as the tool's input
// schema and compiled into the validator that gates incoming bags.
func reflectSchema[T any]() (json.RawMessage, error) {
	reflector := jsonschema.Reflector{
		Anonymous:                 true,
		DoNotReference:            true,
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(T))
	if schema == nil {
		return nil, errNilSchema
	}
	data, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}
	// Strip $id so resolution never depends on it.
	var schemaMap map[string]any
	if err := json.Unmarshal(data, &schemaMap); err != nil {
		return nil, err
	}
	delete(schemaMap, "$id")
	delete(schemaMap, "id")
	return json.Marshal(schemaMap)
}

var errNilSchema = errors.New("schema reflection returned nil")
