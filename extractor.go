package fakesmith

import (
	"bytes"
	"encoding/json"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
)

// Extractor provides JSON Schema generation and validated decoding for an
// argument shape T. The same schema is advertised to MCP hosts and used to
// gate incoming bags, so what a host sees is exactly what is enforced.
type Extractor[T any] struct {
	raw      json.RawMessage
	compiled *jsonschema.Schema
}

// NewExtractor creates an Extractor for shape T.
func NewExtractor[T any]() (*Extractor[T], error) {
	raw, err := reflectSchema[T]()
	if err != nil {
		return nil, err
	}
	compiled, err := compileSchema(raw)
	if err != nil {
		return nil, err
	}
	return &Extractor[T]{raw: raw, compiled: compiled}, nil
}

// Schema returns the raw JSON Schema for T. The returned slice is shared;
// callers must not mutate it.
func (e *Extractor[T]) Schema() json.RawMessage {
	return e.raw
}

// Decode validates the argument bag against the schema and unmarshals it
// into T. Any failure is a request-level RequestError wrapping
// ErrValidation: a malformed bag aborts the call, never a single field.
func (e *Extractor[T]) Decode(args map[string]any) (T, error) {
	var zero T
	if args == nil {
		args = map[string]any{}
	}
	b, err := json.Marshal(args)
	if err != nil {
		return zero, wrapDecodeError(err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return zero, wrapDecodeError(err)
	}
	if err := validateAgainstSchema(e.compiled, doc); err != nil {
		return zero, err
	}
	var req T
	if err := json.Unmarshal(b, &req); err != nil {
		return zero, wrapDecodeError(err)
	}
	return req, nil
}
