package fakesmith

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// compileSchema compiles a raw JSON Schema into a validator. The raw bytes
// are not retained by the compiler.
func compileSchema(raw json.RawMessage) (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("request.json", doc); err != nil {
		return nil, err
	}
	return compiler.Compile("request.json")
}

// validateAgainstSchema runs schema validation on an already-parsed value.
// Failures become request-level errors: a bag that does not match its shape
// aborts the whole call. The Reason names each failing location so the
// host sees which property was wrong, not an internal resource URL.
func validateAgainstSchema(schema *jsonschema.Schema, v any) error {
	err := schema.Validate(v)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if errors.As(err, &ve) {
		return &RequestError{Reason: formatValidationError(ve), Err: ErrValidation}
	}
	return &RequestError{Reason: err.Error(), Err: ErrValidation}
}

// formatValidationError flattens the validator's cause tree into one line
// per failing instance location.
func formatValidationError(ve *jsonschema.ValidationError) string {
	printer := message.NewPrinter(language.English)
	var parts []string
	var walk func(cause *jsonschema.ValidationError)
	walk = func(cause *jsonschema.ValidationError) {
		if len(cause.Causes) == 0 {
			loc := "/" + strings.Join(cause.InstanceLocation, "/")
			parts = append(parts, fmt.Sprintf("at %q: %s", loc, cause.ErrorKind.LocalizedString(printer)))
			return
		}
		for _, c := range cause.Causes {
			walk(c)
		}
	}
	walk(ve)
	return "invalid arguments: " + strings.Join(parts, "; ")
}
