// Package fakesmith generates synthetic structured data from declarative
// field specifications. It backs an MCP stdio server exposing three tools:
// generateCustomData, generatePerson, and generateCompany.
//
// # Overview
//
// A host sends a tool call with an argument bag. The bag is validated
// against a reflected JSON Schema, decoded into a typed request, and routed
// to one of three shapes: a custom ordered field list, or the fixed person
// and company recipes. Each field's declared type tag is resolved against a
// registration table of generator functions; the matching generator
// produces one plausible fake value.
//
// Pipeline: args bag → validate (schema) → decode → route → per-field
// dispatch → ordered Record → serialized response.
//
// # Key concepts
//
//   - Registration table: every supported type tag maps to a GeneratorFunc;
//     completeness is verified when the Engine is built, so an unsupported
//     tag is a construction-time defect, not a runtime surprise.
//   - Field-level isolation: one field's failure (unknown tag, generator
//     panic) is logged, its value becomes null, and the rest of the request
//     proceeds. Only request-level problems (unknown tool, malformed bag)
//     abort a call.
//   - Seedable source: all randomness flows through a Source handle, so
//     tests and reproductions can pin a seed.
//
// # Example
//
//	engine, err := fakesmith.NewEngine(fakesmith.WithSeed(42))
//	if err != nil { ... }
//	rec, err := engine.Route(fakesmith.ToolCustomData, map[string]any{
//	    "fields": []any{
//	        map[string]any{"name": "id", "type": "uuid"},
//	        map[string]any{"name": "score", "type": "number", "options": map[string]any{"min": 1, "max": 10}},
//	    },
//	})
package fakesmith
