package fakesmith

import (
	gofakeit "github.com/brianvoe/gofakeit/v7"
)

// Source is the pseudo-random value source behind every generator. It wraps
// a gofakeit Faker so randomness is an explicit handle rather than ambient
// process state: build one with a fixed seed for reproducible output, or
// with seed 0 for a randomly seeded instance.
//
// A Source is not safe for concurrent use. The MCP host delivers one call
// at a time, so the engine never needs more than sequential access.
type Source struct {
	faker *gofakeit.Faker
}

// NewSource creates a Source. A zero seed yields a randomly seeded source;
// any other value is deterministic.
func NewSource(seed uint64) *Source {
	return &Source{faker: gofakeit.New(seed)}
}
