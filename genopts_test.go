package fakesmith

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenOptions_Int(t *testing.T) {
	o := GenOptions{
		"int":     3,
		"float":   float64(7),
		"frac":    7.5,
		"number":  json.Number("11"),
		"garbage": "nope",
	}
	assert.Equal(t, 3, o.Int("int", 0))
	assert.Equal(t, 7, o.Int("float", 0))
	assert.Equal(t, 9, o.Int("frac", 9), "fractional values fall back to the default")
	assert.Equal(t, 11, o.Int("number", 0))
	assert.Equal(t, 5, o.Int("garbage", 5))
	assert.Equal(t, 5, o.Int("missing", 5))
}

func TestGenOptions_Float(t *testing.T) {
	o := GenOptions{"f": 2.5, "i": 4, "bad": "x"}
	assert.InDelta(t, 2.5, o.Float("f", 0), 1e-9)
	assert.InDelta(t, 4.0, o.Float("i", 0), 1e-9)
	assert.InDelta(t, 1.5, o.Float("bad", 1.5), 1e-9)
	assert.InDelta(t, 1.5, o.Float("missing", 1.5), 1e-9)
}

func TestGenOptions_String(t *testing.T) {
	o := GenOptions{"s": "rgb", "n": 3}
	assert.Equal(t, "rgb", o.String("s", "hex"))
	assert.Equal(t, "hex", o.String("n", "hex"))
	assert.Equal(t, "hex", o.String("missing", "hex"))
}

func TestGenOptions_Truthy(t *testing.T) {
	o := GenOptions{
		"t":        true,
		"f":        false,
		"one":      float64(1),
		"zero":     float64(0),
		"str":      "yes",
		"strFalse": "false",
		"empty":    "",
	}
	assert.True(t, o.Truthy("t"))
	assert.False(t, o.Truthy("f"))
	assert.True(t, o.Truthy("one"))
	assert.False(t, o.Truthy("zero"))
	assert.True(t, o.Truthy("str"))
	assert.False(t, o.Truthy("strFalse"))
	assert.False(t, o.Truthy("empty"))
	assert.False(t, o.Truthy("missing"))
}

func TestGenOptions_Ranges(t *testing.T) {
	lo, hi := GenOptions{"min": 20, "max": 10}.intRange(0, 1000)
	assert.Equal(t, 10, lo)
	assert.Equal(t, 20, hi)

	flo, fhi := GenOptions{}.floatRange(1, 1000)
	assert.InDelta(t, 1.0, flo, 1e-9)
	assert.InDelta(t, 1000.0, fhi, 1e-9)
}

func TestGenOptions_NilMapIsSafe(t *testing.T) {
	var o GenOptions
	assert.Equal(t, 5, o.Int("min", 5))
	assert.False(t, o.Truthy("past"))
}
