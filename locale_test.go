package fakesmith

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLocale_SingleDataSource(t *testing.T) {
	for _, locale := range []string{"", "en", "en-GB", "de", "zz"} {
		assert.Equal(t, DefaultLocale, ResolveLocale(locale))
	}
}
