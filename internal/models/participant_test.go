package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidAlias(t *testing.T) {
	testCases := []struct {
		name  string
		alias string
		valid bool
	}{
		{name: "empty", alias: "", valid: false},
		{name: "single char", alias: "J", valid: true},
		{name: "typical", alias: "Jeevan", valid: true},
		{name: "exactly twenty chars", alias: strings.Repeat("a", 20), valid: true},
		{name: "twenty one chars", alias: strings.Repeat("a", 21), valid: false},
		// 8 runes, 24 bytes: length is counted in characters, not bytes.
		{name: "non-ascii within bound", alias: "प्रियंका", valid: true},
		{name: "emoji alias", alias: "🔥🔥🔥", valid: true},
		{name: "non-ascii over bound", alias: strings.Repeat("ज", 21), valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, ValidAlias(tc.alias))
		})
	}
}
