package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"01712345678":      "+8801712345678",
		"1712345678":       "+8801712345678",
		"8801712345678":    "+8801712345678",
		"+8801712345678":   "+8801712345678",
		"017 1234-5678":    "+8801712345678",
		" 01712345678 ":    "+8801712345678",
		"":                 "",
	}

	for input, want := range cases {
		assert.Equal(t, want, NormalizePhone(input), "input %q", input)
	}
}
