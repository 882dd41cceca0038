package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"integer", "42", 42},
		{"decimal", "12.5", 12.5},
		{"padded", " 7 ", 7},
		{"scientific", "1e3", 1000},
		{"negative", "-3.5", -3.5},
		{"empty", "", 0},
		{"words", "not a number", 0},
		{"nan literal", "NaN", 0},
		{"infinity", "Inf", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAmount(tt.raw))
		})
	}
}
