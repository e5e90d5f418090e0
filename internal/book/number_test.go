package book

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"0", 0, true},
		{"42", 42, true},
		{" 7 ", 7, true},
		{"", 0, true},
		{"+3", 3, true},
		{"-2", -2, true},
		{"1.5", 1.5, true},
		{".5", 0.5, true},
		{"5.", 5, true},
		{"1e3", 1000, true},
		{"2E-1", 0.2, true},
		{"0x10", 16, true},
		{"0o17", 15, true},
		{"0b101", 5, true},
		{"Infinity", math.Inf(1), true},
		{"-Infinity", math.Inf(-1), true},
		{"1e400", math.Inf(1), true},
		{"abc", 0, false},
		{"12abc", 0, false},
		{"NaN", 0, false},
		{"inf", 0, false},
		{"1_000", 0, false},
		{"-0x10", 0, false},
		{"0x", 0, false},
		{"0xZZ", 0, false},
		{"1 2", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseNumber(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestAsIndex(t *testing.T) {
	i, ok := asIndex(3)
	assert.True(t, ok)
	assert.Equal(t, 3, i)

	i, ok = asIndex(math.Copysign(0, -1))
	assert.True(t, ok)
	assert.Equal(t, 0, i)

	for _, n := range []float64{-1, 0.5, math.Inf(1), math.Inf(-1), 1e12} {
		_, ok := asIndex(n)
		assert.False(t, ok, n)
	}
}
