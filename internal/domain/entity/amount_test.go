package entity

import (
	"testing"

	errs "github.com/poi2/shopflow/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    int64
		expectedErr error
	}{
		{name: "Whole number", input: "10", expected: 1000},
		{name: "Whole number with trailing dot", input: "10.", expected: 1000},
		{name: "One decimal place", input: "10.1", expected: 1010},
		{name: "Two decimal places", input: "10.15", expected: 1015},
		{name: "Zero", input: "0", expected: 0},
		{name: "Leading whitespace", input: " 25.50", expected: 2550},
		{name: "Empty string", input: "", expectedErr: errs.ErrInvalidAmount},
		{name: "Negative amount", input: "-10.00", expectedErr: errs.ErrNegativeAmount},
		{name: "Too many decimal places", input: "10.155", expectedErr: errs.ErrInvalidAmount},
		{name: "Multiple dots", input: "10.1.5", expectedErr: errs.ErrInvalidAmount},
		{name: "Not a number", input: "abc", expectedErr: errs.ErrInvalidAmount},
		{name: "Overflow", input: "92233720368547758.08", expectedErr: errs.ErrAmountOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatCents(t *testing.T) {
	tests := []struct {
		name     string
		input    int64
		expected string
	}{
		{name: "Typical amount", input: 1015, expected: "10.15"},
		{name: "Whole amount", input: 1000, expected: "10.00"},
		{name: "Less than one", input: 5, expected: "0.05"},
		{name: "Zero", input: 0, expected: "0.00"},
		{name: "Negative amount", input: -250, expected: "-2.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCents(tt.input))
		})
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	cents, err := ParseAmount("123.45")
	assert.NoError(t, err)
	assert.Equal(t, "123.45", FormatCents(cents))
}
