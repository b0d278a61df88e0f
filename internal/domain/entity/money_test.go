package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/launchvest/launchvest/internal/domain/error"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
		wantErr  error
	}{
		{name: "whole number", input: "100", expected: 10000},
		{name: "one decimal place", input: "100.5", expected: 10050},
		{name: "two decimal places", input: "100.55", expected: 10055},
		{name: "trailing dot", input: "100.", expected: 10000},
		{name: "zero", input: "0", expected: 0},
		{name: "smallest unit", input: "0.01", expected: 1},
		{name: "surrounding whitespace", input: " 12.34 ", expected: 1234},
		{name: "three decimal places", input: "100.555", wantErr: errs.ErrInvalidAmount},
		{name: "negative amount", input: "-100", wantErr: errs.ErrNegativeAmount},
		{name: "empty string", input: "", wantErr: errs.ErrInvalidAmount},
		{name: "not a number", input: "abc", wantErr: errs.ErrInvalidAmount},
		{name: "two dots", input: "1.2.3", wantErr: errs.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cents, err := ParseAmount(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, cents)
		})
	}
}

func TestParsePositiveAmount(t *testing.T) {
	t.Run("rejects zero", func(t *testing.T) {
		_, err := ParsePositiveAmount("0")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("rejects zero with decimals", func(t *testing.T) {
		_, err := ParsePositiveAmount("0.00")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("accepts positive", func(t *testing.T) {
		cents, err := ParsePositiveAmount("250.00")
		assert.NoError(t, err)
		assert.Equal(t, int64(25000), cents)
	})
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		cents    int64
		expected string
	}{
		{name: "whole amount", cents: 10000, expected: "100.00"},
		{name: "with cents", cents: 10055, expected: "100.55"},
		{name: "below one unit", cents: 5, expected: "0.05"},
		{name: "zero", cents: 0, expected: "0.00"},
		{name: "negative", cents: -1234, expected: "-12.34"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatAmount(tt.cents))
		})
	}
}
