package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestParseBR(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "thousands and decimal separators", input: "1.234,56", expected: "1234.56"},
		{name: "decimal only", input: "0,5", expected: "0.5"},
		{name: "no separators", input: "42", expected: "42"},
		{name: "millions", input: "1.234.567,89", expected: "1234567.89"},
		{name: "leading whitespace", input: " 10,00", expected: "10"},
		{name: "empty string", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "malformed", input: "abc", wantErr: true},
		{name: "double comma", input: "1,2,3", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := ParseBR(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			expected, err := decimal.NewFromString(tc.expected)
			require.NoError(t, err)
			require.True(t, expected.Equal(d), "expected %s, got %s", expected, d)
		})
	}
}

func TestParseBROrZero(t *testing.T) {
	require.True(t, ParseBROrZero("não numérico").IsZero())
	require.True(t, ParseBROrZero("").IsZero())

	d := ParseBROrZero("2,50")
	require.True(t, decimal.NewFromFloat(2.5).Equal(d))
}
