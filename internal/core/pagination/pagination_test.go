package pagination

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name           string
		limit, page    int
		expectedLimit  int
		expectedOffset int
	}{
		{"defaults", DefaultLimit, DefaultPage, 10, 0},
		{"second page", 10, 2, 10, 10},
		{"fifth page custom limit", 25, 5, 25, 100},
		{"zero limit clamps to one", 0, 1, 1, 0},
		{"negative limit clamps to one", -5, 3, 1, 2},
		{"absurd limit clamps to max", 100000, 1, MaxLimit, 0},
		{"zero page clamps to first", 10, 0, 10, 0},
		{"negative page clamps to first", 10, -2, 10, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			limit, offset := Normalize(tc.limit, tc.page)
			require.Equal(t, tc.expectedLimit, limit)
			require.Equal(t, tc.expectedOffset, offset)
		})
	}
}

func TestClampLimit(t *testing.T) {
	require.Equal(t, 1, ClampLimit(-1))
	require.Equal(t, 1, ClampLimit(0))
	require.Equal(t, 500, ClampLimit(500))
	require.Equal(t, MaxLimit, ClampLimit(MaxLimit+1))
}
