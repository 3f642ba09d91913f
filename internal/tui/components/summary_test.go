package components

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/cookieshop/internal/catalog"
)

func TestNewSummary(t *testing.T) {
	t.Parallel()

	data := SummaryData{Section: catalog.CategoryCookies, Total: 3, Visible: 3}
	require.Equal(t, data, NewSummary(data).data)
}

func TestSummaryView(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     SummaryData
		expected string
	}{
		{
			name:     "plural",
			data:     SummaryData{Section: catalog.CategoryCookies, Total: 6, Visible: 6},
			expected: "6 cookies",
		},
		{
			name:     "singular",
			data:     SummaryData{Section: catalog.CategoryProducts, Total: 1, Visible: 1},
			expected: "1 product",
		},
		{
			name:     "empty",
			data:     SummaryData{Section: catalog.CategoryCookies},
			expected: "0 cookies",
		},
		{
			name:     "filtered",
			data:     SummaryData{Section: catalog.CategoryCookies, Total: 6, Visible: 2, Query: "choc"},
			expected: `2 of 6 cookies match "choc"`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, NewSummary(tt.data).View())
		})
	}
}
