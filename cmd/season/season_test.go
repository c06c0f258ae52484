package season

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDay(t *testing.T) {
	t.Parallel()

	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	now := time.Date(2024, time.March, 31, 23, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    string
		want    string
		wantErr bool
	}{
		{"today in configured zone", "", "2024-04-01", false},
		{"explicit date", "2023-11-05", "2023-11-05", false},
		{"malformed date", "05.11.2023", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			day, err := resolveDay(tt.date, berlin, now)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, day.Format(time.DateOnly))
			assert.Equal(t, berlin, day.Location())
		})
	}
}

func TestPrintWindow(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, printWindow(&buf, time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Season 2024/25: 2024-04-01 to 2025-03-31 (previous 2023/24)\n", buf.String())
}
