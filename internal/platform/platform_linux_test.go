//go:build linux

package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatm(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		wantVsize uint64
		wantRSS   uint64
		wantErr   bool
	}{
		{
			name:      "typical line",
			data:      "309121 4683 3464 12 0 4992 0\n",
			wantVsize: 309121,
			wantRSS:   4683,
		},
		{
			name:    "empty",
			data:    "",
			wantErr: true,
		},
		{
			name:    "single field",
			data:    "309121\n",
			wantErr: true,
		},
		{
			name:    "non-numeric",
			data:    "garbage here 3464 12 0 4992 0\n",
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			vsize, rss, err := parseStatm(test.data)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.wantVsize, vsize)
			assert.Equal(t, test.wantRSS, rss)
		})
	}
}

func TestMemStats(t *testing.T) {
	stats, err := P.MemStats()
	require.NoError(t, err)

	assert.Positive(t, stats.ResidentBytes)
	assert.GreaterOrEqual(t, stats.VirtualBytes, stats.ResidentBytes)
	assert.Positive(t, stats.OpenFDs)
	assert.False(t, stats.Timestamp.IsZero())
}
