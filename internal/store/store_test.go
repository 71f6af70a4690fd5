package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlindgren/taskstat/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "samples.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := openTestStore(t)

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	older := model.MemStats{
		Timestamp:     base,
		PID:           4242,
		VirtualBytes:  512 << 20,
		ResidentBytes: 64 << 20,
		CPUSeconds:    1.25,
		OpenFDs:       12,
		MaxFDs:        1024,
	}
	newer := older
	newer.Timestamp = base.Add(time.Second)
	newer.ResidentBytes = 65 << 20

	require.NoError(t, s.Record(older))
	require.NoError(t, s.Record(newer))

	samples, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, samples, 2)

	// Newest first.
	assert.Equal(t, newer.ResidentBytes, samples[0].ResidentBytes)
	assert.True(t, samples[0].Timestamp.Equal(newer.Timestamp))
	assert.Equal(t, older.ResidentBytes, samples[1].ResidentBytes)

	got := samples[1]
	assert.Equal(t, older.PID, got.PID)
	assert.Equal(t, older.VirtualBytes, got.VirtualBytes)
	assert.Equal(t, older.CPUSeconds, got.CPUSeconds)
	assert.Equal(t, older.OpenFDs, got.OpenFDs)
	assert.Equal(t, older.MaxFDs, got.MaxFDs)
}

func TestRecentRespectsLimit(t *testing.T) {
	s := openTestStore(t)

	now := time.Now()
	for i := 0; i < 5; i++ {
		sample := model.MemStats{Timestamp: now.Add(time.Duration(i) * time.Second), PID: 1}
		require.NoError(t, s.Record(sample))
	}

	samples, err := s.Recent(3)
	require.NoError(t, err)
	assert.Len(t, samples, 3)
}

func TestRecentOnEmptyStore(t *testing.T) {
	s := openTestStore(t)

	samples, err := s.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, samples)
}
