package scores

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/termsweep/game"
)

var recordedAt = time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

func TestOpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.yaml")

	scoreboard, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, path, scoreboard.Path())

	_, ok := scoreboard.Best(game.Easy)
	assert.False(t, ok)
}

func TestOpenInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scores: [\n"), 0o644))

	_, err := Open(path)
	assert.Error(t, err)
}

func TestRecordRanks(t *testing.T) {
	scoreboard, err := Open(filepath.Join(t.TempDir(), "scores.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 1, scoreboard.Record(game.Easy, 30*time.Second, recordedAt))
	assert.Equal(t, 1, scoreboard.Record(game.Easy, 20*time.Second, recordedAt))
	assert.Equal(t, 3, scoreboard.Record(game.Easy, 45*time.Second, recordedAt))
	assert.Equal(t, 1, scoreboard.Record(game.Hard, 200*time.Second, recordedAt))

	best, ok := scoreboard.Best(game.Easy)
	require.True(t, ok)
	assert.Equal(t, 20*time.Second, best)
	assert.Len(t, scoreboard.Entries(game.Easy), 3)
	assert.Len(t, scoreboard.Entries(game.Hard), 1)
	assert.Empty(t, scoreboard.Entries(game.Medium))
}

func TestRecordKeepsBestEntries(t *testing.T) {
	scoreboard, err := Open(filepath.Join(t.TempDir(), "scores.yaml"))
	require.NoError(t, err)

	for i := 1; i <= MaxEntries; i++ {
		scoreboard.Record(game.Medium, time.Duration(i)*time.Minute, recordedAt)
	}

	assert.Equal(t, 0, scoreboard.Record(game.Medium, time.Hour, recordedAt))
	assert.Equal(t, 1, scoreboard.Record(game.Medium, time.Second, recordedAt))

	entries := scoreboard.Entries(game.Medium)
	require.Len(t, entries, MaxEntries)
	assert.Equal(t, time.Second, entries[0].Duration())
	assert.Equal(t, 9*time.Minute, entries[MaxEntries-1].Duration())
}

func TestSaveAndReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.yaml")
	scoreboard, err := Open(path)
	require.NoError(t, err)

	scoreboard.Record(game.Hard, 95500*time.Millisecond, recordedAt)
	require.NoError(t, scoreboard.Save())

	reopened, err := Open(path)
	require.NoError(t, err)

	entries := reopened.Entries(game.Hard)
	require.Len(t, entries, 1)
	assert.Equal(t, 95500*time.Millisecond, entries[0].Duration())
	assert.Equal(t, "2024-03-01T12:30:00Z", entries[0].Date)
}

func TestRecordTies(t *testing.T) {
	scoreboard, err := Open(filepath.Join(t.TempDir(), "scores.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 1, scoreboard.Record(game.Easy, 20*time.Second, recordedAt))
	assert.Equal(t, 2, scoreboard.Record(game.Easy, 20*time.Second, recordedAt))
	assert.Equal(t, 3, scoreboard.Record(game.Easy, 20*time.Second, recordedAt))
	assert.Equal(t, 1, scoreboard.Record(game.Easy, 19*time.Second, recordedAt))
	assert.Len(t, scoreboard.Entries(game.Easy), 4)
}

func TestOpenSortsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.yaml")
	contents := `scores:
  easy:
  - millis: 50000
    date: "2024-03-01T12:30:00Z"
  - millis: 10000
    date: "2024-03-01T12:30:00Z"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	scoreboard, err := Open(path)
	require.NoError(t, err)

	best, ok := scoreboard.Best(game.Easy)
	require.True(t, ok)
	assert.Equal(t, 10*time.Second, best)
	assert.Equal(t, 2, scoreboard.Record(game.Easy, 30*time.Second, recordedAt))
}
