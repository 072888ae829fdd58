// Package scores keeps the best finishing times per difficulty in a YAML
// file.
package scores

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/they4kman/termsweep/game"
	"gopkg.in/yaml.v2"
)

// MaxEntries is the number of times kept per difficulty
const MaxEntries = 10

type Entry struct {
	Millis int64  `yaml:"millis"`
	Date   string `yaml:"date"`
}

func (entry Entry) Duration() time.Duration {
	return time.Duration(entry.Millis) * time.Millisecond
}

type Scoreboard struct {
	path   string
	Scores map[string][]Entry `yaml:"scores"`
}

// Open loads the scoreboard stored at path. A missing file yields an empty
// scoreboard which is created on the first Save.
func Open(path string) (*Scoreboard, error) {
	scoreboard := &Scoreboard{
		path:   path,
		Scores: make(map[string][]Entry),
	}

	in, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return scoreboard, nil
	} else if err != nil {
		return nil, fmt.Errorf("read scoreboard: %w", err)
	}

	if err := yaml.Unmarshal(in, scoreboard); err != nil {
		return nil, fmt.Errorf("parse scoreboard %s: %w", path, err)
	}
	if scoreboard.Scores == nil {
		scoreboard.Scores = make(map[string][]Entry)
	}
	for _, entries := range scoreboard.Scores {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Millis < entries[j].Millis
		})
	}
	return scoreboard, nil
}

func (scoreboard *Scoreboard) Path() string {
	return scoreboard.path
}

// Record adds a winning time, returning its 1-based rank, or 0 when it did not
// make the table
func (scoreboard *Scoreboard) Record(difficulty game.Difficulty, elapsed time.Duration, at time.Time) int {
	key := difficulty.String()
	entry := Entry{
		Millis: elapsed.Milliseconds(),
		Date:   at.UTC().Format(time.RFC3339),
	}

	entries := scoreboard.Scores[key]

	// Ties keep their existing order, so the new entry goes after them
	pos := sort.Search(len(entries), func(i int) bool {
		return entries[i].Millis > entry.Millis
	})
	if pos >= MaxEntries {
		return 0
	}

	entries = append(entries, Entry{})
	copy(entries[pos+1:], entries[pos:])
	entries[pos] = entry
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}

	scoreboard.Scores[key] = entries
	return pos + 1
}

func (scoreboard *Scoreboard) Entries(difficulty game.Difficulty) []Entry {
	return scoreboard.Scores[difficulty.String()]
}

func (scoreboard *Scoreboard) Best(difficulty game.Difficulty) (time.Duration, bool) {
	entries := scoreboard.Entries(difficulty)
	if len(entries) == 0 {
		return 0, false
	}
	return entries[0].Duration(), true
}

func (scoreboard *Scoreboard) Save() error {
	if err := os.MkdirAll(filepath.Dir(scoreboard.path), 0o755); err != nil {
		return fmt.Errorf("create scoreboard dir: %w", err)
	}

	out, err := yaml.Marshal(scoreboard)
	if err != nil {
		return fmt.Errorf("serialize scoreboard: %w", err)
	}
	if err := os.WriteFile(scoreboard.path, out, 0o644); err != nil {
		return fmt.Errorf("write scoreboard: %w", err)
	}
	return nil
}
