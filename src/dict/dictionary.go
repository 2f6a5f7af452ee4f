package dict

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kalexmills/lettertrie/src/trie"
	"github.com/rs/zerolog"
)

//go:embed data/words.txt
var wordsFile string

// Stats summarizes a load.
type Stats struct {
	Lines    int
	Inserted int
	Skipped  int
}

func (s Stats) String() string {
	return fmt.Sprintf("lines=%d inserted=%d skipped=%d", s.Lines, s.Inserted, s.Skipped)
}

// Load reads a word list from r into t, one word per line. Only the first whitespace-separated
// token of a line is used, and it is lowercased first. Blank lines and lines starting with '#' are
// ignored. Words outside a-z are skipped; running out of nodes stops the load.
func Load(r io.Reader, t *trie.Trie, log zerolog.Logger) (Stats, error) {
	var stats Stats
	s := bufio.NewScanner(r)
	for s.Scan() {
		stats.Lines++
		word, ok := ParseLine(s.Text())
		if !ok {
			continue
		}
		inserted, err := Insert(t, word, log.With().Int("line", stats.Lines).Logger())
		if err != nil {
			return stats, fmt.Errorf("could not load line %d: %w", stats.Lines, err)
		}
		if inserted {
			stats.Inserted++
		} else {
			stats.Skipped++
		}
	}
	if err := s.Err(); err != nil {
		return stats, fmt.Errorf("could not read word list: %w", err)
	}
	return stats, nil
}

// Insert adds word to t, returning false for words the trie rejects as malformed. Only errors that
// should stop a load are returned.
func Insert(t *trie.Trie, word string, log zerolog.Logger) (bool, error) {
	err := t.Insert(word)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, trie.ErrInvalidSymbol), errors.Is(err, trie.ErrEmptyInput):
		log.Debug().Err(err).Str("word", word).Msg("skipping word")
		return false, nil
	default:
		return false, err
	}
}

// ParseLine extracts the lowercased word from a word-list line.
func ParseLine(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return "", false
	}
	return strings.ToLower(fields[0]), true
}

// Default returns a new trie holding the embedded word list.
func Default() (*trie.Trie, error) {
	t := trie.New()
	if _, err := Load(strings.NewReader(wordsFile), t, zerolog.Nop()); err != nil {
		return nil, err
	}
	return t, nil
}

// Words holds the embedded word list. It must not be modified.
var Words *trie.Trie

func IsWord(word string) bool {
	return Words.Contains(word)
}

func init() {
	var err error
	Words, err = Default()
	if err != nil {
		panic(fmt.Errorf("could not load embedded word list: %w", err))
	}
}
