package db

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/jonbodner/proteus"
	"github.com/kalexmills/lettertrie/src/dict"
	"github.com/kalexmills/lettertrie/src/trie"
	"github.com/rs/zerolog"
)

type Word struct {
	ID   int    `prof:"id"`
	Word string `prof:"word"`
}

var WordDAO WordDaoImpl

type WordDaoImpl struct {
	Upsert      func(ctx context.Context, e proteus.ContextExecutor, word string) (int64, error)            `proq:"q:upsert" prop:"word"`
	All         func(ctx context.Context, e proteus.ContextQuerier) ([]Word, error)                         `proq:"q:all"`
	CountPrefix func(ctx context.Context, e proteus.ContextQuerier, prefix string, n int) (int64, error) `proq:"q:countPrefix" prop:"prefix,n"`
}

func init() {
	m := proteus.MapMapper{
		"upsert": `INSERT INTO words (word) VALUES (:word:)
				   ON CONFLICT (word) DO NOTHING`,
		"all":         `SELECT id, word FROM words ORDER BY id`,
		// substr compares bytes exactly; LIKE would fold ASCII case and treat '_' as a wildcard
		"countPrefix": `SELECT COUNT(*) FROM words WHERE substr(word, 1, :n:) = :prefix:`,
	}
	err := proteus.ShouldBuild(context.Background(), &WordDAO, proteus.Sqlite, m)
	if err != nil {
		panic(err)
	}
}

// CountByPrefix counts the stored words that begin with exactly the bytes of prefix.
func CountByPrefix(ctx context.Context, e proteus.ContextQuerier, prefix string) (int64, error) {
	return WordDAO.CountPrefix(ctx, e, prefix, len(prefix))
}

// LoadWords inserts every stored word into t. Malformed rows are skipped, the same way dict.Load
// skips malformed lines.
func LoadWords(ctx context.Context, e proteus.ContextQuerier, t *trie.Trie, log zerolog.Logger) (dict.Stats, error) {
	var stats dict.Stats
	words, err := WordDAO.All(ctx, e)
	if err != nil {
		return stats, fmt.Errorf("could not read words: %w", err)
	}
	for _, w := range words {
		stats.Lines++
		inserted, err := dict.Insert(t, w.Word, log.With().Int("id", w.ID).Logger())
		if err != nil {
			return stats, fmt.Errorf("could not load word %d: %w", w.ID, err)
		}
		if inserted {
			stats.Inserted++
		} else {
			stats.Skipped++
		}
	}
	log.Info().Stringer("stats", stats).Msg("loaded words from database")
	return stats, nil
}

// ImportWords reads a word list in the format accepted by dict.Load and stores every valid word.
// Inserted counts words that were new to the table.
func ImportWords(ctx context.Context, e proteus.ContextExecutor, r io.Reader, log zerolog.Logger) (dict.Stats, error) {
	var stats dict.Stats
	seen := trie.New()
	s := bufio.NewScanner(r)
	for s.Scan() {
		stats.Lines++
		word, ok := dict.ParseLine(s.Text())
		if !ok {
			continue
		}
		if seen.Contains(word) {
			continue
		}
		valid, err := dict.Insert(seen, word, log.With().Int("line", stats.Lines).Logger())
		if err != nil {
			return stats, err
		}
		if !valid {
			stats.Skipped++
			continue
		}
		count, err := WordDAO.Upsert(ctx, e, word)
		if err != nil {
			return stats, fmt.Errorf("could not store word on line %d: %w", stats.Lines, err)
		}
		stats.Inserted += int(count)
	}
	if err := s.Err(); err != nil {
		return stats, fmt.Errorf("could not read word list: %w", err)
	}
	return stats, nil
}
