package main

import (
	"bytes"
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/kalexmills/lettertrie/src/dict/db"
	"github.com/kalexmills/lettertrie/src/trie"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() Config {
	v := viper.New()
	setDefaults(v)
	return configFrom(v)
}

func TestRun_DefaultScenario(t *testing.T) {
	failed, err := run(defaultConfig(), zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 0, failed)
}

func TestRun_ReportsFailures(t *testing.T) {
	conf := defaultConfig()
	conf.CheckWords = append(conf.CheckWords, "dog", "hel")
	conf.MissingPrefixes = append(conf.MissingPrefixes, "hel")

	failed, err := run(conf, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 3, failed)
}

func TestRun_InsertError(t *testing.T) {
	conf := defaultConfig()
	conf.Words = append(conf.Words, "")

	_, err := run(conf, zerolog.Nop())
	assert.ErrorIs(t, err, trie.ErrEmptyInput)

	conf = defaultConfig()
	conf.NodeLimit = 5
	_, err = run(conf, zerolog.Nop())
	assert.ErrorIs(t, err, trie.ErrAllocationFailure)
}

func TestRun_WordsFileAndDB(t *testing.T) {
	dir := t.TempDir()
	wordsPath := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(wordsPath, []byte("dog\nhouse\n"), 0o644))

	dbPath := filepath.Join(dir, "words.db")
	sqlDB, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	require.NoError(t, db.BootstrapDB(sqlDB, zerolog.Nop()))
	_, err = db.WordDAO.Upsert(context.Background(), sqlDB, "tree")
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	conf := defaultConfig()
	conf.WordsPath = wordsPath
	conf.DBPath = dbPath
	conf.MissingWords = []string{"h", "hel"}
	conf.CheckWords = append(conf.CheckWords, "dog", "house", "tree")
	conf.CheckPrefixes = append(conf.CheckPrefixes, "hou", "tr")

	failed, err := run(conf, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 0, failed)
}

func TestRun_MissingWordsFile(t *testing.T) {
	conf := defaultConfig()
	conf.WordsPath = filepath.Join(t.TempDir(), "missing.txt")

	_, err := run(conf, zerolog.Nop())
	assert.True(t, os.IsNotExist(err))
}

func TestReadConfig_NoFileLogsWarning(t *testing.T) {
	var buf bytes.Buffer
	conf := readConfig(zerolog.New(&buf))

	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "no config file found")
	assert.Equal(t, []string{"hello", "hey", "hi", "he", "cat"}, conf.Words)
}

func TestConfig_Checks(t *testing.T) {
	checks := defaultConfig().Checks()
	require.Len(t, checks, 8)
	assert.Equal(t, Check{"hello", trie.Word, true}, checks[0])
	assert.Equal(t, Check{"hez", trie.Prefix, false}, checks[7])
	assert.Equal(t, `prefix "hez" not found`, checks[7].String())
}
