package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/kalexmills/lettertrie/src/dict"
	"github.com/kalexmills/lettertrie/src/dict/db"
	"github.com/kalexmills/lettertrie/src/trie"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	conf := readConfig(newLogger(false))
	log := newLogger(conf.Debug)

	failed, err := run(conf, log)
	if err != nil {
		log.Error().Err(err).Msg("could not build trie")
		os.Exit(1)
	}
	if failed > 0 {
		log.Error().Int("failed", failed).Msg("checks failed")
		os.Exit(1)
	}
	log.Info().Msg("all checks passed")
}

func newLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// run builds the trie, runs every configured check and tears the trie down. It returns the number
// of failed checks.
func run(conf Config, log zerolog.Logger) (int, error) {
	t := trie.New(trie.WithNodeLimit(conf.NodeLimit))
	defer func() {
		log.Debug().Int("nodes", t.Destroy()).Msg("destroyed trie")
	}()

	if err := populate(t, conf, log); err != nil {
		return 0, err
	}
	log.Info().Int("nodes", t.Len()).Msg("trie ready")

	failed := 0
	for _, c := range conf.Checks() {
		if t.Search(c.Query, c.Mode) != c.Expected {
			log.Error().Stringer("check", c).Msg("check failed")
			failed++
			continue
		}
		log.Debug().Stringer("check", c).Msg("check passed")
	}
	return failed, nil
}

func populate(t *trie.Trie, conf Config, log zerolog.Logger) error {
	if conf.WordsPath != "" {
		f, err := os.Open(conf.WordsPath)
		if err != nil {
			return err
		}
		defer f.Close()
		stats, err := dict.Load(f, t, log)
		if err != nil {
			return err
		}
		log.Info().Str("path", conf.WordsPath).Stringer("stats", stats).Msg("loaded word list")
	}
	if conf.DBPath != "" {
		sqlDB, err := sql.Open("sqlite3", conf.DBPath)
		if err != nil {
			return fmt.Errorf("cannot open database %s: %w", conf.DBPath, err)
		}
		defer sqlDB.Close()
		if err := db.BootstrapDB(sqlDB, log); err != nil {
			return err
		}
		if _, err := db.LoadWords(context.Background(), sqlDB, t, log); err != nil {
			return err
		}
	}
	for _, w := range conf.Words {
		if err := t.Insert(w); err != nil {
			return fmt.Errorf("could not insert %q: %w", w, err)
		}
	}
	return nil
}

type Config struct {
	WordsPath string
	DBPath    string
	NodeLimit int
	Debug     bool

	Words           []string
	CheckWords      []string
	MissingWords    []string
	CheckPrefixes   []string
	MissingPrefixes []string
}

type Check struct {
	Query    string
	Mode     trie.Mode
	Expected bool
}

func (c Check) String() string {
	verb := "found"
	if !c.Expected {
		verb = "not found"
	}
	return fmt.Sprintf("%s %q %s", c.Mode, c.Query, verb)
}

// Checks expands the configured query lists into individual checks.
func (c Config) Checks() []Check {
	var result []Check
	add := func(queries []string, mode trie.Mode, expected bool) {
		for _, q := range queries {
			result = append(result, Check{Query: q, Mode: mode, Expected: expected})
		}
	}
	add(c.CheckWords, trie.Word, true)
	add(c.MissingWords, trie.Word, false)
	add(c.CheckPrefixes, trie.Prefix, true)
	add(c.MissingPrefixes, trie.Prefix, false)
	return result
}

func readConfig(log zerolog.Logger) Config {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("TRIECHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.AddConfigPath("/etc/triecheck")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("no config file found, using defaults")
	}
	return configFrom(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("wordsPath", "")
	v.SetDefault("dbPath", "")
	v.SetDefault("nodeLimit", 0)
	v.SetDefault("debug", false)
	v.SetDefault("words", []string{"hello", "hey", "hi", "he", "cat"})
	v.SetDefault("checkWords", []string{"hello", "he"})
	v.SetDefault("missingWords", []string{"h", "hel", "dog"})
	v.SetDefault("checkPrefixes", []string{"he", "ca"})
	v.SetDefault("missingPrefixes", []string{"hez"})
}

func configFrom(v *viper.Viper) Config {
	return Config{
		WordsPath:       v.GetString("wordsPath"),
		DBPath:          v.GetString("dbPath"),
		NodeLimit:       v.GetInt("nodeLimit"),
		Debug:           v.GetBool("debug"),
		Words:           v.GetStringSlice("words"),
		CheckWords:      v.GetStringSlice("checkWords"),
		MissingWords:    v.GetStringSlice("missingWords"),
		CheckPrefixes:   v.GetStringSlice("checkPrefixes"),
		MissingPrefixes: v.GetStringSlice("missingPrefixes"),
	}
}
