package main

import (
	"context"
	"database/sql"
	"flag"
	"os"

	"github.com/kalexmills/lettertrie/src/dict/db"
	"github.com/rs/zerolog"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	wordsPath := flag.String("words", "src/dict/data/words.txt", "word list to import, one word per line")
	dbPath := flag.String("db", "words.sqlite3", "sqlite database to import into")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	f, err := os.Open(*wordsPath)
	FatalError(log, err)
	defer f.Close()

	DB, err := sql.Open("sqlite3", *dbPath)
	FatalError(log, err)
	defer DB.Close()

	FatalError(log, db.BootstrapDB(DB, log))

	stats, err := db.ImportWords(context.Background(), DB, f, log)
	FatalError(log, err)
	log.Info().Str("db", *dbPath).Stringer("stats", stats).Msg("imported words")
}

func FatalError(log zerolog.Logger, err error) {
	if err != nil {
		log.Fatal().Err(err).Msg("encountered error")
	}
}
