package db

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/rs/zerolog"
)

//go:embed scripts/*.sql
var bootstrapScripts embed.FS

// BootstrapDB executes every embedded .sql script against sqlDB, in alphabetical order by filename.
// If no scripts are found, an error is returned.
func BootstrapDB(sqlDB *sql.DB, log zerolog.Logger) error {
	foundSQLFile := false
	scripts, err := bootstrapScripts.ReadDir("scripts")
	if err != nil {
		return err
	}
	for _, finfo := range scripts {
		if finfo.IsDir() {
			continue
		}
		foundSQLFile = true

		script, err := bootstrapScripts.ReadFile("scripts/" + finfo.Name())
		if err != nil {
			return err
		}
		_, err = sqlDB.Exec(string(script))
		if err != nil {
			return fmt.Errorf("could not execute bootstrap script %s: %w", finfo.Name(), err)
		}
		log.Debug().Str("script", finfo.Name()).Msg("executed bootstrap script")
	}
	if !foundSQLFile {
		return fmt.Errorf("could not find any *.sql files in schema folder scripts")
	}
	return nil
}
