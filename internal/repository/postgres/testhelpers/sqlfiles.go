package testhelpers

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ApplyMigrations runs every *.up.sql file of dir in name order.
func ApplyMigrations(db *sql.DB, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".up.sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	return execFiles(db, dir, names, "migration")
}

// LoadFixtures runs the given SQL files of dir in the order passed.
func LoadFixtures(db *sql.DB, dir string, files []string) error {
	return execFiles(db, dir, files, "fixture")
}

func execFiles(db *sql.DB, dir string, names []string, kind string) error {
	for _, name := range names {
		script, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("read %s %s: %w", kind, name, err)
		}
		if _, err := db.Exec(string(script)); err != nil {
			return fmt.Errorf("exec %s %s: %w", kind, name, err)
		}
	}
	return nil
}
