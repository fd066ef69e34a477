package testsupport

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// CookieRow is one fixture row for a fake Firefox cookie database.
type CookieRow struct {
	Name   string
	Value  string
	Host   string
	Secure bool
}

// WriteCookieDB creates a minimal cookies.sqlite inside dir with the given
// rows, mirroring the moz_cookies columns marquee reads.
func WriteCookieDB(t *testing.T, dir string, rows []CookieRow) {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(dir, "cookies.sqlite"))
	if err != nil {
		t.Fatalf("open fixture cookie db: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(
		"CREATE TABLE moz_cookies (id INTEGER PRIMARY KEY, name TEXT, value TEXT, host TEXT, isSecure INTEGER DEFAULT 0)",
	); err != nil {
		t.Fatalf("create moz_cookies: %v", err)
	}

	for _, row := range rows {
		secure := 0
		if row.Secure {
			secure = 1
		}
		if _, err := db.Exec(
			"INSERT INTO moz_cookies (name, value, host, isSecure) VALUES (?, ?, ?, ?)",
			row.Name, row.Value, row.Host, secure,
		); err != nil {
			t.Fatalf("insert cookie row: %v", err)
		}
	}
}
