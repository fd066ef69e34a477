package cookies

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store reads cookies out of one Firefox profile. It is a read-only, one-shot
// reader: the profile database is never opened directly, let alone mutated.
type Store struct {
	profileDir string
	logger     *slog.Logger
}

// NewStore returns a Store over the given profile directory.
func NewStore(profileDir string, logger *slog.Logger) *Store {
	return &Store{profileDir: profileDir, logger: logger}
}

// Cookie is one row from the browser store, used by diagnostics.
type Cookie struct {
	Name   string
	Value  string
	Host   string
	Secure bool
}

// Load returns the name to value mapping of cookies whose host matches any
// candidate domain for host. It fails with ErrNoCookies when nothing matches.
func (s *Store) Load(ctx context.Context, host string) (map[string]string, error) {
	domains := DomainCandidates(host)
	s.logger.Debug("searching cookie domains", "domains", strings.Join(domains, ","))

	found := make(map[string]string)
	err := s.withSnapshot(func(db *sql.DB) error {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(domains)), ",")
		args := make([]any, len(domains))
		for i, d := range domains {
			args[i] = d
		}

		rows, err := db.QueryContext(ctx,
			"SELECT name, value, host FROM moz_cookies WHERE host IN ("+placeholders+")", args...)
		if err != nil {
			return fmt.Errorf("query cookies: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var name, value, cookieHost string
			if err := rows.Scan(&name, &value, &cookieHost); err != nil {
				return fmt.Errorf("scan cookie row: %w", err)
			}
			found[name] = value
			s.logger.Debug("cookie matched", "name", name, "host", cookieHost)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	if len(found) == 0 {
		return nil, fmt.Errorf("%w for %s; visit https://%s in Firefox first", ErrNoCookies, host, host)
	}
	s.logger.Info("cookies loaded", "count", len(found))
	return found, nil
}

// Diagnose returns every cookie whose host contains match, ordered by host
// then name.
func (s *Store) Diagnose(ctx context.Context, match string) ([]Cookie, error) {
	var out []Cookie
	err := s.withSnapshot(func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx,
			"SELECT name, value, host, isSecure FROM moz_cookies WHERE host LIKE ? ORDER BY host, name",
			"%"+match+"%")
		if err != nil {
			return fmt.Errorf("query cookies: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var c Cookie
			var secure int
			if err := rows.Scan(&c.Name, &c.Value, &c.Host, &secure); err != nil {
				return fmt.Errorf("scan cookie row: %w", err)
			}
			c.Secure = secure != 0
			out = append(out, c)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// withSnapshot copies the profile database to a private temporary file, opens
// the copy, runs fn, and removes the copy on every exit path.
func (s *Store) withSnapshot(fn func(*sql.DB) error) error {
	dbPath := filepath.Join(s.profileDir, "cookies.sqlite")
	if _, err := os.Stat(dbPath); err != nil {
		return fmt.Errorf("%w at %s", ErrStoreNotFound, dbPath)
	}

	tempPath := filepath.Join(os.TempDir(), "marquee-cookies-"+uuid.NewString()+".sqlite")
	if err := copyFile(dbPath, tempPath); err != nil {
		return fmt.Errorf("snapshot cookie database: %w", err)
	}
	defer func() {
		if err := os.Remove(tempPath); err != nil {
			s.logger.Warn("remove cookie snapshot", "path", tempPath, "error", err)
		}
	}()

	db, err := sql.Open("sqlite", tempPath)
	if err != nil {
		return fmt.Errorf("open cookie snapshot: %w", err)
	}
	defer db.Close()

	return fn(db)
}

func copyFile(source, target string) error {
	in, err := os.Open(source)
	if err != nil {
		return fmt.Errorf("open %s: %w", source, err)
	}
	defer in.Close()

	out, err := os.OpenFile(target, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("create %s: %w", target, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		_ = os.Remove(target)
		return fmt.Errorf("copy to %s: %w", target, err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(target)
		return fmt.Errorf("close %s: %w", target, err)
	}
	return nil
}
