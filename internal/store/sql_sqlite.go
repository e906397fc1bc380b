package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
)

// sqlitePragmas are appended to file DSNs that do not set them already.
var sqlitePragmas = []string{
	"_busy_timeout=5000",
	"_journal_mode=WAL",
	"_foreign_keys=on",
	"_secure_delete=on",
}

// NewConnectSQLite opens the local wallet database, creating its file with
// owner-only permissions when missing.
func NewConnectSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	l := log.With().Str("func", "NewConnectSQLite").Logger()

	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		l.Err(err).Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", withPragmas(cfg.DSN))
	if err != nil {
		l.Err(err).Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	// sqlite allows a single writer
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		conn.Close()
		l.Err(err).Msg("error connecting database (ping)")
		return nil, fmt.Errorf("error pinging DB: %w", err)
	}
	l.Debug().Msg("connected to database successfully")

	return &DB{DB: conn, logger: log}, nil
}

func withPragmas(dsn string) string {
	if dsn == "" || dsn == ":memory:" {
		return dsn
	}

	var extra []string
	for _, p := range sqlitePragmas {
		name, _, _ := strings.Cut(p, "=")
		if !strings.Contains(dsn, name+"=") {
			extra = append(extra, p)
		}
	}
	if len(extra) == 0 {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(extra, "&")
}

// createLocalDBFileIfNotExists makes sure a file DSN points at an existing
// file readable by the owner only.
func createLocalDBFileIfNotExists(dsn string) error {
	path, _, _ := strings.Cut(strings.TrimPrefix(dsn, "file:"), "?")
	if path == "" || path == ":memory:" {
		return nil
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("error creating DB dir: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("error creating DB file: %w", err)
	}
	return f.Close()
}
