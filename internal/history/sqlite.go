package history

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DbFileName is the default filename for the history database.
const DbFileName = "history.db"

// SqliteConfig configures the sqlite history driver. DSN wins over Path.
type SqliteConfig struct {
	Path string `mapstructure:"path"`
	DSN  string `mapstructure:"dsn"`
}

func openSqlite(c SqliteConfig) (Store, error) {
	dsn := c.DSN
	if dsn == "" {
		path := c.Path
		if path == "" {
			path = DbFileName
		}
		dsn = fmt.Sprintf("file:%s?_busy_timeout=5000&_fk=1", path)
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("history: open sqlite: %w", err)
	}
	// SQLite allows only one writer
	db.SetMaxOpenConns(1)

	s := &sqlStore{
		db:          db,
		driverName:  DriverSqlite,
		table:       defaultTable,
		placeholder: func(int) string { return "?" },
	}
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		method TEXT NOT NULL,
		url TEXT NOT NULL,
		headers_json TEXT NOT NULL,
		body_json TEXT,
		output_file TEXT,
		only_filter TEXT,
		status_code INTEGER NOT NULL,
		reason TEXT NOT NULL,
		elapsed_ms REAL NOT NULL,
		size_bytes INTEGER NOT NULL,
		ran_at TEXT NOT NULL,
		resp_body TEXT NOT NULL
	)`, s.table)
	if _, err := db.Exec(ddl); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history: ensure sqlite schema: %w", err)
	}
	return s, nil
}
