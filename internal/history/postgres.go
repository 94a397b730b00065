package history

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresConfig configures the postgres history driver. DSN wins over the
// discrete fields.
type PostgresConfig struct {
	DSN      string `mapstructure:"dsn"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

func (c PostgresConfig) dsn() string {
	if c.DSN != "" {
		return c.DSN
	}
	port := c.Port
	if port == 0 {
		port = 5432
	}
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, port, c.DBName, sslmode)
}

func openPostgres(c PostgresConfig) (Store, error) {
	db, err := sql.Open("pgx", c.dsn())
	if err != nil {
		return nil, fmt.Errorf("history: open postgres: %w", err)
	}
	s := &sqlStore{
		db:          db,
		driverName:  DriverPostgres,
		table:       defaultTable,
		placeholder: func(n int) string { return fmt.Sprintf("$%d", n) },
	}
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id BIGSERIAL PRIMARY KEY,
		method TEXT NOT NULL,
		url TEXT NOT NULL,
		headers_json TEXT NOT NULL,
		body_json TEXT,
		output_file TEXT,
		only_filter TEXT,
		status_code INTEGER NOT NULL,
		reason TEXT NOT NULL,
		elapsed_ms DOUBLE PRECISION NOT NULL,
		size_bytes INTEGER NOT NULL,
		ran_at TEXT NOT NULL,
		resp_body TEXT NOT NULL
	)`, s.table)
	if _, err := db.Exec(ddl); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history: ensure postgres schema: %w", err)
	}
	return s, nil
}
