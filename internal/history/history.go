package history

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// Record is one completed (or mock) exchange. It is immutable after creation;
// the store exclusively owns persisted records once appended.
type Record struct {
	ID         int64             `json:"id,omitempty"`
	Method     string            `json:"method"`
	URL        string            `json:"url"`
	Headers    map[string]string `json:"headers"`
	Body       interface{}       `json:"data"`
	OutputFile string            `json:"output_file,omitempty"`
	Only       string            `json:"only,omitempty"`
	Status     int               `json:"status"`
	Reason     string            `json:"reason"`
	ElapsedMS  float64           `json:"elapsed"`
	SizeBytes  int               `json:"size"`
	Date       string            `json:"date"`
	RespBody   string            `json:"body"`
}

// Store is the append-only response-record log.
type Store interface {
	Append(rec Record) error
	List() ([]Record, error)
	Clear() error
	Close() error
}

// Config selects and configures a history driver.
type Config struct {
	Driver string                 `mapstructure:"driver"`
	Spec   map[string]interface{} `mapstructure:"spec"`
}

// DriverSqlite is the default history backend.
const DriverSqlite = "sqlite"

// DriverPostgres stores history in PostgreSQL via the pgx stdlib driver.
const DriverPostgres = "postgresql"

// Open connects a history store for the configured driver. An empty driver
// selects sqlite.
func Open(c Config) (Store, error) {
	driver := strings.ToLower(strings.TrimSpace(c.Driver))
	switch driver {
	case "", DriverSqlite:
		var sc SqliteConfig
		if err := mapstructure.Decode(c.Spec, &sc); err != nil {
			return nil, fmt.Errorf("history: decode sqlite config: %w", err)
		}
		return openSqlite(sc)
	case DriverPostgres, "postgres":
		var pc PostgresConfig
		if err := mapstructure.Decode(c.Spec, &pc); err != nil {
			return nil, fmt.Errorf("history: decode postgres config: %w", err)
		}
		return openPostgres(pc)
	default:
		return nil, fmt.Errorf("history: unsupported driver %q", c.Driver)
	}
}
