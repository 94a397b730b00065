package history

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/yousseftechdev/postmaker/internal/common"
)

// sqlStore implements Store over database/sql. The two drivers share DML and
// differ only in placeholder style and schema DDL.
type sqlStore struct {
	db          *sql.DB
	driverName  string
	table       string
	placeholder func(n int) string
}

const defaultTable = "request_history"

func (s *sqlStore) ph(n int) string { return s.placeholder(n) }

func (s *sqlStore) Append(rec Record) error {
	logger := common.GetLogger().WithComponent("history")
	headersJSON, err := json.Marshal(rec.Headers)
	if err != nil {
		return fmt.Errorf("history: marshal headers: %w", err)
	}
	var bodyJSON *string
	if rec.Body != nil {
		b, err := json.Marshal(rec.Body)
		if err != nil {
			return fmt.Errorf("history: marshal body: %w", err)
		}
		sb := string(b)
		bodyJSON = &sb
	}

	q := fmt.Sprintf(`INSERT INTO %s
		(method, url, headers_json, body_json, output_file, only_filter, status_code, reason, elapsed_ms, size_bytes, ran_at, resp_body)
		VALUES (%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s)`,
		s.table,
		s.ph(1), s.ph(2), s.ph(3), s.ph(4), s.ph(5), s.ph(6),
		s.ph(7), s.ph(8), s.ph(9), s.ph(10), s.ph(11), s.ph(12))

	_, err = s.db.Exec(q,
		rec.Method, rec.URL, string(headersJSON), bodyJSON, rec.OutputFile, rec.Only,
		rec.Status, rec.Reason, rec.ElapsedMS, rec.SizeBytes, rec.Date, rec.RespBody)
	if err != nil {
		logger.Error("failed to append history record", "driver", s.driverName, "error", err, "method", rec.Method, "url", rec.URL)
		return fmt.Errorf("history: %s: append record (%s %s): %w", s.driverName, rec.Method, rec.URL, err)
	}
	logger.Debug("history record appended", "method", rec.Method, "url", rec.URL, "status", rec.Status)
	return nil
}

func (s *sqlStore) List() ([]Record, error) {
	q := fmt.Sprintf(`SELECT id, method, url, headers_json, body_json, output_file, only_filter,
		status_code, reason, elapsed_ms, size_bytes, ran_at, resp_body
		FROM %s ORDER BY id ASC`, s.table)

	rows, err := s.db.Query(q)
	if err != nil {
		return nil, fmt.Errorf("history: %s: list records: %w", s.driverName, err)
	}
	defer func() { _ = rows.Close() }()

	var out []Record
	for rows.Next() {
		var rec Record
		var headersJSON string
		var bodyJSON, outputFile, only sql.NullString
		if err := rows.Scan(&rec.ID, &rec.Method, &rec.URL, &headersJSON, &bodyJSON, &outputFile, &only,
			&rec.Status, &rec.Reason, &rec.ElapsedMS, &rec.SizeBytes, &rec.Date, &rec.RespBody); err != nil {
			return nil, fmt.Errorf("history: %s: scan record: %w", s.driverName, err)
		}
		if headersJSON != "" {
			if err := json.Unmarshal([]byte(headersJSON), &rec.Headers); err != nil {
				rec.Headers = map[string]string{}
			}
		}
		if rec.Headers == nil {
			rec.Headers = map[string]string{}
		}
		if bodyJSON.Valid && bodyJSON.String != "" {
			var v interface{}
			if err := json.Unmarshal([]byte(bodyJSON.String), &v); err == nil {
				rec.Body = v
			}
		}
		rec.OutputFile = outputFile.String
		rec.Only = only.String
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: iterate records: %w", err)
	}
	return out, nil
}

func (s *sqlStore) Clear() error {
	if _, err := s.db.Exec(fmt.Sprintf("DELETE FROM %s", s.table)); err != nil {
		return fmt.Errorf("history: %s: clear records: %w", s.driverName, err)
	}
	return nil
}

func (s *sqlStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
