package history

import (
	"path/filepath"
	"strings"
	"testing"
)

func openTestStore(t *testing.T) Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.db")
	st, err := Open(Config{Driver: DriverSqlite, Spec: map[string]interface{}{"path": path}})
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func sampleRecord() Record {
	return Record{
		Method:    "GET",
		URL:       "https://example.com/api",
		Headers:   map[string]string{"Accept": "application/json"},
		Body:      map[string]interface{}{"a": float64(1)},
		Only:      "body",
		Status:    200,
		Reason:    "OK",
		ElapsedMS: 12.5,
		SizeBytes: 42,
		Date:      "2024-01-02T03:04:05Z",
		RespBody:  `{"ok":true}`,
	}
}

func TestSqliteStore_AppendAndList(t *testing.T) {
	st := openTestStore(t)
	if err := st.Append(sampleRecord()); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	rec2 := sampleRecord()
	rec2.Method = "POST"
	rec2.Body = nil
	rec2.Status = 201
	if err := st.Append(rec2); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	recs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Method != "GET" || recs[1].Method != "POST" {
		t.Fatalf("expected append order preserved, got %s then %s", recs[0].Method, recs[1].Method)
	}
	if recs[0].Headers["Accept"] != "application/json" {
		t.Fatalf("headers not round-tripped: %#v", recs[0].Headers)
	}
	body, ok := recs[0].Body.(map[string]interface{})
	if !ok || body["a"] != float64(1) {
		t.Fatalf("body not round-tripped: %#v", recs[0].Body)
	}
	if recs[1].Body != nil {
		t.Fatalf("expected nil body preserved, got %#v", recs[1].Body)
	}
	if recs[0].ElapsedMS != 12.5 || recs[0].SizeBytes != 42 {
		t.Fatalf("timing fields not round-tripped: %#v", recs[0])
	}
}

func TestSqliteStore_Clear(t *testing.T) {
	st := openTestStore(t)
	if err := st.Append(sampleRecord()); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if err := st.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	recs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected empty history, got %d records", len(recs))
	}
}

func TestOpen_DefaultsToSqlite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	st, err := Open(Config{Spec: map[string]interface{}{"path": path}})
	if err != nil {
		t.Fatalf("open with empty driver: %v", err)
	}
	defer func() { _ = st.Close() }()
}

func TestOpen_UnknownDriver(t *testing.T) {
	if _, err := Open(Config{Driver: "mongodb"}); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

func TestSqliteStore_ErrorsNameTheDriver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	st, err := Open(Config{Driver: DriverSqlite, Spec: map[string]interface{}{"path": path}})
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	_, err = st.List()
	if err == nil {
		t.Fatalf("expected error on closed store")
	}
	if !strings.Contains(err.Error(), DriverSqlite) {
		t.Fatalf("expected driver in error context, got %q", err)
	}
}
