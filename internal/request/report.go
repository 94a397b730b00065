package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/yousseftechdev/postmaker/internal/history"
)

// renderBody pretty-prints the response body when it parses as JSON and
// returns the raw text otherwise.
func renderBody(raw []byte) string {
	if json.Valid(raw) {
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err == nil {
			return buf.String()
		}
	}
	return string(raw)
}

func marshalIndentOr(v interface{}, fallback string) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fallback
	}
	return string(b)
}

// writeReport writes the fixed textual response report to path. A failure here
// is reported by the caller but never fatal to the dispatch.
func writeReport(path, method string, status int, reason string, respHeaders map[string]string, body string) error {
	report := fmt.Sprintf(`Request Method: %s
Status: %d %s
============================
Headers:
%s
============================
Body:
%s`, method, status, reason, marshalIndentOr(respHeaders, "{}"), body)
	if err := os.WriteFile(path, []byte(report), 0o600); err != nil {
		return fmt.Errorf("request: write output file %s: %w", path, err)
	}
	return nil
}

// printPreview displays the would-be request before confirmation or dry-run.
func printPreview(w io.Writer, method, url string, headers map[string]string, body interface{}) {
	fmt.Fprintln(w, "REQUEST PREVIEW")
	fmt.Fprintf(w, "Method: %s\n", method)
	fmt.Fprintf(w, "URL: %s\n", url)
	fmt.Fprintf(w, "Headers: %s\n", marshalIndentOr(headers, "{}"))
	if body != nil {
		fmt.Fprintf(w, "Data: %s\n", marshalIndentOr(body, "<unrenderable>"))
	} else {
		fmt.Fprintln(w, "Data: null")
	}
}

// printResponse renders the completed exchange, honoring the only-filter
// ("body", "headers", "status", empty = all).
func printResponse(w io.Writer, rec history.Record, respHeaders map[string]string) {
	showAll := rec.Only == ""
	if showAll || rec.Only == "status" {
		fmt.Fprintf(w, "Time: %.2f ms  Size: %s  Status: %d %s\n",
			rec.ElapsedMS, formatSize(rec.SizeBytes), rec.Status, rec.Reason)
	}
	if showAll || rec.Only == "headers" {
		fmt.Fprintln(w, "Headers:")
		fmt.Fprintln(w, marshalIndentOr(respHeaders, "{}"))
	}
	if showAll || rec.Only == "body" {
		fmt.Fprintln(w, "Body:")
		fmt.Fprintln(w, rec.RespBody)
	}
}

func formatSize(num int) string {
	n := float64(num)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if n < 1024.0 {
			return fmt.Sprintf("%.2f %s", n, unit)
		}
		n /= 1024.0
	}
	return fmt.Sprintf("%.2f TB", n)
}
