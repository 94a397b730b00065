package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/yousseftechdev/postmaker/internal/request"
)

// ErrNotCurl is returned when an imported command line does not start with
// the curl binary name.
var ErrNotCurl = errors.New("catalog: not a curl command")

// ParseCurl turns a curl command line into a request descriptor. Recognized
// flags: -X/--request, -H/--header, -d/--data/--data-raw/--data-binary and
// -u/--user (mapped to a basic auth descriptor). The first bare token is the
// URL. A data value that parses as JSON is kept structured.
func ParseCurl(cmdline string) (request.Descriptor, error) {
	tokens, err := splitShell(cmdline)
	if err != nil {
		return request.Descriptor{}, fmt.Errorf("catalog: parse curl command: %w", err)
	}
	if len(tokens) == 0 || tokens[0] != "curl" {
		return request.Descriptor{}, ErrNotCurl
	}

	d := request.Descriptor{Method: "GET", Headers: map[string]string{}}
	next := func(i *int, flag string) (string, error) {
		*i++
		if *i >= len(tokens) {
			return "", fmt.Errorf("catalog: curl flag %s missing its value", flag)
		}
		return tokens[*i], nil
	}

	for i := 1; i < len(tokens); i++ {
		t := tokens[i]
		switch t {
		case "-X", "--request":
			v, err := next(&i, t)
			if err != nil {
				return request.Descriptor{}, err
			}
			d.Method = strings.ToUpper(v)
		case "-H", "--header":
			v, err := next(&i, t)
			if err != nil {
				return request.Descriptor{}, err
			}
			if k, val, found := strings.Cut(v, ":"); found {
				d.Headers[strings.TrimSpace(k)] = strings.TrimSpace(val)
			}
		case "-d", "--data", "--data-raw", "--data-binary":
			v, err := next(&i, t)
			if err != nil {
				return request.Descriptor{}, err
			}
			var parsed interface{}
			if json.Unmarshal([]byte(v), &parsed) == nil {
				d.Body = parsed
			} else {
				d.Body = v
			}
		case "-u", "--user":
			v, err := next(&i, t)
			if err != nil {
				return request.Descriptor{}, err
			}
			d.Auth = "basic " + v
		default:
			if !strings.HasPrefix(t, "-") && d.URL == "" {
				d.URL = t
			}
		}
	}
	if d.URL == "" {
		return request.Descriptor{}, errors.New("catalog: no url in curl command")
	}
	return d, nil
}

// ExportCurl renders a descriptor as a runnable curl command line.
func ExportCurl(d request.Descriptor) string {
	norm := d.Normalized()
	cmd := []string{"curl"}
	if norm.Method != "GET" {
		cmd = append(cmd, "-X", norm.Method)
	}
	keys := make([]string, 0, len(norm.Headers))
	for k := range norm.Headers {
		keys = append(keys, k)
	}
	// Deterministic header order keeps exports diffable.
	sort.Strings(keys)
	for _, k := range keys {
		cmd = append(cmd, "-H", shellQuote(k+": "+norm.Headers[k]))
	}
	if norm.Body != nil {
		var data string
		if s, ok := norm.Body.(string); ok {
			data = s
		} else if b, err := json.Marshal(norm.Body); err == nil {
			data = string(b)
		}
		if data != "" {
			cmd = append(cmd, "-d", shellQuote(data))
		}
	}
	cmd = append(cmd, shellQuote(norm.URL))
	return strings.Join(cmd, " ")
}

// splitShell tokenizes a command line with POSIX-style single quotes, double
// quotes and backslash escapes.
func splitShell(s string) ([]string, error) {
	var tokens []string
	var cur strings.Builder
	inToken := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case ' ', '\t', '\n':
			if inToken {
				tokens = append(tokens, cur.String())
				cur.Reset()
				inToken = false
			}
		case '\\':
			i++
			if i >= len(s) {
				return nil, errors.New("trailing backslash")
			}
			cur.WriteByte(s[i])
			inToken = true
		case '\'':
			end := strings.IndexByte(s[i+1:], '\'')
			if end < 0 {
				return nil, errors.New("unterminated single quote")
			}
			cur.WriteString(s[i+1 : i+1+end])
			i += end + 1
			inToken = true
		case '"':
			i++
			closed := false
			for ; i < len(s); i++ {
				if s[i] == '\\' && i+1 < len(s) {
					i++
					cur.WriteByte(s[i])
					continue
				}
				if s[i] == '"' {
					closed = true
					break
				}
				cur.WriteByte(s[i])
			}
			if !closed {
				return nil, errors.New("unterminated double quote")
			}
			inToken = true
		default:
			cur.WriteByte(c)
			inToken = true
		}
	}
	if inToken {
		tokens = append(tokens, cur.String())
	}
	return tokens, nil
}

// shellQuote single-quotes a token when it contains shell metacharacters.
func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n\"'\\${}[]()<>;&|*?~#") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
