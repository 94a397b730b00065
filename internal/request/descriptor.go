// Package request implements the request-construction and execution pipeline:
// placeholder resolution, auth-header synthesis, target expansion, the
// sequential dispatch loop, response capture, history persistence and
// assertion evaluation.
package request

import (
	"net/http"
	"strings"
)

// Descriptor describes one HTTP request to build and send. URL may name a
// local file of newline-delimited target URLs. Auth is a compact descriptor
// of the form "bearer TOKEN" or "basic USER:PASS".
type Descriptor struct {
	Method  string            `json:"method" yaml:"method" mapstructure:"method"`
	URL     string            `json:"url" yaml:"url" mapstructure:"url"`
	Headers map[string]string `json:"headers,omitempty" yaml:"headers" mapstructure:"headers"`
	Body    interface{}       `json:"data,omitempty" yaml:"body" mapstructure:"data"`
	Auth    string            `json:"auth,omitempty" yaml:"auth" mapstructure:"auth"`
}

// Normalized returns a copy with the method upper-cased (defaulting to GET),
// a non-nil header map, and the body passed through NormalizeBody.
func (d Descriptor) Normalized() Descriptor {
	out := d
	out.Method = strings.ToUpper(strings.TrimSpace(d.Method))
	if out.Method == "" {
		out.Method = http.MethodGet
	}
	if out.Headers == nil {
		out.Headers = map[string]string{}
	}
	out.Body = NormalizeBody(d.Body)
	return out
}

// NormalizeBody applies the single body-presence rule: a JSON object with zero
// keys means "no body" and becomes nil. Every other value, including empty
// arrays, empty strings, zero and false, is preserved as-is.
func NormalizeBody(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		if len(t) == 0 {
			return nil
		}
	case map[string]string:
		if len(t) == 0 {
			return nil
		}
	}
	return v
}
