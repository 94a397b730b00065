// Package assertion checks simple conditions against a completed response
// record and carries an optional follow-up script id.
package assertion

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yousseftechdev/postmaker/internal/history"
	"github.com/yousseftechdev/postmaker/internal/script"
)

// Kind enumerates the supported condition kinds.
type Kind string

const (
	KindStatus       Kind = "status"
	KindBodyContains Kind = "body_contains"
)

// InvalidAssertionError reports an unparseable or unrecognized condition.
type InvalidAssertionError struct {
	Condition string
}

func (e *InvalidAssertionError) Error() string {
	return fmt.Sprintf("assertion: unrecognized condition %q (use status=N or body_contains=S)", e.Condition)
}

// Assertion is a parsed condition of the form kind=value[,script].
type Assertion struct {
	Kind   Kind
	Value  string
	Script int // 0 means no follow-up script
}

// Parse splits cond[,script] and validates the condition kind. A trailing
// script part that is not all-digits or outside [1,5] is ignored rather than
// rejected; the condition itself still evaluates.
func Parse(condition string) (Assertion, error) {
	cond := strings.TrimSpace(condition)
	scriptPart := ""
	if c, s, found := strings.Cut(cond, ","); found {
		cond = strings.TrimSpace(c)
		scriptPart = strings.TrimSpace(s)
	}

	kindStr, value, found := strings.Cut(cond, "=")
	if !found {
		return Assertion{}, &InvalidAssertionError{Condition: condition}
	}

	a := Assertion{Value: value}
	switch Kind(kindStr) {
	case KindStatus:
		if _, err := strconv.Atoi(value); err != nil {
			return Assertion{}, &InvalidAssertionError{Condition: condition}
		}
		a.Kind = KindStatus
	case KindBodyContains:
		a.Kind = KindBodyContains
	default:
		return Assertion{}, &InvalidAssertionError{Condition: condition}
	}

	// Script ids are all-digits; signed forms like "+3" are not ids.
	if isDigits(scriptPart) {
		if n, err := strconv.Atoi(scriptPart); err == nil && n >= script.MinID && n <= script.MaxID {
			a.Script = n
		}
	}
	return a, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Evaluate checks the assertion against a completed record.
func (a Assertion) Evaluate(rec history.Record) bool {
	switch a.Kind {
	case KindStatus:
		expected, err := strconv.Atoi(a.Value)
		if err != nil {
			return false
		}
		return rec.Status == expected
	case KindBodyContains:
		return strings.Contains(rec.RespBody, a.Value)
	default:
		return false
	}
}

// Describe renders a short human-readable form for pass/fail reporting.
func (a Assertion) Describe() string {
	return fmt.Sprintf("%s=%s", a.Kind, a.Value)
}
