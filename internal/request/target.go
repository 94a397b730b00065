package request

import (
	"fmt"
	"os"
	"strings"
)

// ExpandTargets resolves a url argument into one or more target URLs. When the
// trimmed string names an existing regular file, each non-blank trimmed line of
// that file is one target, in file order. Otherwise the string itself is the
// single target. The file check happens once per descriptor, before per-target
// placeholder resolution.
func ExpandTargets(url string) ([]string, error) {
	trimmed := strings.TrimSpace(url)
	st, err := os.Stat(trimmed)
	if err != nil || st.IsDir() {
		return []string{trimmed}, nil
	}
	data, err := os.ReadFile(trimmed) // #nosec G304 -- path supplied by the user on purpose
	if err != nil {
		return nil, fmt.Errorf("request: read url file %s: %w", trimmed, err)
	}
	var targets []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			targets = append(targets, line)
		}
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("request: url file %s contains no targets", trimmed)
	}
	return targets, nil
}
