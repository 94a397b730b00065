// Package script runs the numbered follow-up scripts an assertion may trigger.
package script

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/yousseftechdev/postmaker/internal/common"
)

// MinID and MaxID bound the valid script identifiers.
const (
	MinID = 1
	MaxID = 5
)

// Runner executes numbered scripts (<id>.sh) from Dir, synchronously.
type Runner struct {
	Dir string
}

// Path returns the on-disk path for a script id without checking existence.
func (r *Runner) Path(id int) string {
	return filepath.Join(r.Dir, fmt.Sprintf("%d.sh", id))
}

// Exists reports whether the script file for id is present.
func (r *Runner) Exists(id int) bool {
	st, err := os.Stat(r.Path(id))
	return err == nil && !st.IsDir()
}

// Run executes the script for id and waits for it to finish. Stdout/stderr are
// inherited so the script's output lands in the user's terminal.
func (r *Runner) Run(id int) error {
	if id < MinID || id > MaxID {
		return fmt.Errorf("script: id %d out of range [%d,%d]", id, MinID, MaxID)
	}
	path := r.Path(id)
	if !r.Exists(id) {
		return fmt.Errorf("script: %s not found", path)
	}
	logger := common.GetLogger().WithComponent("script")
	logger.Info("running script", "id", id, "path", path)
	cmd := exec.Command("sh", path)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("script: run %s: %w", path, err)
	}
	return nil
}

// Ensure creates the scripts directory and seeds placeholder scripts for every
// id that does not have one yet, mirroring first-run behavior.
func (r *Runner) Ensure() error {
	if err := os.MkdirAll(r.Dir, 0o750); err != nil {
		return fmt.Errorf("script: mkdir %s: %w", r.Dir, err)
	}
	for i := MinID; i <= MaxID; i++ {
		path := r.Path(i)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		content := fmt.Sprintf("#!/bin/sh\n# %d.sh - user script\necho \"Script %d ran\"\n", i, i)
		if err := os.WriteFile(path, []byte(content), 0o750); err != nil { // #nosec G306 -- scripts must be executable
			return fmt.Errorf("script: seed %s: %w", path, err)
		}
	}
	return nil
}
