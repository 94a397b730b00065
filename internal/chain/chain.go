// Package chain runs ordered request sequences loaded from YAML files. Each
// step goes through the regular execution pipeline; a failing step is reported
// and the chain continues with the next one.
package chain

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-viper/mapstructure/v2"
	"github.com/yousseftechdev/postmaker/internal/common"
	"github.com/yousseftechdev/postmaker/internal/request"
	"gopkg.in/yaml.v3"
)

// Step is one named request in a chain. Options carries the same flag bundle
// the CLI accepts, decoded into request.Options before dispatch.
type Step struct {
	Name    string                 `yaml:"name"`
	Request request.Descriptor     `yaml:"request"`
	Options map[string]interface{} `yaml:"options"`
}

// Chain is an ordered list of steps.
type Chain struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Load parses a chain file. A chain without steps is rejected.
func Load(path string) (*Chain, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- chain file named by the user
	if err != nil {
		return nil, fmt.Errorf("chain: read %s: %w", path, err)
	}
	var c Chain
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("chain: parse %s: %w", path, err)
	}
	if len(c.Steps) == 0 {
		return nil, fmt.Errorf("chain: %s contains no steps", path)
	}
	return &c, nil
}

// options decodes the step's flag map.
func (s Step) options() (request.Options, error) {
	var opts request.Options
	if len(s.Options) == 0 {
		return opts, nil
	}
	if err := mapstructure.WeakDecode(s.Options, &opts); err != nil {
		return request.Options{}, fmt.Errorf("chain: step %q options: %w", s.Name, err)
	}
	return opts, nil
}

// Runner executes chains through a shared executor.
type Runner struct {
	Exec      *request.Executor
	Logger    *common.Logger
	Out       io.Writer
	DebugMode bool
}

func (r *Runner) out() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return os.Stdout
}

func (r *Runner) logger() *common.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return common.GetLogger().WithComponent("chain")
}

// Run executes every step in order. Step failures are reported and do not
// stop the chain; the number of failed steps is returned.
func (r *Runner) Run(ctx context.Context, c *Chain) int {
	logger := r.logger()
	failed := 0
	for i, step := range c.Steps {
		name := step.Name
		if name == "" {
			name = fmt.Sprintf("step %d", i+1)
		}
		fmt.Fprintf(r.out(), "=== %s ===\n", name)
		opts, err := step.options()
		if err == nil {
			opts.DebugMode = r.DebugMode
			err = r.Exec.Execute(ctx, step.Request, opts)
		}
		if err != nil {
			failed++
			logger.Error("chain step failed", "step", name, "error", err)
			fmt.Fprintf(r.out(), "Step %q failed: %v\n", name, err)
		}
	}
	return failed
}
