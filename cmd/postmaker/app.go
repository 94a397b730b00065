package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/yousseftechdev/postmaker/internal/catalog"
	"github.com/yousseftechdev/postmaker/internal/common"
	"github.com/yousseftechdev/postmaker/internal/config"
	"github.com/yousseftechdev/postmaker/internal/history"
	"github.com/yousseftechdev/postmaker/internal/request"
	"github.com/yousseftechdev/postmaker/internal/script"
	"github.com/yousseftechdev/postmaker/internal/vars"
)

// app carries the loaded configuration and the stores every command shares.
type app struct {
	cfg     *config.Config
	logger  *common.Logger
	catalog *catalog.Catalog
	vars    *vars.Store
	scripts *script.Runner
	debug   bool
}

var theApp *app

// initApp loads configuration once per invocation; commands call it from RunE
// so --config has been parsed by then.
func initApp(configPath string) (*app, error) {
	if theApp != nil {
		return theApp, nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger := cfg.Logger()
	common.SetDefaultLogger(logger)
	theApp = &app{
		cfg:     cfg,
		logger:  logger,
		catalog: catalog.New(cfg.DataDir),
		vars:    &vars.Store{Path: cfg.VariablesPath()},
		scripts: &script.Runner{Dir: cfg.ScriptsDir()},
		debug:   cfg.DebugMode(),
	}
	if err := theApp.scripts.Ensure(); err != nil {
		logger.Warn("failed to seed assertion scripts", "dir", cfg.ScriptsDir(), "error", err)
	}
	return theApp, nil
}

// openHistory opens the configured history store; callers must Close it.
func (a *app) openHistory() (history.Store, error) {
	return history.Open(a.cfg.HistoryConfig())
}

// executor builds a fully wired executor. The returned closer releases the
// history store.
func (a *app) executor() (*request.Executor, func(), error) {
	store, err := a.openHistory()
	if err != nil {
		return nil, nil, err
	}
	e := &request.Executor{
		Vars:      a.vars,
		History:   store,
		Transport: request.NewTransport(nil),
		Scripts:   a.scripts,
		Logger:    a.logger.WithComponent("executor"),
		Out:       os.Stdout,
		Prompt:    promptValue,
		Confirm:   confirm,
	}
	return e, func() { _ = store.Close() }, nil
}

// promptValue asks interactively for a missing variable.
func promptValue(name string) (string, error) {
	fmt.Printf("Value for %q: ", name)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// confirm asks a y/N question; anything but y/Y declines.
func confirm(prompt string) bool {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}

// parseJSONArg decodes an inline JSON string or, with a leading @, the named
// JSON file. An empty argument yields nil without touching v.
func parseJSONArg(arg string, v interface{}) error {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil
	}
	data := []byte(arg)
	if strings.HasPrefix(arg, "@") {
		file := strings.TrimPrefix(arg, "@")
		var err error
		data, err = os.ReadFile(file) // #nosec G304 -- file named by the user on the command line
		if err != nil {
			return fmt.Errorf("read %s: %w", file, err)
		}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("invalid JSON %q: %w", arg, err)
	}
	return nil
}
