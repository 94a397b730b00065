package request

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tidwall/gjson"
	"github.com/yousseftechdev/postmaker/internal/assertion"
	"github.com/yousseftechdev/postmaker/internal/auth"
	"github.com/yousseftechdev/postmaker/internal/common"
	"github.com/yousseftechdev/postmaker/internal/history"
	"github.com/yousseftechdev/postmaker/internal/script"
	"github.com/yousseftechdev/postmaker/internal/vars"
)

// VarSource loads the variable map at the start of an execution cycle and
// persists it back when the caller opts in.
type VarSource interface {
	Load() (vars.Map, error)
	Save(m vars.Map) error
	Set(name, value string) error
}

// Executor orchestrates resolution, auth synthesis, target expansion and the
// sequential dispatch loop. All collaborators are injected; the zero value is
// not usable.
type Executor struct {
	Vars      VarSource
	History   history.Store
	Transport Transport
	Scripts   *script.Runner
	Logger    *common.Logger

	// Out receives user-facing output (previews, responses, reports).
	Out io.Writer
	// Prompt supplies values for missing variables in fill-vars mode.
	Prompt vars.MissingFunc
	// Confirm gates the preview send. Returning false cancels the iteration.
	Confirm func(prompt string) bool
	// Sleep paces repeat iterations; overridable for tests.
	Sleep func(d time.Duration)
	// Now stamps response records; overridable for tests.
	Now func() time.Time
}

func (e *Executor) out() io.Writer {
	if e.Out != nil {
		return e.Out
	}
	return os.Stdout
}

func (e *Executor) logger() *common.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return common.GetLogger().WithComponent("executor")
}

func (e *Executor) sleep(d time.Duration) {
	if e.Sleep != nil {
		e.Sleep(d)
		return
	}
	time.Sleep(d)
}

func (e *Executor) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// Execute runs the full pipeline for one descriptor: expand targets, then for
// each target dispatch Repeat times with IntervalMs pacing between iterations.
// A strict-mode missing variable aborts the whole call; every other failure
// aborts only the current iteration and is reported.
func (e *Executor) Execute(ctx context.Context, d Descriptor, opts Options) error {
	opts = opts.normalized()
	logger := e.logger().WithRequest(d.Method, d.URL)

	vm, err := e.Vars.Load()
	if err != nil {
		return err
	}
	var onMissing vars.MissingFunc
	if opts.FillVars {
		onMissing = e.Prompt
		if onMissing == nil {
			return errors.New("request: fill-vars requested but no prompt is wired")
		}
	}

	targets, err := ExpandTargets(d.URL)
	if err != nil {
		return err
	}
	logger.Debug("expanded targets", "count", len(targets), "repeat", opts.Repeat)

	for _, target := range targets {
		for i := 0; i < opts.Repeat; i++ {
			err := e.runOnce(ctx, d, target, opts, vm, onMissing)
			if err != nil {
				var mv *vars.MissingVariableError
				if errors.As(err, &mv) {
					// Strict resolution failure: no partial dispatch.
					return err
				}
				logger.Error("iteration failed", "target", target, "iteration", i+1, "error", err)
				fmt.Fprintf(e.out(), "Error: %v\n", err)
			}
			if i < opts.Repeat-1 && opts.IntervalMs > 0 {
				e.sleep(time.Duration(opts.IntervalMs) * time.Millisecond)
			}
		}
	}

	if opts.FillVars && opts.SaveVars {
		if err := e.Vars.Save(vm); err != nil {
			return err
		}
	}
	return nil
}

// runOnce performs one iteration against one target.
func (e *Executor) runOnce(ctx context.Context, d Descriptor, target string, opts Options, vm vars.Map, onMissing vars.MissingFunc) error {
	// 1. Per-iteration placeholder resolution: captured values apply to later
	// iterations because vm is shared across the whole Execute call.
	method, err := vars.ResolveString(d.Method, vm, onMissing)
	if err != nil {
		return err
	}
	url, err := vars.ResolveString(target, vm, onMissing)
	if err != nil {
		return err
	}
	headers, err := vars.ResolveStringMap(d.Headers, vm, onMissing)
	if err != nil {
		return err
	}
	body, err := vars.Resolve(d.Body, vm, onMissing)
	if err != nil {
		return err
	}

	// 2. Normalize.
	norm := Descriptor{Method: method, URL: url, Headers: headers, Body: body}.Normalized()

	// 3. Auth wins over colliding request headers.
	authSpec := opts.AuthOverride
	if authSpec == "" {
		authSpec = d.Auth
	}
	authHeaders, err := auth.SynthesizeSpec(authSpec)
	if err != nil {
		return fmt.Errorf("auth error: %w", err)
	}
	for k, v := range authHeaders {
		norm.Headers[k] = v
	}

	// 4. Preview / dry-run gate.
	if opts.Preview || (opts.DryRun && opts.DebugMode) {
		printPreview(e.out(), norm.Method, norm.URL, norm.Headers, norm.Body)
	}
	if opts.DryRun {
		fmt.Fprintln(e.out(), "[DRY RUN] No request sent.")
		return nil
	}
	if opts.Preview {
		if e.Confirm == nil || !e.Confirm("Send this request? (y/N): ") {
			fmt.Fprintln(e.out(), "Cancelled.")
			return nil
		}
	}

	// 5. Dispatch.
	var resp *Response
	var elapsedMS float64
	if opts.Mock && opts.DebugMode {
		resp, elapsedMS = mockResponse()
	} else {
		start := e.now()
		resp, err = e.Transport.Send(ctx, norm.Method, norm.URL, norm.Headers, norm.Body)
		if err != nil {
			return err
		}
		elapsedMS = float64(e.now().Sub(start).Microseconds()) / 1000.0
	}
	bodyText := renderBody(resp.RawBody)

	if opts.Verbose && opts.DebugMode {
		printPreview(e.out(), norm.Method, norm.URL, norm.Headers, norm.Body)
		fmt.Fprintf(e.out(), "Response status: %d %s\n", resp.Status, resp.Reason)
		fmt.Fprintf(e.out(), "Response headers: %s\n", marshalIndentOr(resp.Headers, "{}"))
	}

	rec := history.Record{
		Method:     norm.Method,
		URL:        norm.URL,
		Headers:    norm.Headers,
		Body:       norm.Body,
		OutputFile: opts.OutputFile,
		Only:       opts.Only,
		Status:     resp.Status,
		Reason:     resp.Reason,
		ElapsedMS:  elapsedMS,
		SizeBytes:  len(resp.RawBody),
		Date:       e.now().UTC().Format(time.RFC3339),
		RespBody:   bodyText,
	}

	printResponse(e.out(), rec, resp.Headers)

	// 6. Output file report: reported, non-fatal.
	if opts.OutputFile != "" {
		if werr := writeReport(opts.OutputFile, norm.Method, resp.Status, resp.Reason, resp.Headers, bodyText); werr != nil {
			e.logger().Warn("failed to write output file", "path", opts.OutputFile, "error", werr)
			fmt.Fprintf(e.out(), "Failed to write output file %q: %v\n", opts.OutputFile, werr)
		} else {
			fmt.Fprintf(e.out(), "Response written to %q\n", opts.OutputFile)
		}
	}

	// 7. History is always recorded unless skipped under the debug flag.
	if !(opts.SkipHistory && opts.DebugMode) {
		if herr := e.History.Append(rec); herr != nil {
			e.logger().Error("failed to append history", "error", herr)
			fmt.Fprintf(e.out(), "History error: %v\n", herr)
		}
	}

	// 8. Assertion and its optional follow-up script.
	if opts.Assertion != "" {
		e.evaluateAssertion(opts.Assertion, rec)
	}

	// 9. Response captures back into the variable store.
	if len(opts.Captures) > 0 {
		e.capture(opts.Captures, bodyText, vm)
	}
	return nil
}

func (e *Executor) evaluateAssertion(condition string, rec history.Record) {
	a, err := assertion.Parse(condition)
	if err != nil {
		e.logger().Warn("invalid assertion", "condition", condition, "error", err)
		fmt.Fprintf(e.out(), "Assertion error: %v\n", err)
		return
	}
	if !a.Evaluate(rec) {
		fmt.Fprintf(e.out(), "Assertion failed: %s (status=%d)\n", a.Describe(), rec.Status)
		return
	}
	fmt.Fprintf(e.out(), "Assertion passed: %s\n", a.Describe())
	if a.Script == 0 {
		return
	}
	if e.Scripts == nil || !e.Scripts.Exists(a.Script) {
		fmt.Fprintf(e.out(), "Script %d not found.\n", a.Script)
		return
	}
	if err := e.Scripts.Run(a.Script); err != nil {
		e.logger().Warn("assertion script failed", "id", a.Script, "error", err)
		fmt.Fprintf(e.out(), "Script %d failed: %v\n", a.Script, err)
	}
}

// capture extracts gjson paths from the response body into the variable store
// and the in-memory map, so later iterations and future requests can use them.
func (e *Executor) capture(captures map[string]string, body string, vm vars.Map) {
	for name, path := range captures {
		res := gjson.Get(body, path)
		if !res.Exists() {
			fmt.Fprintf(e.out(), "Capture %q: path %q not found in response\n", name, path)
			continue
		}
		vm[name] = res.String()
		if err := e.Vars.Set(name, res.String()); err != nil {
			e.logger().Warn("failed to persist captured variable", "name", name, "error", err)
			fmt.Fprintf(e.out(), "Capture %q: %v\n", name, err)
			continue
		}
		fmt.Fprintf(e.out(), "Captured %q = %q\n", name, res.String())
	}
}
