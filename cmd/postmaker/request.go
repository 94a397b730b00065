package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yousseftechdev/postmaker/internal/request"
)

// addDescriptorFlags registers the flags that shape the request itself.
func addDescriptorFlags(fs *pflag.FlagSet) {
	fs.StringP("method", "X", "GET", "HTTP method")
	fs.StringP("url", "u", "", "target URL, or a file of newline-delimited URLs")
	fs.StringP("headers", "H", "", "headers as inline JSON or @file.json")
	fs.StringP("data", "d", "", "request body as inline JSON or @file.json")
	fs.StringP("auth", "a", "", `auth descriptor: "bearer TOKEN" or "basic USER:PASS"`)
}

// addDispatchFlags registers the flags that shape one dispatch.
func addDispatchFlags(fs *pflag.FlagSet) {
	fs.StringP("output", "o", "", "write a response report to this file")
	fs.String("only", "", "show only part of the response: body, headers or status")
	fs.String("assert", "", "assertion: status=N or body_contains=S, optionally ,scriptID")
	fs.Bool("preview", false, "show the request and confirm before sending")
	fs.Bool("fill-vars", false, "prompt for missing variables instead of failing")
	fs.Bool("save-vars", false, "persist variables captured by prompting")
	fs.Bool("no-history", false, "skip the history record (debug mode only)")
	fs.Bool("dry-run", false, "build the request but do not send it")
	fs.Bool("mock", false, "synthesize a response without a network call (debug mode only)")
	fs.Int("repeat", 1, "send the request N times per target")
	fs.Int("interval", 0, "milliseconds between repeats")
	fs.BoolP("verbose", "v", false, "print full request and response detail (debug mode only)")
	fs.StringToString("capture", nil, "store response values as variables: name=gjson.path")
}

// descriptorFromFlags builds a request descriptor from the shared flag set.
func descriptorFromFlags(fs *pflag.FlagSet) (request.Descriptor, error) {
	var d request.Descriptor
	d.Method, _ = fs.GetString("method")
	d.URL, _ = fs.GetString("url")
	d.Auth, _ = fs.GetString("auth")

	headersArg, _ := fs.GetString("headers")
	if headersArg != "" {
		d.Headers = map[string]string{}
		if err := parseJSONArg(headersArg, &d.Headers); err != nil {
			return request.Descriptor{}, err
		}
	}
	dataArg, _ := fs.GetString("data")
	if dataArg != "" {
		var body interface{}
		if err := parseJSONArg(dataArg, &body); err != nil {
			return request.Descriptor{}, err
		}
		d.Body = body
	}
	return d, nil
}

// optionsFromFlags builds the dispatch option bundle, carrying the persisted
// debug flag explicitly.
func optionsFromFlags(fs *pflag.FlagSet, debug bool) request.Options {
	var o request.Options
	o.OutputFile, _ = fs.GetString("output")
	o.Only, _ = fs.GetString("only")
	o.Assertion, _ = fs.GetString("assert")
	o.Preview, _ = fs.GetBool("preview")
	o.FillVars, _ = fs.GetBool("fill-vars")
	o.SaveVars, _ = fs.GetBool("save-vars")
	o.SkipHistory, _ = fs.GetBool("no-history")
	o.DryRun, _ = fs.GetBool("dry-run")
	o.Mock, _ = fs.GetBool("mock")
	o.Repeat, _ = fs.GetInt("repeat")
	o.IntervalMs, _ = fs.GetInt("interval")
	o.Verbose, _ = fs.GetBool("verbose")
	o.Captures, _ = fs.GetStringToString("capture")
	o.DebugMode = debug
	return o
}

var requestCmd = &cobra.Command{
	Use:   "request",
	Short: "Build and send a single HTTP request",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		d, err := descriptorFromFlags(cmd.Flags())
		if err != nil {
			return err
		}
		opts := optionsFromFlags(cmd.Flags(), a.debug)
		exec, closeStore, err := a.executor()
		if err != nil {
			return err
		}
		defer closeStore()
		return exec.Execute(context.Background(), d, opts)
	},
}

func init() {
	addDescriptorFlags(requestCmd.Flags())
	addDispatchFlags(requestCmd.Flags())
	_ = requestCmd.MarkFlagRequired("url")
}
