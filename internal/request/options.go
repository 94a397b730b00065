package request

// Options is the dispatch option bundle for one Execute call. DebugMode is the
// process debug flag carried explicitly; it gates Mock, the DryRun preview,
// SkipHistory and Verbose, never the ordinary send path.
type Options struct {
	// OutputFile, when set, receives a fixed textual report of the response.
	OutputFile string `mapstructure:"output"`
	// Only filters the displayed response part: "body", "headers" or "status".
	// Empty shows everything.
	Only string `mapstructure:"only"`
	// AuthOverride replaces the descriptor's own auth descriptor for this call.
	AuthOverride string `mapstructure:"auth"`
	// Assertion is a condition string of the form kind=value[,script].
	Assertion string `mapstructure:"assertion"`
	// Preview shows the would-be request and asks for confirmation.
	Preview bool `mapstructure:"preview"`
	// FillVars prompts for missing variables instead of failing strictly.
	FillVars bool `mapstructure:"fill_vars"`
	// SaveVars persists variables captured by prompting back to the store.
	SaveVars bool `mapstructure:"save_vars"`
	// SkipHistory suppresses the history append, honored only in debug mode.
	SkipHistory bool `mapstructure:"no_history"`
	// DryRun stops before dispatch: no transport call, no history.
	DryRun bool `mapstructure:"dry_run"`
	// Mock synthesizes a response without a network call (debug mode only).
	Mock bool `mapstructure:"mock"`
	// Repeat sends the request N times per target, sequentially.
	Repeat int `mapstructure:"repeat"`
	// IntervalMs paces repeats; no sleep after the final iteration.
	IntervalMs int `mapstructure:"interval"`
	// Verbose prints full request/response detail (debug mode only).
	Verbose bool `mapstructure:"verbose"`
	// DebugMode is the explicit process debug flag.
	DebugMode bool `mapstructure:"-"`
	// Captures maps variable names to gjson paths extracted from the response
	// body and persisted to the variable store after a successful exchange.
	Captures map[string]string `mapstructure:"captures"`
}

// normalized clamps Repeat and IntervalMs into their valid ranges.
func (o Options) normalized() Options {
	if o.Repeat < 1 {
		o.Repeat = 1
	}
	if o.IntervalMs < 0 {
		o.IntervalMs = 0
	}
	return o
}
