package mcuschema

import "context"

// Mode controls how unknown and missing fields are handled.
type Mode int

const (
	ModeStrict     Mode = iota // Reject unknown fields and missing required fields.
	ModePermissive             // Log unknown and missing fields and keep building.
)

func (m Mode) String() string {
	switch m {
	case ModeStrict:
		return "strict"
	case ModePermissive:
		return "permissive"
	default:
		return "unknown"
	}
}

// Logger receives diagnostics produced while building records. kv holds
// alternating keys and values.
type Logger interface {
	Debug(msg string, kv ...any)
	Warn(msg string, kv ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}

// BuildOpt bundles construction options. The zero value is strict mode
// without logging.
type BuildOpt struct {
	Mode   Mode
	Logger Logger
}

// Strict reports whether unknown and missing-required fields abort.
func (o BuildOpt) Strict() bool { return o.Mode == ModeStrict }

// Log returns the configured Logger or a no-op one.
func (o BuildOpt) Log() Logger {
	if o.Logger == nil {
		return nopLogger{}
	}
	return o.Logger
}

// DocumentOpt bundles document reading limits.
type DocumentOpt struct {
	MaxDepth int   // 0 means unlimited.
	MaxBytes int64 // 0 means unlimited.
	// OnDuplicateAttr controls attributes whose names differ only by case.
	OnDuplicateAttr Severity
	// Logger receives Warn-level duplicate attribute reports. Optional.
	Logger Logger
}

// Severity expresses the severity level for issues.
type Severity int

const (
	Error Severity = iota
	Warn
	Ignore
)

// ---- Build-time context options ----

type contextKey int

const (
	_ctxKeyBuildOpt contextKey = iota
)

// WithOptions returns a child context carrying opt. Every record built with the
// returned context, including nested records, observes opt.
func WithOptions(ctx context.Context, opt BuildOpt) context.Context {
	return context.WithValue(ctx, _ctxKeyBuildOpt, opt)
}

// OptionsFrom returns the BuildOpt carried by ctx, or the strict default.
func OptionsFrom(ctx context.Context) BuildOpt {
	if ctx == nil {
		return BuildOpt{}
	}
	opt, _ := ctx.Value(_ctxKeyBuildOpt).(BuildOpt)
	return opt
}

// WithMode is a shorthand that keeps the current logger and replaces the mode.
func WithMode(ctx context.Context, m Mode) context.Context {
	opt := OptionsFrom(ctx)
	opt.Mode = m
	return WithOptions(ctx, opt)
}
