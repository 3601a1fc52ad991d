// Package logger configures slog for the assertion library and hands out
// loggers tagged with the calling subsystem.
package logger

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"sync"

	"github.com/amp-labs/assertthat/envutil"
	"github.com/amp-labs/assertthat/xform"
	"go.uber.org/atomic"
)

// DefaultSubsystem tags every log line that has no subsystem of its own.
const DefaultSubsystem = "assertthat"

var (
	subsystem   = atomic.NewString(DefaultSubsystem) //nolint:gochecknoglobals
	configMutex sync.Mutex                           //nolint:gochecknoglobals
)

type contextKey string

// Options is used to configure logging.
type Options struct {
	Subsystem   string
	JSON        bool
	MinLevel    slog.Level
	LegacyLevel slog.Level
	Output      io.Writer
}

// ConfigureLoggingWithOptions installs a handler built from opts as the slog
// default and redirects the legacy log package into it. Concurrent calls
// are serialized.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.MinLevel}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(opts.Output, handlerOpts)
	}

	handler = &slogErrorLogger{inner: handler}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	def := log.Default()
	*def = *slog.NewLogLogger(handler, opts.LegacyLevel)

	if opts.Subsystem != "" {
		subsystem.Store(opts.Subsystem)
	}

	return logger
}

// Option is a functional option for ConfigureLogging.
type Option func(*Options)

// WithOutput overrides the destination picked from LOG_OUTPUT.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Output = w
	}
}

// WithLevel overrides the level picked from LOG_LEVEL.
func WithLevel(level slog.Level) Option {
	return func(o *Options) {
		o.MinLevel = level
	}
}

// ConfigureLogging reads LOG_JSON, LOG_LEVEL, LEGACY_LOG_LEVEL and
// LOG_OUTPUT from the environment, applies opts on top, and installs the
// result. Malformed variables fall back to their defaults.
func ConfigureLogging(app string, opts ...Option) *slog.Logger {
	outputName := envutil.String("LOG_OUTPUT").
		Map(xform.TrimString).
		Map(xform.OneOf("stdout", "stderr"))

	output := envutil.Map(outputName, func(name string) (io.Writer, error) {
		if name == "stderr" {
			return os.Stderr, nil
		}

		return os.Stdout, nil
	})

	options := Options{
		Subsystem:   app,
		JSON:        envutil.Bool("LOG_JSON").ValueOrElse(false),
		MinLevel:    envutil.SlogLevel("LOG_LEVEL").ValueOrElse(slog.LevelInfo),
		LegacyLevel: envutil.SlogLevel("LEGACY_LOG_LEVEL").ValueOrElse(slog.LevelInfo),
		Output:      output.ValueOrElse(os.Stdout),
	}

	for _, o := range opts {
		o(&options)
	}

	return ConfigureLoggingWithOptions(options)
}

// WithMuted returns a context whose loggers discard everything when muted
// is true.
func WithMuted(ctx context.Context, muted bool) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("mute"), muted)
}

func isMuted(ctx context.Context) bool {
	muted, ok := ctx.Value(contextKey("mute")).(bool)

	return ok && muted
}

// WithSubsystem overrides the subsystem for loggers obtained from ctx.
func WithSubsystem(ctx context.Context, name string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("subsystem"), name)
}

// GetSubsystem returns the subsystem stored in ctx, or the configured
// default.
func GetSubsystem(ctx context.Context) string { //nolint:contextcheck
	if ctx == nil {
		ctx = context.Background()
	}

	if val, ok := ctx.Value(contextKey("subsystem")).(string); ok {
		return val
	}

	return subsystem.Load()
}

// With returns a context carrying extra key-value pairs that every logger
// obtained from it will include.
func With(ctx context.Context, values ...any) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	if len(values) == 0 {
		return ctx
	}

	vals := append(getValues(ctx), values...)

	return context.WithValue(ctx, contextKey("loggerValues"), vals)
}

func getValues(ctx context.Context) []any {
	vals, _ := ctx.Value(contextKey("loggerValues")).([]any)

	return vals
}

func firstContext(ctx ...context.Context) context.Context {
	for _, c := range ctx {
		if c != nil {
			return c
		}
	}

	return context.Background()
}

type nullHandler struct{}

func (n *nullHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (n *nullHandler) Handle(context.Context, slog.Record) error { return nil }
func (n *nullHandler) WithAttrs([]slog.Attr) slog.Handler        { return n }
func (n *nullHandler) WithGroup(string) slog.Handler             { return n }

var nullLogger = slog.New(&nullHandler{}) //nolint:gochecknoglobals

// Get returns the default logger tagged with the subsystem and any values
// attached through With. Only the first non-nil context is consulted.
//
//nolint:contextcheck
func Get(ctx ...context.Context) *slog.Logger {
	realCtx := firstContext(ctx...)

	if isMuted(realCtx) {
		return nullLogger
	}

	logger := slog.Default().With("subsystem", GetSubsystem(realCtx))

	if vals := getValues(realCtx); len(vals) > 0 {
		logger = logger.With(vals...)
	}

	return logger
}
