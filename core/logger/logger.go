package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

type format int

const (
	formatText format = iota
	formatJSON
	formatTint
)

// ContextExtractor pulls a request-scoped attribute out of a context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

type config struct {
	level      slog.Level
	output     io.Writer
	format     format
	noColor    bool
	attrs      []slog.Attr
	extractors []ContextExtractor
	opts       *slog.HandlerOptions
}

// Option configures a logger created by New.
type Option func(*config)

// New creates a slog.Logger. Without options it writes text at info level to stdout.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		level:  slog.LevelInfo,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var h slog.Handler
	switch cfg.format {
	case formatTint:
		h = tint.NewHandler(cfg.output, &tint.Options{
			Level:      cfg.level,
			NoColor:    cfg.noColor,
			TimeFormat: time.TimeOnly,
		})
	case formatJSON:
		h = slog.NewJSONHandler(cfg.output, cfg.handlerOptions())
	default:
		h = slog.NewTextHandler(cfg.output, cfg.handlerOptions())
	}

	if len(cfg.extractors) > 0 {
		h = &contextHandler{Handler: h, extractors: cfg.extractors}
	}
	if len(cfg.attrs) > 0 {
		h = h.WithAttrs(cfg.attrs)
	}
	return slog.New(h)
}

func (c *config) handlerOptions() *slog.HandlerOptions {
	if c.opts != nil {
		opts := *c.opts
		if opts.Level == nil {
			opts.Level = c.level
		}
		return &opts
	}
	return &slog.HandlerOptions{Level: c.level}
}

// WithDevelopment configures colored console output at debug level.
func WithDevelopment(service string) Option {
	return func(c *config) {
		c.format = formatTint
		c.level = slog.LevelDebug
		c.attrs = append(c.attrs, slog.String("service", service))
	}
}

// WithProduction configures JSON output at info level.
func WithProduction(service string) Option {
	return func(c *config) {
		c.format = formatJSON
		c.level = slog.LevelInfo
		c.attrs = append(c.attrs, slog.String("service", service))
	}
}

// WithLevel sets the minimum level.
func WithLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithOutput sets the destination writer.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithJSONFormatter switches to JSON output.
func WithJSONFormatter() Option {
	return func(c *config) {
		c.format = formatJSON
	}
}

// WithTextFormatter switches to plain slog text output.
func WithTextFormatter() Option {
	return func(c *config) {
		c.format = formatText
	}
}

// WithNoColor disables colors in development output, for non-terminal writers.
func WithNoColor() Option {
	return func(c *config) {
		c.noColor = true
	}
}

// WithHandlerOptions sets slog handler options for the text and JSON formats.
func WithHandlerOptions(opts *slog.HandlerOptions) Option {
	return func(c *config) {
		c.opts = opts
	}
}

// WithAttr adds attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// WithContextExtractors adds attributes taken from the context passed to the
// *Context logging methods.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		c.extractors = append(c.extractors, extractors...)
	}
}

// contextHandler decorates records with attributes extracted from the context.
type contextHandler struct {
	slog.Handler
	extractors []ContextExtractor
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx != nil {
		for _, extract := range h.extractors {
			if attr, ok := extract(ctx); ok {
				r.AddAttrs(attr)
			}
		}
	}
	return h.Handler.Handle(ctx, r)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithAttrs(attrs), extractors: h.extractors}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithGroup(name), extractors: h.extractors}
}
