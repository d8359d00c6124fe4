// Package logging wraps slog.Logger with the field names used across estrela.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Logger wraps slog.Logger with search-specific helpers.
type Logger struct {
	*slog.Logger
}

// New creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
func New(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewText creates a Logger writing human-readable lines to w.
func NewText(w io.Writer, level slog.Level) *Logger {
	return New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSON creates a Logger writing one JSON object per record to w.
func NewJSON(w io.Writer, level slog.Level) *Logger {
	return New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Noop creates a Logger that discards everything.
func Noop() *Logger {
	return NewText(io.Discard, slog.Level(1000))
}

// Open builds a Logger from config strings: format "text" or "json",
// level "debug", "info", "warn" or "error".
func Open(w io.Writer, format, level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(format) {
	case "", "text":
		return NewText(w, lvl), nil
	case "json":
		return NewJSON(w, lvl), nil
	default:
		return nil, fmt.Errorf("logging: unknown format %q", format)
	}
}

// ParseLevel maps a level name to slog.Level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("logging: %w", err)
	}
	return lvl, nil
}

// WithRun tags every record with a run ID.
func (l *Logger) WithRun(id string) *Logger {
	return &Logger{Logger: l.Logger.With("run", id)}
}

// WithQuery tags every record with the start and goal states.
func (l *Logger) WithQuery(start, goal string) *Logger {
	return &Logger{Logger: l.Logger.With("start", start, "goal", goal)}
}

// SearchStats is what LogSearch reports about one finished search.
type SearchStats struct {
	Found     bool
	Cost      float64
	Hops      int
	Expanded  int
	Generated int
	Took      time.Duration
}

// LogSearch logs a finished search.
func (l *Logger) LogSearch(ctx context.Context, st SearchStats, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "search failed",
			"expanded", st.Expanded,
			"took", st.Took,
			"error", err,
		)
	case st.Found:
		l.InfoContext(ctx, "path found",
			"cost", st.Cost,
			"hops", st.Hops,
			"expanded", st.Expanded,
			"generated", st.Generated,
			"took", st.Took,
		)
	default:
		l.InfoContext(ctx, "no path",
			"expanded", st.Expanded,
			"generated", st.Generated,
			"took", st.Took,
		)
	}
}

// LogExpand logs one closed state at debug level.
func (l *Logger) LogExpand(ctx context.Context, state string, g float64) {
	l.DebugContext(ctx, "expand", "state", state, "g", g)
}

// LogSeed logs a seeding operation.
func (l *Logger) LogSeed(ctx context.Context, target string, edges, states int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "seed failed",
			"target", target,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "seed completed",
			"target", target,
			"edges", edges,
			"states", states,
		)
	}
}
