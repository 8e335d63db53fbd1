// Package log provides context-aware diagnostic logging for tbl.
// Diagnostics go to stderr; data goes through the output package.
package log

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"
)

type ctxKey struct{}

// Logger writes diagnostics. Quiet suppresses everything; verbose enables
// Debug and Timed.
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
}

// New creates a new logger.
func New(out io.Writer, verbose, quiet bool) *Logger {
	return &Logger{out: out, verbose: verbose, quiet: quiet}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{out: io.Discard}
}

// Printf writes formatted output.
func (l *Logger) Printf(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, format, args...)
}

// Println writes a line of output.
func (l *Logger) Println(args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintln(l.out, args...)
}

// Debug writes msg followed by key=value pairs when verbose.
// A trailing key without a value is dropped.
func (l *Logger) Debug(msg string, keyvals ...any) {
	if !l.IsVerbose() {
		return
	}
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i+1 < len(keyvals); i += 2 {
		fmt.Fprintf(&b, " %v=%v", keyvals[i], keyvals[i+1])
	}
	fmt.Fprintln(l.out, b.String())
}

// Timed logs the duration of an operation when verbose. Call the returned
// func when the operation finishes.
//
//	done := l.Timed("load", "path", path)
//	ds, err := dataset.Load(ctx, path)
//	done()
func (l *Logger) Timed(op string, keyvals ...any) func() {
	if !l.IsVerbose() {
		return func() {}
	}
	start := time.Now()
	return func() {
		kv := append(slices.Clone(keyvals), "took", time.Since(start).Round(time.Microsecond))
		l.Debug(op, kv...)
	}
}

// IsVerbose returns true if verbose mode is enabled and not silenced.
func (l *Logger) IsVerbose() bool {
	return l.verbose && !l.quiet
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}
