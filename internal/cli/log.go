// Package cli implements the unitwiz command-line interface.
//
// Commands work on a wizard built from the config file and the persistent
// --form flag. Quantities are read as text in the chosen form and printed in
// the same notation.
//
// # Commands
//
// The main commands are:
//   - forms: List found and loaded forms, or discover new ones
//   - parse: Parse a quantity or unit and show its dimension
//   - convert: Convert a quantity to another unit within its form
//   - translate: Translate a quantity or unit to another form
//   - standardize: Express a quantity in the standard unit of its dimension
//   - dims: Inspect a dimension
//   - serve: Serve the same operations over HTTP
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. With debug
// logging on, every form lifecycle event and conversion is logged through
// the observability hooks.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/unitwiz/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Discovered 3 forms (2ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Hook Logger
// =============================================================================

// hookLogger reports form and conversion events at debug level.
type hookLogger struct {
	logger *log.Logger
}

// installHooks routes the observability hooks to l.
func installHooks(l *log.Logger) {
	h := hookLogger{logger: l}
	observability.SetFormHooks(h)
	observability.SetConversionHooks(h)
	observability.SetCacheHooks(h)
}

func (h hookLogger) OnDiscover(form string, found bool, err error) {
	if err != nil {
		h.logger.Debug("discover", "form", form, "err", err)
		return
	}
	h.logger.Debug("discover", "form", form, "found", found)
}

func (h hookLogger) OnLoad(form string, err error) {
	if err != nil {
		h.logger.Debug("load failed", "form", form, "err", err)
		return
	}
	h.logger.Debug("loaded", "form", form)
}

func (h hookLogger) OnUnload(form string) {
	h.logger.Debug("unloaded", "form", form)
}

func (h hookLogger) OnDefaultChange(from, to string) {
	h.logger.Debug("default form", "from", from, "to", to)
}

func (h hookLogger) OnParse(form, text string, dur time.Duration, err error) {
	h.logger.Debug("parse", "form", form, "text", text, "took", dur, "err", err)
}

func (h hookLogger) OnConvert(form, from, to string, dur time.Duration, err error) {
	h.logger.Debug("convert", "form", form, "from", from, "to", to, "took", dur, "err", err)
}

func (h hookLogger) OnTranslate(from, to string, dur time.Duration, err error) {
	h.logger.Debug("translate", "from", from, "to", to, "took", dur, "err", err)
}

func (h hookLogger) OnCacheHit(keyType string) {
	h.logger.Debug("cache hit", "key", keyType)
}

func (h hookLogger) OnCacheMiss(keyType string) {
	h.logger.Debug("cache miss", "key", keyType)
}
