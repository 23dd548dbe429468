// Package logging provides the structured logger used across the module: a
// small custom slog.Handler writing "time level message attrs" lines,
// grounded on the teacher's logging.go text handler.
package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"golang.org/x/exp/slog"
)

// textHandler is a minimal, dependency-free slog.Handler: one line per
// record, no JSON, no grouping — matching the teacher's handler, which
// exists so a preprocessing run's progress lines are legible on a plain
// terminal instead of structured for a log aggregator this module doesn't
// have (aggregation, shipping, sampling are host concerns).
type textHandler struct {
	mu    *sync.Mutex
	out   io.Writer
	level slog.Leveler
	attrs []slog.Attr
}

// NewTextHandler builds a handler writing to out at minLevel and above.
func NewTextHandler(out io.Writer, minLevel slog.Leveler) slog.Handler {
	if minLevel == nil {
		minLevel = slog.LevelInfo
	}
	return &textHandler{mu: &sync.Mutex{}, out: out, level: minLevel}
}

// New builds a ready-to-use *slog.Logger writing to out.
func New(out io.Writer) *slog.Logger {
	return slog.New(NewTextHandler(out, slog.LevelInfo))
}

// Discard is a logger that drops every record, used as the Contractor's
// default when the host doesn't supply one.
func Discard() *slog.Logger {
	return slog.New(NewTextHandler(io.Discard, slog.LevelError+1))
}

func (self *textHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= self.level.Level()
}

func (self *textHandler) Handle(_ context.Context, record slog.Record) error {
	var buf bytes.Buffer
	buf.WriteString(record.Time.Format(time.RFC3339))
	buf.WriteByte(' ')
	buf.WriteString(record.Level.String())
	buf.WriteByte(' ')
	buf.WriteString(record.Message)
	for _, a := range self.attrs {
		fmt.Fprintf(&buf, " %s=%v", a.Key, a.Value)
	}
	record.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&buf, " %s=%v", a.Key, a.Value)
		return true
	})
	buf.WriteByte('\n')

	self.mu.Lock()
	defer self.mu.Unlock()
	_, err := self.out.Write(buf.Bytes())
	return err
}

func (self *textHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make([]slog.Attr, 0, len(self.attrs)+len(attrs))
	next = append(next, self.attrs...)
	next = append(next, attrs...)
	return &textHandler{mu: self.mu, out: self.out, level: self.level, attrs: next}
}

func (self *textHandler) WithGroup(name string) slog.Handler {
	// Groups are not needed by anything this module logs; flatten instead
	// of nesting keys, keeping lines single-level like the teacher's.
	return self
}
