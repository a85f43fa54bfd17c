// Package scnlog provides opt-in, zero-cost-by-default tracing of the scan
// engine: which format field is being read, how many code units a reader
// consumed, and why a reader failed. It is ambient diagnostic plumbing, not
// part of any scan result.
package scnlog

import (
	"io"

	"github.com/charmbracelet/log"
)

// Tracer receives scan engine trace events. The zero-cost default is
// Discard{}; callers opt in with New.
type Tracer interface {
	Field(index int, presentation string)
	Consume(what string, n int)
	Fail(kind string, msg string)
}

// Discard is a Tracer that does nothing; every method is free to inline away.
type Discard struct{}

func (Discard) Field(int, string)    {}
func (Discard) Consume(string, int)  {}
func (Discard) Fail(string, string)  {}

// charmTracer wraps github.com/charmbracelet/log, grounded on the same
// library other_examples' charmbracelet-glow depends on directly, for a
// library-appropriate trace log (no timestamps, no service framing).
type charmTracer struct {
	l *log.Logger
}

// New builds a Tracer that writes human-readable trace lines to w.
func New(w io.Writer) Tracer {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		Prefix:          "scn",
	})
	l.SetLevel(log.DebugLevel)
	return &charmTracer{l: l}
}

func (c *charmTracer) Field(index int, presentation string) {
	c.l.Debug("field", "index", index, "presentation", presentation)
}

func (c *charmTracer) Consume(what string, n int) {
	c.l.Debug("consume", "what", what, "n", n)
}

func (c *charmTracer) Fail(kind string, msg string) {
	c.l.Debug("fail", "kind", kind, "msg", msg)
}
