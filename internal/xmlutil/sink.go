package xmlutil

import (
	"io"
	"strings"
)

// DefaultIndent is the per-level indentation used when none is configured.
const DefaultIndent = "    "

// Sink emits XML elements to an underlying writer, deriving indentation from
// the current nesting depth and terminating every emitted element with a
// newline.
//
// Sink performs no escaping: callers pass element names from a controlled
// vocabulary and text content that has already been routed through Escape.
//
// Write failures are sticky. The first error reported by the underlying
// writer is retained, every subsequent call becomes a no-op, and Err exposes
// the error unmodified. Callers are responsible for discarding partial
// output on failure.
type Sink struct {
	w      io.Writer
	indent string
	depth  int
	err    error
}

// SinkOption configures a Sink.
type SinkOption func(*Sink)

// WithIndent overrides the per-level indentation string.
func WithIndent(indent string) SinkOption {
	return func(s *Sink) {
		s.indent = indent
	}
}

// NewSink creates a Sink writing to w.
func NewSink(w io.Writer, opts ...SinkOption) *Sink {
	s := &Sink{
		w:      w,
		indent: DefaultIndent,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// OpenElement writes the start tag of name on its own line and increases the
// nesting depth.
func (s *Sink) OpenElement(name string) {
	s.Line("<" + name + ">")
	s.depth++
}

// OpenElementAttrs writes a start tag carrying pre-rendered attribute text.
// It is used only for the root element, whose attributes are fixed constants.
func (s *Sink) OpenElementAttrs(name, attrs string) {
	s.Line("<" + name + " " + attrs + ">")
	s.depth++
}

// CloseElement decreases the nesting depth and writes the end tag of name on
// its own line.
func (s *Sink) CloseElement(name string) {
	s.depth--
	s.Line("</" + name + ">")
}

// TextElement writes `<name>text</name>` as a single line. text must already
// be escaped.
func (s *Sink) TextElement(name, text string) {
	s.Line("<" + name + ">" + text + "</" + name + ">")
}

// Line writes raw at the current indentation, followed by a newline.
func (s *Sink) Line(raw string) {
	if s.err != nil {
		return
	}

	_, s.err = io.WriteString(s.w, strings.Repeat(s.indent, s.depth)+raw+"\n")
}

// Err returns the first write error encountered, or nil.
func (s *Sink) Err() error {
	return s.err
}
