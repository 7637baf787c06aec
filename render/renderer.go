package render

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/edihub/x12/x12"
)

// Error represents a failure encountered while rendering an interchange.
type Error struct {
	Message  string
	Segment  string
	Position int
	Cause    error
}

func (e *Error) Error() string {
	msg := "render error"
	if e.Segment != "" {
		msg = fmt.Sprintf("%s at segment %s (position %d)", msg, e.Segment, e.Position)
	}
	if e.Message != "" {
		msg = msg + ": " + e.Message
	}
	if e.Cause != nil {
		msg = msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

// Renderer converts an x12.Interchange to its wire-format byte
// representation.
type Renderer struct {
	cfg config
}

// New creates a Renderer with the given options.
func New(opts ...Option) *Renderer {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &Renderer{cfg: cfg}
}

// Render encodes the interchange to bytes. If ic carries no delimiters
// (the zero value), x12.Default() is used, matching the teacher's encoder
// falling back to hl7.DefaultDelimiters when a message carries none.
func (r *Renderer) Render(ic x12.Interchange) ([]byte, error) {
	if len(ic.Segments) == 0 {
		return nil, &Error{Message: "interchange has no segments"}
	}

	delims := ic.Delimiters
	if delims == (x12.Delimiters{}) {
		delims = x12.Default()
	}

	estimated := len(ic.Segments) * 80
	var buf bytes.Buffer
	buf.Grow(estimated)

	for i, seg := range ic.Segments {
		segBytes, err := r.segmentBytes(seg, delims)
		if err != nil {
			return nil, &Error{Message: "failed to render segment", Segment: seg.ID, Position: i, Cause: err}
		}
		buf.Write(segBytes)
		buf.WriteRune(delims.Segment)
		if r.cfg.pretty {
			buf.WriteByte('\n')
		}
	}

	return buf.Bytes(), nil
}

// RenderToWriter streams the interchange to w, checking ctx between
// segments, for large transaction sets where materializing the whole
// buffer first is wasteful.
func (r *Renderer) RenderToWriter(ctx context.Context, w io.Writer, ic x12.Interchange) error {
	if len(ic.Segments) == 0 {
		return &Error{Message: "interchange has no segments"}
	}

	delims := ic.Delimiters
	if delims == (x12.Delimiters{}) {
		delims = x12.Default()
	}

	terminator := []byte(string(delims.Segment))

	for i, seg := range ic.Segments {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		segBytes, err := r.segmentBytes(seg, delims)
		if err != nil {
			return &Error{Message: "failed to render segment", Segment: seg.ID, Position: i, Cause: err}
		}
		if _, err := w.Write(segBytes); err != nil {
			return &Error{Message: "failed to write segment", Segment: seg.ID, Position: i, Cause: err}
		}
		if _, err := w.Write(terminator); err != nil {
			return &Error{Message: "failed to write segment terminator", Segment: seg.ID, Position: i, Cause: err}
		}
		if r.cfg.pretty {
			if _, err := w.Write([]byte{'\n'}); err != nil {
				return &Error{Message: "failed to write pretty-print newline", Segment: seg.ID, Position: i, Cause: err}
			}
		}
	}

	return nil
}

// segmentBytes renders one segment's ID and elements, joined by the
// element delimiter. Trailing empty elements are stripped unless
// WithTrailingElements(true) was set, the same default the teacher's
// buildSegmentData applies. Composite and repeated sub-structure inside an
// element is never re-split or re-joined here — whatever raw text a
// Field carries is written back out verbatim, satisfying the round-trip
// guarantee for elements the schema/bind layer never touched.
func (r *Renderer) segmentBytes(seg x12.Segment, d x12.Delimiters) ([]byte, error) {
	last := len(seg.Elements) - 1
	if !r.cfg.includeTrailingElements {
		for last >= 0 && seg.Elements[last].Empty() {
			last--
		}
	}

	var buf bytes.Buffer
	buf.WriteString(seg.ID)
	for i := 0; i <= last; i++ {
		buf.WriteRune(d.Element)
		buf.WriteString(seg.Elements[i].String())
	}
	return buf.Bytes(), nil
}
