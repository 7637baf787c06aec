package render

import (
	"bytes"
	"context"
	"testing"

	"github.com/edihub/x12/testdata"
	"github.com/edihub/x12/tokenize"
	"github.com/edihub/x12/x12"
	"github.com/google/go-cmp/cmp"
)

func TestRenderRoundTripsTokenizedInterchange(t *testing.T) {
	data, err := testdata.LoadEligibility270Request()
	if err != nil {
		t.Fatalf("LoadEligibility270Request: %v", err)
	}

	ic, err := tokenize.Tokenize(data)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}

	out, err := New().Render(ic)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	roundTripped, err := tokenize.Tokenize(out)
	if err != nil {
		t.Fatalf("Tokenize(rendered output): %v", err)
	}

	if diff := cmp.Diff(ic.Segments, roundTripped.Segments); diff != "" {
		t.Errorf("segments changed across a tokenize/render round trip (-want +got):\n%s", diff)
	}
}

func TestRenderDropsTrailingEmptyElementsByDefault(t *testing.T) {
	ic := x12.Interchange{
		Delimiters: x12.Default(),
		Segments: []x12.Segment{
			x12.NewSegment("REF", 0, "EJ", "ALT001", "", ""),
		},
	}

	out, err := New().Render(ic)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "REF*EJ*ALT001~"
	if string(out) != want {
		t.Errorf("Render() = %q, want %q", out, want)
	}
}

func TestRenderWithTrailingElements(t *testing.T) {
	ic := x12.Interchange{
		Delimiters: x12.Default(),
		Segments: []x12.Segment{
			x12.NewSegment("REF", 0, "EJ", "ALT001", "", ""),
		},
	}

	out, err := New(WithTrailingElements(true)).Render(ic)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "REF*EJ*ALT001**~"
	if string(out) != want {
		t.Errorf("Render(WithTrailingElements) = %q, want %q", out, want)
	}
}

func TestRenderPrettyAddsNewlines(t *testing.T) {
	ic := x12.Interchange{
		Delimiters: x12.Default(),
		Segments: []x12.Segment{
			x12.NewSegment("ST", 0, "270", "0001"),
			x12.NewSegment("SE", 1, "2", "0001"),
		},
	}

	out, err := New(WithPretty(true)).Render(ic)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "ST*270*0001~\nSE*2*0001~\n"
	if string(out) != want {
		t.Errorf("Render(WithPretty) = %q, want %q", out, want)
	}
}

func TestRenderEmptyInterchangeErrors(t *testing.T) {
	if _, err := New().Render(x12.Interchange{}); err == nil {
		t.Fatal("Render(empty interchange): want error, got nil")
	}
}

func TestRenderToWriterMatchesRender(t *testing.T) {
	ic := x12.Interchange{
		Delimiters: x12.Default(),
		Segments: []x12.Segment{
			x12.NewSegment("ST", 0, "270", "0001"),
			x12.NewSegment("SE", 1, "2", "0001"),
		},
	}

	r := New()
	buffered, err := r.Render(ic)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	var buf bytes.Buffer
	if err := r.RenderToWriter(context.Background(), &buf, ic); err != nil {
		t.Fatalf("RenderToWriter: %v", err)
	}

	if buf.String() != string(buffered) {
		t.Errorf("RenderToWriter output = %q, want %q (same as Render)", buf.String(), buffered)
	}
}
