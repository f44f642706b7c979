package input

import (
	"bytes"
	"strings"
	"testing"

	"librarian/src/internal/schema"
)

func TestLineTrimsCRLF(t *testing.T) {
	r := New(strings.NewReader("hello\r\nworld\n"), new(bytes.Buffer))
	for _, want := range []string{"hello", "world"} {
		got, err := r.Line()
		if err != nil {
			t.Fatalf("line: %v", err)
		}
		if got != want {
			t.Fatalf("got %q want %q", got, want)
		}
	}
}

func TestLineAtEOFWithoutNewline(t *testing.T) {
	r := New(strings.NewReader("partial"), new(bytes.Buffer))
	got, err := r.Line()
	if err != nil {
		t.Fatalf("final unterminated line should succeed: %v", err)
	}
	if got != "partial" {
		t.Fatalf("got %q", got)
	}
	if _, err := r.Line(); err == nil {
		t.Fatal("expected EOF on next read")
	}
}

func TestValidatedAcceptsFirstMatch(t *testing.T) {
	out := new(bytes.Buffer)
	r := New(strings.NewReader("Dune\n"), out)
	got, err := r.Validated("Enter title: ", schema.FreeText)
	if err != nil {
		t.Fatalf("validated: %v", err)
	}
	if got != "Dune" {
		t.Fatalf("got %q", got)
	}
	if !strings.Contains(out.String(), "Enter title: ") {
		t.Fatalf("prompt not printed: %q", out.String())
	}
	if strings.Contains(out.String(), InvalidInput) {
		t.Fatal("no rejection expected")
	}
}

func TestValidatedRepromptsUntilMatch(t *testing.T) {
	out := new(bytes.Buffer)
	r := New(strings.NewReader("bad!input\n\n196x\n1965\n"), out)
	got, err := r.Validated("Enter year: ", schema.YearDigits)
	if err != nil {
		t.Fatalf("validated: %v", err)
	}
	if got != "1965" {
		t.Fatalf("got %q", got)
	}
	if n := strings.Count(out.String(), InvalidInput); n != 3 {
		t.Fatalf("expected 3 rejections, saw %d in %q", n, out.String())
	}
	if n := strings.Count(out.String(), "Enter year: "); n != 4 {
		t.Fatalf("expected 4 prompts, saw %d", n)
	}
}

func TestValidatedReturnsIOError(t *testing.T) {
	r := New(strings.NewReader("nope!\n"), new(bytes.Buffer))
	if _, err := r.Validated("p: ", schema.FreeText); err == nil {
		t.Fatal("expected error once input is exhausted")
	}
}

func TestPauseConsumesOneLine(t *testing.T) {
	out := new(bytes.Buffer)
	r := New(strings.NewReader("\nnext\n"), out)
	r.Pause()
	if !strings.Contains(out.String(), "Press enter to continue...") {
		t.Fatalf("missing continue prompt: %q", out.String())
	}
	got, err := r.Line()
	if err != nil || got != "next" {
		t.Fatalf("pause consumed too much: %q %v", got, err)
	}
}
