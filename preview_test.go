package acrotex

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteSummaryPlain(t *testing.T) {
	var out bytes.Buffer
	if err := WriteSummary(&out, 3, "acroList.tex", PreviewOptions{}); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}
	want := "********************\n3 acronyms written to acroList.tex\n********************\n"
	if out.String() != want {
		t.Fatalf("unexpected summary:\n%q\nwant:\n%q", out.String(), want)
	}
}

func TestWriteSummaryStyledAndLinked(t *testing.T) {
	var out bytes.Buffer
	opts := PreviewOptions{Theme: DefaultTheme(), OSC8: true}
	if err := WriteSummary(&out, 0, "out.tex", opts); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, osc8Start+"file://") {
		t.Fatalf("expected OSC8 link, got %q", got)
	}
	want := "********************\n0 acronyms written to out.tex\n********************\n"
	if plain := stripANSI(got); plain != want {
		t.Fatalf("unexpected plain summary:\n%q\nwant:\n%q", plain, want)
	}
}

func TestWritePreviewThemedStripsToPlain(t *testing.T) {
	blocks := []string{
		mustFormat(t, Entry{ID: "A", Short: Some("A"), Long: "long text", Description: Some("desc")}),
		mustFormat(t, Entry{ID: "B", Long: "long text"}),
	}
	var plain, themed bytes.Buffer
	if err := WritePreview(&plain, blocks, PreviewOptions{}); err != nil {
		t.Fatalf("WritePreview plain: %v", err)
	}
	if err := WritePreview(&themed, blocks, PreviewOptions{Theme: DefaultTheme()}); err != nil {
		t.Fatalf("WritePreview themed: %v", err)
	}
	if !strings.Contains(themed.String(), "\x1b[") {
		t.Fatalf("expected ANSI styling in themed preview")
	}
	if stripANSI(themed.String()) != plain.String() {
		t.Fatalf("themed preview differs from plain after stripping styles:\n%q\n%q", stripANSI(themed.String()), plain.String())
	}
	if plain.String() != blocks[0]+"\n"+blocks[1]+"\n" {
		t.Fatalf("plain preview should print each block followed by a blank line: %q", plain.String())
	}
}

func TestWritePreviewWraps(t *testing.T) {
	desc := strings.Repeat("word ", 20)
	block := mustFormat(t, Entry{ID: "W", Short: Some("W"), Long: "wrapped", Description: Some(strings.TrimSpace(desc))})
	var out bytes.Buffer
	if err := WritePreview(&out, []string{block}, PreviewOptions{Width: 30}); err != nil {
		t.Fatalf("WritePreview: %v", err)
	}
	for _, line := range strings.Split(strings.TrimRight(out.String(), "\n"), "\n") {
		if len(line) > 30 {
			t.Fatalf("line exceeds width: %q", line)
		}
	}
	if strings.Count(out.String(), "word") != 20 {
		t.Fatalf("wrapping lost words: %q", out.String())
	}
}

func TestPlainThemeEmitsNoEscapes(t *testing.T) {
	block := mustFormat(t, Entry{ID: "P", Long: "plain"})
	var out bytes.Buffer
	if err := WritePreview(&out, []string{block}, PreviewOptions{Theme: PlainTheme()}); err != nil {
		t.Fatalf("WritePreview: %v", err)
	}
	if strings.Contains(out.String(), "\x1b") {
		t.Fatalf("plain theme must not emit escape sequences: %q", out.String())
	}
}

func TestWritePreviewCustomTheme(t *testing.T) {
	key := Style{Prefix: "\x1b[35m"}
	custom := NewTheme("magenta-keys", Styles{Key: key})
	if custom.Name() != "magenta-keys" {
		t.Fatalf("unexpected name %q", custom.Name())
	}
	block := mustFormat(t, Entry{ID: "A", Long: "long text"})
	var out bytes.Buffer
	if err := WritePreview(&out, []string{block}, PreviewOptions{Theme: custom}); err != nil {
		t.Fatalf("WritePreview: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, key.Prefix+"short"+ansiReset) {
		t.Fatalf("expected styled key, got %q", got)
	}
	if strings.Contains(got, ansiBold) {
		t.Fatalf("unset styles must stay unstyled, got %q", got)
	}
	if plain := stripANSI(got); plain != block+"\n" {
		t.Fatalf("unexpected plain preview:\n%q\nwant:\n%q", plain, block+"\n")
	}
}
