package acrotex

import (
	"os"
	"regexp"
	"testing"
)

var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*m|\x1b\\]8;;[^\x1b]*\x1b\\\\")

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return data
}

func mustFormat(t *testing.T, e Entry, opts ...FormatOption) string {
	t.Helper()
	out, err := Format(e, opts...)
	if err != nil {
		t.Fatalf("Format(%q): %v", e.ID, err)
	}
	return out
}
