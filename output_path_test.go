package acrotex

import (
	"path/filepath"
	"testing"
)

func TestOutputPath(t *testing.T) {
	cases := []struct{ in, want string }{
		{"acroList.csv", "acroList.tex"},
		{"list", "list.tex"},
		{filepath.Join("dir", "list.v2.csv"), filepath.Join("dir", "list.v2.tex")},
		{filepath.Join("dir.d", "list"), filepath.Join("dir.d", "list.tex")},
		{"https://example.com/data/acro.csv?raw=1", "acro.tex"},
		{"https://example.com/", "acronyms.tex"},
		{"file:///tmp/terms.csv", "/tmp/terms.tex"},
	}
	for _, tc := range cases {
		if got := OutputPath(tc.in); got != tc.want {
			t.Fatalf("OutputPath(%q)=%q want %q", tc.in, got, tc.want)
		}
	}
}
