package acrotex

import (
	"errors"
	"testing"
)

func TestOptionalFromCell(t *testing.T) {
	cases := []struct {
		cell string
		want Optional
	}{
		{"", None()},
		{"   ", None()},
		{"\t\n", None()},
		{"API", Some("API")},
		{" padded ", Some(" padded ")},
		{"two\nlines", Some("two\nlines")},
	}
	for _, tc := range cases {
		if got := OptionalFromCell(tc.cell); got != tc.want {
			t.Fatalf("OptionalFromCell(%q)=%#v want %#v", tc.cell, got, tc.want)
		}
	}
}

func TestOptionalOr(t *testing.T) {
	if got := None().Or("{-}"); got != "{-}" {
		t.Fatalf("None().Or: got %q", got)
	}
	if got := Some("x").Or("{-}"); got != "x" {
		t.Fatalf("Some.Or: got %q", got)
	}
	if v, ok := Some("").Get(); !ok || v != "" {
		t.Fatalf("Some(\"\") should be present, got %q %v", v, ok)
	}
}

func TestEntryValidate(t *testing.T) {
	if err := (Entry{ID: "A", Long: "long"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, e := range []Entry{{Long: "long"}, {ID: "A"}, {ID: " ", Long: "x"}} {
		err := e.Validate()
		if !errors.Is(err, ErrMalformedInput) {
			t.Fatalf("Validate(%+v): expected ErrMalformedInput, got %v", e, err)
		}
	}
	var fe *FieldError
	if err := (Entry{ID: "A"}).Validate(); !errors.As(err, &fe) || fe.Column != ColumnLong {
		t.Fatalf("expected FieldError for long, got %v", err)
	}
}
