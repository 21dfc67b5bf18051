package acrotex

import "strings"

// Optional is a string that may be absent.
type Optional struct {
	value string
	set   bool
}

// Some returns a present Optional holding s.
func Some(s string) Optional {
	return Optional{value: s, set: true}
}

// None returns an absent Optional.
func None() Optional {
	return Optional{}
}

// OptionalFromCell maps a CSV cell to an Optional. Empty or whitespace-only
// cells are absent; anything else is kept verbatim.
func OptionalFromCell(cell string) Optional {
	if strings.TrimSpace(cell) == "" {
		return None()
	}
	return Some(cell)
}

// Get returns the value and whether it is present.
func (o Optional) Get() (string, bool) { return o.value, o.set }

// IsSet reports whether the value is present.
func (o Optional) IsSet() bool { return o.set }

// Or returns the value, or fallback when absent.
func (o Optional) Or(fallback string) string {
	if !o.set {
		return fallback
	}
	return o.value
}

func (o Optional) String() string {
	return o.Or("<none>")
}

func (o Optional) mapValue(fn func(string) string) Optional {
	if !o.set {
		return o
	}
	return Some(fn(o.value))
}

// Entry is one acronym definition.
type Entry struct {
	ID          string
	Short       Optional
	Long        string
	Description Optional
	Tag         Optional
}

// Validate reports a missing id or long form.
func (e Entry) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return &FieldError{Column: ColumnID, Err: ErrMalformedInput}
	}
	if strings.TrimSpace(e.Long) == "" {
		return &FieldError{Column: ColumnLong, Err: ErrMalformedInput}
	}
	return nil
}
