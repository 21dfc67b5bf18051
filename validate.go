package acrotex

import (
	"bytes"
	"errors"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input. It matches ErrMalformedInput.
	ErrInvalidUTF8 error = malformed{errors.New("invalid utf-8 input")}
	// ErrBinaryInput reports input that appears to be binary. It matches ErrMalformedInput.
	ErrBinaryInput error = malformed{errors.New("binary input detected")}
)

const (
	minBinarySample = 64
	maxControlPct   = 2
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ValidateInput returns an error if the input is not valid UTF-8 or appears binary.
func ValidateInput(src []byte) error {
	if !utf8.Valid(src) {
		return ErrInvalidUTF8
	}
	var total, control int
	for _, b := range src {
		total++
		if b == 0x00 {
			return ErrBinaryInput
		}
		if isControlByte(b) {
			control++
		}
	}
	if total >= minBinarySample && control*100 >= total*maxControlPct {
		return ErrBinaryInput
	}
	return nil
}

func isControlByte(b byte) bool {
	if b < 0x09 {
		return true
	}
	if b > 0x0D && b < 0x20 {
		return true
	}
	if b == 0x7F {
		return true
	}
	return false
}

func trimBOM(b []byte) []byte {
	return bytes.TrimPrefix(b, utf8BOM)
}
