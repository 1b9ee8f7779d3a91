// This file mirrors types and constants from math/big.

package fixed

import (
	"errors"
	"fmt"
	"io"
)

// Accuracy describes the error produced by a lossy conversion, relative to
// the exact value.
type Accuracy int8

// Constants describing the Accuracy of a conversion.
const (
	Below Accuracy = -1
	Exact Accuracy = 0
	Above Accuracy = +1
)

//go:generate go tool stringer -type=Accuracy

// byteReader is a local wrapper around fmt.ScanState;
// it implements the ByteReader interface.
type byteReader struct {
	fmt.ScanState
}

func (r byteReader) ReadByte() (byte, error) {
	ch, size, err := r.ReadRune()
	if size != 1 && err == nil {
		err = fmt.Errorf("invalid rune %#U", ch)
	}
	return byte(ch), err
}

func (r byteReader) UnreadByte() error {
	return r.UnreadRune()
}

// scan errors
var (
	// ErrSyntax indicates that a value does not have the right syntax.
	ErrSyntax = errors.New("invalid syntax")
	// ErrRange indicates that a value is out of range for the target type.
	ErrRange = errors.New("value out of range")

	errNoDigits = fmt.Errorf("%w: number has no digits", ErrSyntax)
	errInvalSep = fmt.Errorf("%w: '_' must separate successive digits", ErrSyntax)
)

func scanSign(r io.ByteScanner) (neg bool, err error) {
	var ch byte
	if ch, err = r.ReadByte(); err != nil {
		return false, err
	}
	switch ch {
	case '-':
		neg = true
	case '+':
		// nothing to do
	default:
		_ = r.UnreadByte()
	}
	return
}

// An ErrPrecondition panic is raised by an operation called with arguments
// for which it has no meaningful result, like a division by zero or the square
// root of a negative number. An ErrPrecondition implements the error interface.
type ErrPrecondition struct {
	Op  string // failing operation, like "Div" or "Isqrt"
	Msg string
}

func (err ErrPrecondition) Error() string {
	return "fixed: " + err.Op + ": " + err.Msg
}

// An ErrConfig is returned by Check, and raised as a panic by any other
// function, when a Fixed type, or a conversion between two Fixed types, is not
// valid.
type ErrConfig struct {
	msg string
}

func (err ErrConfig) Error() string {
	return err.msg
}
