package intify

import (
	"errors"
	"strconv"
)

var (
	ErrInvalidDigit = errors.New("non-digit byte")
	ErrEmptyInput   = errors.New("no digits")
	ErrOverflow     = errors.New("value out of range")
)

// Error describes a failed conversion. Err is always one of the package sentinels,
// so errors.Is can be used to tell them apart.
type Error struct {
	Err error
	// Input is a copy of the whole input, not only the offending part.
	Input string
	// Offset is the index of the byte the parsing stopped at. For ErrEmptyInput it
	// equals len(Input).
	Offset int
}

func newError(err error, raw []byte, offset int) error {
	return &Error{
		Err:    err,
		Input:  string(raw),
		Offset: offset,
	}
}

func (e *Error) Error() string {
	return "intify: parsing " + strconv.Quote(e.Input) + ": " + e.Err.Error() +
		" (offset " + strconv.Itoa(e.Offset) + ")"
}

func (e *Error) Unwrap() error {
	return e.Err
}
