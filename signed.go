package intify

import (
	"unsafe"

	"github.com/indigo-web/intify/internal/constraints"
	"github.com/indigo-web/intify/internal/digit"
	"github.com/indigo-web/utils/uf"
)

// ParseInt decodes raw as a base-10 signed integer, optionally prefixed by a single
// '+' or '-'. The minimal value of T is decoded correctly: the magnitude is kept
// positive only until the last digit, which is then subtracted from the already
// negated accumulator, so |min| is never formed.
func ParseInt[T constraints.Int](raw []byte) (num T, err error) {
	if len(raw) == 0 {
		return 0, newError(ErrEmptyInput, raw, 0)
	}

	var (
		negative bool
		offset   int
	)

	switch raw[0] {
	case '-':
		negative = true
		offset = 1
	case '+':
		offset = 1
	}

	if offset == len(raw) {
		return 0, newError(ErrEmptyInput, raw, offset)
	}

	lo, hi := bounds[T]()
	last := len(raw) - 1

	for i := offset; i < last; i++ {
		value, ok := digit.Decode(raw[i])
		if !ok {
			return 0, newError(ErrInvalidDigit, raw, i)
		}

		d := T(value)
		if num > (hi-d)/10 {
			return 0, newError(ErrOverflow, raw, i)
		}

		num = num*10 + d
	}

	value, ok := digit.Decode(raw[last])
	if !ok {
		return 0, newError(ErrInvalidDigit, raw, last)
	}

	d := T(value)

	if negative {
		num = -num
		// the division truncates towards zero, so this is the ceiling of (lo+d)/10
		if num < (lo+d)/10 {
			return 0, newError(ErrOverflow, raw, last)
		}

		return num*10 - d, nil
	}

	if num > (hi-d)/10 {
		return 0, newError(ErrOverflow, raw, last)
	}

	return num*10 + d, nil
}

// Int is ParseInt for strings. The string isn't copied.
func Int[T constraints.Int](str string) (T, error) {
	return ParseInt[T](uf.S2B(str))
}

// MustInt is like Int but panics with *Error if the str cannot be parsed.
func MustInt[T constraints.Int](str string) T {
	num, err := Int[T](str)
	if err != nil {
		panic(err)
	}

	return num
}

func bounds[T constraints.Int]() (lo, hi T) {
	var zero T
	lo = T(1) << (unsafe.Sizeof(zero)*8 - 1)

	return lo, ^lo
}
