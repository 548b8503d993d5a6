package intify

import (
	"github.com/indigo-web/intify/internal/constraints"
	"github.com/indigo-web/intify/internal/digit"
	"github.com/indigo-web/utils/uf"
)

// ParseUint decodes raw as a base-10 unsigned integer. Every byte must be an ASCII
// digit, the first one being the most significant.
func ParseUint[T constraints.Uint](raw []byte) (num T, err error) {
	if len(raw) == 0 {
		return 0, newError(ErrEmptyInput, raw, 0)
	}

	limit := ^T(0)

	for i, char := range raw {
		value, ok := digit.Decode(char)
		if !ok {
			return 0, newError(ErrInvalidDigit, raw, i)
		}

		d := T(value)
		if num > (limit-d)/10 {
			return 0, newError(ErrOverflow, raw, i)
		}

		num = num*10 + d
	}

	return num, nil
}

// Uint is ParseUint for strings. The string isn't copied.
func Uint[T constraints.Uint](str string) (T, error) {
	return ParseUint[T](uf.S2B(str))
}

// MustUint is like Uint but panics with *Error if the str cannot be parsed.
func MustUint[T constraints.Uint](str string) T {
	num, err := Uint[T](str)
	if err != nil {
		panic(err)
	}

	return num
}
