package digit

// decodeTable keeps the digit value plus one, so zero marks a non-digit byte
var decodeTable = [256]byte{
	'0': 1,
	'1': 2,
	'2': 3,
	'3': 4,
	'4': 5,
	'5': 6,
	'6': 7,
	'7': 8,
	'8': 9,
	'9': 10,
}

// Decode returns the value of an ASCII decimal digit. Any other byte, including
// signs and non-ASCII bytes, results in ok == false.
func Decode(char byte) (value byte, ok bool) {
	value = decodeTable[char]
	return value - 1, value != 0
}
