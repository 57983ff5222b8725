package format

import "strconv"

// HexWidth is the minimum number of hex digits printed for an address.
const HexWidth = 8

// Hex renders v as "0x" followed by at least HexWidth lowercase hex digits.
//
//	Hex(0)       = "0x00000000"
//	Hex(0x10000) = "0x00010000"
func Hex(v uint64) string {
	digits := strconv.FormatUint(v, 16)
	var b [2 + 16]byte
	out := append(b[:0], '0', 'x')
	for i := len(digits); i < HexWidth; i++ {
		out = append(out, '0')
	}
	return string(append(out, digits...))
}

// Dec renders v as an unsigned decimal.
func Dec(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// ParseDec parses the leading decimal digits of s. Leading spaces are
// skipped, parsing stops at the first non-digit, and text without digits
// yields 0. Values that overflow saturate at the largest uint64.
func ParseDec(s string) uint64 {
	i := 0
	for i < len(s) && s[i] == ' ' {
		i++
	}
	var v uint64
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		d := uint64(s[i] - '0')
		if v > (^uint64(0)-d)/10 {
			return ^uint64(0)
		}
		v = v*10 + d
	}
	return v
}
