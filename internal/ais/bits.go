package ais

import "fmt"

// IntToBits renders value as a bit string of exactly width characters.
// Signed values use two's complement representation at the given width;
// unsigned values are zero-extended. Values that do not fit return a
// RangeError.
func IntToBits(value int64, width int, signed bool) (string, error) {
	if width <= 0 || width > 63 {
		return "", &EncodingError{Msg: fmt.Sprintf("invalid bit width %d", width)}
	}
	if signed {
		max := int64(1)<<(width-1) - 1
		min := -(int64(1) << (width - 1))
		if value < min || value > max {
			return "", &RangeError{Value: value, Width: width}
		}
	} else if value < 0 || value > int64(1)<<width-1 {
		return "", &RangeError{Value: value, Width: width}
	}

	mask := uint64(1)<<width - 1
	u := uint64(value) & mask
	b := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		b[i] = '0' + byte(u&1)
		u >>= 1
	}
	return string(b), nil
}

// BitsToInt is the unsigned inverse of IntToBits.
func BitsToInt(bits string) (uint64, error) {
	if len(bits) == 0 || len(bits) > 64 {
		return 0, &EncodingError{Msg: fmt.Sprintf("invalid bit string length %d", len(bits))}
	}
	var v uint64
	for i := 0; i < len(bits); i++ {
		c := bits[i]
		if c != '0' && c != '1' {
			return 0, &EncodingError{Msg: fmt.Sprintf("invalid bit character %q", c)}
		}
		v = v<<1 | uint64(c-'0')
	}
	return v, nil
}

// ASCII6 maps an uppercase letter, digit, space or supported punctuation
// character to its six-bit ordinal per the AIS alphabet table.
func ASCII6(c byte) (int, error) {
	switch {
	case c >= '@' && c <= '_':
		return int(c - '@'), nil
	case c >= ' ' && c <= '?':
		return int(c), nil
	}
	return 0, &InvalidCharacterError{Char: c}
}

// ArmorChar maps a 0-63 six-bit ordinal to its printable armored payload
// character per the AIVDM table.
func ArmorChar(v int) (byte, error) {
	if v < 0 || v > 63 {
		return 0, &RangeError{Value: int64(v), Width: 6}
	}
	if v < 40 {
		return byte(v) + 48, nil
	}
	return byte(v) + 56, nil
}

// Checksum computes the NMEA 0183 checksum of a sentence body (the text
// between '!' and '*'): the XOR of every byte, rendered as two uppercase
// hexadecimal digits.
func Checksum(body string) string {
	var sum byte
	for i := 0; i < len(body); i++ {
		sum ^= body[i]
	}
	return fmt.Sprintf("%02X", sum)
}

// sixBitGroups splits a bit string into six-bit groups without padding the
// final group.
func sixBitGroups(bits string) []string {
	groups := make([]string, 0, (len(bits)+5)/6)
	for len(bits) > 6 {
		groups = append(groups, bits[:6])
		bits = bits[6:]
	}
	return append(groups, bits)
}
