package ais

import "strings"

// Armor converts a payload bit string into its printable AIVDM payload
// characters. The final six-bit group is zero-padded on the right; the
// second return value is the number of padding bits added (0-5).
func Armor(bits string) (string, int, error) {
	if bits == "" {
		return "", 0, nil
	}

	var b strings.Builder
	b.Grow((len(bits) + 5) / 6)

	fill := 0
	for _, group := range sixBitGroups(bits) {
		if len(group) < 6 {
			fill = 6 - len(group)
			group += strings.Repeat("0", fill)
		}
		v, err := BitsToInt(group)
		if err != nil {
			return "", 0, err
		}
		c, err := ArmorChar(int(v))
		if err != nil {
			return "", 0, err
		}
		b.WriteByte(c)
	}
	return b.String(), fill, nil
}
