package ais

import (
	"fmt"
	"strings"
)

// latLonScale converts decimal degrees to the 1/10000 minute unit used on
// the wire.
const latLonScale = 600000

// maxDraught is the encoding ceiling in metres; deeper draughts clamp.
const maxDraught = 25.5

func encodeLon(deg float64) (string, error) {
	bits, err := IntToBits(int64(deg*latLonScale), lenLon, true)
	if err != nil {
		return "", fmt.Errorf("lon: %w", err)
	}
	return bits, nil
}

func encodeLat(deg float64) (string, error) {
	bits, err := IntToBits(int64(deg*latLonScale), lenLat, true)
	if err != nil {
		return "", fmt.Errorf("lat: %w", err)
	}
	return bits, nil
}

// encodeTenth encodes a value carried on the wire in tenths of its unit
// (speed in tenths of a knot, course in tenths of a degree).
func encodeTenth(name string, value float64, width int) (string, error) {
	bits, err := IntToBits(int64(value*10), width, false)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return bits, nil
}

// encodeString renders a fixed-capacity text field as ASCII6 bits. Short
// values are right-padded with spaces; an empty value becomes all '@'
// characters, the AIS not-available convention. Over-long values return a
// LengthError.
func encodeString(field, s string, chars int) (string, error) {
	if len(s) > chars {
		return "", &LengthError{Field: field, Max: chars, Got: len(s)}
	}
	if s == "" {
		s = strings.Repeat("@", chars)
	} else if len(s) < chars {
		s += strings.Repeat(" ", chars-len(s))
	}

	var b strings.Builder
	b.Grow(chars * 6)
	for i := 0; i < len(s); i++ {
		v, err := ASCII6(s[i])
		if err != nil {
			return "", fmt.Errorf("%s: %w", field, err)
		}
		bits, err := IntToBits(int64(v), 6, false)
		if err != nil {
			return "", fmt.Errorf("%s: %w", field, err)
		}
		b.WriteString(bits)
	}
	return b.String(), nil
}

// encodeDraught clamps to the 25.5 m ceiling before scaling to decimetres.
// Negative draughts are a caller defect and surface as a RangeError.
func encodeDraught(metres float64) (string, error) {
	if metres > maxDraught {
		metres = maxDraught
	}
	bits, err := IntToBits(int64(metres*10), lenDraught, false)
	if err != nil {
		return "", fmt.Errorf("draught: %w", err)
	}
	return bits, nil
}
