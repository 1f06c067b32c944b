package ais

import (
	"fmt"
	"strings"
)

// Sub-field ceilings; larger real dimensions clamp to the maximum
// representable value.
const (
	maxToBowStern      = 511
	maxToPortStarboard = 63
)

// ShipDimension is the 30-bit ship dimension block: distances in metres from
// the position reference point to bow, stern, port and starboard.
type ShipDimension struct {
	ToBow       int
	ToStern     int
	ToPort      int
	ToStarboard int
}

// Bits serializes the block in bow, stern, port, starboard order.
func (d ShipDimension) Bits() (string, error) {
	subFields := []struct {
		name  string
		value int
		max   int
		width int
	}{
		{"to_bow", d.ToBow, maxToBowStern, 9},
		{"to_stern", d.ToStern, maxToBowStern, 9},
		{"to_port", d.ToPort, maxToPortStarboard, 6},
		{"to_starboard", d.ToStarboard, maxToPortStarboard, 6},
	}

	var b strings.Builder
	for _, f := range subFields {
		v := f.value
		if v > f.max {
			v = f.max
		}
		bits, err := IntToBits(int64(v), f.width, false)
		if err != nil {
			return "", fmt.Errorf("%s: %w", f.name, err)
		}
		b.WriteString(bits)
	}
	return b.String(), nil
}

// Not-available sentinels for the ETA sub-fields.
const (
	EtaMonthNotAvailable  = 0
	EtaDayNotAvailable    = 0
	EtaHourNotAvailable   = 24
	EtaMinuteNotAvailable = 60
)

// ShipEta is the 20-bit estimated time of arrival block.
type ShipEta struct {
	Month  int
	Day    int
	Hour   int
	Minute int
}

// DefaultShipEta returns an ETA with every sub-field set to its
// not-available sentinel.
func DefaultShipEta() ShipEta {
	return ShipEta{
		Month:  EtaMonthNotAvailable,
		Day:    EtaDayNotAvailable,
		Hour:   EtaHourNotAvailable,
		Minute: EtaMinuteNotAvailable,
	}
}

// Bits serializes the block in month, day, hour, minute order.
func (e ShipEta) Bits() (string, error) {
	subFields := []struct {
		name  string
		value int
		width int
	}{
		{"month", e.Month, 4},
		{"day", e.Day, 5},
		{"hour", e.Hour, 5},
		{"minute", e.Minute, 6},
	}

	var b strings.Builder
	for _, f := range subFields {
		bits, err := IntToBits(int64(f.value), f.width, false)
		if err != nil {
			return "", fmt.Errorf("%s: %w", f.name, err)
		}
		b.WriteString(bits)
	}
	return b.String(), nil
}
