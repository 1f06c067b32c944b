package ais

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referencePosition is the known-good type 1 message used throughout the
// tests; its armored payload is a published reference value.
func referencePosition() PositionReport {
	return PositionReport{
		MMSI:        205344990,
		NavStatus:   15,
		Speed:       0,
		Lon:         4.407046666667,
		Lat:         51.229636666667,
		Course:      110.7,
		TrueHeading: TrueHeadingNotAvailable,
		Timestamp:   40,
	}
}

func TestPositionReportPayloadBits(t *testing.T) {
	msg := referencePosition()
	bits, err := msg.PayloadBits()
	require.NoError(t, err)
	assert.Len(t, bits, PositionReportBits)
	assert.Equal(t, PositionReportBits, msg.BitLength())

	// Leading fields: message type 1, repeat indicator 0, then the MMSI.
	assert.Equal(t, "000001", bits[:6])
	assert.Equal(t, "00", bits[6:8])
	assert.Equal(t, "001100001111010101000011011110", bits[8:38])
}

func TestPositionReportEncode(t *testing.T) {
	armored, fillBits, err := Encode(referencePosition())
	require.NoError(t, err)
	assert.Equal(t, "133m@ogP00PD;88MD5MTDww@2D7k", armored)
	assert.Len(t, armored, 28)
	assert.Equal(t, 0, fillBits)
}

func TestPositionReportEncodeIdempotent(t *testing.T) {
	// A 168-bit payload aligns exactly to six bits; encoding the same
	// message twice must report the same payload and fill count both times.
	msg := referencePosition()
	first, firstFill, err := Encode(msg)
	require.NoError(t, err)
	second, secondFill, err := Encode(msg)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, firstFill, secondFill)
	assert.Equal(t, 0, firstFill)
}

func TestPositionReportFieldOverflow(t *testing.T) {
	msg := referencePosition()
	msg.MMSI = 1 << 30 // 31 bits
	_, _, err := Encode(msg)
	require.Error(t, err)
	var rangeErr *RangeError
	assert.True(t, errors.As(err, &rangeErr))

	msg = referencePosition()
	msg.Timestamp = 64
	_, _, err = Encode(msg)
	assert.Error(t, err)
}

func TestPositionReportSouthWest(t *testing.T) {
	// Negative coordinates use two's complement at the declared widths.
	msg := referencePosition()
	msg.Lon = -122.4
	msg.Lat = -33.85
	bits, err := msg.PayloadBits()
	require.NoError(t, err)

	lonBits := bits[61:89]
	latBits := bits[89:116]
	assert.Equal(t, byte('1'), lonBits[0])
	assert.Equal(t, byte('1'), latBits[0])

	lon, err := BitsToInt(lonBits)
	require.NoError(t, err)
	assert.Equal(t, int64(-122.4*latLonScale), int64(lon)-int64(1)<<lenLon)
	lat, err := BitsToInt(latBits)
	require.NoError(t, err)
	assert.Equal(t, int64(-33.85*latLonScale), int64(lat)-int64(1)<<lenLat)
}
