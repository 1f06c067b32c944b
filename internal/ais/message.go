package ais

import (
	"fmt"
	"strings"
)

// Message is an AIS payload type: an ordered set of bit fields with a
// declared total length.
type Message interface {
	// PayloadBits returns the full payload as a bit string, before any
	// six-bit alignment padding.
	PayloadBits() (string, error)
	// BitLength is the declared payload length in bits.
	BitLength() int
}

// Encode armors a message payload for transmission. The returned fill count
// is the number of zero bits (0-5) appended to reach a six-bit boundary; it
// is computed fresh on every call, so repeated encodes of the same message
// yield identical results.
func Encode(m Message) (string, int, error) {
	bits, err := m.PayloadBits()
	if err != nil {
		return "", 0, err
	}
	if len(bits) != m.BitLength() {
		return "", 0, &EncodingError{
			Msg: fmt.Sprintf("payload is %d bits, declared length is %d", len(bits), m.BitLength()),
		}
	}
	return Armor(bits)
}

// payloadBuilder accumulates ordered bit fields, keeping the first error.
type payloadBuilder struct {
	parts []string
	err   error
}

func (b *payloadBuilder) uint(name string, value int64, width int) {
	if b.err != nil {
		return
	}
	bits, err := IntToBits(value, width, false)
	if err != nil {
		b.err = fmt.Errorf("%s: %w", name, err)
		return
	}
	b.parts = append(b.parts, bits)
}

func (b *payloadBuilder) raw(bits string, err error) {
	if b.err != nil {
		return
	}
	if err != nil {
		b.err = err
		return
	}
	b.parts = append(b.parts, bits)
}

func (b *payloadBuilder) bits() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	return strings.Join(b.parts, ""), nil
}
