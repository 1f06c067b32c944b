package ais

import "fmt"

const (
	sentenceType = "AIVDM"

	// DefaultChannel is the AIS radio channel designator used when the
	// caller does not pick one.
	DefaultChannel = "A"

	// MaxPayloadChars is the maximum number of armored payload characters
	// per sentence, keeping the full sentence within the NMEA 0183 frame
	// limit.
	MaxPayloadChars = 60

	// fragmentGroupID is shared by every sentence of a multi-part message.
	// It is fixed at "1"; distinctness across messages sent close together
	// is not guaranteed.
	fragmentGroupID = "1"
)

// Sentences frames an encoded message as one or more AIVDM sentences, each
// terminated by CRLF. Multi-part messages share a fragment group id and
// carry the fill-bit count only on the final sentence; single-part messages
// leave the group id field empty.
func Sentences(m Message, channel string) ([]string, error) {
	if channel == "" {
		channel = DefaultChannel
	}

	armored, fillBits, err := Encode(m)
	if err != nil {
		return nil, err
	}

	chunks := chunkPayload(armored, MaxPayloadChars)
	count := len(chunks)
	groupID := ""
	if count > 1 {
		groupID = fragmentGroupID
	}

	sentences := make([]string, 0, count)
	for i, chunk := range chunks {
		fill := 0
		if i == count-1 {
			fill = fillBits
		}
		body := fmt.Sprintf("%s,%d,%d,%s,%s,%s,%d",
			sentenceType, count, i+1, groupID, channel, chunk, fill)
		sentences = append(sentences, fmt.Sprintf("!%s*%s\r\n", body, Checksum(body)))
	}
	return sentences, nil
}

func chunkPayload(s string, size int) []string {
	chunks := make([]string, 0, (len(s)+size-1)/size)
	for len(s) > size {
		chunks = append(chunks, s[:size])
		s = s[size:]
	}
	return append(chunks, s)
}
