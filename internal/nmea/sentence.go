package nmea

import (
	"encoding/hex"
	"fmt"
)

// maxSentenceLen is the NMEA 3.01 limit of 82 characters plus slack for
// receivers known to emit oversized sentences (Trimble BX-960 GGA at 91,
// Skytraq S2525F8 PSTI at 100). Anything longer is almost certainly two
// sentences merged by a glitching chipset and is rejected outright.
const maxSentenceLen = 102

// RawSentence is the framed but not yet grammar-decoded form of a sentence.
// Talker, MessageID and Data alias the caller's input and are only valid for
// its lifetime.
type RawSentence struct {
	Talker    []byte
	MessageID []byte
	Data      []byte
	Checksum  byte
}

// Checksum XOR-folds every byte of the given spans.
func Checksum(spans ...[]byte) byte {
	var c byte
	for _, s := range spans {
		for _, b := range s {
			c ^= b
		}
	}
	return c
}

// CalcChecksum computes the checksum over the span the declared value
// covers: talker id, message id, the separating comma, and the payload.
func (s *RawSentence) CalcChecksum() byte {
	return Checksum(s.Talker, s.MessageID, []byte{','}, s.Data)
}

// ParseSentence strips the envelope from one candidate sentence:
//
//	'$' talker{2} message{3} ',' payload '*' hex{2}
//
// The payload runs to the first '*'; bytes after the checksum digits
// (typically CR/LF) are ignored. The declared checksum is decoded here but
// not verified; Decode compares it against CalcChecksum.
func ParseSentence(b []byte) (RawSentence, error) {
	if len(b) > maxSentenceLen {
		return RawSentence{}, fmt.Errorf("%w: %d bytes", ErrTooLong, len(b))
	}
	if len(b) < 1 || b[0] != '$' {
		return RawSentence{}, fmt.Errorf("%w: missing '$'", ErrMalformed)
	}
	if len(b) < 7 || b[6] != ',' {
		return RawSentence{}, fmt.Errorf("%w: truncated header", ErrMalformed)
	}
	star := -1
	for i := 7; i < len(b); i++ {
		if b[i] == '*' {
			star = i
			break
		}
	}
	if star == -1 {
		return RawSentence{}, fmt.Errorf("%w: unterminated payload", ErrMalformed)
	}
	if star+3 > len(b) {
		return RawSentence{}, fmt.Errorf("%w: short checksum", ErrMalformed)
	}
	var ck [1]byte
	if _, err := hex.Decode(ck[:], b[star+1:star+3]); err != nil {
		return RawSentence{}, fmt.Errorf("%w: %q", ErrChecksumHex, b[star+1:star+3])
	}
	return RawSentence{
		Talker:    b[1:3],
		MessageID: b[3:6],
		Data:      b[7:star],
		Checksum:  ck[0],
	}, nil
}
