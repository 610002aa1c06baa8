package nmea

import "errors"

// Decode failures are terminal per call; nothing is retried and no partial
// record is returned. Callers that need to distinguish failure kinds can use
// errors.Is against these sentinels.
var (
	// ErrTooLong reports input over the protocol length ceiling. Overlong
	// input is the signature of two sentences merged by a glitching
	// receiver, so it is rejected before any tokenization.
	ErrTooLong = errors.New("nmea: sentence too long")

	// ErrMalformed reports a broken envelope: missing '$' or '*',
	// truncated talker/message id, or an unterminated payload.
	ErrMalformed = errors.New("nmea: malformed sentence")

	// ErrChecksumHex reports a checksum suffix that is not two hex digits.
	ErrChecksumHex = errors.New("nmea: checksum is not valid hex")

	// ErrChecksum reports a computed XOR that differs from the declared
	// checksum.
	ErrChecksum = errors.New("nmea: checksum mismatch")

	// ErrSentenceType reports a typed decoder invoked on a sentence whose
	// message id does not match.
	ErrSentenceType = errors.New("nmea: wrong sentence type")

	// ErrField reports a grammar violation inside a sentence body: wrong
	// field count, invalid enumerated character, numeric parse failure, or
	// an out-of-range time or date component.
	ErrField = errors.New("nmea: invalid field")
)
