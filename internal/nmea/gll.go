package nmea

import "fmt"

// DecodeGLL decodes a GLL (geographic position) sentence body.
//
// GLL,4916.45,N,12311.12,W,225444,A,A
//
//	1,2: latitude, N/S
//	3,4: longitude, E/W
//	5:   UTC time of position
//	6:   data status: 'A' only; 'V' (invalid) fails the decode
//	7:   positioning-system mode indicator (NMEA >= 2.3, optional)
//
// Unlike GGA and RMC, which represent invalid fixes as successfully decoded
// records, GLL rejects anything but an 'A' status. Position and time are
// mandatory here; there is no all-empty no-fix form.
func DecodeGLL(s *RawSentence) (GLLData, error) {
	if string(s.MessageID) != TypeGLL {
		return GLLData{}, fmt.Errorf("%w: %q is not GLL", ErrSentenceType, s.MessageID)
	}
	c := newCursor(s.Data)
	var d GLLData

	lat, lon, err := c.reqLatLon()
	if err != nil {
		return GLLData{}, err
	}
	d.LatDeg, d.LonDeg = lat, lon
	if err := c.comma(); err != nil {
		return GLLData{}, err
	}

	tf := c.field()
	t, err := parseTimeOfDay(tf)
	if err != nil {
		return GLLData{}, err
	}
	d.FixTime = t
	if err := c.comma(); err != nil {
		return GLLData{}, err
	}

	if _, err := c.oneOf("A"); err != nil {
		return GLLData{}, fmt.Errorf("%w: data status must be 'A'", ErrField)
	}

	// Mode indicator, when the receiver sends one.
	if c.optByte(',') {
		if f := c.field(); len(f) > 0 {
			m := posModeFor(f[0])
			d.Mode = &m
		}
	}
	return d, nil
}
