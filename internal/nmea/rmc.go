package nmea

import "fmt"

// DecodeRMC decodes an RMC (recommended minimum) sentence body.
//
// RMC,225446.33,A,4916.45,N,12311.12,W,000.5,054.7,191194,020.3,E,A
//
//	1:     time of fix (hhmmss.sss UTC)
//	2:     status: A=autonomous, D=differential, V=invalid
//	3,4:   latitude, N/S
//	5,6:   longitude, E/W
//	7:     speed over ground, knots
//	8:     course made good, degrees true
//	9:     date of fix (ddmmyy)
//
// The trailing magnetic variation and FAA mode fields are not decoded;
// SiRF chipsets omit them entirely.
func DecodeRMC(s *RawSentence) (RMCData, error) {
	if string(s.MessageID) != TypeRMC {
		return RMCData{}, fmt.Errorf("%w: %q is not RMC", ErrSentenceType, s.MessageID)
	}
	c := newCursor(s.Data)
	var d RMCData

	t, err := c.optTime()
	if err != nil {
		return RMCData{}, err
	}
	d.FixTime = t
	if err := c.comma(); err != nil {
		return RMCData{}, err
	}

	st, err := c.oneOf("ADV")
	if err != nil {
		return RMCData{}, err
	}
	switch st {
	case 'A':
		d.Status = RmcAutonomous
	case 'D':
		d.Status = RmcDifferential
	case 'V':
		d.Status = RmcInvalid
	}
	if err := c.comma(); err != nil {
		return RMCData{}, err
	}

	d.LatDeg, d.LonDeg, err = c.optLatLon()
	if err != nil {
		return RMCData{}, err
	}
	if err := c.comma(); err != nil {
		return RMCData{}, err
	}

	d.SpeedKt = c.optFloat()
	if err := c.comma(); err != nil {
		return RMCData{}, err
	}

	d.TrueCourseDeg = c.optFloat()
	if err := c.comma(); err != nil {
		return RMCData{}, err
	}

	date, err := c.optDate()
	if err != nil {
		return RMCData{}, err
	}
	d.FixDate = date
	if err := c.comma(); err != nil {
		return RMCData{}, err
	}

	return d, nil
}
