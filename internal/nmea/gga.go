package nmea

import "fmt"

// DecodeGGA decodes a GGA (fix data) sentence body.
//
// GGA,123519,4807.038,N,01131.324,E,1,08,0.9,545.4,M,46.9,M,,
//
//	1:     time of fix (hhmmss.sss UTC)
//	2,3:   latitude, N/S
//	4,5:   longitude, E/W
//	6:     fix quality digit 0-8
//	7:     satellites being tracked
//	8:     horizontal dilution of precision
//	9,10:  altitude above mean sea level, 'M'
//	11,12: geoid height above WGS84 ellipsoid, 'M'
//
// The trailing DGPS age and station id fields are not decoded.
func DecodeGGA(s *RawSentence) (GGAData, error) {
	if string(s.MessageID) != TypeGGA {
		return GGAData{}, fmt.Errorf("%w: %q is not GGA", ErrSentenceType, s.MessageID)
	}
	c := newCursor(s.Data)
	var d GGAData

	t, err := c.optTime()
	if err != nil {
		return GGAData{}, err
	}
	d.FixTime = t
	if err := c.comma(); err != nil {
		return GGAData{}, err
	}

	d.LatDeg, d.LonDeg, err = c.optLatLon()
	if err != nil {
		return GGAData{}, err
	}
	if err := c.comma(); err != nil {
		return GGAData{}, err
	}

	q, err := c.oneOf("012345678")
	if err != nil {
		return GGAData{}, err
	}
	d.FixType = FixType(q - '0')
	if err := c.comma(); err != nil {
		return GGAData{}, err
	}

	d.FixSatellites = c.optUint()
	if err := c.comma(); err != nil {
		return GGAData{}, err
	}

	d.HDOP = c.optFloat()
	if err := c.comma(); err != nil {
		return GGAData{}, err
	}

	d.AltitudeM = c.optFloat()
	if err := c.comma(); err != nil {
		return GGAData{}, err
	}
	c.optByte('M')
	if err := c.comma(); err != nil {
		return GGAData{}, err
	}

	d.GeoidHeightM = c.optFloat()
	if err := c.comma(); err != nil {
		return GGAData{}, err
	}
	c.optByte('M')

	// Remaining fields (DGPS age, station id) are ignored.
	return d, nil
}
