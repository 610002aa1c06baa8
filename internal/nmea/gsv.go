package nmea

import "fmt"

// DecodeGSV decodes a GSV (satellites in view) sentence body.
//
// GSV,2,1,08,01,40,083,46,02,17,308,41,12,07,344,39,14,22,228,45
//
//	1:   number of sentences for the full view group
//	2:   this sentence's 1-based index
//	3:   total satellites in view
//	4-7: PRN, elevation deg, azimuth deg, SNR dB
//	     (repeated for up to 4 satellites per sentence)
//
// The talker id selects the constellation: GP=GPS, GA=Galileo, GL/GN=GLONASS.
// Receivers use GL/GN inconsistently for mixed-constellation groups; both map
// to GLONASS here. Any other talker fails the decode.
func DecodeGSV(s *RawSentence) (GSVData, error) {
	if string(s.MessageID) != TypeGSV {
		return GSVData{}, fmt.Errorf("%w: %q is not GSV", ErrSentenceType, s.MessageID)
	}
	gnss, err := gnssForTalker(s.Talker)
	if err != nil {
		return GSVData{}, err
	}

	c := newCursor(s.Data)
	d := GSVData{Gnss: gnss}

	if d.Sentences, err = c.reqUint(); err != nil {
		return GSVData{}, err
	}
	if err := c.comma(); err != nil {
		return GSVData{}, err
	}
	if d.SentenceNum, err = c.reqUint(); err != nil {
		return GSVData{}, err
	}
	if err := c.comma(); err != nil {
		return GSVData{}, err
	}
	if d.SatsInView, err = c.reqUint(); err != nil {
		return GSVData{}, err
	}
	if err := c.comma(); err != nil {
		return GSVData{}, err
	}

	for i := range d.Satellites {
		sat, ok := gsvSatellite(c, gnss)
		if !ok {
			break
		}
		d.Satellites[i] = sat
	}
	return d, nil
}

// gsvSatellite decodes one satellite block. The block is atomic: on any
// failure the cursor rewinds and the remaining slots stay absent.
func gsvSatellite(c *cursor, gnss GnssType) (*Satellite, bool) {
	mark := c.pos
	fail := func() (*Satellite, bool) {
		c.pos = mark
		return nil, false
	}

	prn := c.optUint()
	if prn == nil {
		return fail()
	}
	if err := c.comma(); err != nil {
		return fail()
	}
	elev := c.optUint()
	if err := c.comma(); err != nil {
		return fail()
	}
	az := c.optUint()
	if err := c.comma(); err != nil {
		return fail()
	}
	snr := c.optUint()
	if err := c.commaIfRest(); err != nil {
		return fail()
	}

	return &Satellite{
		Gnss:         gnss,
		PRN:          *prn,
		ElevationDeg: intToFloat(elev),
		AzimuthDeg:   intToFloat(az),
		SNRDb:        intToFloat(snr),
	}, true
}

func gnssForTalker(t []byte) (GnssType, error) {
	switch string(t) {
	case "GP":
		return GnssGps, nil
	case "GA":
		return GnssGalileo, nil
	case "GL", "GN":
		return GnssGlonass, nil
	}
	return 0, fmt.Errorf("%w: unknown GNSS talker %q", ErrField, t)
}

func intToFloat(v *int) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}
