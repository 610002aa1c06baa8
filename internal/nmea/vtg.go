package nmea

import "fmt"

// One knot in km/h.
const kmhPerKnot = 1.852

// DecodeVTG decodes a VTG (track made good and ground speed) sentence body.
//
// VTG,054.7,T,034.4,M,005.5,N,010.2,K
//
//	1,2: track made good, 'T' (degrees true)
//	3,4: track made good, 'M' (degrees magnetic, discarded)
//	5,6: speed over ground, 'N' (knots)
//	7,8: speed over ground, 'K' (km/h)
//
// SpeedKt prefers the knots field; the km/h field is only consulted when
// knots is absent, converted by dividing by 1.852.
func DecodeVTG(s *RawSentence) (VTGData, error) {
	if string(s.MessageID) != TypeVTG {
		return VTGData{}, fmt.Errorf("%w: %q is not VTG", ErrSentenceType, s.MessageID)
	}
	c := newCursor(s.Data)
	var d VTGData

	d.TrueCourseDeg = c.optFloat()
	if err := c.comma(); err != nil {
		return VTGData{}, err
	}
	c.optByte('T')
	if err := c.comma(); err != nil {
		return VTGData{}, err
	}

	// Magnetic course, discarded.
	c.optFloat()
	if err := c.comma(); err != nil {
		return VTGData{}, err
	}
	c.optByte('M')
	if err := c.comma(); err != nil {
		return VTGData{}, err
	}

	knots := c.optFloat()
	if err := c.comma(); err != nil {
		return VTGData{}, err
	}
	c.optByte('N')
	kmh := c.optFloat()
	if err := c.comma(); err != nil {
		return VTGData{}, err
	}
	c.optByte('K')

	switch {
	case knots != nil:
		d.SpeedKt = knots
	case kmh != nil:
		v := *kmh / kmhPerKnot
		d.SpeedKt = &v
	}
	return d, nil
}
