package nmea

import "fmt"

// DecodeGSA decodes a GSA (active satellites / DOP) sentence body.
//
// GSA,A,3,19,28,14,18,27,22,31,39,,,,,1.7,1.0,1.3
//
//	1:    selection mode: M=manual, A=automatic 2D/3D
//	2:    fix mode: 1=no fix, 2=2D, 3=3D
//	3-14: PRNs of satellites used in the fix (empty for unused slots)
//	15:   PDOP
//	16:   HDOP
//	17:   VDOP
//
// Documentation usually says 12 PRN slots but receivers disagree (the
// CH-4701 emits 24), so the list is read until the DOP tail starts. Some
// no-fix chipsets emit a short all-empty tail ("A,1,,,,"); that decodes as
// an empty PRN list with no DOP values rather than failing.
func DecodeGSA(s *RawSentence) (GSAData, error) {
	if string(s.MessageID) != TypeGSA {
		return GSAData{}, fmt.Errorf("%w: %q is not GSA", ErrSentenceType, s.MessageID)
	}
	c := newCursor(s.Data)
	var d GSAData

	m1, err := c.oneOf("MA")
	if err != nil {
		return GSAData{}, err
	}
	if m1 == 'M' {
		d.SelectionMode = GsaManual
	} else {
		d.SelectionMode = GsaAutomatic
	}
	if err := c.comma(); err != nil {
		return GSAData{}, err
	}

	m2, err := c.oneOf("123")
	if err != nil {
		return GSAData{}, err
	}
	d.FixMode = GsaFixMode(m2 - '1')
	if err := c.comma(); err != nil {
		return GSAData{}, err
	}

	// All-comma tail: no PRNs, no DOP values.
	if rest := c.rest(); len(rest) > 0 && allCommas(rest) {
		return d, nil
	}

	// PRN slots run until a field no longer parses as "digits + comma";
	// absent slots are dropped so the result is a compact list.
	for {
		mark := c.pos
		prn := c.optUint()
		if err := c.comma(); err != nil {
			c.pos = mark
			break
		}
		if prn != nil {
			d.FixPRNs = append(d.FixPRNs, *prn)
		}
	}

	pdop, err := c.reqFloat()
	if err != nil {
		return GSAData{}, err
	}
	if err := c.comma(); err != nil {
		return GSAData{}, err
	}
	hdop, err := c.reqFloat()
	if err != nil {
		return GSAData{}, err
	}
	if err := c.comma(); err != nil {
		return GSAData{}, err
	}
	vdop, err := c.reqFloat()
	if err != nil {
		return GSAData{}, err
	}
	d.PDOP, d.HDOP, d.VDOP = &pdop, &hdop, &vdop
	return d, nil
}
