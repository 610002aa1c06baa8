package nmea

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// parseTimeOfDay decodes hhmmss.sss: fixed 2-digit hour and minute, then
// variable-length real seconds. The fractional part rounds to nanoseconds.
func parseTimeOfDay(f []byte) (TimeOfDay, error) {
	if len(f) < 5 {
		return TimeOfDay{}, fmt.Errorf("%w: time %q too short", ErrField, f)
	}
	hour, ok := atoiDigits(f[0:2])
	if !ok {
		return TimeOfDay{}, fmt.Errorf("%w: bad hour %q", ErrField, f[0:2])
	}
	minute, ok := atoiDigits(f[2:4])
	if !ok {
		return TimeOfDay{}, fmt.Errorf("%w: bad minute %q", ErrField, f[2:4])
	}
	sec, err := strconv.ParseFloat(string(f[4:]), 64)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: bad seconds %q", ErrField, f[4:])
	}
	if sec < 0 {
		return TimeOfDay{}, fmt.Errorf("%w: negative seconds", ErrField)
	}
	if hour >= 24 {
		return TimeOfDay{}, fmt.Errorf("%w: hour %d >= 24", ErrField, hour)
	}
	if minute >= 60 {
		return TimeOfDay{}, fmt.Errorf("%w: minute %d >= 60", ErrField, minute)
	}
	whole, frac := math.Modf(sec)
	return TimeOfDay{
		Hour:       hour,
		Minute:     minute,
		Second:     int(whole),
		Nanosecond: int(math.Round(frac * 1e9)),
	}, nil
}

// optTime decodes the next field as a time of day, or absence when empty.
func (c *cursor) optTime() (*TimeOfDay, error) {
	f := c.peekField()
	if len(f) == 0 {
		return nil, nil
	}
	t, err := parseTimeOfDay(f)
	if err != nil {
		return nil, err
	}
	c.pos += len(f)
	return &t, nil
}

// parseDate decodes ddmmyy. The two-digit year is kept as transmitted and
// only coarse range checks run: month 1-12, day 1-31, no per-month or
// leap-year validation.
func parseDate(f []byte) (Date, error) {
	if len(f) != 6 {
		return Date{}, fmt.Errorf("%w: date %q not ddmmyy", ErrField, f)
	}
	day, ok1 := atoiDigits(f[0:2])
	month, ok2 := atoiDigits(f[2:4])
	year, ok3 := atoiDigits(f[4:6])
	if !ok1 || !ok2 || !ok3 {
		return Date{}, fmt.Errorf("%w: date %q not numeric", ErrField, f)
	}
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("%w: month %d out of range", ErrField, month)
	}
	if day < 1 || day > 31 {
		return Date{}, fmt.Errorf("%w: day %d out of range", ErrField, day)
	}
	return Date{Day: day, Month: month, Year: year}, nil
}

// optDate decodes the next field as a calendar date, or absence when empty.
func (c *cursor) optDate() (*Date, error) {
	f := c.peekField()
	if len(f) == 0 {
		return nil, nil
	}
	d, err := parseDate(f)
	if err != nil {
		return nil, err
	}
	c.pos += len(f)
	return &d, nil
}

// reqLatLon decodes the four-field position group ddmm.mmmm,N/S,dddmm.mmmm,E/W
// into signed decimal degrees.
func (c *cursor) reqLatLon() (float64, float64, error) {
	lat, err := c.coordinate(2, "NS")
	if err != nil {
		return 0, 0, err
	}
	if err := c.comma(); err != nil {
		return 0, 0, err
	}
	lon, err := c.coordinate(3, "EW")
	if err != nil {
		return 0, 0, err
	}
	return lat, lon, nil
}

// optLatLon decodes the position group, treating four consecutive empty
// fields as the documented no-fix encoding.
func (c *cursor) optLatLon() (*float64, *float64, error) {
	if bytes.HasPrefix(c.rest(), []byte(",,,")) {
		c.pos += 3
		return nil, nil, nil
	}
	lat, lon, err := c.reqLatLon()
	if err != nil {
		return nil, nil, err
	}
	return &lat, &lon, nil
}

// coordinate decodes one value/hemisphere field pair: a fixed-width degree
// prefix, floating minutes, and the hemisphere letter that sets the sign.
func (c *cursor) coordinate(degWidth int, hemis string) (float64, error) {
	d, err := c.takeFixed(degWidth)
	if err != nil {
		return 0, err
	}
	deg, ok := atoiDigits(d)
	if !ok {
		return 0, fmt.Errorf("%w: bad degrees %q", ErrField, d)
	}
	mf := c.peekField()
	minutes, err := strconv.ParseFloat(string(mf), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad minutes %q", ErrField, mf)
	}
	c.pos += len(mf)
	if err := c.comma(); err != nil {
		return 0, err
	}
	hemi, err := c.oneOf(hemis)
	if err != nil {
		return 0, err
	}
	v := float64(deg) + minutes/60
	if hemi == 'S' || hemi == 'W' {
		v = -v
	}
	return v, nil
}

func atoiDigits(b []byte) (int, bool) {
	if len(b) == 0 || !allDigits(b) {
		return 0, false
	}
	v, err := strconv.Atoi(string(b))
	if err != nil {
		return 0, false
	}
	return v, true
}
