package nmea

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	got, err := parseTimeOfDay([]byte("125619"))
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 12, Minute: 56, Second: 19}, got)

	got, err = parseTimeOfDay([]byte("125619.5"))
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 12, Minute: 56, Second: 19, Nanosecond: 500_000_000}, got)

	got, err = parseTimeOfDay([]byte("225446.33"))
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 22, Minute: 54, Second: 46, Nanosecond: 330_000_000}, got)
}

func TestParseTimeOfDay_Invalid(t *testing.T) {
	for _, in := range []string{
		"245619",   // hour >= 24
		"126019",   // minute >= 60
		"1256-9",   // negative seconds
		"1256",     // no seconds
		"ab5619",   // non-numeric hour
		"1256xx",   // non-numeric seconds
	} {
		_, err := parseTimeOfDay([]byte(in))
		assert.ErrorIs(t, err, ErrField, "input %q", in)
	}
}

func TestParseDate(t *testing.T) {
	got, err := parseDate([]byte("191194"))
	require.NoError(t, err)
	assert.Equal(t, Date{Day: 19, Month: 11, Year: 94}, got)

	// The two-digit year is never expanded to four digits.
	got, err = parseDate([]byte("010100"))
	require.NoError(t, err)
	assert.Equal(t, Date{Day: 1, Month: 1, Year: 0}, got)

	// Only coarse range checks run: Feb 31 is accepted.
	got, err = parseDate([]byte("310294"))
	require.NoError(t, err)
	assert.Equal(t, Date{Day: 31, Month: 2, Year: 94}, got)
}

func TestParseDate_Invalid(t *testing.T) {
	for _, in := range []string{
		"191394", // month 13
		"190094", // month 0
		"321294", // day 32
		"001294", // day 0
		"19119",  // short
		"1911944",
		"19II94",
	} {
		_, err := parseDate([]byte(in))
		assert.ErrorIs(t, err, ErrField, "input %q", in)
	}
}

func TestLatLon(t *testing.T) {
	c := newCursor([]byte("4807.038,N,01131.324,E"))
	lat, lon, err := c.reqLatLon()
	require.NoError(t, err)
	assert.InDelta(t, 48.0+7.038/60, lat, 1e-9)
	assert.InDelta(t, 11.0+31.324/60, lon, 1e-9)

	c = newCursor([]byte("4916.45,S,12311.12,W"))
	lat, lon, err = c.reqLatLon()
	require.NoError(t, err)
	assert.InDelta(t, -(49.0 + 16.45/60), lat, 1e-9)
	assert.InDelta(t, -(123.0 + 11.12/60), lon, 1e-9)
}

func TestLatLon_NoFix(t *testing.T) {
	// Four empty fields are the documented no-fix encoding; the trailing
	// comma belongs to the caller.
	c := newCursor([]byte(",,,,1"))
	lat, lon, err := c.optLatLon()
	require.NoError(t, err)
	assert.Nil(t, lat)
	assert.Nil(t, lon)
	require.NoError(t, c.comma())
	assert.Equal(t, []byte("1"), c.rest())
}

func TestLatLon_Invalid(t *testing.T) {
	for _, in := range []string{
		"4807.038,X,01131.324,E", // bad hemisphere
		"48,N,01131.324,E",       // no minutes
		"4807.038,N,,E",          // lon empty, lat present
		",,4807.038,N",           // lat empty, lon present
	} {
		c := newCursor([]byte(in))
		_, _, err := c.optLatLon()
		assert.ErrorIs(t, err, ErrField, "input %q", in)
	}
}
