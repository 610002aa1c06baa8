package nmea

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeGGA(t *testing.T, raw []byte) GGAData {
	t.Helper()
	s, err := ParseSentence(raw)
	require.NoError(t, err)
	require.Equal(t, s.CalcChecksum(), s.Checksum)
	d, err := DecodeGGA(&s)
	require.NoError(t, err)
	return d
}

func TestDecodeGGA_Full(t *testing.T) {
	d := decodeGGA(t, line("GPGGA,033745.0,5650.82344,N,03548.9778,E,1,07,1.8,101.2,M,14.7,M,,"))

	require.NotNil(t, d.FixTime)
	assert.Equal(t, TimeOfDay{Hour: 3, Minute: 37, Second: 45}, *d.FixTime)
	assert.Equal(t, FixGps, d.FixType)
	require.NotNil(t, d.LatDeg)
	assert.InDelta(t, 56.0+50.82344/60, *d.LatDeg, 1e-9)
	require.NotNil(t, d.LonDeg)
	assert.InDelta(t, 35.0+48.9778/60, *d.LonDeg, 1e-9)
	require.NotNil(t, d.FixSatellites)
	assert.Equal(t, 7, *d.FixSatellites)
	require.NotNil(t, d.HDOP)
	assert.InDelta(t, 1.8, *d.HDOP, 1e-9)
	require.NotNil(t, d.AltitudeM)
	assert.InDelta(t, 101.2, *d.AltitudeM, 1e-9)
	require.NotNil(t, d.GeoidHeightM)
	assert.InDelta(t, 14.7, *d.GeoidHeightM, 1e-9)
}

func TestDecodeGGA_AllEmpty(t *testing.T) {
	d := decodeGGA(t, []byte("$GPGGA,,,,,,0,,,,,,,,*66"))
	assert.Equal(t, GGAData{FixType: FixInvalid}, d)
}

func TestDecodeGGA_PartialOptionals(t *testing.T) {
	d := decodeGGA(t, []byte("$GPGGA,133605.0,5521.75946,N,03731.93769,E,0,00,,,M,,M,,*4F"))
	assert.Equal(t, FixInvalid, d.FixType)
	require.NotNil(t, d.FixSatellites)
	assert.Equal(t, 0, *d.FixSatellites)
	assert.Nil(t, d.HDOP)
	assert.Nil(t, d.AltitudeM)
	assert.Nil(t, d.GeoidHeightM)
}

func TestDecodeGGA_BadQuality(t *testing.T) {
	s, err := ParseSentence(line("GPGGA,,,,,,9,,,,,,,,"))
	require.NoError(t, err)
	_, err = DecodeGGA(&s)
	assert.ErrorIs(t, err, ErrField)

	s, err = ParseSentence(line("GPGGA,,,,,,,,,,,,,,"))
	require.NoError(t, err)
	_, err = DecodeGGA(&s)
	assert.ErrorIs(t, err, ErrField)
}

func TestDecodeGGA_WrongType(t *testing.T) {
	s, err := ParseSentence(line("GPRMC,,V,,,,,,,,,,N"))
	require.NoError(t, err)
	_, err = DecodeGGA(&s)
	assert.ErrorIs(t, err, ErrSentenceType)
}
