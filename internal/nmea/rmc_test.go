package nmea

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRMC_Full(t *testing.T) {
	s, err := ParseSentence([]byte("$GPRMC,225446.33,A,4916.45,N,12311.12,W,000.5,054.7,191194,020.3,E,A*2B"))
	require.NoError(t, err)
	require.Equal(t, s.CalcChecksum(), s.Checksum)

	d, err := DecodeRMC(&s)
	require.NoError(t, err)

	require.NotNil(t, d.FixTime)
	assert.Equal(t, TimeOfDay{Hour: 22, Minute: 54, Second: 46, Nanosecond: 330_000_000}, *d.FixTime)
	assert.Equal(t, RmcAutonomous, d.Status)
	require.NotNil(t, d.LatDeg)
	assert.InDelta(t, 49.0+16.45/60, *d.LatDeg, 1e-9)
	require.NotNil(t, d.LonDeg)
	assert.InDelta(t, -(123.0 + 11.12/60), *d.LonDeg, 1e-9)
	require.NotNil(t, d.SpeedKt)
	assert.InDelta(t, 0.5, *d.SpeedKt, 1e-9)
	require.NotNil(t, d.TrueCourseDeg)
	assert.InDelta(t, 54.7, *d.TrueCourseDeg, 1e-9)
	require.NotNil(t, d.FixDate)
	assert.Equal(t, Date{Day: 19, Month: 11, Year: 94}, *d.FixDate)
}

func TestDecodeRMC_Void(t *testing.T) {
	// A void fix still decodes as a record; only the status marks it
	// invalid.
	s, err := ParseSentence([]byte("$GPRMC,,V,,,,,,,,,,N*53"))
	require.NoError(t, err)
	require.Equal(t, s.CalcChecksum(), s.Checksum)

	d, err := DecodeRMC(&s)
	require.NoError(t, err)
	assert.Equal(t, RMCData{Status: RmcInvalid}, d)
}

func TestDecodeRMC_BadStatus(t *testing.T) {
	s, err := ParseSentence(line("GPRMC,225446.33,X,4916.45,N,12311.12,W,000.5,054.7,191194,,,"))
	require.NoError(t, err)
	_, err = DecodeRMC(&s)
	assert.ErrorIs(t, err, ErrField)
}

func TestDecodeRMC_BadDate(t *testing.T) {
	s, err := ParseSentence(line("GPRMC,225446.33,A,4916.45,N,12311.12,W,000.5,054.7,191394,,,"))
	require.NoError(t, err)
	_, err = DecodeRMC(&s)
	assert.ErrorIs(t, err, ErrField)
}
