package nmea

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeVTG(t *testing.T, raw string) VTGData {
	t.Helper()
	s, err := ParseSentence([]byte(raw))
	require.NoError(t, err)
	require.Equal(t, s.CalcChecksum(), s.Checksum)
	d, err := DecodeVTG(&s)
	require.NoError(t, err)
	return d
}

func TestDecodeVTG_AllEmpty(t *testing.T) {
	d := decodeVTG(t, "$GPVTG,,T,,M,,N,,K,N*2C")
	assert.Nil(t, d.TrueCourseDeg)
	assert.Nil(t, d.SpeedKt)
}

func TestDecodeVTG_KnotsPreferred(t *testing.T) {
	d := decodeVTG(t, "$GPVTG,360.0,T,348.7,M,000.0,N,000.0,K*43")
	require.NotNil(t, d.TrueCourseDeg)
	assert.InDelta(t, 360.0, *d.TrueCourseDeg, 1e-9)
	require.NotNil(t, d.SpeedKt)
	assert.InDelta(t, 0.0, *d.SpeedKt, 1e-9)
}

func TestDecodeVTG_Course(t *testing.T) {
	d := decodeVTG(t, "$GPVTG,054.7,T,034.4,M,005.5,N,010.2,K*48")
	require.NotNil(t, d.TrueCourseDeg)
	assert.InDelta(t, 54.7, *d.TrueCourseDeg, 1e-9)
	require.NotNil(t, d.SpeedKt)
	assert.InDelta(t, 5.5, *d.SpeedKt, 1e-9)
}

func TestDecodeVTG_KmhFallback(t *testing.T) {
	// No knots value and no knots unit field at all (some receivers skip
	// it): the km/h field converts.
	s, err := ParseSentence(line("GPVTG,054.7,T,,M,,010.2,K"))
	require.NoError(t, err)
	d, err := DecodeVTG(&s)
	require.NoError(t, err)
	require.NotNil(t, d.SpeedKt)
	assert.InDelta(t, 10.2/1.852, *d.SpeedKt, 1e-9)
}
