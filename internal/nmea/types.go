package nmea

import "fmt"

// GnssType identifies the satellite constellation a sentence (or a single
// satellite) belongs to, derived from the talker id.
type GnssType int

const (
	GnssGps GnssType = iota
	GnssGlonass
	GnssGalileo
)

func (g GnssType) String() string {
	switch g {
	case GnssGps:
		return "GPS"
	case GnssGlonass:
		return "GLONASS"
	case GnssGalileo:
		return "Galileo"
	}
	return fmt.Sprintf("GnssType(%d)", int(g))
}

// FixType is the GGA fix quality digit (field 6).
type FixType int

const (
	FixInvalid FixType = iota
	FixGps
	FixDGps
	FixPps
	FixRtk
	FixFloatRtk
	FixEstimated
	FixManual
	FixSimulation
)

func (f FixType) String() string {
	switch f {
	case FixInvalid:
		return "invalid"
	case FixGps:
		return "GPS"
	case FixDGps:
		return "DGPS"
	case FixPps:
		return "PPS"
	case FixRtk:
		return "RTK"
	case FixFloatRtk:
		return "float RTK"
	case FixEstimated:
		return "estimated"
	case FixManual:
		return "manual"
	case FixSimulation:
		return "simulation"
	}
	return fmt.Sprintf("FixType(%d)", int(f))
}

// RmcStatus is the RMC status-of-fix character (A/D/V).
type RmcStatus int

const (
	RmcAutonomous RmcStatus = iota
	RmcDifferential
	RmcInvalid
)

// GsaSelectionMode is the GSA mode-1 character: manual or automatic 2D/3D
// selection.
type GsaSelectionMode int

const (
	GsaManual GsaSelectionMode = iota
	GsaAutomatic
)

// GsaFixMode is the GSA mode-2 digit.
type GsaFixMode int

const (
	GsaNoFix GsaFixMode = iota
	GsaFix2D
	GsaFix3D
)

// PosMode is the positioning-system mode indicator present on NMEA >= 2.3
// sentences such as GLL.
type PosMode int

const (
	PosAutonomous PosMode = iota
	PosDifferential
	PosEstimated
	PosManual
	PosDataNotValid
)

// posModeFor maps a mode-indicator letter. Letters outside the documented
// set (including the explicit 'N') read as data-not-valid rather than
// failing the decode.
func posModeFor(b byte) PosMode {
	switch b {
	case 'A':
		return PosAutonomous
	case 'D':
		return PosDifferential
	case 'E':
		return PosEstimated
	case 'M':
		return PosManual
	default:
		return PosDataNotValid
	}
}

// TimeOfDay is a UTC wall-clock time as transmitted, with the fractional
// second rounded to nanosecond resolution.
type TimeOfDay struct {
	Hour       int `json:"hour"`
	Minute     int `json:"minute"`
	Second     int `json:"second"`
	Nanosecond int `json:"nanosecond"`
}

// Date is a calendar date as transmitted. Year is the raw two-digit value;
// century disambiguation is left to the caller.
type Date struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Satellite is one satellite block from a GSV sentence. Elevation, azimuth
// and SNR are nil when the source fields were empty.
type Satellite struct {
	Gnss         GnssType `json:"gnss"`
	PRN          int      `json:"prn"`
	ElevationDeg *float64 `json:"elevation_deg,omitempty"`
	AzimuthDeg   *float64 `json:"azimuth_deg,omitempty"`
	SNRDb        *float64 `json:"snr_db,omitempty"`
}

// GGAData is a decoded fix-data sentence. Optional fields are nil exactly
// when the source field was empty; absence is never encoded as zero.
type GGAData struct {
	FixTime       *TimeOfDay `json:"fix_time,omitempty"`
	FixType       FixType    `json:"fix_type"`
	LatDeg        *float64   `json:"lat_deg,omitempty"`
	LonDeg        *float64   `json:"lon_deg,omitempty"`
	FixSatellites *int       `json:"fix_satellites,omitempty"`
	HDOP          *float64   `json:"hdop,omitempty"`
	AltitudeM     *float64   `json:"altitude_m,omitempty"`
	GeoidHeightM  *float64   `json:"geoid_height_m,omitempty"`
}

// RMCData is a decoded recommended-minimum sentence.
type RMCData struct {
	FixTime       *TimeOfDay `json:"fix_time,omitempty"`
	Status        RmcStatus  `json:"status"`
	LatDeg        *float64   `json:"lat_deg,omitempty"`
	LonDeg        *float64   `json:"lon_deg,omitempty"`
	SpeedKt       *float64   `json:"speed_kt,omitempty"`
	TrueCourseDeg *float64   `json:"true_course_deg,omitempty"`
	FixDate       *Date      `json:"fix_date,omitempty"`
}

// GSVData is one satellites-in-view sentence out of a talker's view group.
// Trailing slots of Satellites are nil when the sentence reports fewer than
// four blocks.
type GSVData struct {
	Gnss        GnssType      `json:"gnss"`
	Sentences   int           `json:"sentences"`
	SentenceNum int           `json:"sentence_num"`
	SatsInView  int           `json:"sats_in_view"`
	Satellites  [4]*Satellite `json:"satellites"`
}

// GSAData is a decoded active-satellites/DOP sentence. FixPRNs is compact:
// empty PRN slots in the source are dropped, not represented as holes.
// PDOP/HDOP/VDOP are either all present or all nil.
type GSAData struct {
	SelectionMode GsaSelectionMode `json:"selection_mode"`
	FixMode       GsaFixMode       `json:"fix_mode"`
	FixPRNs       []int            `json:"fix_prns"`
	PDOP          *float64         `json:"pdop,omitempty"`
	HDOP          *float64         `json:"hdop,omitempty"`
	VDOP          *float64         `json:"vdop,omitempty"`
}

// VTGData is a decoded ground-velocity sentence. SpeedKt prefers the knots
// field; when only km/h is reported it is converted.
type VTGData struct {
	TrueCourseDeg *float64 `json:"true_course_deg,omitempty"`
	SpeedKt       *float64 `json:"speed_kt,omitempty"`
}

// GLLData is a decoded geographic-position sentence. Position and time are
// mandatory in this grammar; Mode is nil when the trailing indicator is
// absent.
type GLLData struct {
	LatDeg  float64   `json:"lat_deg"`
	LonDeg  float64   `json:"lon_deg"`
	FixTime TimeOfDay `json:"fix_time"`
	Mode    *PosMode  `json:"mode,omitempty"`
}
