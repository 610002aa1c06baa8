package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gnssrx/internal/nmea"
	"gnssrx/internal/reader"
)

// record is the NDJSON envelope: one line per sentence, with the payload
// under a lowercase key matching the message id.
type record struct {
	Type        string        `json:"type"`
	Unsupported bool          `json:"unsupported,omitempty"`
	GGA         *nmea.GGAData `json:"gga,omitempty"`
	RMC         *nmea.RMCData `json:"rmc,omitempty"`
	GSV         *nmea.GSVData `json:"gsv,omitempty"`
	GSA         *nmea.GSAData `json:"gsa,omitempty"`
	VTG         *nmea.VTGData `json:"vtg,omitempty"`
	GLL         *nmea.GLLData `json:"gll,omitempty"`
}

func newEmitter(format string, w io.Writer) (reader.Handler, error) {
	switch format {
	case "ndjson":
		enc := json.NewEncoder(w)
		return func(res nmea.Result) {
			_ = enc.Encode(record{
				Type:        res.Type,
				Unsupported: res.Unsupported,
				GGA:         res.GGA,
				RMC:         res.RMC,
				GSV:         res.GSV,
				GSA:         res.GSA,
				VTG:         res.VTG,
				GLL:         res.GLL,
			})
		}, nil
	case "text":
		return func(res nmea.Result) {
			fmt.Fprintf(w, "%-3s %s\n", res.Type, summarize(res))
		}, nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

func summarize(res nmea.Result) string {
	switch {
	case res.GGA != nil:
		return fmt.Sprintf("fix=%s pos=%s sats=%s hdop=%s alt=%s",
			res.GGA.FixType,
			position(res.GGA.LatDeg, res.GGA.LonDeg),
			optInt(res.GGA.FixSatellites),
			optFloat(res.GGA.HDOP),
			optFloat(res.GGA.AltitudeM))
	case res.RMC != nil:
		return fmt.Sprintf("pos=%s speed=%skt course=%s",
			position(res.RMC.LatDeg, res.RMC.LonDeg),
			optFloat(res.RMC.SpeedKt),
			optFloat(res.RMC.TrueCourseDeg))
	case res.GSV != nil:
		return fmt.Sprintf("%s in-view=%d sentence=%d/%d",
			res.GSV.Gnss, res.GSV.SatsInView, res.GSV.SentenceNum, res.GSV.Sentences)
	case res.GSA != nil:
		prns := make([]string, len(res.GSA.FixPRNs))
		for i, p := range res.GSA.FixPRNs {
			prns[i] = fmt.Sprintf("%d", p)
		}
		return fmt.Sprintf("prns=[%s] pdop=%s hdop=%s vdop=%s",
			strings.Join(prns, " "),
			optFloat(res.GSA.PDOP), optFloat(res.GSA.HDOP), optFloat(res.GSA.VDOP))
	case res.VTG != nil:
		return fmt.Sprintf("course=%s speed=%skt",
			optFloat(res.VTG.TrueCourseDeg), optFloat(res.VTG.SpeedKt))
	case res.GLL != nil:
		return fmt.Sprintf("pos=%.5f,%.5f %02d:%02d:%02d",
			res.GLL.LatDeg, res.GLL.LonDeg,
			res.GLL.FixTime.Hour, res.GLL.FixTime.Minute, res.GLL.FixTime.Second)
	}
	return "(no decoder)"
}

func position(lat, lon *float64) string {
	if lat == nil || lon == nil {
		return "-"
	}
	return fmt.Sprintf("%.5f,%.5f", *lat, *lon)
}

func optFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}

func optInt(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}
