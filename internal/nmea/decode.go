package nmea

import "fmt"

// Message ids with a dedicated decoder.
const (
	TypeGGA = "GGA"
	TypeRMC = "RMC"
	TypeGSV = "GSV"
	TypeGSA = "GSA"
	TypeVTG = "VTG"
	TypeGLL = "GLL"
)

// Result is the tagged outcome of one decode. Type always carries the
// 3-byte message id; for supported kinds exactly one of the payload
// pointers is set, for anything else Unsupported is true and all payload
// pointers are nil.
type Result struct {
	Type        string
	Unsupported bool

	GGA *GGAData
	RMC *RMCData
	GSV *GSVData
	GSA *GSAData
	VTG *VTGData
	GLL *GLLData
}

// Decode converts one candidate sentence into a typed record: frame, verify
// checksum, route by message id, decode the body. It is a pure function of
// its input, and the returned Result shares no memory with b.
func Decode(b []byte) (Result, error) {
	s, err := ParseSentence(b)
	if err != nil {
		return Result{}, err
	}
	if got := s.CalcChecksum(); got != s.Checksum {
		return Result{}, fmt.Errorf("%w: calculated %02X, declared %02X", ErrChecksum, got, s.Checksum)
	}

	switch string(s.MessageID) {
	case TypeGGA:
		d, err := DecodeGGA(&s)
		if err != nil {
			return Result{}, err
		}
		return Result{Type: TypeGGA, GGA: &d}, nil
	case TypeRMC:
		d, err := DecodeRMC(&s)
		if err != nil {
			return Result{}, err
		}
		return Result{Type: TypeRMC, RMC: &d}, nil
	case TypeGSV:
		d, err := DecodeGSV(&s)
		if err != nil {
			return Result{}, err
		}
		return Result{Type: TypeGSV, GSV: &d}, nil
	case TypeGSA:
		d, err := DecodeGSA(&s)
		if err != nil {
			return Result{}, err
		}
		return Result{Type: TypeGSA, GSA: &d}, nil
	case TypeVTG:
		d, err := DecodeVTG(&s)
		if err != nil {
			return Result{}, err
		}
		return Result{Type: TypeVTG, VTG: &d}, nil
	case TypeGLL:
		d, err := DecodeGLL(&s)
		if err != nil {
			return Result{}, err
		}
		return Result{Type: TypeGLL, GLL: &d}, nil
	}
	// Well-formed but unknown types are routine in live streams; report
	// them without failing.
	return Result{Type: string(s.MessageID), Unsupported: true}, nil
}
