// Package nmea decodes individual NMEA 0183 sentences into typed records.
//
// The package is deliberately stateless: Decode takes one already-delimited
// sentence (as produced by internal/scan or any other stream splitter) and
// returns a tagged result or an error. Nothing is buffered or fused across
// calls, so concurrent decoding of disjoint inputs needs no coordination.
//
// Supported sentence kinds:
//   - GGA: fix data (time, position, quality, satellites, HDOP, altitude)
//   - RMC: recommended minimum navigation data
//   - GSV: satellites in view
//   - GSA: active satellites and dilution of precision
//   - VTG: track made good and ground speed
//   - GLL: geographic position
//
// Other well-formed sentences decode to an Unsupported result rather than an
// error; unknown types are routine in live receiver streams.
package nmea
