// Package codec implements the fixed-width binary record format for
// resistor networks.
//
// Ohmgo intentionally treats the record layout as a breaking-change
// boundary: catalogs persisted by older layouts may no longer decode if
// the layout changes.
//
// # Layout
//
// Every record is exactly 11 bytes, no header, no padding:
//
//	offset 0  float32, little-endian  equivalent resistance (catalog key)
//	offset 4  uint8                   topology tag
//	offset 5  uint8, uint8            slot 1 (magnitude, decade)
//	offset 7  uint8, uint8            slot 2 (magnitude, decade)
//	offset 9  uint8, uint8            slot 3 (magnitude, decade)
//
// A resistor value v encodes as magnitude = round(v / 10^(order-1)) and
// decade = order where order = floor(log10(v)); zero encodes as (0, 0).
// The pair keeps two significant digits, which is lossless for values on
// the preferred-value grid and lossy for arbitrary floats. Values in
// (0, 1) have a negative order that cannot fit the unsigned decade byte
// and are rejected rather than wrapped.
package codec
