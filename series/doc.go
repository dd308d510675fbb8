// Package series expands IEC 60063 preferred-value series (E6/E12/E24)
// across a number of decades into the candidate resistor magnitudes a
// catalog is built from.
//
// Values are quantized to the two-decimal grid so that they survive the
// record codec's (magnitude, decade) byte encoding exactly. Duplicates
// across series/decade boundaries are not removed here; the catalog
// builder resolves them during de-duplication.
package series
