package codec

import (
	"encoding/binary"
	"math"

	"github.com/hupe1980/ohmgo/network"
)

// RecordSize is the fixed width of an encoded record in bytes.
const RecordSize = 11

// Pair is a single resistor value in (magnitude, decade) form.
type Pair struct {
	Magnitude uint8
	Decade    uint8
}

// Value decodes the pair back to ohms: magnitude * 10^(decade-1),
// quantized to the two-decimal grid. The zero pair decodes to zero.
func (p Pair) Value() float64 {
	if p.Magnitude == 0 {
		return 0
	}
	v := float64(p.Magnitude) * math.Pow10(int(p.Decade)-1)
	return math.Round(v*100) / 100
}

// Record is the decoded struct-of-bytes view of a single catalog entry.
type Record struct {
	Resistance float32 // stored key, already on the float32 grid
	Topology   network.Topology
	Resistors  [3]Pair
}

// Network rebuilds the full Network from the record's resistor pairs.
// The resistance is recomputed from the decoded values rather than taken
// from the stored key, so the pure-function invariant holds after decode.
func (r Record) Network() (network.Network, error) {
	return network.New(r.Topology, [3]float64{
		r.Resistors[0].Value(),
		r.Resistors[1].Value(),
		r.Resistors[2].Value(),
	})
}

// Key returns the stored resistance as the canonical float64 map key.
func (r Record) Key() float64 {
	return float64(r.Resistance)
}

// CanonicalKey projects a resistance onto the float32 grid used by the
// record's resistance field. Catalogs must key their maps and sorted
// arrays with this projection so that in-memory indexes and persisted
// records stay bit-identical.
func CanonicalKey(resistance float64) float64 {
	return float64(float32(resistance))
}

// EncodeValue converts a resistor value to its (magnitude, decade) pair.
// Zero is the reserved unused-slot sentinel and encodes as (0, 0).
func EncodeValue(v float64) (Pair, error) {
	if v == 0 {
		return Pair{}, nil
	}
	if v < 1 {
		// Negative order would underflow the unsigned decade byte.
		return Pair{}, &ErrValueOutOfRange{Value: v}
	}

	order := int(math.Floor(math.Log10(v)))
	magnitude := math.Round(v / math.Pow10(order-1))
	if order > math.MaxUint8 || magnitude > math.MaxUint8 {
		return Pair{}, &ErrValueOutOfRange{Value: v}
	}
	return Pair{Magnitude: uint8(magnitude), Decade: uint8(order)}, nil
}

// Marshal encodes n into a fresh RecordSize-byte slice.
func Marshal(n network.Network) ([]byte, error) {
	buf := make([]byte, RecordSize)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(float32(n.Resistance)))
	buf[4] = byte(n.Topology)
	for i, v := range n.Resistors {
		p, err := EncodeValue(v)
		if err != nil {
			return nil, err
		}
		buf[5+2*i] = p.Magnitude
		buf[6+2*i] = p.Decade
	}
	return buf, nil
}

// Unmarshal decodes exactly one record. Spans that are not RecordSize
// bytes fail with *ErrInvalidLength; an undefined topology byte fails
// with *ErrInvalidTag.
func Unmarshal(data []byte) (Record, error) {
	if len(data) != RecordSize {
		return Record{}, &ErrInvalidLength{Got: len(data)}
	}

	tag := data[4]
	if !network.Topology(tag).Valid() {
		return Record{}, &ErrInvalidTag{Tag: tag}
	}

	rec := Record{
		Resistance: math.Float32frombits(binary.LittleEndian.Uint32(data[0:4])),
		Topology:   network.Topology(tag),
	}
	for i := range rec.Resistors {
		rec.Resistors[i] = Pair{Magnitude: data[5+2*i], Decade: data[6+2*i]}
	}
	return rec, nil
}
