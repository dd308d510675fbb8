package codec

import "fmt"

// ErrInvalidLength indicates a byte span that is not exactly RecordSize
// bytes. Decoding must fail rather than misread adjacent bytes.
type ErrInvalidLength struct {
	Got int
}

func (e *ErrInvalidLength) Error() string {
	return fmt.Sprintf("invalid record length: got %d, want %d", e.Got, RecordSize)
}

// ErrInvalidTag indicates a topology byte outside the defined tag set.
type ErrInvalidTag struct {
	Tag uint8
}

func (e *ErrInvalidTag) Error() string {
	return fmt.Sprintf("invalid topology tag: %d", e.Tag)
}

// ErrValueOutOfRange indicates a resistor value the (magnitude, decade)
// pair cannot represent, e.g. a negative value or one below one ohm whose
// decade would underflow the unsigned byte.
type ErrValueOutOfRange struct {
	Value float64
}

func (e *ErrValueOutOfRange) Error() string {
	return fmt.Sprintf("resistor value out of encodable range: %g", e.Value)
}
