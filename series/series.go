package series

import (
	"fmt"
	"math"
)

// Base mantissa tables per IEC 60063, all in [1.0, 10.0).
var (
	// E6 is the 6-values-per-decade series (20% tolerance class).
	E6 = []float64{1.0, 1.5, 2.2, 3.3, 4.7, 6.8}

	// E12 is the 12-values-per-decade series (10% tolerance class).
	E12 = []float64{1.0, 1.2, 1.5, 1.8, 2.2, 2.7, 3.3, 3.9, 4.7, 5.6, 6.8, 8.2}

	// E24 is the 24-values-per-decade series (5% tolerance class).
	E24 = []float64{
		1.0, 1.1, 1.2, 1.3, 1.5, 1.6, 1.8, 2.0, 2.2, 2.4, 2.7, 3.0,
		3.3, 3.6, 3.9, 4.3, 4.7, 5.1, 5.6, 6.2, 6.8, 7.5, 8.2, 9.1,
	}
)

// ByName returns a built-in base series by its stable lowercase name.
func ByName(name string) ([]float64, bool) {
	switch name {
	case "e6":
		return E6, true
	case "e12":
		return E12, true
	case "e24":
		return E24, true
	default:
		return nil, false
	}
}

// ErrInvalidDecades indicates a non-positive decade count.
type ErrInvalidDecades struct {
	Decades int
}

func (e *ErrInvalidDecades) Error() string {
	return fmt.Sprintf("invalid decade count: %d", e.Decades)
}

// Generate expands base across decades powers of ten, lowest decade first,
// preserving the base ordering within each decade. The result has exactly
// decades*len(base) entries.
//
// Each value is mantissa*10^exp rounded to two decimals. The rounding
// removes binary float noise so generated values sit exactly on the grid
// the record codec can represent.
func Generate(base []float64, decades int) ([]float64, error) {
	if decades < 1 {
		return nil, &ErrInvalidDecades{Decades: decades}
	}

	values := make([]float64, 0, decades*len(base))
	for exp := 0; exp < decades; exp++ {
		scale := math.Pow10(exp)
		for _, m := range base {
			values = append(values, quantize(m*scale))
		}
	}
	return values, nil
}

// quantize rounds v to the two-decimal grid.
func quantize(v float64) float64 {
	return math.Round(v*100) / 100
}
