package catalog

import "fmt"

// Spec identifies one catalog configuration: a base series and the number
// of decades it is expanded across.
type Spec struct {
	Series  string // base series name: "e6", "e12" or "e24"
	Decades int
}

// ID returns the catalog identifier, e.g. "e24o6".
func (s Spec) ID() string {
	return fmt.Sprintf("%so%d", s.Series, s.Decades)
}

// DefaultSpecs returns the six configurations served by default:
// each base series across three and six decades.
func DefaultSpecs() []Spec {
	return []Spec{
		{Series: "e6", Decades: 3},
		{Series: "e6", Decades: 6},
		{Series: "e12", Decades: 3},
		{Series: "e12", Decades: 6},
		{Series: "e24", Decades: 3},
		{Series: "e24", Decades: 6},
	}
}

// ErrUnknownSeries indicates a series name with no base mantissa table.
type ErrUnknownSeries struct {
	Name string
}

func (e *ErrUnknownSeries) Error() string {
	return fmt.Sprintf("unknown series: %q", e.Name)
}
