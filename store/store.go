package store

import (
	"context"
	"errors"

	"github.com/hupe1980/ohmgo/codec"
)

// ErrNotFound is returned when no record exists for the given
// (catalog, resistance) pair.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`.
var ErrNotFound = errors.New("record not found")

// ExactStore looks up the full record for an exact canonical resistance
// key. Implementations must be read-only and safe for concurrent use.
type ExactStore interface {
	Lookup(ctx context.Context, catalogID string, resistance float64) (codec.Record, error)
}
