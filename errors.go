package ohmgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/ohmgo/catalog"
	"github.com/hupe1980/ohmgo/index"
	"github.com/hupe1980/ohmgo/store"
)

var (
	// ErrNotFound is returned when no network can be resolved for a query.
	// After a successful nearest search this indicates an integrity fault
	// between the index and the backing store.
	ErrNotFound = errors.New("not found")

	// ErrInvalidResistance is returned when the queried resistance is not
	// a positive finite number.
	ErrInvalidResistance = errors.New("resistance must be a positive finite number")
)

// ErrInvalidSeries indicates a series name outside the configured catalog set.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidSeries struct {
	Series string
	cause  error
}

func (e *ErrInvalidSeries) Error() string {
	return fmt.Sprintf("invalid series: %q", e.Series)
}

func (e *ErrInvalidSeries) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Not found unification.
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	var knf *index.ErrKeyNotFound
	if errors.As(err, &knf) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	var ei *index.ErrEmptyIndex
	if errors.As(err, &ei) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	// Series normalization.
	var us *catalog.ErrUnknownSeries
	if errors.As(err, &us) {
		return &ErrInvalidSeries{Series: us.Name, cause: err}
	}

	return err
}
