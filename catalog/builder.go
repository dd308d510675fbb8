package catalog

import (
	"context"

	"github.com/hupe1980/ohmgo/codec"
	"github.com/hupe1980/ohmgo/network"
	"github.com/hupe1980/ohmgo/resource"
	"github.com/hupe1980/ohmgo/series"
	"golang.org/x/sync/errgroup"
)

// Build enumerates every admissible three-resistor network over the
// spec's value set and de-duplicates by canonical resistance.
//
// The four passes run in the documented order; see the package comment
// for the precedence rule this encodes.
func Build(spec Spec) (*Catalog, error) {
	base, ok := series.ByName(spec.Series)
	if !ok {
		return nil, &ErrUnknownSeries{Name: spec.Series}
	}
	values, err := series.Generate(base, spec.Decades)
	if err != nil {
		return nil, err
	}

	n := len(values)
	c := &Catalog{
		id:       spec.ID(),
		networks: make(map[float64]network.Network, n*n),
	}

	// Pass 1: size-3 multisets.
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			for k := j; k < n; k++ {
				rs := [3]float64{values[i], values[j], values[k]}
				if err := c.add(network.TripleSeries, rs); err != nil {
					return nil, err
				}
				if err := c.add(network.TripleParallel, rs); err != nil {
					return nil, err
				}
			}
		}
	}

	// Pass 2: ordered triples. The asymmetric topologies distinguish slot
	// order, so the full Cartesian product is required.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				rs := [3]float64{values[i], values[j], values[k]}
				if err := c.add(network.SeriesDoubleParallel, rs); err != nil {
					return nil, err
				}
				if err := c.add(network.DoubleSeriesParallel, rs); err != nil {
					return nil, err
				}
			}
		}
	}

	// Pass 3: size-2 multisets, third slot zero-padded.
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			rs := [3]float64{values[i], values[j], 0}
			if err := c.add(network.DoubleSeries, rs); err != nil {
				return nil, err
			}
			if err := c.add(network.DoubleParallel, rs); err != nil {
				return nil, err
			}
		}
	}

	// Pass 4: singles, inserted last so they win every tie.
	for i := 0; i < n; i++ {
		if err := c.add(network.SingleSeries, [3]float64{values[i], 0, 0}); err != nil {
			return nil, err
		}
	}

	c.finish()
	return c, nil
}

// add constructs the network and inserts it, overwriting any earlier
// entry with an equal canonical key. Construction errors abort the build:
// a zero slot in a parallel branch here is a builder bug, not data.
func (c *Catalog) add(t network.Topology, rs [3]float64) error {
	nw, err := network.New(t, rs)
	if err != nil {
		return err
	}
	c.networks[codec.CanonicalKey(nw.Resistance)] = nw
	c.candidates++
	return nil
}

// EstimateCandidates returns the closed-form pre-dedup candidate count
// for a value set of size n:
//
//	2*C(n+2,3) + 2*n^3 + 2*C(n+1,2) + n
//
// This is an exact count of enumerated networks, not of surviving
// distinct resistances; use it for capacity planning and build checks.
func EstimateCandidates(n int) int {
	return 2*choose(n+2, 3) + 2*n*n*n + 2*choose(n+1, 2) + n
}

func choose(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	result := 1
	for i := 1; i <= k; i++ {
		result = result * (n - k + i) / i
	}
	return result
}

// BuildOptions configures BuildSet.
type BuildOptions struct {
	// Controller bounds build concurrency. Nil means one goroutine per
	// catalog with no throttling.
	Controller *resource.Controller
}

// BuildSet builds the given catalogs concurrently. The catalogs are
// mutually independent, so parallelism is purely an optimization; the
// result is identical to building them one by one.
func BuildSet(ctx context.Context, specs []Spec, optFns ...func(*BuildOptions)) (map[string]*Catalog, error) {
	opts := BuildOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}

	catalogs := make([]*Catalog, len(specs))
	g, ctx := errgroup.WithContext(ctx)

	for i, spec := range specs {
		g.Go(func() error {
			if err := opts.Controller.AcquireBuildSlot(ctx); err != nil {
				return err
			}
			defer opts.Controller.ReleaseBuildSlot()

			c, err := Build(spec)
			if err != nil {
				return err
			}
			catalogs[i] = c
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make(map[string]*Catalog, len(specs))
	for _, c := range catalogs {
		result[c.ID()] = c
	}
	return result, nil
}
