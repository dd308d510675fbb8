package ohmgo

import (
	"context"
	"math"
	"sort"
	"sync/atomic"
	"time"

	"github.com/hupe1980/ohmgo/blobstore"
	"github.com/hupe1980/ohmgo/catalog"
	"github.com/hupe1980/ohmgo/codec"
	"github.com/hupe1980/ohmgo/index"
	"github.com/hupe1980/ohmgo/network"
	"github.com/hupe1980/ohmgo/persistence"
	"github.com/hupe1980/ohmgo/store"
)

// catalogSet is an immutable snapshot of the configured catalogs and
// their query indexes. Queries read one snapshot for their whole
// lifetime; Rebuild publishes a fresh snapshot atomically.
type catalogSet struct {
	ids      []string // sorted
	catalogs map[string]*catalog.Catalog
	indexes  map[string]*index.Index
	exact    store.ExactStore
}

func newCatalogSet(catalogs map[string]*catalog.Catalog, exact store.ExactStore) *catalogSet {
	set := &catalogSet{
		ids:      make([]string, 0, len(catalogs)),
		catalogs: catalogs,
		indexes:  make(map[string]*index.Index, len(catalogs)),
		exact:    exact,
	}
	for id, c := range catalogs {
		set.ids = append(set.ids, id)
		set.indexes[id] = index.New(c)
	}
	sort.Strings(set.ids)
	return set
}

func (s *catalogSet) networkCount() int {
	var total int
	for _, c := range s.catalogs {
		total += c.Len()
	}
	return total
}

// Ohmgo serves nearest-value and exact resistor-network queries over a
// set of precomputed catalogs. It is immutable after construction
// except for Rebuild, which replaces the whole catalog set atomically;
// all methods are safe for concurrent use.
type Ohmgo struct {
	set     atomic.Pointer[catalogSet]
	opts    options
	metrics MetricsCollector
	logger  *Logger
}

// New builds the configured catalogs in-process and returns a query
// engine over them.
//
// Options:
//   - WithSpecs: override the default six catalog configurations.
//   - WithResourceController: bound build concurrency.
//   - WithExactStore: serve exact lookups from a remote table.
func New(ctx context.Context, optFns ...Option) (*Ohmgo, error) {
	opts := applyOptions(optFns)

	start := time.Now()
	catalogs, err := catalog.BuildSet(ctx, opts.specs, func(o *catalog.BuildOptions) {
		o.Controller = opts.controller
	})
	if err != nil {
		opts.metricsCollector.RecordBuild(len(opts.specs), 0, time.Since(start), err)
		opts.logger.LogBuild(ctx, len(opts.specs), 0, err)
		return nil, translateError(err)
	}

	exact := opts.exactStore
	if exact == nil {
		exact, err = store.NewMemoryStore(catalogs)
		if err != nil {
			return nil, translateError(err)
		}
	}

	set := newCatalogSet(catalogs, exact)

	og := &Ohmgo{
		opts:    opts,
		metrics: opts.metricsCollector,
		logger:  opts.logger,
	}
	og.set.Store(set)

	opts.metricsCollector.RecordBuild(len(set.ids), set.networkCount(), time.Since(start), nil)
	opts.logger.LogBuild(ctx, len(set.ids), set.networkCount(), nil)
	return og, nil
}

// Load reads previously persisted catalogs from the given blob store
// and returns a read-only query engine over them. Exact lookups are
// served lazily from the same blobs unless WithExactStore overrides
// them.
func Load(ctx context.Context, bs blobstore.BlobStore, optFns ...Option) (*Ohmgo, error) {
	opts := applyOptions(optFns)

	manager := persistence.NewManager(bs, func(o *persistence.Options) {
		o.Compression = opts.compression
		o.Controller = opts.controller
	})

	start := time.Now()
	catalogs := make(map[string]*catalog.Catalog, len(opts.specs))
	var dropped int
	for _, spec := range opts.specs {
		c, d, err := manager.LoadCatalog(ctx, spec.ID())
		if err != nil {
			opts.metricsCollector.RecordLoad(len(opts.specs), time.Since(start), err)
			opts.logger.LogLoad(ctx, len(opts.specs), dropped, err)
			return nil, translateError(err)
		}
		catalogs[c.ID()] = c
		dropped += d
	}

	exact := opts.exactStore
	if exact == nil {
		exact = store.NewBlobStore(manager)
	}

	set := newCatalogSet(catalogs, exact)

	og := &Ohmgo{
		opts:    opts,
		metrics: opts.metricsCollector,
		logger:  opts.logger,
	}
	og.set.Store(set)

	opts.metricsCollector.RecordLoad(len(set.ids), time.Since(start), nil)
	opts.logger.LogLoad(ctx, len(set.ids), dropped, nil)
	return og, nil
}

// Save persists every catalog in the current set to the given blob
// store: the record blob, the packed key file and the text key file
// per catalog, each written atomically.
func (og *Ohmgo) Save(ctx context.Context, bs blobstore.BlobStore) error {
	manager := persistence.NewManager(bs, func(o *persistence.Options) {
		o.Compression = og.opts.compression
		o.Controller = og.opts.controller
	})

	set := og.set.Load()
	for _, id := range set.ids {
		if err := manager.SaveCatalog(ctx, set.catalogs[id]); err != nil {
			og.logger.LogSave(ctx, len(set.ids), err)
			return err
		}
	}

	og.logger.LogSave(ctx, len(set.ids), nil)
	return nil
}

// Rebuild regenerates the catalogs from the configured specs and
// publishes the new set atomically. In-flight queries keep reading the
// snapshot they started with.
func (og *Ohmgo) Rebuild(ctx context.Context) error {
	start := time.Now()
	catalogs, err := catalog.BuildSet(ctx, og.opts.specs, func(o *catalog.BuildOptions) {
		o.Controller = og.opts.controller
	})
	if err != nil {
		og.metrics.RecordBuild(len(og.opts.specs), 0, time.Since(start), err)
		og.logger.LogBuild(ctx, len(og.opts.specs), 0, err)
		return translateError(err)
	}

	// A user-supplied exact store is shared infrastructure and stays.
	exact := og.opts.exactStore
	if exact == nil {
		exact, err = store.NewMemoryStore(catalogs)
		if err != nil {
			return translateError(err)
		}
	}

	set := newCatalogSet(catalogs, exact)
	og.set.Store(set)

	og.metrics.RecordBuild(len(set.ids), set.networkCount(), time.Since(start), nil)
	og.logger.LogBuild(ctx, len(set.ids), set.networkCount(), nil)
	return nil
}

// Series returns the identifiers of the configured catalogs in sorted
// order, e.g. ["e12o3" "e12o6" "e24o3" "e24o6" "e6o3" "e6o6"].
func (og *Ohmgo) Series() []string {
	set := og.set.Load()
	ids := make([]string, len(set.ids))
	copy(ids, set.ids)
	return ids
}

// Stats returns the number of distinct networks per catalog.
func (og *Ohmgo) Stats() map[string]int {
	set := og.set.Load()
	stats := make(map[string]int, len(set.ids))
	for id, c := range set.catalogs {
		stats[id] = c.Len()
	}
	return stats
}

func validResistance(resistance float64) bool {
	return resistance > 0 && !math.IsInf(resistance, 1)
}

// NearestNetwork returns the network whose resistance is closest to the
// target within the named catalog. Targets below the smallest key clamp
// to the smallest, above the largest to the largest; exact midpoints
// resolve to the lower neighbor.
func (og *Ohmgo) NearestNetwork(ctx context.Context, resistance float64, seriesName string) (network.Network, error) {
	start := time.Now()

	nw, err := og.nearest(resistance, seriesName, nil)
	err = translateError(err)

	og.metrics.RecordQuery(seriesName, time.Since(start), err)
	og.logger.LogQuery(ctx, seriesName, resistance, nw.Resistance, err)
	return nw, err
}

// NearestNetworkFiltered is NearestNetwork restricted to the given
// topologies, e.g. only single resistors or only parallel pairs.
func (og *Ohmgo) NearestNetworkFiltered(ctx context.Context, resistance float64, seriesName string, topologies ...network.Topology) (network.Network, error) {
	start := time.Now()

	nw, err := og.nearest(resistance, seriesName, topologies)
	err = translateError(err)

	og.metrics.RecordQuery(seriesName, time.Since(start), err)
	og.logger.LogQuery(ctx, seriesName, resistance, nw.Resistance, err)
	return nw, err
}

func (og *Ohmgo) nearest(resistance float64, seriesName string, topologies []network.Topology) (network.Network, error) {
	if !validResistance(resistance) {
		return network.Network{}, ErrInvalidResistance
	}

	idx, ok := og.set.Load().indexes[seriesName]
	if !ok {
		return network.Network{}, &ErrInvalidSeries{Series: seriesName}
	}

	if len(topologies) == 0 {
		return idx.Nearest(resistance)
	}
	return idx.NearestFiltered(resistance, topologies...)
}

// ExactNetwork resolves a resistance that is known to exist in the
// named catalog, e.g. one previously returned by NearestNetwork,
// through the exact-match backing store. The target is projected onto
// the canonical key grid before lookup.
func (og *Ohmgo) ExactNetwork(ctx context.Context, resistance float64, seriesName string) (network.Network, error) {
	if !validResistance(resistance) {
		return network.Network{}, ErrInvalidResistance
	}

	set := og.set.Load()
	if _, ok := set.indexes[seriesName]; !ok {
		return network.Network{}, &ErrInvalidSeries{Series: seriesName}
	}

	rec, err := set.exact.Lookup(ctx, seriesName, codec.CanonicalKey(resistance))
	if err != nil {
		return network.Network{}, translateError(err)
	}
	return rec.Network()
}
