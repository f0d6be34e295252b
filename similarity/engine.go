package similarity

import (
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/phonemescape/catalog"
	"github.com/poiesic/phonemescape/core"
	"github.com/poiesic/phonemescape/features"
)

const (
	// DefaultSeed seeds k-means initialization.
	DefaultSeed uint64 = 42
	// DefaultMaxIterations bounds Lloyd iterations per clustering.
	DefaultMaxIterations = 300
)

// snapshot pairs a catalog with the vectors built from it. It is never
// modified after construction.
type snapshot struct {
	catalog *catalog.Catalog
	vectors *features.Set
}

func newSnapshot(c *catalog.Catalog) *snapshot {
	return &snapshot{catalog: c, vectors: features.Build(c)}
}

// Engine computes similarity scores, matrices, neighbors and clusters.
// It is safe for concurrent use.
type Engine struct {
	current       atomic.Pointer[snapshot]
	pool          *ants.Pool
	seed          uint64
	maxIterations int
	logger        *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithPoolSize sets the worker pool size used to build matrices.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(e *Engine) error {
		if size < 1 {
			size = 1
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		if e.pool != nil {
			e.pool.Release()
		}
		e.pool = pool
		return nil
	}
}

// WithSeed sets the k-means seed. Default is DefaultSeed.
func WithSeed(seed uint64) Option {
	return func(e *Engine) error {
		e.seed = seed
		return nil
	}
}

// WithMaxIterations bounds k-means iterations. Default is DefaultMaxIterations.
func WithMaxIterations(n int) Option {
	return func(e *Engine) error {
		if n < 1 {
			return fmt.Errorf("%w: max iterations must be positive, got %d", core.ErrInvalidArgument, n)
		}
		e.maxIterations = n
		return nil
	}
}

// NewEngine creates an engine over c.
func NewEngine(c *catalog.Catalog, opts ...Option) (*Engine, error) {
	if c == nil {
		return nil, ErrCatalogRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		pool:          pool,
		seed:          DefaultSeed,
		maxIterations: DefaultMaxIterations,
		logger:        slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(e); optErr != nil {
			e.Release()
			return nil, optErr
		}
	}

	e.current.Store(newSnapshot(c))
	return e, nil
}

// Release releases the worker pool. The engine should not be used afterwards.
func (e *Engine) Release() {
	if e.pool != nil {
		e.pool.Release()
	}
}

// Reload replaces the catalog and its vectors in one atomic step. Queries
// already running finish against the previous snapshot.
func (e *Engine) Reload(c *catalog.Catalog) error {
	if c == nil {
		return ErrCatalogRequired
	}
	next := newSnapshot(c)
	prev := e.current.Swap(next)
	e.logger.Info("catalog reloaded",
		"phonemes", c.Len(),
		"fingerprint", uint64(c.Fingerprint()),
		"previousFingerprint", uint64(prev.catalog.Fingerprint()))
	return nil
}

// Catalog returns the catalog of the current snapshot.
func (e *Engine) Catalog() *catalog.Catalog { return e.current.Load().catalog }

// View pins the current snapshot. Every query on the returned view sees the
// same catalog even if Reload runs concurrently.
func (e *Engine) View() *View {
	return &View{engine: e, snap: e.current.Load()}
}

// Similarity scores a against b in [0, 1]. See View.Similarity.
func (e *Engine) Similarity(a, b string) (float64, error) { return e.View().Similarity(a, b) }

// Distance returns the chart distance between a and b. See View.Distance.
func (e *Engine) Distance(a, b string) (float64, error) { return e.View().Distance(a, b) }

// ArticulatoryDistance returns the full feature-vector distance. See View.ArticulatoryDistance.
func (e *Engine) ArticulatoryDistance(a, b string) (float64, error) {
	return e.View().ArticulatoryDistance(a, b)
}

// Matrix builds the similarity matrix of symbols. See View.Matrix.
func (e *Engine) Matrix(symbols []string) (*Matrix, error) { return e.View().Matrix(symbols) }

// NearestNeighbors ranks pool by similarity to target. See View.NearestNeighbors.
func (e *Engine) NearestNeighbors(target string, pool []string, k int) ([]Neighbor, error) {
	return e.View().NearestNeighbors(target, pool, k)
}

// Cluster partitions symbols into k groups. See View.Cluster.
func (e *Engine) Cluster(symbols []string, k int) (Clusters, error) {
	return e.View().ClusterWithMonitor(symbols, k, nil)
}

// ClusterWithMonitor is Cluster with progress callbacks.
func (e *Engine) ClusterWithMonitor(symbols []string, k int, monitor ClusterMonitor) (Clusters, error) {
	return e.View().ClusterWithMonitor(symbols, k, monitor)
}

// View answers queries against a single catalog snapshot.
type View struct {
	engine *Engine
	snap   *snapshot
}

// Catalog returns the pinned catalog.
func (v *View) Catalog() *catalog.Catalog { return v.snap.catalog }

func (v *View) entry(symbol string) (features.Entry, error) {
	e, ok := v.snap.vectors.Get(symbol)
	if !ok {
		return features.Entry{}, fmt.Errorf("%w: %q", core.ErrNotFound, symbol)
	}
	return e, nil
}

func (v *View) pair(a, b string) (features.Entry, features.Entry, error) {
	ea, err := v.entry(a)
	if err != nil {
		return features.Entry{}, features.Entry{}, err
	}
	eb, err := v.entry(b)
	if err != nil {
		return features.Entry{}, features.Entry{}, err
	}
	return ea, eb, nil
}

// Similarity scores a against b. Both symbols must be cataloged. A symbol is
// fully similar to itself, phonemes of different categories score 0, and
// same-category pairs score by normalized chart distance with a penalty when
// roundedness (vowels) or voicing (consonants) differs.
func (v *View) Similarity(a, b string) (float64, error) {
	ea, eb, err := v.pair(a, b)
	if err != nil {
		return 0, err
	}
	if a == b {
		return 1, nil
	}
	return score(ea, eb), nil
}

func score(a, b features.Entry) float64 {
	if a.Category != b.Category {
		return 0
	}
	plane, _ := core.PlaneFor(a.Category)
	sim := 1 - features.PositionDistance(a.Vector, b.Vector)/plane.MaxDistance
	if a.Vector.Binary() != b.Vector.Binary() {
		sim *= plane.MismatchPenalty
	}
	return math.Max(0, math.Min(1, sim))
}

// Distance returns the unclamped Euclidean distance between the chart
// positions of a and b, or +Inf when they belong to different categories.
func (v *View) Distance(a, b string) (float64, error) {
	ea, eb, err := v.pair(a, b)
	if err != nil {
		return 0, err
	}
	if ea.Category != eb.Category {
		return math.Inf(1), nil
	}
	return features.PositionDistance(ea.Vector, eb.Vector), nil
}

// ArticulatoryDistance is Distance over the full feature vector, so a
// roundedness or voicing difference adds one unit on the third axis.
func (v *View) ArticulatoryDistance(a, b string) (float64, error) {
	ea, eb, err := v.pair(a, b)
	if err != nil {
		return 0, err
	}
	if ea.Category != eb.Category {
		return math.Inf(1), nil
	}
	return features.FullDistance(ea.Vector, eb.Vector), nil
}
