package heightmap

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storeCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hillclimb_heightmap_cache_hits_total",
		Help: "The total number of hits on the height map cache",
	})
	storeCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hillclimb_heightmap_cache_misses_total",
		Help: "The total number of misses on the height map cache",
	})
	storeCacheEvictions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hillclimb_heightmap_cache_evictions_total",
		Help: "The total number of evictions from the height map cache",
	})
)

// ErrNilFS is returned by NewStore when no file system is supplied.
var ErrNilFS = errors.New("heightmap: store requires a file system")

const defaultCacheSize = 32

// A Store loads height maps by name from a file system and keeps the most
// recently used ones parsed in memory. Failed loads are not cached.
type Store struct {
	mutex        sync.Mutex
	fsys         fs.FS
	cacheSize    int
	parseOptions []ParseOption
	cache        *lru.Cache[string, *Grid]
}

// A StoreOption sets an option on a Store.
type StoreOption func(*Store)

// WithCacheSize sets the number of parsed grids kept in memory.
func WithCacheSize(cacheSize int) StoreOption {
	return func(s *Store) {
		s.cacheSize = cacheSize
	}
}

// WithParseOptions sets the options passed to Parse for every load.
func WithParseOptions(parseOptions ...ParseOption) StoreOption {
	return func(s *Store) {
		s.parseOptions = parseOptions
	}
}

// NewStore returns a new Store reading from fsys.
func NewStore(fsys fs.FS, options ...StoreOption) (*Store, error) {
	if fsys == nil {
		return nil, ErrNilFS
	}
	s := &Store{
		fsys:      fsys,
		cacheSize: defaultCacheSize,
	}
	for _, option := range options {
		option(s)
	}

	var err error
	s.cache, err = lru.NewWithEvict(s.cacheSize, func(string, *Grid) {
		storeCacheEvictions.Inc()
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Load returns the grid stored under name, parsing it on first use.
func (s *Store) Load(name string) (*Grid, error) {
	if g, ok := s.cache.Get(name); ok {
		storeCacheHits.Inc()
		return g, nil
	}

	// Serialise misses so concurrent loads of one name parse it once.
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if g, ok := s.cache.Get(name); ok {
		storeCacheHits.Inc()
		return g, nil
	}
	storeCacheMisses.Inc()

	f, err := s.fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Parse(f, s.parseOptions...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	s.cache.Add(name, g)
	return g, nil
}

// Len returns the number of grids currently cached.
func (s *Store) Len() int {
	return s.cache.Len()
}
