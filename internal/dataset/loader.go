package dataset

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// State describes the outcome of loading a single dataset file.
type State int

const (
	// Loaded means the file was read and parsed successfully.
	Loaded State = iota
	// Absent means the expected file does not exist. Metrics depending
	// on the dataset are reported unavailable, not failed.
	Absent
	// Malformed means the file exists but could not be parsed.
	Malformed
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case Absent:
		return "absent"
	case Malformed:
		return "malformed"
	}
	return "unknown"
}

// Result is the per-file load outcome. Err is set only for Malformed.
type Result struct {
	Name  string `json:"name"`
	File  string `json:"file"`
	State State  `json:"-"`
	Err   error  `json:"-"`
}

// Loader reads the fixed set of summary CSV files from a directory.
// Loads within the freshness window reuse the previously parsed datasets;
// the cache holds raw datasets only, never derived metrics.
type Loader struct {
	dir   string
	files map[string]string
	ttl   time.Duration

	mu       sync.Mutex
	cached   Set
	results  []Result
	cachedAt time.Time
}

// NewLoader creates a loader over the given directory. files maps logical
// dataset names to file names; ttl <= 0 disables caching.
func NewLoader(dir string, files map[string]string, ttl time.Duration) *Loader {
	return &Loader{dir: dir, files: files, ttl: ttl}
}

// Load reads every configured file and returns the datasets that parsed,
// alongside a per-file Result. Absent files are tolerated; a Malformed
// file is reported in its Result and the remaining datasets still load.
func (l *Loader) Load(ctx context.Context) (Set, []Result, error) {
	l.mu.Lock()
	if l.cached != nil && l.ttl > 0 && time.Since(l.cachedAt) < l.ttl {
		set, results := l.cached, l.results
		l.mu.Unlock()
		return set, results, nil
	}
	l.mu.Unlock()

	var (
		resMu   sync.Mutex
		set     = make(Set)
		results = make([]Result, 0, len(l.files))
	)

	g, ctx := errgroup.WithContext(ctx)
	for name, file := range l.files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, res := l.loadOne(name, file)

			resMu.Lock()
			defer resMu.Unlock()
			results = append(results, res)
			if d != nil {
				set[name] = d
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })

	l.mu.Lock()
	l.cached = set
	l.results = results
	l.cachedAt = time.Now()
	l.mu.Unlock()

	return set, results, nil
}

// loadOne reads and parses a single file.
func (l *Loader) loadOne(name, file string) (*Dataset, Result) {
	res := Result{Name: name, File: file}

	f, err := os.Open(filepath.Join(l.dir, file))
	if err != nil {
		if os.IsNotExist(err) {
			res.State = Absent
			return nil, res
		}
		res.State = Malformed
		res.Err = err
		return nil, res
	}
	defer func() { _ = f.Close() }()

	d, err := ParseCSV(name, f)
	if err != nil {
		res.State = Malformed
		res.Err = err
		return nil, res
	}

	res.State = Loaded
	return d, res
}

// Invalidate discards the cached datasets so the next Load re-reads the
// files. Used for explicit user-triggered refresh.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	l.cached = nil
	l.results = nil
	l.mu.Unlock()
}
