// Package pathmap provides rule-driven recursive filesystem traversal.
//
// A PathMap holds a set of match, ignore, and prune rules plus depth
// bounds and symlink policy, and generates a lazy sequence of matched
// paths from one or more roots. Rules may be supplied as callables or as
// regex pattern strings, which are compiled once at construction.
package pathmap

import (
	"fmt"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
)

// MatchResult is produced once per matched candidate: the full path, the
// directory-entry handle from the listing, and the match rule's payload.
type MatchResult struct {
	Path  string
	Entry Entry
	Info  any
}

// Root is a starting point for one independent traversal. Entry may carry
// a pre-resolved handle for the path; when nil the engine resolves one
// through the Lister.
type Root struct {
	Path  string
	Entry Entry
}

// PathMap walks directory trees according to a fixed rule configuration.
// All rules are compiled during New, so a single PathMap is immutable and
// safe to reuse across walks, including concurrent ones.
type PathMap struct {
	match          Rule
	ignore         []Rule
	prune          []Rule
	minDepth       int
	maxDepth       int // negative means unbounded
	sorted         bool
	onError        ErrorHandler
	followSymlinks bool
	lister         Lister
	logger         *zap.Logger
}

// New builds a PathMap from opts. It fails on inconsistent depth bounds
// and on rule patterns that do not compile; no filesystem access happens
// here.
func New(opts Options) (*PathMap, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	match := DefaultMatchRule
	if opts.Match != nil {
		var err error
		if match, err = opts.Match.compile(); err != nil {
			return nil, err
		}
	}
	ignore, err := compileRules(opts.Ignore)
	if err != nil {
		return nil, err
	}
	prune, err := compileRules(opts.Prune)
	if err != nil {
		return nil, err
	}

	lister := opts.Lister
	if lister == nil {
		lister = NewOSLister()
	}
	logger := opts.Logger
	if logger == nil {
		logger = NewLogger(opts.LogLevel)
	}

	return &PathMap{
		match:          match,
		ignore:         ignore,
		prune:          prune,
		minDepth:       opts.MinDepth,
		maxDepth:       opts.MaxDepth,
		sorted:         opts.Sort,
		onError:        opts.OnError,
		followSymlinks: opts.FollowSymlinks,
		lister:         lister,
		logger:         logger,
	}, nil
}

// test applies the ignore rules in order and then the match rule. The
// first truthy ignore result short-circuits to NoMatch.
func (pm *PathMap) test(path string, entry Entry) any {
	for _, rule := range pm.ignore {
		if truthy(rule(path, entry)) {
			return NoMatch
		}
	}
	return pm.match(path, entry)
}

// pruned reports whether any prune rule blocks descent into path.
func (pm *PathMap) pruned(path string, entry Entry) bool {
	for _, rule := range pm.prune {
		if truthy(rule(path, entry)) {
			return true
		}
	}
	return false
}

// Matches starts a lazy walk from the given roots.
func (pm *PathMap) Matches(roots ...string) *Matches {
	rs := make([]Root, len(roots))
	for i, p := range roots {
		rs[i] = Root{Path: p}
	}
	return pm.MatchesFrom(rs...)
}

// MatchesFrom is like Matches but accepts pre-resolved root entries,
// avoiding a redundant resolution call when the caller already holds one.
func (pm *PathMap) MatchesFrom(roots ...Root) *Matches {
	pm.logger.Debug("starting walk",
		zap.Int("roots", len(roots)),
		zap.Int("min_depth", pm.minDepth),
		zap.Int("max_depth", pm.maxDepth),
		zap.Bool("follow_symlinks", pm.followSymlinks),
	)
	return &Matches{pm: pm, roots: roots}
}

// Collect runs a walk to completion and returns all results.
func (pm *PathMap) Collect(roots ...string) ([]MatchResult, error) {
	it := pm.Matches(roots...)
	var out []MatchResult
	for it.Next() {
		out = append(out, it.Result())
	}
	return out, it.Err()
}

// pendingDir is a directory queued for listing. depth is the depth of its
// children relative to the root.
type pendingDir struct {
	path  string
	depth int
}

// candidate is a depth-filtered child awaiting rule evaluation.
type candidate struct {
	path  string
	entry Entry
	isDir bool
	depth int
}

// Matches is a lazy, single-use iterator over walk results. Roots are
// processed in order with their results concatenated; within a root,
// directories are listed FIFO, so all siblings in a directory are emitted
// before the contents of any of its subdirectories.
//
// Typical use:
//
//	it := pm.Matches("some/root")
//	for it.Next() {
//		fmt.Println(it.Result().Path)
//	}
//	if err := it.Err(); err != nil {
//		// the walk aborted
//	}
//
// Abandoning the iterator mid-walk is fine: no filesystem handles are held
// between calls to Next.
type Matches struct {
	pm    *PathMap
	roots []Root

	rootIdx  int
	pending  []pendingDir
	children []candidate
	childIdx int

	cur  MatchResult
	err  error
	done bool
}

// Next advances to the next match. It returns false when the walk is
// exhausted or has failed; check Err afterwards.
func (m *Matches) Next() bool {
	if m.err != nil || m.done {
		return false
	}
	for {
		// Drain the current directory's working set.
		for m.childIdx < len(m.children) {
			c := m.children[m.childIdx]
			m.childIdx++
			if m.processChild(c) {
				return true
			}
		}

		// Pop the next pending directory and list it.
		if len(m.pending) > 0 {
			d := m.pending[0]
			m.pending = m.pending[1:]
			entries, err := m.pm.lister.ListDir(d.path)
			if err != nil {
				if m.pm.onError == nil {
					m.err = fmt.Errorf("pathmap: listing %q: %w", d.path, err)
					return false
				}
				if herr := m.pm.onError(d.path, err); herr != nil {
					m.err = herr
					return false
				}
				m.pm.logger.Debug("listing error recovered", zap.String("dir", d.path), zap.Error(err))
				continue
			}
			m.children = m.collectChildren(d, entries)
			m.childIdx = 0
			continue
		}

		// Move on to the next root, which may itself yield.
		if m.advanceRoot() {
			return true
		}
		if m.err != nil || m.done {
			return false
		}
	}
}

// Result returns the match produced by the last successful call to Next.
func (m *Matches) Result() MatchResult { return m.cur }

// Err returns the error that aborted the walk, if any. Listing errors are
// reported here only when no ErrorHandler is configured (or when the
// handler returned an error); root resolution errors always surface here.
func (m *Matches) Err() error { return m.err }

// processChild queues an eligible directory for later descent and tests
// the child as a candidate. It reports whether a result was produced.
func (m *Matches) processChild(c candidate) bool {
	if c.isDir {
		if m.pm.followSymlinks || !c.entry.IsSymlink() {
			if !m.pm.pruned(c.path, c.entry) {
				m.pending = append(m.pending, pendingDir{path: c.path, depth: c.depth + 1})
			}
		}
		// Directories below the minimum depth are queued above but are
		// not themselves candidates.
		if c.depth < m.pm.minDepth {
			return false
		}
	}
	info := m.pm.test(c.path, c.entry)
	if info == NoMatch {
		return false
	}
	m.cur = MatchResult{Path: c.path, Entry: c.entry, Info: info}
	return true
}

// collectChildren filters a directory listing by the depth bounds and
// sorts it by name when configured. Directories are kept even below the
// minimum depth so descent can reach deeper levels; plain files outside
// the bounds never enter the candidate set.
func (m *Matches) collectChildren(d pendingDir, entries []Entry) []candidate {
	out := make([]candidate, 0, len(entries))
	for _, e := range entries {
		isDir := e.IsDir()
		if isDir {
			if m.pm.maxDepth >= 0 && d.depth > m.pm.maxDepth {
				continue
			}
		} else if d.depth < m.pm.minDepth || (m.pm.maxDepth >= 0 && d.depth > m.pm.maxDepth) {
			continue
		}
		out = append(out, candidate{
			path:  filepath.Join(d.path, e.Name()),
			entry: e,
			isDir: isDir,
			depth: d.depth,
		})
	}
	if m.pm.sorted {
		sort.Slice(out, func(i, j int) bool {
			return out[i].entry.Name() < out[j].entry.Name()
		})
	}
	return out
}

// advanceRoot sets up the walk for the next root: resolve its entry, test
// the root itself when the minimum depth allows, and queue it for descent
// unless it is not a directory or a prune rule blocks it. Reports whether
// the root itself produced a result. Roots that neither yield nor descend
// are skipped over until one does or none remain.
func (m *Matches) advanceRoot() bool {
	for m.rootIdx < len(m.roots) {
		r := m.roots[m.rootIdx]
		m.rootIdx++

		path := filepath.Clean(r.Path)
		entry := r.Entry
		if entry == nil {
			var err error
			entry, err = m.pm.lister.Resolve(path)
			if err != nil {
				m.err = fmt.Errorf("pathmap: resolving root %q: %w", path, err)
				return false
			}
		}

		if entry.IsDir() && !m.pm.pruned(path, entry) {
			m.pending = append(m.pending, pendingDir{path: path, depth: 1})
		}

		if m.pm.minDepth == 0 {
			if info := m.pm.test(path, entry); info != NoMatch {
				m.cur = MatchResult{Path: path, Entry: entry, Info: info}
				return true
			}
		}
		if len(m.pending) > 0 {
			return false
		}
	}
	m.done = true
	return false
}
