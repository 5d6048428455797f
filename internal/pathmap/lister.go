package pathmap

import (
	"os"
	"path/filepath"

	"github.com/karrick/godirwalk"
)

// Entry describes a single directory entry. Implementations expose the
// name and type bits already known from the directory listing so the
// engine never needs a second stat call for classification.
type Entry interface {
	// Name returns the base name of the entry, without path separators.
	Name() string
	// IsDir reports whether the entry is a directory. Symbolic links are
	// resolved for classification, so a link to a directory reports true.
	IsDir() bool
	// IsSymlink reports whether the entry itself is a symbolic link.
	IsSymlink() bool
	// Stat returns file info for the entry itself (the link, not its
	// target, when the entry is a symlink). Computed lazily.
	Stat() (os.FileInfo, error)
}

// Lister is the directory-listing capability consumed by the engine.
// The default implementation reads the local filesystem through
// godirwalk; tests and embedders may substitute their own.
type Lister interface {
	// ListDir returns the immediate children of dir. It must fail with a
	// meaningful error when dir cannot be enumerated (permission denied,
	// removed mid-walk, not a directory).
	ListDir(dir string) ([]Entry, error)
	// Resolve returns an entry handle for path without listing the
	// contents of its parent. Used for root resolution.
	Resolve(path string) (Entry, error)
}

// NewOSLister returns a Lister backed by the local filesystem.
func NewOSLister() Lister { return osLister{} }

type osLister struct{}

func (osLister) ListDir(dir string) ([]Entry, error) {
	dirents, err := godirwalk.ReadDirents(dir, nil)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, len(dirents))
	for i, de := range dirents {
		entries[i] = &osEntry{dirent: de, path: filepath.Join(dir, de.Name())}
	}
	return entries, nil
}

func (osLister) Resolve(path string) (Entry, error) {
	de, err := godirwalk.NewDirent(path)
	if err != nil {
		return nil, err
	}
	return &osEntry{dirent: de, path: path}, nil
}

// osEntry adapts a godirwalk.Dirent. The dirent carries the name and mode
// type from the listing; only symlink targets require an extra stat, and
// that result is memoized.
type osEntry struct {
	dirent *godirwalk.Dirent
	path   string

	resolved  bool // symlink target classification done
	targetDir bool
}

func (e *osEntry) Name() string { return e.dirent.Name() }

func (e *osEntry) IsDir() bool {
	if e.dirent.IsDir() {
		return true
	}
	if !e.dirent.IsSymlink() {
		return false
	}
	if !e.resolved {
		info, err := os.Stat(e.path)
		e.targetDir = err == nil && info.IsDir()
		e.resolved = true
	}
	return e.targetDir
}

func (e *osEntry) IsSymlink() bool { return e.dirent.IsSymlink() }

func (e *osEntry) Stat() (os.FileInfo, error) { return os.Lstat(e.path) }
