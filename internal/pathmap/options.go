package pathmap

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// UnboundedDepth disables the maximum-depth limit.
const UnboundedDepth = -1

// ErrInvalidDepth is returned by New when the configured depth bounds are
// inconsistent.
var ErrInvalidDepth = errors.New("pathmap: invalid depth bounds")

// ErrorHandler is invoked when listing a directory fails mid-walk. It
// receives the directory that could not be listed along with the
// underlying error. Returning nil skips that directory's children and
// continues the walk; returning a non-nil error aborts the walk with
// that error.
type ErrorHandler func(dir string, err error) error

// WarnHandler returns an ErrorHandler that logs each listing failure at
// warn level and continues the walk.
func WarnHandler(logger *zap.Logger) ErrorHandler {
	return func(dir string, err error) error {
		logger.Warn("error listing directory",
			zap.String("dir", dir),
			zap.Error(err),
		)
		return nil
	}
}

// Options configures a PathMap. The zero value of NewOptions walks
// everything: every reachable path matches with a nil payload, at any
// depth, in listing order, with listing errors propagated.
type Options struct {
	// Match decides whether a candidate is yielded and supplies the
	// payload attached to the result. Nil matches everything with a nil
	// payload.
	Match *RuleSpec

	// Ignore rules are applied in order; the first truthy result excludes
	// the candidate from being yielded. Ignoring a directory does not
	// block descent into it.
	Ignore []RuleSpec

	// Prune rules are applied in order to directories; the first truthy
	// result blocks descent. The pruned directory itself may still be
	// yielded.
	Prune []RuleSpec

	// MinDepth and MaxDepth bound candidate testing, inclusive, relative
	// to each root (the root itself is depth 0). MaxDepth set to
	// UnboundedDepth (or any negative value) means no limit. Setting
	// MinDepth == MaxDepth restricts matches to exactly that depth.
	MinDepth int
	MaxDepth int

	// Sort emits entries within each directory in ascending name order,
	// directories and files interleaved.
	Sort bool

	// OnError handles directory-listing failures. Nil propagates the
	// failure, aborting the walk.
	OnError ErrorHandler

	// FollowSymlinks descends into symbolic links to directories. There
	// is no cycle detection: enabling this on a cyclic link graph walks
	// forever. Links are still tested as candidates either way.
	FollowSymlinks bool

	// Lister supplies directory listings. Nil uses the local filesystem.
	Lister Lister

	// Logger receives engine diagnostics. Nil builds one from LogLevel.
	Logger   *zap.Logger
	LogLevel LogLevel
}

// NewOptions returns Options with default values.
func NewOptions() Options {
	return Options{
		MaxDepth: UnboundedDepth,
		LogLevel: LogLevelError,
	}
}

// ExactDepth returns depth bounds that restrict matches to exactly depth
// k below each root:
//
//	opts.MinDepth, opts.MaxDepth = pathmap.ExactDepth(2)
func ExactDepth(k int) (min, max int) { return k, k }

func (o Options) validate() error {
	if o.MinDepth < 0 {
		return fmt.Errorf("%w: minimum depth must not be negative (got %d)", ErrInvalidDepth, o.MinDepth)
	}
	if o.MaxDepth >= 0 && o.MaxDepth < o.MinDepth {
		return fmt.Errorf("%w: maximum depth %d is below minimum depth %d", ErrInvalidDepth, o.MaxDepth, o.MinDepth)
	}
	return nil
}
