package pathmap

import (
	internal "github.com/TFMV/pathmap/internal/pathmap"
	"go.uber.org/zap"
)

// Re-export the types from the internal package
type (
	// PathMap walks directory trees according to a fixed rule configuration.
	PathMap = internal.PathMap

	// Options configures a PathMap.
	Options = internal.Options

	// Rule is a predicate applied to a candidate path during traversal.
	Rule = internal.Rule

	// RuleSpec supplies a rule as either a Rule or a regex pattern string.
	RuleSpec = internal.RuleSpec

	// MatchResult is produced once per matched candidate.
	MatchResult = internal.MatchResult

	// Matches is a lazy, single-use iterator over walk results.
	Matches = internal.Matches

	// Root is a starting point for one independent traversal.
	Root = internal.Root

	// Entry describes a single directory entry.
	Entry = internal.Entry

	// Lister is the directory-listing capability consumed by the engine.
	Lister = internal.Lister

	// ErrorHandler is invoked when listing a directory fails mid-walk.
	ErrorHandler = internal.ErrorHandler

	// LogLevel defines the verbosity of engine logging.
	LogLevel = internal.LogLevel
)

// Re-export the constants
const (
	// UnboundedDepth disables the maximum-depth limit.
	UnboundedDepth = internal.UnboundedDepth

	// Log levels
	LogLevelError = internal.LogLevelError
	LogLevelWarn  = internal.LogLevelWarn
	LogLevelInfo  = internal.LogLevelInfo
	LogLevelDebug = internal.LogLevelDebug
)

// NoMatch is the sentinel returned by rules that do not match their input.
var NoMatch = internal.NoMatch

// ErrInvalidDepth is returned by New when the depth bounds are inconsistent.
var ErrInvalidDepth = internal.ErrInvalidDepth

// New builds a PathMap from opts.
func New(opts Options) (*PathMap, error) { return internal.New(opts) }

// NewOptions returns Options with default values.
func NewOptions() Options { return internal.NewOptions() }

// ExactDepth returns depth bounds that restrict matches to exactly depth
// k below each root.
func ExactDepth(k int) (min, max int) { return internal.ExactDepth(k) }

// RegexRule compiles pattern once and returns a Rule that searches the
// candidate path, yielding the full match and captured groups on success.
func RegexRule(pattern string) (Rule, error) { return internal.RegexRule(pattern) }

// MustRegexRule is like RegexRule but panics on an invalid pattern.
func MustRegexRule(pattern string) Rule { return internal.MustRegexRule(pattern) }

// DefaultMatchRule matches every path and carries no payload.
func DefaultMatchRule(path string, entry Entry) any {
	return internal.DefaultMatchRule(path, entry)
}

// RuleOf wraps an existing Rule in a RuleSpec.
func RuleOf(r Rule) RuleSpec { return internal.RuleOf(r) }

// PatternOf wraps a regex pattern string in a RuleSpec.
func PatternOf(pattern string) RuleSpec { return internal.PatternOf(pattern) }

// NewOSLister returns a Lister backed by the local filesystem.
func NewOSLister() Lister { return internal.NewOSLister() }

// NewLogger creates a zap logger with the specified log level.
func NewLogger(level LogLevel) *zap.Logger { return internal.NewLogger(level) }

// WarnHandler returns an ErrorHandler that logs each listing failure at
// warn level and continues the walk.
func WarnHandler(logger *zap.Logger) ErrorHandler { return internal.WarnHandler(logger) }
