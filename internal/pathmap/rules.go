package pathmap

import (
	"fmt"
	"reflect"
	"regexp"

	"golang.org/x/text/unicode/norm"
)

// Rule is a predicate applied to a candidate path during traversal.
// It returns NoMatch when the rule does not apply, or an arbitrary
// payload (which may be nil) when it does.
//
// The same signature serves all three rule roles: the match rule decides
// whether a candidate is yielded and supplies the payload attached to the
// MatchResult; ignore rules exclude candidates from being yielded; prune
// rules block descent into directories.
type Rule func(path string, entry Entry) any

type noMatchType struct{}

func (noMatchType) String() string { return "NoMatch" }

// NoMatch is the sentinel returned by rules that do not match their input.
// It is distinguishable from every legitimate payload, including nil and
// empty slices. Compare against it directly: result == pathmap.NoMatch.
var NoMatch any = noMatchType{}

// DefaultMatchRule matches every path and carries no payload.
func DefaultMatchRule(path string, entry Entry) any { return nil }

// RegexRule compiles pattern once and returns a Rule that searches the
// candidate path (anywhere, not a full match). On success the payload is
// a []string holding the full match text followed by any captured groups;
// otherwise the rule returns NoMatch.
//
// Patterns and paths are NFC-normalized before matching so that composed
// and decomposed spellings of the same name compare equal.
func RegexRule(pattern string) (Rule, error) {
	re, err := regexp.Compile(norm.NFC.String(pattern))
	if err != nil {
		return nil, fmt.Errorf("pathmap: invalid rule pattern %q: %w", pattern, err)
	}
	return func(path string, entry Entry) any {
		m := re.FindStringSubmatch(norm.NFC.String(path))
		if m == nil {
			return NoMatch
		}
		return m
	}, nil
}

// MustRegexRule is like RegexRule but panics on an invalid pattern.
// Intended for rules known at compile time.
func MustRegexRule(pattern string) Rule {
	rule, err := RegexRule(pattern)
	if err != nil {
		panic(err)
	}
	return rule
}

// RuleSpec supplies a rule either as an already-built Rule or as a regex
// pattern string to be compiled. Exactly one of the fields should be set;
// a non-nil Rule wins.
type RuleSpec struct {
	Rule    Rule
	Pattern string
}

// RuleOf wraps an existing Rule in a RuleSpec.
func RuleOf(r Rule) RuleSpec { return RuleSpec{Rule: r} }

// PatternOf wraps a regex pattern string in a RuleSpec.
func PatternOf(pattern string) RuleSpec { return RuleSpec{Pattern: pattern} }

// compile normalizes the spec into a callable Rule. Pattern compilation
// errors surface here, before any filesystem access.
func (s RuleSpec) compile() (Rule, error) {
	if s.Rule != nil {
		return s.Rule, nil
	}
	return RegexRule(s.Pattern)
}

func compileRules(specs []RuleSpec) ([]Rule, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	rules := make([]Rule, len(specs))
	for i, s := range specs {
		r, err := s.compile()
		if err != nil {
			return nil, err
		}
		rules[i] = r
	}
	return rules, nil
}

// truthy reports whether a rule result counts as a positive answer for
// ignore and prune purposes. NoMatch, nil, false, zero numbers, and empty
// strings, slices, and maps are all false.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case noMatchType:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case []string:
		return len(x) > 0
	case int:
		return x != 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan, reflect.String:
		return rv.Len() > 0
	case reflect.Ptr, reflect.Interface, reflect.Func:
		return !rv.IsNil()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	}
	return true
}
