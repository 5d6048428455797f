package pathmap

import (
	"reflect"
	"testing"
)

// TestRegexRuleKnownResults checks the payload contract: the full match
// followed by any captured groups, or NoMatch when the pattern does not
// match anywhere in the path.
func TestRegexRuleKnownResults(t *testing.T) {
	known := map[string]map[string]any{
		`.+`: {
			"hello":         []string{"hello"},
			"something.txt": []string{"something.txt"},
			"":              NoMatch,
		},
		`(.+)\.(.+)`: {
			"something.txt": []string{"something.txt", "something", "txt"},
			"image_001.dcm": []string{"image_001.dcm", "image_001", "dcm"},
			"something":     NoMatch,
		},
		`image_([0-9]+)\.dcm`: {
			"image_001.dcm": []string{"image_001.dcm", "001"},
			"image_1.dcm":   []string{"image_1.dcm", "1"},
			"image_one.dcm": NoMatch,
			"image_001.dc":  NoMatch,
		},
	}

	for pattern, cases := range known {
		rule, err := RegexRule(pattern)
		if err != nil {
			t.Fatalf("RegexRule(%q) failed: %v", pattern, err)
		}
		for input, expected := range cases {
			got := rule(input, nil)
			if expected == NoMatch {
				if got != NoMatch {
					t.Errorf("pattern %q on %q: expected NoMatch, got %v", pattern, input, got)
				}
				continue
			}
			if !reflect.DeepEqual(got, expected) {
				t.Errorf("pattern %q on %q: expected %v, got %v", pattern, input, expected, got)
			}
		}
	}
}

// TestRegexRuleSearchesAnywhere verifies that patterns are searched, not
// anchored to the whole path.
func TestRegexRuleSearchesAnywhere(t *testing.T) {
	rule, err := RegexRule(`middle`)
	if err != nil {
		t.Fatalf("RegexRule failed: %v", err)
	}
	if got := rule("start/middle/end", nil); got == NoMatch {
		t.Errorf("expected a match for substring pattern, got NoMatch")
	}
}

func TestRegexRuleInvalidPattern(t *testing.T) {
	if _, err := RegexRule(`[unclosed`); err == nil {
		t.Errorf("expected error for invalid pattern, got nil")
	}
}

func TestMustRegexRulePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for invalid pattern")
		}
	}()
	MustRegexRule(`[unclosed`)
}

// TestNoMatchIsFalsyAndUnique verifies the sentinel is distinguishable
// from nil and from empty payloads.
func TestNoMatchIsFalsyAndUnique(t *testing.T) {
	if truthy(NoMatch) {
		t.Errorf("NoMatch must be falsy")
	}
	if NoMatch == nil {
		t.Errorf("NoMatch must not equal nil")
	}
	var empty any = []string{}
	if empty == NoMatch {
		t.Errorf("empty slice must not equal NoMatch")
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		value    any
		expected bool
	}{
		{nil, false},
		{NoMatch, false},
		{false, false},
		{true, true},
		{"", false},
		{"x", true},
		{[]string{}, false},
		{[]string{"a"}, true},
		{0, false},
		{3, true},
		{map[string]int{}, false},
		{map[string]int{"a": 1}, true},
	}
	for _, tt := range tests {
		if got := truthy(tt.value); got != tt.expected {
			t.Errorf("truthy(%v) = %v, expected %v", tt.value, got, tt.expected)
		}
	}
}

func TestRuleSpecCompile(t *testing.T) {
	called := false
	spec := RuleOf(func(path string, entry Entry) any {
		called = true
		return nil
	})
	rule, err := spec.compile()
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	rule("x", nil)
	if !called {
		t.Errorf("RuleOf did not return the supplied rule")
	}

	spec = PatternOf(`\.txt$`)
	rule, err = spec.compile()
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	if got := rule("a.txt", nil); got == NoMatch {
		t.Errorf("pattern spec did not match")
	}
	if got := rule("a.go", nil); got != NoMatch {
		t.Errorf("pattern spec matched unexpectedly: %v", got)
	}
}
