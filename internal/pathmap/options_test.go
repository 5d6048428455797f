package pathmap

import (
	"errors"
	"testing"
)

func TestNewValidatesDepthBounds(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
		wantErr  bool
	}{
		{"defaults", 0, UnboundedDepth, false},
		{"exact zero", 0, 0, false},
		{"bounded range", 1, 3, false},
		{"negative minimum", -1, UnboundedDepth, true},
		{"max below min", 2, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := NewOptions()
			opts.MinDepth = tt.min
			opts.MaxDepth = tt.max

			_, err := New(opts)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDepth) {
					t.Errorf("expected ErrInvalidDepth, got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestExactDepthBounds(t *testing.T) {
	opts := NewOptions()
	opts.MinDepth, opts.MaxDepth = ExactDepth(3)
	if opts.MinDepth != 3 || opts.MaxDepth != 3 {
		t.Errorf("ExactDepth(3) gave bounds (%d, %d), expected (3, 3)", opts.MinDepth, opts.MaxDepth)
	}
	if _, err := New(opts); err != nil {
		t.Errorf("unexpected error for exact depth bounds: %v", err)
	}
}

func TestNewRejectsInvalidPatterns(t *testing.T) {
	bad := PatternOf(`[unclosed`)

	opts := NewOptions()
	opts.Match = &bad
	if _, err := New(opts); err == nil {
		t.Errorf("expected error for invalid match pattern")
	}

	opts = NewOptions()
	opts.Ignore = []RuleSpec{bad}
	if _, err := New(opts); err == nil {
		t.Errorf("expected error for invalid ignore pattern")
	}

	opts = NewOptions()
	opts.Prune = []RuleSpec{bad}
	if _, err := New(opts); err == nil {
		t.Errorf("expected error for invalid prune pattern")
	}
}
