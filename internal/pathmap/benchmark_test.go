package pathmap

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// setupBenchmarkTree creates a moderately deep directory structure for
// benchmarking the traversal loop.
func setupBenchmarkTree(b *testing.B) string {
	root := b.TempDir()

	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			dir := filepath.Join(root, fmt.Sprintf("dir%d", i), fmt.Sprintf("subdir%d", j))
			if err := os.MkdirAll(dir, 0755); err != nil {
				b.Fatalf("Failed to create directory: %v", err)
			}
			for k := 0; k < 10; k++ {
				path := filepath.Join(dir, fmt.Sprintf("file%d.txt", k))
				if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
					b.Fatalf("Failed to create file: %v", err)
				}
			}
		}
	}
	return root
}

func BenchmarkMatches(b *testing.B) {
	root := setupBenchmarkTree(b)

	pm, err := New(NewOptions())
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := pm.Matches(root)
		for it.Next() {
		}
		if err := it.Err(); err != nil {
			b.Fatalf("walk failed: %v", err)
		}
	}
}

func BenchmarkMatchesSorted(b *testing.B) {
	root := setupBenchmarkTree(b)

	opts := NewOptions()
	opts.Sort = true
	pm, err := New(opts)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := pm.Matches(root)
		for it.Next() {
		}
		if err := it.Err(); err != nil {
			b.Fatalf("walk failed: %v", err)
		}
	}
}

func BenchmarkMatchesWithRules(b *testing.B) {
	root := setupBenchmarkTree(b)

	match := PatternOf(`file([0-9]+)\.txt$`)
	opts := NewOptions()
	opts.Match = &match
	opts.Prune = []RuleSpec{PatternOf(`dir4$`)}

	pm, err := New(opts)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := pm.Matches(root)
		for it.Next() {
		}
		if err := it.Err(); err != nil {
			b.Fatalf("walk failed: %v", err)
		}
	}
}
