// Package pathmap provides rule-driven recursive filesystem traversal.
//
// A PathMap is configured once with a match rule, ignore rules, prune
// rules, depth bounds, a sort flag, a symlink policy, and an error
// handler, and can then generate matches from any number of root paths.
//
//	// Print every .go file under the current directory, skipping vendor trees.
//	opts := pathmap.NewOptions()
//	match := pathmap.PatternOf(`\.go$`)
//	opts.Match = &match
//	opts.Prune = []pathmap.RuleSpec{pathmap.PatternOf(`vendor$`)}
//
//	pm, err := pathmap.New(opts)
//	if err != nil {
//		log.Fatal(err)
//	}
//	it := pm.Matches(".")
//	for it.Next() {
//		fmt.Println(it.Result().Path)
//	}
//	if err := it.Err(); err != nil {
//		log.Fatal(err)
//	}
//
// Rules may be arbitrary callables instead of patterns:
//
//	opts.Ignore = []pathmap.RuleSpec{pathmap.RuleOf(
//		func(path string, entry pathmap.Entry) any {
//			return strings.HasPrefix(entry.Name(), ".")
//		},
//	)}
//
// Matches are generated lazily; abandoning the iterator stops all further
// filesystem access. A PathMap is immutable after New and safe for
// concurrent walks, but a single Matches iterator must not be shared.
//
// Enabling FollowSymlinks performs no cycle detection: a cyclic symlink
// graph will be walked without bound.
package pathmap
