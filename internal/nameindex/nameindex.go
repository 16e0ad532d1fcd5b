/*
Package nameindex implements a case-insensitive prefix index over display names.

Both registries (scripts and language systems) use it to offer name completion,
e.g., for the interactive CLI. Names are folded to lower case for indexing;
every folded key remembers the positions of the entries carrying it, so that
equal names (after folding) will not shadow each other.
*/
package nameindex

import (
	"sort"
	"strings"

	"github.com/derekparker/trie"
)

// Index maps folded names to entry positions of a registry.
type Index struct {
	trie      *trie.Trie
	positions map[string][]int
}

// New creates an empty index.
func New() *Index {
	return &Index{
		trie:      trie.New(),
		positions: make(map[string][]int),
	}
}

// Len is the number of distinct folded names in the index.
func (ix *Index) Len() int {
	return len(ix.positions)
}

// Add associates name with position pos. Empty names are ignored.
func (ix *Index) Add(name string, pos int) {
	key := fold(name)
	if key == "" {
		return
	}
	if _, ok := ix.positions[key]; !ok {
		ix.trie.Add(key, nil)
	}
	ix.positions[key] = append(ix.positions[key], pos)
}

// Prefix returns the positions of all entries whose name starts with prefix,
// ignoring case. Positions are returned in ascending order. An empty prefix
// matches nothing.
func (ix *Index) Prefix(prefix string) []int {
	key := fold(prefix)
	if key == "" {
		return nil
	}
	var positions []int
	for _, k := range ix.trie.PrefixSearch(key) {
		positions = append(positions, ix.positions[k]...)
	}
	sort.Ints(positions)
	return positions
}

// Keys returns all folded names starting with prefix, sorted.
func (ix *Index) Keys(prefix string) []string {
	key := fold(prefix)
	if key == "" {
		return nil
	}
	keys := ix.trie.PrefixSearch(key)
	sort.Strings(keys)
	return keys
}

func fold(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
