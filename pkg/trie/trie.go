// Package trie is the dictionary index: exact membership, prefix walks and
// bounded edit distance enumeration over a rune keyed prefix tree.
package trie

import (
	"sort"
	"strings"
)

const rootID int32 = 0

// edge links a parent to one child. Edges of a node are kept sorted by char.
type edge struct {
	char rune
	next int32
}

type node struct {
	children []edge
	terminal bool
}

// Trie stores lowercased words in an arena of nodes addressed by index.
// Node 0 is the root and is never terminal.
//
// A Trie is not safe for concurrent use when insertions overlap searches.
type Trie struct {
	nodes []node
	words int
}

// New returns an empty trie holding only the root.
func New() *Trie {
	return &Trie{nodes: make([]node, 1, 64)}
}

// Len returns the number of distinct stored words.
func (t *Trie) Len() int {
	return t.words
}

// NodeCount returns the arena size, root included.
func (t *Trie) NodeCount() int {
	return len(t.nodes)
}

// child finds the child of n keyed by r using a binary search over the sorted edges.
func (t *Trie) child(n int32, r rune) (int32, bool) {
	children := t.nodes[n].children
	i := sort.Search(len(children), func(i int) bool { return children[i].char >= r })
	if i < len(children) && children[i].char == r {
		return children[i].next, true
	}
	return 0, false
}

// link adds an edge n -r-> next, keeping the edge list ordered.
func (t *Trie) link(n int32, r rune, next int32) {
	children := t.nodes[n].children
	i := sort.Search(len(children), func(i int) bool { return children[i].char >= r })
	children = append(children, edge{})
	copy(children[i+1:], children[i:])
	children[i] = edge{char: r, next: next}
	t.nodes[n].children = children
}

// Insert stores word in lowercase. Empty words are ignored so the root never
// becomes terminal; inserting an existing word changes nothing.
func (t *Trie) Insert(word string) {
	word = strings.ToLower(word)
	if word == "" {
		return
	}

	cur := rootID
	for _, r := range word {
		next, ok := t.child(cur, r)
		if !ok {
			next = int32(len(t.nodes))
			t.nodes = append(t.nodes, node{})
			t.link(cur, r, next)
		}
		cur = next
	}

	if !t.nodes[cur].terminal {
		t.nodes[cur].terminal = true
		t.words++
	}
}

// walk follows s from the root and reports the node it ends on.
func (t *Trie) walk(s string) (int32, bool) {
	cur := rootID
	for _, r := range s {
		next, ok := t.child(cur, r)
		if !ok {
			return 0, false
		}
		cur = next
	}
	return cur, true
}

// Contains reports whether word, case-insensitively, is a stored word.
// Partial paths are prefixes only and report false.
func (t *Trie) Contains(word string) bool {
	n, ok := t.walk(strings.ToLower(word))
	if !ok {
		return false
	}
	return t.nodes[n].terminal
}

// WordsWithPrefix returns every stored word starting with prefix, in
// depth-first order with children visited by ascending rune.
func (t *Trie) WordsWithPrefix(prefix string) []string {
	prefix = strings.ToLower(prefix)
	n, ok := t.walk(prefix)
	if !ok {
		return nil
	}

	var results []string
	path := make([]rune, 0, len(prefix)+16)
	path = append(path, []rune(prefix)...)
	t.collect(n, path, &results)
	return results
}

// AllWords returns every stored word in depth-first order.
func (t *Trie) AllWords() []string {
	var results []string
	t.collect(rootID, make([]rune, 0, 32), &results)
	return results
}

func (t *Trie) collect(n int32, path []rune, results *[]string) {
	if t.nodes[n].terminal {
		*results = append(*results, string(path))
	}
	for _, e := range t.nodes[n].children {
		t.collect(e.next, append(path, e.char), results)
	}
}

// WordsWithinDistance returns every stored word whose Levenshtein distance
// to query (lowercased) is at most maxDistance, in depth-first order.
//
// One row of the edit distance table is carried per node and derived from
// the parent row, so the cost per visited node is O(len(query)). A subtree
// is skipped once every cell of the row exceeds maxDistance: along a single
// path the row minimum never decreases, so nothing below can match.
func (t *Trie) WordsWithinDistance(query string, maxDistance int) []string {
	if maxDistance < 0 {
		return nil
	}
	target := []rune(strings.ToLower(query))

	row := make([]int, len(target)+1)
	for i := range row {
		row[i] = i
	}

	var results []string
	path := make([]rune, 0, len(target)+maxDistance+1)
	for _, e := range t.nodes[rootID].children {
		t.searchWithin(e, append(path, e.char), target, maxDistance, row, &results)
	}
	return results
}

func (t *Trie) searchWithin(e edge, path []rune, target []rune, maxDistance int, prevRow []int, results *[]string) {
	row := make([]int, len(prevRow))
	row[0] = prevRow[0] + 1
	minCost := row[0]

	for i := 1; i < len(row); i++ {
		insertCost := row[i-1] + 1
		deleteCost := prevRow[i] + 1
		substituteCost := prevRow[i-1]
		if target[i-1] != e.char {
			substituteCost++
		}
		row[i] = min(insertCost, deleteCost, substituteCost)
		if row[i] < minCost {
			minCost = row[i]
		}
	}

	n := t.nodes[e.next]
	if n.terminal && row[len(target)] <= maxDistance {
		*results = append(*results, string(path))
	}

	if minCost > maxDistance {
		return
	}
	for _, c := range n.children {
		t.searchWithin(c, append(path, c.char), target, maxDistance, row, results)
	}
}
