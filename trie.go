package paradigma

import (
	"slices"
	"strings"
)

// trieNode is one node of the surface-form index. entries holds the
// index entries whose surface form ends exactly at this node.
type trieNode struct {
	next    map[rune]*trieNode
	entries []Entry
}

func newTrieNode() *trieNode {
	return &trieNode{next: make(map[rune]*trieNode)}
}

// Trie indexes surface forms, rune by rune, to the entries that produce
// them. Keys are case-folded, so "Rōma" is stored and listed as "rōma".
// It is built once and then only read, so concurrent lookups need no
// locking.
type Trie struct {
	root    *trieNode
	forms   int
	entries int
}

// NewTrie returns an empty trie.
func NewTrie() *Trie {
	return &Trie{root: newTrieNode()}
}

// Insert records e under the complete surface form. It returns false,
// leaving the trie unchanged, when a structurally equal entry is already
// stored for that form.
func (t *Trie) Insert(form string, e Entry) bool {
	node := t.root
	for _, c := range foldCase(form) {
		child, ok := node.next[c]
		if !ok {
			child = newTrieNode()
			node.next[c] = child
		}
		node = child
	}
	for _, have := range node.entries {
		if have.Equal(e) {
			return false
		}
	}
	if len(node.entries) == 0 {
		t.forms++
	}
	node.entries = append(node.entries, e)
	t.entries++
	return true
}

// find walks the path spelled by s and returns the node it ends at, or
// nil when some rune has no child.
func (t *Trie) find(s string) *trieNode {
	node := t.root
	for _, c := range foldCase(s) {
		child, ok := node.next[c]
		if !ok {
			return nil
		}
		node = child
	}
	return node
}

// Lookup returns the entries stored for exactly form. A form that is only
// a prefix of indexed forms has no entries and yields nil.
func (t *Trie) Lookup(form string) []Entry {
	node := t.find(form)
	if node == nil || len(node.entries) == 0 {
		return nil
	}
	return node.entries
}

// Complete returns up to limit indexed surface forms that start with
// prefix, in lexical order. A limit of zero or less means no limit.
func (t *Trie) Complete(prefix string, limit int) []string {
	node := t.find(prefix)
	if node == nil {
		return nil
	}
	var out []string
	var b strings.Builder
	b.WriteString(foldCase(prefix))
	collect(node, &b, func(form string, _ []Entry) bool {
		out = append(out, form)
		return limit <= 0 || len(out) < limit
	})
	return out
}

// Walk calls fn for every indexed surface form in lexical order until fn
// returns false.
func (t *Trie) Walk(fn func(form string, entries []Entry) bool) {
	var b strings.Builder
	collect(t.root, &b, fn)
}

// collect visits node and its descendants depth first, children sorted
// by rune so that output is deterministic.
func collect(node *trieNode, b *strings.Builder, fn func(string, []Entry) bool) bool {
	if len(node.entries) > 0 {
		if !fn(b.String(), node.entries) {
			return false
		}
	}
	keys := make([]rune, 0, len(node.next))
	for c := range node.next {
		keys = append(keys, c)
	}
	slices.Sort(keys)
	prefix := b.String()
	for _, c := range keys {
		b.Reset()
		b.WriteString(prefix)
		b.WriteRune(c)
		if !collect(node.next[c], b, fn) {
			return false
		}
	}
	return true
}

// Forms returns the number of distinct surface forms with entries.
func (t *Trie) Forms() int { return t.forms }

// Entries returns the total number of stored entries.
func (t *Trie) Entries() int { return t.entries }
