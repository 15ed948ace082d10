// Package paradigma generates every inflected form of a Latin lexicon
// from declension and conjugation tables, indexes the forms in a trie,
// and looks up plain-text input such as "amavi" by trying every
// spelling with vowel lengths and consonantal i/u restored.
package paradigma

import (
	"slices"

	"go.uber.org/zap"
)

// Index is a built, read-only form index. It is safe for concurrent use.
type Index struct {
	trie  *Trie
	stats Stats
}

type buildOptions struct {
	derive DerivationTables
	logger *zap.Logger
}

// Option configures BuildIndex.
type Option func(*buildOptions)

// WithDerivationTables sets the tables used for derived adjectives.
func WithDerivationTables(d DerivationTables) Option {
	return func(o *buildOptions) { o.derive = d }
}

// WithLogger sets the logger that receives build diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(o *buildOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

func resolveOptions(opts []Option) buildOptions {
	o := buildOptions{
		derive: DefaultDerivationTables(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// BuildIndex registers lemmas in order and returns the finished index.
// tables resolves the declensions of derived adjectives; it may be nil
// when no lemma derives anything.
func BuildIndex(lemmas []Lemma, tables *RuleTables, opts ...Option) (*Index, error) {
	o := resolveOptions(opts)
	reg := NewRegistry(tables, NewTrie(), o.derive, o.logger)
	for _, l := range lemmas {
		if err := reg.Register(l); err != nil {
			return nil, err
		}
	}

	stats := reg.Stats()
	o.logger.Debug("index built",
		zap.Int("lemmas", stats.Lemmas),
		zap.Int("derived", stats.Derived),
		zap.Int("forms", stats.Forms),
		zap.Int("entries", stats.Entries),
	)
	return &Index{trie: reg.Trie(), stats: stats}, nil
}

// Lookup returns the entries indexed under exactly form, which must be
// spelled in the disambiguated alphabet ("amāvī", not "amavi"). Case is
// ignored.
func (x *Index) Lookup(form string) []Entry {
	return x.trie.Lookup(form)
}

// Complete returns up to limit indexed surface forms beginning with any
// spelling of prefix, in lexical order. A limit of zero or less means
// no limit.
func (x *Index) Complete(prefix string, limit int) []string {
	var out []string
	for cand := range Candidates(prefix) {
		out = append(out, x.trie.Complete(cand, limit)...)
	}
	slices.Sort(out)
	out = slices.Compact(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Walk calls fn for every indexed surface form in lexical order until fn
// returns false.
func (x *Index) Walk(fn func(form string, entries []Entry) bool) {
	x.trie.Walk(fn)
}

// Stats returns the counters collected while the index was built.
func (x *Index) Stats() Stats {
	return x.stats
}
