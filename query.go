package paradigma

import (
	"context"
	"fmt"
	"iter"
	"math"

	"golang.org/x/sync/errgroup"
)

// ambiguity lists, for each letter that plain input cannot
// disambiguate, every spelling the index may hold for it. Letters not
// listed stand for themselves.
var ambiguity = map[rune][]string{
	'a': {"a", "\u0101"},
	'e': {"e", "\u0113"},
	'o': {"o", "\u014d"},
	'y': {"y", "\u0233"},
	'i': {"i", "\u012b", "j"},
	'j': {"i", "\u012b", "j"},
	'u': {"u", "\u016b", "v"},
	'v': {"u", "\u016b", "v"},
}

// choices returns the branch set for every rune of a normalized query.
func choices(q string) [][]string {
	var out [][]string
	for _, c := range q {
		if alts, ok := ambiguity[c]; ok {
			out = append(out, alts)
			continue
		}
		out = append(out, []string{string(c)})
	}
	return out
}

// Candidates yields every disambiguated spelling consistent with raw,
// after NormalizeQuery. The left-most letter varies slowest, so the
// order is stable for a given input. Nothing is materialized up front:
// a caller that stops early pays only for what it consumed.
func Candidates(raw string) iter.Seq[string] {
	opts := choices(NormalizeQuery(raw))
	return func(yield func(string) bool) {
		if len(opts) == 0 {
			return
		}
		expandCandidates(opts, make([]byte, 0, 4*len(opts)), yield)
	}
}

func expandCandidates(opts [][]string, prefix []byte, yield func(string) bool) bool {
	if len(opts) == 0 {
		return yield(string(prefix))
	}
	for _, alt := range opts[0] {
		if !expandCandidates(opts[1:], append(prefix, alt...), yield) {
			return false
		}
	}
	return true
}

// CandidateCount returns how many spellings Candidates would yield for
// raw, saturating at math.MaxInt.
func CandidateCount(raw string) int {
	opts := choices(NormalizeQuery(raw))
	if len(opts) == 0 {
		return 0
	}
	n := 1
	for _, alts := range opts {
		if n > math.MaxInt/len(alts) {
			return math.MaxInt
		}
		n *= len(alts)
	}
	return n
}

// Query returns every entry whose surface form is a spelling of raw,
// without duplicates, in the order the candidates are generated.
func (x *Index) Query(raw string) []Entry {
	set := newEntrySet()
	for cand := range Candidates(raw) {
		for _, e := range x.trie.Lookup(cand) {
			set.add(e)
		}
	}
	return set.entries()
}

// QueryLimited is Query with a ceiling on the number of spellings tried.
// It returns ErrTooAmbiguous, without searching, when raw expands to
// more than maxCandidates spellings. A ceiling of zero or less disables
// the check.
func (x *Index) QueryLimited(raw string, maxCandidates int) ([]Entry, error) {
	if maxCandidates > 0 {
		if n := CandidateCount(raw); n > maxCandidates {
			return nil, fmt.Errorf("%q expands to %d spellings, limit %d: %w", raw, n, maxCandidates, ErrTooAmbiguous)
		}
	}
	return x.Query(raw), nil
}

// First returns the first candidate spelling of raw that is an indexed
// surface form, with its entries. ok is false when no spelling matches.
func (x *Index) First(raw string) (form string, entries []Entry, ok bool) {
	for cand := range Candidates(raw) {
		if found := x.trie.Lookup(cand); len(found) > 0 {
			return cand, found, true
		}
	}
	return "", nil, false
}

// QueryBatch runs Query for every input on up to workers goroutines and
// returns the results in input order. It stops early when ctx is
// cancelled.
func (x *Index) QueryBatch(ctx context.Context, raws []string, workers int) ([][]Entry, error) {
	if workers <= 0 {
		workers = 1
	}
	out := make([][]Entry, len(raws))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, raw := range raws {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = x.Query(raw)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Lemmas returns the distinct lemmas of entries in first-seen order.
func Lemmas(entries []Entry) []Lemma {
	var out []Lemma
next:
	for _, e := range entries {
		for _, l := range out {
			if l.Equal(e.Lemma) {
				continue next
			}
		}
		out = append(out, e.Lemma)
	}
	return out
}
