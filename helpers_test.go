package paradigma

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

const dataDir = "testdata"

func testIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := LoadIndex(os.DirFS(dataDir))
	require.NoError(t, err)
	return idx
}

// testLemmas loads the lexicon without building an index.
func testLemmas(t *testing.T) ([]Lemma, *RuleTables) {
	t.Helper()
	ld := NewLoader(os.DirFS(dataDir), nil)
	lemmas, err := ld.Load()
	require.NoError(t, err)
	return lemmas, ld.Tables
}

// lemmaOf returns the lemma of the first entry found for raw.
func lemmaOf(t *testing.T, idx *Index, raw string) Lemma {
	t.Helper()
	_, entries, ok := idx.First(raw)
	require.True(t, ok, "no entry for %q", raw)
	return entries[0].Lemma
}

func blankConjugation(name string) *Conjugation {
	c := &Conjugation{Name: name}
	for i := range c.Slots {
		c.Slots[i] = NoForm
	}
	return c
}

func firstDeclension() *Declension {
	return &Declension{
		Name: "L1",
		Slots: [NumInflections]string{
			"$a", "$ae", "$ae", "$Arum", "$ae", "$Is", "$am",
			"$As", "$A", "$Is", "$a", "$ae", "*", "*",
		},
	}
}

// surfaces renders entries as "form CODE" for compact assertions.
func surfaces(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, RenderSurface(e)+" "+e.Code())
	}
	return out
}
