package paradigma

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRegistry_Derivations(t *testing.T) {
	idx := testIndex(t)

	tests := []struct {
		raw       string
		canonical string
		gloss     string
		degree    Degree
	}{
		{"amatus", "amātus, amāta, amātum", "Perfect passive participle or supine of amō, amāre, amāvī, amātum", Positive},
		{"amandus", "amandus, amanda, amandum", "Future passive participle or gerundive of amō, amāre, amāvī, amātum", Positive},
		{"regentis", "regens, regens, regens", "Present active participle of regō, regere, rēxī, rēctum", Positive},
		{"amantissimus", "amantissimus, amantissima, amantissimum", "Superlative of amans, amans, amans", Superlative},
		{"amaturus", "amātūrus, amātūra, amātūrum", "Future active participle of amō, amāre, amāvī, amātum", Positive},
		{"altior", "altior, altior, altius", "Comparative of altus, alta, altum", Comparative},
		{"altissimus", "altissimus, altissima, altissimum", "Superlative of altus, alta, altum", Superlative},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			a, ok := lemmaOf(t, idx, tt.raw).(*Adjective)
			require.True(t, ok)
			assert.Equal(t, tt.canonical, CanonicalForm(a))
			assert.Equal(t, tt.gloss, a.Gloss())
			assert.Equal(t, tt.degree, a.Degree)
			assert.Empty(t, a.ComparativeStem)
			assert.Empty(t, a.SuperlativeStem)
		})
	}

	// ambul has no gerundive stem
	assert.Empty(t, idx.Query("ambulandus"))
}

func TestRegistry_Stats(t *testing.T) {
	lemmas, tables := testLemmas(t)
	reg := NewRegistry(tables, NewTrie(), DerivationTables{}, nil)
	for _, l := range lemmas {
		require.NoError(t, reg.Register(l))
	}
	assert.Equal(t, Stats{Lemmas: 10, Derived: 16, Forms: 508, Entries: 960}, reg.Stats())

	// registering again adds no entries
	require.NoError(t, reg.Register(lemmas[0]))
	stats := reg.Stats()
	assert.Equal(t, 508, stats.Forms)
	assert.Equal(t, 960, stats.Entries)
}

func TestRegistry_Invalid(t *testing.T) {
	reg := NewRegistry(nil, NewTrie(), DerivationTables{}, nil)
	assert.ErrorIs(t, reg.Register(nil), ErrMalformedEntry)
	assert.ErrorIs(t, reg.Register((*Noun)(nil)), ErrMalformedEntry)
	assert.ErrorIs(t, reg.Register((*Verb)(nil)), ErrMalformedEntry)
	assert.Zero(t, reg.Stats())
}

func TestRegistry_LemmaWithoutForms(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	reg := NewRegistry(nil, NewTrie(), DerivationTables{}, zap.New(core))

	blank := &Declension{Name: "X"}
	for i := range blank.Slots {
		blank.Slots[i] = NoForm
	}
	require.NoError(t, reg.Register(&Noun{Citation: "nihil", Gender: Neuter, Decl: blank}))
	assert.Equal(t, 1, logs.FilterMessage("lemma has no forms").Len())
	assert.Equal(t, Stats{Lemmas: 1}, reg.Stats())
}

func TestBuildIndex_DerivationTables(t *testing.T) {
	lemmas, tables := testLemmas(t)
	_, err := BuildIndex(lemmas, tables, WithDerivationTables(DerivationTables{Participle: "L9"}))
	assert.ErrorIs(t, err, ErrUnknownTable)

	// present participles declined like comparatives
	lemmas, tables = testLemmas(t)
	idx, err := BuildIndex(lemmas, tables, WithDerivationTables(DerivationTables{
		Participle:       "L3",
		ParticipleNeuter: "L3N",
	}))
	require.NoError(t, err)
	a := lemmaOf(t, idx, "amans").(*Adjective)
	assert.Equal(t, "L3", a.MascDecl.Name)
	assert.Equal(t, "L3N", a.NeutDecl.Name)
}

func TestBuildIndex_Logger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	_, err := LoadIndex(os.DirFS(dataDir), WithLogger(zap.New(core)))
	require.NoError(t, err)

	built := logs.FilterMessage("index built").All()
	require.Len(t, built, 1)
	fields := built[0].ContextMap()
	assert.Equal(t, int64(10), fields["lemmas"])
	assert.Equal(t, int64(16), fields["derived"])
	assert.Equal(t, int64(508), fields["forms"])
	assert.Equal(t, 3, logs.FilterMessage("lexicon file loaded").Len())
}

func TestIndex_Complete(t *testing.T) {
	idx := testIndex(t)

	assert.Equal(t, []string{"amanda", "amandae", "amandam", "amande", "amandum"}, idx.Complete("ama", 5))
	assert.Len(t, idx.Complete("ama", 0), 144)
	assert.Empty(t, idx.Complete("zz", 3))

	got := idx.Complete("rex", 0)
	require.Len(t, got, 27)
	assert.Equal(t, "rēx", got[0])
	assert.Equal(t, "rēxī", got[len(got)-1])
}

func TestIndex_Lookup(t *testing.T) {
	idx := testIndex(t)
	assert.Len(t, idx.Lookup("amāvī"), 1)
	assert.Nil(t, idx.Lookup("amavi"))
}
