package paradigma

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecline(t *testing.T) {
	puella := &Noun{Citation: "puella", Stem: "puell", Gender: Feminine, Decl: firstDeclension()}

	tests := []struct {
		infl Inflection
		want string
	}{
		{NomSg, "puella"},
		{GenPl, "puellārum"},
		{DatPl, "puellīs"},
		{AccPl, "puellās"},
		{AblSg, "puellā"},
		{VocSg, "puella"},
	}
	for _, tt := range tests {
		t.Run(tt.infl.String(), func(t *testing.T) {
			got, ok := Decline(puella, tt.infl)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := Decline(puella, LocSg)
	assert.False(t, ok, "locative is marked absent")
}

func TestDecline_CitationMarker(t *testing.T) {
	l3 := &Declension{Name: "L3"}
	for i := range l3.Slots {
		l3.Slots[i] = "$is"
	}
	l3.Slots[NomSg] = "@"
	l3.Slots[VocSg] = "@ignored"
	rex := &Noun{Citation: "rEx", Stem: "rEg", Gender: Masculine, Decl: l3}

	got, ok := Decline(rex, NomSg)
	require.True(t, ok)
	assert.Equal(t, "rēx", got)

	got, ok = Decline(rex, VocSg)
	require.True(t, ok)
	assert.Equal(t, "rēx", got, "text after @ is ignored")

	got, ok = Decline(rex, GenSg)
	require.True(t, ok)
	assert.Equal(t, "rēgis", got)
}

func TestDeclineAdjective_Suffix(t *testing.T) {
	l1 := firstDeclension()
	a := &Adjective{
		Masculine: "quaedam", Feminine: "quaedam", Neuter: "quaedam",
		Stem: "qu", Suffix: "dam",
		MascDecl: l1, FemDecl: l1, NeutDecl: l1,
	}
	got, ok := DeclineAdjective(a, AccSg, Feminine)
	require.True(t, ok)
	assert.Equal(t, "quamdam", got)
}

func TestConjugate(t *testing.T) {
	idx := testIndex(t)
	rego := lemmaOf(t, idx, "rego").(*Verb)

	tests := []struct {
		schema ConjugationSchema
		want   string
	}{
		{InfActPre, "regere"},
		{InfActPrf, "rēxisse"},
		{InfPasPre, "regī"},
		{ImpActPre2Sg, "rege"},
		{ImpActPre2Pl, "regite"},
		{ImpActFut2Sg, "regitō"},
		{ImpActFut2Pl, "regitōte"},
		{ImpActFut3Pl, "reguntō"},
		{ImpPasPre2Sg, "regere"},
		{ImpPasFut3Pl, "reguntor"},
		{IndActSimPre1Sg, "regō"},
		{IndActSimPre3Pl, "regunt"},
		{IndActSimImp2Pl, "regēbātis"},
		{IndActSimFut1Sg, "regam"},
		{IndActPrfPre1Sg, "rēxī"},
		{IndActPrfPre2Sg, "rēxistī"},
		{IndActPrfPre3Pl, "rēxērunt"},
		{IndActPrfImp3Sg, "rēxerat"},
		{IndPasSimPre2Pl, "regiminī"},
		{SubActSimPre1Sg, "regam"},
		{SubActPrfImp1Pl, "rēxissēmus"},
		{SubPasSimImp3Sg, "regerētur"},
	}
	for _, tt := range tests {
		t.Run(tt.schema.Code(), func(t *testing.T) {
			got, ok := Conjugate(rego, tt.schema)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConjugate_NoForm(t *testing.T) {
	c := blankConjugation("T")
	c.Slots[slotInfinitive] = "+ere"
	c.Slots[slotIndPresent] = "!A@"   // regular endings have no 1st singular
	c.Slots[slotIndPresent+1] = "!A@" // 2nd singular exists
	c.Slots[slotIndPresent+2] = "!a*t"
	c.Slots[slotIndPresent+3] = ""

	v := &Verb{PresentStem: "am", ActiveSimple: c, ActivePerfect: c, PassiveSimple: emptyConjugation}

	tests := []struct {
		name   string
		verb   *Verb
		schema ConjugationSchema
	}{
		{"absent extra stem", v, InfActPre},
		{"ending missing for person", v, IndActSimPre1Sg},
		{"star inside template", v, IndActSimPre3Sg},
		{"empty template", v, IndActSimPre1Pl},
		{"absent perfect stem", v, IndActPrfPre2Sg},
		{"empty passive table", v, InfPasPre},
		{"schema out of range", v, NumSchemas},
		{"nil verb", nil, InfActPre},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Conjugate(tt.verb, tt.schema)
			assert.False(t, ok)
			assert.Empty(t, got)
		})
	}

	got, ok := Conjugate(v, IndActSimPre2Sg)
	require.True(t, ok)
	assert.Equal(t, "amās", got)

	withExtra := *v
	withExtra.ExtraStem = "fer"
	got, ok = Conjugate(&withExtra, InfActPre)
	require.True(t, ok)
	assert.Equal(t, "ferere", got)
}

func TestExpandNominal_NoForm(t *testing.T) {
	tests := []struct {
		name     string
		template string
		citation string
		stem     string
	}{
		{"empty template", "", "rosa", "ros"},
		{"sentinel", "*", "rosa", "ros"},
		{"star after citation", "@*", "rosa", "ros"},
		{"star after stem", "$a*", "rosa", "ros"},
		{"absent citation", "@", "", "ros"},
		{"absent stem", "$ae", "rosa", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := expandNominal(tt.template, tt.citation, tt.stem)
			assert.False(t, ok)
			assert.Empty(t, got)
		})
	}
}

func TestExpand_Deterministic(t *testing.T) {
	lemmas, tables := testLemmas(t)
	idx, err := BuildIndex(lemmas, tables)
	require.NoError(t, err)

	idx.Walk(func(form string, entries []Entry) bool {
		for _, e := range entries {
			first, ok1 := Expand(e)
			second, ok2 := Expand(e)
			require.True(t, ok1)
			require.True(t, ok2)
			require.Equal(t, first, second)
			require.Equal(t, form, foldCase(first))
		}
		return true
	})
}

func TestVerbMarkers_NoFirstSingular(t *testing.T) {
	tests := []struct {
		marker rune
		second string
	}{
		{'@', "s"},
		{'#', "stI"},
		{'$', "ris"},
	}
	for _, tt := range tests {
		t.Run(string(tt.marker), func(t *testing.T) {
			ending, ok := verbMarkers[tt.marker](First, false)
			assert.False(t, ok)
			assert.Empty(t, ending)

			ending, ok = verbMarkers[tt.marker](Second, false)
			require.True(t, ok)
			assert.Equal(t, tt.second, ending)
		})
	}
}
