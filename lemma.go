package paradigma

import "encoding/binary"

// Lemma is a lexicon entry: a *Noun, an *Adjective or a *Verb.
// Lemmas are immutable once registered; equality is structural.
type Lemma interface {
	// POS returns the part of speech.
	POS() PartOfSpeech
	// Gloss returns the meaning recorded for the lemma.
	Gloss() string
	// Equal reports whether other is structurally identical.
	Equal(other Lemma) bool

	appendKey(buf []byte) []byte
}

// Noun is a nominal lexicon entry. String fields use the lexicon
// notation, in which an upper-case vowel is long.
type Noun struct {
	// Citation is the dictionary headword (nominative singular).
	Citation string
	// Genitive is the explicit genitive singular, empty when the
	// genitive is produced by the declension.
	Genitive string
	// Stem is substituted for "$" in declension templates.
	Stem    string
	Gender  Gender
	Decl    *Declension
	Meaning string
}

// POS implements Lemma.
func (n *Noun) POS() PartOfSpeech { return POSNoun }

// Gloss implements Lemma.
func (n *Noun) Gloss() string { return n.Meaning }

// Equal implements Lemma.
func (n *Noun) Equal(other Lemma) bool {
	o, ok := other.(*Noun)
	if !ok || n == nil || o == nil {
		return ok && n == o
	}
	if n == o {
		return true
	}
	return n.Citation == o.Citation &&
		n.Genitive == o.Genitive &&
		n.Stem == o.Stem &&
		n.Gender == o.Gender &&
		n.Decl.Equal(o.Decl) &&
		n.Meaning == o.Meaning
}

func (n *Noun) appendKey(buf []byte) []byte {
	buf = appendStrings(buf, n.Citation, n.Genitive, n.Stem, n.Meaning)
	buf = binary.AppendUvarint(buf, uint64(n.Gender))
	return appendDeclension(buf, n.Decl)
}

// Adjective is an adjectival lexicon entry, or an adjective derived from
// a verb stem or a comparison stem.
type Adjective struct {
	Degree Degree
	// Masculine, Feminine and Neuter are the citation forms returned for
	// the "@" template marker of each gender.
	Masculine string
	Feminine  string
	Neuter    string
	Stem      string
	// Suffix is appended to every template before expansion; empty when
	// the adjective has none.
	Suffix string
	// ComparativeStem and SuperlativeStem are set only on lexicon
	// entries that form degrees of comparison.
	ComparativeStem string
	SuperlativeStem string
	MascDecl        *Declension
	FemDecl         *Declension
	NeutDecl        *Declension
	Meaning         string
}

// POS implements Lemma.
func (a *Adjective) POS() PartOfSpeech { return POSAdjective }

// Gloss implements Lemma.
func (a *Adjective) Gloss() string { return a.Meaning }

// Citation returns the citation form of gender g.
func (a *Adjective) Citation(g Gender) string {
	switch g {
	case Masculine:
		return a.Masculine
	case Feminine:
		return a.Feminine
	default:
		return a.Neuter
	}
}

// Declension returns the declension table of gender g.
func (a *Adjective) Declension(g Gender) *Declension {
	switch g {
	case Masculine:
		return a.MascDecl
	case Feminine:
		return a.FemDecl
	default:
		return a.NeutDecl
	}
}

// Equal implements Lemma.
func (a *Adjective) Equal(other Lemma) bool {
	o, ok := other.(*Adjective)
	if !ok || a == nil || o == nil {
		return ok && a == o
	}
	if a == o {
		return true
	}
	return a.Degree == o.Degree &&
		a.Masculine == o.Masculine &&
		a.Feminine == o.Feminine &&
		a.Neuter == o.Neuter &&
		a.Stem == o.Stem &&
		a.Suffix == o.Suffix &&
		a.ComparativeStem == o.ComparativeStem &&
		a.SuperlativeStem == o.SuperlativeStem &&
		a.MascDecl.Equal(o.MascDecl) &&
		a.FemDecl.Equal(o.FemDecl) &&
		a.NeutDecl.Equal(o.NeutDecl) &&
		a.Meaning == o.Meaning
}

func (a *Adjective) appendKey(buf []byte) []byte {
	buf = binary.AppendUvarint(buf, uint64(a.Degree))
	buf = appendStrings(buf, a.Masculine, a.Feminine, a.Neuter, a.Stem, a.Suffix,
		a.ComparativeStem, a.SuperlativeStem, a.Meaning)
	buf = appendDeclension(buf, a.MascDecl)
	buf = appendDeclension(buf, a.FemDecl)
	return appendDeclension(buf, a.NeutDecl)
}

// Verb is a verbal lexicon entry. Any stem may be empty, meaning the
// verb has no forms built on it.
type Verb struct {
	// PresentStem and PerfectStem replace "!" in simple- and
	// perfect-aspect templates respectively.
	PresentStem string
	PerfectStem string
	// ExtraStem replaces "+".
	ExtraStem             string
	SupineStem            string
	GerundiveStem         string
	PresentParticipleStem string
	FutureParticipleStem  string
	ActiveSimple          *Conjugation
	ActivePerfect         *Conjugation
	PassiveSimple         *Conjugation
	Meaning               string
}

// POS implements Lemma.
func (v *Verb) POS() PartOfSpeech { return POSVerb }

// Gloss implements Lemma.
func (v *Verb) Gloss() string { return v.Meaning }

// table returns the conjugation table selected by sel.
func (v *Verb) table(sel tableSel) *Conjugation {
	switch sel {
	case activeSimple:
		return v.ActiveSimple
	case activePerfect:
		return v.ActivePerfect
	default:
		return v.PassiveSimple
	}
}

// Equal implements Lemma.
func (v *Verb) Equal(other Lemma) bool {
	o, ok := other.(*Verb)
	if !ok || v == nil || o == nil {
		return ok && v == o
	}
	if v == o {
		return true
	}
	return v.PresentStem == o.PresentStem &&
		v.PerfectStem == o.PerfectStem &&
		v.ExtraStem == o.ExtraStem &&
		v.SupineStem == o.SupineStem &&
		v.GerundiveStem == o.GerundiveStem &&
		v.PresentParticipleStem == o.PresentParticipleStem &&
		v.FutureParticipleStem == o.FutureParticipleStem &&
		v.ActiveSimple.Equal(o.ActiveSimple) &&
		v.ActivePerfect.Equal(o.ActivePerfect) &&
		v.PassiveSimple.Equal(o.PassiveSimple) &&
		v.Meaning == o.Meaning
}

func (v *Verb) appendKey(buf []byte) []byte {
	buf = appendStrings(buf, v.PresentStem, v.PerfectStem, v.ExtraStem, v.SupineStem,
		v.GerundiveStem, v.PresentParticipleStem, v.FutureParticipleStem, v.Meaning)
	buf = appendConjugation(buf, v.ActiveSimple)
	buf = appendConjugation(buf, v.ActivePerfect)
	return appendConjugation(buf, v.PassiveSimple)
}

// appendStrings writes each string length-prefixed so that field
// boundaries cannot be confused.
func appendStrings(buf []byte, ss ...string) []byte {
	for _, s := range ss {
		buf = binary.AppendUvarint(buf, uint64(len(s)))
		buf = append(buf, s...)
	}
	return buf
}

func appendDeclension(buf []byte, d *Declension) []byte {
	if d == nil {
		return append(buf, 0)
	}
	buf = append(buf, 1)
	buf = appendStrings(buf, d.Name)
	return appendStrings(buf, d.Slots[:]...)
}

func appendConjugation(buf []byte, c *Conjugation) []byte {
	if c == nil {
		return append(buf, 0)
	}
	buf = append(buf, 1)
	buf = appendStrings(buf, c.Name)
	return appendStrings(buf, c.Slots[:]...)
}
