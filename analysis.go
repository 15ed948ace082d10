package paradigma

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// PartOfSpeech represents the grammatical category of a lemma.
type PartOfSpeech rune

const (
	POSNoun      PartOfSpeech = 'n'
	POSAdjective PartOfSpeech = 'a'
	POSVerb      PartOfSpeech = 'v'
)

// String returns the tag used in rendered results, e.g. "NOUN".
func (p PartOfSpeech) String() string {
	switch p {
	case POSNoun:
		return "NOUN"
	case POSAdjective:
		return "ADJ"
	case POSVerb:
		return "VERB"
	default:
		return "UNKNOWN"
	}
}

// Gender is the grammatical gender of a noun or of one adjective column.
type Gender int

const (
	Masculine Gender = iota
	Neuter
	Feminine
)

// Genders lists the adjective columns in registration order.
var Genders = [...]Gender{Masculine, Neuter, Feminine}

func (g Gender) String() string {
	switch g {
	case Masculine:
		return "masculine"
	case Feminine:
		return "feminine"
	case Neuter:
		return "neuter"
	default:
		return "unknown gender"
	}
}

// Tag returns the one-letter gender tag used in canonical forms.
func (g Gender) Tag() string {
	switch g {
	case Masculine:
		return "M"
	case Neuter:
		return "N"
	default:
		return "F"
	}
}

// Degree is the degree of comparison of an adjective.
type Degree int

const (
	Positive Degree = iota
	Comparative
	Superlative
)

func (d Degree) String() string {
	switch d {
	case Comparative:
		return "comparative"
	case Superlative:
		return "superlative"
	default:
		return "positive"
	}
}

// Inflection is a case/number combination of the nominal paradigm.
type Inflection int

const (
	NomSg Inflection = iota
	NomPl
	GenSg
	GenPl
	DatSg
	DatPl
	AccSg
	AccPl
	AblSg
	AblPl
	VocSg
	VocPl
	LocSg
	LocPl

	// NumInflections is the number of slots in a declension table.
	NumInflections = 14
)

var inflectionNames = [NumInflections]string{
	"nominative singular",
	"nominative plural",
	"genitive singular",
	"genitive plural",
	"dative singular",
	"dative plural",
	"accusative singular",
	"accusative plural",
	"ablative singular",
	"ablative plural",
	"vocative singular",
	"vocative plural",
	"locative singular",
	"locative plural",
}

var inflectionCodes = [NumInflections]string{
	"NOM_SG", "NOM_PL", "GEN_SG", "GEN_PL", "DAT_SG", "DAT_PL", "ACC_SG",
	"ACC_PL", "ABL_SG", "ABL_PL", "VOC_SG", "VOC_PL", "LOC_SG", "LOC_PL",
}

func (i Inflection) String() string {
	if i < 0 || i >= NumInflections {
		return "unknown inflection"
	}
	return inflectionNames[i]
}

// Code returns the short code of the inflection, e.g. "GEN_PL".
func (i Inflection) Code() string {
	if i < 0 || i >= NumInflections {
		return "UNKNOWN"
	}
	return inflectionCodes[i]
}

// Entry is one index record: a lemma together with the grammatical
// category that produced a surface form. Only the category fields that
// apply to the lemma's part of speech are meaningful: Inflection for
// nouns, Inflection and Gender for adjectives, Schema for verbs.
type Entry struct {
	Lemma      Lemma
	Inflection Inflection
	Gender     Gender
	Schema     ConjugationSchema
}

// POS returns the part of speech of the entry's lemma.
func (e Entry) POS() PartOfSpeech {
	if e.Lemma == nil {
		return 0
	}
	return e.Lemma.POS()
}

// Equal reports whether e and o name the same lemma and category.
func (e Entry) Equal(o Entry) bool {
	if e.Lemma == nil || o.Lemma == nil {
		return e.Lemma == nil && o.Lemma == nil
	}
	if e.POS() != o.POS() {
		return false
	}
	switch e.Lemma.(type) {
	case *Noun:
		if e.Inflection != o.Inflection {
			return false
		}
	case *Adjective:
		if e.Inflection != o.Inflection || e.Gender != o.Gender {
			return false
		}
	case *Verb:
		if e.Schema != o.Schema {
			return false
		}
	}
	return e.Lemma.Equal(o.Lemma)
}

// fingerprint hashes the structural identity of e. Equal entries always
// share a fingerprint.
func (e Entry) fingerprint() xxh3.Uint128 {
	buf := make([]byte, 0, 128)
	buf = append(buf, byte(e.POS()))
	switch e.Lemma.(type) {
	case *Noun:
		buf = binary.AppendUvarint(buf, uint64(e.Inflection))
	case *Adjective:
		buf = binary.AppendUvarint(buf, uint64(e.Inflection))
		buf = binary.AppendUvarint(buf, uint64(e.Gender))
	case *Verb:
		buf = binary.AppendUvarint(buf, uint64(e.Schema))
	}
	if e.Lemma != nil {
		buf = e.Lemma.appendKey(buf)
	}
	return xxh3.Hash128(buf)
}

// entrySet deduplicates entries structurally while preserving
// first-seen order.
type entrySet struct {
	buckets map[xxh3.Uint128][]int
	list    []Entry
}

func newEntrySet() *entrySet {
	return &entrySet{buckets: make(map[xxh3.Uint128][]int)}
}

// add appends e unless an equal entry is already present.
func (s *entrySet) add(e Entry) bool {
	fp := e.fingerprint()
	for _, i := range s.buckets[fp] {
		if s.list[i].Equal(e) {
			return false
		}
	}
	s.buckets[fp] = append(s.buckets[fp], len(s.list))
	s.list = append(s.list, e)
	return true
}

func (s *entrySet) entries() []Entry {
	return s.list
}
