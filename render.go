package paradigma

import "strings"

// missingPart stands in for a principal part the lemma does not have.
const missingPart = "-"

// CanonicalForm returns the dictionary citation of l:
//
//	noun       rēx, rēgis (M)
//	adjective  altus, alta, altum
//	verb       amō, amāre, amāvī, amātum
func CanonicalForm(l Lemma) string {
	switch l := l.(type) {
	case *Noun:
		gen := missingPart
		if l.Genitive != "" {
			gen = Render(l.Genitive)
		} else if g, ok := Decline(l, GenSg); ok {
			gen = g
		}
		return Render(l.Citation) + ", " + gen + " (" + l.Gender.Tag() + ")"
	case *Adjective:
		return Render(l.Masculine) + ", " + Render(l.Feminine) + ", " + Render(l.Neuter)
	case *Verb:
		parts := make([]string, 0, 4)
		for _, c := range [...]ConjugationSchema{IndActSimPre1Sg, InfActPre, IndActPrfPre1Sg} {
			form, ok := Conjugate(l, c)
			if !ok {
				form = missingPart
			}
			parts = append(parts, form)
		}
		supine := missingPart
		if l.SupineStem != "" {
			supine = Render(l.SupineStem + "um")
		}
		return strings.Join(append(parts, supine), ", ")
	}
	return ""
}

// RenderCanonical returns the canonical form of the entry's lemma.
func RenderCanonical(e Entry) string {
	return CanonicalForm(e.Lemma)
}

// RenderSurface returns the surface form the entry stands for, or ""
// when its category has no form.
func RenderSurface(e Entry) string {
	form, _ := Expand(e)
	return form
}

// Describe returns the English label of the entry's category, such as
// "genitive plural feminine" or "present active infinitive".
func Describe(e Entry) string {
	switch e.Lemma.(type) {
	case *Noun:
		return e.Inflection.String()
	case *Adjective:
		return e.Inflection.String() + " " + e.Gender.String()
	case *Verb:
		return e.Schema.String()
	}
	return ""
}

// Code returns the short code of the entry's category: "GEN_SG" for a
// noun, "GEN_SG_F" for an adjective, "IND_ACT_SIM_PRE_1SG" for a verb.
func (e Entry) Code() string {
	switch e.Lemma.(type) {
	case *Noun:
		return e.Inflection.Code()
	case *Adjective:
		return e.Inflection.Code() + "_" + e.Gender.Tag()
	case *Verb:
		return e.Schema.Code()
	}
	return ""
}

// Form is one cell of a paradigm.
type Form struct {
	Entry   Entry
	Surface string
}

// Paradigm lists every form l has, in category order: inflection then
// gender for adjectives, schema order for verbs.
func Paradigm(l Lemma) []Form {
	var out []Form
	add := func(e Entry) {
		if form, ok := Expand(e); ok {
			out = append(out, Form{Entry: e, Surface: form})
		}
	}
	switch l := l.(type) {
	case *Noun:
		for i := range Inflection(NumInflections) {
			add(Entry{Lemma: l, Inflection: i})
		}
	case *Adjective:
		for i := range Inflection(NumInflections) {
			for _, g := range Genders {
				add(Entry{Lemma: l, Inflection: i, Gender: g})
			}
		}
	case *Verb:
		for c := range NumSchemas {
			add(Entry{Lemma: l, Schema: c})
		}
	}
	return out
}
