package paradigma

import "strings"

// personEnding resolves a person-ending marker for one person. ok is
// false when the marker has no ending for that person; the form then
// does not exist.
type personEnding func(p Person, future bool) (string, bool)

func fixedEndings(endings [7]string) personEnding {
	return func(p Person, _ bool) (string, bool) {
		if p <= PersonNone || int(p) >= len(endings) || endings[p] == NoForm {
			return "", false
		}
		return endings[p], true
	}
}

// imperative endings differ between the present and future sets for the
// 2nd/3rd singular and, in the active, the 2nd plural.
func imperativeEndings(sg, sgFuture, pl, plFuture, thirdPl string) personEnding {
	return func(p Person, future bool) (string, bool) {
		switch p {
		case Second, Third:
			if future {
				return sgFuture, true
			}
			return sg, true
		case SecondPl:
			if future {
				return plFuture, true
			}
			return pl, true
		case ThirdPl:
			return thirdPl, true
		}
		return "", false
	}
}

// verbMarkers maps the five verbal person-ending markers to their
// ending sets. Endings are written in lexicon notation.
var verbMarkers = map[rune]personEnding{
	// regular active
	'@': fixedEndings([7]string{NoForm, NoForm, "s", "t", "mus", "tis", "nt"}),
	// perfect active
	'#': fixedEndings([7]string{NoForm, NoForm, "stI", "t", "mus", "stis", "runt"}),
	// passive
	'$': fixedEndings([7]string{NoForm, NoForm, "ris", "tur", "mur", "minI", "ntur"}),
	// active imperative
	'%': imperativeEndings("", "tO", "te", "tOte", "ntO"),
	// passive imperative
	'^': imperativeEndings("re", "tor", "minI", "minI", "ntor"),
}

// Decline returns the surface form of noun n for inflection i, or false
// when the declension has no such form.
func Decline(n *Noun, i Inflection) (string, bool) {
	raw, ok := declineNotation(n, i)
	if !ok {
		return "", false
	}
	return Render(raw), true
}

func declineNotation(n *Noun, i Inflection) (string, bool) {
	if n == nil {
		return "", false
	}
	return expandNominal(n.Decl.Template(i), n.Citation, n.Stem)
}

// DeclineAdjective returns the surface form of adjective a for
// inflection i in gender g, or false when there is none.
func DeclineAdjective(a *Adjective, i Inflection, g Gender) (string, bool) {
	raw, ok := declineAdjectiveNotation(a, i, g)
	if !ok {
		return "", false
	}
	return Render(raw), true
}

func declineAdjectiveNotation(a *Adjective, i Inflection, g Gender) (string, bool) {
	if a == nil {
		return "", false
	}
	template := a.Declension(g).Template(i)
	if a.Suffix != "" {
		template += a.Suffix
	}
	return expandNominal(template, a.Citation(g), a.Stem)
}

// expandNominal scans a declension template. An empty template, or one
// containing "*" anywhere, has no form. "@" yields the citation form and
// ignores the rest of the template, "$" inserts the stem, anything else
// is copied.
func expandNominal(template, citation, stem string) (string, bool) {
	if template == "" || strings.ContainsRune(template, '*') {
		return "", false
	}
	var b strings.Builder
	for _, c := range template {
		switch c {
		case '@':
			if citation == "" {
				return "", false
			}
			return citation, true
		case '$':
			if stem == "" {
				return "", false
			}
			b.WriteString(stem)
		default:
			b.WriteRune(c)
		}
	}
	return b.String(), true
}

// Conjugate returns the surface form of verb v for category c, or false
// when the verb has no such form.
func Conjugate(v *Verb, c ConjugationSchema) (string, bool) {
	raw, ok := conjugateNotation(v, c)
	if !ok {
		return "", false
	}
	return Render(raw), true
}

func conjugateNotation(v *Verb, c ConjugationSchema) (string, bool) {
	if v == nil || c < 0 || c >= NumSchemas {
		return "", false
	}
	row := schemas[c]
	template := v.table(row.table).Template(row.slot)
	if template == "" {
		return "", false
	}

	tenseStem := v.PresentStem
	if row.perfect() {
		tenseStem = v.PerfectStem
	}

	var b strings.Builder
	for _, ch := range template {
		switch ch {
		case '*':
			return "", false
		case '!':
			if tenseStem == "" {
				return "", false
			}
			b.WriteString(tenseStem)
		case '+':
			if v.ExtraStem == "" {
				return "", false
			}
			b.WriteString(v.ExtraStem)
		case '@', '#', '$', '%', '^':
			ending, ok := verbMarkers[ch](row.person, row.future)
			if !ok {
				return "", false
			}
			b.WriteString(ending)
		default:
			b.WriteRune(ch)
		}
	}
	return b.String(), true
}

// Expand returns the surface form produced by an index entry, or false
// when the entry's category has no form.
func Expand(e Entry) (string, bool) {
	switch l := e.Lemma.(type) {
	case *Noun:
		return Decline(l, e.Inflection)
	case *Adjective:
		return DeclineAdjective(l, e.Inflection, e.Gender)
	case *Verb:
		return Conjugate(l, e.Schema)
	default:
		return "", false
	}
}
