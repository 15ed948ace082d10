package paradigma

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// graphemeReplacer renders lexicon notation, where an upper-case vowel
// marks a long vowel, into the disambiguated alphabet. Every other
// character, the "~" placeholder included, is copied unchanged.
var graphemeReplacer = strings.NewReplacer(
	"A", "\u0101", // ā
	"E", "\u0113", // ē
	"I", "\u012b", // ī
	"O", "\u014d", // ō
	"U", "\u016b", // ū
	"Y", "\u0233", // ȳ
)

// Render converts a series written in lexicon notation into the
// disambiguated alphabet used by surface forms: "puellA" → "puellā".
func Render(series string) string {
	return graphemeReplacer.Replace(series)
}

// atoneReplacer removes vowel-length marks.
var atoneReplacer = strings.NewReplacer(
	"\u0101", "a", // ā → a
	"\u0113", "e", // ē → e
	"\u012b", "i", // ī → i
	"\u014d", "o", // ō → o
	"\u016b", "u", // ū → u
	"\u0233", "y", // ȳ → y
	"\u0100", "A", // Ā → A
	"\u0112", "E", // Ē → E
	"\u012a", "I", // Ī → I
	"\u014c", "O", // Ō → O
	"\u016a", "U", // Ū → U
	"\u0232", "Y", // Ȳ → Y
)

// Atone strips all vowel-length marks from s.
func Atone(s string) string {
	return atoneReplacer.Replace(s)
}

// deramiseReplacer folds the consonantal letters j and v into the
// vowels i and u.
var deramiseReplacer = strings.NewReplacer(
	"j", "i",
	"J", "I",
	"v", "u",
	"V", "U",
)

// Deramise converts j→i and v→u.
func Deramise(s string) string {
	return deramiseReplacer.Replace(s)
}

// Plain reduces a surface form to the spelling a user would type
// without diacritics: "amāvī" → "amaui". Every surface form is among the
// Candidates of its Plain reduction.
func Plain(s string) string {
	return Atone(Deramise(s))
}

// NormalizeQuery prepares raw user input for ambiguity expansion: it
// trims surrounding space, composes combining marks (so that "a" followed
// by U+0304 becomes "ā") and lower-cases the result.
func NormalizeQuery(raw string) string {
	return foldCase(norm.NFC.String(strings.TrimSpace(raw)))
}

// foldCase lower-cases s. Queries and index keys are folded alike, so
// "Roma" reaches the form Rōma.
func foldCase(s string) string {
	// a Caser keeps state, so each call gets its own
	return cases.Lower(language.Und).String(s)
}
