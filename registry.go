package paradigma

import (
	"fmt"

	"go.uber.org/zap"
)

// DerivationTables names the declension tables given to adjectives
// synthesized from verb stems and comparison stems.
type DerivationTables struct {
	// first/second declension: participles in -us, gerundives,
	// superlatives
	Masculine string `yaml:"masculine"`
	Feminine  string `yaml:"feminine"`
	Neuter    string `yaml:"neuter"`
	// third declension: comparatives
	Comparative       string `yaml:"comparative"`
	ComparativeNeuter string `yaml:"comparative_neuter"`
	// third declension i-stems: present participles
	Participle       string `yaml:"participle"`
	ParticipleNeuter string `yaml:"participle_neuter"`
}

// DefaultDerivationTables returns the table names used by the bundled
// lexicon.
func DefaultDerivationTables() DerivationTables {
	return DerivationTables{
		Masculine:         "L2M",
		Feminine:          "L1",
		Neuter:            "L2N",
		Comparative:       "L3",
		ComparativeNeuter: "L3N",
		Participle:        "L3I",
		ParticipleNeuter:  "L3NIA",
	}
}

// withDefaults fills every empty name from DefaultDerivationTables.
func (d DerivationTables) withDefaults() DerivationTables {
	def := DefaultDerivationTables()
	fill := func(s *string, v string) {
		if *s == "" {
			*s = v
		}
	}
	fill(&d.Masculine, def.Masculine)
	fill(&d.Feminine, def.Feminine)
	fill(&d.Neuter, def.Neuter)
	fill(&d.Comparative, def.Comparative)
	fill(&d.ComparativeNeuter, def.ComparativeNeuter)
	fill(&d.Participle, def.Participle)
	fill(&d.ParticipleNeuter, def.ParticipleNeuter)
	return d
}

// Stats summarizes an index.
type Stats struct {
	// Lemmas is the number of lexicon lemmas registered.
	Lemmas int `json:"lemmas"`
	// Derived is the number of adjectives synthesized from them.
	Derived int `json:"derived"`
	// Forms is the number of distinct surface forms indexed.
	Forms int `json:"forms"`
	// Entries is the number of (lemma, category) entries indexed.
	Entries int `json:"entries"`
}

// Registry expands lemmas into every surface form they have and inserts
// the resulting entries into a Trie. A Registry is used by a single
// goroutine while the index is built.
type Registry struct {
	tables  *RuleTables
	derive  DerivationTables
	trie    *Trie
	logger  *zap.Logger
	lemmas  int
	derived int
}

// NewRegistry returns a registry that fills trie. Derived adjectives
// take their declensions from tables under the names in derive; empty
// names fall back to DefaultDerivationTables. logger may be nil.
func NewRegistry(tables *RuleTables, trie *Trie, derive DerivationTables, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	if tables == nil {
		tables = NewRuleTables(nil)
	}
	return &Registry{
		tables: tables,
		derive: derive.withDefaults(),
		trie:   trie,
		logger: logger,
	}
}

// Register indexes every existing form of l and then the forms of the
// adjectives derived from it.
func (r *Registry) Register(l Lemma) error {
	if err := r.index(l); err != nil {
		return err
	}
	r.lemmas++

	derived, err := r.deriveFrom(l)
	if err != nil {
		return err
	}
	for _, d := range derived {
		if err := r.index(d); err != nil {
			return err
		}
		r.derived++
	}
	return nil
}

// index inserts one entry per category that has a form.
func (r *Registry) index(l Lemma) error {
	var isNil bool
	switch l := l.(type) {
	case *Noun:
		isNil = l == nil
	case *Adjective:
		isNil = l == nil
	case *Verb:
		isNil = l == nil
	default:
		return fmt.Errorf("register %T: %w", l, ErrMalformedEntry)
	}
	if isNil {
		return fmt.Errorf("register nil %T: %w", l, ErrMalformedEntry)
	}

	added := 0
	for _, f := range Paradigm(l) {
		if r.trie.Insert(f.Surface, f.Entry) {
			added++
		}
	}
	if added == 0 {
		r.logger.Debug("lemma has no forms", zap.String("lemma", CanonicalForm(l)))
	}
	return nil
}

// deriveFrom synthesizes the adjectives a lexicon lemma gives rise to.
// Derived adjectives never carry comparison stems, so they produce
// nothing further.
func (r *Registry) deriveFrom(l Lemma) ([]Lemma, error) {
	switch l := l.(type) {
	case *Verb:
		return r.deriveFromVerb(l)
	case *Adjective:
		return r.deriveFromAdjective(l)
	}
	return nil, nil
}

func (r *Registry) deriveFromVerb(v *Verb) ([]Lemma, error) {
	var out []Lemma
	canonical := CanonicalForm(v)

	if s := v.SupineStem; s != "" {
		a, err := r.firstSecond(Positive, s, "Perfect passive participle or supine of "+canonical)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if s := v.GerundiveStem; s != "" {
		a, err := r.firstSecond(Positive, s, "Future passive participle or gerundive of "+canonical)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if s := v.PresentParticipleStem; s != "" {
		part, err := r.participle(s, "Present active participle of "+canonical)
		if err != nil {
			return nil, err
		}
		sup, err := r.firstSecond(Superlative, s+"tissim", "Superlative of "+CanonicalForm(part))
		if err != nil {
			return nil, err
		}
		out = append(out, part, sup)
	}
	if s := v.FutureParticipleStem; s != "" {
		a, err := r.firstSecond(Positive, s, "Future active participle of "+canonical)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *Registry) deriveFromAdjective(a *Adjective) ([]Lemma, error) {
	var out []Lemma
	canonical := CanonicalForm(a)

	if c := a.ComparativeStem; c != "" {
		m, err := r.tables.Declension(r.derive.Comparative)
		if err != nil {
			return nil, fmt.Errorf("comparative of %s: %w", canonical, err)
		}
		n, err := r.tables.Declension(r.derive.ComparativeNeuter)
		if err != nil {
			return nil, fmt.Errorf("comparative of %s: %w", canonical, err)
		}
		out = append(out, &Adjective{
			Degree:    Comparative,
			Masculine: c + "or",
			Feminine:  c + "or",
			Neuter:    c + "us",
			Stem:      c + "Or",
			MascDecl:  m,
			FemDecl:   m,
			NeutDecl:  n,
			Meaning:   "Comparative of " + canonical,
		})
	}
	if s := a.SuperlativeStem; s != "" {
		sup, err := r.firstSecond(Superlative, s, "Superlative of "+canonical)
		if err != nil {
			return nil, err
		}
		out = append(out, sup)
	}
	return out, nil
}

// firstSecond builds an adjective in -us, -a, -um on stem.
func (r *Registry) firstSecond(deg Degree, stem, gloss string) (*Adjective, error) {
	m, err := r.tables.Declension(r.derive.Masculine)
	if err != nil {
		return nil, fmt.Errorf("derive %sus: %w", stem, err)
	}
	f, err := r.tables.Declension(r.derive.Feminine)
	if err != nil {
		return nil, fmt.Errorf("derive %sa: %w", stem, err)
	}
	n, err := r.tables.Declension(r.derive.Neuter)
	if err != nil {
		return nil, fmt.Errorf("derive %sum: %w", stem, err)
	}
	return &Adjective{
		Degree:    deg,
		Masculine: stem + "us",
		Feminine:  stem + "a",
		Neuter:    stem + "um",
		Stem:      stem,
		MascDecl:  m,
		FemDecl:   f,
		NeutDecl:  n,
		Meaning:   gloss,
	}, nil
}

// participle builds a present active participle: nominative in -s for
// all genders, oblique stem in -t.
func (r *Registry) participle(stem, gloss string) (*Adjective, error) {
	mf, err := r.tables.Declension(r.derive.Participle)
	if err != nil {
		return nil, fmt.Errorf("derive %ss: %w", stem, err)
	}
	n, err := r.tables.Declension(r.derive.ParticipleNeuter)
	if err != nil {
		return nil, fmt.Errorf("derive %ss: %w", stem, err)
	}
	return &Adjective{
		Degree:    Positive,
		Masculine: stem + "s",
		Feminine:  stem + "s",
		Neuter:    stem + "s",
		Stem:      stem + "t",
		MascDecl:  mf,
		FemDecl:   mf,
		NeutDecl:  n,
		Meaning:   gloss,
	}, nil
}

// Trie returns the trie the registry fills.
func (r *Registry) Trie() *Trie { return r.trie }

// Stats reports the registry's counters.
func (r *Registry) Stats() Stats {
	return Stats{
		Lemmas:  r.lemmas,
		Derived: r.derived,
		Forms:   r.trie.Forms(),
		Entries: r.trie.Entries(),
	}
}
