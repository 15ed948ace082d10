package paradigma

import "fmt"

// NoForm is the template sentinel meaning "this form does not exist".
// It is also the marker for an absent field in lexicon files.
const NoForm = "*"

// Slot layout of a conjugation table.
const (
	slotInfinitive   = 0
	slotImperative   = 1
	slotIndPresent   = 4
	slotIndImperfect = 10
	slotIndFuture    = 16
	slotSubPresent   = 22
	slotSubImperfect = 28

	// ConjugationSlots is the number of templates in a conjugation table.
	ConjugationSlots = 34
)

// Declension is a named table of suffix templates, one per case and
// number. Slots are indexed by Inflection.
type Declension struct {
	Name  string
	Slots [NumInflections]string
}

// Template returns the suffix template for inflection i.
func (d *Declension) Template(i Inflection) string {
	if d == nil || i < 0 || i >= NumInflections {
		return NoForm
	}
	return d.Slots[i]
}

// Equal compares two declensions by value.
func (d *Declension) Equal(o *Declension) bool {
	if d == nil || o == nil {
		return d == o
	}
	return *d == *o
}

// Conjugation is a named table of suffix templates for one voice and
// aspect of a verb: the infinitive, three imperative templates and six
// person templates for each of indicative present, imperfect and future
// and subjunctive present and imperfect.
type Conjugation struct {
	Name  string
	Slots [ConjugationSlots]string
}

// Template returns the template stored at slot n.
func (c *Conjugation) Template(n int) string {
	if c == nil || n < 0 || n >= ConjugationSlots {
		return NoForm
	}
	return c.Slots[n]
}

// Equal compares two conjugations by value.
func (c *Conjugation) Equal(o *Conjugation) bool {
	if c == nil || o == nil {
		return c == o
	}
	return *c == *o
}

// emptyConjugation is shared by every verb whose lexicon entry names no
// table ("*") for one of its voices.
var emptyConjugation = func() *Conjugation {
	c := &Conjugation{Name: NoForm}
	for i := range c.Slots {
		c.Slots[i] = NoForm
	}
	return c
}()

// TableSource produces rule tables by name. It is consulted at most once
// per name by RuleTables.
type TableSource interface {
	Declension(name string) (*Declension, error)
	Conjugation(name string) (*Conjugation, error)
}

// RuleTables is a memoizing cache of declension and conjugation tables.
// Lemmas that reference the same name share the same table value.
// RuleTables is filled during index construction and is not safe for
// concurrent writers.
type RuleTables struct {
	src   TableSource
	decls map[string]*Declension
	conjs map[string]*Conjugation
}

// NewRuleTables returns a cache backed by src. src may be nil, in which
// case only tables added with AddDeclension and AddConjugation resolve.
func NewRuleTables(src TableSource) *RuleTables {
	return &RuleTables{
		src:   src,
		decls: make(map[string]*Declension),
		conjs: make(map[string]*Conjugation),
	}
}

// AddDeclension registers d under its name, replacing any cached value.
func (t *RuleTables) AddDeclension(d *Declension) {
	t.decls[d.Name] = d
}

// AddConjugation registers c under its name, replacing any cached value.
func (t *RuleTables) AddConjugation(c *Conjugation) {
	t.conjs[c.Name] = c
}

// Declension returns the declension table called name.
func (t *RuleTables) Declension(name string) (*Declension, error) {
	if d, ok := t.decls[name]; ok {
		return d, nil
	}
	if t.src == nil {
		return nil, fmt.Errorf("declension %q: %w", name, ErrUnknownTable)
	}
	d, err := t.src.Declension(name)
	if err != nil {
		return nil, err
	}
	t.decls[name] = d
	return d, nil
}

// Conjugation returns the conjugation table called name. The name "*"
// resolves to a table in which every slot is NoForm.
func (t *RuleTables) Conjugation(name string) (*Conjugation, error) {
	if name == NoForm || name == "" {
		return emptyConjugation, nil
	}
	if c, ok := t.conjs[name]; ok {
		return c, nil
	}
	if t.src == nil {
		return nil, fmt.Errorf("conjugation %q: %w", name, ErrUnknownTable)
	}
	c, err := t.src.Conjugation(name)
	if err != nil {
		return nil, err
	}
	t.conjs[name] = c
	return c, nil
}

// Len returns the number of cached declension and conjugation tables.
func (t *RuleTables) Len() (decls, conjs int) {
	return len(t.decls), len(t.conjs)
}
