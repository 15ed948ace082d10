package paradigma

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"go.uber.org/zap"
)

// Data layout read by FSSource and Loader:
//
//	decl/<name>   declension: name line, then 14 templates
//	conj/<name>   conjugation: name line, then 34 templates
//	nouns         one noun per line
//	adjs          one adjective per line
//	verbs         one verb per line
//
// Blank lines in tables are ignored. Lexicon files are tab-separated;
// runs of tabs count as one separator, "*" marks an absent field, and
// lines starting with "#" are comments.
const (
	declDir   = "decl"
	conjDir   = "conj"
	nounsFile = "nouns"
	adjsFile  = "adjs"
	verbsFile = "verbs"
)

// FSSource reads rule tables from decl/ and conj/ under FS.
type FSSource struct {
	FS fs.FS
}

// Declension implements TableSource.
func (s FSSource) Declension(name string) (*Declension, error) {
	f, err := s.open(declDir, name)
	if err != nil {
		return nil, fmt.Errorf("declension %q: %w", name, err)
	}
	defer f.Close()
	return ParseDeclension(name, f)
}

// Conjugation implements TableSource.
func (s FSSource) Conjugation(name string) (*Conjugation, error) {
	f, err := s.open(conjDir, name)
	if err != nil {
		return nil, fmt.Errorf("conjugation %q: %w", name, err)
	}
	defer f.Close()
	return ParseConjugation(name, f)
}

func (s FSSource) open(dir, name string) (fs.File, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return nil, ErrUnknownTable
	}
	f, err := s.FS.Open(path.Join(dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrUnknownTable
	}
	return f, err
}

// ParseDeclension reads a declension table called name from r.
func ParseDeclension(name string, r io.Reader) (*Declension, error) {
	slots, err := readTable(name, r, NumInflections)
	if err != nil {
		return nil, fmt.Errorf("declension %q: %w", name, err)
	}
	d := &Declension{Name: name}
	copy(d.Slots[:], slots)
	return d, nil
}

// ParseConjugation reads a conjugation table called name from r.
func ParseConjugation(name string, r io.Reader) (*Conjugation, error) {
	slots, err := readTable(name, r, ConjugationSlots)
	if err != nil {
		return nil, fmt.Errorf("conjugation %q: %w", name, err)
	}
	c := &Conjugation{Name: name}
	copy(c.Slots[:], slots)
	return c, nil
}

// readTable returns the want templates that follow the name line.
func readTable(name string, r io.Reader, want int) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty table: %w", ErrMalformedTable)
	}
	if lines[0] != name {
		return nil, fmt.Errorf("header names %q: %w", lines[0], ErrMalformedTable)
	}
	if got := len(lines) - 1; got != want {
		return nil, fmt.Errorf("%d templates, want %d: %w", got, want, ErrMalformedTable)
	}
	return lines[1:], nil
}

// Loader parses the lexicon files under FS into lemmas, resolving table
// names through Tables.
type Loader struct {
	FS     fs.FS
	Tables *RuleTables
	Logger *zap.Logger
}

// NewLoader returns a loader whose tables are read from fsys as well.
func NewLoader(fsys fs.FS, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		FS:     fsys,
		Tables: NewRuleTables(FSSource{FS: fsys}),
		Logger: logger,
	}
}

// Load reads nouns, then adjectives, then verbs. The noun file is
// required; a missing adjective or verb file is logged and skipped.
func (ld *Loader) Load() ([]Lemma, error) {
	if ld.Tables == nil {
		ld.Tables = NewRuleTables(FSSource{FS: ld.FS})
	}
	if ld.Logger == nil {
		ld.Logger = zap.NewNop()
	}

	var lemmas []Lemma
	files := []struct {
		name     string
		required bool
		parse    func([]string) (Lemma, error)
	}{
		{nounsFile, true, ld.parseNoun},
		{adjsFile, false, ld.parseAdjective},
		{verbsFile, false, ld.parseVerb},
	}
	for _, file := range files {
		got, err := ld.loadFile(file.name, file.parse)
		if errors.Is(err, fs.ErrNotExist) && !file.required {
			ld.Logger.Warn("lexicon file missing, skipped", zap.String("file", file.name))
			continue
		}
		if err != nil {
			return nil, err
		}
		ld.Logger.Debug("lexicon file loaded", zap.String("file", file.name), zap.Int("lemmas", len(got)))
		lemmas = append(lemmas, got...)
	}
	return lemmas, nil
}

func (ld *Loader) loadFile(name string, parse func([]string) (Lemma, error)) ([]Lemma, error) {
	f, err := ld.FS.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	var out []Lemma
	sc := bufio.NewScanner(f)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		l, err := parse(splitFields(line))
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, n, err)
		}
		out = append(out, l)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return out, nil
}

// splitFields splits a lexicon line on tabs; consecutive tabs count as
// one separator.
func splitFields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool { return r == '\t' })
}

// field maps the absent marker to "".
func field(s string) string {
	if s == NoForm {
		return ""
	}
	return s
}

func checkFields(kind string, fields []string, want int) error {
	if len(fields) != want {
		return fmt.Errorf("%s: %d fields, want %d: %w", kind, len(fields), want, ErrMalformedEntry)
	}
	return nil
}

func parseGender(s string) (Gender, error) {
	switch s {
	case "M":
		return Masculine, nil
	case "F":
		return Feminine, nil
	case "N":
		return Neuter, nil
	}
	return 0, fmt.Errorf("gender %q: %w", s, ErrMalformedEntry)
}

// citation, genitive, stem, gender, declension, meaning
func (ld *Loader) parseNoun(f []string) (Lemma, error) {
	if err := checkFields("noun", f, 6); err != nil {
		return nil, err
	}
	g, err := parseGender(f[3])
	if err != nil {
		return nil, err
	}
	d, err := ld.Tables.Declension(f[4])
	if err != nil {
		return nil, err
	}
	return &Noun{
		Citation: f[0],
		Genitive: field(f[1]),
		Stem:     field(f[2]),
		Gender:   g,
		Decl:     d,
		Meaning:  field(f[5]),
	}, nil
}

// masculine, feminine, neuter, stem, suffix, comparative stem,
// superlative stem, three declensions, meaning
func (ld *Loader) parseAdjective(f []string) (Lemma, error) {
	if err := checkFields("adjective", f, 11); err != nil {
		return nil, err
	}
	var decls [3]*Declension
	for i := range decls {
		d, err := ld.Tables.Declension(f[7+i])
		if err != nil {
			return nil, err
		}
		decls[i] = d
	}
	return &Adjective{
		Degree:          Positive,
		Masculine:       f[0],
		Feminine:        f[1],
		Neuter:          f[2],
		Stem:            field(f[3]),
		Suffix:          field(f[4]),
		ComparativeStem: field(f[5]),
		SuperlativeStem: field(f[6]),
		MascDecl:        decls[0],
		FemDecl:         decls[1],
		NeutDecl:        decls[2],
		Meaning:         field(f[10]),
	}, nil
}

// present, perfect, extra, supine, gerundive, present participle and
// future participle stems, three conjugations, meaning
func (ld *Loader) parseVerb(f []string) (Lemma, error) {
	if err := checkFields("verb", f, 11); err != nil {
		return nil, err
	}
	var conjs [3]*Conjugation
	for i := range conjs {
		c, err := ld.Tables.Conjugation(f[7+i])
		if err != nil {
			return nil, err
		}
		conjs[i] = c
	}
	return &Verb{
		PresentStem:           field(f[0]),
		PerfectStem:           field(f[1]),
		ExtraStem:             field(f[2]),
		SupineStem:            field(f[3]),
		GerundiveStem:         field(f[4]),
		PresentParticipleStem: field(f[5]),
		FutureParticipleStem:  field(f[6]),
		ActiveSimple:          conjs[0],
		ActivePerfect:         conjs[1],
		PassiveSimple:         conjs[2],
		Meaning:               field(f[10]),
	}, nil
}

// LoadIndex loads the lexicon under fsys and builds its index.
func LoadIndex(fsys fs.FS, opts ...Option) (*Index, error) {
	o := resolveOptions(opts)
	ld := NewLoader(fsys, o.logger)
	lemmas, err := ld.Load()
	if err != nil {
		return nil, err
	}
	return BuildIndex(lemmas, ld.Tables, opts...)
}
