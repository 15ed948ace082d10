package paradigma

import "fmt"

// Person is the grammatical person and number selected by a verbal
// category. PersonNone is used by infinitives.
type Person int

const (
	PersonNone Person = iota
	First
	Second
	Third
	FirstPl
	SecondPl
	ThirdPl
)

var personNames = [...]string{"", "1st singular", "2nd singular", "3rd singular", "1st plural", "2nd plural", "3rd plural"}

func (p Person) String() string {
	if p < 0 || int(p) >= len(personNames) {
		return "unknown person"
	}
	return personNames[p]
}

// ConjugationSchema identifies one mood/voice/tense/person combination
// of the verbal paradigm.
type ConjugationSchema int

const (
	InfActPre ConjugationSchema = iota
	InfActPrf
	InfPasPre

	ImpActPre2Sg
	ImpActPre2Pl
	ImpActFut2Sg
	ImpActFut3Sg
	ImpActFut2Pl
	ImpActFut3Pl

	ImpPasPre2Sg
	ImpPasPre2Pl
	ImpPasFut2Sg
	ImpPasFut3Sg
	ImpPasFut3Pl

	IndActSimPre1Sg
	IndActSimPre2Sg
	IndActSimPre3Sg
	IndActSimPre1Pl
	IndActSimPre2Pl
	IndActSimPre3Pl

	IndActSimImp1Sg
	IndActSimImp2Sg
	IndActSimImp3Sg
	IndActSimImp1Pl
	IndActSimImp2Pl
	IndActSimImp3Pl

	IndActSimFut1Sg
	IndActSimFut2Sg
	IndActSimFut3Sg
	IndActSimFut1Pl
	IndActSimFut2Pl
	IndActSimFut3Pl

	IndActPrfPre1Sg
	IndActPrfPre2Sg
	IndActPrfPre3Sg
	IndActPrfPre1Pl
	IndActPrfPre2Pl
	IndActPrfPre3Pl

	IndActPrfImp1Sg
	IndActPrfImp2Sg
	IndActPrfImp3Sg
	IndActPrfImp1Pl
	IndActPrfImp2Pl
	IndActPrfImp3Pl

	IndActPrfFut1Sg
	IndActPrfFut2Sg
	IndActPrfFut3Sg
	IndActPrfFut1Pl
	IndActPrfFut2Pl
	IndActPrfFut3Pl

	IndPasSimPre1Sg
	IndPasSimPre2Sg
	IndPasSimPre3Sg
	IndPasSimPre1Pl
	IndPasSimPre2Pl
	IndPasSimPre3Pl

	IndPasSimImp1Sg
	IndPasSimImp2Sg
	IndPasSimImp3Sg
	IndPasSimImp1Pl
	IndPasSimImp2Pl
	IndPasSimImp3Pl

	IndPasSimFut1Sg
	IndPasSimFut2Sg
	IndPasSimFut3Sg
	IndPasSimFut1Pl
	IndPasSimFut2Pl
	IndPasSimFut3Pl

	SubActSimPre1Sg
	SubActSimPre2Sg
	SubActSimPre3Sg
	SubActSimPre1Pl
	SubActSimPre2Pl
	SubActSimPre3Pl

	SubActSimImp1Sg
	SubActSimImp2Sg
	SubActSimImp3Sg
	SubActSimImp1Pl
	SubActSimImp2Pl
	SubActSimImp3Pl

	SubActPrfPre1Sg
	SubActPrfPre2Sg
	SubActPrfPre3Sg
	SubActPrfPre1Pl
	SubActPrfPre2Pl
	SubActPrfPre3Pl

	SubActPrfImp1Sg
	SubActPrfImp2Sg
	SubActPrfImp3Sg
	SubActPrfImp1Pl
	SubActPrfImp2Pl
	SubActPrfImp3Pl

	SubPasSimPre1Sg
	SubPasSimPre2Sg
	SubPasSimPre3Sg
	SubPasSimPre1Pl
	SubPasSimPre2Pl
	SubPasSimPre3Pl

	SubPasSimImp1Sg
	SubPasSimImp2Sg
	SubPasSimImp3Sg
	SubPasSimImp1Pl
	SubPasSimImp2Pl
	SubPasSimImp3Pl

	// NumSchemas is the number of verbal categories.
	NumSchemas
)

// tableSel picks one of a verb's three conjugation tables.
type tableSel int

const (
	activeSimple tableSel = iota
	activePerfect
	passiveSimple
)

// schemaRow describes where a verbal category takes its template from
// and how the person-ending markers inside it resolve.
type schemaRow struct {
	code   string
	desc   string
	table  tableSel
	slot   int
	person Person
	future bool
}

// perfect reports whether the row's template takes the perfect stem.
func (r schemaRow) perfect() bool {
	return r.table == activePerfect
}

var sixPersons = [6]Person{First, Second, Third, FirstPl, SecondPl, ThirdPl}
var personCodes = [6]string{"1SG", "2SG", "3SG", "1PL", "2PL", "3PL"}

// personBlock expands one six-person section of a conjugation table.
func personBlock(code, desc string, table tableSel, slot int) []schemaRow {
	rows := make([]schemaRow, 0, 6)
	for i, p := range sixPersons {
		rows = append(rows, schemaRow{
			code:   code + "_" + personCodes[i],
			desc:   desc + ", " + p.String(),
			table:  table,
			slot:   slot + i,
			person: p,
		})
	}
	return rows
}

func concatRows(blocks ...[]schemaRow) []schemaRow {
	var out []schemaRow
	for _, b := range blocks {
		out = append(out, b...)
	}
	return out
}

// schemas maps every ConjugationSchema, by index, to its table slot.
// Imperatives share slots: the first imperative slot holds the present
// singular, the second the present plural and the future 2nd/3rd
// singular and 2nd plural, the third the future 3rd plural.
var schemas = concatRows(
	[]schemaRow{
		{code: "INF_ACT_PRE", desc: "present active infinitive", table: activeSimple, slot: slotInfinitive},
		{code: "INF_ACT_PRF", desc: "perfect active infinitive", table: activePerfect, slot: slotInfinitive},
		{code: "INF_PAS_PRE", desc: "present passive infinitive", table: passiveSimple, slot: slotInfinitive},

		{code: "IMP_ACT_PRE_2SG", desc: "present active imperative, 2nd singular", table: activeSimple, slot: slotImperative, person: Second},
		{code: "IMP_ACT_PRE_2PL", desc: "present active imperative, 2nd plural", table: activeSimple, slot: slotImperative + 1, person: SecondPl},
		{code: "IMP_ACT_FUT_2SG", desc: "future active imperative, 2nd singular", table: activeSimple, slot: slotImperative + 1, person: Second, future: true},
		{code: "IMP_ACT_FUT_3SG", desc: "future active imperative, 3rd singular", table: activeSimple, slot: slotImperative + 1, person: Third, future: true},
		{code: "IMP_ACT_FUT_2PL", desc: "future active imperative, 2nd plural", table: activeSimple, slot: slotImperative + 1, person: SecondPl, future: true},
		{code: "IMP_ACT_FUT_3PL", desc: "future active imperative, 3rd plural", table: activeSimple, slot: slotImperative + 2, person: ThirdPl, future: true},

		{code: "IMP_PAS_PRE_2SG", desc: "present passive imperative, 2nd singular", table: passiveSimple, slot: slotImperative, person: Second},
		{code: "IMP_PAS_PRE_2PL", desc: "present passive imperative, 2nd plural", table: passiveSimple, slot: slotImperative + 1, person: SecondPl},
		{code: "IMP_PAS_FUT_2SG", desc: "future passive imperative, 2nd singular", table: passiveSimple, slot: slotImperative + 1, person: Second, future: true},
		{code: "IMP_PAS_FUT_3SG", desc: "future passive imperative, 3rd singular", table: passiveSimple, slot: slotImperative + 1, person: Third, future: true},
		{code: "IMP_PAS_FUT_3PL", desc: "future passive imperative, 3rd plural", table: passiveSimple, slot: slotImperative + 2, person: ThirdPl, future: true},
	},

	personBlock("IND_ACT_SIM_PRE", "present active indicative", activeSimple, slotIndPresent),
	personBlock("IND_ACT_SIM_IMP", "imperfect active indicative", activeSimple, slotIndImperfect),
	personBlock("IND_ACT_SIM_FUT", "future active indicative", activeSimple, slotIndFuture),

	personBlock("IND_ACT_PRF_PRE", "perfect active indicative", activePerfect, slotIndPresent),
	personBlock("IND_ACT_PRF_IMP", "pluperfect active indicative", activePerfect, slotIndImperfect),
	personBlock("IND_ACT_PRF_FUT", "future perfect active indicative", activePerfect, slotIndFuture),

	personBlock("IND_PAS_SIM_PRE", "present passive indicative", passiveSimple, slotIndPresent),
	personBlock("IND_PAS_SIM_IMP", "imperfect passive indicative", passiveSimple, slotIndImperfect),
	personBlock("IND_PAS_SIM_FUT", "future passive indicative", passiveSimple, slotIndFuture),

	personBlock("SUB_ACT_SIM_PRE", "present active subjunctive", activeSimple, slotSubPresent),
	personBlock("SUB_ACT_SIM_IMP", "imperfect active subjunctive", activeSimple, slotSubImperfect),

	personBlock("SUB_ACT_PRF_PRE", "perfect active subjunctive", activePerfect, slotSubPresent),
	personBlock("SUB_ACT_PRF_IMP", "pluperfect active subjunctive", activePerfect, slotSubImperfect),

	personBlock("SUB_PAS_SIM_PRE", "present passive subjunctive", passiveSimple, slotSubPresent),
	personBlock("SUB_PAS_SIM_IMP", "imperfect passive subjunctive", passiveSimple, slotSubImperfect),
)

func init() {
	if len(schemas) != int(NumSchemas) {
		panic(fmt.Sprintf("paradigma: %d schema rows for %d conjugation schemas", len(schemas), NumSchemas))
	}
}

// Code returns the category's short code, e.g. "IND_ACT_SIM_PRE_1SG".
func (c ConjugationSchema) Code() string {
	if c < 0 || c >= NumSchemas {
		return "UNKNOWN"
	}
	return schemas[c].code
}

// String returns an English description such as
// "present active indicative, 1st singular".
func (c ConjugationSchema) String() string {
	if c < 0 || c >= NumSchemas {
		return "unknown conjugation schema"
	}
	return schemas[c].desc
}

// Person returns the grammatical person the category inflects for.
func (c ConjugationSchema) Person() Person {
	if c < 0 || c >= NumSchemas {
		return PersonNone
	}
	return schemas[c].person
}

// Perfect reports whether the category is built on the perfect stem.
func (c ConjugationSchema) Perfect() bool {
	if c < 0 || c >= NumSchemas {
		return false
	}
	return schemas[c].perfect()
}

// ParseSchemaCode resolves a code such as "INF_ACT_PRE" to its schema.
func ParseSchemaCode(code string) (ConjugationSchema, bool) {
	for i, r := range schemas {
		if r.code == code {
			return ConjugationSchema(i), true
		}
	}
	return 0, false
}
