package manchu

import "fmt"

// conjugationNames gives the snake_case display form for each Conjugation,
// mirroring original_source/src/word.rs's
// #[strum(serialize_all = "snake_case")] on the Rust enum. Go has no
// derive macro, so the table is hand-written.
var conjugationNames = [...]string{
	PerfectiveFinite:               "perfective_finite",
	PerfectiveConverb:              "perfective_converb",
	PerfectiveParticiple:           "perfective_participle",
	PerfectiveProcessiveParticiple: "perfective_processive_participle",
	ImperfectiveFinite:             "imperfective_finite",
	ImperfectiveConverb:            "imperfective_converb",
	NegativePerfectiveFinite:       "negative_perfective_finite",
	NegativePerfectiveConverb:      "negative_perfective_converb",
	NegativeParticle:               "negative_particle",
	ProspectiveFinite:              "prospective_finite",
	DesiderativeFinite:             "desiderative_finite",
	OptativeFinite:                 "optative_finite",
	DurativeConverb:                "durative_converb",
	ConditionalConverb:             "conditional_converb",
	ConcessiveConverb:              "concessive_converb",
	TerminativeConverb:             "terminative_converb",
	PrefactoryConverb:              "prefactory_converb",
	ApprehensiveConverb:            "apprehensive_converb",
	SimultaneousConverb:            "simultaneous_converb",
	AlternativeConverb:             "alternative_converb",
	DenominalAdjectiveConjugation:  "denominal_adjective",
	PassiveCausativeVerbal:         "passive_causative_verbal",
	Plural:                         "plural",
}

var conjugationByName map[string]Conjugation

var caseNames = [...]string{
	Nominative:     "nominative",
	Accusative:     "accusative",
	Genitive:       "genitive",
	DativeLocative: "dative_locative",
	Instrumental:   "instrumental",
	Vocative:       "vocative",
}

var caseByName map[string]Case

func init() {
	conjugationByName = make(map[string]Conjugation, len(conjugationNames))
	for c, name := range conjugationNames {
		conjugationByName[name] = Conjugation(c)
	}
	caseByName = make(map[string]Case, len(caseNames))
	for c, name := range caseNames {
		caseByName[name] = Case(c)
	}
}

func (c Conjugation) String() string {
	if int(c) >= 0 && int(c) < len(conjugationNames) {
		return conjugationNames[c]
	}
	return fmt.Sprintf("conjugation(%d)", int(c))
}

// ParseConjugation parses a snake_case conjugation name, the form the
// suffix table's "form" column decodes from.
func ParseConjugation(s string) (Conjugation, error) {
	c, ok := conjugationByName[s]
	if !ok {
		return 0, fmt.Errorf("%w: conjugation %q", ErrResourceParse, s)
	}
	return c, nil
}

func (c Case) String() string {
	if int(c) >= 0 && int(c) < len(caseNames) {
		return caseNames[c]
	}
	return fmt.Sprintf("case(%d)", int(c))
}

// ParseCase parses a snake_case case name.
func ParseCase(s string) (Case, error) {
	c, ok := caseByName[s]
	if !ok {
		return 0, fmt.Errorf("%w: case %q", ErrResourceParse, s)
	}
	return c, nil
}

// ParsePartOfSpeech parses a snake_case part-of-speech name, the form the
// suffix table's "left_pos" column decodes from.
func ParsePartOfSpeech(s string) (PartOfSpeech, error) {
	switch s {
	case "noun":
		return Noun, nil
	case "verb":
		return Verb, nil
	case "clitic":
		return Clitic, nil
	case "adverb":
		return Adverb, nil
	case "unknown":
		return Unknown, nil
	default:
		return 0, fmt.Errorf("%w: part of speech %q", ErrResourceParse, s)
	}
}

// ParseSuffixRole parses a snake_case role name.
func ParseSuffixRole(s string) (SuffixRole, error) {
	switch s {
	case "functional":
		return Functional, nil
	case "derivational":
		return Derivational, nil
	case "deverbal":
		return Deverbal, nil
	case "denominal_adjective":
		return DenominalAdjectiveRole, nil
	default:
		return 0, fmt.Errorf("%w: suffix role %q", ErrResourceParse, s)
	}
}
