// Package manchu implements morphological analysis for romanized Manchu:
// suffix segmentation, case-clitic detachment, and a Viterbi-style
// minimum-cost path over the resulting segmentation lattice.
package manchu

import "fmt"

// Conjugation is the inflectional category a verb suffix imposes.
type Conjugation int

const (
	PerfectiveFinite Conjugation = iota
	PerfectiveConverb
	PerfectiveParticiple
	PerfectiveProcessiveParticiple
	ImperfectiveFinite
	ImperfectiveConverb
	NegativePerfectiveFinite
	NegativePerfectiveConverb
	NegativeParticle
	ProspectiveFinite
	DesiderativeFinite
	OptativeFinite
	DurativeConverb
	ConditionalConverb
	ConcessiveConverb
	TerminativeConverb
	PrefactoryConverb
	ApprehensiveConverb
	SimultaneousConverb
	AlternativeConverb
	DenominalAdjectiveConjugation
	PassiveCausativeVerbal
	Plural
)

// SuffixRole classifies what a suffix does to the word it attaches to.
type SuffixRole int

const (
	Functional SuffixRole = iota
	Derivational
	Deverbal
	DenominalAdjectiveRole
)

// PartOfSpeech is the grammatical category a suffix demands on its left,
// or that a Word carries.
type PartOfSpeech int

const (
	Noun PartOfSpeech = iota
	Verb
	Clitic
	Adverb
	Unknown
)

// Case is the closed set of Manchu case-clitic meanings.
type Case int

const (
	Nominative Case = iota
	Accusative
	Genitive
	DativeLocative
	Instrumental
	Vocative
)

// DetailKind distinguishes the variant held by a Detail.
type DetailKind int

const (
	DetailNone DetailKind = iota
	DetailConjugation
	DetailCase
	DetailOther
)

// Detail is a tagged variant over {Conjugation, Case, Other(tag)}; it is
// the join point between the closed Conjugation/Case enums and the
// open-world function-word tags.
type Detail struct {
	Kind        DetailKind
	Conjugation Conjugation
	Case        Case
	Other       string
}

// ConjugationDetail builds a Detail wrapping a Conjugation.
func ConjugationDetail(c Conjugation) Detail {
	return Detail{Kind: DetailConjugation, Conjugation: c}
}

// CaseDetail builds a Detail wrapping a Case.
func CaseDetail(c Case) Detail {
	return Detail{Kind: DetailCase, Case: c}
}

// OtherDetail builds a Detail wrapping a free-form tag.
func OtherDetail(tag string) Detail {
	return Detail{Kind: DetailOther, Other: tag}
}

// categoryName renders the Detail (or, absent one, pos) as the snake_case
// string used to index the EdgeCostMap.
func categoryName(d *Detail, pos PartOfSpeech) string {
	if d != nil {
		switch d.Kind {
		case DetailConjugation:
			return d.Conjugation.String()
		case DetailCase:
			return d.Case.String()
		case DetailOther:
			return d.Other
		}
	}
	return pos.String()
}

// Suffix is an immutable record of a Manchu bound morpheme.
type Suffix struct {
	Surface     string
	Conjugation Conjugation
	Role        SuffixRole
	AttachesTo  PartOfSpeech
}

// FunctionWord is a dictionary entry for a free function word or a clitic.
type FunctionWord struct {
	Surface      string
	PartOfSpeech PartOfSpeech
	Details      []string
}

// Word is a single morpheme-decomposition record. Invariant: Base + the
// suffixes' surfaces, concatenated right-to-left outermost first, equals
// the original token substring this Word covers.
type Word struct {
	Base         string
	Suffixes     []Suffix
	PartOfSpeech PartOfSpeech
	Detail       *Detail
	EmissionCost int
}

// newSegmentedWord builds a Word produced by peeling suffixes off a stem:
// emission cost is -5 per peeled suffix. detail is copied so callers may
// safely reuse one local variable across a peel loop.
func newSegmentedWord(base string, suffixes []Suffix, pos PartOfSpeech, detail Detail) Word {
	d := detail
	return Word{
		Base:         base,
		Suffixes:     suffixes,
		PartOfSpeech: pos,
		Detail:       &d,
		EmissionCost: -5 * len(suffixes),
	}
}

// newTrivialWord builds one of the two always-present seed candidates:
// the bare token as Noun or Adverb, emission cost 0.
func newTrivialWord(token string, pos PartOfSpeech) Word {
	return Word{Base: token, PartOfSpeech: pos, EmissionCost: 0}
}

// newSatelliteWord builds a clitic or function-word candidate: emission
// cost is fixed at -1.
func newSatelliteWord(base string, pos PartOfSpeech, detail Detail) Word {
	return Word{Base: base, PartOfSpeech: pos, Detail: &detail, EmissionCost: -1}
}

// Surface reconstructs the original substring this Word covers: the base
// followed by its suffixes' surfaces in right-attachment order.
func (w Word) Surface() string {
	s := w.Base
	for i := len(w.Suffixes) - 1; i >= 0; i-- {
		s += w.Suffixes[i].Surface
	}
	return s
}

func (p PartOfSpeech) String() string {
	switch p {
	case Noun:
		return "noun"
	case Verb:
		return "verb"
	case Clitic:
		return "clitic"
	case Adverb:
		return "adverb"
	default:
		return "unknown"
	}
}

func (r SuffixRole) String() string {
	switch r {
	case Functional:
		return "functional"
	case Derivational:
		return "derivational"
	case Deverbal:
		return "deverbal"
	case DenominalAdjectiveRole:
		return "denominal_adjective"
	default:
		return fmt.Sprintf("suffix_role(%d)", int(r))
	}
}
