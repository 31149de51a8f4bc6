package manchu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordSurfaceReconstructsToken(t *testing.T) {
	suffixes := []Suffix{
		{Surface: "mbi", Conjugation: ImperfectiveFinite, Role: Functional, AttachesTo: Verb},
		{Surface: "bu", Conjugation: PassiveCausativeVerbal, Role: Derivational, AttachesTo: Verb},
	}
	w := newSegmentedWord("tuwa", suffixes, Verb, ConjugationDetail(ImperfectiveFinite))
	assert.Equal(t, "tuwabumbi", w.Surface())
}

func TestWordSurfaceNoSuffixes(t *testing.T) {
	w := newTrivialWord("cooha", Noun)
	assert.Equal(t, "cooha", w.Surface())
}

func TestNewSegmentedWordEmissionCost(t *testing.T) {
	suffixes := []Suffix{
		{Surface: "mbi", Conjugation: ImperfectiveFinite, Role: Functional, AttachesTo: Verb},
		{Surface: "bu", Conjugation: PassiveCausativeVerbal, Role: Derivational, AttachesTo: Verb},
	}
	w := newSegmentedWord("tuwa", suffixes, Verb, ConjugationDetail(ImperfectiveFinite))
	assert.Equal(t, -10, w.EmissionCost)
}

func TestNewSegmentedWordCopiesDetail(t *testing.T) {
	// Two Words built from one reused local Detail variable must not alias
	// the same pointer.
	d := ConjugationDetail(PerfectiveFinite)
	w1 := newSegmentedWord("a", nil, Verb, d)
	w2 := newSegmentedWord("b", nil, Verb, d)
	assert.NotSame(t, w1.Detail, w2.Detail)
}

func TestNewTrivialWordEmissionCostZero(t *testing.T) {
	w := newTrivialWord("waki", Adverb)
	assert.Equal(t, 0, w.EmissionCost)
	assert.Nil(t, w.Detail)
}

func TestNewSatelliteWordEmissionCost(t *testing.T) {
	w := newSatelliteWord("i", Clitic, CaseDetail(Genitive))
	assert.Equal(t, -1, w.EmissionCost)
	assert.Equal(t, DetailCase, w.Detail.Kind)
}

func TestCategoryNamePrefersDetail(t *testing.T) {
	d := ConjugationDetail(PerfectiveConverb)
	assert.Equal(t, "perfective_converb", categoryName(&d, Verb))
}

func TestCategoryNameFallsBackToPartOfSpeech(t *testing.T) {
	assert.Equal(t, "noun", categoryName(nil, Noun))
}

func TestCategoryNameOtherDetail(t *testing.T) {
	d := OtherDetail("interrogative")
	assert.Equal(t, "interrogative", categoryName(&d, Unknown))
}
