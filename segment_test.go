package manchu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEnumerateSegmentationsTuwabumbi walks the full peel chain for
// "tuwabumbi" ("to cause to see"): trivial seeds, a single peel of
// imperfective "mbi", then a further peel of causative "bu".
func TestEnumerateSegmentationsTuwabumbi(t *testing.T) {
	res := newFixtureResources()
	words, err := enumerateSegmentations("tuwabumbi", res)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(words), 4)

	assert.Equal(t, "tuwabumbi", words[0].Base)
	assert.Equal(t, Noun, words[0].PartOfSpeech)
	assert.Equal(t, 0, words[0].EmissionCost)

	assert.Equal(t, "tuwabumbi", words[1].Base)
	assert.Equal(t, Adverb, words[1].PartOfSpeech)
	assert.Equal(t, 0, words[1].EmissionCost)

	onePeel := words[2]
	assert.Equal(t, "tuwabu", onePeel.Base)
	require.Len(t, onePeel.Suffixes, 1)
	assert.Equal(t, "mbi", onePeel.Suffixes[0].Surface)
	assert.Equal(t, -5, onePeel.EmissionCost)

	twoPeel := words[3]
	assert.Equal(t, "tuwa", twoPeel.Base)
	require.Len(t, twoPeel.Suffixes, 2)
	assert.Equal(t, "mbi", twoPeel.Suffixes[0].Surface)
	assert.Equal(t, "bu", twoPeel.Suffixes[1].Surface)
	assert.Equal(t, -10, twoPeel.EmissionCost)
	assert.Equal(t, "tuwabumbi", twoPeel.Surface())
}

// TestEnumerateSegmentationsOutermostPOSFixed verifies that partOfSpeech
// and detail stay pinned to the first (outermost) peeled suffix across
// every subsequent peel in the chain.
func TestEnumerateSegmentationsOutermostPOSFixed(t *testing.T) {
	res := newFixtureResources()
	words, err := enumerateSegmentations("tuwabumbi", res)
	require.NoError(t, err)
	onePeel, twoPeel := words[2], words[3]
	assert.Equal(t, onePeel.PartOfSpeech, twoPeel.PartOfSpeech)
	assert.Equal(t, onePeel.Detail.Conjugation, twoPeel.Detail.Conjugation)
	assert.Equal(t, ImperfectiveFinite, twoPeel.Detail.Conjugation)
}

func TestEnumerateSegmentationsNoSuffixMatch(t *testing.T) {
	res := newFixtureResources()
	words, err := enumerateSegmentations("waki", res)
	require.NoError(t, err)
	assert.Len(t, words, 2) // only the two trivial seeds
}

func TestEnumerateSegmentationsEmptyInput(t *testing.T) {
	res := newFixtureResources()
	_, err := enumerateSegmentations("", res)
	assert.ErrorIs(t, err, ErrEmptyInput)
}
