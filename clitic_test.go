package manchu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSplitCliticNiyalmai exercises splitting the genitive/nominative
// clitic "i" off the stem "niyalma" ("person").
func TestSplitCliticNiyalmai(t *testing.T) {
	res := newFixtureResources()
	stemBase, words, err := splitClitic("niyalmai", res)
	require.NoError(t, err)
	assert.Equal(t, "niyalma", stemBase)
	require.Len(t, words, 2)

	assert.Equal(t, "i", words[0].Base)
	assert.Equal(t, Clitic, words[0].PartOfSpeech)
	assert.Equal(t, Genitive, words[0].Detail.Case)
	assert.Equal(t, -1, words[0].EmissionCost)

	assert.Equal(t, Nominative, words[1].Detail.Case)
}

func TestSplitCliticNoMatch(t *testing.T) {
	res := newFixtureResources()
	_, _, err := splitClitic("cooha", res)
	assert.ErrorIs(t, err, ErrNoCliticMatch)
}

func TestSplitCliticRejectsEmptyStemBase(t *testing.T) {
	res := newFixtureResources()
	// The token is exactly the clitic's own surface, so the stripped base
	// would be empty; must not match.
	_, _, err := splitClitic("i", res)
	assert.ErrorIs(t, err, ErrNoCliticMatch)
}

func TestSplitCliticEmptyInput(t *testing.T) {
	res := newFixtureResources()
	_, _, err := splitClitic("", res)
	assert.ErrorIs(t, err, ErrEmptyInput)
}
