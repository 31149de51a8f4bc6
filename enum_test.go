package manchu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConjugationStringRoundTrip(t *testing.T) {
	for c := PerfectiveFinite; c <= Plural; c++ {
		name := c.String()
		assert.NotEmpty(t, name)
		got, err := ParseConjugation(name)
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestParseConjugationUnknown(t *testing.T) {
	_, err := ParseConjugation("not_a_conjugation")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrResourceParse)
}

func TestCaseStringRoundTrip(t *testing.T) {
	for c := Nominative; c <= Vocative; c++ {
		name := c.String()
		assert.NotEmpty(t, name)
		got, err := ParseCase(name)
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestParseCaseUnknown(t *testing.T) {
	_, err := ParseCase("ablative")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrResourceParse)
}

func TestParsePartOfSpeech(t *testing.T) {
	got, err := ParsePartOfSpeech("clitic")
	require.NoError(t, err)
	assert.Equal(t, Clitic, got)

	_, err = ParsePartOfSpeech("gerund")
	assert.Error(t, err)
}

func TestParseSuffixRole(t *testing.T) {
	got, err := ParseSuffixRole("denominal_adjective")
	require.NoError(t, err)
	assert.Equal(t, DenominalAdjectiveRole, got)

	_, err = ParseSuffixRole("bogus")
	assert.Error(t, err)
}
