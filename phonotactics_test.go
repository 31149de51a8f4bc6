package manchu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidStructureSingleVowel(t *testing.T) {
	assert.True(t, IsValidStructure("a", DefaultConverter))
	assert.False(t, IsValidStructure("b", DefaultConverter))
}

func TestIsValidStructureAdmissibleFinalConsonant(t *testing.T) {
	// "tumen" and "jalan" both end in "n", an admissible final.
	assert.True(t, IsValidStructure("tumen", DefaultConverter))
	assert.True(t, IsValidStructure("jalan", DefaultConverter))
}

func TestIsValidStructureRejectsConsonantCluster(t *testing.T) {
	// "rst" ends in two consecutive consonants ("s" then "t").
	assert.False(t, IsValidStructure("arst", DefaultConverter))
}

func TestIsValidStructureRejectsInadmissibleFinal(t *testing.T) {
	// "p" is a consonant but not in admissibleFinals.
	assert.False(t, IsValidStructure("ap", DefaultConverter))
}

func TestIsValidStructureConversionFailure(t *testing.T) {
	assert.False(t, IsValidStructure("q", DefaultConverter))
}

func TestIsValidStructureEmptyString(t *testing.T) {
	assert.False(t, IsValidStructure("", DefaultConverter))
}

func TestIsUnusualFinalConsonant(t *testing.T) {
	assert.True(t, IsUnusualFinalConsonant("tumen", DefaultConverter))
	assert.False(t, IsUnusualFinalConsonant("tuwa", DefaultConverter))
}
