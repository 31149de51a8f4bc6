package manchu

import "github.com/rs/zerolog"

// newFixtureResources builds an in-memory Resources covering the worked
// examples used throughout this package's tests ("tuwabumbi", "niyalmai",
// and the nine-token "cooha be waki seme tumen cooha be unggifi tosoho."
// sentence), grounded on original_source/src/lattice.rs's test fixtures.
func newFixtureResources() *Resources {
	return &Resources{
		log: zerolog.Nop(),
		Suffixes: []Suffix{
			{Surface: "mbi", Conjugation: ImperfectiveFinite, Role: Functional, AttachesTo: Verb},
			{Surface: "bu", Conjugation: PassiveCausativeVerbal, Role: Derivational, AttachesTo: Verb},
			{Surface: "ha", Conjugation: PerfectiveParticiple, Role: Functional, AttachesTo: Noun},
			{Surface: "fi", Conjugation: PerfectiveConverb, Role: Functional, AttachesTo: Noun},
			{Surface: "ho", Conjugation: PerfectiveParticiple, Role: Functional, AttachesTo: Noun},
			{Surface: "so", Conjugation: Plural, Role: Functional, AttachesTo: Noun},
		},
		FunctionWords: []FunctionWord{
			{Surface: "i", PartOfSpeech: Clitic, Details: []string{"genitive", "nominative"}},
			{Surface: "be", PartOfSpeech: Clitic, Details: []string{"accusative"}},
			{Surface: "seme", PartOfSpeech: Adverb, Details: []string{"quotative"}},
		},
		EdgeCosts: EdgeCostMap{},
		conv:      DefaultConverter,
	}
}
