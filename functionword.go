package manchu

// expandFunctionWord expands token, when it is itself a listed function
// word, into one candidate Word per sense. Grounded on
// original_source/src/function_word.rs's impl Into<Vec<Word>> for
// FunctionWord. Returns ok=false when token is not in the function-word
// table; nothing is emitted, and this is not an error, the lattice builder
// simply skips this candidate source.
func expandFunctionWord(token string, res *Resources) (words []Word, ok bool) {
	for _, fw := range res.FunctionWords {
		if fw.Surface != token {
			continue
		}

		if fw.PartOfSpeech == Clitic {
			out := make([]Word, 0, len(fw.Details))
			for _, caseName := range fw.Details {
				c, err := ParseCase(caseName)
				if err != nil {
					continue
				}
				out = append(out, newSatelliteWord(fw.Surface, Clitic, CaseDetail(c)))
			}
			return out, len(out) > 0
		}

		out := make([]Word, 0, len(fw.Details))
		for _, tag := range fw.Details {
			out = append(out, newSatelliteWord(fw.Surface, fw.PartOfSpeech, OtherDetail(tag)))
		}
		return out, len(out) > 0
	}
	return nil, false
}
