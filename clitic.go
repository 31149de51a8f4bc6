package manchu

import "strings"

// splitClitic detaches a trailing case clitic from token. Mirrors
// original_source/src/split_clitic.rs's CaseClitic and
// function_word.rs's TryFrom<FunctionWord>, adapted from one struct
// holding Vec<Case> to one Word per Case.
//
// Returns the stem base and one Word per Case the matched clitic entry
// lists. err is ErrNoCliticMatch when no clitic entry matches, a
// recoverable signal rather than a failure of analysis.
func splitClitic(token string, res *Resources) (stemBase string, words []Word, err error) {
	if token == "" {
		return "", nil, ErrEmptyInput
	}
	if strings.TrimSpace(token) == "" {
		return "", nil, ErrWhitespaceOnly
	}

	for _, fw := range res.FunctionWords {
		if fw.PartOfSpeech != Clitic {
			continue
		}
		if !strings.HasSuffix(token, fw.Surface) {
			continue
		}
		base := token[:len(token)-len(fw.Surface)]
		if base == "" {
			continue
		}

		cliticWords := make([]Word, 0, len(fw.Details))
		for _, caseName := range fw.Details {
			c, perr := ParseCase(caseName)
			if perr != nil {
				// Malformed entry: reject the whole clitic candidate if any
				// case name is unparseable.
				cliticWords = nil
				break
			}
			cliticWords = append(cliticWords, newSatelliteWord(fw.Surface, Clitic, CaseDetail(c)))
		}
		if cliticWords == nil {
			continue
		}

		return base, cliticWords, nil
	}

	return "", nil, ErrNoCliticMatch
}
