package manchu

import "strings"

// enumerateSegmentations returns every prefix of the suffix-peel chain for
// token, grounded on original_source/src/split_suffix.rs's
// recurrsive_split, generalized from returning only the deepest split to
// returning every intermediate split.
//
// The returned list always begins with the two trivial seeds (token as
// Noun, token as Adverb, both emission cost 0) followed by one Word per
// successful peel, in peel order. Peeling stops at the first base for
// which no suffix matches.
func enumerateSegmentations(token string, res *Resources) ([]Word, error) {
	if token == "" {
		return nil, ErrEmptyInput
	}
	if strings.TrimSpace(token) == "" {
		return nil, ErrWhitespaceOnly
	}

	words := []Word{
		newTrivialWord(token, Noun),
		newTrivialWord(token, Adverb),
	}

	var suffixes []Suffix
	var outermostPOS PartOfSpeech
	var outermostDetail Detail
	base := token

	for {
		suf, nextBase, ok, err := splitSuffix(base, res)
		if err != nil || !ok {
			break
		}
		if len(suffixes) == 0 {
			outermostPOS = suf.AttachesTo
			outermostDetail = ConjugationDetail(suf.Conjugation)
		}
		suffixes = append(suffixes, suf)
		base = nextBase
		words = append(words, newSegmentedWord(base, suffixes, outermostPOS, outermostDetail))
	}

	return words, nil
}
