package manchu

import "strings"

// splitSuffix performs a single-step longest-suffix peel of token,
// grounded on original_source/src/split_suffix.rs's
// split_word_into_suffix_base: first table match wins, gated here by the
// phonotactic validator (the original has no such gate; a bare string
// match lets invalid peels like "ts'" off "ts'ts'" through).
//
// Returns the matched Suffix and the stripped base on a successful peel;
// ok is false when no suffix matches (the peel chain terminates here).
// Returns an error for empty/whitespace-only input.
func splitSuffix(token string, res *Resources) (suf Suffix, base string, ok bool, err error) {
	if token == "" {
		return Suffix{}, "", false, ErrEmptyInput
	}
	if strings.TrimSpace(token) == "" {
		return Suffix{}, "", false, ErrWhitespaceOnly
	}

	for _, s := range res.Suffixes {
		if !strings.HasSuffix(token, s.Surface) {
			continue
		}
		b := token[:len(token)-len(s.Surface)]
		if !IsValidStructure(b, res.conv) {
			continue
		}
		return s, b, true, nil
	}

	return Suffix{}, token, false, nil
}
