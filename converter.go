package manchu

import (
	"fmt"
	"strings"
)

// NativeScriptConverter does romanization-to-native-script conversion:
// toNativeScript(str) -> Ok(str) | Err. Real conversion is out of scope
// for this package; DefaultConverter is a deterministic placeholder
// exercising the same contract so the phonotactic validator and
// ToNativeScriptInPlace work end to end without a caller-supplied one.
type NativeScriptConverter func(s string) (string, error)

// manchuGraphemes lists the consonant clusters (plus "š"), longest first
// so DefaultConverter's longest-match scan prefers them over their
// single-rune prefixes (e.g. "ts'" over "t").
var manchuGraphemes = []string{
	"ts'", "c'y",
	"ng", "dz", "k'", "g'", "h'",
	"š",
}

// manchuGlyph maps each recognized grapheme (vowel, consonant, or cluster)
// to a distinct placeholder native-script glyph. The mapping need only be
// injective and stable; DefaultConverter exists to exercise the
// validator's decompose-into-graphemes contract, not to render real
// Manchu script.
var manchuGlyph = map[string]string{
	"a": "\U00018B00", "e": "\U00018B01", "i": "\U00018B02",
	"o": "\U00018B03", "u": "\U00018B04", "v": "\U00018B05",
	"n": "\U00018B10", "ng": "\U00018B11", "b": "\U00018B12",
	"p": "\U00018B13", "s": "\U00018B14", "š": "\U00018B15",
	"x": "\U00018B16", "k": "\U00018B17", "g": "\U00018B18",
	"h": "\U00018B19", "l": "\U00018B1A", "m": "\U00018B1B",
	"t": "\U00018B1C", "d": "\U00018B1D", "r": "\U00018B1E",
	"j": "\U00018B1F", "y": "\U00018B20", "c": "\U00018B21",
	"f": "\U00018B22", "w": "\U00018B23", "ts'": "\U00018B24",
	"dz": "\U00018B25", "k'": "\U00018B26", "g'": "\U00018B27",
	"h'": "\U00018B28", "c'y": "\U00018B29",
}

// DefaultConverter is the placeholder NativeScriptConverter used when
// Config.Converter is unset. It greedily matches the longest known
// grapheme at each position (favoring clusters like "ts'" over their
// single-letter prefixes) and fails on any unrecognized rune, mirroring
// the original Rust's `convert_to_manchu` returning Err on malformed
// romanization (original_source/src/phoneme.rs).
func DefaultConverter(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	var out strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); {
		matched := ""
		for _, g := range manchuGraphemes {
			gr := []rune(g)
			if i+len(gr) <= len(runes) && string(runes[i:i+len(gr)]) == g {
				matched = g
				break
			}
		}
		if matched == "" {
			matched = string(runes[i])
		}
		glyph, ok := manchuGlyph[matched]
		if !ok {
			return "", fmt.Errorf("%w: unrecognized grapheme %q in %q", ErrConversion, matched, s)
		}
		out.WriteString(glyph)
		i += len([]rune(matched))
	}
	return out.String(), nil
}
