package manchu

import "github.com/rivo/uniseg"

// vowelLetters and consonantLetters are the romanized inventories,
// grounded on original_source/src/phoneme.rs's is_vowel/is_consonant
// literal lists.
var vowelLetters = []string{"a", "e", "i", "o", "u", "v"}

var consonantLetters = []string{
	"n", "ng", "b", "p", "s", "š", "x", "k", "g", "h", "l", "m", "t", "d",
	"r", "j", "y", "c", "f", "w", "ts'", "dz", "k'", "g'", "h'", "c'y",
}

// admissibleFinals is the set of consonants legitimately allowed
// word-finally.
var admissibleFinals = []string{"b", "t", "k", "m", "n", "ng", "l", "r", "s"}

// convertedSet converts every romanized letter in letters through conv and
// collects the resulting native-script graphemes into a set, mirroring
// original_source/src/phoneme.rs's per-call `.map(|x| x.convert_to_manchu())`.
// Conversion failures are skipped: an unconvertible reference letter simply
// never matches, rather than aborting the whole validator.
func convertedSet(conv NativeScriptConverter, letters []string) map[string]bool {
	set := make(map[string]bool, len(letters))
	for _, l := range letters {
		if g, err := conv(l); err == nil {
			set[g] = true
		}
	}
	return set
}

// graphemes decomposes a native-script string into its grapheme clusters
// using github.com/rivo/uniseg, the Go analogue of the original Rust's
// unicode-segmentation crate (original_source/src/phoneme.rs).
func graphemes(s string) []string {
	var out []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

// IsValidStructure decides whether a candidate stem satisfies Manchu
// syllable structure: (C)V(V)(C), no two-consonant codas, only nine
// consonants legitimate word-finally.
func IsValidStructure(stem string, conv NativeScriptConverter) bool {
	native, err := conv(stem)
	if err != nil {
		return false
	}
	g := graphemes(native)
	n := len(g)
	if n == 0 {
		return false
	}

	vowels := convertedSet(conv, vowelLetters)
	consonants := convertedSet(conv, consonantLetters)
	finals := convertedSet(conv, admissibleFinals)

	if n == 1 {
		return vowels[g[0]]
	}
	if consonants[g[n-1]] && consonants[g[n-2]] {
		return false
	}
	if consonants[g[n-1]] {
		return finals[g[n-1]]
	}
	return true
}

// IsUnusualFinalConsonant reports whether stem's last grapheme is one of
// the nine admissible word-final consonants. Reserved for downstream
// scoring heuristics; not called anywhere in the core pipeline.
func IsUnusualFinalConsonant(stem string, conv NativeScriptConverter) bool {
	native, err := conv(stem)
	if err != nil {
		return false
	}
	g := graphemes(native)
	if len(g) == 0 {
		return false
	}
	finals := convertedSet(conv, admissibleFinals)
	return finals[g[len(g)-1]]
}
