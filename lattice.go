package manchu

import "strings"

// backPointer is an arena-index reference to a predecessor MorphemeNode
// (column, row), chosen over an owning *MorphemeNode link: the arena form
// avoids deep clones and scales better for long sentences. noBackPointer
// marks column 0 nodes and any node not yet relaxed.
type backPointer struct {
	col, row int
}

var noBackPointer = backPointer{col: -1, row: -1}

// MorphemeNode is a single candidate analysis of a token.
type MorphemeNode struct {
	Words        []Word
	EmissionCost int
	Category     string
	PathCost     int
	back         backPointer
}

// HasBackPointer reports whether this node was relaxed against a
// predecessor; false for column 0 nodes and for nodes not yet relaxed.
func (n MorphemeNode) HasBackPointer() bool {
	return n.back != noBackPointer
}

// newMorphemeNode builds a MorphemeNode from its component Words: emission
// cost sums the Words' costs, and category derives from the last Word's
// Detail (or PartOfSpeech absent one). Grounded on
// original_source/src/lattice.rs's MorphemeNode::vec_from_words.
func newMorphemeNode(words []Word) MorphemeNode {
	sum := 0
	for _, w := range words {
		sum += w.EmissionCost
	}
	last := words[len(words)-1]
	return MorphemeNode{
		Words:        words,
		EmissionCost: sum,
		Category:     categoryName(last.Detail, last.PartOfSpeech),
		back:         noBackPointer,
	}
}

// WordColumn is the ordered set of MorphemeNodes covering one
// whitespace-delimited token. Order is insertion order and is an
// observable, testable property of the lattice.
type WordColumn []MorphemeNode

// Lattice is the segmentation lattice for one sentence. Owned solely by
// its caller: built by FromSentence, mutated once by ComputeBestPath,
// then read-only.
type Lattice struct {
	Sentence string
	Columns  []WordColumn
	res      *Resources
}

// fromSentence builds a Lattice from sentence, grounded on
// original_source/src/lattice.rs's Lattice::from_sentence /
// WordNode::from_token.
func fromSentence(sentence string, res *Resources) *Lattice {
	tokens := strings.Fields(sentence)
	lat := &Lattice{
		Sentence: sentence,
		Columns:  make([]WordColumn, len(tokens)),
		res:      res,
	}
	for i, token := range tokens {
		lat.Columns[i] = buildColumn(token, res)
	}
	return lat
}

// buildColumn assembles one token's candidate column in a fixed order:
// (a) segmentation-enumerator nodes, (b) stem+clitic two-Word nodes, (c)
// function-word expansion nodes. A column is never empty: the
// segmentation enumerator always yields the Noun/Adverb trivial seeds.
func buildColumn(token string, res *Resources) WordColumn {
	var col WordColumn

	// (a) single-Word segmentation nodes.
	segs, err := enumerateSegmentations(token, res)
	if err == nil {
		for _, w := range segs {
			col = append(col, newMorphemeNode([]Word{w}))
		}
	}

	// (b) stem+clitic two-Word nodes. The clitic splitter runs on the raw
	// token, not on each enumerator seed; the Adverb seed does not
	// participate.
	if stemBase, cliticWords, cerr := splitClitic(token, res); cerr == nil {
		stemSegs, serr := enumerateSegmentations(stemBase, res)
		if serr == nil {
			for _, stemWord := range stemSegs {
				for _, cliticWord := range cliticWords {
					col = append(col, newMorphemeNode([]Word{stemWord, cliticWord}))
				}
			}
		}
	}

	// (c) function-word expansion nodes.
	if fwWords, ok := expandFunctionWord(token, res); ok {
		for _, w := range fwWords {
			col = append(col, newMorphemeNode([]Word{w}))
		}
	}

	return col
}
