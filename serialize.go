package manchu

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON renders a Detail as a tagged object:
// {"Conjugation":"..."} | {"Case":"..."} | {"Other":"..."}.
func (d Detail) MarshalJSON() ([]byte, error) {
	switch d.Kind {
	case DetailConjugation:
		return json.Marshal(map[string]string{"Conjugation": d.Conjugation.String()})
	case DetailCase:
		return json.Marshal(map[string]string{"Case": d.Case.String()})
	case DetailOther:
		return json.Marshal(map[string]string{"Other": d.Other})
	default:
		return []byte("null"), nil
	}
}

type suffixJSON struct {
	Suffix  string `json:"suffix"`
	Form    string `json:"form"`
	Role    string `json:"role"`
	LeftPos string `json:"left_pos"`
}

type wordJSON struct {
	Base         string       `json:"base"`
	Suffixes     []suffixJSON `json:"suffixes"`
	PartOfSpeech string       `json:"part_of_speech"`
	Detail       *Detail      `json:"detail"`
	EmissionCost int          `json:"emission_cost"`
}

type morphemeNodeJSON struct {
	Words        []wordJSON `json:"words"`
	EmissionCost int        `json:"emission_cost"`
	PathCost     int        `json:"path_cost"`
	LeftNode     *int       `json:"left_node"`
	Category     string     `json:"category"`
}

type latticeJSON struct {
	Sentence string               `json:"sentence"`
	Lattice  [][]morphemeNodeJSON `json:"lattice"`
}

func toWordJSON(w Word) wordJSON {
	suffixes := make([]suffixJSON, len(w.Suffixes))
	for i, s := range w.Suffixes {
		suffixes[i] = suffixJSON{
			Suffix:  s.Surface,
			Form:    s.Conjugation.String(),
			Role:    s.Role.String(),
			LeftPos: s.AttachesTo.String(),
		}
	}
	return wordJSON{
		Base:         w.Base,
		Suffixes:     suffixes,
		PartOfSpeech: w.PartOfSpeech.String(),
		Detail:       w.Detail,
		EmissionCost: w.EmissionCost,
	}
}

func toMorphemeNodeJSON(n MorphemeNode) morphemeNodeJSON {
	words := make([]wordJSON, len(n.Words))
	for i, w := range n.Words {
		words[i] = toWordJSON(w)
	}
	var leftNode *int
	if n.HasBackPointer() {
		row := n.back.row
		leftNode = &row
	}
	return morphemeNodeJSON{
		Words:        words,
		EmissionCost: n.EmissionCost,
		PathCost:     n.PathCost,
		LeftNode:     leftNode,
		Category:     n.Category,
	}
}

// ToJSON renders the lattice as a stable JSON shape:
// {"sentence":..., "lattice":[WordColumn]}. Grounded on
// original_source/src/lattice.rs's impl Serialize for Lattice, adapted
// from serde derive output to explicit field structs since Go has no
// derive-macro analogue.
func (l *Lattice) ToJSON() (string, error) {
	out := latticeJSON{
		Sentence: l.Sentence,
		Lattice:  make([][]morphemeNodeJSON, len(l.Columns)),
	}
	for ci, col := range l.Columns {
		nodes := make([]morphemeNodeJSON, len(col))
		for ni, n := range col {
			nodes[ni] = toMorphemeNodeJSON(n)
		}
		out.Lattice[ci] = nodes
	}
	b, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

type bestPathJSON struct {
	Sentence string       `json:"sentence"`
	BestPath [][]wordJSON `json:"best_path"`
	PathCost int          `json:"path_cost"`
}

// ToBestPathJSON renders ComputeBestPath's result, not the whole lattice,
// as the stable shape {"sentence", "best_path":[[Word]], "path_cost"};
// the smaller of the CLI's two output shapes.
func (l *Lattice) ToBestPathJSON() (string, error) {
	nodes, cost := l.BestPath()
	out := bestPathJSON{Sentence: l.Sentence, BestPath: make([][]wordJSON, len(nodes)), PathCost: cost}
	for i, n := range nodes {
		words := make([]wordJSON, len(n.Words))
		for wi, w := range n.Words {
			words[wi] = toWordJSON(w)
		}
		out.BestPath[i] = words
	}
	b, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ToNativeScriptInPlace walks every Word in the lattice, replacing its
// Base and each Suffix's Surface with its conv image. On the first
// conversion failure it stops and returns an error wrapping ErrConversion
// (regardless of what conv itself returns), leaving the lattice partially
// converted; it never swallows the failure.
func (l *Lattice) ToNativeScriptInPlace(conv NativeScriptConverter) error {
	for ci := range l.Columns {
		for ni := range l.Columns[ci] {
			node := &l.Columns[ci][ni]
			for wi := range node.Words {
				w := &node.Words[wi]
				nb, err := conv(w.Base)
				if err != nil {
					return fmt.Errorf("%w: %s: %v", ErrConversion, w.Base, err)
				}
				w.Base = nb
				// Words of one peel chain, and stem Words repeated across
				// clitic nodes, can share a Suffix backing array; copy it so
				// each surface is converted exactly once.
				w.Suffixes = append([]Suffix(nil), w.Suffixes...)
				for si := range w.Suffixes {
					ns, err := conv(w.Suffixes[si].Surface)
					if err != nil {
						return fmt.Errorf("%w: %s: %v", ErrConversion, w.Suffixes[si].Surface, err)
					}
					w.Suffixes[si].Surface = ns
				}
			}
		}
	}
	return nil
}
