package manchu

import (
	"encoding/json"
	"fmt"
	"os"
)

// functionWordRow is the on-disk JSON shape: records {entry,
// part_of_speech, details:[string]}, mirroring
// original_source/src/function_word.rs's serde_json::from_str over
// resources/function_word.json.
type functionWordRow struct {
	Entry        string   `json:"entry"`
	PartOfSpeech string   `json:"part_of_speech"`
	Details      []string `json:"details"`
}

// loadFunctionWordTable reads the function-word table from a JSON array
// file. For Clitic entries every details string must parse as a Case
// name; non-Clitic entries carry opaque tags and are not validated
// further here.
func loadFunctionWordTable(path string) ([]FunctionWord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read function-word table: %w", err)
	}

	var rows []functionWordRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse function-word table: %w", err)
	}

	out := make([]FunctionWord, 0, len(rows))
	for i, row := range rows {
		pos, err := ParsePartOfSpeech(row.PartOfSpeech)
		if err != nil {
			return nil, &ResourceError{File: path, Line: i + 1, Reason: err.Error()}
		}
		if pos == Clitic {
			for _, d := range row.Details {
				if _, err := ParseCase(d); err != nil {
					return nil, &ResourceError{File: path, Line: i + 1, Reason: err.Error()}
				}
			}
		}
		out = append(out, FunctionWord{
			Surface:      row.Entry,
			PartOfSpeech: pos,
			Details:      row.Details,
		})
	}
	return out, nil
}
