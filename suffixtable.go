package manchu

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// loadSuffixTable reads the suffix table (columns "suffix", "form",
// "role", "left_pos") from a CSV file with a header row. Row order is
// load order and determines suffix-peel preference. Mirrors
// original_source/src/split_suffix.rs's csv::Reader over
// resources/suffix.csv, adapted from Rust's serde-deserialize-per-row to
// Go's encoding/csv record scan.
func loadSuffixTable(path string) ([]Suffix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open suffix table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read suffix table header: %w", err)
	}
	col := columnIndex(header)
	iSuffix, iForm, iRole, iPos := col["suffix"], col["form"], col["role"], col["left_pos"]

	var suffixes []Suffix
	line := 1
	for {
		line++
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read suffix table row %d: %w", line, err)
		}

		conj, err := ParseConjugation(record[iForm])
		if err != nil {
			return nil, &ResourceError{File: path, Line: line, Reason: err.Error()}
		}
		role, err := ParseSuffixRole(record[iRole])
		if err != nil {
			return nil, &ResourceError{File: path, Line: line, Reason: err.Error()}
		}
		pos, err := ParsePartOfSpeech(record[iPos])
		if err != nil {
			return nil, &ResourceError{File: path, Line: line, Reason: err.Error()}
		}

		suffixes = append(suffixes, Suffix{
			Surface:     record[iSuffix],
			Conjugation: conj,
			Role:        role,
			AttachesTo:  pos,
		})
	}
	return suffixes, nil
}

// columnIndex maps a CSV header row to column positions by name.
func columnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	return idx
}
