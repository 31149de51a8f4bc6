package manchu

import (
	"encoding/json"
	"fmt"
	"os"
)

// edgeCostRow is the on-disk JSON shape: a list of {left_category,
// right_category, cost} triples, mirroring original_source/src/edge_cost.rs's
// serde_json::from_str over resources/edge_cost.json.
type edgeCostRow struct {
	LeftCategory  string `json:"left_category"`
	RightCategory string `json:"right_category"`
	Cost          int    `json:"cost"`
}

// loadEdgeCostTable reads the edge-cost table from a JSON array file into
// an EdgeCostMap keyed by the (left, right) category pair.
func loadEdgeCostTable(path string) (EdgeCostMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read edge-cost table: %w", err)
	}

	var rows []edgeCostRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse edge-cost table: %w", err)
	}

	m := make(EdgeCostMap, len(rows))
	for _, row := range rows {
		m[[2]string{row.LeftCategory, row.RightCategory}] = row.Cost
	}
	return m, nil
}
