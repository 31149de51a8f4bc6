package manchu

// ComputeBestPath fills in each MorphemeNode's PathCost and back pointer
// via a column-wise shortest-path relaxation, grounded on
// original_source/src/lattice.rs's Lattice::calculate_path_costs. Column
// 0 nodes keep PathCost = 0 and noBackPointer. Each later node's PathCost
// is the minimum, over predecessor nodes in the prior column, of
// predecessor.PathCost + EdgeCosts.Cost(predecessor.Category,
// node.Category), plus the node's own EmissionCost; ties keep the first
// (lowest row index) predecessor encountered.
//
// Safe to call on an empty lattice (zero tokens); a no-op in that case.
func (l *Lattice) ComputeBestPath() {
	if len(l.Columns) == 0 {
		return
	}

	for row := range l.Columns[0] {
		node := &l.Columns[0][row]
		node.PathCost = 0
		node.back = noBackPointer
	}

	for col := 1; col < len(l.Columns); col++ {
		prev := l.Columns[col-1]
		for row := range l.Columns[col] {
			node := &l.Columns[col][row]
			best := 0
			bestSet := false
			bestBack := noBackPointer
			for pr := range prev {
				p := prev[pr]
				cost := p.PathCost + l.res.EdgeCosts.Cost(p.Category, node.Category)
				if !bestSet || cost < best {
					best = cost
					bestSet = true
					bestBack = backPointer{col: col - 1, row: pr}
				}
			}
			node.PathCost = best + node.EmissionCost
			node.back = bestBack
		}
	}

	last := l.Columns[len(l.Columns)-1]
	bestCost := last[0].PathCost
	for _, n := range last[1:] {
		if n.PathCost < bestCost {
			bestCost = n.PathCost
		}
	}
	l.res.log.Debug().Int("tokens", len(l.Columns)).Int("path_cost", bestCost).Msg("computed best path")
}

// BestPath returns the minimum-cost sequence of MorphemeNodes spanning the
// whole lattice, one per column, and its total path cost. ComputeBestPath
// must have been called first; on an empty lattice it returns (nil, 0).
func (l *Lattice) BestPath() ([]MorphemeNode, int) {
	if len(l.Columns) == 0 {
		return nil, 0
	}

	last := l.Columns[len(l.Columns)-1]
	bestRow := 0
	for row := range last {
		if last[row].PathCost < last[bestRow].PathCost {
			bestRow = row
		}
	}

	path := make([]MorphemeNode, len(l.Columns))
	col, row := len(l.Columns)-1, bestRow
	for col >= 0 {
		node := l.Columns[col][row]
		path[col] = node
		if !node.HasBackPointer() {
			break
		}
		col, row = node.back.col, node.back.row
	}

	return path, last[bestRow].PathCost
}

// GetBestPath returns, per token column, the winning MorphemeNode's Words.
func (l *Lattice) GetBestPath() [][]Word {
	nodes, _ := l.BestPath()
	out := make([][]Word, len(nodes))
	for i, n := range nodes {
		out[i] = n.Words
	}
	return out
}
