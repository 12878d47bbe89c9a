package hexgrid

import "sort"

// CompactCells merges cells into the smallest set covering the same area:
// wherever all children of a parent are present they collapse into the
// parent, repeated bottom-up until no merge remains. Pentagon parents are
// complete at six children. Input may mix resolutions; duplicate cells and
// cells already covered by a coarser input cell are rejected, so the
// result never covers any area twice. Order of the input does not matter
// and the output is sorted ascending.
func CompactCells(cells []Cell) ([]Cell, error) {
	if len(cells) == 0 {
		return nil, nil
	}

	var seen [MaxResolution + 1]map[Cell]bool
	var buckets [MaxResolution + 1][]Cell
	for _, c := range cells {
		if !c.IsValid() {
			return nil, ErrInvalidCell
		}
		res := c.Resolution()
		if seen[res] == nil {
			seen[res] = make(map[Cell]bool)
		}
		if seen[res][c] {
			return nil, ErrDuplicateCell
		}
		seen[res][c] = true
		buckets[res] = append(buckets[res], c)
	}

	// A cell whose ancestor is also present duplicates coverage.
	for _, c := range cells {
		for res := c.Resolution() - 1; res >= 0; res-- {
			if len(seen[res]) == 0 {
				continue
			}
			ancestor, err := c.Parent(res)
			if err != nil {
				return nil, err
			}
			if seen[res][ancestor] {
				return nil, ErrDuplicateCell
			}
		}
	}

	var out []Cell
	for res := MaxResolution; res > 0; res-- {
		bucket := buckets[res]
		if len(bucket) == 0 {
			continue
		}

		groups := make(map[Cell][]Cell)
		for _, c := range bucket {
			parent, err := c.Parent(res - 1)
			if err != nil {
				return nil, err
			}
			groups[parent] = append(groups[parent], c)
		}

		parents := make([]Cell, 0, len(groups))
		for p := range groups {
			parents = append(parents, p)
		}
		sort.Slice(parents, func(i, j int) bool { return parents[i] < parents[j] })

		for _, parent := range parents {
			children := groups[parent]
			complete := int(numDigits)
			if parent.IsPentagon() {
				complete--
			}
			if len(children) == complete {
				// Promoted parents join the next coarser pass, so merges
				// cascade as far as the input allows.
				buckets[res-1] = append(buckets[res-1], parent)
				continue
			}
			out = append(out, children...)
		}
	}
	out = append(out, buckets[0]...)

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// UncompactCells expands every cell to its descendants at exactly the
// given resolution. Cells already at that resolution pass through; a cell
// finer than it cannot be expanded and is an error.
func UncompactCells(cells []Cell, res int) ([]Cell, error) {
	if res < 0 || res > MaxResolution {
		return nil, ErrInvalidResolution
	}
	if len(cells) == 0 {
		return nil, nil
	}

	var total int64
	for _, c := range cells {
		if !c.IsValid() {
			return nil, ErrInvalidCell
		}
		if c.Resolution() > res {
			return nil, ErrResolutionMismatch
		}
		n, err := c.ChildrenSize(res)
		if err != nil {
			return nil, err
		}
		total += n
	}

	out := make([]Cell, 0, total)
	for _, c := range cells {
		children, err := c.Children(res)
		if err != nil {
			return nil, err
		}
		out = append(out, children...)
	}
	return out, nil
}
