package layout

// Range is a half-open index window [Start, End) into an item sequence.
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Contains reports whether idx falls inside the range.
func (r Range) Contains(idx int) bool {
	return idx >= r.Start && idx < r.End
}

// Visible computes the index window that must be materialized for the
// current scroll position. bufferCount extra rows are included on both ends
// to mask pop-in during fast scrolling; the result is always clamped to
// [0, totalCount] and never narrower than the geometrically visible set.
func Visible(scrollOffset, viewportSize, itemExtent, totalCount, bufferCount, itemsPerRow int) Range {
	if totalCount <= 0 || itemExtent < 1 || viewportSize < 1 {
		return Range{}
	}
	if itemsPerRow < 1 {
		itemsPerRow = 1
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}
	if bufferCount < 0 {
		bufferCount = 0
	}

	startRow := scrollOffset/itemExtent - bufferCount
	if startRow < 0 {
		startRow = 0
	}

	endRow := ceilDiv(scrollOffset+viewportSize, itemExtent) + bufferCount

	start := startRow * itemsPerRow
	end := endRow * itemsPerRow
	if end > totalCount {
		end = totalCount
	}
	if start > end {
		start = end
	}

	return Range{Start: start, End: end}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
