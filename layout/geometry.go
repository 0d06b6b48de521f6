// Package layout provides the pure geometry used by the windowed renderers:
// grid column math, visible index range selection, and clamped scroll state.
// Everything here is side-effect free and unit-testable without a screen.
package layout

// GridSpec describes a computed grid row: how many cards fit and how wide
// each card is so that a full row spans the container exactly.
type GridSpec struct {
	ItemsPerRow int
	ItemWidth   int
}

// Grid computes column count and card width for a container.
// ItemsPerRow is never below 1, even when the container is narrower than
// minItemWidth. Widths are distributed so that
// itemsPerRow*itemWidth + gap*(itemsPerRow-1) <= containerWidth,
// which keeps rows from overflowing and avoids drift across rows.
func Grid(containerWidth, minItemWidth, gap int) GridSpec {
	if minItemWidth < 1 {
		minItemWidth = 1
	}
	if gap < 0 {
		gap = 0
	}

	perRow := (containerWidth + gap) / (minItemWidth + gap)
	if perRow < 1 {
		perRow = 1
	}

	width := (containerWidth - gap*(perRow-1)) / perRow
	if width < 1 {
		width = 1
	}

	return GridSpec{ItemsPerRow: perRow, ItemWidth: width}
}

// GridExtent returns total content height in rows for a grid of totalCount
// items laid out itemsPerRow per row, each row itemExtent rows tall.
func GridExtent(totalCount, itemsPerRow, itemExtent int) int {
	if totalCount <= 0 || itemsPerRow < 1 {
		return 0
	}
	rows := (totalCount + itemsPerRow - 1) / itemsPerRow
	return rows * itemExtent
}

// ListExtent returns total content height in rows for a linear list.
func ListExtent(totalCount, itemHeight int) int {
	if totalCount <= 0 {
		return 0
	}
	return totalCount * itemHeight
}
