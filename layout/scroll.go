package layout

// Scroll tracks a row-based scroll offset over virtual content.
// Offset is in content rows, not item indices, so grid and list views can
// share it regardless of how many items occupy a row.
type Scroll struct {
	Offset    int // first visible content row
	ContentH  int // total content height in rows
	ViewportH int // visible viewport height in rows
}

// SetDimensions updates content and viewport heights and reclamps offset.
func (s *Scroll) SetDimensions(contentH, viewportH int) {
	s.ContentH = contentH
	s.ViewportH = viewportH
	s.clamp()
}

// MaxOffset returns the largest valid scroll offset.
func (s *Scroll) MaxOffset() int {
	m := s.ContentH - s.ViewportH
	if m < 0 {
		return 0
	}
	return m
}

// CanScroll reports whether content exceeds the viewport.
func (s *Scroll) CanScroll() bool {
	return s.ContentH > s.ViewportH
}

// ScrollBy adjusts offset by delta rows.
func (s *Scroll) ScrollBy(delta int) {
	s.Offset += delta
	s.clamp()
}

// ScrollTo sets an absolute offset.
func (s *Scroll) ScrollTo(pos int) {
	s.Offset = pos
	s.clamp()
}

// PageUp scrolls up by one viewport height.
func (s *Scroll) PageUp() {
	s.ScrollBy(-s.ViewportH)
}

// PageDown scrolls down by one viewport height.
func (s *Scroll) PageDown() {
	s.ScrollBy(s.ViewportH)
}

// Home scrolls to the top.
func (s *Scroll) Home() {
	s.Offset = 0
}

// End scrolls to the bottom.
func (s *Scroll) End() {
	s.Offset = s.MaxOffset()
}

// EnsureVisible adjusts the offset so the row span [y, y+h) is fully
// visible, moving as little as possible.
func (s *Scroll) EnsureVisible(y, h int) {
	if y < s.Offset {
		s.Offset = y
	} else if y+h > s.Offset+s.ViewportH {
		s.Offset = y + h - s.ViewportH
	}
	s.clamp()
}

// IsVisible reports whether the row span [y, y+h) intersects the viewport.
func (s *Scroll) IsVisible(y, h int) bool {
	return y+h > s.Offset && y < s.Offset+s.ViewportH
}

// AtTop reports whether the view is scrolled to the top.
func (s *Scroll) AtTop() bool {
	return s.Offset == 0
}

// AtBottom reports whether the view is scrolled to the bottom.
func (s *Scroll) AtBottom() bool {
	return s.Offset >= s.MaxOffset()
}

func (s *Scroll) clamp() {
	if s.Offset > s.MaxOffset() {
		s.Offset = s.MaxOffset()
	}
	if s.Offset < 0 {
		s.Offset = 0
	}
}
