// Package selection tracks the browser's selected records and the
// download cart. Both sets key on record identity so membership survives
// filtering and re-renders.
package selection

// Set holds the selection and cart state for a browsing session. It is
// mutated only on the application loop goroutine.
type Set struct {
	selected map[string]struct{}
	cart     map[string]struct{}
	cartSeq  []string // insertion order for export
}

func New() *Set {
	return &Set{
		selected: make(map[string]struct{}),
		cart:     make(map[string]struct{}),
	}
}

func (s *Set) IsSelected(id string) bool {
	_, ok := s.selected[id]
	return ok
}

func (s *Set) InCart(id string) bool {
	_, ok := s.cart[id]
	return ok
}

// ToggleSelect flips selection membership and reports the new state.
func (s *Set) ToggleSelect(id string) bool {
	if _, ok := s.selected[id]; ok {
		delete(s.selected, id)
		return false
	}
	s.selected[id] = struct{}{}
	return true
}

// ToggleCart flips cart membership and reports the new state.
func (s *Set) ToggleCart(id string) bool {
	if _, ok := s.cart[id]; ok {
		delete(s.cart, id)
		s.cartSeq = remove(s.cartSeq, id)
		return false
	}
	s.cart[id] = struct{}{}
	s.cartSeq = append(s.cartSeq, id)
	return true
}

// AddSelectionToCart moves every selected record into the cart.
func (s *Set) AddSelectionToCart() int {
	added := 0
	for id := range s.selected {
		if _, ok := s.cart[id]; !ok {
			s.cart[id] = struct{}{}
			s.cartSeq = append(s.cartSeq, id)
			added++
		}
	}
	return added
}

// CartIDs returns cart contents in insertion order.
func (s *Set) CartIDs() []string {
	out := make([]string, len(s.cartSeq))
	copy(out, s.cartSeq)
	return out
}

func (s *Set) SelectedCount() int { return len(s.selected) }
func (s *Set) CartCount() int     { return len(s.cart) }

func (s *Set) ClearSelection() {
	s.selected = make(map[string]struct{})
}

func (s *Set) ClearCart() {
	s.cart = make(map[string]struct{})
	s.cartSeq = nil
}

func remove(seq []string, id string) []string {
	for i, v := range seq {
		if v == id {
			return append(seq[:i], seq[i+1:]...)
		}
	}
	return seq
}
