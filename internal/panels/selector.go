package panels

// Selector is a list of integer options with exactly one selected
type Selector struct {
	values   []int
	selected int
}

// NewSelector creates a selector over values with def selected, or the first
// value if def is not an option
func NewSelector(values []int, def int) *Selector {
	s := &Selector{values: append([]int(nil), values...)}
	s.Select(def)
	return s
}

// Values returns the options in order
func (s *Selector) Values() []int {
	return append([]int(nil), s.values...)
}

// Index returns the position of the selected option
func (s *Selector) Index() int {
	return s.selected
}

// Value returns the selected option
func (s *Selector) Value() int {
	if len(s.values) == 0 {
		return 0
	}
	return s.values[s.selected]
}

// Select picks v and reports whether it was an option
func (s *Selector) Select(v int) bool {
	for i, opt := range s.values {
		if opt == v {
			s.selected = i
			return true
		}
	}
	return false
}

// Step moves the selection by delta, wrapping at both ends
func (s *Selector) Step(delta int) {
	n := len(s.values)
	if n == 0 {
		return
	}
	s.selected = ((s.selected+delta)%n + n) % n
}
