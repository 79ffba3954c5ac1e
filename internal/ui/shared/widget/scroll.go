package widget

// Scroll keeps a cursor row inside a fixed-height window.
type Scroll struct {
	Top int
}

// Follow adjusts Top so cursor is visible in a window of height rows over
// total rows. A non-positive height shows everything.
func (s *Scroll) Follow(cursor, total, height int) {
	if height <= 0 {
		s.Top = 0
		return
	}
	if cursor >= s.Top+height {
		s.Top = cursor - height + 1
	}
	if cursor < s.Top {
		s.Top = cursor
	}
	s.Top = min(s.Top, max(total-height, 0))
	s.Top = max(s.Top, 0)
}

// Window returns the visible row range [start, end).
func (s *Scroll) Window(total, height int) (start, end int) {
	if height <= 0 {
		return 0, total
	}
	start = min(s.Top, total)
	return start, min(start+height, total)
}
