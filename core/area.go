package core

// Dimensions is a screen size in cells
type Dimensions struct {
	Width, Height int
}

// Contains reports whether (x, y) is a visible cell
func (d Dimensions) Contains(x, y int) bool {
	return x >= 0 && x < d.Width && y >= 0 && y < d.Height
}

// Empty reports a screen with no visible cells
func (d Dimensions) Empty() bool {
	return d.Width <= 0 || d.Height <= 0
}

// Span is a half-open column range [From, To)
type Span struct {
	From, To int
}

func (s Span) Len() int {
	return max(s.To-s.From, 0)
}

// Overlaps reports whether two spans share a column
func (s Span) Overlaps(o Span) bool {
	return s.From < o.To && o.From < s.To
}

// FreeSpans returns the gaps of [0, width) not covered by taken, left to right
func FreeSpans(width int, taken []Span) []Span {
	free := []Span{{From: 0, To: max(width, 0)}}
	for _, t := range taken {
		next := free[:0:0]
		for _, f := range free {
			if !f.Overlaps(t) {
				next = append(next, f)
				continue
			}
			if t.From > f.From {
				next = append(next, Span{From: f.From, To: t.From})
			}
			if t.To < f.To {
				next = append(next, Span{From: t.To, To: f.To})
			}
		}
		free = next
	}
	return free
}
