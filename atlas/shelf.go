package atlas

// shelfAllocator implements shelf-based rectangle packing.
//
// Rectangles are organized in horizontal shelves. Each shelf is as tall as
// the tallest item placed on it; items go left to right until the shelf is
// full, then a new shelf is started below. Cell-sized glyphs dominate the
// workload, so most shelves end up uniform.
type shelfAllocator struct {
	width   int
	height  int
	gutter  int // space between neighbours
	shelves []shelf

	usedArea int
}

type shelf struct {
	y      int // top edge
	height int // tallest item so far
	x      int // next free column
}

func newShelfAllocator(width, height, gutter int) *shelfAllocator {
	return &shelfAllocator{
		width:   width,
		height:  height,
		gutter:  gutter,
		shelves: make([]shelf, 0, 16),
	}
}

// allocate finds space for a w x h rectangle and returns its top-left
// corner, or ok == false when the atlas is full.
func (a *shelfAllocator) allocate(w, h int) (x, y int, ok bool) {
	paddedW := w + a.gutter

	for i := range a.shelves {
		s := &a.shelves[i]
		if s.x+w > a.width {
			continue
		}
		if h > s.height {
			// Only the last shelf can grow, and only into free space below.
			if i != len(a.shelves)-1 || s.y+h > a.height {
				continue
			}
			s.height = h
		}
		x, y = s.x, s.y
		s.x += paddedW
		a.usedArea += w * h
		return x, y, true
	}

	newY := 0
	if n := len(a.shelves); n > 0 {
		last := a.shelves[n-1]
		newY = last.y + last.height + a.gutter
	}
	if w > a.width || newY+h > a.height {
		return -1, -1, false
	}

	a.shelves = append(a.shelves, shelf{y: newY, height: h, x: paddedW})
	a.usedArea += w * h
	return 0, newY, true
}

func (a *shelfAllocator) reset() {
	a.shelves = a.shelves[:0]
	a.usedArea = 0
}

// utilization returns the fraction of the atlas area in use.
func (a *shelfAllocator) utilization() float64 {
	if a.width <= 0 || a.height <= 0 {
		return 0
	}
	return float64(a.usedArea) / float64(a.width*a.height)
}

// occupied returns the area claimed so far, gutters and shelf slack included.
func (a *shelfAllocator) occupied() int {
	n := len(a.shelves)
	if n == 0 {
		return 0
	}
	last := a.shelves[n-1]
	return (last.y+last.height)*a.width - (a.width-min(last.x, a.width))*last.height
}
