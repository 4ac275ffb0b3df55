package content

import "github.com/phanxgames/techcanvas"

// ByTitle returns the first technology with the given title.
func (d Dataset) ByTitle(title string) (techcanvas.Technology, bool) {
	for _, t := range d.Technologies {
		if t.Title == title {
			return t, true
		}
	}
	return techcanvas.Technology{}, false
}

// ByStage returns the technologies placed in the given stage, in data
// order.
func (d Dataset) ByStage(stageID string) []techcanvas.Technology {
	var out []techcanvas.Technology
	for _, t := range d.Technologies {
		if t.Stage == stageID {
			out = append(out, t)
		}
	}
	return out
}

// ByDepth returns the technologies at exactly the given depth, in data
// order.
func (d Dataset) ByDepth(depth float64) []techcanvas.Technology {
	var out []techcanvas.Technology
	for _, t := range d.Technologies {
		if t.Depth == depth {
			out = append(out, t)
		}
	}
	return out
}
