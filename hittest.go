package techcanvas

import "math"

// HitKind identifies what a hit test found.
type HitKind uint8

const (
	HitNone  HitKind = iota // nothing under the pointer
	HitPoint                // a technology point
	HitStage                // a stage segment
)

// HitResult is the outcome of a hit test. At most one of Point and Stage is
// set, matching Kind.
type HitResult struct {
	Kind  HitKind
	Point *Technology
	Stage *Stage
}

// Hover converts the result to hover identities.
func (r HitResult) Hover() HoverState {
	switch r.Kind {
	case HitPoint:
		return HoverState{Point: r.Point.Title}
	case HitStage:
		return HoverState{Stage: r.Stage.ID}
	default:
		return HoverState{}
	}
}

// HitCircle is a circular hit area in world coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// ScreenToWorld converts a screen position to world coordinates for the
// given layer, using the transform of the last rendered frame.
func (c *Canvas) ScreenToWorld(l Layer, sx, sy float64) (wx, wy float64) {
	return transformPoint(invertAffine(c.frame[l]), sx, sy)
}

// WorldToScreen converts world coordinates to a screen position for the
// given layer, using the transform of the last rendered frame.
func (c *Canvas) WorldToScreen(l Layer, wx, wy float64) (sx, sy float64) {
	return transformPoint(c.frame[l], wx, wy)
}

// HitTest finds what is under the screen position (sx, sy). Points are
// checked first, in data order, and the first one in range wins. Stages are
// only checked when no point is hit. The query has no side effects.
func (c *Canvas) HitTest(sx, sy float64) HitResult {
	if i := c.hitPoint(sx, sy); i >= 0 {
		t := c.techs[i]
		return HitResult{Kind: HitPoint, Point: &t}
	}
	if i := c.hitStage(sx, sy); i >= 0 {
		s := c.catalog.Stages()[i]
		return HitResult{Kind: HitStage, Stage: &s}
	}
	return HitResult{}
}

// hitRadius is the world-space hit radius. MinHitRadius is in screen
// pixels, so small points stay easy to hit when zoomed out.
func (c *Canvas) hitRadius() float64 {
	scale := c.frame[LayerPoints][0]
	if scale <= 0 {
		return c.params.PointRadius
	}
	return math.Max(c.params.PointRadius, c.params.MinHitRadius/scale)
}

// hitPoint returns the index of the first drawable technology within the
// hit radius of (sx, sy), or -1.
func (c *Canvas) hitPoint(sx, sy float64) int {
	wx, wy := c.ScreenToWorld(LayerPoints, sx, sy)
	r := c.hitRadius()
	for i := range c.techs {
		pos, _, ok := c.layout.PointPosition(c.catalog, &c.techs[i])
		if !ok {
			continue
		}
		if (HitCircle{CenterX: pos.X, CenterY: pos.Y, Radius: r}).Contains(wx, wy) {
			return i
		}
	}
	return -1
}

// hitStage returns the catalog index of the stage segment under (sx, sy),
// or -1. Only the band below the content area is considered.
func (c *Canvas) hitStage(sx, sy float64) int {
	wx, wy := c.ScreenToWorld(LayerStages, sx, sy)
	for i := 0; i < c.catalog.Len(); i++ {
		if c.layout.Segment(i).Contains(wx, wy) {
			return i
		}
	}
	return -1
}
