package techcanvas

import "math"

// Layout maps data coordinates (stage, position, depth) to world space.
// World space is stable under zoom and pan. Y grows downward in world space
// while depth grows upward, so depth 5 sits near the top.
type Layout struct {
	Padding       Insets
	StageCount    int
	StageStep     float64
	DepthStep     float64
	ContentWidth  float64
	ContentHeight float64

	segmentInset float64
	segmentRatio float64
	stageBand    float64
}

// newLayout computes the layout for the given parameters. In fit mode the
// steps are derived from the surface size; otherwise they come from params
// and the surface size is ignored.
func newLayout(p Params, stageCount int, fit bool, surfaceW, surfaceH float64) Layout {
	l := Layout{
		Padding:      p.Padding,
		StageCount:   stageCount,
		segmentInset: p.SegmentInset,
		segmentRatio: p.SegmentRatio,
		stageBand:    p.StageBand,
	}
	if fit {
		l.ContentWidth = math.Max(0, surfaceW-p.Padding.Left-p.Padding.Right)
		l.ContentHeight = math.Max(0, surfaceH-p.Padding.Top-p.Padding.Bottom)
		if stageCount > 0 {
			l.StageStep = l.ContentWidth / float64(stageCount)
		}
		l.DepthStep = l.ContentHeight / MaxDepth
		return l
	}
	l.StageStep = p.StageStep
	l.DepthStep = p.DepthStep
	l.ContentWidth = float64(stageCount) * p.StageStep
	l.ContentHeight = MaxDepth * p.DepthStep
	return l
}

// StageOrigin returns the left edge of the stage band at the given catalog
// index.
func (l Layout) StageOrigin(index int) float64 {
	return l.Padding.Left + l.StageStep*float64(index)
}

// Segment returns the world-space rectangle of the stage segment at the
// given catalog index: the usable part of the stage band, extending
// StageBand below the content area.
func (l Layout) Segment(index int) Rect {
	return Rect{
		X:      l.StageOrigin(index) + l.StageStep*l.segmentInset,
		Y:      l.ContentBottom(),
		Width:  l.StageStep * l.segmentRatio,
		Height: l.stageBand,
	}
}

// StageX returns the world X of a point inside the stage at the given
// catalog index. A position of zero means absent and yields the midpoint of
// the stage band; other positions are clamped to [MinPosition, MaxPosition].
func (l Layout) StageX(index int, position float64) float64 {
	seg := l.Segment(index)
	if position == 0 {
		return l.StageOrigin(index) + l.StageStep/2
	}
	t := (clamp(position, MinPosition, MaxPosition) - MinPosition) / (MaxPosition - MinPosition)
	return seg.X + t*seg.Width
}

// DepthY returns the world Y of the given depth.
func (l Layout) DepthY(depth float64) float64 {
	return l.Padding.Top + l.ContentHeight - depth*l.DepthStep
}

// ContentBottom is the world Y of depth zero, the bottom of the content area.
func (l Layout) ContentBottom() float64 {
	return l.Padding.Top + l.ContentHeight
}

// ContentRect returns the plotted area without padding.
func (l Layout) ContentRect() Rect {
	return Rect{X: l.Padding.Left, Y: l.Padding.Top, Width: l.ContentWidth, Height: l.ContentHeight}
}

// Bounds returns the full world rectangle including padding.
func (l Layout) Bounds() Rect {
	return Rect{
		Width:  l.Padding.Left + l.ContentWidth + l.Padding.Right,
		Height: l.Padding.Top + l.ContentHeight + l.Padding.Bottom,
	}
}

// PointPosition resolves a technology to its world position using the
// catalog. ok is false when the technology's stage is not in the catalog.
func (l Layout) PointPosition(cat *Catalog, t *Technology) (pos Vec2, stageIndex int, ok bool) {
	stageIndex = cat.Index(t.Stage)
	if stageIndex < 0 {
		return Vec2{}, -1, false
	}
	return Vec2{X: l.StageX(stageIndex, t.Position), Y: l.DepthY(t.Depth)}, stageIndex, true
}
