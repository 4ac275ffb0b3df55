package techcanvas

import "math"

// ParallaxEpsilon is the distance in screen pixels below which a layer is
// considered to have reached its target.
const ParallaxEpsilon = 0.1

// layerMultipliers lists the per-layer multipliers for each supported layer
// count, back to front.
var layerMultipliers = map[int][]float64{
	1: {1},
	2: {0.4, 1},
	3: {0.2, 0.5, 1},
	4: {0.15, 0.35, 0.6, 1},
}

// ParallaxLayer is one independently eased offset.
type ParallaxLayer struct {
	Current    Vec2
	Target     Vec2
	Multiplier float64
}

// Parallax eases one or more layer offsets toward targets derived from the
// pointer position. A Parallax with no layers is disabled: offsets are
// always zero and it is always converged.
type Parallax struct {
	layers []ParallaxLayer
}

// newParallax creates n layers with multipliers growing from back to front.
// n is clamped to [0, 4].
func newParallax(n int) *Parallax {
	if n <= 0 {
		return &Parallax{}
	}
	if n > len(layerMultipliers) {
		n = len(layerMultipliers)
	}
	mults := layerMultipliers[n]
	p := &Parallax{layers: make([]ParallaxLayer, n)}
	for i := range p.layers {
		p.layers[i].Multiplier = mults[i]
	}
	return p
}

// Len returns the number of layers.
func (p *Parallax) Len() int {
	return len(p.layers)
}

// Layers returns the layer states. The returned slice MUST NOT be mutated.
func (p *Parallax) Layers() []ParallaxLayer {
	return p.layers
}

// layerFor maps a render layer onto a parallax layer. Back render layers
// map to back parallax layers; points always use the front layer.
func (p *Parallax) layerFor(l Layer) int {
	n := len(p.layers)
	if n == 0 {
		return -1
	}
	idx := int(l) * n / int(layerCount)
	if l == LayerPoints || idx >= n {
		idx = n - 1
	}
	return idx
}

// Offset returns the current offset applied to the given render layer.
func (p *Parallax) Offset(l Layer) Vec2 {
	i := p.layerFor(l)
	if i < 0 {
		return Vec2{}
	}
	return p.layers[i].Current
}

// Aim recomputes every target from the pointer position:
// target = (surfaceCenter - pointer) * strength * multiplier.
func (p *Parallax) Aim(surface Rect, px, py, strength float64) {
	c := surface.Center()
	dx, dy := (c.X-px)*strength, (c.Y-py)*strength
	for i := range p.layers {
		m := p.layers[i].Multiplier
		p.layers[i].Target = Vec2{X: dx * m, Y: dy * m}
	}
}

// Reset sets every target back to zero.
func (p *Parallax) Reset() {
	for i := range p.layers {
		p.layers[i].Target = Vec2{}
	}
}

// Converged reports whether every layer is within ParallaxEpsilon of its
// target on both axes.
func (p *Parallax) Converged() bool {
	for _, l := range p.layers {
		if math.Abs(l.Target.X-l.Current.X) > ParallaxEpsilon ||
			math.Abs(l.Target.Y-l.Current.Y) > ParallaxEpsilon {
			return false
		}
	}
	return true
}

// Step eases every layer toward its target by the given factor, clamped to
// (0, 1]. Layers that land within epsilon snap to their target. Reports
// whether another step is needed.
func (p *Parallax) Step(easeFactor float64) bool {
	if easeFactor <= 0 || easeFactor > 1 || math.IsNaN(easeFactor) {
		easeFactor = 1
	}
	for i := range p.layers {
		l := &p.layers[i]
		l.Current.X += (l.Target.X - l.Current.X) * easeFactor
		l.Current.Y += (l.Target.Y - l.Current.Y) * easeFactor
		if math.Abs(l.Target.X-l.Current.X) <= ParallaxEpsilon &&
			math.Abs(l.Target.Y-l.Current.Y) <= ParallaxEpsilon {
			l.Current = l.Target
		}
	}
	return !p.Converged()
}
