package techcanvas

import (
	"math"
	"sort"
)

// Insets are paddings around the plotted content.
type Insets struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

// Params holds the layout and motion constants of the canvas. The fields
// tagged with a debug key can be changed live through the DebugBus.
type Params struct {
	ParallaxStrength float64 `yaml:"parallaxStrength"` // debug: parallaxStrength
	PointRadius      float64 `yaml:"pointRadius"`      // debug: pointRadius
	StageStep        float64 `yaml:"stageStep"`        // debug: stageStep
	DepthStep        float64 `yaml:"depthStep"`        // debug: depthStep
	MinHitRadius     float64 `yaml:"minHitRadius"`     // debug: minHitRadius
	EaseFactor       float64 `yaml:"easeFactor"`       // debug: easeFactor

	Padding Insets `yaml:"padding"`

	// SegmentInset and SegmentRatio place the usable part of each stage
	// band, as fractions of the stage step.
	SegmentInset float64 `yaml:"segmentInset"`
	SegmentRatio float64 `yaml:"segmentRatio"`

	// StageBand is the height below the content area in which stage
	// segments are hit-testable.
	StageBand        float64 `yaml:"stageBand"`
	StageLineOffset  float64 `yaml:"stageLineOffset"`
	StageLabelOffset float64 `yaml:"stageLabelOffset"`

	MinScale float64 `yaml:"minScale"`
	MaxScale float64 `yaml:"maxScale"`
	ZoomStep float64 `yaml:"zoomStep"`
}

// DefaultParams returns the built-in constants of the zoomable canvas.
func DefaultParams() Params {
	return Params{
		ParallaxStrength: 0.03,
		PointRadius:      12,
		StageStep:        200,
		DepthStep:        150,
		MinHitRadius:     20,
		EaseFactor:       0.08,
		Padding:          Insets{Top: 100, Right: 100, Bottom: 150, Left: 100},
		SegmentInset:     0.15,
		SegmentRatio:     0.7,
		StageBand:        100,
		StageLineOffset:  20,
		StageLabelOffset: 60,
		MinScale:         0.1,
		MaxScale:         5,
		ZoomStep:         1.1,
	}
}

// FitParams returns constants for the fit-to-surface layout, where the stage
// and depth steps are derived from the surface size.
func FitParams() Params {
	p := DefaultParams()
	p.PointRadius = 8
	p.MinHitRadius = 10
	p.Padding = Insets{Top: 60, Right: 40, Bottom: 80, Left: 60}
	p.SegmentInset = 0.1
	p.SegmentRatio = 0.8
	p.StageBand = 40
	p.StageLineOffset = 10
	p.StageLabelOffset = 35
	return p
}

// withDefaults returns p with every zero field taken from base. A scale
// range with MinScale above MaxScale is replaced by base's range.
func (p Params) withDefaults(base Params) Params {
	fill := func(v *float64, d float64) {
		if *v == 0 {
			*v = d
		}
	}
	fill(&p.ParallaxStrength, base.ParallaxStrength)
	fill(&p.PointRadius, base.PointRadius)
	fill(&p.StageStep, base.StageStep)
	fill(&p.DepthStep, base.DepthStep)
	fill(&p.MinHitRadius, base.MinHitRadius)
	fill(&p.EaseFactor, base.EaseFactor)
	if p.Padding == (Insets{}) {
		p.Padding = base.Padding
	}
	fill(&p.SegmentInset, base.SegmentInset)
	fill(&p.SegmentRatio, base.SegmentRatio)
	fill(&p.StageBand, base.StageBand)
	fill(&p.StageLineOffset, base.StageLineOffset)
	fill(&p.StageLabelOffset, base.StageLabelOffset)
	fill(&p.MinScale, base.MinScale)
	fill(&p.MaxScale, base.MaxScale)
	fill(&p.ZoomStep, base.ZoomStep)
	if p.MinScale > p.MaxScale {
		p.MinScale, p.MaxScale = base.MinScale, base.MaxScale
	}
	return p
}

// paramField describes one live-tunable parameter.
type paramField struct {
	ptr      func(p *Params) *float64
	positive bool
}

var paramFields = map[string]paramField{
	"parallaxStrength": {ptr: func(p *Params) *float64 { return &p.ParallaxStrength }},
	"pointRadius":      {ptr: func(p *Params) *float64 { return &p.PointRadius }, positive: true},
	"stageStep":        {ptr: func(p *Params) *float64 { return &p.StageStep }, positive: true},
	"depthStep":        {ptr: func(p *Params) *float64 { return &p.DepthStep }, positive: true},
	"minHitRadius":     {ptr: func(p *Params) *float64 { return &p.MinHitRadius }},
	"easeFactor":       {ptr: func(p *Params) *float64 { return &p.EaseFactor }, positive: true},
}

// ParamKeys returns the live-tunable parameter keys in sorted order.
func ParamKeys() []string {
	keys := make([]string, 0, len(paramFields))
	for k := range paramFields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot returns the live-tunable parameters as a key-value map.
func (p Params) Snapshot() map[string]float64 {
	out := make(map[string]float64, len(paramFields))
	for k, f := range paramFields {
		out[k] = *f.ptr(&p)
	}
	return out
}

// Apply sets every recognised key in values and returns the keys it
// ignored, sorted. Unknown keys, non-finite values and non-positive values
// for size-like keys are ignored.
func (p *Params) Apply(values map[string]float64) (ignored []string) {
	for k, v := range values {
		f, ok := paramFields[k]
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) || (f.positive && v <= 0) {
			ignored = append(ignored, k)
			continue
		}
		*f.ptr(p) = v
	}
	sort.Strings(ignored)
	return ignored
}
