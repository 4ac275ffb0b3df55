package content

import (
	"errors"
	"fmt"
	"math"

	"github.com/phanxgames/techcanvas"
)

// Validate reports every problem in the dataset that makes a technology
// undrawable or ambiguous. The canvas tolerates all of them, so callers
// usually log the result instead of failing.
func (d Dataset) Validate() error {
	cat := techcanvas.NewCatalog(d.StagesOrDefault())
	var errs []error

	seenStage := make(map[string]bool, len(d.Stages))
	for _, s := range d.Stages {
		if s.ID == "" {
			errs = append(errs, fmt.Errorf("stage with order %d: empty id", s.Order))
			continue
		}
		if seenStage[s.ID] {
			errs = append(errs, fmt.Errorf("stage %q: duplicate id", s.ID))
		}
		seenStage[s.ID] = true
	}

	seen := make(map[string]bool, len(d.Technologies))
	for i, t := range d.Technologies {
		name := t.Title
		if name == "" {
			name = fmt.Sprintf("#%d", i)
			errs = append(errs, fmt.Errorf("technology %s: empty title", name))
		} else if seen[t.Title] {
			errs = append(errs, fmt.Errorf("technology %q: duplicate title", t.Title))
		}
		seen[t.Title] = true

		if cat.Index(t.Stage) < 0 {
			errs = append(errs, fmt.Errorf("technology %q: unknown stage %q", name, t.Stage))
		}
		if t.Depth < techcanvas.MinDepth || t.Depth > techcanvas.MaxDepth {
			errs = append(errs, fmt.Errorf("technology %q: depth %v out of range [%d, %d]",
				name, t.Depth, techcanvas.MinDepth, techcanvas.MaxDepth))
		}
		if math.IsNaN(t.Mastery) || t.Mastery < 0 || t.Mastery > 1 {
			errs = append(errs, fmt.Errorf("technology %q: mastery %v out of range [0, 1]", name, t.Mastery))
		}
		if t.Position != 0 && (t.Position < techcanvas.MinPosition || t.Position > techcanvas.MaxPosition) {
			errs = append(errs, fmt.Errorf("technology %q: x_position %v out of range [%v, %v]",
				name, t.Position, techcanvas.MinPosition, techcanvas.MaxPosition))
		}
	}
	return errors.Join(errs...)
}
