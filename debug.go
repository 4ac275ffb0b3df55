package techcanvas

import (
	"slices"
	"sort"

	"go.uber.org/zap"
)

// DebugEvent is a message on the debug parameter channel.
type DebugEvent interface {
	debugEvent()
}

// DebugSet asks listeners to apply the given parameter values. Unknown
// keys are ignored.
type DebugSet struct {
	Values map[string]float64
}

// DebugRequest asks listeners to publish a DebugSnapshot of their current
// values.
type DebugRequest struct{}

// DebugReset asks listeners to restore their built-in defaults.
type DebugReset struct{}

// DebugSnapshot carries a listener's current parameter values.
type DebugSnapshot struct {
	Values map[string]float64
}

func (DebugSet) debugEvent()      {}
func (DebugRequest) debugEvent()  {}
func (DebugReset) debugEvent()    {}
func (DebugSnapshot) debugEvent() {}

// DebugBus is a synchronous broadcast channel for live parameter tuning.
// Publish delivers to every subscriber before returning; subscribers may
// publish from inside a handler. Like the Canvas it is meant for the game
// loop goroutine only.
type DebugBus struct {
	subs   []handler[DebugEvent]
	nextID uint32
}

// NewDebugBus creates an empty bus.
func NewDebugBus() *DebugBus {
	return &DebugBus{}
}

// Subscribe registers fn for every published event.
func (b *DebugBus) Subscribe(fn func(DebugEvent)) CallbackHandle {
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, handler[DebugEvent]{id: id, fn: fn})
	return CallbackHandle{id: id, remove: func(id uint32) {
		b.subs = removeHandler(b.subs, id)
	}}
}

// Subscribers returns the number of active subscriptions.
func (b *DebugBus) Subscribers() int {
	return len(b.subs)
}

// Publish delivers evt to the subscribers registered at the time of the
// call.
func (b *DebugBus) Publish(evt DebugEvent) {
	subs := append([]handler[DebugEvent](nil), b.subs...)
	dispatch(subs, evt)
}

// handleDebugEvent applies debug channel events to the canvas.
func (c *Canvas) handleDebugEvent(evt DebugEvent) {
	switch e := evt.(type) {
	case DebugSet:
		values, derived := c.splitDerived(e.Values)
		ignored := append(c.params.Apply(values), derived...)
		sort.Strings(ignored)
		if len(ignored) > 0 {
			c.log.Debug("ignored debug parameters", zap.Strings("keys", ignored))
		}
		if len(ignored) == len(e.Values) {
			return
		}
		c.applyParams()
	case DebugReset:
		c.params = c.defaults
		c.applyParams()
	case DebugRequest:
		if c.opts.Bus != nil {
			c.opts.Bus.Publish(DebugSnapshot{Values: c.snapshot()})
		}
	}
}

// fitDerivedKeys are computed from the surface size in fit mode and cannot
// be tuned there.
var fitDerivedKeys = []string{"depthStep", "stageStep"}

// snapshot returns the parameters that currently affect the canvas.
func (c *Canvas) snapshot() map[string]float64 {
	out := c.params.Snapshot()
	if c.opts.Fit {
		for _, k := range fitDerivedKeys {
			delete(out, k)
		}
	}
	return out
}

// splitDerived removes the fit-derived keys from values in fit mode and
// returns them separately.
func (c *Canvas) splitDerived(values map[string]float64) (rest map[string]float64, derived []string) {
	if !c.opts.Fit {
		return values, nil
	}
	rest = make(map[string]float64, len(values))
	for k, v := range values {
		if slices.Contains(fitDerivedKeys, k) {
			derived = append(derived, k)
			continue
		}
		rest[k] = v
	}
	return rest, derived
}

// SetParams replaces the tunable parameters and re-renders. Zero fields
// keep their built-in default.
func (c *Canvas) SetParams(p Params) {
	c.params = p.withDefaults(c.base)
	c.applyParams()
}

// applyParams propagates parameter changes to the layout and camera, then
// re-renders and re-tests hover against the new geometry.
func (c *Canvas) applyParams() {
	c.camera.MinScale = c.params.MinScale
	c.camera.MaxScale = c.params.MaxScale
	c.layout = c.computeLayout()
	c.render()
	if c.pointer.inside && !c.pointer.dragging {
		if c.setHover(c.HitTest(c.pointer.x, c.pointer.y).Hover()) {
			c.render()
		}
	}
	c.log.Debug("parameters applied", zap.Any("values", c.snapshot()))
}
