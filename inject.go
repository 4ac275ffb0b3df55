package techcanvas

type syntheticKind uint8

const (
	syntheticMove syntheticKind = iota
	syntheticLeave
	syntheticWheel
	syntheticPress
	syntheticRelease
)

// syntheticEvent represents a single injected pointer event in screen
// coordinates, processed exactly like real mouse input.
type syntheticEvent struct {
	kind syntheticKind
	x, y float64
	dy   float64
}

// InjectMove queues a pointer move to (x, y). Each queued event is consumed
// by one Update call, during which real mouse input is ignored.
func (c *Canvas) InjectMove(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{kind: syntheticMove, x: x, y: y})
}

// InjectLeave queues the pointer leaving the surface.
func (c *Canvas) InjectLeave() {
	c.injectQueue = append(c.injectQueue, syntheticEvent{kind: syntheticLeave})
}

// InjectWheel queues a wheel event of dy notches at (x, y).
func (c *Canvas) InjectWheel(x, y, dy float64) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{kind: syntheticWheel, x: x, y: y, dy: dy})
}

// InjectPress queues a primary button press at (x, y).
func (c *Canvas) InjectPress(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{kind: syntheticPress, x: x, y: y})
}

// InjectRelease queues a primary button release at (x, y).
func (c *Canvas) InjectRelease(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{kind: syntheticRelease, x: x, y: y})
}

// InjectClick queues a move, press and release at (x, y). Consumes three
// frames.
func (c *Canvas) InjectClick(x, y float64) {
	c.InjectMove(x, y)
	c.InjectPress(x, y)
	c.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), frames-2
// linearly interpolated moves, a move onto (toX, toY) and the release there.
// frames is raised to at least 2.
func (c *Canvas) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	c.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		c.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	c.InjectMove(toX, toY)
	c.InjectRelease(toX, toY)
}

// processInjectedInput pops one event from the inject queue and feeds it to
// the interaction handlers. Reports whether an event was consumed.
func (c *Canvas) processInjectedInput() bool {
	if len(c.injectQueue) == 0 {
		return false
	}
	evt := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]

	switch evt.kind {
	case syntheticMove:
		c.PointerMove(evt.x, evt.y)
	case syntheticLeave:
		c.PointerLeave()
	case syntheticWheel:
		c.Wheel(evt.x, evt.y, evt.dy)
	case syntheticPress:
		c.PointerDown(evt.x, evt.y)
	case syntheticRelease:
		c.PointerUp(evt.x, evt.y)
	}
	return true
}
