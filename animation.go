package techcanvas

// frameTask is a cancellable repeating task driven by the game loop. Once
// scheduled, tick runs step once per frame until step reports that no more
// work is needed or the task is cancelled.
//
// There is no global animation manager. The owner calls tick from its
// Update and Cancel on teardown.
type frameTask struct {
	step      func() bool
	scheduled bool
	ticks     int
}

func newFrameTask(step func() bool) *frameTask {
	return &frameTask{step: step}
}

// Schedule arms the task. Scheduling an armed task is a no-op, so at most one
// step runs per frame.
func (t *frameTask) Schedule() {
	t.scheduled = true
}

// Cancel disarms the task. No step runs until the next Schedule.
func (t *frameTask) Cancel() {
	t.scheduled = false
}

// Scheduled reports whether the task will run on the next tick.
func (t *frameTask) Scheduled() bool {
	return t.scheduled
}

// tick runs one step if armed and disarms the task when the step reports
// convergence. Reports whether a step ran.
func (t *frameTask) tick() bool {
	if !t.scheduled {
		return false
	}
	t.ticks++
	if !t.step() {
		t.scheduled = false
	}
	return true
}
