package techcanvas

import "testing"

func TestFrameTaskRunsUntilDone(t *testing.T) {
	remaining := 3
	task := newFrameTask(func() bool {
		remaining--
		return remaining > 0
	})

	if task.tick() {
		t.Fatal("unscheduled task ran")
	}
	task.Schedule()
	task.Schedule()
	ran := 0
	for task.tick() {
		ran++
		if ran > 10 {
			t.Fatal("task did not stop")
		}
	}
	if ran != 3 {
		t.Errorf("ran %d steps, want 3", ran)
	}
	if task.Scheduled() {
		t.Error("task still scheduled after completion")
	}
}

func TestFrameTaskCancel(t *testing.T) {
	calls := 0
	task := newFrameTask(func() bool {
		calls++
		return true
	})
	task.Schedule()
	task.tick()
	task.Cancel()
	task.tick()
	task.tick()
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
