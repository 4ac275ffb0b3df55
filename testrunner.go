package techcanvas

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string             `yaml:"action"`
	Label  string             `yaml:"label,omitempty"`
	X      float64            `yaml:"x,omitempty"`
	Y      float64            `yaml:"y,omitempty"`
	DY     float64            `yaml:"dy,omitempty"`
	FromX  float64            `yaml:"fromX,omitempty"`
	FromY  float64            `yaml:"fromY,omitempty"`
	ToX    float64            `yaml:"toX,omitempty"`
	ToY    float64            `yaml:"toY,omitempty"`
	Frames int                `yaml:"frames,omitempty"`
	Values map[string]float64 `yaml:"values,omitempty"`
	Stage  string             `yaml:"stage,omitempty"`
}

// testScript is the top-level structure for a test script.
type testScript struct {
	Steps []testStep `yaml:"steps"`
}

var knownActions = map[string]bool{
	"move": true, "leave": true, "wheel": true, "press": true, "release": true,
	"click": true, "drag": true, "wait": true, "screenshot": true,
	"set": true, "reset": true, "focus": true,
}

// TestRunner sequences injected input, parameter changes and screenshots
// across frames for automated visual testing. Attach it to a Canvas with
// SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a YAML (or JSON) test script and returns a
// TestRunner ready to be attached to a Canvas.
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script testScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, errors.New("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the canvas. The runner advances
// once per Update, before input is processed.
func (c *Canvas) SetTestRunner(runner *TestRunner) {
	c.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Canvas.Update.
func (r *TestRunner) step(c *Canvas) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(c.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "move":
		c.InjectMove(st.X, st.Y)
	case "leave":
		c.InjectLeave()
	case "wheel":
		c.InjectWheel(st.X, st.Y, st.DY)
	case "press":
		c.InjectPress(st.X, st.Y)
	case "release":
		c.InjectRelease(st.X, st.Y)
	case "click":
		c.InjectClick(st.X, st.Y)
	case "drag":
		c.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		c.Screenshot(st.Label)
	case "set":
		c.handleDebugEvent(DebugSet{Values: st.Values})
	case "reset":
		c.handleDebugEvent(DebugReset{})
	case "focus":
		c.FocusStage(st.Stage)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(c.injectQueue) == 0 {
		r.done = true
	}
}
