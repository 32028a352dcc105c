package vitrine

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	Name   string  `json:"name,omitempty"`  // axis or button name, or trigger title for select
	Label  string  `json:"label,omitempty"` // screenshot label
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Value  float64 `json:"value,omitempty"` // analog button value for press; 0 means fully pressed
	Frames int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure for an input script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a JSON input script through a VirtualInput and a
// Selector, one step per tick. Attach it with Scene.SetScriptRunner.
//
// Actions: select (name = trigger title), axis (name, x, y, frames), press
// (name, optional value), release (name), tap (name), wait (frames),
// screenshot (label).
type ScriptRunner struct {
	steps     []scriptStep
	input     *VirtualInput
	selector  *Selector
	cursor    int
	waitCount int
	done      bool
	err       error
}

// LoadScript parses a JSON input script and returns a runner ready to be
// attached to a Scene. selector may be nil if the script never selects.
func LoadScript(jsonData []byte, input *VirtualInput, selector *Selector) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	if input == nil {
		return nil, fmt.Errorf("parse script: %w: no virtual input", ErrConfiguration)
	}
	for i, st := range sc.Steps {
		if err := validateStep(st, selector); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
	}
	return &ScriptRunner{steps: sc.Steps, input: input, selector: selector}, nil
}

func validateStep(st scriptStep, selector *Selector) error {
	switch st.Action {
	case "select":
		if selector == nil {
			return fmt.Errorf("select needs a selector")
		}
		if st.Name == "" {
			return fmt.Errorf("select needs a name")
		}
	case "axis", "press", "release", "tap":
		if st.Name == "" {
			return fmt.Errorf("%s needs a name", st.Action)
		}
	case "wait", "screenshot":
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

// Done reports whether every step has executed and all holds and waits
// have run out.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Err returns the first error raised by a select step.
func (r *ScriptRunner) Err() error {
	return r.err
}

// step advances the runner by one tick. Called from Scene.Update.
func (r *ScriptRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Let timed holds run out before advancing.
	if r.input.Busy() {
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
	r.input.during(func() { r.apply(s, st) })
}

// apply executes one step as part of the current tick.
func (r *ScriptRunner) apply(s *Scene, st scriptStep) {
	switch st.Action {
	case "select":
		if err := r.selectTrigger(st.Name); err != nil && r.err == nil {
			r.err = err
		}
	case "axis":
		r.input.HoldAxis(st.Name, st.X, st.Y, st.Frames)
	case "press":
		v := st.Value
		if v == 0 {
			v = 1
		}
		r.input.SetButton(st.Name, v)
	case "release":
		r.input.Release(st.Name)
	case "tap":
		r.input.Tap(st.Name)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	case "screenshot":
		s.Screenshot(st.Label)
	}
}

func (r *ScriptRunner) selectTrigger(title string) error {
	t, ok := r.selector.Trigger(title)
	if !ok {
		return fmt.Errorf("script: no trigger %q", title)
	}
	return t.Select()
}
