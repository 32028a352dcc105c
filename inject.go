package vitrine

import "github.com/go-gl/mathgl/mgl64"

// buttonPressPoint is the value at or above which a virtual button counts as
// pressed.
const buttonPressPoint = 0.5

type virtualButton struct {
	value   float64
	pressed bool
	edge    bool   // went from released to pressed
	edgeEnd uint64 // last tick (poll count) that reports edge
}

// hold is a timed virtual input that reverts to rest once tick end has
// passed.
type hold struct {
	name   string
	button bool
	end    uint64
}

// VirtualInput is a set of named axes and buttons driven by code rather than
// hardware. Scripts, tests, and headless runs use it in place of a gamepad.
// Register it with Scene.AddPoller so rising edges and timed holds advance
// once per tick.
//
// Changes made between ticks take effect on the next tick: a Press followed
// by Scene.Update is seen by that update's systems as just pressed. Changes
// made by a ScriptRunner during a tick take effect on the current tick.
type VirtualInput struct {
	axes    map[string]mgl64.Vec2
	buttons map[string]*virtualButton
	holds   []hold

	polls   uint64 // completed Poll calls; tick n runs after the nth poll
	midTick bool   // set while a ScriptRunner step is applying changes
}

// NewVirtualInput returns an input set with every control at rest.
func NewVirtualInput() *VirtualInput {
	return &VirtualInput{
		axes:    make(map[string]mgl64.Vec2),
		buttons: make(map[string]*virtualButton),
	}
}

// SetAxis sets the named axis until changed again.
func (v *VirtualInput) SetAxis(name string, x, y float64) {
	v.axes[name] = mgl64.Vec2{x, y}
}

// HoldAxis sets the named axis for the given number of ticks, starting with
// the first tick that sees it, after which it returns to zero. frames below 1
// is treated as 1.
func (v *VirtualInput) HoldAxis(name string, x, y float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	v.SetAxis(name, x, y)
	v.holds = append(v.holds, hold{name: name, end: v.firstTick() + uint64(frames) - 1})
}

// SetButton sets the named button's analog value. Values at or above 0.5
// count as pressed.
func (v *VirtualInput) SetButton(name string, value float64) {
	b := v.button(name)
	was := b.pressed
	b.value = value
	b.pressed = value >= buttonPressPoint
	if b.pressed && !was {
		b.edge = true
		b.edgeEnd = v.firstTick()
	}
}

// Press fully presses the named button.
func (v *VirtualInput) Press(name string) {
	v.SetButton(name, 1)
}

// Release lets go of the named button.
func (v *VirtualInput) Release(name string) {
	v.SetButton(name, 0)
}

// Tap presses the named button for a single tick.
func (v *VirtualInput) Tap(name string) {
	v.Press(name)
	v.holds = append(v.holds, hold{name: name, button: true, end: v.firstTick()})
}

// Busy reports whether any timed hold is still running.
func (v *VirtualInput) Busy() bool {
	return len(v.holds) > 0
}

// Poll starts a new tick: edges raised for an earlier tick expire and timed
// holds that have run out return to rest.
func (v *VirtualInput) Poll() {
	v.polls++
	for _, b := range v.buttons {
		if b.edge && b.edgeEnd < v.polls {
			b.edge = false
		}
	}
	kept := v.holds[:0]
	for _, h := range v.holds {
		if h.end >= v.polls {
			kept = append(kept, h)
			continue
		}
		if h.button {
			v.Release(h.name)
		} else {
			v.SetAxis(h.name, 0, 0)
		}
	}
	v.holds = kept
}

// firstTick returns the tick on which a change made now is first seen.
func (v *VirtualInput) firstTick() uint64 {
	if v.midTick {
		return v.polls
	}
	return v.polls + 1
}

// during applies fn as part of the current tick.
func (v *VirtualInput) during(fn func()) {
	v.midTick = true
	defer func() { v.midTick = false }()
	fn()
}

// Axis returns a live AxisSource reading the named axis.
func (v *VirtualInput) Axis(name string) AxisSource {
	return AxisFunc(func() mgl64.Vec2 { return v.axes[name] })
}

// Button returns a live ButtonSource reading the named button.
func (v *VirtualInput) Button(name string) ButtonSource {
	return virtualButtonRef{in: v, name: name}
}

func (v *VirtualInput) button(name string) *virtualButton {
	b, ok := v.buttons[name]
	if !ok {
		b = &virtualButton{}
		v.buttons[name] = b
	}
	return b
}

type virtualButtonRef struct {
	in   *VirtualInput
	name string
}

func (r virtualButtonRef) Value() float64 {
	if b, ok := r.in.buttons[r.name]; ok {
		return b.value
	}
	return 0
}

func (r virtualButtonRef) JustPressed() bool {
	b, ok := r.in.buttons[r.name]
	return ok && b.edge
}
