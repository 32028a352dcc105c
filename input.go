package vitrine

import "github.com/go-gl/mathgl/mgl64"

// --- Constants ---

const (
	// DefaultDeadZone is the squared stick magnitude below which a rotate
	// sample is treated as zero.
	DefaultDeadZone = 1e-4

	// rayActivateThreshold is the trigger value above which a teleport ray
	// is shown.
	rayActivateThreshold = 0.1
)

// AxisSource samples a continuous two-axis control, each axis in [-1, 1].
// Positive Y is up/forward.
type AxisSource interface {
	Axis() mgl64.Vec2
}

// ButtonSource samples a discrete or analog control. Value is in [0, 1];
// JustPressed reports the rising edge within the current tick only.
type ButtonSource interface {
	Value() float64
	JustPressed() bool
}

// Poller is implemented by sources that latch per-tick state. Scene calls
// Poll at the start of every tick, before scripts and systems run.
type Poller interface {
	Poll()
}

// AxisFunc adapts a function to AxisSource.
type AxisFunc func() mgl64.Vec2

// Axis calls f.
func (f AxisFunc) Axis() mgl64.Vec2 { return f() }

// StaticAxis is an AxisSource that always reports the same sample.
type StaticAxis mgl64.Vec2

// Axis returns the stored sample.
func (a StaticAxis) Axis() mgl64.Vec2 { return mgl64.Vec2(a) }

// CombineAxes returns an AxisSource summing every non-nil source with each
// component clamped to [-1, 1]. Lets a gamepad stick and keyboard keys drive
// the same control.
func CombineAxes(sources ...AxisSource) AxisSource {
	return AxisFunc(func() mgl64.Vec2 {
		var sum mgl64.Vec2
		for _, s := range sources {
			if s == nil {
				continue
			}
			sum = sum.Add(s.Axis())
		}
		return mgl64.Vec2{
			mgl64.Clamp(sum[0], -1, 1),
			mgl64.Clamp(sum[1], -1, 1),
		}
	})
}

// anyButton ORs several buttons together.
type anyButton []ButtonSource

// AnyButton returns a ButtonSource whose value is the largest of its inputs
// and which is just pressed when any input is.
func AnyButton(sources ...ButtonSource) ButtonSource {
	return anyButton(sources)
}

func (b anyButton) Value() float64 {
	v := 0.0
	for _, s := range b {
		if s != nil && s.Value() > v {
			v = s.Value()
		}
	}
	return v
}

func (b anyButton) JustPressed() bool {
	for _, s := range b {
		if s != nil && s.JustPressed() {
			return true
		}
	}
	return false
}

// lenSqr returns the squared magnitude of a stick sample.
func lenSqr(v mgl64.Vec2) float64 {
	return v[0]*v[0] + v[1]*v[1]
}
