package vitrine

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GamepadInput reads the first connected gamepad that has a standard layout.
// Register it with Scene.AddPoller so hot-plugged pads are picked up.
type GamepadInput struct {
	id        ebiten.GamepadID
	connected bool
	ids       []ebiten.GamepadID
}

// NewGamepadInput returns a GamepadInput with no pad selected until the
// first Poll.
func NewGamepadInput() *GamepadInput {
	return &GamepadInput{}
}

// Poll selects the first gamepad with a standard layout.
func (g *GamepadInput) Poll() {
	g.ids = ebiten.AppendGamepadIDs(g.ids[:0])
	g.connected = false
	for _, id := range g.ids {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			g.id = id
			g.connected = true
			return
		}
	}
}

// Connected reports whether a usable gamepad was found on the last Poll.
func (g *GamepadInput) Connected() bool {
	return g.connected
}

// LeftStick returns the left stick as an AxisSource.
func (g *GamepadInput) LeftStick() AxisSource {
	return g.Stick(ebiten.StandardGamepadAxisLeftStickHorizontal, ebiten.StandardGamepadAxisLeftStickVertical)
}

// RightStick returns the right stick as an AxisSource.
func (g *GamepadInput) RightStick() AxisSource {
	return g.Stick(ebiten.StandardGamepadAxisRightStickHorizontal, ebiten.StandardGamepadAxisRightStickVertical)
}

// Stick returns a pair of standard axes as an AxisSource. The standard layout
// reports up as negative; the vertical axis is flipped so up is positive.
func (g *GamepadInput) Stick(horizontal, vertical ebiten.StandardGamepadAxis) AxisSource {
	return AxisFunc(func() mgl64.Vec2 {
		if !g.connected {
			return mgl64.Vec2{}
		}
		return mgl64.Vec2{
			ebiten.StandardGamepadAxisValue(g.id, horizontal),
			-ebiten.StandardGamepadAxisValue(g.id, vertical),
		}
	})
}

// Button returns a standard-layout button as a ButtonSource.
func (g *GamepadInput) Button(b ebiten.StandardGamepadButton) ButtonSource {
	return gamepadButton{pad: g, button: b}
}

type gamepadButton struct {
	pad    *GamepadInput
	button ebiten.StandardGamepadButton
}

func (b gamepadButton) Value() float64 {
	if !b.pad.connected {
		return 0
	}
	return ebiten.StandardGamepadButtonValue(b.pad.id, b.button)
}

func (b gamepadButton) JustPressed() bool {
	return b.pad.connected && inpututil.IsStandardGamepadButtonJustPressed(b.pad.id, b.button)
}

// KeyAxis maps four keys onto a stick.
type KeyAxis struct {
	Left, Right, Down, Up ebiten.Key
}

// Axis returns the stick sample implied by the held keys.
func (k KeyAxis) Axis() mgl64.Vec2 {
	var v mgl64.Vec2
	if ebiten.IsKeyPressed(k.Left) {
		v[0]--
	}
	if ebiten.IsKeyPressed(k.Right) {
		v[0]++
	}
	if ebiten.IsKeyPressed(k.Down) {
		v[1]--
	}
	if ebiten.IsKeyPressed(k.Up) {
		v[1]++
	}
	return v
}

// KeyButton maps a keyboard key onto a ButtonSource.
type KeyButton ebiten.Key

// Value returns 1 while the key is held.
func (k KeyButton) Value() float64 {
	if ebiten.IsKeyPressed(ebiten.Key(k)) {
		return 1
	}
	return 0
}

// JustPressed reports whether the key went down this tick.
func (k KeyButton) JustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.Key(k))
}
