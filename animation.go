package vitrine

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields of a Node simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenScale,
// TweenYaw) and either call Update(dt) each tick or register it with
// Scene.AddSystem, which drops it once Done. If the target node is disposed,
// the group stops immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Node
	apply  func() // runs after fields are written, if set
	Done   bool
	// Loop restarts the tweens from the beginning instead of finishing.
	Loop bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If the target node has been disposed, Done is set to true and no
// writes occur.
func (g *TweenGroup) Update(dt float64) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(float32(dt))
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	if g.apply != nil {
		g.apply()
	}
	if allDone && g.Loop {
		for i := 0; i < g.count; i++ {
			g.tweens[i].Reset()
		}
		return
	}
	g.Done = allDone
}

// Finished reports whether the group has completed. Implements the
// completion hook Scene uses to drop finished systems.
func (g *TweenGroup) Finished() bool {
	return g.Done
}

// TweenPosition creates a TweenGroup that moves node.Position to the target
// over the specified duration using the easing function.
func TweenPosition(node *Node, to mgl64.Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 3, target: node}
	for i := 0; i < 3; i++ {
		g.tweens[i] = gween.New(float32(node.Position[i]), float32(to[i]), duration, fn)
		g.fields[i] = &node.Position[i]
	}
	return g
}

// TweenScale creates a TweenGroup that animates node.Scale to the target.
func TweenScale(node *Node, to mgl64.Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 3, target: node}
	for i := 0; i < 3; i++ {
		g.tweens[i] = gween.New(float32(node.Scale[i]), float32(to[i]), duration, fn)
		g.fields[i] = &node.Scale[i]
	}
	return g
}

// TweenYaw creates a TweenGroup that turns node about the up axis from
// fromDeg to toDeg degrees, replacing node.Rotation on every update.
func TweenYaw(node *Node, fromDeg, toDeg float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	yaw := fromDeg
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(fromDeg), float32(toDeg), duration, fn)
	g.fields[0] = &yaw
	g.apply = func() {
		node.Rotation = mgl64.QuatRotate(mgl64.DegToRad(yaw), AxisUp)
	}
	return g
}
