package vitrine

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// System is advanced once per tick by Scene.Update, in registration order.
type System interface {
	Update(dt float64)
}

// finisher is implemented by systems that can complete, such as tweens.
// Completed systems are dropped after the tick they finish in.
type finisher interface {
	Finished() bool
}

// Scene is the top-level object that owns the node tree and drives the tick
// loop: pollers first, then the script runner, then systems, then the
// optional update func.
type Scene struct {
	root  *Node
	debug bool

	pollers    []Poller
	systems    []System
	runner     *ScriptRunner
	updateFunc func() error
	tick       uint64

	// ClearColor fills the screen before drawing.
	ClearColor Color

	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir   string
	screenshotQueue []string
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	return &Scene{
		root:          NewContainer("root"),
		ClearColor:    Color{0.08, 0.08, 0.1, 1},
		ScreenshotDir: "screenshots",
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// AddPoller registers an input source that latches state each tick.
func (s *Scene) AddPoller(p Poller) {
	s.pollers = append(s.pollers, p)
}

// AddSystem registers a per-tick system. Systems run in registration order.
func (s *Scene) AddSystem(sys System) {
	s.systems = append(s.systems, sys)
}

// RemoveSystem unregisters a system. sys must be comparable (typically a
// pointer).
func (s *Scene) RemoveSystem(sys System) {
	for i, x := range s.systems {
		if x == sys {
			copy(s.systems[i:], s.systems[i+1:])
			s.systems[len(s.systems)-1] = nil
			s.systems = s.systems[:len(s.systems)-1]
			return
		}
	}
}

// Systems returns the registered systems. The returned slice MUST NOT be mutated.
func (s *Scene) Systems() []System {
	return s.systems
}

// SetUpdateFunc sets a callback run at the end of every tick. A non-nil
// error is returned from Update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetScriptRunner attaches a runner whose step executes each tick after
// input polling and before systems.
func (s *Scene) SetScriptRunner(r *ScriptRunner) {
	s.runner = r
}

// ScriptRunner returns the attached runner, or nil.
func (s *Scene) ScriptRunner() *ScriptRunner {
	return s.runner
}

// Tick returns the number of completed Update calls.
func (s *Scene) Tick() uint64 {
	return s.tick
}

// Update advances the scene by one tick of dt seconds.
func (s *Scene) Update(dt float64) error {
	for _, p := range s.pollers {
		p.Poll()
	}
	if s.runner != nil {
		s.runner.step(s)
	}
	for _, sys := range s.systems {
		sys.Update(dt)
	}
	kept := s.systems[:0]
	for _, sys := range s.systems {
		if f, ok := sys.(finisher); ok && f.Finished() {
			continue
		}
		kept = append(kept, sys)
	}
	for i := len(kept); i < len(s.systems); i++ {
		s.systems[i] = nil
	}
	s.systems = kept
	s.tick++
	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

// Instantiate clones template, places the clone at pose under the root, and
// returns it. The template itself is not modified.
func (s *Scene) Instantiate(template *Node, pose Pose) *Node {
	if s.debug {
		debugCheckDisposed(template, "Instantiate (template)")
	}
	n := template.Clone()
	n.SetLocalPose(pose)
	s.root.AddChild(n)
	return n
}

// Destroy detaches and disposes n and its subtree.
func (s *Scene) Destroy(n *Node) {
	if n == nil {
		return
	}
	n.Dispose()
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics and deep trees are logged.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// DebugMode reports whether debug mode is on for this scene.
func (s *Scene) DebugMode() bool {
	return s.debug
}

// --- Hit testing ---

// HitTest casts a ray and returns the nearest visible renderable part that
// is interactable or has an interactable ancestor, or nil.
func (s *Scene) HitTest(origin, dir mgl64.Vec3) *Node {
	if dir.Len() == 0 {
		return nil
	}
	dir = dir.Normalize()
	var best *Node
	bestT := math.Inf(1)
	var visit func(n *Node, interactable bool)
	visit = func(n *Node, interactable bool) {
		if !n.Visible || n.IsDisposed() {
			return
		}
		interactable = interactable || n.Interactable
		if interactable && n.IsRenderable() {
			if t, ok := worldBounds(n).IntersectRay(origin, dir); ok && t < bestT {
				best, bestT = n, t
			}
		}
		for _, c := range n.children {
			visit(c, interactable)
		}
	}
	visit(s.root, false)
	return best
}
