package vitrine

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNewScene(t *testing.T) {
	s := NewScene()
	if s.Root() == nil {
		t.Fatal("Root should not be nil")
	}
	if s.Root().Type != NodeTypeContainer {
		t.Error("Root should be a container")
	}
	if s.Tick() != 0 {
		t.Errorf("Tick = %d, want 0", s.Tick())
	}
}

func TestSceneSetDebugMode(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	if !s.DebugMode() || !globalDebug {
		t.Error("debug mode should be on")
	}
	s.SetDebugMode(false)
	if s.DebugMode() || globalDebug {
		t.Error("debug mode should be off")
	}
}

// --- Tick loop ---

type traceSystem struct {
	name  string
	trace *[]string
	done  bool
}

func (s *traceSystem) Update(dt float64) { *s.trace = append(*s.trace, s.name) }

type tracePoller struct{ trace *[]string }

func (p tracePoller) Poll() { *p.trace = append(*p.trace, "poll") }

type finishingSystem struct {
	traceSystem
}

func (s *finishingSystem) Finished() bool { return s.done }

func TestSceneUpdateOrder(t *testing.T) {
	s := NewScene()
	var trace []string
	s.AddPoller(tracePoller{&trace})
	s.AddSystem(&traceSystem{name: "a", trace: &trace})
	s.AddSystem(&traceSystem{name: "b", trace: &trace})
	s.SetUpdateFunc(func() error {
		trace = append(trace, "func")
		return nil
	})

	if err := s.Update(tickDT); err != nil {
		t.Fatal(err)
	}
	want := []string{"poll", "a", "b", "func"}
	if len(trace) != len(want) {
		t.Fatalf("trace = %v, want %v", trace, want)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Errorf("trace[%d] = %q, want %q", i, trace[i], want[i])
		}
	}
	if s.Tick() != 1 {
		t.Errorf("Tick = %d, want 1", s.Tick())
	}
}

func TestSceneUpdateFuncError(t *testing.T) {
	s := NewScene()
	want := errors.New("stop")
	s.SetUpdateFunc(func() error { return want })
	if err := s.Update(tickDT); !errors.Is(err, want) {
		t.Errorf("Update() = %v, want %v", err, want)
	}
}

func TestSceneDropsFinishedSystems(t *testing.T) {
	s := NewScene()
	var trace []string
	fin := &finishingSystem{traceSystem{name: "fin", trace: &trace}}
	keep := &traceSystem{name: "keep", trace: &trace}
	s.AddSystem(fin)
	s.AddSystem(keep)

	_ = s.Update(tickDT)
	if len(s.Systems()) != 2 {
		t.Fatalf("systems = %d, want 2", len(s.Systems()))
	}
	fin.done = true
	_ = s.Update(tickDT)
	if len(s.Systems()) != 1 || s.Systems()[0] != System(keep) {
		t.Errorf("systems = %v, want only keep", s.Systems())
	}
}

func TestSceneRemoveSystem(t *testing.T) {
	s := NewScene()
	var trace []string
	a := &traceSystem{name: "a", trace: &trace}
	b := &traceSystem{name: "b", trace: &trace}
	s.AddSystem(a)
	s.AddSystem(b)
	s.RemoveSystem(a)
	_ = s.Update(tickDT)
	if len(trace) != 1 || trace[0] != "b" {
		t.Errorf("trace = %v, want [b]", trace)
	}
}

// --- Instantiate / Destroy ---

func TestSceneInstantiate(t *testing.T) {
	s := NewScene()
	tmpl := NewMesh("bust", BoxMesh(mgl64.Vec3{1, 1, 1}))
	pose := NewPose(mgl64.Vec3{1, 2, 3}, 45)

	inst := s.Instantiate(tmpl, pose)
	if inst == tmpl {
		t.Fatal("Instantiate returned the template")
	}
	if inst.Parent != s.Root() {
		t.Error("instance should be a root child")
	}
	if inst.LocalPose() != pose {
		t.Errorf("pose = %v, want %v", inst.LocalPose(), pose)
	}
	if tmpl.Parent != nil || tmpl.Position != (mgl64.Vec3{}) {
		t.Error("template was modified")
	}

	s.Destroy(inst)
	if !inst.IsDisposed() || s.Root().NumChildren() != 0 {
		t.Error("Destroy should detach and dispose")
	}
	s.Destroy(nil)
}

// --- Hit testing ---

func TestSceneHitTest(t *testing.T) {
	s := NewScene()
	plain := NewMesh("plain", BoxMesh(mgl64.Vec3{1, 1, 1}))
	plain.Position = mgl64.Vec3{0, -0.5, -2}
	target := NewMesh("target", BoxMesh(mgl64.Vec3{1, 1, 1}))
	target.Position = mgl64.Vec3{0, -0.5, -5}
	target.Interactable = true
	s.Root().AddChild(plain)
	s.Root().AddChild(target)

	if got := s.HitTest(mgl64.Vec3{}, AxisForward); got != target {
		t.Errorf("HitTest = %v, want target behind non-interactable part", got)
	}
	if got := s.HitTest(mgl64.Vec3{}, mgl64.Vec3{}); got != nil {
		t.Errorf("HitTest with zero direction = %v, want nil", got)
	}
	if got := s.HitTest(mgl64.Vec3{}, AxisUp); got != nil {
		t.Errorf("HitTest upward = %v, want nil", got)
	}
}

func TestSceneHitTestInheritsInteractable(t *testing.T) {
	s := NewScene()
	proxy := NewContainer("proxy")
	proxy.Interactable = true
	body := NewMesh("body", BoxMesh(mgl64.Vec3{1, 1, 1}))
	body.Position = mgl64.Vec3{0, -0.5, -3}
	proxy.AddChild(body)
	s.Root().AddChild(proxy)

	if got := s.HitTest(mgl64.Vec3{}, AxisForward.Mul(4)); got != body {
		t.Errorf("HitTest = %v, want body", got)
	}
	proxy.Visible = false
	if got := s.HitTest(mgl64.Vec3{}, AxisForward); got != nil {
		t.Errorf("HitTest on hidden proxy = %v, want nil", got)
	}
}
