package vitrine

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// --- Constructor defaults ---

func TestNewContainerDefaults(t *testing.T) {
	n := NewContainer("container")
	assertNodeDefaults(t, n, "container", NodeTypeContainer)
	if n.IsRenderable() {
		t.Error("container should not be renderable")
	}
}

func TestNewMeshDefaults(t *testing.T) {
	m := BoxMesh(mgl64.Vec3{1, 1, 1})
	n := NewMesh("mesh", m)
	assertNodeDefaults(t, n, "mesh", NodeTypeMesh)
	if n.Mesh != m {
		t.Error("Mesh should be the one passed in")
	}
	if !n.IsRenderable() {
		t.Error("mesh node should be renderable")
	}
}

func assertNodeDefaults(t *testing.T, n *Node, name string, typ NodeType) {
	t.Helper()
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != name {
		t.Errorf("Name = %q, want %q", n.Name, name)
	}
	if n.Type != typ {
		t.Errorf("Type = %d, want %d", n.Type, typ)
	}
	if n.Scale != (mgl64.Vec3{1, 1, 1}) {
		t.Errorf("Scale = %v, want (1, 1, 1)", n.Scale)
	}
	if n.Rotation != mgl64.QuatIdent() {
		t.Errorf("Rotation = %v, want identity", n.Rotation)
	}
	if n.Color != ColorWhite {
		t.Errorf("Color = %v, want white", n.Color)
	}
	if !n.Visible {
		t.Error("Visible should be true")
	}
	if n.Interactable {
		t.Error("Interactable should be false")
	}
}

func TestIsRenderable(t *testing.T) {
	hidden := NewMesh("hidden", BoxMesh(mgl64.Vec3{1, 1, 1}))
	hidden.Visible = false
	tests := []struct {
		name   string
		node   *Node
		expect bool
	}{
		{"container", NewContainer("c"), false},
		{"mesh", NewMesh("m", BoxMesh(mgl64.Vec3{1, 1, 1})), true},
		{"hidden mesh", hidden, false},
		{"nil mesh", NewMesh("nil", nil), false},
		{"no vertices", NewMesh("empty", NewWireMesh(nil, nil)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.IsRenderable(); got != tt.expect {
				t.Errorf("IsRenderable() = %v, want %v", got, tt.expect)
			}
		})
	}
}

// --- Unique IDs ---

func TestUniqueIDs(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	c := NewMesh("c", nil)
	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Errorf("IDs should be unique: %d, %d, %d", a.ID, b.ID, c.ID)
	}
}

// --- AddChild ---

func TestAddChildBasic(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", parent.NumChildren())
	}
	if parent.ChildAt(0) != child {
		t.Error("ChildAt(0) should be child")
	}
}

func TestAddChildReparent(t *testing.T) {
	p1 := NewContainer("p1")
	p2 := NewContainer("p2")
	child := NewContainer("child")

	p1.AddChild(child)
	p2.AddChild(child)
	if p1.NumChildren() != 0 {
		t.Error("p1 should have 0 children after reparent")
	}
	if p2.NumChildren() != 1 {
		t.Error("p2 should have 1 child")
	}
	if child.Parent != p2 {
		t.Error("child.Parent should be p2")
	}
}

func TestAddChildCyclePanic(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	grandchild := NewContainer("grandchild")
	parent.AddChild(child)
	child.AddChild(grandchild)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for cycle, got none")
		}
	}()
	grandchild.AddChild(parent)
}

func TestAddChildSelfPanic(t *testing.T) {
	n := NewContainer("self")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for self-add, got none")
		}
	}()
	n.AddChild(n)
}

func TestAddChildNilPanic(t *testing.T) {
	n := NewContainer("n")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil child, got none")
		}
	}()
	n.AddChild(nil)
}

// --- RemoveChild ---

func TestRemoveChild(t *testing.T) {
	parent := NewContainer("parent")
	a, b, c := NewContainer("a"), NewContainer("b"), NewContainer("c")
	parent.AddChild(a)
	parent.AddChild(b)
	parent.AddChild(c)

	parent.RemoveChild(b)
	if b.Parent != nil {
		t.Error("removed child should have nil parent")
	}
	if parent.NumChildren() != 2 || parent.ChildAt(0) != a || parent.ChildAt(1) != c {
		t.Errorf("children after remove = %v", parent.Children())
	}
}

func TestRemoveChildWrongParentPanic(t *testing.T) {
	p1 := NewContainer("p1")
	p2 := NewContainer("p2")
	child := NewContainer("child")
	p1.AddChild(child)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for wrong parent, got none")
		}
	}()
	p2.RemoveChild(child)
}

func TestRemoveFromParentNoOp(t *testing.T) {
	n := NewContainer("orphan")
	n.RemoveFromParent()
	if n.Parent != nil {
		t.Error("orphan should stay parentless")
	}
}

// --- Lookup ---

func TestFindChild(t *testing.T) {
	root := NewContainer("root")
	plinth := NewContainer("plinth")
	vase := NewMesh("vase", nil)
	root.AddChild(plinth)
	plinth.AddChild(vase)

	if got := root.FindChild("vase"); got != vase {
		t.Errorf("FindChild(vase) = %v, want nested mesh", got)
	}
	if got := root.FindChild("missing"); got != nil {
		t.Errorf("FindChild(missing) = %v, want nil", got)
	}
}

func TestWalkSkipsSubtree(t *testing.T) {
	root := NewContainer("root")
	a := NewContainer("a")
	b := NewContainer("b")
	a.AddChild(NewContainer("a1"))
	b.AddChild(NewContainer("b1"))
	root.AddChild(a)
	root.AddChild(b)

	var visited []string
	root.Walk(func(n *Node) bool {
		visited = append(visited, n.Name)
		return n != a
	})
	want := []string{"root", "a", "b", "b1"}
	if len(visited) != len(want) {
		t.Fatalf("visited = %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visited[%d] = %q, want %q", i, visited[i], want[i])
		}
	}
}

// --- Clone ---

func TestCloneDeepCopy(t *testing.T) {
	mesh := BoxMesh(mgl64.Vec3{1, 2, 1})
	src := NewContainer("exhibit")
	src.Position = mgl64.Vec3{1, 2, 3}
	src.Scale = mgl64.Vec3{2, 2, 2}
	src.Interactable = true
	part := NewMesh("part", mesh)
	part.Position = mgl64.Vec3{0, 1, 0}
	src.AddChild(part)
	parent := NewContainer("parent")
	parent.AddChild(src)

	c := src.Clone()
	if c == src || c.ID == src.ID {
		t.Error("clone should be a new node with a new ID")
	}
	if c.Parent != nil {
		t.Error("clone should have no parent")
	}
	if c.Position != src.Position || c.Scale != src.Scale || !c.Interactable {
		t.Errorf("clone fields = %+v", c)
	}
	if c.NumChildren() != 1 {
		t.Fatalf("clone children = %d, want 1", c.NumChildren())
	}
	cp := c.ChildAt(0)
	if cp == part || cp.Parent != c {
		t.Error("clone child should be a new node parented to the clone")
	}
	if cp.Mesh != mesh {
		t.Error("clone should share the mesh")
	}

	cp.Position = mgl64.Vec3{9, 9, 9}
	c.Scale = mgl64.Vec3{5, 5, 5}
	if part.Position != (mgl64.Vec3{0, 1, 0}) || src.Scale != (mgl64.Vec3{2, 2, 2}) {
		t.Error("mutating the clone changed the original")
	}
}

// --- Dispose ---

func TestDispose(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	grandchild := NewContainer("grandchild")
	root := NewContainer("root")
	root.AddChild(parent)
	parent.AddChild(child)
	child.AddChild(grandchild)

	parent.Dispose()

	if !parent.IsDisposed() || !child.IsDisposed() || !grandchild.IsDisposed() {
		t.Error("subtree should be disposed")
	}
	if parent.ID != 0 || child.ID != 0 || grandchild.ID != 0 {
		t.Error("disposed nodes should have ID = 0")
	}
	if root.NumChildren() != 0 {
		t.Error("root should have 0 children after dispose")
	}
}

func TestDisposeIdempotent(t *testing.T) {
	n := NewContainer("n")
	n.Dispose()
	n.Dispose()
	if !n.IsDisposed() {
		t.Error("should still be disposed")
	}
}

func TestDebugDisposedPanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	n := NewContainer("gone")
	n.Dispose()
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic adding a disposed node in debug mode")
		}
	}()
	s.Root().AddChild(n)
}

func TestDebugInstantiateDisposedTemplatePanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	tmpl := NewMesh("vase", BoxMesh(mgl64.Vec3{1, 1, 1}))
	tmpl.Dispose()
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic instantiating a disposed template in debug mode")
		}
	}()
	s.Instantiate(tmpl, IdentityPose)
}
