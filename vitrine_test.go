package vitrine

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// --- Pose ---

func TestPoseAxes(t *testing.T) {
	tests := []struct {
		name    string
		yaw     float64
		forward mgl64.Vec3
		right   mgl64.Vec3
	}{
		{"identity", 0, mgl64.Vec3{0, 0, -1}, mgl64.Vec3{1, 0, 0}},
		{"quarter left", 90, mgl64.Vec3{-1, 0, 0}, mgl64.Vec3{0, 0, -1}},
		{"about face", 180, mgl64.Vec3{0, 0, 1}, mgl64.Vec3{-1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPose(mgl64.Vec3{1, 2, 3}, tt.yaw)
			assertVec(t, "forward", p.Forward(), tt.forward)
			assertVec(t, "right", p.Right(), tt.right)
			assertVec(t, "up", p.Up(), AxisUp)
		})
	}
}

func TestIdentityPose(t *testing.T) {
	if IdentityPose.Orientation != mgl64.QuatIdent() {
		t.Errorf("orientation = %v, want identity", IdentityPose.Orientation)
	}
	if IdentityPose.Position != (mgl64.Vec3{}) {
		t.Errorf("position = %v, want origin", IdentityPose.Position)
	}
}

// --- Box ---

func TestEmptyBox(t *testing.T) {
	b := EmptyBox()
	if !b.IsEmpty() {
		t.Error("EmptyBox should be empty")
	}
	if b.Size() != (mgl64.Vec3{}) {
		t.Errorf("Size = %v, want zero", b.Size())
	}
	if _, ok := b.IntersectRay(mgl64.Vec3{}, AxisForward); ok {
		t.Error("ray should not hit an empty box")
	}
}

func TestBoxUnion(t *testing.T) {
	a := Box{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}}
	b := Box{Min: mgl64.Vec3{-1, 0.5, 2}, Max: mgl64.Vec3{0.5, 3, 4}}

	u := a.Union(b)
	want := Box{Min: mgl64.Vec3{-1, 0, 0}, Max: mgl64.Vec3{1, 3, 4}}
	if u != want {
		t.Errorf("Union = %v, want %v", u, want)
	}
	if got := EmptyBox().Union(a); got != a {
		t.Errorf("EmptyBox().Union(a) = %v, want %v", got, a)
	}
	if got := a.Union(EmptyBox()); got != a {
		t.Errorf("a.Union(EmptyBox()) = %v, want %v", got, a)
	}
	assertNear(t, "height", u.Height(), 3)
	assertVec(t, "center", u.Center(), mgl64.Vec3{0, 1.5, 2})
}

func TestBoxCorners(t *testing.T) {
	b := Box{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 2, 3}}
	seen := make(map[mgl64.Vec3]bool)
	for _, c := range b.Corners() {
		seen[c] = true
	}
	if len(seen) != 8 {
		t.Errorf("distinct corners = %d, want 8", len(seen))
	}
	if !seen[b.Min] || !seen[b.Max] {
		t.Error("corners should include Min and Max")
	}
}

func TestBoxTransformRotated(t *testing.T) {
	b := Box{Min: mgl64.Vec3{-1, 0, -1}, Max: mgl64.Vec3{1, 2, 1}}
	m := mgl64.HomogRotate3DZ(math.Pi / 2)
	got := b.Transform(m)
	// A quarter turn about Z swaps the X and Y extents.
	assertVec(t, "min", got.Min, mgl64.Vec3{-2, -1, -1})
	assertVec(t, "max", got.Max, mgl64.Vec3{0, 1, 1})
}

func TestBoxIntersectRay(t *testing.T) {
	b := Box{Min: mgl64.Vec3{-1, -1, -6}, Max: mgl64.Vec3{1, 1, -4}}
	tests := []struct {
		name   string
		origin mgl64.Vec3
		dir    mgl64.Vec3
		hit    bool
		dist   float64
	}{
		{"straight ahead", mgl64.Vec3{}, AxisForward, true, 4},
		{"behind", mgl64.Vec3{}, mgl64.Vec3{0, 0, 1}, false, 0},
		{"miss above", mgl64.Vec3{0, 2, 0}, AxisForward, false, 0},
		{"inside", mgl64.Vec3{0, 0, -5}, AxisForward, true, 0},
		{"parallel outside slab", mgl64.Vec3{5, 0, 0}, AxisForward, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := b.IntersectRay(tt.origin, tt.dir)
			if ok != tt.hit {
				t.Fatalf("hit = %v, want %v", ok, tt.hit)
			}
			if ok {
				assertNear(t, "distance", d, tt.dist)
			}
		})
	}
}

// --- Range ---

func TestRangeClamp(t *testing.T) {
	r := Range{Min: 0.5, Max: 2.5}
	tests := []struct {
		in, want float64
	}{
		{1, 1},
		{0.1, 0.5},
		{-3, 0.5},
		{2.5, 2.5},
		{9, 2.5},
	}
	for _, tt := range tests {
		if got := r.Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if !r.Contains(0.5) || !r.Contains(2.5) || r.Contains(2.6) {
		t.Error("Contains should be inclusive at both ends")
	}
}
