package vitrine

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// World axes. Y is up and the forward direction of an unrotated pose is -Z.
var (
	AxisRight   = mgl64.Vec3{1, 0, 0}
	AxisUp      = mgl64.Vec3{0, 1, 0}
	AxisForward = mgl64.Vec3{0, 0, -1}
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default wireframe color.
var ColorWhite = Color{1, 1, 1, 1}

// Pose is a position plus orientation. It is a plain value: copy it, never
// share a pointer to one.
type Pose struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

// IdentityPose sits at the origin with no rotation.
var IdentityPose = Pose{Orientation: mgl64.QuatIdent()}

// NewPose returns a pose at pos facing yawDegrees around the world up axis.
func NewPose(pos mgl64.Vec3, yawDegrees float64) Pose {
	return Pose{
		Position:    pos,
		Orientation: mgl64.QuatRotate(mgl64.DegToRad(yawDegrees), AxisUp),
	}
}

// Up returns the pose's local up axis in world space.
func (p Pose) Up() mgl64.Vec3 {
	return p.Orientation.Rotate(AxisUp)
}

// Right returns the pose's local right axis in world space.
func (p Pose) Right() mgl64.Vec3 {
	return p.Orientation.Rotate(AxisRight)
}

// Forward returns the pose's local forward axis in world space.
func (p Pose) Forward() mgl64.Vec3 {
	return p.Orientation.Rotate(AxisForward)
}

// Box is an axis-aligned bounding box. A box whose Min exceeds its Max on any
// axis is empty; EmptyBox returns the canonical one, which Union treats as
// the identity.
type Box struct {
	Min, Max mgl64.Vec3
}

// EmptyBox returns a box that contains nothing.
func EmptyBox() Box {
	inf := math.Inf(1)
	return Box{
		Min: mgl64.Vec3{inf, inf, inf},
		Max: mgl64.Vec3{-inf, -inf, -inf},
	}
}

// IsEmpty reports whether the box contains no points.
func (b Box) IsEmpty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

// ExpandPoint returns the smallest box containing b and p.
func (b Box) ExpandPoint(p mgl64.Vec3) Box {
	for i := 0; i < 3; i++ {
		b.Min[i] = math.Min(b.Min[i], p[i])
		b.Max[i] = math.Max(b.Max[i], p[i])
	}
	return b
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	if o.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return o
	}
	return b.ExpandPoint(o.Min).ExpandPoint(o.Max)
}

// Size returns the extent of the box along each axis.
func (b Box) Size() mgl64.Vec3 {
	if b.IsEmpty() {
		return mgl64.Vec3{}
	}
	return b.Max.Sub(b.Min)
}

// Height returns the extent of the box along the up axis.
func (b Box) Height() float64 {
	return b.Size()[1]
}

// Center returns the midpoint of the box.
func (b Box) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Corners returns the eight corners of the box.
func (b Box) Corners() [8]mgl64.Vec3 {
	var out [8]mgl64.Vec3
	for i := range out {
		c := b.Min
		if i&1 != 0 {
			c[0] = b.Max[0]
		}
		if i&2 != 0 {
			c[1] = b.Max[1]
		}
		if i&4 != 0 {
			c[2] = b.Max[2]
		}
		out[i] = c
	}
	return out
}

// Transform returns the axis-aligned box enclosing b after applying m.
func (b Box) Transform(m mgl64.Mat4) Box {
	if b.IsEmpty() {
		return b
	}
	out := EmptyBox()
	for _, c := range b.Corners() {
		out = out.ExpandPoint(transformPoint(m, c))
	}
	return out
}

// IntersectRay returns the distance along dir at which the ray from origin
// first enters the box. Uses the slab test; a ray starting inside the box
// reports distance 0.
func (b Box) IntersectRay(origin, dir mgl64.Vec3) (float64, bool) {
	if b.IsEmpty() {
		return 0, false
	}
	tMin, tMax := 0.0, math.Inf(1)
	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < 1e-12 {
			if origin[i] < b.Min[i] || origin[i] > b.Max[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / dir[i]
		t0 := (b.Min[i] - origin[i]) * inv
		t1 := (b.Max[i] - origin[i]) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tMin = math.Max(tMin, t0)
		tMax = math.Min(tMax, t1)
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}

// Range is a general-purpose min/max range.
type Range struct {
	Min, Max float64
}

// Clamp restricts v to [r.Min, r.Max].
func (r Range) Clamp(v float64) float64 {
	return mgl64.Clamp(v, r.Min, r.Max)
}

// Contains reports whether v lies within the range, inclusive.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeMesh                      // renders a wireframe Mesh
)
