package vitrine

import "github.com/go-gl/mathgl/mgl64"

// transformPoint applies an affine matrix to a point.
func transformPoint(m mgl64.Mat4, p mgl64.Vec3) mgl64.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// LocalMatrix returns the node's local affine matrix.
//
// Composition order:
//
//	Translate(Position) * Rotate(Rotation) * Scale(Scale)
func (n *Node) LocalMatrix() mgl64.Mat4 {
	t := mgl64.Translate3D(n.Position[0], n.Position[1], n.Position[2])
	s := mgl64.Scale3D(n.Scale[0], n.Scale[1], n.Scale[2])
	return t.Mul4(n.Rotation.Mat4()).Mul4(s)
}

// WorldMatrix returns parent.WorldMatrix() * LocalMatrix(). Computed on
// demand; the trees this package handles are shallow.
func (n *Node) WorldMatrix() mgl64.Mat4 {
	local := n.LocalMatrix()
	if n.Parent == nil {
		return local
	}
	return n.Parent.WorldMatrix().Mul4(local)
}

// WorldPosition returns the node's origin in world space.
func (n *Node) WorldPosition() mgl64.Vec3 {
	if n.Parent == nil {
		return n.Position
	}
	return transformPoint(n.Parent.WorldMatrix(), n.Position)
}

// WorldRotation returns the node's accumulated orientation. Parent scale is
// ignored; non-uniform parent scale shears children, which this package
// does not model.
func (n *Node) WorldRotation() mgl64.Quat {
	if n.Parent == nil {
		return n.Rotation
	}
	return n.Parent.WorldRotation().Mul(n.Rotation)
}

// WorldPose returns the node's world position and orientation.
func (n *Node) WorldPose() Pose {
	return Pose{Position: n.WorldPosition(), Orientation: n.WorldRotation()}
}

// LocalPose returns the node's position and rotation relative to its parent,
// exactly as stored.
func (n *Node) LocalPose() Pose {
	return Pose{Position: n.Position, Orientation: n.Rotation}
}

// SetLocalPose overwrites the node's local position and rotation verbatim.
func (n *Node) SetLocalPose(p Pose) {
	n.Position = p.Position
	n.Rotation = p.Orientation
}

// SetWorldPose moves the node so its world position and orientation equal p.
func (n *Node) SetWorldPose(p Pose) {
	if n.Parent == nil {
		n.SetLocalPose(p)
		return
	}
	inv := n.Parent.WorldMatrix().Inv()
	n.Position = transformPoint(inv, p.Position)
	n.Rotation = n.Parent.WorldRotation().Inverse().Mul(p.Orientation)
}

// RotateAround rotates the node by degrees about a world-space axis passing
// through center. Both position and orientation are affected; a node whose
// origin is center only turns in place.
func (n *Node) RotateAround(center, axis mgl64.Vec3, degrees float64) {
	if degrees == 0 || axis.Len() == 0 {
		return
	}
	q := mgl64.QuatRotate(mgl64.DegToRad(degrees), axis.Normalize())
	wp := n.WorldPosition()
	wr := n.WorldRotation()
	n.SetWorldPose(Pose{
		Position:    center.Add(q.Rotate(wp.Sub(center))),
		Orientation: q.Mul(wr).Normalize(),
	})
}

// SetScale sets a uniform scale on all three axes.
func (n *Node) SetScale(s float64) {
	n.Scale = mgl64.Vec3{s, s, s}
}

// --- Coordinate conversion ---

// WorldToLocal converts a world-space point to this node's local coordinate space.
func (n *Node) WorldToLocal(p mgl64.Vec3) mgl64.Vec3 {
	return transformPoint(n.WorldMatrix().Inv(), p)
}

// LocalToWorld converts a local-space point to world-space.
func (n *Node) LocalToWorld(p mgl64.Vec3) mgl64.Vec3 {
	return transformPoint(n.WorldMatrix(), p)
}
