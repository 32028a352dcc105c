package vitrine

import "github.com/go-gl/mathgl/mgl64"

// Rect is an axis-aligned screen rectangle with its origin at the top-left
// and Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Camera projects the scene as seen from a node, typically the head under
// the rig, onto a screen viewport. It also serves as the rotation reference
// for orbiting, since its up and right axes are what the user perceives.
type Camera struct {
	// Node is the viewer. Its world pose is the eye; scale is ignored.
	Node *Node
	// FOV is the vertical field of view in degrees.
	FOV float64
	// Near and Far bound the view depth.
	Near, Far float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect
}

// NewCamera returns a camera on node with a 70° field of view.
func NewCamera(node *Node, viewport Rect) *Camera {
	return &Camera{
		Node:     node,
		FOV:      70,
		Near:     0.05,
		Far:      500,
		Viewport: viewport,
	}
}

// ViewMatrix maps world space to eye space.
func (c *Camera) ViewMatrix() mgl64.Mat4 {
	if c.Node == nil {
		return mgl64.Ident4()
	}
	p := c.Node.WorldPose()
	return mgl64.LookAtV(p.Position, p.Position.Add(p.Forward()), p.Up())
}

// ProjectionMatrix maps eye space to clip space.
func (c *Camera) ProjectionMatrix() mgl64.Mat4 {
	aspect := 1.0
	if c.Viewport.Height > 0 {
		aspect = c.Viewport.Width / c.Viewport.Height
	}
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// ViewProjection returns ProjectionMatrix * ViewMatrix.
func (c *Camera) ViewProjection() mgl64.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}

// WorldToScreen converts a world point to screen coordinates. ok is false
// for points at or behind the near plane.
func (c *Camera) WorldToScreen(p mgl64.Vec3) (sx, sy float64, ok bool) {
	return projectPoint(c.ViewProjection(), c.Viewport, c.Near, p)
}

// projectPoint applies a view-projection matrix and the viewport transform.
func projectPoint(vp mgl64.Mat4, viewport Rect, near float64, p mgl64.Vec3) (sx, sy float64, ok bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	if clip[3] < near {
		return 0, 0, false
	}
	nx := clip[0] / clip[3]
	ny := clip[1] / clip[3]
	sx = viewport.X + (nx+1)/2*viewport.Width
	sy = viewport.Y + (1-ny)/2*viewport.Height
	return sx, sy, true
}
