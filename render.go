package vitrine

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// wireWidth is the stroke width of mesh edges in pixels.
const wireWidth = 1.5

// toRGBA converts a straight-alpha Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(mgl64.Clamp(c.R*c.A, 0, 1) * 255),
		G: uint8(mgl64.Clamp(c.G*c.A, 0, 1) * 255),
		B: uint8(mgl64.Clamp(c.B*c.A, 0, 1) * 255),
		A: uint8(mgl64.Clamp(c.A, 0, 1) * 255),
	}
}

// Draw clears screen, strokes every visible mesh as seen by cam, and writes
// any queued screenshots. A nil camera only clears.
func (s *Scene) Draw(screen *ebiten.Image, cam *Camera) {
	screen.Fill(s.ClearColor.toRGBA())
	if cam != nil {
		s.traverse(screen, s.root, mgl64.Ident4(), cam.ViewProjection(), cam)
	}
	s.flushScreenshots(screen)
}

// traverse walks the tree depth-first, accumulating world matrices, and
// strokes renderable nodes. Hidden nodes hide their subtree.
func (s *Scene) traverse(screen *ebiten.Image, n *Node, parent, viewProj mgl64.Mat4, cam *Camera) {
	if !n.Visible {
		return
	}
	world := parent.Mul4(n.LocalMatrix())
	if n.IsRenderable() {
		strokeMesh(screen, n, world, viewProj, cam)
	}
	for _, c := range n.children {
		s.traverse(screen, c, world, viewProj, cam)
	}
}

// strokeMesh draws every edge whose endpoints are both in front of the near
// plane. Edges crossing the near plane are skipped rather than clipped.
func strokeMesh(screen *ebiten.Image, n *Node, world, viewProj mgl64.Mat4, cam *Camera) {
	mvp := viewProj.Mul4(world)
	clr := n.Color.toRGBA()
	verts := n.Mesh.Vertices
	for _, e := range n.Mesh.Edges {
		if int(e[0]) >= len(verts) || int(e[1]) >= len(verts) {
			continue
		}
		x0, y0, ok0 := projectPoint(mvp, cam.Viewport, cam.Near, verts[e[0]])
		x1, y1, ok1 := projectPoint(mvp, cam.Viewport, cam.Near, verts[e[1]])
		if !ok0 || !ok1 {
			continue
		}
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), wireWidth, clr, true)
	}
}
