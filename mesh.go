package vitrine

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Mesh is a wireframe: local-space vertices joined by index pairs. Meshes are
// shared between a template and its clones and must not be mutated while a
// clone is alive, except through SetVertices.
type Mesh struct {
	Vertices []mgl64.Vec3
	Edges    [][2]uint16

	bounds      Box  // cached local-space AABB
	boundsValid bool // bounds matches Vertices
}

// NewWireMesh returns a mesh over the given vertices and edges.
func NewWireMesh(vertices []mgl64.Vec3, edges [][2]uint16) *Mesh {
	return &Mesh{Vertices: vertices, Edges: edges}
}

// SetVertices replaces the vertex list and invalidates the cached bounds.
func (m *Mesh) SetVertices(vertices []mgl64.Vec3) {
	m.Vertices = vertices
	m.boundsValid = false
}

// Bounds returns the local-space AABB of the vertices, or an empty box.
func (m *Mesh) Bounds() Box {
	if !m.boundsValid {
		m.bounds = computeMeshBounds(m.Vertices)
		m.boundsValid = true
	}
	return m.bounds
}

// computeMeshBounds scans the vertices and returns their AABB.
func computeMeshBounds(verts []mgl64.Vec3) Box {
	b := EmptyBox()
	for _, v := range verts {
		b = b.ExpandPoint(v)
	}
	return b
}

// BoxMesh returns an axis-aligned box of the given size standing on y = 0,
// centered on the X and Z axes.
func BoxMesh(size mgl64.Vec3) *Mesh {
	hx, hz := size[0]/2, size[2]/2
	h := size[1]
	verts := []mgl64.Vec3{
		{-hx, 0, -hz}, {hx, 0, -hz}, {hx, 0, hz}, {-hx, 0, hz},
		{-hx, h, -hz}, {hx, h, -hz}, {hx, h, hz}, {-hx, h, hz},
	}
	edges := [][2]uint16{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	return NewWireMesh(verts, edges)
}

// PyramidMesh returns a square-based pyramid standing on y = 0.
func PyramidMesh(base, height float64) *Mesh {
	h := base / 2
	verts := []mgl64.Vec3{
		{-h, 0, -h}, {h, 0, -h}, {h, 0, h}, {-h, 0, h},
		{0, height, 0},
	}
	edges := [][2]uint16{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{0, 4}, {1, 4}, {2, 4}, {3, 4},
	}
	return NewWireMesh(verts, edges)
}

// PrismMesh returns an upright n-sided prism standing on y = 0, which reads
// as a column or vase for larger n. sides below 3 are raised to 3.
func PrismMesh(radius, height float64, sides int) *Mesh {
	if sides < 3 {
		sides = 3
	}
	verts := make([]mgl64.Vec3, 0, sides*2)
	for _, y := range [2]float64{0, height} {
		for i := 0; i < sides; i++ {
			a := 2 * math.Pi * float64(i) / float64(sides)
			verts = append(verts, mgl64.Vec3{radius * math.Cos(a), y, radius * math.Sin(a)})
		}
	}
	edges := make([][2]uint16, 0, sides*3)
	for i := 0; i < sides; i++ {
		j := (i + 1) % sides
		edges = append(edges,
			[2]uint16{uint16(i), uint16(j)},
			[2]uint16{uint16(sides + i), uint16(sides + j)},
			[2]uint16{uint16(i), uint16(sides + i)},
		)
	}
	return NewWireMesh(verts, edges)
}

// worldBounds returns the world-space AABB of a renderable node's mesh.
func worldBounds(n *Node) Box {
	return n.Mesh.Bounds().Transform(n.WorldMatrix())
}
