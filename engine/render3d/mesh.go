package render3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vertex3D is a vertex with position, normal, and color
type Vertex3D struct {
	Pos    mgl64.Vec3
	Normal mgl64.Vec3
	Color  Color3
}

// Triangle3D is three vertices
type Triangle3D struct {
	V [3]Vertex3D
}

// Mesh3D is a collection of triangles
type Mesh3D struct {
	Triangles []Triangle3D
}

func NewMesh() *Mesh3D { return &Mesh3D{} }

func (m *Mesh3D) AddTriangle(v0, v1, v2 Vertex3D) {
	m.Triangles = append(m.Triangles, Triangle3D{V: [3]Vertex3D{v0, v1, v2}})
}

func (m *Mesh3D) AddQuad(v0, v1, v2, v3 Vertex3D) {
	m.AddTriangle(v0, v1, v2)
	m.AddTriangle(v0, v2, v3)
}

func (m *Mesh3D) Transform(mat mgl64.Mat4) *Mesh3D {
	out := &Mesh3D{Triangles: make([]Triangle3D, len(m.Triangles))}
	for i, tri := range m.Triangles {
		for j := 0; j < 3; j++ {
			out.Triangles[i].V[j] = tri.V[j]
			p, w := TransformPoint(mat, tri.V[j].Pos)
			if w != 0 {
				p = p.Mul(1 / w)
			}
			out.Triangles[i].V[j].Pos = p
			out.Triangles[i].V[j].Normal = normalize(TransformDir(mat, tri.V[j].Normal))
		}
	}
	return out
}

// MakeFrustum builds a capped truncated cone centred on the origin, like
// a cylinder whose top and bottom radii differ.
func MakeFrustum(topR, bottomR, height float64, segments int, c Color3) *Mesh3D {
	m := NewMesh()
	if segments < 6 {
		segments = 6
	}
	hh := height / 2
	top := V3(0, hh, 0)
	bot := V3(0, -hh, 0)
	// side normals lean outward by the slope
	slope := (bottomR - topR) / height

	for i := 0; i < segments; i++ {
		a0 := float64(i) / float64(segments) * 2 * math.Pi
		a1 := float64(i+1) / float64(segments) * 2 * math.Pi
		c0, s0 := math.Cos(a0), math.Sin(a0)
		c1, s1 := math.Cos(a1), math.Sin(a1)

		p0t := V3(topR*c0, hh, topR*s0)
		p1t := V3(topR*c1, hh, topR*s1)
		p0b := V3(bottomR*c0, -hh, bottomR*s0)
		p1b := V3(bottomR*c1, -hh, bottomR*s1)

		n0 := normalize(V3(c0, slope, s0))
		n1 := normalize(V3(c1, slope, s1))

		m.AddQuad(
			Vertex3D{Pos: p0b, Normal: n0, Color: c},
			Vertex3D{Pos: p1b, Normal: n1, Color: c},
			Vertex3D{Pos: p1t, Normal: n1, Color: c},
			Vertex3D{Pos: p0t, Normal: n0, Color: c},
		)

		topN := V3(0, 1, 0)
		m.AddTriangle(
			Vertex3D{Pos: top, Normal: topN, Color: c},
			Vertex3D{Pos: p0t, Normal: topN, Color: c},
			Vertex3D{Pos: p1t, Normal: topN, Color: c},
		)

		botN := V3(0, -1, 0)
		m.AddTriangle(
			Vertex3D{Pos: bot, Normal: botN, Color: c},
			Vertex3D{Pos: p1b, Normal: botN, Color: c},
			Vertex3D{Pos: p0b, Normal: botN, Color: c},
		)
	}
	return m
}

// MakePedestal is the dark stone base the fire burns on
func MakePedestal() *Mesh3D {
	return MakeFrustum(1.2, 1.4, 0.5, 32, Hex(0x333333)).Transform(mgl64.Translate3D(0, -1.5, 0))
}
