package render3d

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Renderer3D draws the effect scene: lit meshes first, then point clouds
// in the order they were added.
type Renderer3D struct {
	Camera     *OrbitCamera
	Lighting   LightingSetup
	Background color.Color

	clouds []*PointCloud
	meshes []*Mesh3D

	// Internal
	whiteImg *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
	sorted   []projectedTriangle
}

type projectedTriangle struct {
	v     [3]ebiten.Vertex
	depth float64
}

// NewRenderer3D creates the 3D renderer
func NewRenderer3D(screenW, screenH int) *Renderer3D {
	r := &Renderer3D{
		Camera:     NewOrbitCamera(screenW, screenH),
		Lighting:   DefaultLighting(),
		Background: color.Black,
	}

	// white source image for flat-colored triangles
	r.whiteImg = ebiten.NewImage(4, 4)
	r.whiteImg.Fill(color.White)

	return r
}

// AddMesh adds static lit geometry
func (r *Renderer3D) AddMesh(m *Mesh3D) {
	r.meshes = append(r.meshes, m)
}

// AddCloud adds a point cloud; clouds draw in insertion order
func (r *Renderer3D) AddCloud(pc *PointCloud) {
	r.clouds = append(r.clouds, pc)
}

// DrawScene renders the complete frame
func (r *Renderer3D) DrawScene(screen *ebiten.Image) {
	screen.Fill(r.Background)

	for _, m := range r.meshes {
		r.renderMesh(screen, m)
	}
	for _, pc := range r.clouds {
		pc.Draw(screen, r.Camera)
	}
}

// renderMesh lights, projects and depth-sorts a mesh, then draws it in
// one batch.
func (r *Renderer3D) renderMesh(screen *ebiten.Image, mesh *Mesh3D) {
	if len(mesh.Triangles) == 0 {
		return
	}

	cam := r.Camera
	r.sorted = r.sorted[:0]

	for _, tri := range mesh.Triangles {
		// cull faces pointing away from the eye
		center := tri.V[0].Pos.Add(tri.V[1].Pos).Add(tri.V[2].Pos).Mul(1.0 / 3)
		if tri.V[0].Normal.Add(tri.V[1].Normal).Add(tri.V[2].Normal).Dot(cam.Eye.Sub(center)) <= 0 {
			continue
		}

		var pt projectedTriangle
		visible := true
		for i := 0; i < 3; i++ {
			v := tri.V[i]
			sx, sy, depth, ok := cam.Project(v.Pos)
			if !ok {
				visible = false
				break
			}
			lit := r.Lighting.ComputeLighting(v.Pos, v.Normal, v.Color)
			pt.v[i] = ebiten.Vertex{
				DstX:   float32(sx),
				DstY:   float32(sy),
				SrcX:   1,
				SrcY:   1,
				ColorR: float32(lit.R),
				ColorG: float32(lit.G),
				ColorB: float32(lit.B),
				ColorA: 1,
			}
			pt.depth += depth
		}
		if visible {
			r.sorted = append(r.sorted, pt)
		}
	}

	// back-to-front
	sort.Slice(r.sorted, func(i, j int) bool {
		return r.sorted[i].depth > r.sorted[j].depth
	})

	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	for _, pt := range r.sorted {
		base := uint16(len(r.vertices))
		r.vertices = append(r.vertices, pt.v[0], pt.v[1], pt.v[2])
		r.indices = append(r.indices, base, base+1, base+2)

		if len(r.vertices) >= maxBatchVertices {
			screen.DrawTriangles(r.vertices, r.indices, r.whiteImg, nil)
			r.vertices = r.vertices[:0]
			r.indices = r.indices[:0]
		}
	}
	if len(r.vertices) > 0 {
		screen.DrawTriangles(r.vertices, r.indices, r.whiteImg, nil)
	}
}
