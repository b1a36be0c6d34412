package render3d

import (
	"github.com/1siamBot/firewater/engine/particles"
	"github.com/hajimehoshi/ebiten/v2"
)

// maxBatchVertices keeps a batch's indices inside uint16
const maxBatchVertices = 65000

// PointMaterial is how a point cloud is drawn
type PointMaterial struct {
	Size    float64 // world-space size multiplier
	Texture *ebiten.Image
	Blend   ebiten.Blend
	Opacity float64
}

// PointCloud draws every particle of a pool as a camera-facing textured
// quad. The pool is read in place each frame; nothing is copied.
type PointCloud struct {
	Name     string
	Pool     *particles.Pool
	Material PointMaterial

	srcW, srcH float32
	vertices   []ebiten.Vertex
	indices    []uint16
}

// NewPointCloud binds a pool to a material
func NewPointCloud(name string, pool *particles.Pool, mat PointMaterial) *PointCloud {
	pc := &PointCloud{
		Name:     name,
		Pool:     pool,
		Material: mat,
		srcW:     1,
		srcH:     1,
	}
	if mat.Texture != nil {
		b := mat.Texture.Bounds()
		pc.srcW, pc.srcH = float32(b.Dx()), float32(b.Dy())
	}
	return pc
}

// Visible reports whether the cloud contributes anything to the frame
func (pc *PointCloud) Visible() bool {
	return pc.Material.Opacity > 0
}

// Build projects the pool into screen-space quads and returns how many
// particles ended up on screen.
func (pc *PointCloud) Build(cam *OrbitCamera) int {
	return pc.build(cam, nil)
}

// build fills the batch buffers, handing full batches to flush
func (pc *PointCloud) build(cam *OrbitCamera, flush func(vs []ebiten.Vertex, is []uint16)) int {
	pc.vertices = pc.vertices[:0]
	pc.indices = pc.indices[:0]

	p := pc.Pool
	sw, sh := float64(cam.ScreenW), float64(cam.ScreenH)
	alpha := float32(clamp01(pc.Material.Opacity))
	drawn := 0

	for i := 0; i < p.Count; i++ {
		x, y, z := p.Position(i)
		sx, sy, depth, ok := cam.Project(V3(x, y, z))
		if !ok {
			continue
		}
		half := pc.Material.Size * p.Sizes[i] * cam.PointScale(depth) / 2
		if half < 0.25 {
			continue
		}
		if sx+half < 0 || sx-half > sw || sy+half < 0 || sy-half > sh {
			continue
		}

		r, g, b := p.Color(i)
		cr, cg, cb := float32(clamp01(r)), float32(clamp01(g)), float32(clamp01(b))
		x0, y0 := float32(sx-half), float32(sy-half)
		x1, y1 := float32(sx+half), float32(sy+half)

		base := uint16(len(pc.vertices))
		pc.vertices = append(pc.vertices,
			ebiten.Vertex{DstX: x0, DstY: y0, SrcX: 0, SrcY: 0, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: alpha},
			ebiten.Vertex{DstX: x1, DstY: y0, SrcX: pc.srcW, SrcY: 0, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: alpha},
			ebiten.Vertex{DstX: x1, DstY: y1, SrcX: pc.srcW, SrcY: pc.srcH, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: alpha},
			ebiten.Vertex{DstX: x0, DstY: y1, SrcX: 0, SrcY: pc.srcH, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: alpha},
		)
		pc.indices = append(pc.indices, base, base+1, base+2, base, base+2, base+3)
		drawn++

		if len(pc.vertices) >= maxBatchVertices {
			if flush != nil {
				flush(pc.vertices, pc.indices)
			}
			pc.vertices = pc.vertices[:0]
			pc.indices = pc.indices[:0]
		}
	}
	if flush != nil && len(pc.vertices) > 0 {
		flush(pc.vertices, pc.indices)
	}
	return drawn
}

// Draw renders the cloud onto screen
func (pc *PointCloud) Draw(screen *ebiten.Image, cam *OrbitCamera) {
	if !pc.Visible() || pc.Material.Texture == nil {
		return
	}
	op := &ebiten.DrawTrianglesOptions{
		Blend:  pc.Material.Blend,
		Filter: ebiten.FilterLinear,
	}
	pc.build(cam, func(vs []ebiten.Vertex, is []uint16) {
		screen.DrawTriangles(vs, is, pc.Material.Texture, op)
	})
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
