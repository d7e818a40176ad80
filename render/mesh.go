package render

import (
	"fmt"
	"image/color"
	"math"
	"slices"

	"dpp/colormap"

	"gonum.org/v1/gonum/mat"
)

// ZAspect z 方向相对 x、y 的比例，与 4:4:3 的坐标盒一致
const ZAspect = 0.75

// 光源方向，方位 315°，高度 45°
var light = Vec3{math.Cos(math.Pi/4) * math.Cos(-math.Pi/4), math.Cos(math.Pi/4) * math.Sin(-math.Pi/4), math.Sin(math.Pi / 4)}

type Quad struct {
	Corners [4]Vec3
	Center  Vec3
	Color   color.RGBA
}

// Bounds 原始数据在三个方向上的范围
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
	ZMin, ZMax float64
}

// Mesh 归一化到 [-1,1]x[-1,1]x[-ZAspect,ZAspect] 的曲面网格
type Mesh struct {
	Quads  []Quad
	Bounds Bounds
}

// BuildMesh x、y、z 同形状，每个网格单元生成一个四边形
func BuildMesh(x, y, z mat.Matrix, cmap colormap.Colormap) (*Mesh, error) {
	rows, cols := z.Dims()
	for _, m := range []mat.Matrix{x, y} {
		if r, c := m.Dims(); r != rows || c != cols {
			return nil, fmt.Errorf("render: %w: %dx%d vs %dx%d", mat.ErrShape, r, c, rows, cols)
		}
	}
	if rows < 2 || cols < 2 {
		return nil, fmt.Errorf("render: %w: surface needs at least 2x2 points", mat.ErrShape)
	}

	b := Bounds{}
	b.XMin, b.XMax = mat.Min(x), mat.Max(x)
	b.YMin, b.YMax = mat.Min(y), mat.Max(y)
	b.ZMin, b.ZMax = mat.Min(z), mat.Max(z)

	point := func(i, j int) Vec3 {
		return Vec3{
			X: unit(x.At(i, j), b.XMin, b.XMax),
			Y: unit(y.At(i, j), b.YMin, b.YMax),
			Z: unit(z.At(i, j), b.ZMin, b.ZMax) * ZAspect,
		}
	}

	quads := make([]Quad, 0, (rows-1)*(cols-1))
	for i := 0; i < rows-1; i++ {
		for j := 0; j < cols-1; j++ {
			q := Quad{Corners: [4]Vec3{point(i, j), point(i, j+1), point(i+1, j+1), point(i+1, j)}}
			meanZ := (z.At(i, j) + z.At(i, j+1) + z.At(i+1, j+1) + z.At(i+1, j)) / 4
			for _, c := range q.Corners {
				q.Center = q.Center.Add(c)
			}
			q.Center = q.Center.Scale(0.25)
			q.Color = shade(cmap.At(colormap.Normalize(meanZ, b.ZMin, b.ZMax)), q.normal())
			quads = append(quads, q)
		}
	}
	return &Mesh{Quads: quads, Bounds: b}, nil
}

func (q Quad) normal() Vec3 {
	return q.Corners[2].Sub(q.Corners[0]).Cross(q.Corners[3].Sub(q.Corners[1])).Normalize()
}

// Sorted 按深度由远到近排序，返回四边形下标
func (m *Mesh) Sorted(cam Camera) []int {
	eye := cam.Eye()
	depth := make([]float64, len(m.Quads))
	order := make([]int, len(m.Quads))
	for k, q := range m.Quads {
		depth[k] = q.Center.Dot(eye)
		order[k] = k
	}
	slices.SortStableFunc(order, func(a, b int) int {
		switch {
		case depth[a] < depth[b]:
			return -1
		case depth[a] > depth[b]:
			return 1
		}
		return 0
	})
	return order
}

// shade Lambert 光照，双面
func shade(c color.RGBA, n Vec3) color.RGBA {
	k := 0.45 + 0.55*math.Abs(n.Dot(light))
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}

// unit 线性映射到 [-1, 1]，区间退化时返回 0
func unit(v, lo, hi float64) float64 {
	if hi <= lo {
		return 0
	}
	return 2*(v-lo)/(hi-lo) - 1
}

// BoxEdges 坐标盒的 12 条边
func BoxEdges() [][2]Vec3 {
	var corners [8]Vec3
	for k := range corners {
		corners[k] = Vec3{
			X: float64(k&1)*2 - 1,
			Y: float64(k>>1&1)*2 - 1,
			Z: (float64(k>>2&1)*2 - 1) * ZAspect,
		}
	}
	edges := make([][2]Vec3, 0, 12)
	for a := range corners {
		for _, bit := range []int{1, 2, 4} {
			if b := a | bit; b != a {
				edges = append(edges, [2]Vec3{corners[a], corners[b]})
			}
		}
	}
	return edges
}
