package window

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"dpp/calculator"
	"dpp/colormap"
	"dpp/config"
	"dpp/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	log "github.com/sirupsen/logrus"
)

const (
	legendWidth  = 18
	legendHeight = 240
	ticks        = 5
)

var (
	background = color.RGBA{0xff, 0xff, 0xff, 0xff}
	edgeColor  = color.RGBA{0xb0, 0xb0, 0xb0, 0xff}
)

// Viewer 三维曲面窗口，左键拖动旋转，滚轮缩放
type Viewer struct {
	mesh   *render.Mesh
	cam    render.Camera
	legend *ebiten.Image
	fill   *ebiten.Image

	width, height int

	dragging     bool
	lastX, lastY int

	vs []ebiten.Vertex
	is []uint16
}

// NewViewer 坐标角色为 (B, A, 高度)
func NewViewer(field *calculator.HeightField, cfg config.Render) (*Viewer, error) {
	cmap, err := colormap.Lookup(cfg.Colormap)
	if err != nil {
		return nil, err
	}
	mesh, err := render.BuildMesh(field.B, field.A, field.Z, cmap)
	if err != nil {
		return nil, err
	}
	legend, err := render.RenderLegend(cmap, legendWidth, legendHeight)
	if err != nil {
		return nil, err
	}

	fill := ebiten.NewImage(3, 3)
	fill.Fill(color.White)

	return &Viewer{
		mesh:   mesh,
		cam:    render.DefaultCamera(),
		legend: ebiten.NewImageFromImage(legend),
		fill:   fill.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		width:  cfg.Width,
		height: cfg.Height,
		vs:     make([]ebiten.Vertex, 0, 4*len(mesh.Quads)),
		is:     make([]uint16, 0, 6*len(mesh.Quads)),
	}, nil
}

// Show 打开窗口并阻塞直到窗口关闭
func Show(field *calculator.HeightField, cfg config.Render) error {
	v, err := NewViewer(field, cfg)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	log.WithFields(log.Fields{
		"quads":    len(v.mesh.Quads),
		"colormap": cfg.Colormap,
	}).Info("打开曲面窗口")
	return ebiten.RunGame(v)
}

func (v *Viewer) Update() error {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if v.dragging {
			v.cam.Rotate(float64(x-v.lastX), float64(y-v.lastY))
		}
		v.dragging = true
		v.lastX, v.lastY = x, y
	} else {
		v.dragging = false
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		v.cam.ZoomBy(dy)
	}
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	v.drawBox(screen)
	v.drawSurface(screen)
	v.drawTicks(screen)
	v.drawLegend(screen)
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.width, v.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (v *Viewer) drawSurface(screen *ebiten.Image) {
	v.vs, v.is = v.vs[:0], v.is[:0]
	for _, k := range v.mesh.Sorted(v.cam) {
		// uint16 下标，超出后分批绘制
		if len(v.vs)+4 > math.MaxUint16 {
			screen.DrawTriangles(v.vs, v.is, v.fill, nil)
			v.vs, v.is = v.vs[:0], v.is[:0]
		}
		q := v.mesh.Quads[k]
		base := uint16(len(v.vs))
		r, g, b := float32(q.Color.R)/0xff, float32(q.Color.G)/0xff, float32(q.Color.B)/0xff
		for _, c := range q.Corners {
			sx, sy := v.cam.ToScreen(c, v.width, v.height)
			v.vs = append(v.vs, ebiten.Vertex{
				DstX: sx, DstY: sy,
				SrcX: 1, SrcY: 1,
				ColorR: r, ColorG: g, ColorB: b, ColorA: 1,
			})
		}
		v.is = append(v.is, base, base+1, base+2, base, base+2, base+3)
	}
	if len(v.is) > 0 {
		screen.DrawTriangles(v.vs, v.is, v.fill, nil)
	}
}

// drawBox 坐标盒的 12 条边，先于曲面绘制
func (v *Viewer) drawBox(screen *ebiten.Image) {
	for _, e := range render.BoxEdges() {
		x0, y0 := v.cam.ToScreen(e[0], v.width, v.height)
		x1, y1 := v.cam.ToScreen(e[1], v.width, v.height)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, edgeColor, true)
	}
}

func (v *Viewer) drawTicks(screen *ebiten.Image) {
	b := v.mesh.Bounds
	for k := 0; k < ticks; k++ {
		t := float64(k) / (ticks - 1)
		u := 2*t - 1

		x, y := v.cam.ToScreen(render.Vec3{X: u, Y: -1.15, Z: -render.ZAspect}, v.width, v.height)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.1f", lerp(b.XMin, b.XMax, t)), int(x)-12, int(y))

		x, y = v.cam.ToScreen(render.Vec3{X: 1.15, Y: u, Z: -render.ZAspect}, v.width, v.height)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.1f", lerp(b.YMin, b.YMax, t)), int(x), int(y))

		x, y = v.cam.ToScreen(render.Vec3{X: -1.1, Y: 1.1, Z: u * render.ZAspect}, v.width, v.height)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.2f", lerp(b.ZMin, b.ZMax, t)), int(x)-36, int(y)-8)
	}
	x, y := v.cam.ToScreen(render.Vec3{X: 0, Y: -1.4, Z: -render.ZAspect}, v.width, v.height)
	ebitenutil.DebugPrintAt(screen, "x", int(x), int(y))
	x, y = v.cam.ToScreen(render.Vec3{X: 1.4, Y: 0, Z: -render.ZAspect}, v.width, v.height)
	ebitenutil.DebugPrintAt(screen, "y", int(x), int(y))
}

func (v *Viewer) drawLegend(screen *ebiten.Image) {
	x := float64(v.width - legendWidth - 60)
	y := float64(v.height-legendHeight) / 2
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(v.legend, op)

	b := v.mesh.Bounds
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.2f", b.ZMax), int(x)+legendWidth+4, int(y)-6)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.2f", b.ZMin), int(x)+legendWidth+4, int(y)+legendHeight-10)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
