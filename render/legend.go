package render

import (
	"image"

	"dpp/colormap"

	"github.com/gogpu/gg"
)

// RenderLegend 颜色条，顶部对应最大值
func RenderLegend(cmap colormap.Colormap, width, height int) (image.Image, error) {
	dc := gg.NewContext(width, height)
	defer dc.Close()

	for row := 0; row < height; row++ {
		t := 1 - float64(row)/float64(max(height-1, 1))
		dc.SetColor(cmap.At(t))
		dc.DrawRectangle(0, float64(row), float64(width), 1)
		if err := dc.Fill(); err != nil {
			return nil, err
		}
	}

	dc.SetRGB(0.2, 0.2, 0.2)
	dc.SetLineWidth(1)
	dc.DrawRectangle(0.5, 0.5, float64(width)-1, float64(height)-1)
	if err := dc.Stroke(); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}
