// Package colormap maps normalised scalar values to display colours.
package colormap

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// ErrUnknown 颜色表名称不存在
var ErrUnknown = errors.New("colormap: unknown name")

// Colormap 将 [0, 1] 上的值映射为颜色
type Colormap interface {
	// At returns the colour for t in [0, 1]; t is clamped.
	At(t float64) color.RGBA
}

// Func 由 r、g、b 三个分量函数构成的颜色表，分量超出 [0, 1] 时截断
type Func func(t float64) (r, g, b float64)

// At 实现 Colormap
func (f Func) At(t float64) color.RGBA {
	r, g, b := f(clamp(t))
	return color.RGBA{R: channel(r), G: channel(g), B: channel(b), A: 0xff}
}

// Rainbow gnuplot 调色板 (33, 13, 10)
var Rainbow Colormap = Func(func(t float64) (float64, float64, float64) {
	return math.Abs(2*t - 0.5), math.Sin(math.Pi * t), math.Cos(math.Pi * t / 2)
})

// Jet 分段线性的 jet 调色板
var Jet Colormap = Func(func(t float64) (float64, float64, float64) {
	return 1.5 - math.Abs(4*t-3), 1.5 - math.Abs(4*t-2), 1.5 - math.Abs(4*t-1)
})

// Gray 灰度
var Gray Colormap = Func(func(t float64) (float64, float64, float64) {
	return t, t, t
})

var maps = map[string]Colormap{
	"rainbow": Rainbow,
	"jet":     Jet,
	"gray":    Gray,
}

// Lookup 按名称查找颜色表
func Lookup(name string) (Colormap, error) {
	m, ok := maps[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return m, nil
}

// Normalize 将 v 从 [lo, hi] 线性映射到 [0, 1]
func Normalize(v, lo, hi float64) float64 {
	if hi <= lo {
		return 0.5
	}
	return clamp((v - lo) / (hi - lo))
}

func clamp(t float64) float64 {
	if math.IsNaN(t) || t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func channel(v float64) uint8 {
	return uint8(math.Round(clamp(v) * 255))
}
