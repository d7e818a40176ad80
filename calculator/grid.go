package calculator

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// 网格与高度场计算的错误类型
var (
	ErrInvalidDomain = errors.New("calculator: invalid domain")
	ErrShapeMismatch = errors.New("calculator: shape mismatch")
)

// Grid 网格坐标矩阵，X[i][j] = xs[j]，Y[i][j] = ys[i]
type Grid struct {
	X *mat.Dense
	Y *mat.Dense
}

// Linspace 在 [lower, upper] 上生成 count 个等间距点，包含两端
func Linspace(lower, upper float64, count int) ([]float64, error) {
	if count < 2 {
		return nil, fmt.Errorf("%w: count %d < 2", ErrInvalidDomain, count)
	}
	if math.IsNaN(lower) || math.IsNaN(upper) || !(lower < upper) {
		return nil, fmt.Errorf("%w: lower %v >= upper %v", ErrInvalidDomain, lower, upper)
	}
	axis := floats.Span(make([]float64, count), lower, upper)
	axis[count-1] = upper
	return axis, nil
}

// Meshgrid 两个坐标轴的笛卡尔积，输出形状为 len(ys) x len(xs)
func Meshgrid(xs, ys []float64) (Grid, error) {
	if len(xs) == 0 || len(ys) == 0 {
		return Grid{}, fmt.Errorf("%w: empty axis", ErrInvalidDomain)
	}
	rows, cols := len(ys), len(xs)
	x := mat.NewDense(rows, cols, nil)
	y := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		x.SetRow(i, xs)
		for j := 0; j < cols; j++ {
			y.Set(i, j, ys[i])
		}
	}
	return Grid{X: x, Y: y}, nil
}

// Dims 网格的行数和列数
func (g Grid) Dims() (int, int) {
	return g.X.Dims()
}
