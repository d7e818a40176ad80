package calculator

import (
	"fmt"

	"dpp/model"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// HeightField 曲面高度场，Z 与 A、B 同形状
type HeightField struct {
	A *mat.Dense
	B *mat.Dense
	C float64
	Z *mat.Dense
}

// Height 1 + 2abc - a² - b² - c²
func Height(a, b, c float64) float64 {
	return 1 + 2*a*b*c - a*a - b*b - c*c
}

// Evaluate 逐点计算高度场，c 广播到每个元素
func Evaluate(a, b mat.Matrix, c float64) (*mat.Dense, error) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d", ErrShapeMismatch, ar, ac, br, bc)
	}
	z := mat.NewDense(ar, ac, nil)
	z.Apply(func(i, j int, v float64) float64 {
		return Height(v, b.At(i, j), c)
	}, a)
	return z, nil
}

// Range z 的最小值和最大值
func (f *HeightField) Range() (float64, float64) {
	rows, _ := f.Z.Dims()
	lo, hi := f.Z.At(0, 0), f.Z.At(0, 0)
	for i := 0; i < rows; i++ {
		row := f.Z.RawRowView(i)
		lo = min(lo, floats.Min(row))
		hi = max(hi, floats.Max(row))
	}
	return lo, hi
}

// Data 转换为推送给前端的数据结构
func (f *HeightField) Data() model.FieldData {
	rows, cols := f.Z.Dims()
	data := model.FieldData{
		A: mat.Row(nil, 0, f.A),
		B: mat.Col(nil, 0, f.B),
		C: f.C,
		Z: make([][]float64, rows),
	}
	for i := 0; i < rows; i++ {
		data.Z[i] = mat.Row(make([]float64, cols), i, f.Z)
	}
	data.ZMin, data.ZMax = f.Range()
	return data
}
