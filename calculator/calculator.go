package calculator

import (
	"fmt"
	"time"

	"dpp/config"

	log "github.com/sirupsen/logrus"
)

// Calculator 根据配置构建网格并计算高度场
type Calculator struct {
	grid    config.Grid
	surface config.Surface
}

// NewCalculator 使用网格与曲面参数创建计算器
func NewCalculator(grid config.Grid, surface config.Surface) *Calculator {
	return &Calculator{
		grid:    grid,
		surface: surface,
	}
}

// BuildGrid a、b 两个方向使用相同的取值区间
func (c *Calculator) BuildGrid() (Grid, error) {
	a, err := Linspace(c.grid.Lower, c.grid.Upper, c.grid.Count)
	if err != nil {
		return Grid{}, err
	}
	b, err := Linspace(c.grid.Lower, c.grid.Upper, c.grid.Count)
	if err != nil {
		return Grid{}, err
	}
	return Meshgrid(a, b)
}

// Calculate 构建网格 -> 计算高度场
func (c *Calculator) Calculate() (*HeightField, error) {
	start := time.Now()
	grid, err := c.BuildGrid()
	if err != nil {
		return nil, err
	}
	field, err := evaluateGrid(grid, c.surface.C)
	if err != nil {
		return nil, err
	}
	zMin, zMax := field.Range()
	log.WithFields(log.Fields{
		"count": c.grid.Count,
		"c":     c.surface.C,
		"z_min": zMin,
		"z_max": zMax,
		"cost":  time.Since(start),
	}).Info("高度场计算完成")
	return field, nil
}

// Sweep 将 c 作为第三个变化的轴，每个取值计算一个高度场
func (c *Calculator) Sweep(cs []float64) ([]*HeightField, error) {
	grid, err := c.BuildGrid()
	if err != nil {
		return nil, err
	}
	fields := make([]*HeightField, 0, len(cs))
	for _, v := range cs {
		field, err := evaluateGrid(grid, v)
		if err != nil {
			return nil, fmt.Errorf("sweep c=%v: %w", v, err)
		}
		fields = append(fields, field)
	}
	log.WithField("surfaces", len(fields)).Debug("参数扫描完成")
	return fields, nil
}

func evaluateGrid(grid Grid, c float64) (*HeightField, error) {
	z, err := Evaluate(grid.X, grid.Y, c)
	if err != nil {
		return nil, err
	}
	return &HeightField{
		A: grid.X,
		B: grid.Y,
		C: c,
		Z: z,
	}, nil
}
