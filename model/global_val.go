package model

// 曲面参数
// 1. a、b 两个方向取值区间 [-1, 1]
// 2. 每个方向 100 个采样点
// 3. 第三个变量 c 固定为 0.5

const (
	Lower = -1.0
	Upper = 1.0
	Count = 100

	C = 0.5

	Colormap = "rainbow"
)
