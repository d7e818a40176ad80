package model

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// 曲面数据，推送给前端
type FieldData struct {
	A    []float64   `json:"a"` // 列方向坐标
	B    []float64   `json:"b"` // 行方向坐标
	C    float64     `json:"c"`
	Z    [][]float64 `json:"z"` // z[i][j] 对应 (a[j], b[i])
	ZMin float64     `json:"z_min"`
	ZMax float64     `json:"z_max"`
}

// 参数扫描请求
type SweepReq struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Count int     `json:"count"`
}

// 当前计算参数
type Env struct {
	Lower    float64 `json:"lower"`
	Upper    float64 `json:"upper"`
	Count    int     `json:"count"`
	C        float64 `json:"c"`
	Colormap string  `json:"colormap"`
}
