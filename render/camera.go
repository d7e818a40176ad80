package render

import "math"

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }
func (v Vec3) Dot(o Vec3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Normalize() Vec3 {
	l := math.Sqrt(v.Dot(v))
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

const (
	minZoom = 0.2
	maxZoom = 5.0

	// 每拖动一个像素旋转的角度
	degreesPerPixel = 0.5
)

// Camera 正交投影相机，角度单位为度
type Camera struct {
	Elevation float64
	Azimuth   float64
	Zoom      float64
}

// DefaultCamera 仰角 30°，方位角 -60°
func DefaultCamera() Camera {
	return Camera{Elevation: 30, Azimuth: -60, Zoom: 1}
}

// basis 屏幕右方向、上方向、指向观察者的方向
func (c Camera) basis() (right, up, eye Vec3) {
	el := c.Elevation * math.Pi / 180
	az := c.Azimuth * math.Pi / 180
	sinEl, cosEl := math.Sincos(el)
	sinAz, cosAz := math.Sincos(az)
	right = Vec3{-sinAz, cosAz, 0}
	up = Vec3{-sinEl * cosAz, -sinEl * sinAz, cosEl}
	eye = Vec3{cosEl * cosAz, cosEl * sinAz, sinEl}
	return
}

// Project 返回视平面坐标和深度，深度越大离观察者越近
func (c Camera) Project(p Vec3) (x, y, depth float64) {
	right, up, eye := c.basis()
	return p.Dot(right), p.Dot(up), p.Dot(eye)
}

// ToScreen 视平面坐标转换为像素坐标，y 轴向下
func (c Camera) ToScreen(p Vec3, width, height int) (float32, float32) {
	x, y, _ := c.Project(p)
	scale := 0.3 * float64(min(width, height)) * c.Zoom
	return float32(float64(width)/2 + x*scale), float32(float64(height)/2 - y*scale)
}

func (c Camera) Eye() Vec3 {
	_, _, eye := c.basis()
	return eye
}

// Rotate 鼠标拖动 dx, dy 像素
func (c *Camera) Rotate(dx, dy float64) {
	c.Azimuth = math.Mod(c.Azimuth-dx*degreesPerPixel, 360)
	c.Elevation = math.Max(-90, math.Min(90, c.Elevation+dy*degreesPerPixel))
}

// ZoomBy 滚轮缩放
func (c *Camera) ZoomBy(delta float64) {
	c.Zoom = math.Max(minZoom, math.Min(maxZoom, c.Zoom*math.Pow(1.1, delta)))
}
