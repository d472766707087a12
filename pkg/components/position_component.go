package components

// PositionComponent 屏幕坐标（左上角，像素）
type PositionComponent struct {
	X float64
	Y float64
}
