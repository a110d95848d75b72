package components

// PositionComponent 屏幕坐标（像素）
type PositionComponent struct {
	X, Y float64
}
