package components

// Star 曲速星空中的一颗恒星
//
// 恒星不是 ECS 实体：StarfieldSystem 持有一个定长 []Star，
// 重生时原地覆盖对应槽位，每帧零分配。
type Star struct {
	// X, Y 归一化平面坐标，范围 [-1, 1]
	X float64
	Y float64

	// Z 深度，每帧递减（向观察者靠近），越小投影离消失点越远
	Z float64

	// Hue 色相（度）；0 表示中性白色，否则位于蓝-青色带内
	Hue float64
}

// IsTinted 是否为带色相的恒星
func (s Star) IsTinted() bool {
	return s.Hue > 0
}
