package components

import "github.com/decker502/warpfield/pkg/config"

// ShootingStarPhase 流星状态机阶段
type ShootingStarPhase int

const (
	// ShootingStarWaiting 等待下一次发射
	ShootingStarWaiting ShootingStarPhase = iota
	// ShootingStarFlying 正在划过屏幕
	ShootingStarFlying
	// ShootingStarFading 到达终点后淡出
	ShootingStarFading
)

// String 返回阶段名（用于日志）
func (p ShootingStarPhase) String() string {
	switch p {
	case ShootingStarWaiting:
		return "waiting"
	case ShootingStarFlying:
		return "flying"
	case ShootingStarFading:
		return "fading"
	default:
		return "unknown"
	}
}

// ShootingStarComponent 一颗流星的运行时状态
//
// 流星实体常驻，不会被销毁：飞行结束后回到 Waiting 阶段，冷却后重新发射。
// 当前头部位置保存在同一实体的 PositionComponent 中。
type ShootingStarComponent struct {
	Phase ShootingStarPhase

	// Timer 当前阶段已经过的时间（秒）
	Timer float64

	// Wait 本次等待时长（秒）；首次等待来自配置的 InitialDelays
	Wait float64

	// 本次飞行的起止点与时长
	StartX, StartY float64
	EndX, EndY     float64
	Duration       float64

	// Angle 飞行角度（度）
	Angle float64

	// Alpha 当前不透明度（0-1）
	Alpha float64

	Color config.RGB

	// Launches 已发射次数
	Launches int
}
