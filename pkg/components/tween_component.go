package components

// TweenComponent 往返（yoyo）补间的时间状态
//
// 只记录时间，插值结果由各系统根据自己的起止值计算。
// 一个实体可以同时挂多个补间（漂移、呼吸），所以它作为值类型嵌入在其他组件里，
// 而不是单独注册到 EntityManager。
type TweenComponent struct {
	// Duration 单程时长（秒），往返一次为 2*Duration
	Duration float64

	// Delay 开始前的等待时间（秒）
	Delay float64

	// Elapsed 已经过的时间（秒，包含 Delay）
	Elapsed float64

	// Yoyo 为 true 时到达终点后反向，否则停在终点
	Yoyo bool
}
