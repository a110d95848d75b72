package utils

import "math"

// Easing Functions (缓动函数)
//
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 命名与 easings.net 一致，背景特效只用到下面几条曲线。

// EaseInQuad 二次方缓入
// 特点：开始慢，结束较快（流星加速划过）
// 公式：f(t) = t²
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutQuad 二次方缓出
// 特点：开始较快，结束慢（淡入）
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseInOutSine 正弦缓入缓出
// 特点：两端平缓，适合往返漂移、呼吸
// 公式：f(t) = -(cos(πt) - 1) / 2
func EaseInOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// Clamp01 将 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// YoyoProgress 往返补间的归一化进度
//
// elapsed 为补间开始后的时间（已扣除延迟），duration 为单程时长。
// 返回值在 [0,1] 之间来回：0 → 1 → 0 → 1 ...
// yoyo 为 false 时到达 1 后保持不变。
func YoyoProgress(elapsed, duration float64, yoyo bool) float64 {
	if duration <= 0 || elapsed <= 0 {
		if duration <= 0 && elapsed > 0 {
			return 1
		}
		return 0
	}

	cycles := elapsed / duration
	if !yoyo {
		return Clamp01(cycles)
	}

	whole, frac := math.Modf(cycles)
	if int64(whole)%2 == 1 {
		return 1 - frac
	}
	return frac
}
