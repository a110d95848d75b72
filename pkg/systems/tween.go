package systems

import (
	"github.com/decker502/warpfield/pkg/components"
	"github.com/decker502/warpfield/pkg/utils"
)

// advanceTween 推进补间时间
func advanceTween(tw *components.TweenComponent, dt float64) {
	tw.Elapsed += dt
}

// tweenProgress 补间的线性进度 [0,1]（未缓动），延迟期间为 0
func tweenProgress(tw *components.TweenComponent) float64 {
	return utils.YoyoProgress(tw.Elapsed-tw.Delay, tw.Duration, tw.Yoyo)
}
