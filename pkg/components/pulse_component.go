package components

// PulseComponent 随真实经过时间正弦振荡的统一缩放
//
// scale = Base + Amplitude * sin(elapsed * AngularSpeed)
// elapsed 取自渲染循环启动以来的墙钟时间，与帧率无关。
type PulseComponent struct {
	Base         float64 // 基础缩放（通常为 1）
	Amplitude    float64 // 振幅
	AngularSpeed float64 // 角速度（弧度/秒），周期 = 2π / AngularSpeed
}
