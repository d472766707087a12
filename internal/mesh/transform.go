package mesh

// Transform 物体的局部变换：XYZ 顺序的欧拉角旋转加统一缩放
type Transform struct {
	Rotation Vec3    // 欧拉角（弧度）
	Scale    float64 // 统一缩放，0 视为 1
}

// Apply 把局部坐标 v 变换到世界坐标
//
// 旋转矩阵为 Rx·Ry·Rz，即依次绕 Z、Y、X 轴旋转后再缩放。
func (t Transform) Apply(v Vec3) Vec3 {
	scale := t.Scale
	if scale == 0 {
		scale = 1
	}
	return v.Scale(scale).
		RotateZ(t.Rotation.Z).
		RotateY(t.Rotation.Y).
		RotateX(t.Rotation.X)
}
