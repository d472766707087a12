// Package mesh 提供背景场景使用的 3D 几何：向量、欧拉旋转、
// 线框多面体/圆环、随机点云以及透视投影。
//
// 坐标系与常见的右手系一致：X 向右，Y 向上，Z 指向观察者。
package mesh

import "math"

// Vec3 三维向量
type Vec3 struct {
	X, Y, Z float64
}

// Add 返回 v + o
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub 返回 v - o
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale 返回 v * k
func (v Vec3) Scale(k float64) Vec3 {
	return Vec3{v.X * k, v.Y * k, v.Z * k}
}

// Len 返回向量长度
func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize 返回单位向量，零向量原样返回
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Lerp 在 v 和 o 之间线性插值
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{
		v.X + (o.X-v.X)*t,
		v.Y + (o.Y-v.Y)*t,
		v.Z + (o.Z-v.Z)*t,
	}
}

// RotateX 绕 X 轴旋转 r 弧度
func (v Vec3) RotateX(r float64) Vec3 {
	s, c := math.Sincos(r)
	return Vec3{v.X, v.Y*c - v.Z*s, v.Y*s + v.Z*c}
}

// RotateY 绕 Y 轴旋转 r 弧度
func (v Vec3) RotateY(r float64) Vec3 {
	s, c := math.Sincos(r)
	return Vec3{v.X*c + v.Z*s, v.Y, -v.X*s + v.Z*c}
}

// RotateZ 绕 Z 轴旋转 r 弧度
func (v Vec3) RotateZ(r float64) Vec3 {
	s, c := math.Sincos(r)
	return Vec3{v.X*c - v.Y*s, v.X*s + v.Y*c, v.Z}
}
