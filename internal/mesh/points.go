package mesh

import "math/rand/v2"

// RandomPointCloud 在以原点为中心、边长为 spread 的立方体内均匀随机撒点
func RandomPointCloud(rng *rand.Rand, count int, spread float64) []Vec3 {
	if count <= 0 {
		return nil
	}
	points := make([]Vec3, count)
	for i := range points {
		points[i] = Vec3{
			X: (rng.Float64() - 0.5) * spread,
			Y: (rng.Float64() - 0.5) * spread,
			Z: (rng.Float64() - 0.5) * spread,
		}
	}
	return points
}
