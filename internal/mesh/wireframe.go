package mesh

import (
	"fmt"
	"math"
)

// Edge 线框中的一条边（两个顶点下标）
type Edge [2]int

// Wireframe 由顶点和边组成的线框几何
type Wireframe struct {
	Vertices []Vec3
	Edges    []Edge
}

// edgeSet 去重收集无向边
type edgeSet struct {
	seen  map[Edge]struct{}
	edges []Edge
}

func newEdgeSet() *edgeSet {
	return &edgeSet{seen: make(map[Edge]struct{})}
}

func (s *edgeSet) add(a, b int) {
	if a == b {
		return
	}
	if a > b {
		a, b = b, a
	}
	e := Edge{a, b}
	if _, ok := s.seen[e]; ok {
		return
	}
	s.seen[e] = struct{}{}
	s.edges = append(s.edges, e)
}

// vertexIndex 通过量化坐标合并重复顶点
type vertexIndex struct {
	index    map[[3]int64]int
	vertices []Vec3
}

func newVertexIndex() *vertexIndex {
	return &vertexIndex{index: make(map[[3]int64]int)}
}

func (vi *vertexIndex) add(v Vec3) int {
	const q = 1e6
	key := [3]int64{
		int64(math.Round(v.X * q)),
		int64(math.Round(v.Y * q)),
		int64(math.Round(v.Z * q)),
	}
	if i, ok := vi.index[key]; ok {
		return i
	}
	vi.vertices = append(vi.vertices, v)
	i := len(vi.vertices) - 1
	vi.index[key] = i
	return i
}

// Icosahedron 生成半径为 radius 的（细分）正二十面体线框
//
// detail 为每条原始边的额外细分次数：0 为 20 个面，1 为 80 个面。
// 细分后的顶点投影到球面上。
func Icosahedron(radius float64, detail int) (Wireframe, error) {
	if radius <= 0 {
		return Wireframe{}, fmt.Errorf("icosahedron radius must be positive, got %v", radius)
	}
	if detail < 0 {
		return Wireframe{}, fmt.Errorf("icosahedron detail must be >= 0, got %d", detail)
	}

	t := (1 + math.Sqrt(5)) / 2
	base := []Vec3{
		{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	}
	faces := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}

	vi := newVertexIndex()
	es := newEdgeSet()
	cols := detail + 1
	project := func(v Vec3) int {
		return vi.add(v.Normalize().Scale(radius))
	}

	for _, f := range faces {
		a, b, c := base[f[0]], base[f[1]], base[f[2]]

		// grid[i][j]: 从 a 走向 c 的第 i 行，该行从 aj 到 bj 的第 j 个点
		grid := make([][]int, cols+1)
		for i := 0; i <= cols; i++ {
			aj := a.Lerp(c, float64(i)/float64(cols))
			bj := b.Lerp(c, float64(i)/float64(cols))
			rows := cols - i
			grid[i] = make([]int, rows+1)
			for j := 0; j <= rows; j++ {
				if j == 0 && i == cols {
					grid[i][j] = project(aj)
				} else {
					grid[i][j] = project(aj.Lerp(bj, float64(j)/float64(rows)))
				}
			}
		}

		for i := 0; i < cols; i++ {
			for j := 0; j < 2*(cols-i)-1; j++ {
				k := j / 2
				var v0, v1, v2 int
				if j%2 == 0 {
					v0, v1, v2 = grid[i][k+1], grid[i+1][k], grid[i][k]
				} else {
					v0, v1, v2 = grid[i][k+1], grid[i+1][k+1], grid[i+1][k]
				}
				es.add(v0, v1)
				es.add(v1, v2)
				es.add(v2, v0)
			}
		}
	}

	return Wireframe{Vertices: vi.vertices, Edges: es.edges}, nil
}

// Torus 生成圆环线框
//
// 参数：
//   - radius: 圆环中心到管道中心的距离
//   - tube: 管道半径
//   - radialSegments: 管道截面的分段数
//   - tubularSegments: 沿圆环方向的分段数
//
// 每个四边形网格绘制四条边中的两条加一条对角线，与三角面线框一致。
func Torus(radius, tube float64, radialSegments, tubularSegments int) (Wireframe, error) {
	if radius <= 0 || tube <= 0 {
		return Wireframe{}, fmt.Errorf("torus radii must be positive, got %v/%v", radius, tube)
	}
	if radialSegments < 3 || tubularSegments < 3 {
		return Wireframe{}, fmt.Errorf("torus needs at least 3 segments, got %d/%d", radialSegments, tubularSegments)
	}

	vertices := make([]Vec3, 0, radialSegments*tubularSegments)
	for j := 0; j < radialSegments; j++ {
		v := float64(j) / float64(radialSegments) * 2 * math.Pi
		sv, cv := math.Sincos(v)
		for i := 0; i < tubularSegments; i++ {
			u := float64(i) / float64(tubularSegments) * 2 * math.Pi
			su, cu := math.Sincos(u)
			vertices = append(vertices, Vec3{
				X: (radius + tube*cv) * cu,
				Y: (radius + tube*cv) * su,
				Z: tube * sv,
			})
		}
	}

	at := func(j, i int) int {
		return (j%radialSegments)*tubularSegments + i%tubularSegments
	}
	es := newEdgeSet()
	for j := 0; j < radialSegments; j++ {
		for i := 0; i < tubularSegments; i++ {
			es.add(at(j, i), at(j, i+1))
			es.add(at(j, i), at(j+1, i))
			es.add(at(j+1, i), at(j, i+1))
		}
	}

	return Wireframe{Vertices: vertices, Edges: es.edges}, nil
}
