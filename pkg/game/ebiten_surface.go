package game

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// 每次 DrawTriangles 提交的最大四边形数量（uint16 索引上限内）
const maxQuadsPerBatch = 4096

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// EbitenSurface 基于离屏 ebiten.Image 的绘制表面
// 背景渲染到该图像，App.Draw 再把它合成到屏幕上
type EbitenSurface struct {
	image *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewEbitenSurface 创建指定尺寸的离屏表面
//
// ebiten 在无法创建图像时会 panic，这里把它转换成 ErrSurfaceUnavailable，
// 以便背景渲染循环降级运行。
func NewEbitenSurface(width, height int) (s Surface, err error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid size %dx%d", ErrSurfaceUnavailable, width, height)
	}
	defer func() {
		if r := recover(); r != nil {
			s = nil
			err = fmt.Errorf("%w: %v", ErrSurfaceUnavailable, r)
		}
	}()
	return &EbitenSurface{image: ebiten.NewImage(width, height)}, nil
}

// Image 返回底层离屏图像，表面释放后返回 nil
func (s *EbitenSurface) Image() *ebiten.Image {
	return s.image
}

// Size 返回表面像素尺寸
func (s *EbitenSurface) Size() (int, int) {
	if s.image == nil {
		return 0, 0
	}
	b := s.image.Bounds()
	return b.Dx(), b.Dy()
}

// Resize 重新分配指定尺寸的离屏图像
func (s *EbitenSurface) Resize(width, height int) {
	if s.image == nil || width <= 0 || height <= 0 {
		return
	}
	if w, h := s.Size(); w == width && h == height {
		return
	}
	s.image.Deallocate()
	s.image = ebiten.NewImage(width, height)
}

// Clear 清空表面
func (s *EbitenSurface) Clear() {
	if s.image != nil {
		s.image.Clear()
	}
}

// DrawPoints 把每个点绘制成边长为 size 的方块
func (s *EbitenSurface) DrawPoints(points []Point2, size float32, clr color.RGBA, additive bool) {
	if s.image == nil || len(points) == 0 {
		return
	}
	half := size / 2
	op := &ebiten.DrawTrianglesOptions{}
	if additive {
		op.Blend = ebiten.BlendLighter
	}

	for start := 0; start < len(points); start += maxQuadsPerBatch {
		end := min(start+maxQuadsPerBatch, len(points))
		s.resetBatch()
		for _, p := range points[start:end] {
			s.appendQuad(
				p.X-half, p.Y-half,
				p.X+half, p.Y-half,
				p.X-half, p.Y+half,
				p.X+half, p.Y+half,
				clr,
			)
		}
		s.image.DrawTriangles(s.vertices, s.indices, whiteSubImage, op)
	}
}

// DrawLines 把每条线段绘制成宽度为 width 的四边形
func (s *EbitenSurface) DrawLines(segments []Segment2, width float32, clr color.RGBA) {
	if s.image == nil || len(segments) == 0 {
		return
	}
	half := width / 2
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}

	for start := 0; start < len(segments); start += maxQuadsPerBatch {
		end := min(start+maxQuadsPerBatch, len(segments))
		s.resetBatch()
		for _, seg := range segments[start:end] {
			dx := seg.To.X - seg.From.X
			dy := seg.To.Y - seg.From.Y
			length := float32(math.Hypot(float64(dx), float64(dy)))
			if length == 0 {
				continue
			}
			nx := -dy / length * half
			ny := dx / length * half
			s.appendQuad(
				seg.From.X+nx, seg.From.Y+ny,
				seg.From.X-nx, seg.From.Y-ny,
				seg.To.X+nx, seg.To.Y+ny,
				seg.To.X-nx, seg.To.Y-ny,
				clr,
			)
		}
		if len(s.indices) > 0 {
			s.image.DrawTriangles(s.vertices, s.indices, whiteSubImage, op)
		}
	}
}

// DrawTo 把表面内容合成到 dst 的左上角
func (s *EbitenSurface) DrawTo(dst *ebiten.Image) {
	if s.image == nil || dst == nil {
		return
	}
	dst.DrawImage(s.image, nil)
}

// Dispose 释放离屏图像，可以重复调用
func (s *EbitenSurface) Dispose() {
	if s.image == nil {
		return
	}
	s.image.Deallocate()
	s.image = nil
	s.vertices = nil
	s.indices = nil
}

func (s *EbitenSurface) resetBatch() {
	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
}

// appendQuad 追加一个四边形，顶点顺序：左上、右上、左下、右下
func (s *EbitenSurface) appendQuad(x0, y0, x1, y1, x2, y2, x3, y3 float32, clr color.RGBA) {
	// 顶点颜色使用预乘 alpha
	a := float32(clr.A) / 0xff
	r := float32(clr.R) / 0xff * a
	g := float32(clr.G) / 0xff * a
	b := float32(clr.B) / 0xff * a

	base := uint16(len(s.vertices))
	for _, p := range [4][2]float32{{x0, y0}, {x1, y1}, {x2, y2}, {x3, y3}} {
		s.vertices = append(s.vertices, ebiten.Vertex{
			DstX: p[0], DstY: p[1],
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	s.indices = append(s.indices, base, base+1, base+2, base+1, base+3, base+2)
}
