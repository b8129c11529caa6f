package symbol

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Metrics of [basicfont.Face7x13].
const (
	textAscent = 11
	textHeight = 13
)

// kappa places cubic Bézier control points for a quarter circle.
const kappa = 0.5523

// canvas draws anti-aliased filled shapes and text onto an RGBA image.
type canvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

func newCanvas(w, h int) *canvas {
	return &canvas{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		z:   vector.NewRasterizer(w, h),
	}
}

func (c *canvas) clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// fill rasterizes the path built by path and paints it with col.
func (c *canvas) fill(col color.Color, path func(z *vector.Rasterizer)) {
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	path(c.z)
	c.z.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

func (c *canvas) rect(col color.Color, x0, y0, x1, y1 float32) {
	c.fill(col, func(z *vector.Rasterizer) {
		z.MoveTo(x0, y0)
		z.LineTo(x1, y0)
		z.LineTo(x1, y1)
		z.LineTo(x0, y1)
		z.ClosePath()
	})
}

// strokeRect draws the outline of a rectangle with the stroke inside the
// given bounds.
func (c *canvas) strokeRect(col color.Color, x0, y0, x1, y1, w float32) {
	c.rect(col, x0, y0, x1, y0+w)
	c.rect(col, x0, y1-w, x1, y1)
	c.rect(col, x0, y0, x0+w, y1)
	c.rect(col, x1-w, y0, x1, y1)
}

// line draws a segment of width w as a filled quadrilateral.
func (c *canvas) line(col color.Color, x0, y0, x1, y1, w float32) {
	dx, dy := x1-x0, y1-y0

	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}

	nx, ny := -dy/length*w/2, dx/length*w/2

	c.fill(col, func(z *vector.Rasterizer) {
		z.MoveTo(x0+nx, y0+ny)
		z.LineTo(x1+nx, y1+ny)
		z.LineTo(x1-nx, y1-ny)
		z.LineTo(x0-nx, y0-ny)
		z.ClosePath()
	})
}

func (c *canvas) circle(col color.Color, cx, cy, r float32) {
	k := kappa * r

	c.fill(col, func(z *vector.Rasterizer) {
		z.MoveTo(cx+r, cy)
		z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
		z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
		z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
		z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
		z.ClosePath()
	})
}

// text draws s with its baseline at y.
func (c *canvas) text(col color.Color, x, y int, s string) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func textWidth(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Ceil()
}

// scaled returns img enlarged by an integer factor with replicated pixels.
func scaled(img *image.RGBA, factor int) *image.RGBA {
	if factor <= 1 {
		return img
	}

	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	return dst
}
