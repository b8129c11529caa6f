package main

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/draw"
)

// fitImage scales img to fit within cols x rows terminal cells, where each
// cell holds two vertical pixels. The image is never enlarged beyond its own
// size, and is centered on a canvas filled with bg.
func fitImage(img image.Image, cols, rows int, bg color.Color) *image.RGBA {
	pixW := max(cols, 1)
	pixH := max(rows, 1) * 2

	dst := image.NewRGBA(image.Rect(0, 0, pixW, pixH))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	src := img.Bounds()
	if src.Empty() {
		return dst
	}

	scale := min(float64(pixW)/float64(src.Dx()), float64(pixH)/float64(src.Dy()), 1)

	newW := max(int(float64(src.Dx())*scale), 1)
	newH := max(int(float64(src.Dy())*scale), 1)

	offsetX := (pixW - newW) / 2
	offsetY := (pixH - newH) / 2

	dstRect := image.Rect(offsetX, offsetY, offsetX+newW, offsetY+newH)
	draw.ApproxBiLinear.Scale(dst, dstRect, img, src, draw.Over, nil)

	return dst
}

// halfBlocks writes img as rows of "▀" characters: the foreground color is
// the upper pixel and the background color the lower one. Rows are joined
// with newlines, without a trailing one.
func halfBlocks(img *image.RGBA, w *strings.Builder) {
	b := img.Bounds()

	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			w.WriteByte('\n')
		}

		for x := b.Min.X; x < b.Max.X; x++ {
			top := img.RGBAAt(x, y)

			var bot color.RGBA
			if y+1 < b.Max.Y {
				bot = img.RGBAAt(x, y+1)
			}

			fmt.Fprintf(w, "\033[38;2;%d;%d;%dm\033[48;2;%d;%d;%dm▀", top.R, top.G, top.B, bot.R, bot.G, bot.B)
		}

		w.WriteString("\033[0m")
	}
}
