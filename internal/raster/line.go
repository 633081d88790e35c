// Package raster draws wireframes into an image.RGBA with no GPU.
package raster

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
)

// DrawLine draws a line on the image from (x1, y1) to (x2, y2) with a DDA
// walk. Pixels outside the image are skipped.
func DrawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	dx := float32(x2 - x1)
	dy := float32(y2 - y1)
	steps := math32.Max(math32.Abs(dx), math32.Abs(dy))
	if steps == 0 {
		setPixel(img, x1, y1, col)
		return
	}

	xInc := dx / steps
	yInc := dy / steps

	x := float32(x1) + 0.5
	y := float32(y1) + 0.5

	for i := 0; i <= int(steps); i++ {
		setPixel(img, int(math32.Floor(x)), int(math32.Floor(y)), col)
		x += xInc
		y += yInc
	}
}

func setPixel(img *image.RGBA, x, y int, col color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(img.Rect) {
		return
	}
	offset := img.PixOffset(x, y)
	img.Pix[offset] = col.R
	img.Pix[offset+1] = col.G
	img.Pix[offset+2] = col.B
	img.Pix[offset+3] = col.A
}

// clipLine clips the segment to the rectangle [0, w] × [0, h] with
// Liang-Barsky. ok is false when nothing of it is left.
func clipLine(x0, y0, x1, y1, w, h float32) (cx0, cy0, cx1, cy1 float32, ok bool) {
	t0, t1 := float32(0), float32(1)
	dx, dy := x1-x0, y1-y0

	clip := func(p, q float32) bool {
		if p == 0 {
			return q >= 0
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return false
			}
			if r < t1 {
				t1 = r
			}
		}
		return true
	}

	if !clip(-dx, x0) || !clip(dx, w-x0) || !clip(-dy, y0) || !clip(dy, h-y0) {
		return 0, 0, 0, 0, false
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}
