package raster

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/chewxy/math32"

	"xform3d/pkg/math3d"
)

// BoxEdges are the twelve edges of a box whose corner i takes its X, Y and
// Z from bits 0, 1 and 2 of i, 0 for the minimum and 1 for the maximum.
var BoxEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7}, // along X
	{0, 2}, {1, 3}, {4, 6}, {5, 7}, // along Y
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // along Z
}

// BoxCorners returns the corners of the box in BoxEdges order.
func BoxCorners(lo, hi math3d.Vector3) [8]math3d.Vector3 {
	var c [8]math3d.Vector3
	for i := range c {
		c[i] = lo
		if i&1 != 0 {
			c[i].X = hi.X
		}
		if i&2 != 0 {
			c[i].Y = hi.Y
		}
		if i&4 != 0 {
			c[i].Z = hi.Z
		}
	}
	return c
}

// Canvas projects world-space geometry through ViewProj onto Img.
type Canvas struct {
	Img      *image.RGBA
	ViewProj math3d.Matrix4
}

func NewCanvas(width, height int, viewProj math3d.Matrix4) *Canvas {
	return &Canvas{
		Img:      image.NewRGBA(image.Rect(0, 0, width, height)),
		ViewProj: viewProj,
	}
}

func (c *Canvas) Clear(col color.RGBA) {
	draw.Draw(c.Img, c.Img.Rect, &image.Uniform{C: col}, image.Point{}, draw.Src)
}

// Project returns the pixel p lands on. ok is false when p is at or behind
// the camera plane, where the perspective divide is meaningless. Pixels
// off the image are still returned.
func (c *Canvas) Project(p math3d.Vector3) (x, y int, ok bool) {
	sx, sy, ok := c.screen(p)
	if !ok {
		return 0, 0, false
	}
	return int(math32.Floor(sx)), int(math32.Floor(sy)), true
}

func (c *Canvas) screen(p math3d.Vector3) (x, y float32, ok bool) {
	clip := c.ViewProj.MulVector4(math3d.Point(p))
	if clip.W <= math3d.Epsilon {
		return 0, 0, false
	}
	w, h := float32(c.Img.Rect.Dx()), float32(c.Img.Rect.Dy())
	x = (clip.X/clip.W + 1) * 0.5 * w
	y = (1 - clip.Y/clip.W) * 0.5 * h
	return x, y, true
}

// Segment draws the line between two world-space points. It is dropped
// whole when either end fails to project.
func (c *Canvas) Segment(a, b math3d.Vector3, col color.RGBA) {
	x0, y0, ok := c.screen(a)
	if !ok {
		return
	}
	x1, y1, ok := c.screen(b)
	if !ok {
		return
	}
	w, h := float32(c.Img.Rect.Dx()-1), float32(c.Img.Rect.Dy()-1)
	x0, y0, x1, y1, ok = clipLine(x0, y0, x1, y1, w, h)
	if !ok {
		return
	}
	DrawLine(c.Img,
		int(math32.Floor(x0)), int(math32.Floor(y0)),
		int(math32.Floor(x1)), int(math32.Floor(y1)),
		col)
}

// Box draws the twelve edges of an axis-aligned box.
func (c *Canvas) Box(lo, hi math3d.Vector3, col color.RGBA) {
	c.wire(BoxCorners(lo, hi), col)
}

// Cube draws the unit cube centered at the origin transformed by model.
func (c *Canvas) Cube(model math3d.Matrix4, col color.RGBA) {
	corners := BoxCorners(math3d.Splat3(-0.5), math3d.Splat3(0.5))
	for i := range corners {
		corners[i] = model.TransformPoint(corners[i])
	}
	c.wire(corners, col)
}

func (c *Canvas) wire(corners [8]math3d.Vector3, col color.RGBA) {
	for _, e := range BoxEdges {
		c.Segment(corners[e[0]], corners[e[1]], col)
	}
}
