package extractor

import (
	"image"
	"image/color"
	"image/draw"
)

// XY is a pixel coordinate.
type XY struct {
	X, Y int
}

// Area is an axis-aligned pixel rectangle.
type Area struct {
	Top, Left     int
	Width, Height int
}

// areaFromPixels returns the bounding box of a pixel group, or false for an
// empty group.
func areaFromPixels(pixels []XY) (Area, bool) {
	if len(pixels) == 0 {
		return Area{}, false
	}

	top, bottom := pixels[0].Y, pixels[0].Y
	left, right := pixels[0].X, pixels[0].X
	for _, p := range pixels[1:] {
		if p.Y < top {
			top = p.Y
		}
		if p.Y > bottom {
			bottom = p.Y
		}
		if p.X < left {
			left = p.X
		}
		if p.X > right {
			right = p.X
		}
	}

	return Area{
		Top:    top,
		Left:   left,
		Width:  right - left,
		Height: bottom - top,
	}, true
}

// Right is the x coordinate one past the covered columns.
func (a Area) Right() int {
	return a.Left + a.Width
}

// Bottom is the y coordinate one past the covered rows.
func (a Area) Bottom() int {
	return a.Top + a.Height
}

// Center is the middle pixel of the area.
func (a Area) Center() XY {
	return XY{
		X: a.Left + a.Width/2,
		Y: a.Top + a.Height/2,
	}
}

// Rect converts to a stdlib rectangle.
func (a Area) Rect() image.Rectangle {
	return image.Rect(a.Left, a.Top, a.Right(), a.Bottom())
}

// Fill paints the area with a solid color.
func (a Area) Fill(img *image.RGBA, fill RGB) {
	draw.Draw(img, a.Rect(), image.NewUniform(color.RGBA{R: fill.R, G: fill.G, B: fill.B, A: 255}), image.Point{}, draw.Src)
}
