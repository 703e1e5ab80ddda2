package extractor

import (
	"errors"
	"fmt"
	"image"
	"math"
)

// Marker scan geometry. With a 1% step and 30 steps the scan covers the
// outer 30% of each corner.
const (
	markerScanStepPercent = 1
	markerScanSteps       = 30
)

// Marker pixel thresholds in YUV space. Markers are bright and nearly
// colorless.
const (
	markerMinY      = 0.8
	markerMaxChroma = 0.1
)

// Markers are the four bright corner patches framing a sticker sheet. Their
// centers anchor the perspective correction.
type Markers struct {
	topLeft     Area
	topRight    Area
	bottomLeft  Area
	bottomRight Area
}

type corner int

const (
	cornerTopLeft corner = iota
	cornerTopRight
	cornerBottomLeft
	cornerBottomRight
)

// FindMarkers locates all four corner markers and validates their relative
// placement.
func FindMarkers(img *image.RGBA) (Markers, error) {
	topLeft, err := findMarker(img, cornerTopLeft)
	if err != nil {
		return Markers{}, fmt.Errorf("top left marker: %w", err)
	}
	topRight, err := findMarker(img, cornerTopRight)
	if err != nil {
		return Markers{}, fmt.Errorf("top right marker: %w", err)
	}
	bottomLeft, err := findMarker(img, cornerBottomLeft)
	if err != nil {
		return Markers{}, fmt.Errorf("bottom left marker: %w", err)
	}
	bottomRight, err := findMarker(img, cornerBottomRight)
	if err != nil {
		return Markers{}, fmt.Errorf("bottom right marker: %w", err)
	}

	if topLeft.Center().X > topRight.Center().X {
		return Markers{}, errors.New("top left must be to the left of top right")
	}
	if topLeft.Center().X > bottomRight.Center().X {
		return Markers{}, errors.New("top left must be to the left of bottom right")
	}
	if bottomLeft.Center().X > topRight.Center().X {
		return Markers{}, errors.New("bottom left must be to the left of top right")
	}
	if bottomLeft.Center().X > bottomRight.Center().X {
		return Markers{}, errors.New("bottom left must be to the left of bottom right")
	}
	if topLeft.Center().Y > bottomLeft.Center().Y {
		return Markers{}, errors.New("top left must be above bottom left")
	}
	if topLeft.Center().Y > bottomRight.Center().Y {
		return Markers{}, errors.New("top left must be above bottom right")
	}
	if topRight.Center().Y > bottomLeft.Center().Y {
		return Markers{}, errors.New("top right must be above bottom left")
	}
	if topRight.Center().Y > bottomRight.Center().Y {
		return Markers{}, errors.New("top right must be above bottom right")
	}

	return Markers{
		topLeft:     topLeft,
		topRight:    topRight,
		bottomLeft:  bottomLeft,
		bottomRight: bottomRight,
	}, nil
}

// TopLeft returns the top-left marker area.
func (m Markers) TopLeft() Area { return m.topLeft }

// TopRight returns the top-right marker area.
func (m Markers) TopRight() Area { return m.topRight }

// BottomLeft returns the bottom-left marker area.
func (m Markers) BottomLeft() Area { return m.bottomLeft }

// BottomRight returns the bottom-right marker area.
func (m Markers) BottomRight() Area { return m.bottomRight }

// All returns the marker areas.
func (m Markers) All() []Area {
	return []Area{m.topLeft, m.topRight, m.bottomLeft, m.bottomRight}
}

// MiddleOfTopEdge is the point halfway between the top marker centers. It
// always sits on background, which makes it the seed for background removal.
func (m Markers) MiddleOfTopEdge() XY {
	left := m.topLeft.Center()
	right := m.topRight.Center()
	return XY{
		X: (left.X + right.X) / 2,
		Y: (left.Y + right.Y) / 2,
	}
}

func findMarker(img *image.RGBA, c corner) (Area, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	stepX := max(1, markerScanStepPercent*width/100)
	stepY := max(1, markerScanStepPercent*height/100)

	for xi := 0; xi < markerScanSteps; xi++ {
		for yi := 0; yi < markerScanSteps; yi++ {
			var x, y int
			switch c {
			case cornerTopLeft, cornerBottomLeft:
				x = bounds.Min.X + xi*stepX
			default:
				x = bounds.Max.X - 1 - xi*stepX
			}
			switch c {
			case cornerTopLeft, cornerTopRight:
				y = bounds.Min.Y + yi*stepY
			default:
				y = bounds.Max.Y - 1 - yi*stepY
			}

			if !image.Pt(x, y).In(bounds) {
				return Area{}, errors.New("image too small for the marker scan")
			}

			pixels := FloodFill(img, XY{X: x, Y: y}, func(_ XY, c RGB) bool {
				return isMarkerPixel(c)
			})
			if area, ok := areaFromPixels(pixels); ok {
				return area, nil
			}
		}
	}

	return Area{}, errors.New("not found")
}

func isMarkerPixel(c RGB) bool {
	yuv := c.YUV()
	return yuv.Y >= markerMinY &&
		math.Abs(yuv.U) <= markerMaxChroma &&
		math.Abs(yuv.V) <= markerMaxChroma
}
