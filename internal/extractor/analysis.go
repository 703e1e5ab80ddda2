package extractor

import (
	"errors"
	"image"
	"math"
)

// Normalization ranges for LAB gradient components.
const (
	labRangeL  = 100.0
	labRangeAB = 128.0
)

// AverageColors holds the box-averaged LAB color of every pixel. Averaging
// over a small window suppresses sensor noise before edge detection.
type AverageColors struct {
	width  int
	height int
	radius int
	colors []LAB
}

// NewAverageColors averages each pixel's LAB color over a window with the
// given radius.
func NewAverageColors(img *image.RGBA, radius int) (*AverageColors, error) {
	if radius < 1 {
		return nil, errors.New("radius must be at least 1")
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return nil, errors.New("image is empty")
	}

	colors := make([]LAB, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum LAB
			count := 0
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					px := x + dx
					py := y + dy
					if px < 0 || px >= width || py < 0 || py >= height {
						continue
					}
					c := img.RGBAAt(bounds.Min.X+px, bounds.Min.Y+py)
					lab := RGB{R: c.R, G: c.G, B: c.B}.LAB()
					sum.L += lab.L
					sum.A += lab.A
					sum.B += lab.B
					count++
				}
			}
			colors[y*width+x] = LAB{
				L: sum.L / float64(count),
				A: sum.A / float64(count),
				B: sum.B / float64(count),
			}
		}
	}

	return &AverageColors{
		width:  width,
		height: height,
		radius: radius,
		colors: colors,
	}, nil
}

// AverageColor returns the averaged LAB color at a pixel.
func (a *AverageColors) AverageColor(p XY) LAB {
	return a.colors[a.clampY(p.Y)*a.width+a.clampX(p.X)]
}

func (a *AverageColors) clampX(x int) int {
	if x < 0 {
		return 0
	}
	if x >= a.width {
		return a.width - 1
	}
	return x
}

func (a *AverageColors) clampY(y int) int {
	if y < 0 {
		return 0
	}
	if y >= a.height {
		return a.height - 1
	}
	return y
}

// GradientPoint is the normalized LAB difference across a pixel, one
// component per channel, each in [-1, 1].
type GradientPoint struct {
	diffL float64
	diffA float64
	diffB float64
}

// DiffL is the normalized lightness difference.
func (g GradientPoint) DiffL() float64 { return g.diffL }

// DiffA is the normalized a-channel difference.
func (g GradientPoint) DiffA() float64 { return g.diffA }

// DiffB is the normalized b-channel difference.
func (g GradientPoint) DiffB() float64 { return g.diffB }

// Gradient holds the per-pixel color change of an image, computed from the
// averaged colors of the neighbors on each axis.
type Gradient struct {
	width  int
	height int
	points []GradientPoint
}

// NewGradient computes the gradient of every pixel.
func NewGradient(averages *AverageColors) (*Gradient, error) {
	if averages == nil {
		return nil, errors.New("average colors are required")
	}

	width := averages.width
	height := averages.height
	step := averages.radius

	points := make([]GradientPoint, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			left := averages.AverageColor(XY{X: x - step, Y: y})
			right := averages.AverageColor(XY{X: x + step, Y: y})
			up := averages.AverageColor(XY{X: x, Y: y - step})
			down := averages.AverageColor(XY{X: x, Y: y + step})

			points[y*width+x] = GradientPoint{
				diffL: clampUnit((right.L - left.L + down.L - up.L) / 2.0 / labRangeL),
				diffA: clampUnit((right.A - left.A + down.A - up.A) / 2.0 / labRangeAB),
				diffB: clampUnit((right.B - left.B + down.B - up.B) / 2.0 / labRangeAB),
			}
		}
	}

	return &Gradient{
		width:  width,
		height: height,
		points: points,
	}, nil
}

// GetGradient returns the gradient at a pixel.
func (g *Gradient) GetGradient(p XY) GradientPoint {
	return g.points[p.Y*g.width+p.X]
}

// Edges holds the per-pixel edge strength, the magnitude of the normalized
// LAB gradient. A flat background scores near zero, sticker outlines spike.
type Edges struct {
	width     int
	height    int
	distances []float64
}

// NewEdges computes the edge strength of every pixel.
func NewEdges(gradient *Gradient) (*Edges, error) {
	if gradient == nil {
		return nil, errors.New("gradient is required")
	}

	width := gradient.width
	height := gradient.height

	distances := make([]float64, width*height)
	for i, point := range gradient.points {
		distances[i] = math.Sqrt(point.diffL*point.diffL + point.diffA*point.diffA + point.diffB*point.diffB)
	}

	return &Edges{
		width:     width,
		height:    height,
		distances: distances,
	}, nil
}

// GetDistance returns the edge strength at a pixel.
func (e *Edges) GetDistance(p XY) float64 {
	return e.distances[p.Y*e.width+p.X]
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
