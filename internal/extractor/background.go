package extractor

import (
	"errors"
	"image"
)

// Background holds sampled background colors near each marker. The samples
// sit one marker-size inset toward the image center, clear of the marker
// itself.
type Background struct {
	measurements []Measurement
}

// Measurement is one sampled background patch.
type Measurement struct {
	Area  Area
	Color RGB
}

// AnalyseBackground samples the background color beside every marker.
func AnalyseBackground(img *image.RGBA, markers Markers) (Background, error) {
	bounds := img.Bounds()
	center := XY{
		X: bounds.Min.X + bounds.Dx()/2,
		Y: bounds.Min.Y + bounds.Dy()/2,
	}

	var measurements []Measurement
	for _, marker := range markers.All() {
		sample := sampleAreaTowardCenter(marker, center)
		rect := sample.Rect().Intersect(bounds)
		if rect.Empty() {
			return Background{}, errors.New("background sample is outside the image")
		}

		var sumR, sumG, sumB, count int
		for y := rect.Min.Y; y < rect.Max.Y; y++ {
			for x := rect.Min.X; x < rect.Max.X; x++ {
				c := img.RGBAAt(x, y)
				sumR += int(c.R)
				sumG += int(c.G)
				sumB += int(c.B)
				count++
			}
		}

		measurements = append(measurements, Measurement{
			Area: Area{
				Top:    rect.Min.Y,
				Left:   rect.Min.X,
				Width:  rect.Dx(),
				Height: rect.Dy(),
			},
			Color: RGB{
				R: uint8(sumR / count),
				G: uint8(sumG / count),
				B: uint8(sumB / count),
			},
		})
	}

	return Background{measurements: measurements}, nil
}

// Measurements returns the sampled patches.
func (b Background) Measurements() []Measurement {
	return b.measurements
}

// ExpectedColor returns the sampled background color closest to a pixel.
func (b Background) ExpectedColor(p XY) RGB {
	var nearest RGB
	best := -1
	for _, m := range b.measurements {
		c := m.Area.Center()
		dx := c.X - p.X
		dy := c.Y - p.Y
		d := dx*dx + dy*dy
		if best < 0 || d < best {
			best = d
			nearest = m.Color
		}
	}
	return nearest
}

// sampleAreaTowardCenter shifts a marker-sized box one marker dimension
// toward the image center on each axis.
func sampleAreaTowardCenter(marker Area, center XY) Area {
	sample := marker
	if marker.Center().X < center.X {
		sample.Left = marker.Right() + marker.Width
	} else {
		sample.Left = marker.Left - 2*marker.Width
	}
	if marker.Center().Y < center.Y {
		sample.Top = marker.Bottom() + marker.Height
	} else {
		sample.Top = marker.Top - 2*marker.Height
	}
	return sample
}
