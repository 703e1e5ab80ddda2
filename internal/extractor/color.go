package extractor

import (
	"fmt"
	"math"
)

// D65/2 degree reference white for the XYZ and LAB conversions.
const (
	referenceX = 109.850
	referenceY = 100.000
	referenceZ = 35.585
)

// RGB is an 8-bit standard RGB color.
type RGB struct {
	R, G, B uint8
}

// YUV is a normalized YUV color. Y is in [0, 1], U and V are signed chroma
// components bounded by yuvMaxU and yuvMaxV.
type YUV struct {
	Y, U, V float64
}

// LAB is a CIE L*a*b* color.
type LAB struct {
	L, A, B float64
}

// XYZ is a CIE XYZ color under the D65/2 degree illuminant.
type XYZ struct {
	X, Y, Z float64
}

const (
	yuvMaxY = 1.0
	yuvMaxU = 0.436
	yuvMaxV = 0.615
)

// NewYUV validates component ranges.
func NewYUV(y, u, v float64) (YUV, error) {
	if y < 0 {
		return YUV{}, fmt.Errorf("y can't be negative")
	}
	if y > yuvMaxY {
		return YUV{}, fmt.Errorf("y can't be above %v", yuvMaxY)
	}
	if math.Abs(u) > yuvMaxU {
		return YUV{}, fmt.Errorf("u can't be above %v", yuvMaxU)
	}
	if math.Abs(v) > yuvMaxV {
		return YUV{}, fmt.Errorf("v can't be above %v", yuvMaxV)
	}
	return YUV{Y: y, U: u, V: v}, nil
}

// YUV converts to normalized YUV.
func (c RGB) YUV() YUV {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0
	y := 0.299*r + 0.587*g + 0.114*b
	return YUV{
		Y: y,
		U: 0.492 * (b - y),
		V: 0.877 * (r - y),
	}
}

// XYZ converts through the sRGB companding curve.
func (c RGB) XYZ() XYZ {
	expand := func(v float64) float64 {
		if v > 0.04045 {
			return math.Pow((v+0.055)/1.055, 2.4)
		}
		return v / 12.92
	}

	r := expand(float64(c.R)/255.0) * 100.0
	g := expand(float64(c.G)/255.0) * 100.0
	b := expand(float64(c.B)/255.0) * 100.0

	return XYZ{
		X: r*0.4124 + g*0.3576 + b*0.1805,
		Y: r*0.2126 + g*0.7152 + b*0.0722,
		Z: r*0.0193 + g*0.1192 + b*0.9505,
	}
}

// LAB converts through XYZ.
func (c RGB) LAB() LAB {
	return c.XYZ().LAB()
}

// RGB converts back to 8-bit sRGB, clamping out-of-gamut values.
func (c XYZ) RGB() RGB {
	compress := func(v float64) float64 {
		if v > 0.0031308 {
			return 1.055*math.Pow(v, 1.0/2.4) - 0.055
		}
		return v * 12.92
	}

	x := c.X / 100.0
	y := c.Y / 100.0
	z := c.Z / 100.0

	r := compress(x*3.2406 + y*-1.5372 + z*-0.4986)
	g := compress(x*-0.9689 + y*1.8758 + z*0.0415)
	b := compress(x*0.0557 + y*-0.2040 + z*1.0570)

	return RGB{
		R: clampChannel(r * 255.0),
		G: clampChannel(g * 255.0),
		B: clampChannel(b * 255.0),
	}
}

// LAB converts relative to the reference white.
func (c XYZ) LAB() LAB {
	pivot := func(v float64) float64 {
		if v > 0.008856 {
			return math.Cbrt(v)
		}
		return (7.787 * v) + (16.0 / 116.0)
	}

	x := pivot(c.X / referenceX)
	y := pivot(c.Y / referenceY)
	z := pivot(c.Z / referenceZ)

	return LAB{
		L: (116.0 * y) - 16.0,
		A: 500.0 * (x - y),
		B: 200.0 * (y - z),
	}
}

// XYZ inverts the LAB transform.
func (c LAB) XYZ() XYZ {
	unpivot := func(v float64) float64 {
		if v*v*v > 0.008856 {
			return v * v * v
		}
		return (v - 16.0/116.0) / 7.787
	}

	y := (c.L + 16.0) / 116.0
	x := c.A/500.0 + y
	z := y - c.B/200.0

	return XYZ{
		X: unpivot(x) * referenceX,
		Y: unpivot(y) * referenceY,
		Z: unpivot(z) * referenceZ,
	}
}

// RGB converts through XYZ.
func (c LAB) RGB() RGB {
	return c.XYZ().RGB()
}

// Distance is the Euclidean distance in LAB space.
func (c LAB) Distance(other LAB) float64 {
	dl := other.L - c.L
	da := other.A - c.A
	db := other.B - c.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// Similar reports whether both colors fall within the given tolerances,
// expressed as fractions of each component's full range.
func (c YUV) Similar(other YUV, epsilonY, epsilonUV float64) bool {
	if math.Abs(c.Y-other.Y) > epsilonY*yuvMaxY {
		return false
	}
	if math.Abs(c.U-other.U) > epsilonUV*yuvMaxU {
		return false
	}
	if math.Abs(c.V-other.V) > epsilonUV*yuvMaxV {
		return false
	}
	return true
}

func clampChannel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
