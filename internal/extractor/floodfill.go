package extractor

import "image"

// FloodFill collects the 4-connected pixel group around start whose pixels
// satisfy include. The start pixel itself must satisfy include or the result
// is empty.
func FloodFill(img *image.RGBA, start XY, include func(XY, RGB) bool) []XY {
	bounds := img.Bounds()
	if !image.Pt(start.X, start.Y).In(bounds) {
		return nil
	}

	width := bounds.Dx()
	visited := make([]bool, width*bounds.Dy())
	index := func(p XY) int {
		return (p.Y-bounds.Min.Y)*width + (p.X - bounds.Min.X)
	}

	var pixels []XY
	stack := []XY{start}
	visited[index(start)] = true

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		c := img.RGBAAt(p.X, p.Y)
		if !include(p, RGB{R: c.R, G: c.G, B: c.B}) {
			continue
		}
		pixels = append(pixels, p)

		for _, n := range [4]XY{
			{X: p.X - 1, Y: p.Y},
			{X: p.X + 1, Y: p.Y},
			{X: p.X, Y: p.Y - 1},
			{X: p.X, Y: p.Y + 1},
		} {
			if !image.Pt(n.X, n.Y).In(bounds) {
				continue
			}
			if visited[index(n)] {
				continue
			}
			visited[index(n)] = true
			stack = append(stack, n)
		}
	}

	return pixels
}

// isAtLeastThisMuchOfImage reports whether a pixel count covers at least the
// given fraction of the image.
func isAtLeastThisMuchOfImage(count int, img *image.RGBA, factor float64) bool {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return false
	}
	return float64(count) >= float64(total)*factor
}
