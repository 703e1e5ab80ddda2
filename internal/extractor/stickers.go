package extractor

import (
	"image"
	"sort"
)

// IdentifiedSticker is one opaque region of the cleaned sheet with its
// position in the sticker grid. Columns and rows start at zero.
type IdentifiedSticker struct {
	Area   Area
	Column int
	Row    int
}

// IdentifyStickers finds every opaque pixel group and assigns grid
// coordinates from its position on the sheet. Regions whose vertical centers
// overlap share a row.
func IdentifyStickers(img *image.RGBA) []IdentifiedSticker {
	areas := opaqueRegions(img)
	if len(areas) == 0 {
		return nil
	}

	rows := groupIntoRows(areas)

	var stickers []IdentifiedSticker
	for rowIndex, row := range rows {
		sort.Slice(row, func(i, j int) bool {
			return row[i].Center().X < row[j].Center().X
		})
		for columnIndex, area := range row {
			stickers = append(stickers, IdentifiedSticker{
				Area:   area,
				Column: columnIndex,
				Row:    rowIndex,
			})
		}
	}
	return stickers
}

func opaqueRegions(img *image.RGBA) []Area {
	bounds := img.Bounds()
	width := bounds.Dx()
	seen := make([]bool, width*bounds.Dy())
	index := func(x, y int) int {
		return (y-bounds.Min.Y)*width + (x - bounds.Min.X)
	}

	var areas []Area
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if seen[index(x, y)] {
				continue
			}
			if img.RGBAAt(x, y).A == 0 {
				seen[index(x, y)] = true
				continue
			}

			pixels := FloodFill(img, XY{X: x, Y: y}, func(p XY, _ RGB) bool {
				return img.RGBAAt(p.X, p.Y).A != 0
			})
			for _, p := range pixels {
				seen[index(p.X, p.Y)] = true
			}
			if area, ok := areaFromPixels(pixels); ok {
				areas = append(areas, area)
			}
		}
	}
	return areas
}

// groupIntoRows buckets areas whose centers fall within each other's
// vertical extent, top to bottom.
func groupIntoRows(areas []Area) [][]Area {
	sort.Slice(areas, func(i, j int) bool {
		return areas[i].Center().Y < areas[j].Center().Y
	})

	var rows [][]Area
	for _, area := range areas {
		placed := false
		for i, row := range rows {
			anchor := row[0]
			center := area.Center().Y
			if center >= anchor.Top && center <= anchor.Bottom() {
				rows[i] = append(rows[i], area)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, []Area{area})
		}
	}
	return rows
}
