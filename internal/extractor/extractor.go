// Package extractor turns photos of sticker sheets into individual sticker
// images.
//
// A sheet photo carries four bright corner markers. The pipeline locates
// them, removes the background along detected edges, corrects perspective so
// the markers land on the image corners, and cuts out each remaining opaque
// region as one sticker named after its grid position.
package extractor

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	_ "image/jpeg"
)

// Crop fraction removed from every side after perspective correction. The
// markers themselves live in this border.
const initialCropFactor = 0.05

// Edge threshold on the normalized LAB distance between detection points.
// Lower values make the background fill less likely to leak through edges.
const edgeDetectionFactor = 0.07

// Opaque pixel groups covering less than this fraction of the image are
// treated as background specks and made transparent.
const backgroundCleanupFactor = 0.02

// Window radius for the pre-edge-detection color averaging.
const edgeDetectionResolution = 1

var transparent = color.RGBA{}

var red = RGB{R: 255}

// Extract processes one sheet photo and writes the cut-out stickers into
// outputDir as <stem>_<column>_<row>.png. It returns the written filenames.
// With debug set, every intermediate stage is saved next to the working
// directory for inspection.
func Extract(ctx context.Context, inputPath, outputDir string, debug bool) ([]string, error) {
	preview := newPreviewSaver(inputPath, debug)

	log.Printf("opening image %s", inputPath)
	img, err := loadRGBA(inputPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", inputPath, err)
	}

	log.Print("locating markers")
	markers, err := FindMarkers(img)
	if err != nil {
		return nil, fmt.Errorf("find markers in %s: %w", inputPath, err)
	}
	for _, marker := range markers.All() {
		marker.Fill(img, red)
	}
	if err := preview.save(img); err != nil {
		return nil, err
	}

	log.Print("averaging colors")
	averages, err := NewAverageColors(img, edgeDetectionResolution)
	if err != nil {
		return nil, fmt.Errorf("average colors: %w", err)
	}
	if err := preview.saveAverages(img, averages); err != nil {
		return nil, err
	}

	log.Print("computing gradient")
	gradient, err := NewGradient(averages)
	if err != nil {
		return nil, fmt.Errorf("compute gradient: %w", err)
	}
	if err := preview.saveGradient(img, gradient); err != nil {
		return nil, err
	}

	log.Print("detecting edges")
	edges, err := NewEdges(gradient)
	if err != nil {
		return nil, fmt.Errorf("detect edges: %w", err)
	}
	if err := preview.saveEdges(img, edges); err != nil {
		return nil, err
	}

	log.Print("analysing background")
	background, err := AnalyseBackground(img, markers)
	if err != nil {
		return nil, fmt.Errorf("analyse background: %w", err)
	}

	log.Print("removing background")
	pixels := FloodFill(img, markers.MiddleOfTopEdge(), func(p XY, _ RGB) bool {
		return edges.GetDistance(p) < edgeDetectionFactor
	})
	for _, p := range pixels {
		img.SetRGBA(p.X, p.Y, transparent)
	}
	for _, m := range background.Measurements() {
		m.Area.Fill(img, m.Color)
	}
	if err := preview.save(img); err != nil {
		return nil, err
	}

	log.Print("correcting perspective")
	img, err = CorrectPerspective(ctx, img, markers)
	if err != nil {
		return nil, fmt.Errorf("correct perspective: %w", err)
	}
	if err := preview.save(img); err != nil {
		return nil, err
	}

	log.Print("cropping border")
	img = cropBorder(img, initialCropFactor)
	if err := preview.save(img); err != nil {
		return nil, err
	}

	log.Print("cleaning up background")
	cleanupSpecks(img)
	if err := preview.save(img); err != nil {
		return nil, err
	}

	log.Print("cutting out stickers")
	stem := fileStem(inputPath)
	var written []string
	for _, sticker := range IdentifyStickers(img) {
		cut := cropArea(img, sticker.Area)
		name := fmt.Sprintf("%s_%d_%d.png", stem, sticker.Column, sticker.Row)
		outputPath := filepath.Join(outputDir, name)
		if err := savePNG(outputPath, cut); err != nil {
			return nil, fmt.Errorf("write sticker %s: %w", name, err)
		}
		written = append(written, name)
	}
	return written, nil
}

// cleanupSpecks makes every opaque group below the cleanup fraction
// transparent. Visited groups are skipped so each group floods once.
func cleanupSpecks(img *image.RGBA) {
	bounds := img.Bounds()
	width := bounds.Dx()
	seen := make([]bool, width*bounds.Dy())
	index := func(x, y int) int {
		return (y-bounds.Min.Y)*width + (x - bounds.Min.X)
	}

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
			if !isAtLeastThisMuchOfImage(len(pixels), img, backgroundCleanupFactor) {
				for _, p := range pixels {
					img.SetRGBA(p.X, p.Y, transparent)
				}
			}
			for _, p := range pixels {
				seen[index(p.X, p.Y)] = true
			}
		}
	}
}

func cropBorder(img *image.RGBA, factor float64) *image.RGBA {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	return cropArea(img, Area{
		Left:   bounds.Min.X + int(float64(width)*factor),
		Top:    bounds.Min.Y + int(float64(height)*factor),
		Width:  int(float64(width) * (1.0 - 2.0*factor)),
		Height: int(float64(height) * (1.0 - 2.0*factor)),
	})
}

func cropArea(img *image.RGBA, area Area) *image.RGBA {
	rect := area.Rect().Intersect(img.Bounds())
	out := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(out, out.Bounds(), img, rect.Min, draw.Src)
	return out
}

func loadRGBA(path string) (*image.RGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoded, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := decoded.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(img, img.Bounds(), decoded, bounds.Min, draw.Src)
	return img, nil
}

func savePNG(path string, img *image.RGBA) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(file, img); err != nil {
		_ = file.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return file.Close()
}

func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// previewSaver writes numbered stage images when debugging the pipeline.
type previewSaver struct {
	stem    string
	enabled bool
	stage   int
}

func newPreviewSaver(inputPath string, enabled bool) *previewSaver {
	return &previewSaver{
		stem:    fileStem(inputPath),
		enabled: enabled,
	}
}

func (p *previewSaver) save(img *image.RGBA) error {
	if !p.enabled {
		return nil
	}
	log.Print("writing preview image")
	path := fmt.Sprintf("%s_stage%d.png", p.stem, p.stage)
	if err := savePNG(path, img); err != nil {
		return fmt.Errorf("write preview: %w", err)
	}
	p.stage++
	return nil
}

// saveAverages visualizes the averaged colors.
func (p *previewSaver) saveAverages(img *image.RGBA, averages *AverageColors) error {
	if !p.enabled {
		return nil
	}
	out := image.NewRGBA(img.Bounds())
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgb := averages.AverageColor(XY{X: x - bounds.Min.X, Y: y - bounds.Min.Y}).RGB()
			out.SetRGBA(x, y, color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255})
		}
	}
	return p.save(out)
}

// saveGradient maps gradient components into LAB for inspection.
func (p *previewSaver) saveGradient(img *image.RGBA, gradient *Gradient) error {
	if !p.enabled {
		return nil
	}
	out := image.NewRGBA(img.Bounds())
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			point := gradient.GetGradient(XY{X: x - bounds.Min.X, Y: y - bounds.Min.Y})
			lightness := (point.DiffL() + 1.0) / 2.0 * 100.0
			rgb := LAB{L: lightness, A: point.DiffA() * 80.0, B: point.DiffB() * 80.0}.RGB()
			out.SetRGBA(x, y, color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255})
		}
	}
	return p.save(out)
}

// saveEdges maps edge strength into LAB for inspection.
func (p *previewSaver) saveEdges(img *image.RGBA, edges *Edges) error {
	if !p.enabled {
		return nil
	}
	out := image.NewRGBA(img.Bounds())
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			distance := edges.GetDistance(XY{X: x - bounds.Min.X, Y: y - bounds.Min.Y})
			component := -1.0 + 2.0*distance*100.0
			rgb := LAB{L: 100.0, A: component, B: component}.RGB()
			out.SetRGBA(x, y, color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255})
		}
	}
	return p.save(out)
}
