package extractor

import (
	"context"
	"fmt"
	"image"
	"os"
	"os/exec"
	"path/filepath"
)

// CorrectPerspective maps the four marker centers onto the image corners
// using ImageMagick's perspective distortion. The magick binary must be on
// PATH.
func CorrectPerspective(ctx context.Context, img *image.RGBA, markers Markers) (*image.RGBA, error) {
	tmpDir, err := os.MkdirTemp("", "extractor-")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	input := filepath.Join(tmpDir, "input.png")
	output := filepath.Join(tmpDir, "output.png")

	if err := savePNG(input, img); err != nil {
		return nil, fmt.Errorf("write distortion input: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	params := fmt.Sprintf(
		"%d,%d %d,%d %d,%d %d,%d %d,%d %d,%d %d,%d %d,%d",
		markers.TopLeft().Center().X, markers.TopLeft().Center().Y, 0, 0,
		markers.TopRight().Center().X, markers.TopRight().Center().Y, width, 0,
		markers.BottomLeft().Center().X, markers.BottomLeft().Center().Y, 0, height,
		markers.BottomRight().Center().X, markers.BottomRight().Center().Y, width, height,
	)

	cmd := exec.CommandContext(ctx, "magick",
		input,
		"-alpha", "set",
		"-virtual-pixel", "transparent",
		"-distort", "Perspective", params,
		output,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("magick perspective distort: %w: %s", err, out)
	}

	corrected, err := loadRGBA(output)
	if err != nil {
		return nil, fmt.Errorf("read distortion output: %w", err)
	}
	return corrected, nil
}
