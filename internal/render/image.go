package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"terraforge/internal/biome"
	"terraforge/internal/profiling"
	"terraforge/internal/terrain"
)

// HeightImage paints one pixel per sample, classifying each height against
// the field's observed range.
func HeightImage(hf *terrain.HeightField, bands []biome.Band) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, hf.Width, hf.Depth))
	for row := 0; row < hf.Depth; row++ {
		for col := 0; col < hf.Width; col++ {
			c := biome.Classify(hf.At(col, row), hf.Min, hf.Max, bands)
			img.SetRGBA(col, row, color.RGBA{
				R: toByte(c.X()),
				G: toByte(c.Y()),
				B: toByte(c.Z()),
				A: 255,
			})
		}
	}
	return img
}

func toByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Upscale grows the preview by an integer factor with nearest-neighbor
// sampling so band edges stay crisp. Factors below 2 return the input.
func Upscale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// WritePNG renders the height field and writes it to path.
func WritePNG(path string, hf *terrain.HeightField, bands []biome.Band, upscale int) error {
	defer profiling.Track("render.WritePNG")()

	img := Upscale(HeightImage(hf, bands), upscale)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("render: encode %s: %w", path, err)
	}
	return nil
}
