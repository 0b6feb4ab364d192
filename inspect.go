package transparentlogo

import (
	"fmt"
	"image/color"
	"io"
)

// Summary describes an encoded image as seen after decoding.
type Summary struct {
	Width       int
	Height      int
	Format      string
	ColorModel  string
	Transparent int // pixels with alpha == 0
	Translucent int // pixels with 0 < alpha < 255
}

// Inspect decodes r and counts its transparent pixels.
func Inspect(r io.Reader) (Summary, error) {
	img, format, err := Decode(r)
	if err != nil {
		return Summary{}, fmt.Errorf("decode: %w", err)
	}

	bounds := img.Bounds()
	s := Summary{
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
		Format:     format,
		ColorModel: colorModelName(img.ColorModel()),
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			switch {
			case a == 0:
				s.Transparent++
			case a < 0xffff:
				s.Translucent++
			}
		}
	}

	return s, nil
}

func colorModelName(m color.Model) string {
	switch m {
	case color.RGBAModel:
		return "RGBA"
	case color.NRGBAModel:
		return "NRGBA"
	case color.RGBA64Model:
		return "RGBA64"
	case color.NRGBA64Model:
		return "NRGBA64"
	case color.GrayModel:
		return "Gray"
	case color.Gray16Model:
		return "Gray16"
	case color.YCbCrModel:
		return "YCbCr"
	case color.CMYKModel:
		return "CMYK"
	}
	if _, ok := m.(color.Palette); ok {
		return "Paletted"
	}
	return "unknown"
}
