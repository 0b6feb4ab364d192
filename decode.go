package transparentlogo

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	// Register the decoders accepted as input. JPEG is the usual source.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Decode reads an image from the reader, returning the decoded image and the
// detected format string ("jpeg", "png", "webp", etc.).
func Decode(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}

// DecodeImageBytes decodes an in-memory encoded image.
func DecodeImageBytes(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", fmt.Errorf("empty image data")
	}
	return Decode(bytes.NewReader(data))
}

// EncodePNG writes the provided image to the writer as PNG. PNG is lossless
// and keeps the full 8-bit alpha channel.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
