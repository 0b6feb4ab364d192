package transparentlogo

import (
	"bytes"
	"fmt"
	"image"
	"os"
)

// ConvertFile reads the image at inputPath, converts it with opts and writes
// the PNG result to outputPath, replacing any existing file. Options are
// validated before either path is touched.
func ConvertFile(inputPath, outputPath string, opts Options) (Result, error) {
	engine, err := NewEngine(opts)
	if err != nil {
		return Result{}, err
	}

	img, format, err := ReadImage(inputPath)
	if err != nil {
		return Result{}, err
	}

	out, cleared, err := engine.Convert(img)
	if err != nil {
		return Result{}, err
	}

	if err := WritePNG(outputPath, out); err != nil {
		return Result{}, err
	}

	return newResult(out, format, cleared), nil
}

// ConvertBytes converts an encoded image held in memory and returns the PNG
// encoding of the result.
func ConvertBytes(data []byte, opts Options) ([]byte, Result, error) {
	engine, err := NewEngine(opts)
	if err != nil {
		return nil, Result{}, err
	}

	img, format, err := DecodeImageBytes(data)
	if err != nil {
		return nil, Result{}, fmt.Errorf("decode input: %w", err)
	}

	out, cleared, err := engine.Convert(img)
	if err != nil {
		return nil, Result{}, err
	}

	var buf bytes.Buffer
	if err := EncodePNG(&buf, out); err != nil {
		return nil, Result{}, fmt.Errorf("encode output: %w", err)
	}

	return buf.Bytes(), newResult(out, format, cleared), nil
}

func newResult(img image.Image, format string, cleared int) Result {
	b := img.Bounds()
	return Result{
		Width:   b.Dx(),
		Height:  b.Dy(),
		Format:  format,
		Cleared: cleared,
	}
}

// ReadImage opens and decodes the image at path.
func ReadImage(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	img, format, err := Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("decode input: %w", err)
	}
	return img, format, nil
}

// WritePNG encodes img as PNG into path, replacing any existing file.
func WritePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	if err := EncodePNG(f, img); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
