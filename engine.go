package transparentlogo

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/draw"
)

const (
	// DefaultSize is the edge length of the square output in pixels.
	DefaultSize = 512
	// DefaultThreshold is the per-channel cutoff above which a pixel is
	// treated as background.
	DefaultThreshold = 240
	// DefaultFilter names the resampling filter used when none is given.
	DefaultFilter = "lanczos"
	// MaxSize bounds the output edge so the working buffers stay allocatable.
	MaxSize = 1 << 14
)

var (
	// ErrInvalidSize is returned for sizes outside [1, MaxSize].
	ErrInvalidSize = errors.New("size must be between 1 and 16384")
	// ErrInvalidThreshold is returned for thresholds outside [0, 255].
	ErrInvalidThreshold = errors.New("threshold must be in [0, 255]")
)

// Options controls a single conversion.
type Options struct {
	Size      int    // output width and height in pixels
	Threshold int    // pixels with R, G and B all above this become transparent
	Filter    string // resampling filter name, see ParseFilter
}

// DefaultOptions returns the settings used to produce the 512px logo.
func DefaultOptions() Options {
	return Options{
		Size:      DefaultSize,
		Threshold: DefaultThreshold,
		Filter:    DefaultFilter,
	}
}

// Validate reports the first invalid field. It never touches the filesystem.
func (o Options) Validate() error {
	if o.Size <= 0 || o.Size > MaxSize {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, o.Size)
	}
	if o.Threshold < 0 || o.Threshold > 255 {
		return fmt.Errorf("%w: got %d", ErrInvalidThreshold, o.Threshold)
	}
	if _, err := ParseFilter(o.Filter); err != nil {
		return err
	}
	return nil
}

// Result describes a finished conversion.
type Result struct {
	Width   int
	Height  int
	Format  string // detected source format ("jpeg", "png", ...)
	Cleared int    // pixels rewritten to transparent white
}

// Engine resizes images and clears their near-white background. An Engine is
// immutable once built.
type Engine struct {
	size      int
	threshold uint8
	scaler    draw.Interpolator
}

// NewEngine validates opts and builds an Engine from them.
func NewEngine(opts Options) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	scaler, _ := ParseFilter(opts.Filter)
	return &Engine{
		size:      opts.Size,
		threshold: uint8(opts.Threshold),
		scaler:    scaler,
	}, nil
}

var defaultEngine struct {
	once sync.Once
	eng  *Engine
}

// Convert applies the default engine (512px, threshold 240, Lanczos) to img.
func Convert(img image.Image) (*image.NRGBA, int, error) {
	defaultEngine.once.Do(func() {
		defaultEngine.eng, _ = NewEngine(DefaultOptions())
	})

	return defaultEngine.eng.Convert(img)
}

// Convert resizes img to the engine's square size and then makes every
// near-white pixel fully transparent. It returns the new image together with
// the number of pixels that were cleared.
func (e *Engine) Convert(img image.Image) (*image.NRGBA, int, error) {
	if img == nil {
		return nil, 0, fmt.Errorf("nil image provided")
	}

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, 0, fmt.Errorf("invalid image dimensions %dx%d", bounds.Dx(), bounds.Dy())
	}

	// The threshold has to see final-resolution values, so resize first.
	out := e.Resize(img)
	cleared := ClearNearWhite(out, e.threshold)

	return out, cleared, nil
}

// Resize scales img to size x size, ignoring its aspect ratio, and returns
// the result as a straight-alpha NRGBA buffer. Sources that report themselves
// opaque come back with alpha 255 on every pixel.
func (e *Engine) Resize(img image.Image) *image.NRGBA {
	rect := image.Rect(0, 0, e.size, e.size)

	scaled := image.NewRGBA(rect)
	e.scaler.Scale(scaled, rect, img, img.Bounds(), draw.Src, nil)

	out := cloneToNRGBA(scaled)
	if isOpaque(img) {
		fillOpaque(out)
	}
	return out
}

// ClearNearWhite rewrites, in place, every pixel whose red, green and blue
// channels all strictly exceed threshold to (255, 255, 255, 0). Other pixels
// keep their color and alpha. It returns the number of rewritten pixels.
func ClearNearWhite(img *image.NRGBA, threshold uint8) int {
	bounds := img.Bounds()
	cleared := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			offset := img.PixOffset(x, y)
			px := img.Pix[offset : offset+4 : offset+4]

			if px[0] > threshold && px[1] > threshold && px[2] > threshold {
				px[0], px[1], px[2], px[3] = 0xff, 0xff, 0xff, 0
				cleared++
			}
		}
	}

	return cleared
}

// cloneToNRGBA copies the image into a mutable NRGBA buffer.
func cloneToNRGBA(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
	return dst
}

func isOpaque(img image.Image) bool {
	o, ok := img.(interface{ Opaque() bool })
	return ok && o.Opaque()
}

// fillOpaque sets every alpha byte to 0xff. Kernel resampling of an opaque
// source can round alpha a hair below full at the edges.
func fillOpaque(img *image.NRGBA) {
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
}
