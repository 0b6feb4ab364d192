// Package transparentlogo turns a logo on a white background into a square PNG
// with a transparent background.
//
// The image is first resized to a fixed square (512x512 by default) with a
// Lanczos3 filter, then every pixel whose red, green and blue channels all
// exceed a threshold (240 by default) is replaced by fully transparent white.
// Resizing happens before the threshold test, so the test sees the final
// pixel values. The package works entirely in memory apart from the file
// helpers in ConvertFile.
package transparentlogo
