package transparentlogo

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"strings"
)

// DecodeBase64Image decodes a base64-encoded image (optionally a data URL) into
// an image.Image. It returns the decoded image and the detected format string.
func DecodeBase64Image(input string) (image.Image, string, error) {
	data, err := decodeBase64(input)
	if err != nil {
		return nil, "", err
	}

	return DecodeImageBytes(data)
}

// EncodePNGToBase64 encodes an image as PNG and returns a base64 string.
func EncodePNGToBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// ConvertBase64 converts a base64-encoded image and returns the PNG result as
// base64.
func ConvertBase64(input string, opts Options) (string, Result, error) {
	data, err := decodeBase64(input)
	if err != nil {
		return "", Result{}, err
	}

	out, res, err := ConvertBytes(data, opts)
	if err != nil {
		return "", Result{}, err
	}

	return base64.StdEncoding.EncodeToString(out), res, nil
}

func decodeBase64(input string) ([]byte, error) {
	raw := stripDataPrefix(strings.TrimSpace(input))

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	return data, nil
}

func stripDataPrefix(input string) string {
	lower := strings.ToLower(input)
	if strings.HasPrefix(lower, "data:") {
		if idx := strings.Index(input, ","); idx != -1 {
			return input[idx+1:]
		}
	}
	return input
}
