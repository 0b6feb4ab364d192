package main

import (
	"fmt"
	"image"
	"strings"

	transparentlogo "github.com/beristainyasociados/transparent-logo"
	"github.com/spf13/cobra"
)

const (
	defaultInput  = "logonuevoB.jpg"
	defaultOutput = "logo-google-ads-512-transparent.png"
)

func addConvertFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", defaultInput, "Input logo (jpg/png/gif/webp/bmp/tiff)")
	cmd.Flags().StringP("output", "o", defaultOutput, "Output PNG file, overwritten if present")
	cmd.Flags().String("inbase64", "", "Base64 image input (optionally data URL) instead of --input")
	cmd.Flags().Bool("outbase64", false, "Write the PNG as base64 to stdout instead of --output")
	cmd.Flags().Int("size", transparentlogo.DefaultSize, "Output width and height in pixels")
	cmd.Flags().String("filter", transparentlogo.DefaultFilter,
		"Resampling filter ("+strings.Join(transparentlogo.FilterNames(), ", ")+")")
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	inputBase64, _ := cmd.Flags().GetString("inbase64")
	outputBase64, _ := cmd.Flags().GetBool("outbase64")
	size, _ := cmd.Flags().GetInt("size")
	filter, _ := cmd.Flags().GetString("filter")

	opts := transparentlogo.DefaultOptions()
	opts.Size = size
	opts.Filter = filter

	switch {
	case inputBase64 != "" && outputBase64:
		encoded, res, err := transparentlogo.ConvertBase64(inputBase64, opts)
		if err != nil {
			return fmt.Errorf("conversion: %w", err)
		}
		printBase64(cmd, encoded, res)
		return nil

	case inputBase64 == "" && !outputBase64:
		res, err := transparentlogo.ConvertFile(inputPath, outputPath, opts)
		if err != nil {
			return fmt.Errorf("conversion: %w", err)
		}
		printDone(cmd, outputPath, res)
		return nil
	}

	engine, err := transparentlogo.NewEngine(opts)
	if err != nil {
		return err
	}

	img, format, err := loadInput(inputPath, inputBase64)
	if err != nil {
		return err
	}
	cleaned, cleared, err := engine.Convert(img)
	if err != nil {
		return fmt.Errorf("conversion: %w", err)
	}

	b := cleaned.Bounds()
	res := transparentlogo.Result{Width: b.Dx(), Height: b.Dy(), Format: format, Cleared: cleared}

	if outputBase64 {
		encoded, err := transparentlogo.EncodePNGToBase64(cleaned)
		if err != nil {
			return fmt.Errorf("encode output: %w", err)
		}
		printBase64(cmd, encoded, res)
		return nil
	}

	if err := transparentlogo.WritePNG(outputPath, cleaned); err != nil {
		return err
	}
	printDone(cmd, outputPath, res)
	return nil
}

func loadInput(path, b64 string) (image.Image, string, error) {
	if b64 != "" {
		img, format, err := transparentlogo.DecodeBase64Image(b64)
		if err != nil {
			return nil, "", fmt.Errorf("decode input: %w", err)
		}
		return img, format, nil
	}
	return transparentlogo.ReadImage(path)
}

func printBase64(cmd *cobra.Command, encoded string, res transparentlogo.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, encoded)
	fmt.Fprintf(out, "Size: %dx%d px, %d pixels made transparent\n", res.Width, res.Height, res.Cleared)
}

func printDone(cmd *cobra.Command, outputPath string, res transparentlogo.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Logo with transparent background created: %s\n", outputPath)
	fmt.Fprintf(out, "Size: %dx%d px (PNG with transparency)\n", res.Width, res.Height)
}
