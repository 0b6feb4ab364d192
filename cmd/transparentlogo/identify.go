package main

import (
	"fmt"
	"os"

	transparentlogo "github.com/beristainyasociados/transparent-logo"
	"github.com/spf13/cobra"
)

func newIdentifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "identify [file]",
		Short: "Show dimensions and transparency of an image",
		Args:  cobra.ExactArgs(1),
		RunE:  runIdentify,
	}
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	s, err := transparentlogo.Inspect(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	total := s.Width * s.Height
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:        %s\n", path)
	fmt.Fprintf(out, "Format:      %s\n", s.Format)
	fmt.Fprintf(out, "Dimensions:  %d x %d\n", s.Width, s.Height)
	fmt.Fprintf(out, "Color model: %s\n", s.ColorModel)
	fmt.Fprintf(out, "Transparent: %d px (%.1f%%)\n", s.Transparent, percent(s.Transparent, total))
	if s.Translucent > 0 {
		fmt.Fprintf(out, "Translucent: %d px (%.1f%%)\n", s.Translucent, percent(s.Translucent, total))
	}
	return nil
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
