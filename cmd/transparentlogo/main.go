package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// transparentlogo
// transparentlogo -i logo.jpg -o logo.png --size 256
// transparentlogo --inbase64 "data:image/jpeg;base64,..." --outbase64
// transparentlogo identify logo-google-ads-512-transparent.png

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "transparentlogo",
		Short:         "Resize a logo and make its near-white background transparent",
		Args:          cobra.NoArgs,
		RunE:          runConvert,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	addConvertFlags(root)
	root.AddCommand(newIdentifyCmd())
	return root
}
