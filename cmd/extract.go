package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-icns/internal/config"
	"github.com/deploymenttheory/go-icns/internal/export"
	"github.com/deploymenttheory/go-icns/internal/icns"
)

var (
	extractOutputDir string
	extractOverwrite bool
)

// extractCmd extracts every element of an icon family into files
var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract the icons (and other data) stored in an ICNS image into files",
	Long: `Extract the icons (and other data) stored in an ICNS image into files.

Raster icons are written as PNGs (with the best matching mask applied
when the format has no alpha channel of its own), PNG and JPEG 2000
payloads are written verbatim, metadata becomes JSON or plist files,
and nested families are rewrapped as standalone .icns files and
extracted recursively.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractOutputDir, "output-dir", "o", "",
		"directory to extract into (must not exist yet; default: input file name with .extracted appended)")
	extractCmd.Flags().BoolVar(&extractOverwrite, "overwrite", false,
		"allow extracting into an existing directory, replacing files")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	data, err := readInput(args[0])
	if err != nil {
		return err
	}

	family, err := icns.DecodeIconFamily(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", args[0], err)
	}

	outputDir := extractOutputDir
	if outputDir == "" {
		outputDir = config.Instance.Extract.OutputDir
	}
	if outputDir == "" {
		outputDir = args[0] + ".extracted"
	}

	overwrite := extractOverwrite || config.Instance.Extract.Overwrite

	return export.Family(family, outputDir, overwrite)
}
