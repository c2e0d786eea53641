package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-icns/internal/icns"
)

// listCmd lists the contents of an icon family
var listCmd = &cobra.Command{
	Use:   "list <file>",
	Short: "List the icons (and other data) stored in an ICNS image",
	Long: `List the icons (and other data) stored in an ICNS image.

Nested icon families (variants such as tile, rollover or dark mode)
are listed recursively. Use - as the file name to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	data, err := readInput(args[0])
	if err != nil {
		return err
	}

	family, err := icns.DecodeIconFamily(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", args[0], err)
	}

	fmt.Fprintf(os.Stdout, "%s:\n", family.Description())
	printFamily(os.Stdout, family, "\t")
	return nil
}

// printFamily writes one indented line per element, recursing into
// nested families.
func printFamily(w io.Writer, family *icns.IconFamily, indent string) {
	for _, e := range family.Elements() {
		payload, err := e.Payload()
		if err != nil {
			// A corrupt element is reported but doesn't stop the listing
			// of its siblings.
			fmt.Fprintf(w, "%s%s (%d bytes): invalid data (%v)\n", indent, e.Code, len(e.Body), err)
			continue
		}

		if nested, ok := payload.(*icns.IconFamily); ok {
			fmt.Fprintf(w, "%s%s (%d bytes): %s, %d elements:\n",
				indent, e.Code, len(e.Body), e.KnownType().Variant, nested.Len())
			printFamily(w, nested, indent+"\t")
			continue
		}

		fmt.Fprintf(w, "%s%s (%d bytes): %s\n", indent, e.Code, len(e.Body), payload.Description())
	}
}
