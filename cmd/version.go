package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oyunsanaa/oyunsanaa/internal/catalog"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version and bundled instruments",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("oyunsanaa", version)
		for _, in := range catalog.All() {
			fmt.Printf("  instrument %s %s\n", in.Slug, in.Version)
		}
	},
}
