package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oyunsanaa/oyunsanaa/internal/app"
	"github.com/oyunsanaa/oyunsanaa/internal/catalog"
)

var takeCmd = &cobra.Command{
	Use:   "take <instrument>",
	Short: "Jump straight into one check-in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, cleanup, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		in, ok := catalog.BySlug(args[0])
		if !ok {
			slugs := make([]string, 0, len(catalog.All()))
			for _, i := range catalog.All() {
				slugs = append(slugs, i.Slug)
			}
			return fmt.Errorf("unknown instrument %q (have: %s)", args[0], strings.Join(slugs, ", "))
		}
		deps.StartInstrument = in

		return app.Run(deps)
	},
}
