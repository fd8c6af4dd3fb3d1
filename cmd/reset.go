package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oyunsanaa/oyunsanaa/internal/results"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all local check-in data",
	Long:  "Deletes the local database and the result cache. Remote copies on a sync server are untouched.",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("refusing to delete data without --force")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		if err := removeIfExists(dbPath); err != nil {
			return fmt.Errorf("remove database: %w", err)
		}

		if cachePath, err := results.DefaultCachePath(); err == nil {
			if err := removeIfExists(cachePath); err != nil {
				return fmt.Errorf("remove result cache: %w", err)
			}
		}

		fmt.Println("Local data deleted.")
		return nil
	},
}

func removeIfExists(path string) error {
	err := os.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func init() {
	resetCmd.Flags().Bool("force", false, "Actually delete the data")
}
