package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oyunsanaa/oyunsanaa/internal/identity"
	"github.com/oyunsanaa/oyunsanaa/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print recent check-in results",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		userID := "local-user"
		if verifier, token, ok := identity.FromEnv(); ok {
			id, err := verifier.Verify(ctx, token)
			if err != nil {
				return fmt.Errorf("verify session: %w", err)
			}
			userID = id.ID
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		rows, err := st.ResultRepo().History(ctx, userID, limit)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}
		if len(rows) == 0 {
			fmt.Println("No results yet.")
			return nil
		}

		for _, row := range rows {
			fmt.Printf("%s  %-28s  %-16s  %3d%%\n",
				row.CreatedAt.Format("2006-01-02"), row.Title, row.BandTitle, row.ScorePct)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of rows to print")
}
