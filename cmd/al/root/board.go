package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/KaiK0de/alter-life-rpg/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(ctx, store, cmd.OutOrStdout())
		},
	}

	return cmd
}
