package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KaiK0de/alter-life-rpg/internal/engine"
	"github.com/KaiK0de/alter-life-rpg/internal/ui"
)

func newAchievementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "achievements",
		Short: "Show the achievement board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st, err := store.Load(ctx, time.Now())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Achievements"))
			for _, a := range engine.Achievements {
				if st.HasAchievement(a.ID) {
					fmt.Fprintf(out, "%s %s %s %s\n",
						ui.Good.Render("✓"), a.Icon, ui.Key.Render(a.Name), ui.Muted.Render("— "+a.Description))
				} else {
					fmt.Fprintf(out, "%s %s %s\n",
						ui.Dim.Render("·"), ui.Dim.Render(a.Name), ui.Dim.Render("— "+a.Description))
				}
			}
			fmt.Fprintf(out, "\n%d of %d unlocked\n", len(st.Achievements), len(engine.Achievements))

			return nil
		},
	}

	return cmd
}
