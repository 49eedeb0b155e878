package root

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/KaiK0de/alter-life-rpg/internal/engine"
	"github.com/KaiK0de/alter-life-rpg/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show player level, stats and progress",
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
			threshold := engine.XPThreshold(st.Level)

			fmt.Fprintln(out, ui.Heading(ui.IconPlayer, st.Name))
			fmt.Fprintln(out, ui.LabelValue("Level", st.Level))
			fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d/%d %s", st.XP, threshold, xpBar(st.XP, threshold))))
			fmt.Fprintln(out, ui.LabelValue("Total XP", st.TotalXP))
			fmt.Fprintln(out, ui.LabelValue("Gold", fmt.Sprintf("%d %s", st.Gold, ui.IconGold)))
			fmt.Fprintln(out, ui.LabelValue("Last login", st.LastLogin.Format("2006-01-02")))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📊 Stats"))
			for _, k := range engine.StatKinds {
				fmt.Fprintf(out, "- %s %s: %d\n", ui.StatIcon(k), ui.StatLabel(k), st.Stats[k])
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconTrophy+" Achievements"))
			fmt.Fprintf(out, "%d of %d unlocked — see `al achievements`\n", len(st.Achievements), len(engine.Achievements))

			return nil
		},
	}

	return cmd
}

func xpBar(value, total int) string {
	const width = 20
	if total <= 0 {
		total = 1
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := value * width / total
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
