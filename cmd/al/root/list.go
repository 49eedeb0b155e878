package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KaiK0de/alter-life-rpg/internal/engine"
	"github.com/KaiK0de/alter-life-rpg/internal/ui"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List habits and open quests",
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

			fmt.Fprintln(out, ui.H2.Render(ui.IconHabit+" Habits"))
			if len(st.Habits) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none — try `al habit add`)"))
			}
			today := engine.DateOf(time.Now())
			for i, h := range st.Habits {
				mark := " "
				if h.LastCompleted != nil && h.LastCompleted.Equal(today) {
					mark = ui.Good.Render("✓")
				}
				line := fmt.Sprintf("%2d. %s %s %s %s", i+1, mark, h.Name,
					ui.StatIcon(h.Stat),
					ui.Muted.Render(fmt.Sprintf("(%s, %d done)", h.Difficulty, h.TotalCompletions)))
				if h.Streak > 0 {
					line += fmt.Sprintf(" %s%d", ui.IconStreak, h.Streak)
				}
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, "")

			open := engine.IncompleteQuests(st)
			fmt.Fprintln(out, ui.H2.Render(ui.IconQuest+" Quests"))
			if len(open) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none open — try `al quest add`)"))
			}
			for i, q := range open {
				line := fmt.Sprintf("%2d.   %s %s", i+1, q.Name,
					ui.Muted.Render(fmt.Sprintf("(%s, +%d XP, +%d gold)", q.Difficulty, q.XPReward, q.GoldReward)))
				if q.StatReward != nil {
					line += " " + ui.StatIcon(*q.StatReward)
				}
				fmt.Fprintln(out, line)
				if q.Description != "" {
					fmt.Fprintln(out, "      "+ui.Dim.Render(q.Description))
				}
			}

			return nil
		},
	}

	return cmd
}
