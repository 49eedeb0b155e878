package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/KaiK0de/alter-life-rpg/internal/engine"
	"github.com/KaiK0de/alter-life-rpg/internal/ui"
)

func newHabitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage recurring habits",
	}
	cmd.AddCommand(
		newHabitAddCmd(),
		newHabitDoneCmd(),
		newHabitRmCmd(),
	)
	return cmd
}

func newHabitAddCmd() *cobra.Command {
	var stat string
	var diff string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a habit",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			kind, err := engine.ParseStatKind(stat)
			if err != nil {
				return err
			}
			difficulty, err := engine.ParseHabitDifficulty(diff)
			if err != nil {
				return err
			}

			return mutateState(ctx, cmd, func(st *engine.PlayerState) error {
				if err := engine.AddHabit(st, args[0], kind, difficulty, time.Now()); err != nil {
					return err
				}
				h := st.Habits[len(st.Habits)-1]
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
					ui.Good.Render(ui.IconPlus+" Added habit"), h.Name,
					ui.Muted.Render(fmt.Sprintf("(%s, +%d XP base)", h.Difficulty, h.BaseXPReward)),
					ui.StatIcon(h.Stat))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&stat, "stat", "s", "discipline", "Stat trained (str|int|cha|vit|dis)")
	cmd.Flags().StringVarP(&diff, "diff", "d", "easy", "Difficulty (easy|medium|hard)")

	return cmd
}

func newHabitDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <n>",
		Short: "Complete a habit for today",
		Args:  numberArg("n"),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			n, _ := strconv.Atoi(args[0])

			return mutateState(ctx, cmd, func(st *engine.PlayerState) error {
				res, err := engine.CompleteHabit(st, n-1, time.Now())
				if errors.Is(err, engine.ErrAlreadyCompletedToday) {
					// Informational, not a failure.
					fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconInfo+" Already completed today."))
					return nil
				}
				if err != nil {
					return err
				}

				line := fmt.Sprintf("%s +%d XP, +%d %s %s",
					ui.Good.Render(ui.IconDone+" Habit done:"),
					res.XPAwarded, res.GoldAwarded, ui.IconGold,
					ui.Muted.Render(fmt.Sprintf("(%s streak %d)", ui.IconStreak, res.Streak)))
				fmt.Fprintln(cmd.OutOrStdout(), line)
				if res.LevelUp {
					fmt.Fprintln(cmd.OutOrStdout(), levelUpLine(res.LevelBefore, res.LevelAfter))
				}
				return nil
			})
		},
	}

	return cmd
}

func newHabitRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <n>",
		Short: "Delete a habit",
		Args:  numberArg("n"),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			n, _ := strconv.Atoi(args[0])

			return mutateState(ctx, cmd, func(st *engine.PlayerState) error {
				if n-1 < 0 || n-1 >= len(st.Habits) {
					return engine.ErrIndexOutOfRange
				}
				name := st.Habits[n-1].Name
				if err := engine.DeleteHabit(st, n-1); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Warn.Render(ui.IconTrash+" Deleted habit"), name)
				return nil
			})
		},
	}

	return cmd
}

// numberArg validates a single positive integer argument.
func numberArg(name string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("%s is required", name)
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("%s must be a positive integer", name)
		}
		return nil
	}
}
