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

func newQuestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quest",
		Short: "Manage one-off quests",
	}
	cmd.AddCommand(
		newQuestAddCmd(),
		newQuestDoneCmd(),
		newQuestRmCmd(),
	)
	return cmd
}

func newQuestAddCmd() *cobra.Command {
	var desc string
	var diff string
	var stat string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a quest",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			difficulty, err := engine.ParseQuestDifficulty(diff)
			if err != nil {
				return err
			}
			var statReward *engine.StatKind
			if stat != "" {
				kind, err := engine.ParseStatKind(stat)
				if err != nil {
					return err
				}
				statReward = &kind
			}

			return mutateState(ctx, cmd, func(st *engine.PlayerState) error {
				if err := engine.AddQuest(st, args[0], desc, difficulty, statReward, time.Now()); err != nil {
					return err
				}
				q := st.Quests[len(st.Quests)-1]
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					ui.Good.Render(ui.IconPlus+" Added quest"), q.Name,
					ui.Muted.Render(fmt.Sprintf("(%s, +%d XP, +%d gold)", q.Difficulty, q.XPReward, q.GoldReward)))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&desc, "desc", "", "Quest description")
	cmd.Flags().StringVarP(&diff, "diff", "d", "easy", "Difficulty (easy|normal|hard)")
	cmd.Flags().StringVarP(&stat, "stat", "s", "", "Optional stat reward (str|int|cha|vit|dis)")

	return cmd
}

func newQuestDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <n>",
		Short: "Complete a quest (numbered as in `al list`)",
		Args:  numberArg("n"),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			n, _ := strconv.Atoi(args[0])

			return mutateState(ctx, cmd, func(st *engine.PlayerState) error {
				res, err := engine.CompleteQuest(st, n-1)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s +%d XP, +%d %s\n",
					ui.Good.Render(ui.IconDone+" Quest complete:"),
					res.XPAwarded, res.GoldAwarded, ui.IconGold)
				if res.StatAwarded != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s +2\n",
						ui.StatIcon(*res.StatAwarded), ui.Key.Render(ui.StatLabel(*res.StatAwarded)))
				}
				if res.LevelUp {
					fmt.Fprintln(cmd.OutOrStdout(), levelUpLine(res.LevelBefore, res.LevelAfter))
				}
				return nil
			})
		},
	}

	return cmd
}

func newQuestRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <n>",
		Short: "Delete a quest (numbered as in `al list`)",
		Args:  numberArg("n"),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			n, _ := strconv.Atoi(args[0])

			return mutateState(ctx, cmd, func(st *engine.PlayerState) error {
				open := engine.IncompleteQuests(st)
				if n-1 < 0 || n-1 >= len(open) {
					return engine.ErrIndexOutOfRange
				}
				name := open[n-1].Name
				if err := engine.DeleteQuest(st, n-1); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Warn.Render(ui.IconTrash+" Deleted quest"), name)
				return nil
			})
		},
	}

	return cmd
}
