package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KaiK0de/alter-life-rpg/internal/engine"
	"github.com/KaiK0de/alter-life-rpg/internal/storage"
	"github.com/KaiK0de/alter-life-rpg/internal/ui"
)

func openStore(ctx context.Context) (*storage.PlayerStore, func(), error) {
	path, err := storage.ResolveDBPath()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return storage.NewPlayerStore(db), cleanup, nil
}

// mutateState runs fn against the loaded state, then evaluates achievements,
// stamps the login date and persists the snapshot. fn is the only piece that
// may mutate the state; everything after a failed fn leaves the save as-is.
func mutateState(ctx context.Context, cmd *cobra.Command, fn func(st *engine.PlayerState) error) error {
	store, cleanup, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	st, err := store.Load(ctx, time.Now())
	if err != nil {
		return err
	}
	if err := fn(st); err != nil {
		return err
	}

	unlocked := engine.EvaluateAchievements(st)
	engine.UnlockAchievements(st, unlocked)

	st.LastLogin = engine.DateOf(time.Now())
	if err := store.Save(ctx, st); err != nil {
		return err
	}

	for _, id := range unlocked {
		if a := engine.AchievementByID(id); a != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				ui.Gold.Render(ui.IconTrophy+" Achievement unlocked:"),
				a.Icon, ui.Title.Render(a.Name), ui.Muted.Render("— "+a.Description))
		}
	}
	return nil
}

func levelUpLine(before, after int) string {
	return fmt.Sprintf("%s %s", ui.BadgeLevelUp, ui.Muted.Render(fmt.Sprintf("(level %d → %d)", before, after)))
}
