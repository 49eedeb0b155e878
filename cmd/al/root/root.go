package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KaiK0de/alter-life-rpg/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "al",
	Short:         "Alter Life — gamify your real life",
	Long:          "Alter Life is a local-first personal RPG: level up by completing real-life habits and quests.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newHabitCmd(),
		newQuestCmd(),
		newListCmd(),
		newStatusCmd(),
		newAchievementsCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
