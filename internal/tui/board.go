package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KaiK0de/alter-life-rpg/internal/storage"
)

func RunBoard(ctx context.Context, store *storage.PlayerStore, out io.Writer) error {
	m := newBoardModel(ctx, store)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
