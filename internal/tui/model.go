package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KaiK0de/alter-life-rpg/internal/engine"
	"github.com/KaiK0de/alter-life-rpg/internal/storage"
	"github.com/KaiK0de/alter-life-rpg/internal/ui"
)

type boardModel struct {
	ctx   context.Context
	store *storage.PlayerStore

	width  int
	height int

	state *engine.PlayerState

	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	state *engine.PlayerState
	err   error
}

type completedMsg struct {
	log string
	err error
}

func newBoardModel(ctx context.Context, store *storage.PlayerStore) boardModel {
	return boardModel{
		ctx:     ctx,
		store:   store,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		st, err := m.store.Load(m.ctx, time.Now())
		return loadedMsg{state: st, err: err}
	}
}

// completeCmd completes the selected row, merges any achievement unlocks and
// persists the snapshot before reporting back.
func (m boardModel) completeCmd(row boardRow) tea.Cmd {
	st := m.state
	return func() tea.Msg {
		var log string
		switch row.kind {
		case rowHabit:
			res, err := engine.CompleteHabit(st, row.index, time.Now())
			if errors.Is(err, engine.ErrAlreadyCompletedToday) {
				return completedMsg{log: "Already completed today."}
			}
			if err != nil {
				return completedMsg{err: err}
			}
			log = fmt.Sprintf("%s +%d XP, +%d gold (streak %d)", row.title, res.XPAwarded, res.GoldAwarded, res.Streak)
			if res.LevelUp {
				log += " " + ui.BadgeLevelUp
			}
		case rowQuest:
			res, err := engine.CompleteQuest(st, row.index)
			if err != nil {
				return completedMsg{err: err}
			}
			log = fmt.Sprintf("%s +%d XP, +%d gold", row.title, res.XPAwarded, res.GoldAwarded)
			if res.LevelUp {
				log += " " + ui.BadgeLevelUp
			}
		}

		unlocked := engine.EvaluateAchievements(st)
		engine.UnlockAchievements(st, unlocked)
		for _, id := range unlocked {
			if a := engine.AchievementByID(id); a != nil {
				log += fmt.Sprintf(" %s %s!", a.Icon, a.Name)
			}
		}

		st.LastLogin = engine.DateOf(time.Now())
		if err := m.store.Save(m.ctx, st); err != nil {
			return completedMsg{err: err}
		}
		return completedMsg{log: log}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.state = msg.state
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = msg.log
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			rows := m.rows()
			if m.selected < len(rows)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ":
			rows := m.rows()
			if m.selected < 0 || m.selected >= len(rows) {
				return m, nil
			}
			row := rows[m.selected]
			m.lastLog = fmt.Sprintf("Completing %s…", row.title)
			return m, m.completeCmd(row)
		}
	}
	return m, nil
}

type rowKind int

const (
	rowHabit rowKind = iota
	rowQuest
)

type boardRow struct {
	kind   rowKind
	index  int // habit index, or visible quest index
	title  string
	detail string
}

func (m boardModel) rows() []boardRow {
	if m.state == nil {
		return nil
	}

	var out []boardRow
	for i, h := range m.state.Habits {
		detail := fmt.Sprintf("%s %s", ui.StatLabel(h.Stat), ui.StatIcon(h.Stat))
		if h.Streak > 0 {
			detail += fmt.Sprintf("  %s%d", ui.IconStreak, h.Streak)
		}
		out = append(out, boardRow{kind: rowHabit, index: i, title: h.Name, detail: detail})
	}
	for i, q := range engine.IncompleteQuests(m.state) {
		detail := fmt.Sprintf("+%d XP +%d %s", q.XPReward, q.GoldReward, ui.IconGold)
		out = append(out, boardRow{kind: rowQuest, index: i, title: q.Name, detail: detail})
	}

	if m.selected >= len(out) {
		m.selected = len(out) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	return out
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 24
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.state == nil {
		return "Alter Life — loading…"
	}
	bar := progressBar(m.state.XP, engine.XPThreshold(m.state.Level), 30)
	return fmt.Sprintf("Alter Life | %s | Level %d | XP %d/%d %s | %s %d",
		m.state.Name, m.state.Level, m.state.XP, engine.XPThreshold(m.state.Level), bar,
		ui.IconGold, m.state.Gold)
}

func (m boardModel) renderSidebar() string {
	if m.state == nil {
		return "Stats\n\nLoading…"
	}
	lines := []string{"Stats"}
	for _, k := range engine.StatKinds {
		lines = append(lines, fmt.Sprintf("- %s %s %d", ui.StatIcon(k), ui.StatLabel(k), m.state.Stats[k]))
	}
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("%s %d/%d badges", ui.IconTrophy, len(m.state.Achievements), len(engine.Achievements)))
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- c/space: complete")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	rows := m.rows()

	var out []string
	out = append(out, "Habits & Quests")
	if len(rows) == 0 {
		out = append(out, "(nothing to do — add habits or quests)")
		return strings.Join(out, "\n")
	}
	for i, row := range rows {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		icon := ui.IconHabit
		if row.kind == rowQuest {
			icon = ui.IconQuest
		}
		out = append(out, fmt.Sprintf("%s%s %s  %s", cursor, icon, row.title, ui.Muted.Render(row.detail)))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	ratio := float64(value) / float64(total)
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
