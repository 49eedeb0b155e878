package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KaiK0de/alter-life-rpg/internal/engine"
)

// Alter Life theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconPlayer  = "🧝"
	IconSparkle = "✨"
	IconPlus    = "➕"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconHabit   = "🔁"
	IconQuest   = "🗺️"
	IconStreak  = "🔥"
	IconGold    = "🪙"
	IconTrash   = "🗑️"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// StatIcon maps each stat to its display emoji.
func StatIcon(kind engine.StatKind) string {
	switch kind {
	case engine.StatStrength:
		return "💪"
	case engine.StatIntelligence:
		return "🧠"
	case engine.StatCharisma:
		return "🎭"
	case engine.StatVitality:
		return "❤️"
	case engine.StatDiscipline:
		return "🧘"
	default:
		return "❔"
	}
}

// StatLabel is the short uppercase tag used in listings.
func StatLabel(kind engine.StatKind) string {
	if len(kind) < 3 {
		return strings.ToUpper(string(kind))
	}
	return strings.ToUpper(string(kind)[:3])
}
