package engine

import (
	"fmt"
	"strings"
)

// StatKind identifies one of the five fixed character stats.
type StatKind string

const (
	StatStrength     StatKind = "strength"
	StatIntelligence StatKind = "intelligence"
	StatCharisma     StatKind = "charisma"
	StatVitality     StatKind = "vitality"
	StatDiscipline   StatKind = "discipline"
)

// StatKinds lists every stat in display order. The player's stat map carries
// exactly these keys, no more and no less.
var StatKinds = []StatKind{
	StatStrength,
	StatIntelligence,
	StatCharisma,
	StatVitality,
	StatDiscipline,
}

func (s StatKind) IsValid() bool {
	switch s {
	case StatStrength, StatIntelligence, StatCharisma, StatVitality, StatDiscipline:
		return true
	default:
		return false
	}
}

// ParseStatKind parses user input to a StatKind.
// Supported: strength/str, intelligence/int, charisma/cha, vitality/vit, discipline/dis.
func ParseStatKind(input string) (StatKind, error) {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "strength", "str":
		return StatStrength, nil
	case "intelligence", "int":
		return StatIntelligence, nil
	case "charisma", "cha":
		return StatCharisma, nil
	case "vitality", "vit":
		return StatVitality, nil
	case "discipline", "dis":
		return StatDiscipline, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStat, input)
	}
}

// HabitDifficulty determines a habit's base XP reward at creation.
type HabitDifficulty string

const (
	HabitEasy   HabitDifficulty = "easy"
	HabitMedium HabitDifficulty = "medium"
	HabitHard   HabitDifficulty = "hard"
)

func (d HabitDifficulty) IsValid() bool {
	switch d {
	case HabitEasy, HabitMedium, HabitHard:
		return true
	default:
		return false
	}
}

func ParseHabitDifficulty(input string) (HabitDifficulty, error) {
	d := HabitDifficulty(strings.TrimSpace(strings.ToLower(input)))
	if !d.IsValid() {
		return "", fmt.Errorf("invalid habit difficulty: %q", input)
	}
	return d, nil
}

// QuestDifficulty determines a quest's XP and gold rewards at creation.
type QuestDifficulty string

const (
	QuestEasy   QuestDifficulty = "easy"
	QuestNormal QuestDifficulty = "normal"
	QuestHard   QuestDifficulty = "hard"
)

func (d QuestDifficulty) IsValid() bool {
	switch d {
	case QuestEasy, QuestNormal, QuestHard:
		return true
	default:
		return false
	}
}

func ParseQuestDifficulty(input string) (QuestDifficulty, error) {
	d := QuestDifficulty(strings.TrimSpace(strings.ToLower(input)))
	if !d.IsValid() {
		return "", fmt.Errorf("invalid quest difficulty: %q", input)
	}
	return d, nil
}
