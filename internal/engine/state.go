package engine

import "time"

// BaselineStat is the starting value of every stat for a fresh player.
const BaselineStat = 5

// PlayerState is the whole persisted game state for one player. The engine
// exposes the only mutation entry points; callers own the value, thread it
// through each operation, and persist it afterwards.
type PlayerState struct {
	Name         string
	Level        int
	XP           int // progress toward the next level, reset on level-up
	TotalXP      int // lifetime counter, never decreases
	Gold         int
	Stats        map[StatKind]int
	Habits       []Habit
	Quests       []Quest
	Achievements []AchievementID // insertion order, unique
	LastLogin    time.Time
}

// Habit is a recurring, streak-based task training a single stat.
type Habit struct {
	Name             string
	Stat             StatKind
	BaseXPReward     int
	Difficulty       HabitDifficulty
	Streak           int
	TotalCompletions int
	LastCompleted    *time.Time // nil until the first completion
	Created          time.Time
}

// Quest is a one-off task with fixed rewards and a one-way completed flag.
type Quest struct {
	Name        string
	Description string
	XPReward    int
	GoldReward  int
	StatReward  *StatKind
	Difficulty  QuestDifficulty
	Completed   bool
	Created     time.Time
}

// NewPlayerState builds the fresh state used for a new save (and as the
// fallback when an existing save is missing or unreadable).
func NewPlayerState(name string, today time.Time) *PlayerState {
	stats := make(map[StatKind]int, len(StatKinds))
	for _, k := range StatKinds {
		stats[k] = BaselineStat
	}
	return &PlayerState{
		Name:      name,
		Level:     1,
		Stats:     stats,
		LastLogin: DateOf(today),
	}
}

// DateOf truncates t to its calendar date (UTC midnight). All engine date
// comparisons operate on these normalized values.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// HasAchievement reports whether id is already unlocked.
func (p *PlayerState) HasAchievement(id AchievementID) bool {
	for _, got := range p.Achievements {
		if got == id {
			return true
		}
	}
	return false
}
