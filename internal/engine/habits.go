package engine

import (
	"strings"
	"time"
)

// Per-completion habit bonuses scaled by the current streak.
const (
	streakXPBonus   = 5
	streakGoldBonus = 2
)

// HabitResult reports what a completion awarded, for caller display.
type HabitResult struct {
	XPAwarded   int
	GoldAwarded int
	Streak      int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
}

// AddHabit appends a new habit. The base XP reward is frozen from the
// difficulty table at creation time.
func AddHabit(p *PlayerState, name string, stat StatKind, difficulty HabitDifficulty, today time.Time) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidName
	}
	if !stat.IsValid() {
		return ErrUnknownStat
	}

	p.Habits = append(p.Habits, Habit{
		Name:         name,
		Stat:         stat,
		BaseXPReward: HabitXP(difficulty),
		Difficulty:   difficulty,
		Created:      DateOf(today),
	})
	return nil
}

// CompleteHabit checks off the habit at index for the given day.
//
// Streak continuity uses true calendar arithmetic: completing on the day
// immediately after the last completion extends the streak; any gap (or a
// first-ever completion) restarts it at 1. A second completion on the same
// day is rejected with ErrAlreadyCompletedToday and changes nothing.
func CompleteHabit(p *PlayerState, index int, today time.Time) (*HabitResult, error) {
	if index < 0 || index >= len(p.Habits) {
		return nil, ErrIndexOutOfRange
	}
	h := &p.Habits[index]

	day := DateOf(today)
	if h.LastCompleted != nil && h.LastCompleted.Equal(day) {
		return nil, ErrAlreadyCompletedToday
	}

	yesterday := day.AddDate(0, 0, -1)
	if h.LastCompleted != nil && h.LastCompleted.Equal(yesterday) {
		h.Streak++
	} else {
		h.Streak = 1
	}
	h.LastCompleted = &day
	h.TotalCompletions++

	xp := h.BaseXPReward + h.Streak*streakXPBonus
	gold := h.Streak * streakGoldBonus

	levelBefore := p.Level
	// xp is always >= 0 here, so AddExperience cannot fail and the
	// mutation above never needs unwinding.
	gained, _ := AddExperience(p, xp)
	_ = AddStat(p, h.Stat, 1)
	p.Gold += gold

	return &HabitResult{
		XPAwarded:   xp,
		GoldAwarded: gold,
		Streak:      h.Streak,
		LevelBefore: levelBefore,
		LevelAfter:  p.Level,
		LevelUp:     gained > 0,
	}, nil
}

// DeleteHabit removes the habit at index; later entries shift down.
func DeleteHabit(p *PlayerState, index int) error {
	if index < 0 || index >= len(p.Habits) {
		return ErrIndexOutOfRange
	}
	p.Habits = append(p.Habits[:index], p.Habits[index+1:]...)
	return nil
}
