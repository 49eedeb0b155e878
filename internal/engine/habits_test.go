package engine

import (
	"errors"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func addTestHabit(t *testing.T, p *PlayerState, diff HabitDifficulty) int {
	t.Helper()
	if err := AddHabit(p, "Morning run", StatVitality, diff, day(2024, 1, 1)); err != nil {
		t.Fatalf("AddHabit: %v", err)
	}
	return len(p.Habits) - 1
}

func TestFirstHabitCompletion(t *testing.T) {
	p := newTestPlayer(t)
	i := addTestHabit(t, p, HabitHard)

	res, err := CompleteHabit(p, i, day(2024, 1, 1))
	if err != nil {
		t.Fatalf("CompleteHabit: %v", err)
	}
	if res.Streak != 1 {
		t.Fatalf("streak=%d, want 1", res.Streak)
	}
	if res.XPAwarded != 35 {
		t.Fatalf("xp awarded=%d, want 35", res.XPAwarded)
	}
	if res.GoldAwarded != 2 {
		t.Fatalf("gold awarded=%d, want 2", res.GoldAwarded)
	}
	if res.LevelUp {
		t.Fatalf("unexpected level-up (threshold is %d)", XPThreshold(1))
	}
	if p.XP != 35 || p.TotalXP != 35 {
		t.Fatalf("xp=%d/%d, want 35/35", p.XP, p.TotalXP)
	}
	if p.Gold != 2 {
		t.Fatalf("gold=%d, want 2", p.Gold)
	}
	if p.Stats[StatVitality] != BaselineStat+1 {
		t.Fatalf("vitality=%d, want %d", p.Stats[StatVitality], BaselineStat+1)
	}
	h := p.Habits[i]
	if h.TotalCompletions != 1 {
		t.Fatalf("total completions=%d, want 1", h.TotalCompletions)
	}
	if h.LastCompleted == nil || !h.LastCompleted.Equal(day(2024, 1, 1)) {
		t.Fatalf("last completed=%v, want 2024-01-01", h.LastCompleted)
	}
}

func TestConsecutiveDayExtendsStreak(t *testing.T) {
	p := newTestPlayer(t)
	i := addTestHabit(t, p, HabitHard)

	if _, err := CompleteHabit(p, i, day(2024, 1, 1)); err != nil {
		t.Fatalf("first completion: %v", err)
	}
	res, err := CompleteHabit(p, i, day(2024, 1, 2))
	if err != nil {
		t.Fatalf("second completion: %v", err)
	}
	if res.Streak != 2 {
		t.Fatalf("streak=%d, want 2", res.Streak)
	}
	if res.XPAwarded != 40 {
		t.Fatalf("xp awarded=%d, want 40", res.XPAwarded)
	}
	if res.GoldAwarded != 4 {
		t.Fatalf("gold awarded=%d, want 4", res.GoldAwarded)
	}
	if p.XP != 75 {
		t.Fatalf("cumulative xp=%d, want 75", p.XP)
	}
}

func TestSameDayCompletionRejected(t *testing.T) {
	p := newTestPlayer(t)
	i := addTestHabit(t, p, HabitEasy)

	if _, err := CompleteHabit(p, i, day(2024, 3, 10)); err != nil {
		t.Fatalf("first completion: %v", err)
	}
	before := *p

	_, err := CompleteHabit(p, i, day(2024, 3, 10))
	if !errors.Is(err, ErrAlreadyCompletedToday) {
		t.Fatalf("err=%v, want ErrAlreadyCompletedToday", err)
	}
	if p.XP != before.XP || p.Gold != before.Gold {
		t.Fatalf("rewards granted on rejected completion")
	}
	if p.Habits[i].Streak != 1 || p.Habits[i].TotalCompletions != 1 {
		t.Fatalf("habit mutated on rejected completion: %+v", p.Habits[i])
	}
}

func TestGapResetsStreak(t *testing.T) {
	p := newTestPlayer(t)
	i := addTestHabit(t, p, HabitMedium)

	if _, err := CompleteHabit(p, i, day(2024, 5, 1)); err != nil {
		t.Fatalf("completion: %v", err)
	}
	if _, err := CompleteHabit(p, i, day(2024, 5, 2)); err != nil {
		t.Fatalf("completion: %v", err)
	}

	// Two-day gap: streak restarts at 1.
	res, err := CompleteHabit(p, i, day(2024, 5, 4))
	if err != nil {
		t.Fatalf("completion after gap: %v", err)
	}
	if res.Streak != 1 {
		t.Fatalf("streak=%d, want 1", res.Streak)
	}
}

func TestStreakAcrossMonthAndYearBoundaries(t *testing.T) {
	p := newTestPlayer(t)
	i := addTestHabit(t, p, HabitEasy)

	if _, err := CompleteHabit(p, i, day(2024, 1, 31)); err != nil {
		t.Fatalf("completion: %v", err)
	}
	res, err := CompleteHabit(p, i, day(2024, 2, 1))
	if err != nil {
		t.Fatalf("completion: %v", err)
	}
	if res.Streak != 2 {
		t.Fatalf("streak across month boundary=%d, want 2", res.Streak)
	}

	j := addTestHabit(t, p, HabitEasy)
	if _, err := CompleteHabit(p, j, day(2023, 12, 31)); err != nil {
		t.Fatalf("completion: %v", err)
	}
	res, err = CompleteHabit(p, j, day(2024, 1, 1))
	if err != nil {
		t.Fatalf("completion: %v", err)
	}
	if res.Streak != 2 {
		t.Fatalf("streak across year boundary=%d, want 2", res.Streak)
	}
}

func TestAddHabitValidation(t *testing.T) {
	p := newTestPlayer(t)

	if err := AddHabit(p, "   ", StatStrength, HabitEasy, day(2024, 1, 1)); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("err=%v, want ErrInvalidName", err)
	}
	if err := AddHabit(p, "Stretch", StatKind("luck"), HabitEasy, day(2024, 1, 1)); !errors.Is(err, ErrUnknownStat) {
		t.Fatalf("err=%v, want ErrUnknownStat", err)
	}
	if len(p.Habits) != 0 {
		t.Fatalf("habit appended despite validation failure")
	}

	if err := AddHabit(p, "Stretch", StatStrength, HabitMedium, day(2024, 1, 1)); err != nil {
		t.Fatalf("AddHabit: %v", err)
	}
	h := p.Habits[0]
	if h.BaseXPReward != HabitXP(HabitMedium) {
		t.Fatalf("base xp=%d, want %d", h.BaseXPReward, HabitXP(HabitMedium))
	}
	if h.Streak != 0 || h.TotalCompletions != 0 || h.LastCompleted != nil {
		t.Fatalf("fresh habit not zeroed: %+v", h)
	}
}

func TestDeleteHabit(t *testing.T) {
	p := newTestPlayer(t)
	for _, name := range []string{"A", "B", "C"} {
		if err := AddHabit(p, name, StatDiscipline, HabitEasy, day(2024, 1, 1)); err != nil {
			t.Fatalf("AddHabit %s: %v", name, err)
		}
	}

	if err := DeleteHabit(p, 1); err != nil {
		t.Fatalf("DeleteHabit: %v", err)
	}
	if len(p.Habits) != 2 || p.Habits[0].Name != "A" || p.Habits[1].Name != "C" {
		t.Fatalf("unexpected habits after delete: %+v", p.Habits)
	}
	if err := DeleteHabit(p, 2); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("err=%v, want ErrIndexOutOfRange", err)
	}
	if _, err := CompleteHabit(p, -1, day(2024, 1, 1)); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("err=%v, want ErrIndexOutOfRange", err)
	}
}
