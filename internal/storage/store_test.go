package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/KaiK0de/alter-life-rpg/internal/engine"
)

func newTestStore(t *testing.T) *PlayerStore {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewPlayerStore(db)
}

func TestLoadMissingSaveReturnsFreshState(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	p, err := store.Load(ctx, today)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.Name != DefaultPlayerName || p.Level != 1 || p.XP != 0 || p.Gold != 0 {
		t.Fatalf("unexpected fresh state: %+v", p)
	}
	for _, k := range engine.StatKinds {
		if p.Stats[k] != engine.BaselineStat {
			t.Fatalf("stat %s=%d, want %d", k, p.Stats[k], engine.BaselineStat)
		}
	}
	if len(p.Habits) != 0 || len(p.Quests) != 0 || len(p.Achievements) != 0 {
		t.Fatalf("fresh state not empty: %+v", p)
	}
	if !p.LastLogin.Equal(today) {
		t.Fatalf("last login=%v, want %v", p.LastLogin, today)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	p := engine.NewPlayerState("Kai", today)
	if err := engine.AddHabit(p, "Morning run", engine.StatVitality, engine.HabitHard, today); err != nil {
		t.Fatalf("add habit: %v", err)
	}
	if _, err := engine.CompleteHabit(p, 0, today); err != nil {
		t.Fatalf("complete habit: %v", err)
	}
	stat := engine.StatCharisma
	if err := engine.AddQuest(p, "Call grandma", "weekly call", engine.QuestNormal, &stat, today); err != nil {
		t.Fatalf("add quest: %v", err)
	}
	if err := engine.AddQuest(p, "Ship the thing", "", engine.QuestHard, nil, today); err != nil {
		t.Fatalf("add quest: %v", err)
	}
	if _, err := engine.CompleteQuest(p, 0); err != nil {
		t.Fatalf("complete quest: %v", err)
	}
	engine.UnlockAchievements(p, engine.EvaluateAchievements(p))

	if err := store.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Load(ctx, today.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if got.Name != p.Name || got.Level != p.Level || got.XP != p.XP ||
		got.TotalXP != p.TotalXP || got.Gold != p.Gold {
		t.Fatalf("player mismatch: got %+v, want %+v", got, p)
	}
	for _, k := range engine.StatKinds {
		if got.Stats[k] != p.Stats[k] {
			t.Fatalf("stat %s=%d, want %d", k, got.Stats[k], p.Stats[k])
		}
	}
	if !got.LastLogin.Equal(today) {
		t.Fatalf("last login=%v, want %v (load must not rewrite it)", got.LastLogin, today)
	}

	if len(got.Habits) != 1 {
		t.Fatalf("habits=%d, want 1", len(got.Habits))
	}
	h := got.Habits[0]
	if h.Name != "Morning run" || h.Stat != engine.StatVitality || h.Streak != 1 ||
		h.TotalCompletions != 1 || h.BaseXPReward != engine.HabitXP(engine.HabitHard) {
		t.Fatalf("habit mismatch: %+v", h)
	}
	if h.LastCompleted == nil || !h.LastCompleted.Equal(today) {
		t.Fatalf("habit last completed=%v, want %v", h.LastCompleted, today)
	}

	if len(got.Quests) != 2 {
		t.Fatalf("quests=%d, want 2", len(got.Quests))
	}
	q := got.Quests[0]
	if !q.Completed || q.StatReward == nil || *q.StatReward != engine.StatCharisma || q.Description != "weekly call" {
		t.Fatalf("quest mismatch: %+v", q)
	}
	if got.Quests[1].Completed || got.Quests[1].StatReward != nil {
		t.Fatalf("quest mismatch: %+v", got.Quests[1])
	}

	if len(got.Achievements) != 1 || got.Achievements[0] != engine.AchFirstQuest {
		t.Fatalf("achievements=%v, want [first_quest]", got.Achievements)
	}
}

func TestSaveOverwritesPreviousSnapshot(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	p := engine.NewPlayerState("Kai", today)
	if err := engine.AddHabit(p, "A", engine.StatStrength, engine.HabitEasy, today); err != nil {
		t.Fatalf("add habit: %v", err)
	}
	if err := engine.AddHabit(p, "B", engine.StatStrength, engine.HabitEasy, today); err != nil {
		t.Fatalf("add habit: %v", err)
	}
	if err := store.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := engine.DeleteHabit(p, 0); err != nil {
		t.Fatalf("delete habit: %v", err)
	}
	if err := store.Save(ctx, p); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := store.Load(ctx, today)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Habits) != 1 || got.Habits[0].Name != "B" {
		t.Fatalf("habits=%+v, want only B", got.Habits)
	}
}
