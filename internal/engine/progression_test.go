package engine

import (
	"errors"
	"testing"
	"time"
)

func newTestPlayer(t *testing.T) *PlayerState {
	t.Helper()
	return NewPlayerState("Tester", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestXPThresholdCurve(t *testing.T) {
	cases := []struct {
		level int
		want  int
	}{
		{1, 100},
		{2, 282},
		{3, 519},
		{4, 800},
		{5, 1118},
		{10, 3162},
	}
	for _, c := range cases {
		if got := XPThreshold(c.level); got != c.want {
			t.Fatalf("XPThreshold(%d)=%d, want %d", c.level, got, c.want)
		}
	}

	prev := XPThreshold(1)
	for l := 2; l <= 50; l++ {
		cur := XPThreshold(l)
		if cur <= prev {
			t.Fatalf("threshold not strictly increasing at level %d: %d <= %d", l, cur, prev)
		}
		prev = cur
	}
}

func TestAddExperienceExactThreshold(t *testing.T) {
	p := newTestPlayer(t)

	gained, err := AddExperience(p, XPThreshold(1))
	if err != nil {
		t.Fatalf("AddExperience: %v", err)
	}
	if gained != 1 {
		t.Fatalf("levels gained=%d, want 1", gained)
	}
	if p.Level != 2 {
		t.Fatalf("level=%d, want 2", p.Level)
	}
	if p.XP != 0 {
		t.Fatalf("xp=%d, want 0", p.XP)
	}
	if p.TotalXP != XPThreshold(1) {
		t.Fatalf("total xp=%d, want %d", p.TotalXP, XPThreshold(1))
	}
	if p.Gold != 2*GoldPerLevel {
		t.Fatalf("gold=%d, want %d", p.Gold, 2*GoldPerLevel)
	}
	for _, k := range StatKinds {
		if p.Stats[k] != BaselineStat+1 {
			t.Fatalf("stat %s=%d, want %d", k, p.Stats[k], BaselineStat+1)
		}
	}
}

func TestAddExperienceMultiLevelSpan(t *testing.T) {
	p := newTestPlayer(t)

	amount := XPThreshold(1) + XPThreshold(2) + 7
	gained, err := AddExperience(p, amount)
	if err != nil {
		t.Fatalf("AddExperience: %v", err)
	}
	if gained != 2 {
		t.Fatalf("levels gained=%d, want 2", gained)
	}
	if p.Level != 3 {
		t.Fatalf("level=%d, want 3", p.Level)
	}
	if p.XP != 7 {
		t.Fatalf("xp=%d, want 7", p.XP)
	}
	// Gold bonus uses the level just reached: 2*10 then 3*10.
	if p.Gold != 2*GoldPerLevel+3*GoldPerLevel {
		t.Fatalf("gold=%d, want %d", p.Gold, 5*GoldPerLevel)
	}
	for _, k := range StatKinds {
		if p.Stats[k] != BaselineStat+2 {
			t.Fatalf("stat %s=%d, want %d", k, p.Stats[k], BaselineStat+2)
		}
	}
}

func TestAddExperienceNegative(t *testing.T) {
	p := newTestPlayer(t)
	p.XP = 42
	p.TotalXP = 42

	if _, err := AddExperience(p, -1); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("err=%v, want ErrInvalidAmount", err)
	}
	if p.XP != 42 || p.TotalXP != 42 || p.Level != 1 {
		t.Fatalf("state mutated on failed add: %+v", p)
	}
}

func TestAddStat(t *testing.T) {
	p := newTestPlayer(t)

	if err := AddStat(p, StatCharisma, 3); err != nil {
		t.Fatalf("AddStat: %v", err)
	}
	if p.Stats[StatCharisma] != BaselineStat+3 {
		t.Fatalf("charisma=%d, want %d", p.Stats[StatCharisma], BaselineStat+3)
	}

	if err := AddStat(p, StatKind("luck"), 1); !errors.Is(err, ErrUnknownStat) {
		t.Fatalf("err=%v, want ErrUnknownStat", err)
	}
	if _, ok := p.Stats[StatKind("luck")]; ok {
		t.Fatalf("unknown stat key inserted")
	}
	if err := AddStat(p, StatVitality, -2); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("err=%v, want ErrInvalidAmount", err)
	}
	if len(p.Stats) != len(StatKinds) {
		t.Fatalf("stat map has %d keys, want %d", len(p.Stats), len(StatKinds))
	}
}
