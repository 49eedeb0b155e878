package engine

import (
	"strings"
	"time"
)

// questStatBonus is the stat gain when a completed quest names a stat reward.
const questStatBonus = 2

// QuestResult reports what a completion awarded, for caller display.
type QuestResult struct {
	XPAwarded   int
	GoldAwarded int
	StatAwarded *StatKind
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
}

// AddQuest appends a new quest. XP and gold rewards are frozen from the
// difficulty table at creation time; statReward may be nil.
func AddQuest(p *PlayerState, name, description string, difficulty QuestDifficulty, statReward *StatKind, today time.Time) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidName
	}
	if statReward != nil && !statReward.IsValid() {
		return ErrUnknownStat
	}

	xp, gold := QuestReward(difficulty)
	p.Quests = append(p.Quests, Quest{
		Name:        name,
		Description: description,
		XPReward:    xp,
		GoldReward:  gold,
		StatReward:  statReward,
		Difficulty:  difficulty,
		Created:     DateOf(today),
	})
	return nil
}

// IncompleteQuests returns the quests still open, in storage order. This is
// the view users see; quest indices given to CompleteQuest and DeleteQuest
// count positions within it.
func IncompleteQuests(p *PlayerState) []Quest {
	var out []Quest
	for _, q := range p.Quests {
		if !q.Completed {
			out = append(out, q)
		}
	}
	return out
}

// storageIndex translates a visible position (counted over incomplete quests
// only) to the underlying position in p.Quests.
func storageIndex(p *PlayerState, visible int) (int, error) {
	if visible < 0 {
		return 0, ErrIndexOutOfRange
	}
	seen := 0
	for i := range p.Quests {
		if p.Quests[i].Completed {
			continue
		}
		if seen == visible {
			return i, nil
		}
		seen++
	}
	return 0, ErrIndexOutOfRange
}

// CompleteQuest finishes the quest at the given visible position. The
// completed flag flips one way only, so rewards can never be granted twice.
func CompleteQuest(p *PlayerState, visible int) (*QuestResult, error) {
	idx, err := storageIndex(p, visible)
	if err != nil {
		return nil, err
	}
	q := &p.Quests[idx]
	if q.Completed {
		return nil, ErrAlreadyCompleted
	}

	q.Completed = true

	levelBefore := p.Level
	gained, _ := AddExperience(p, q.XPReward)
	p.Gold += q.GoldReward
	if q.StatReward != nil {
		_ = AddStat(p, *q.StatReward, questStatBonus)
	}

	return &QuestResult{
		XPAwarded:   q.XPReward,
		GoldAwarded: q.GoldReward,
		StatAwarded: q.StatReward,
		LevelBefore: levelBefore,
		LevelAfter:  p.Level,
		LevelUp:     gained > 0,
	}, nil
}

// DeleteQuest removes the quest at the given visible position, applying the
// same translation as CompleteQuest so printed numbers stay valid.
func DeleteQuest(p *PlayerState, visible int) error {
	idx, err := storageIndex(p, visible)
	if err != nil {
		return err
	}
	p.Quests = append(p.Quests[:idx], p.Quests[idx+1:]...)
	return nil
}
