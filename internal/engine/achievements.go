package engine

// AchievementID identifies an unlockable achievement.
type AchievementID string

const (
	AchFirstQuest     AchievementID = "first_quest"
	AchLevel5         AchievementID = "level_5"
	AchLevel10        AchievementID = "level_10"
	AchSevenDayStreak AchievementID = "seven_day_streak"
	AchGold100        AchievementID = "gold_100"
)

// Achievement is the display metadata for one unlockable badge.
type Achievement struct {
	ID          AchievementID
	Name        string
	Description string
	Icon        string
}

// Achievements is the full catalog in display order.
var Achievements = []Achievement{
	{AchFirstQuest, "First Quest", "Complete your first quest", "✓"},
	{AchLevel5, "On the Path", "Reach level 5", "🌳"},
	{AchLevel10, "Seasoned Adventurer", "Reach level 10", "⭐"},
	{AchSevenDayStreak, "Habit Former", "Keep a 7-day habit streak", "🔥"},
	{AchGold100, "Coin Purse", "Accumulate 100 gold", "🪙"},
}

// AchievementByID returns the catalog entry, or nil for an unknown id.
func AchievementByID(id AchievementID) *Achievement {
	for i := range Achievements {
		if Achievements[i].ID == id {
			return &Achievements[i]
		}
	}
	return nil
}

// EvaluateAchievements scans the state and returns the achievements whose
// conditions are newly satisfied, in catalog order. It does not mutate the
// state; callers merge the result with UnlockAchievements. Re-running after a
// merge yields nothing until a new threshold is crossed.
func EvaluateAchievements(p *PlayerState) []AchievementID {
	var unlocked []AchievementID
	for _, a := range Achievements {
		if p.HasAchievement(a.ID) {
			continue
		}
		if achievementEarned(p, a.ID) {
			unlocked = append(unlocked, a.ID)
		}
	}
	return unlocked
}

// UnlockAchievements appends ids to the player's achievement set, keeping
// insertion order and skipping anything already present.
func UnlockAchievements(p *PlayerState, ids []AchievementID) {
	for _, id := range ids {
		if !p.HasAchievement(id) {
			p.Achievements = append(p.Achievements, id)
		}
	}
}

func achievementEarned(p *PlayerState, id AchievementID) bool {
	switch id {
	case AchFirstQuest:
		for _, q := range p.Quests {
			if q.Completed {
				return true
			}
		}
		return false
	case AchLevel5:
		return p.Level >= 5
	case AchLevel10:
		return p.Level >= 10
	case AchSevenDayStreak:
		for _, h := range p.Habits {
			if h.Streak >= 7 {
				return true
			}
		}
		return false
	case AchGold100:
		return p.Gold >= 100
	default:
		return false
	}
}
