package engine

// HabitXP returns the base XP a habit of the given difficulty awards per
// completion. Difficulty is a closed enum, so the lookup is total.
func HabitXP(d HabitDifficulty) int {
	switch d {
	case HabitMedium:
		return 20
	case HabitHard:
		return 30
	default: // HabitEasy
		return 10
	}
}

// QuestReward returns the XP and gold fixed at quest creation for the given
// difficulty.
func QuestReward(d QuestDifficulty) (xp int, gold int) {
	switch d {
	case QuestNormal:
		return 50, 20
	case QuestHard:
		return 100, 40
	default: // QuestEasy
		return 30, 10
	}
}
