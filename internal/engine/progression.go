package engine

import "math"

// GoldPerLevel is the gold bonus multiplier on level-up: new level * GoldPerLevel.
const GoldPerLevel = 10

// XPThreshold returns the XP required to advance from level to level+1:
// floor(100 * level^1.5).
func XPThreshold(level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Floor(100 * math.Pow(float64(level), 1.5)))
}

// AddExperience adds amount to both the current-level XP and the lifetime
// total, then resolves level-ups: while XP reaches the current threshold, the
// threshold is consumed, the level increments, the player gains
// newLevel*GoldPerLevel gold and +1 to every stat. The loop handles a single
// large reward spanning several levels. Returns the number of levels gained.
func AddExperience(p *PlayerState, amount int) (int, error) {
	if amount < 0 {
		return 0, ErrInvalidAmount
	}

	p.XP += amount
	p.TotalXP += amount

	gained := 0
	for p.XP >= XPThreshold(p.Level) {
		p.XP -= XPThreshold(p.Level)
		p.Level++
		p.Gold += p.Level * GoldPerLevel
		for _, k := range StatKinds {
			p.Stats[k]++
		}
		gained++
	}
	return gained, nil
}

// AddStat raises a single stat. The stat map only ever carries the five fixed
// keys, so unknown kinds are rejected rather than inserted.
func AddStat(p *PlayerState, kind StatKind, amount int) error {
	if !kind.IsValid() {
		return ErrUnknownStat
	}
	if amount < 0 {
		return ErrInvalidAmount
	}
	p.Stats[kind] += amount
	return nil
}
