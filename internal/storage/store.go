package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/KaiK0de/alter-life-rpg/internal/engine"
)

// DefaultPlayerName names the player on a fresh save.
const DefaultPlayerName = "Adventurer"

const dateLayout = "2006-01-02"

// PlayerStore persists one PlayerState snapshot per database.
type PlayerStore struct {
	db *sql.DB
}

func NewPlayerStore(db *sql.DB) *PlayerStore {
	return &PlayerStore{db: db}
}

// Load returns the saved state. When the save is missing or its contents
// cannot be read back, it falls back to a fresh state (level 1, stats at
// baseline, last login = today) — the fresh state is only written out on the
// next Save.
func (s *PlayerStore) Load(ctx context.Context, today time.Time) (*engine.PlayerState, error) {
	p, err := s.loadPlayer(ctx)
	if err == errCorruptSave || err == sql.ErrNoRows {
		return engine.NewPlayerState(DefaultPlayerName, today), nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

var errCorruptSave = fmt.Errorf("corrupt save")

func (s *PlayerStore) loadPlayer(ctx context.Context) (*engine.PlayerState, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT name, level, xp, total_xp, gold,
			strength, intelligence, charisma, vitality, discipline,
			last_login
		FROM player WHERE id = 1
	`)

	var (
		p         engine.PlayerState
		stats     [5]int
		lastLogin string
	)
	if err := row.Scan(&p.Name, &p.Level, &p.XP, &p.TotalXP, &p.Gold,
		&stats[0], &stats[1], &stats[2], &stats[3], &stats[4], &lastLogin); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, errCorruptSave
	}

	login, err := time.Parse(dateLayout, lastLogin)
	if err != nil {
		return nil, errCorruptSave
	}
	if p.Level < 1 {
		return nil, errCorruptSave
	}

	p.LastLogin = login
	p.Stats = make(map[engine.StatKind]int, len(engine.StatKinds))
	for i, k := range engine.StatKinds {
		p.Stats[k] = stats[i]
	}

	if p.Habits, err = s.loadHabits(ctx); err != nil {
		return nil, err
	}
	if p.Quests, err = s.loadQuests(ctx); err != nil {
		return nil, err
	}
	if p.Achievements, err = s.loadAchievements(ctx); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PlayerStore) loadHabits(ctx context.Context) ([]engine.Habit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, stat, xp_reward, difficulty, streak, total_completions, last_completed, created_date
		FROM habits ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("habit list: %w", err)
	}
	defer rows.Close()

	var out []engine.Habit
	for rows.Next() {
		var (
			h             engine.Habit
			stat          string
			difficulty    string
			lastCompleted sql.NullString
			created       string
		)
		if err := rows.Scan(&h.Name, &stat, &h.BaseXPReward, &difficulty,
			&h.Streak, &h.TotalCompletions, &lastCompleted, &created); err != nil {
			return nil, errCorruptSave
		}
		h.Stat = engine.StatKind(stat)
		h.Difficulty = engine.HabitDifficulty(difficulty)
		if !h.Stat.IsValid() || !h.Difficulty.IsValid() {
			return nil, errCorruptSave
		}
		if h.Created, err = time.Parse(dateLayout, created); err != nil {
			return nil, errCorruptSave
		}
		if lastCompleted.Valid {
			d, err := time.Parse(dateLayout, lastCompleted.String)
			if err != nil {
				return nil, errCorruptSave
			}
			h.LastCompleted = &d
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("habit rows: %w", err)
	}
	return out, nil
}

func (s *PlayerStore) loadQuests(ctx context.Context) ([]engine.Quest, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, description, xp_reward, gold_reward, stat_reward, difficulty, completed, created_date
		FROM quests ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("quest list: %w", err)
	}
	defer rows.Close()

	var out []engine.Quest
	for rows.Next() {
		var (
			q          engine.Quest
			statReward sql.NullString
			difficulty string
			completed  int
			created    string
		)
		if err := rows.Scan(&q.Name, &q.Description, &q.XPReward, &q.GoldReward,
			&statReward, &difficulty, &completed, &created); err != nil {
			return nil, errCorruptSave
		}
		q.Difficulty = engine.QuestDifficulty(difficulty)
		if !q.Difficulty.IsValid() {
			return nil, errCorruptSave
		}
		if statReward.Valid {
			k := engine.StatKind(statReward.String)
			if !k.IsValid() {
				return nil, errCorruptSave
			}
			q.StatReward = &k
		}
		q.Completed = completed != 0
		if q.Created, err = time.Parse(dateLayout, created); err != nil {
			return nil, errCorruptSave
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("quest rows: %w", err)
	}
	return out, nil
}

func (s *PlayerStore) loadAchievements(ctx context.Context) ([]engine.AchievementID, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM achievements ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("achievement list: %w", err)
	}
	defer rows.Close()

	var out []engine.AchievementID
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, errCorruptSave
		}
		out = append(out, engine.AchievementID(id))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("achievement rows: %w", err)
	}
	return out, nil
}

// Save writes the whole snapshot in one transaction, replacing the previous
// save. The collections are rewritten wholesale so positions always match the
// in-memory order.
func (s *PlayerStore) Save(ctx context.Context, p *engine.PlayerState) error {
	return WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO player (id, name, level, xp, total_xp, gold,
				strength, intelligence, charisma, vitality, discipline, last_login)
			VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				name = excluded.name,
				level = excluded.level,
				xp = excluded.xp,
				total_xp = excluded.total_xp,
				gold = excluded.gold,
				strength = excluded.strength,
				intelligence = excluded.intelligence,
				charisma = excluded.charisma,
				vitality = excluded.vitality,
				discipline = excluded.discipline,
				last_login = excluded.last_login
		`, p.Name, p.Level, p.XP, p.TotalXP, p.Gold,
			p.Stats[engine.StatStrength], p.Stats[engine.StatIntelligence],
			p.Stats[engine.StatCharisma], p.Stats[engine.StatVitality],
			p.Stats[engine.StatDiscipline], p.LastLogin.Format(dateLayout)); err != nil {
			return fmt.Errorf("player upsert: %w", err)
		}

		for _, table := range []string{"habits", "quests", "achievements"} {
			if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}

		for i, h := range p.Habits {
			var lastCompleted *string
			if h.LastCompleted != nil {
				v := h.LastCompleted.Format(dateLayout)
				lastCompleted = &v
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO habits (position, name, stat, xp_reward, difficulty,
					streak, total_completions, last_completed, created_date)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, i, h.Name, string(h.Stat), h.BaseXPReward, string(h.Difficulty),
				h.Streak, h.TotalCompletions, lastCompleted, h.Created.Format(dateLayout)); err != nil {
				return fmt.Errorf("habit insert: %w", err)
			}
		}

		for i, q := range p.Quests {
			var statReward *string
			if q.StatReward != nil {
				v := string(*q.StatReward)
				statReward = &v
			}
			completed := 0
			if q.Completed {
				completed = 1
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO quests (position, name, description, xp_reward, gold_reward,
					stat_reward, difficulty, completed, created_date)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, i, q.Name, q.Description, q.XPReward, q.GoldReward,
				statReward, string(q.Difficulty), completed, q.Created.Format(dateLayout)); err != nil {
				return fmt.Errorf("quest insert: %w", err)
			}
		}

		for i, id := range p.Achievements {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO achievements (position, id) VALUES (?, ?)
			`, i, string(id)); err != nil {
				return fmt.Errorf("achievement insert: %w", err)
			}
		}
		return nil
	})
}
