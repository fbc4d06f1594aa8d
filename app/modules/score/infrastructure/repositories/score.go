package scoredb

import (
	"context"
	"fmt"
	"time"

	"github.com/Black-And-White-Club/budtender-trivia/app/shared/pgerr"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new score repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) CreateScore(ctx context.Context, db bun.IDB, score *Score) error {
	db = r.resolveDB(db)
	if score.CreatedAt.IsZero() {
		score.CreatedAt = time.Now().UTC()
	}
	_, err := db.NewInsert().
		Model(score).
		Returning("id").
		Exec(ctx)
	if err != nil {
		if pgerr.IsForeignKeyViolation(err) {
			return ErrUnknownUser
		}
		return fmt.Errorf("scoredb.CreateScore: %w", err)
	}
	return nil
}

const upsertStatSQL = `
INSERT INTO user_question_stats AS uqs
	(user_id, question_id, times_seen, times_correct, last_answered_at, created_at, updated_at)
VALUES (?, ?, 1, ?, ?, ?, ?)
ON CONFLICT (user_id, question_id) DO UPDATE SET
	times_seen = uqs.times_seen + 1,
	times_correct = uqs.times_correct + EXCLUDED.times_correct,
	last_answered_at = EXCLUDED.last_answered_at,
	updated_at = EXCLUDED.updated_at`

func (r *Impl) IncrementStats(ctx context.Context, db bun.IDB, userID int64, answers []Answer, at time.Time) error {
	db = r.resolveDB(db)
	at = at.UTC()
	for _, a := range answers {
		correct := 0
		if a.IsCorrect {
			correct = 1
		}
		if _, err := db.ExecContext(ctx, upsertStatSQL, userID, a.QuestionID, correct, at, at, at); err != nil {
			if pgerr.IsForeignKeyViolation(err) {
				return fmt.Errorf("%w: %d", ErrUnknownQuestion, a.QuestionID)
			}
			return fmt.Errorf("scoredb.IncrementStats: question %d: %w", a.QuestionID, err)
		}
	}
	return nil
}

func (r *Impl) ListHistory(ctx context.Context, db bun.IDB, userID int64, since *time.Time) ([]Score, error) {
	db = r.resolveDB(db)
	var scores []Score
	query := db.NewSelect().
		Model(&scores).
		Where("s.user_id = ?", userID)
	if since != nil {
		query = query.Where("s.created_at >= ?", since.UTC())
	}
	if err := query.OrderExpr("s.created_at DESC, s.id DESC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("scoredb.ListHistory: %w", err)
	}
	return scores, nil
}

func (r *Impl) GetStats(ctx context.Context, db bun.IDB, userID int64) ([]QuestionStat, error) {
	db = r.resolveDB(db)
	var stats []QuestionStat
	err := db.NewSelect().
		Model(&stats).
		Where("uqs.user_id = ?", userID).
		OrderExpr("uqs.question_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("scoredb.GetStats: %w", err)
	}
	return stats, nil
}
