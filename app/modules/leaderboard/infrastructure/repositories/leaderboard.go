package leaderboarddb

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new leaderboard repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) CountQuestions(ctx context.Context, db bun.IDB) (int, error) {
	db = r.resolveDB(db)
	n, err := db.NewSelect().
		TableExpr("questions AS q").
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("leaderboarddb.CountQuestions: %w", err)
	}
	return n, nil
}

func (r *Impl) MasteredUsers(ctx context.Context, db bun.IDB, required int) ([]int64, error) {
	db = r.resolveDB(db)
	var ids []int64
	err := db.NewSelect().
		TableExpr("user_question_stats AS uqs").
		ColumnExpr("uqs.user_id").
		Where("uqs.times_correct > 0").
		GroupExpr("uqs.user_id").
		Having("COUNT(DISTINCT uqs.question_id) >= ?", required).
		OrderExpr("uqs.user_id ASC").
		Scan(ctx, &ids)
	if err != nil {
		return nil, fmt.Errorf("leaderboarddb.MasteredUsers: %w", err)
	}
	return ids, nil
}

func (r *Impl) BestScores(ctx context.Context, db bun.IDB, userIDs []int64) ([]BestScore, error) {
	if len(userIDs) == 0 {
		return []BestScore{}, nil
	}
	db = r.resolveDB(db)
	var best []BestScore
	err := db.NewSelect().
		TableExpr("scores AS s").
		Join("JOIN users AS u ON u.id = s.user_id").
		DistinctOn("s.user_id").
		ColumnExpr("s.user_id, u.username, u.store_location").
		ColumnExpr("s.score, s.total_questions, s.percentage, s.created_at").
		Where("s.user_id IN (?)", bun.In(userIDs)).
		OrderExpr("s.user_id ASC, s.percentage DESC, s.score DESC, s.created_at ASC, s.id ASC").
		Scan(ctx, &best)
	if err != nil {
		return nil, fmt.Errorf("leaderboarddb.BestScores: %w", err)
	}
	return best, nil
}
