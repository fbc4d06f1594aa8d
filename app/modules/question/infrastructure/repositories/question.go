package questiondb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new question repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) GetByID(ctx context.Context, db bun.IDB, id int64) (*Question, error) {
	db = r.resolveDB(db)
	q := new(Question)
	err := db.NewSelect().
		Model(q).
		Where("q.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("questiondb.GetByID: %w", err)
	}
	return q, nil
}

func (r *Impl) Update(ctx context.Context, db bun.IDB, q *Question) error {
	db = r.resolveDB(db)
	q.UpdatedAt = time.Now().UTC()
	res, err := db.NewUpdate().
		Model(q).
		Column("category", "sub_category", "question", "options", "correct_answer", "explanation", "difficulty", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("questiondb.Update: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("questiondb.Update: rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Impl) ListAdmin(ctx context.Context, db bun.IDB, filter AdminFilter) ([]Question, error) {
	db = r.resolveDB(db)
	var questions []Question
	query := db.NewSelect().Model(&questions)

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		query = query.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				WhereOr("q.question ILIKE ?", pattern).
				WhereOr("q.category ILIKE ?", pattern).
				WhereOr("q.correct_answer ILIKE ?", pattern).
				WhereOr("q.explanation ILIKE ?", pattern)
		})
	}
	if category := strings.TrimSpace(filter.Category); category != "" {
		query = query.Where("q.category = ?", category)
	}

	if err := query.OrderExpr("q.id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("questiondb.ListAdmin: %w", err)
	}
	return questions, nil
}

func (r *Impl) ListAll(ctx context.Context, db bun.IDB) ([]Question, error) {
	db = r.resolveDB(db)
	var questions []Question
	if err := db.NewSelect().Model(&questions).OrderExpr("q.id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("questiondb.ListAll: %w", err)
	}
	return questions, nil
}

func (r *Impl) DistinctCategories(ctx context.Context, db bun.IDB) ([]string, error) {
	db = r.resolveDB(db)
	var categories []string
	err := db.NewSelect().
		Model((*Question)(nil)).
		ColumnExpr("DISTINCT q.category").
		Where("q.category IS NOT NULL").
		Where("q.category <> ''").
		OrderExpr("q.category ASC").
		Scan(ctx, &categories)
	if err != nil {
		return nil, fmt.Errorf("questiondb.DistinctCategories: %w", err)
	}
	return categories, nil
}

func (r *Impl) Count(ctx context.Context, db bun.IDB) (int, error) {
	db = r.resolveDB(db)
	n, err := db.NewSelect().Model((*Question)(nil)).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("questiondb.Count: %w", err)
	}
	return n, nil
}

func (r *Impl) InsertMany(ctx context.Context, db bun.IDB, questions []Question) error {
	if len(questions) == 0 {
		return nil
	}
	db = r.resolveDB(db)
	now := time.Now().UTC()
	for i := range questions {
		questions[i].CreatedAt = now
		questions[i].UpdatedAt = now
		if questions[i].Difficulty == "" {
			questions[i].Difficulty = "medium"
		}
	}
	if _, err := db.NewInsert().Model(&questions).Returning("id").Exec(ctx); err != nil {
		return fmt.Errorf("questiondb.InsertMany: %w", err)
	}
	return nil
}

func (r *Impl) SelectRound(ctx context.Context, db bun.IDB, userID int64, limit int) ([]RoundQuestion, error) {
	db = r.resolveDB(db)
	var round []RoundQuestion
	err := db.NewSelect().
		TableExpr("questions AS q").
		ColumnExpr("q.id, q.question, q.options, q.category").
		Join("LEFT JOIN user_question_stats AS s ON s.question_id = q.id AND s.user_id = ?", userID).
		OrderExpr("CASE WHEN s.id IS NULL THEN 0 WHEN s.times_correct = 0 THEN 1 ELSE 2 END").
		OrderExpr("random()").
		Limit(limit).
		Scan(ctx, &round)
	if err != nil {
		return nil, fmt.Errorf("questiondb.SelectRound: %w", err)
	}
	return round, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
