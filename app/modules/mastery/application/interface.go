package masteryservice

import "context"

// Service computes a user's mastery of the question bank.
type Service interface {
	Summary(ctx context.Context, userID int64) (Summary, error)
	SubCategoryBreakdown(ctx context.Context, userID int64) ([]SubCategoryMastery, error)
}
