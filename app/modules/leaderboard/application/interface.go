package leaderboardservice

import "context"

// Status says why a Cultivated list is empty, or that it is not.
type Status int

const (
	StatusListed Status = iota
	StatusNoQuestions
	StatusNoMasteredUsers
)

// Cultivated is the ranked list of users at full mastery.
type Cultivated struct {
	Status  Status
	Entries []Entry
}

// Service builds the Cultivated list.
type Service interface {
	Cultivated(ctx context.Context) (Cultivated, error)
}
