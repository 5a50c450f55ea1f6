package leaderboard

import "context"

type Repository interface {
	Add(ctx context.Context, e Entry) error
	// Top returns up to limit entries of one score type, best first.
	Top(ctx context.Context, t ScoreType, limit int) ([]Entry, error)
}
