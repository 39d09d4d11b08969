package testutil

import (
	"context"

	"github.com/eventara/backend/internal/model"
)

type MockLeaderboard struct {
	GetLeaderboardFunc func(
		ctx context.Context, eventID string, offset, limit int,
	) ([]model.LeaderboardEntry, error)

	ChangeVoteLeaderboardFunc func(
		ctx context.Context, value int64, eventID, nomineeID string,
	) error

	InvalidateLeaderboardFunc func(ctx context.Context, eventID string) error
}

func (m *MockLeaderboard) GetLeaderboard(
	ctx context.Context, eventID string, offset, limit int,
) ([]model.LeaderboardEntry, error) {
	if m.GetLeaderboardFunc != nil {
		return m.GetLeaderboardFunc(ctx, eventID, offset, limit)
	}

	return nil, nil
}

func (m *MockLeaderboard) ChangeVoteLeaderboard(
	ctx context.Context, value int64, eventID, nomineeID string,
) error {
	if m.ChangeVoteLeaderboardFunc != nil {
		return m.ChangeVoteLeaderboardFunc(ctx, value, eventID, nomineeID)
	}

	return nil
}

func (m *MockLeaderboard) InvalidateLeaderboard(ctx context.Context, eventID string) error {
	if m.InvalidateLeaderboardFunc != nil {
		return m.InvalidateLeaderboardFunc(ctx, eventID)
	}

	return nil
}
