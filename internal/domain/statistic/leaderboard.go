package statistic

import (
	"context"

	"github.com/eventara/backend/internal/model"
	"github.com/eventara/backend/internal/repository"
	"github.com/eventara/backend/pkg/errorx"
	"github.com/eventara/backend/pkg/xcontext"
	"github.com/eventara/backend/pkg/xredis"
	"github.com/redis/go-redis/v9"
)

type Leaderboard interface {
	GetLeaderboard(ctx context.Context, eventID string, offset, limit int) ([]model.LeaderboardEntry, error)
	ChangeVoteLeaderboard(ctx context.Context, value int64, eventID, nomineeID string) error
	InvalidateLeaderboard(ctx context.Context, eventID string) error
}

type leaderboard struct {
	nomineeRepo repository.NomineeRepository
	redisClient xredis.Client
}

func New(
	nomineeRepo repository.NomineeRepository,
	redisClient xredis.Client,
) *leaderboard {
	return &leaderboard{nomineeRepo: nomineeRepo, redisClient: redisClient}
}

func (l *leaderboard) GetLeaderboard(
	ctx context.Context, eventID string, offset, limit int,
) ([]model.LeaderboardEntry, error) {
	key := redisKeyEventLeaderboard(eventID)

	ok, err := l.redisClient.Exist(ctx, key)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call exist redis: %v", err)
		return nil, errorx.Unknown
	}

	// If the key didn't exist in redis, load it from database.
	if !ok {
		if err := l.loadLeaderboardFromDB(ctx, eventID); err != nil {
			return nil, err
		}
	}

	results, err := l.redisClient.ZRevRangeWithScores(ctx, key, offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get revrange redis: %v", err)
		return nil, errorx.Unknown
	}

	entries := []model.LeaderboardEntry{}
	for i, z := range results {
		entries = append(entries, model.LeaderboardEntry{
			NomineeID:   z.Member.(string),
			VoteCount:   int64(z.Score),
			CurrentRank: offset + i + 1,
		})
	}

	return entries, nil
}

// InvalidateLeaderboard drops the sorted set of an event so the next read
// rebuilds it from the nominee counters. Used when the nominee list of the
// event changes.
func (l *leaderboard) InvalidateLeaderboard(ctx context.Context, eventID string) error {
	if err := l.redisClient.Del(ctx, redisKeyEventLeaderboard(eventID)); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot del redis: %v", err)
		return errorx.Unknown
	}

	return nil
}

func (l *leaderboard) ChangeVoteLeaderboard(
	ctx context.Context, value int64, eventID, nomineeID string,
) error {
	key := redisKeyEventLeaderboard(eventID)

	ok, err := l.redisClient.Exist(ctx, key)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call exist redis: %v", err)
		return errorx.Unknown
	}

	// If the key didn't exist in redis, no need to update. It will be
	// reloaded with the correct counts on the next read.
	if !ok {
		return nil
	}

	if err := l.redisClient.ZIncrBy(ctx, key, value, nomineeID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call ZIncrBy redis: %v", err)
	}

	return nil
}

func (l *leaderboard) loadLeaderboardFromDB(ctx context.Context, eventID string) error {
	nominees, err := l.nomineeRepo.GetListByEventID(ctx, eventID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot load nominees from database: %v", err)
		return errorx.Unknown
	}

	key := redisKeyEventLeaderboard(eventID)
	for _, nominee := range nominees {
		err := l.redisClient.ZAdd(ctx, key, redis.Z{
			Member: nominee.ID,
			Score:  float64(nominee.VoteCount),
		})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot zadd redis: %v", err)
			return errorx.Unknown
		}
	}

	return nil
}
