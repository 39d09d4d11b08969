package statistic

import (
	"context"
	"testing"

	"github.com/eventara/backend/internal/model"
	"github.com/eventara/backend/internal/repository"
	"github.com/eventara/backend/pkg/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func Test_leaderboard_GetLeaderboard_loadFromDB(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	nomineeRepo := repository.NewNomineeRepository()

	require.NoError(t, nomineeRepo.IncreaseVoteCount(ctx, testutil.Nominee1.ID, 3))
	require.NoError(t, nomineeRepo.IncreaseVoteCount(ctx, testutil.Nominee2.ID, 1))

	// The redis key does not exist yet, so the sorted set is rebuilt from
	// the nominee counters before reading.
	scores := map[string]float64{}
	redisClient := &testutil.MockRedisClient{
		ExistFunc: func(ctx context.Context, key string) (bool, error) {
			return len(scores) > 0, nil
		},
		ZAddFunc: func(ctx context.Context, key string, z redis.Z) error {
			scores[z.Member.(string)] = z.Score
			return nil
		},
		ZRevRangeWithScoresFunc: func(
			ctx context.Context, key string, offset, limit int,
		) ([]redis.Z, error) {
			return []redis.Z{
				{Member: testutil.Nominee1.ID, Score: scores[testutil.Nominee1.ID]},
				{Member: testutil.Nominee2.ID, Score: scores[testutil.Nominee2.ID]},
			}, nil
		},
	}

	l := New(nomineeRepo, redisClient)
	entries, err := l.GetLeaderboard(ctx, testutil.Event1.ID, 0, 10)
	require.NoError(t, err)
	require.Equal(t, []model.LeaderboardEntry{
		{NomineeID: testutil.Nominee1.ID, VoteCount: 3, CurrentRank: 1},
		{NomineeID: testutil.Nominee2.ID, VoteCount: 1, CurrentRank: 2},
	}, entries)

	// All nominees of the event were loaded, including the unvoted one.
	require.Len(t, scores, 3)
	require.Equal(t, float64(0), scores[testutil.Nominee3.ID])
}

func Test_leaderboard_ChangeVoteLeaderboard(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	keyExists := false
	incremented := 0
	redisClient := &testutil.MockRedisClient{
		ExistFunc: func(ctx context.Context, key string) (bool, error) {
			return keyExists, nil
		},
		ZIncrByFunc: func(ctx context.Context, key string, incr int64, member string) error {
			incremented++
			return nil
		},
	}

	l := New(repository.NewNomineeRepository(), redisClient)

	// A missing key is left alone; it is rebuilt on the next read instead.
	err := l.ChangeVoteLeaderboard(ctx, 1, testutil.Event1.ID, testutil.Nominee1.ID)
	require.NoError(t, err)
	require.Equal(t, 0, incremented)

	keyExists = true
	err = l.ChangeVoteLeaderboard(ctx, 1, testutil.Event1.ID, testutil.Nominee1.ID)
	require.NoError(t, err)
	require.Equal(t, 1, incremented)
}

func Test_leaderboard_InvalidateLeaderboard(t *testing.T) {
	ctx := testutil.MockContext()

	deletedKeys := []string{}
	redisClient := &testutil.MockRedisClient{
		DelFunc: func(ctx context.Context, key ...string) error {
			deletedKeys = append(deletedKeys, key...)
			return nil
		},
	}

	l := New(repository.NewNomineeRepository(), redisClient)
	require.NoError(t, l.InvalidateLeaderboard(ctx, testutil.Event1.ID))
	require.Equal(t, []string{testutil.Event1.ID + ":votes"}, deletedKeys)
}
