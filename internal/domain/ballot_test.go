package domain

import (
	"context"
	"testing"
	"time"

	"github.com/eventara/backend/internal/entity"
	"github.com/eventara/backend/internal/model"
	"github.com/eventara/backend/internal/repository"
	"github.com/eventara/backend/pkg/errorx"
	"github.com/eventara/backend/pkg/pubsub"
	"github.com/eventara/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newBallotDomain(
	leaderboard *testutil.MockLeaderboard, publisher *testutil.MockPublisher,
) BallotDomain {
	return NewBallotDomain(
		repository.NewBallotRepository(),
		repository.NewEventRepository(),
		repository.NewCategoryRepository(),
		repository.NewNomineeRepository(),
		repository.NewCollaboratorRepository(),
		repository.NewUserRepository(),
		leaderboard,
		publisher,
	)
}

func Test_ballotDomain_Vote(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	leaderboardChanges := 0
	publishedTopics := []string{}
	d := newBallotDomain(
		&testutil.MockLeaderboard{
			ChangeVoteLeaderboardFunc: func(context.Context, int64, string, string) error {
				leaderboardChanges++
				return nil
			},
		},
		&testutil.MockPublisher{
			PublishFunc: func(ctx context.Context, topic string, pack *pubsub.Pack) error {
				publishedTopics = append(publishedTopics, topic)
				return nil
			},
		},
	)

	// User2 votes for Nominee1 in the open event.
	authorizedCtx := testutil.MockContextWithUserID(ctx, testutil.User2.ID)
	resp, err := d.Vote(authorizedCtx, &model.VoteRequest{
		EventID:    testutil.Event1.ID,
		CategoryID: testutil.Category1.ID,
		NomineeID:  testutil.Nominee1.ID,
	})
	require.NoError(t, err)
	require.NotZero(t, resp.ID)
	require.Equal(t, 1, leaderboardChanges)
	require.Equal(t, []string{model.BallotTopic}, publishedTopics)

	// The ballot insert and the counter increment are visible together.
	nominee, err := repository.NewNomineeRepository().GetByID(ctx, testutil.Nominee1.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), nominee.VoteCount)

	ballot, err := repository.NewBallotRepository().Get(
		ctx, testutil.User2.ID, testutil.Category1.ID)
	require.NoError(t, err)
	require.Equal(t, resp.ID, ballot.ID)
	require.Equal(t, testutil.Nominee1.ID, ballot.NomineeID)

	// User2 cannot vote twice in the same category, even for another nominee.
	_, err = d.Vote(authorizedCtx, &model.VoteRequest{
		EventID:    testutil.Event1.ID,
		CategoryID: testutil.Category1.ID,
		NomineeID:  testutil.Nominee2.ID,
	})
	require.Error(t, err)
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, uint64(errorx.AlreadyExists), errx.Code)

	// The rejected vote changed nothing.
	nominee, err = repository.NewNomineeRepository().GetByID(ctx, testutil.Nominee2.ID)
	require.NoError(t, err)
	require.Equal(t, int64(0), nominee.VoteCount)
	require.Equal(t, 1, leaderboardChanges)

	// User2 can still vote in another category of the same event.
	_, err = d.Vote(authorizedCtx, &model.VoteRequest{
		EventID:    testutil.Event1.ID,
		CategoryID: testutil.Category2.ID,
		NomineeID:  testutil.Nominee3.ID,
	})
	require.NoError(t, err)
}

func Test_ballotDomain_Vote_eligibility(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newBallotDomain(&testutil.MockLeaderboard{}, &testutil.MockPublisher{})
	authorizedCtx := testutil.MockContextWithUserID(ctx, testutil.User2.ID)

	// Unknown event.
	_, err := d.Vote(authorizedCtx, &model.VoteRequest{
		EventID:    "invalid-event",
		CategoryID: testutil.Category1.ID,
		NomineeID:  testutil.Nominee1.ID,
	})
	require.Error(t, err)
	require.Equal(t, "Not found event", err.Error())

	// Event2 is still pending, so its voting is closed.
	_, err = d.Vote(authorizedCtx, &model.VoteRequest{
		EventID:    testutil.Event2.ID,
		CategoryID: testutil.Category1.ID,
		NomineeID:  testutil.Nominee1.ID,
	})
	require.Error(t, err)
	require.Equal(t, "Voting is not open", err.Error())

	// Nominee of another category.
	_, err = d.Vote(authorizedCtx, &model.VoteRequest{
		EventID:    testutil.Event1.ID,
		CategoryID: testutil.Category1.ID,
		NomineeID:  testutil.Nominee3.ID,
	})
	require.Error(t, err)
	require.Equal(t, "Nominee does not belong to the category", err.Error())
}

func Test_ballotDomain_Vote_votingWindow(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newBallotDomain(&testutil.MockLeaderboard{}, &testutil.MockPublisher{})

	// Close the voting window of Event1.
	err := repository.NewEventRepository().UpdateByID(ctx, testutil.Event1.ID, &entity.Event{
		VotingStartTime: time.Now().Add(-2 * time.Hour),
		VotingEndTime:   time.Now().Add(-time.Hour),
	})
	require.NoError(t, err)

	authorizedCtx := testutil.MockContextWithUserID(ctx, testutil.User2.ID)
	_, err = d.Vote(authorizedCtx, &model.VoteRequest{
		EventID:    testutil.Event1.ID,
		CategoryID: testutil.Category1.ID,
		NomineeID:  testutil.Nominee1.ID,
	})
	require.Error(t, err)
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, uint64(errorx.Unavailable), errx.Code)
}

func Test_ballotDomain_GetTally(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newBallotDomain(&testutil.MockLeaderboard{}, &testutil.MockPublisher{})

	// Three users vote 2-1 between the two nominees of category 1.
	votes := []struct {
		userID    string
		nomineeID string
	}{
		{testutil.User1.ID, testutil.Nominee1.ID},
		{testutil.User2.ID, testutil.Nominee1.ID},
		{testutil.Admin.ID, testutil.Nominee2.ID},
	}
	for _, vote := range votes {
		authorizedCtx := testutil.MockContextWithUserID(ctx, vote.userID)
		_, err := d.Vote(authorizedCtx, &model.VoteRequest{
			EventID:    testutil.Event1.ID,
			CategoryID: testutil.Category1.ID,
			NomineeID:  vote.nomineeID,
		})
		require.NoError(t, err)
	}

	resp, err := d.GetTally(ctx, &model.GetTallyRequest{CategoryID: testutil.Category1.ID})
	require.NoError(t, err)
	require.Equal(t, int64(3), resp.TotalVotes)
	require.Len(t, resp.Tally, 2)
	require.Equal(t, testutil.Nominee1.ID, resp.Tally[0].NomineeID)
	require.Equal(t, int64(2), resp.Tally[0].VoteCount)
	require.Equal(t, 66.7, resp.Tally[0].Percentage)
	require.Equal(t, testutil.Nominee2.ID, resp.Tally[1].NomineeID)
	require.Equal(t, int64(1), resp.Tally[1].VoteCount)
	require.Equal(t, 33.3, resp.Tally[1].Percentage)

	// A category without any ballot reports zero percentages.
	resp, err = d.GetTally(ctx, &model.GetTallyRequest{CategoryID: testutil.Category2.ID})
	require.NoError(t, err)
	require.Equal(t, int64(0), resp.TotalVotes)
	require.Len(t, resp.Tally, 1)
	require.Equal(t, float64(0), resp.Tally[0].Percentage)
}

func Test_ballotDomain_GetMyBallots(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newBallotDomain(&testutil.MockLeaderboard{}, &testutil.MockPublisher{})

	authorizedCtx := testutil.MockContextWithUserID(ctx, testutil.User2.ID)
	for _, vote := range []struct {
		categoryID string
		nomineeID  string
	}{
		{testutil.Category1.ID, testutil.Nominee1.ID},
		{testutil.Category2.ID, testutil.Nominee3.ID},
	} {
		_, err := d.Vote(authorizedCtx, &model.VoteRequest{
			EventID:    testutil.Event1.ID,
			CategoryID: vote.categoryID,
			NomineeID:  vote.nomineeID,
		})
		require.NoError(t, err)
	}

	resp, err := d.GetMyBallots(authorizedCtx, &model.GetMyBallotsRequest{
		EventID: testutil.Event1.ID,
	})
	require.NoError(t, err)
	require.Len(t, resp.Ballots, 2)
	for _, ballot := range resp.Ballots {
		require.Equal(t, testutil.User2.ID, ballot.UserID)
	}

	// Another user voted nothing.
	otherCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)
	resp, err = d.GetMyBallots(otherCtx, &model.GetMyBallotsRequest{
		EventID: testutil.Event1.ID,
	})
	require.NoError(t, err)
	require.Empty(t, resp.Ballots)
}

func Test_ballotDomain_GetList(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newBallotDomain(&testutil.MockLeaderboard{}, &testutil.MockPublisher{})

	voterCtx := testutil.MockContextWithUserID(ctx, testutil.User2.ID)
	_, err := d.Vote(voterCtx, &model.VoteRequest{
		EventID:    testutil.Event1.ID,
		CategoryID: testutil.Category1.ID,
		NomineeID:  testutil.Nominee1.ID,
	})
	require.NoError(t, err)

	// The owner can read the audit trail.
	ownerCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)
	resp, err := d.GetList(ownerCtx, &model.GetBallotsRequest{
		CategoryID: testutil.Category1.ID,
	})
	require.NoError(t, err)
	require.Len(t, resp.Ballots, 1)
	require.Equal(t, testutil.User2.ID, resp.Ballots[0].UserID)

	// A regular voter cannot.
	_, err = d.GetList(voterCtx, &model.GetBallotsRequest{
		CategoryID: testutil.Category1.ID,
	})
	require.Error(t, err)
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, uint64(errorx.PermissionDenied), errx.Code)
}
