package domain

import (
	"testing"

	"github.com/eventara/backend/internal/model"
	"github.com/eventara/backend/internal/repository"
	"github.com/eventara/backend/pkg/errorx"
	"github.com/eventara/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newCategoryDomain() CategoryDomain {
	return NewCategoryDomain(
		repository.NewCategoryRepository(),
		repository.NewNomineeRepository(),
		repository.NewEventRepository(),
		repository.NewBallotRepository(),
		repository.NewCollaboratorRepository(),
		repository.NewUserRepository(),
	)
}

func Test_categoryDomain_Create(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newCategoryDomain()

	// The owner creates a category at the next position.
	ownerCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)
	resp, err := d.Create(ownerCtx, &model.CreateCategoryRequest{
		EventID: testutil.Event1.ID,
		Name:    "Best Actor",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)

	category, err := repository.NewCategoryRepository().GetByID(ctx, resp.ID)
	require.NoError(t, err)
	require.Equal(t, 2, category.Position)

	// A non-collaborator cannot create categories.
	otherCtx := testutil.MockContextWithUserID(ctx, testutil.User2.ID)
	_, err = d.Create(otherCtx, &model.CreateCategoryRequest{
		EventID: testutil.Event1.ID,
		Name:    "Best Actress",
	})
	require.Error(t, err)
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, uint64(errorx.PermissionDenied), errx.Code)

	// A global admin always can.
	adminCtx := testutil.MockContextWithUserID(ctx, testutil.Admin.ID)
	_, err = d.Create(adminCtx, &model.CreateCategoryRequest{
		EventID: testutil.Event1.ID,
		Name:    "Best Actress",
	})
	require.NoError(t, err)

	// Unknown event.
	_, err = d.Create(ownerCtx, &model.CreateCategoryRequest{
		EventID: "invalid-event",
		Name:    "Best Song",
	})
	require.Error(t, err)
	require.Equal(t, "Not found event", err.Error())
}

func Test_categoryDomain_DeleteByID(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newCategoryDomain()
	ownerCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)

	// A category with a recorded ballot cannot be deleted.
	ballotDomain := newBallotDomain(&testutil.MockLeaderboard{}, &testutil.MockPublisher{})
	voterCtx := testutil.MockContextWithUserID(ctx, testutil.User2.ID)
	_, err := ballotDomain.Vote(voterCtx, &model.VoteRequest{
		EventID:    testutil.Event1.ID,
		CategoryID: testutil.Category1.ID,
		NomineeID:  testutil.Nominee1.ID,
	})
	require.NoError(t, err)

	_, err = d.DeleteByID(ownerCtx, &model.DeleteCategoryRequest{ID: testutil.Category1.ID})
	require.Error(t, err)
	require.Equal(t, "Cannot delete a category with recorded ballots", err.Error())

	// An empty category can.
	_, err = d.DeleteByID(ownerCtx, &model.DeleteCategoryRequest{ID: testutil.Category2.ID})
	require.NoError(t, err)

	_, err = repository.NewCategoryRepository().GetByID(ctx, testutil.Category2.ID)
	require.Error(t, err)
}

func Test_categoryDomain_SetWinner(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newCategoryDomain()
	nomineeRepo := repository.NewNomineeRepository()
	ownerCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)

	// The owner crowns Nominee1.
	_, err := d.SetWinner(ownerCtx, &model.SetWinnerRequest{
		CategoryID: testutil.Category1.ID,
		NomineeID:  testutil.Nominee1.ID,
	})
	require.NoError(t, err)

	nominee1, err := nomineeRepo.GetByID(ctx, testutil.Nominee1.ID)
	require.NoError(t, err)
	require.True(t, nominee1.IsWinner)

	// Crowning Nominee2 replaces the previous winner.
	_, err = d.SetWinner(ownerCtx, &model.SetWinnerRequest{
		CategoryID: testutil.Category1.ID,
		NomineeID:  testutil.Nominee2.ID,
	})
	require.NoError(t, err)

	nominee1, err = nomineeRepo.GetByID(ctx, testutil.Nominee1.ID)
	require.NoError(t, err)
	require.False(t, nominee1.IsWinner)

	nominee2, err := nomineeRepo.GetByID(ctx, testutil.Nominee2.ID)
	require.NoError(t, err)
	require.True(t, nominee2.IsWinner)

	// A nominee of another category cannot win this one.
	_, err = d.SetWinner(ownerCtx, &model.SetWinnerRequest{
		CategoryID: testutil.Category1.ID,
		NomineeID:  testutil.Nominee3.ID,
	})
	require.Error(t, err)
	require.Equal(t, "Nominee does not belong to the category", err.Error())

	// Only the owner can crown.
	otherCtx := testutil.MockContextWithUserID(ctx, testutil.User2.ID)
	_, err = d.SetWinner(otherCtx, &model.SetWinnerRequest{
		CategoryID: testutil.Category1.ID,
		NomineeID:  testutil.Nominee1.ID,
	})
	require.Error(t, err)
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, uint64(errorx.PermissionDenied), errx.Code)
}
