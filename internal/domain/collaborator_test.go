package domain

import (
	"testing"

	"github.com/eventara/backend/internal/entity"
	"github.com/eventara/backend/internal/model"
	"github.com/eventara/backend/internal/repository"
	"github.com/eventara/backend/pkg/errorx"
	"github.com/eventara/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newCollaboratorDomain() CollaboratorDomain {
	return NewCollaboratorDomain(
		repository.NewEventRepository(),
		repository.NewCollaboratorRepository(),
		repository.NewUserRepository(),
	)
}

func Test_collaboratorDomain_Assign(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newCollaboratorDomain()
	ownerCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)

	// The owner assigns User2 as reviewer.
	_, err := d.Assign(ownerCtx, &model.CreateCollaboratorRequest{
		EventID: testutil.Event1.ID,
		UserID:  testutil.User2.ID,
		Role:    "reviewer",
	})
	require.NoError(t, err)

	collaborator, err := repository.NewCollaboratorRepository().Get(
		ctx, testutil.Event1.ID, testutil.User2.ID)
	require.NoError(t, err)
	require.Equal(t, entity.Reviewer, collaborator.Role)

	// Re-assigning upgrades the role in place.
	_, err = d.Assign(ownerCtx, &model.CreateCollaboratorRequest{
		EventID: testutil.Event1.ID,
		UserID:  testutil.User2.ID,
		Role:    "editor",
	})
	require.NoError(t, err)

	collaborator, err = repository.NewCollaboratorRepository().Get(
		ctx, testutil.Event1.ID, testutil.User2.ID)
	require.NoError(t, err)
	require.Equal(t, entity.Editor, collaborator.Role)

	// Nobody can hand out the owner role.
	_, err = d.Assign(ownerCtx, &model.CreateCollaboratorRequest{
		EventID: testutil.Event1.ID,
		UserID:  testutil.User2.ID,
		Role:    "owner",
	})
	require.Error(t, err)
	require.Equal(t, "Cannot set the owner", err.Error())

	// Users cannot assign themselves.
	_, err = d.Assign(ownerCtx, &model.CreateCollaboratorRequest{
		EventID: testutil.Event1.ID,
		UserID:  testutil.User1.ID,
		Role:    "editor",
	})
	require.Error(t, err)
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, uint64(errorx.PermissionDenied), errx.Code)
}

func Test_collaboratorDomain_Delete(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newCollaboratorDomain()
	ownerCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)

	_, err := d.Assign(ownerCtx, &model.CreateCollaboratorRequest{
		EventID: testutil.Event1.ID,
		UserID:  testutil.User2.ID,
		Role:    "reviewer",
	})
	require.NoError(t, err)

	// A non-owner cannot delete collaborators.
	reviewerCtx := testutil.MockContextWithUserID(ctx, testutil.User2.ID)
	_, err = d.Delete(reviewerCtx, &model.DeleteCollaboratorRequest{
		EventID: testutil.Event1.ID,
		UserID:  testutil.User1.ID,
	})
	require.Error(t, err)
	require.Equal(t, "No one can delete the owner", err.Error())

	_, err = d.Delete(ownerCtx, &model.DeleteCollaboratorRequest{
		EventID: testutil.Event1.ID,
		UserID:  testutil.User2.ID,
	})
	require.NoError(t, err)

	_, err = repository.NewCollaboratorRepository().Get(
		ctx, testutil.Event1.ID, testutil.User2.ID)
	require.Error(t, err)
}

func Test_collaboratorDomain_GetList(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newCollaboratorDomain()

	ownerCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)
	resp, err := d.GetList(ownerCtx, &model.GetCollaboratorsRequest{
		EventID: testutil.Event1.ID,
	})
	require.NoError(t, err)
	require.Len(t, resp.Collaborators, 1)
	require.Equal(t, testutil.User1.ID, resp.Collaborators[0].UserID)

	// Outsiders cannot list collaborators.
	otherCtx := testutil.MockContextWithUserID(ctx, testutil.User2.ID)
	_, err = d.GetList(otherCtx, &model.GetCollaboratorsRequest{
		EventID: testutil.Event1.ID,
	})
	require.Error(t, err)
}
