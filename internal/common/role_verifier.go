package common

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventara/backend/internal/entity"
	"github.com/eventara/backend/internal/repository"
	"github.com/eventara/backend/pkg/xcontext"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type GlobalRoleVerifier struct {
	userRepo repository.UserRepository
}

func NewGlobalRoleVerifier(userRepo repository.UserRepository) *GlobalRoleVerifier {
	return &GlobalRoleVerifier{userRepo: userRepo}
}

func (verifier *GlobalRoleVerifier) Verify(ctx context.Context, requiredRoles ...entity.GlobalRole) error {
	userID := xcontext.RequestUserID(ctx)
	u, err := verifier.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("user is not valid")
	}

	if !slices.Contains(requiredRoles, u.Role) {
		return errors.New("user role does not have permission")
	}

	return nil
}

// EventRoleVerifier checks the caller's collaborator role on an event.
// Global admins pass every check.
type EventRoleVerifier struct {
	collaboratorRepo repository.CollaboratorRepository
	userRepo         repository.UserRepository
}

func NewEventRoleVerifier(
	collaboratorRepo repository.CollaboratorRepository,
	userRepo repository.UserRepository,
) *EventRoleVerifier {
	return &EventRoleVerifier{
		collaboratorRepo: collaboratorRepo,
		userRepo:         userRepo,
	}
}

func (verifier *EventRoleVerifier) Verify(
	ctx context.Context,
	eventID string,
	requiredRoles ...entity.CollaboratorRole,
) error {
	userID := xcontext.RequestUserID(ctx)
	u, err := verifier.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("user is not valid")
	}

	if slices.Contains(entity.GlobalAdminRoles, u.Role) {
		return nil
	}

	collaborator, err := verifier.collaboratorRepo.Get(ctx, eventID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("user does not have permission")
		}

		return err
	}

	if !slices.Contains(requiredRoles, collaborator.Role) {
		return errors.New("user role does not have permission")
	}

	return nil
}
