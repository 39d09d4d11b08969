package domain

import (
	"context"
	"errors"

	"github.com/eventara/backend/internal/common"
	"github.com/eventara/backend/internal/entity"
	"github.com/eventara/backend/internal/model"
	"github.com/eventara/backend/internal/repository"
	"github.com/eventara/backend/pkg/enum"
	"github.com/eventara/backend/pkg/errorx"
	"github.com/eventara/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type CollaboratorDomain interface {
	Assign(context.Context, *model.CreateCollaboratorRequest) (*model.CreateCollaboratorResponse, error)
	Delete(context.Context, *model.DeleteCollaboratorRequest) (*model.DeleteCollaboratorResponse, error)
	GetList(context.Context, *model.GetCollaboratorsRequest) (*model.GetCollaboratorsResponse, error)
}

type collaboratorDomain struct {
	eventRepo         repository.EventRepository
	collaboratorRepo  repository.CollaboratorRepository
	userRepo          repository.UserRepository
	eventRoleVerifier *common.EventRoleVerifier
}

func NewCollaboratorDomain(
	eventRepo repository.EventRepository,
	collaboratorRepo repository.CollaboratorRepository,
	userRepo repository.UserRepository,
) CollaboratorDomain {
	return &collaboratorDomain{
		eventRepo:         eventRepo,
		collaboratorRepo:  collaboratorRepo,
		userRepo:          userRepo,
		eventRoleVerifier: common.NewEventRoleVerifier(collaboratorRepo, userRepo),
	}
}

func (d *collaboratorDomain) Assign(
	ctx context.Context, req *model.CreateCollaboratorRequest,
) (*model.CreateCollaboratorResponse, error) {
	// user cannot assign by themselves
	if xcontext.RequestUserID(ctx) == req.UserID {
		return nil, errorx.New(errorx.PermissionDenied, "Can not assign by yourself")
	}

	role, err := enum.ToEnum[entity.CollaboratorRole](req.Role)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Invalid role %s: %v", req.Role, err)
		return nil, errorx.New(errorx.BadRequest, "Invalid role")
	}

	if role == entity.Owner {
		return nil, errorx.New(errorx.PermissionDenied, "Cannot set the owner")
	}

	_, err = d.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found event")
		}

		xcontext.Logger(ctx).Errorf("Cannot get event: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.eventRoleVerifier.Verify(ctx, req.EventID, entity.Owner); err != nil {
		return nil, errorx.New(errorx.PermissionDenied, "Only owner can assign collaborators")
	}

	_, err = d.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	currentCollab, err := d.collaboratorRepo.Get(ctx, req.EventID, req.UserID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get current collaborator of user: %v", err)
		return nil, errorx.Unknown
	}

	if err == nil && currentCollab.Role == entity.Owner {
		return nil, errorx.New(errorx.PermissionDenied, "No one can assign another role to owner")
	}

	collaborator := &entity.Collaborator{
		EventID:   req.EventID,
		UserID:    req.UserID,
		Role:      role,
		CreatedBy: xcontext.RequestUserID(ctx),
	}
	if err := d.collaboratorRepo.Upsert(ctx, collaborator); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create collaborator: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateCollaboratorResponse{}, nil
}

func (d *collaboratorDomain) Delete(
	ctx context.Context, req *model.DeleteCollaboratorRequest,
) (*model.DeleteCollaboratorResponse, error) {
	// user cannot delete by themselves
	if xcontext.RequestUserID(ctx) == req.UserID {
		return nil, errorx.New(errorx.PermissionDenied, "Can not delete by yourself")
	}

	collaborator, err := d.collaboratorRepo.Get(ctx, req.EventID, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found collaborator")
		}

		xcontext.Logger(ctx).Errorf("Cannot get collaborator: %v", err)
		return nil, errorx.Unknown
	}

	if collaborator.Role == entity.Owner {
		return nil, errorx.New(errorx.PermissionDenied, "No one can delete the owner")
	}

	if err := d.eventRoleVerifier.Verify(ctx, req.EventID, entity.Owner); err != nil {
		return nil, errorx.New(errorx.PermissionDenied, "Only owner can delete collaborators")
	}

	if err := d.collaboratorRepo.Delete(ctx, req.EventID, req.UserID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete collaborator: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteCollaboratorResponse{}, nil
}

func (d *collaboratorDomain) GetList(
	ctx context.Context, req *model.GetCollaboratorsRequest,
) (*model.GetCollaboratorsResponse, error) {
	err := d.eventRoleVerifier.Verify(
		ctx, req.EventID, entity.Owner, entity.Editor, entity.Reviewer)
	if err != nil {
		return nil, errorx.New(errorx.PermissionDenied, "Only collaborators can view collaborators")
	}

	collaborators, err := d.collaboratorRepo.GetListByEventID(ctx, req.EventID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get collaborators: %v", err)
		return nil, errorx.Unknown
	}

	collaboratorModels := []model.Collaborator{}
	for _, collaborator := range collaborators {
		collaboratorModels = append(collaboratorModels, model.ConvertCollaborator(&collaborator))
	}

	return &model.GetCollaboratorsResponse{Collaborators: collaboratorModels}, nil
}
