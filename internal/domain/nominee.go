package domain

import (
	"context"
	"errors"

	"github.com/eventara/backend/internal/common"
	"github.com/eventara/backend/internal/domain/statistic"
	"github.com/eventara/backend/internal/entity"
	"github.com/eventara/backend/internal/model"
	"github.com/eventara/backend/internal/repository"
	"github.com/eventara/backend/pkg/errorx"
	"github.com/eventara/backend/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NomineeDomain interface {
	Create(context.Context, *model.CreateNomineeRequest) (*model.CreateNomineeResponse, error)
	UpdateByID(context.Context, *model.UpdateNomineeRequest) (*model.UpdateNomineeResponse, error)
	DeleteByID(context.Context, *model.DeleteNomineeRequest) (*model.DeleteNomineeResponse, error)
	GetList(context.Context, *model.GetNomineesRequest) (*model.GetNomineesResponse, error)
}

type nomineeDomain struct {
	nomineeRepo       repository.NomineeRepository
	categoryRepo      repository.CategoryRepository
	ballotRepo        repository.BallotRepository
	leaderboard       statistic.Leaderboard
	eventRoleVerifier *common.EventRoleVerifier
}

func NewNomineeDomain(
	nomineeRepo repository.NomineeRepository,
	categoryRepo repository.CategoryRepository,
	ballotRepo repository.BallotRepository,
	collaboratorRepo repository.CollaboratorRepository,
	userRepo repository.UserRepository,
	leaderboard statistic.Leaderboard,
) NomineeDomain {
	return &nomineeDomain{
		nomineeRepo:       nomineeRepo,
		categoryRepo:      categoryRepo,
		ballotRepo:        ballotRepo,
		leaderboard:       leaderboard,
		eventRoleVerifier: common.NewEventRoleVerifier(collaboratorRepo, userRepo),
	}
}

func (d *nomineeDomain) Create(
	ctx context.Context, req *model.CreateNomineeRequest,
) (*model.CreateNomineeResponse, error) {
	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty nominee name")
	}

	category, err := d.categoryRepo.GetByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found category")
		}

		xcontext.Logger(ctx).Errorf("Cannot get category: %v", err)
		return nil, errorx.Unknown
	}

	err = d.eventRoleVerifier.Verify(ctx, category.EventID, entity.Owner, entity.Editor)
	if err != nil {
		return nil, errorx.New(errorx.PermissionDenied, "Only owner or editor can create nominee")
	}

	lastPosition, err := d.nomineeRepo.GetLastPosition(ctx, category.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get last position: %v", err)
		return nil, errorx.Unknown
	}

	nominee := &entity.Nominee{
		Base:       entity.Base{ID: uuid.NewString()},
		CategoryID: category.ID,
		EventID:    category.EventID,
		Name:       req.Name,
		ImageURL:   req.ImageURL,
		Position:   lastPosition + 1,
	}

	if err := d.nomineeRepo.Create(ctx, nominee); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create nominee: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateNomineeResponse{ID: nominee.ID}, nil
}

func (d *nomineeDomain) UpdateByID(
	ctx context.Context, req *model.UpdateNomineeRequest,
) (*model.UpdateNomineeResponse, error) {
	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty nominee name")
	}

	nominee, err := d.nomineeRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found nominee")
		}

		xcontext.Logger(ctx).Errorf("Cannot get nominee: %v", err)
		return nil, errorx.Unknown
	}

	err = d.eventRoleVerifier.Verify(ctx, nominee.EventID, entity.Owner, entity.Editor)
	if err != nil {
		return nil, errorx.New(errorx.PermissionDenied, "Only owner or editor can update nominee")
	}

	err = d.nomineeRepo.UpdateByID(ctx, nominee.ID, &entity.Nominee{
		Name:     req.Name,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update nominee: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateNomineeResponse{}, nil
}

func (d *nomineeDomain) DeleteByID(
	ctx context.Context, req *model.DeleteNomineeRequest,
) (*model.DeleteNomineeResponse, error) {
	nominee, err := d.nomineeRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found nominee")
		}

		xcontext.Logger(ctx).Errorf("Cannot get nominee: %v", err)
		return nil, errorx.Unknown
	}

	err = d.eventRoleVerifier.Verify(ctx, nominee.EventID, entity.Owner, entity.Editor)
	if err != nil {
		return nil, errorx.New(errorx.PermissionDenied, "Only owner or editor can delete nominee")
	}

	// Ballots reference the nominee, so a nominee with votes cannot be
	// removed without breaking the audit trail.
	if nominee.VoteCount > 0 {
		return nil, errorx.New(errorx.BadRequest, "Cannot delete a nominee with recorded ballots")
	}

	if err := d.nomineeRepo.DeleteByID(ctx, nominee.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete nominee: %v", err)
		return nil, errorx.Unknown
	}

	// The cached leaderboard still carries the removed nominee with a zero
	// score. Drop it so the next read rebuilds from the remaining nominees.
	if err := d.leaderboard.InvalidateLeaderboard(ctx, nominee.EventID); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot invalidate leaderboard: %v", err)
	}

	return &model.DeleteNomineeResponse{}, nil
}

func (d *nomineeDomain) GetList(
	ctx context.Context, req *model.GetNomineesRequest,
) (*model.GetNomineesResponse, error) {
	nominees, err := d.nomineeRepo.GetList(ctx, req.CategoryID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get nominees: %v", err)
		return nil, errorx.Unknown
	}

	nomineeModels := []model.Nominee{}
	for _, nominee := range nominees {
		nomineeModels = append(nomineeModels, model.ConvertNominee(&nominee))
	}

	return &model.GetNomineesResponse{Nominees: nomineeModels}, nil
}
