package domain

import (
	"context"
	"errors"

	"github.com/eventara/backend/internal/common"
	"github.com/eventara/backend/internal/entity"
	"github.com/eventara/backend/internal/model"
	"github.com/eventara/backend/internal/repository"
	"github.com/eventara/backend/pkg/errorx"
	"github.com/eventara/backend/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryDomain interface {
	Create(context.Context, *model.CreateCategoryRequest) (*model.CreateCategoryResponse, error)
	UpdateByID(context.Context, *model.UpdateCategoryRequest) (*model.UpdateCategoryResponse, error)
	DeleteByID(context.Context, *model.DeleteCategoryRequest) (*model.DeleteCategoryResponse, error)
	GetList(context.Context, *model.GetCategoriesRequest) (*model.GetCategoriesResponse, error)
	SetWinner(context.Context, *model.SetWinnerRequest) (*model.SetWinnerResponse, error)
}

type categoryDomain struct {
	categoryRepo      repository.CategoryRepository
	nomineeRepo       repository.NomineeRepository
	eventRepo         repository.EventRepository
	ballotRepo        repository.BallotRepository
	eventRoleVerifier *common.EventRoleVerifier
}

func NewCategoryDomain(
	categoryRepo repository.CategoryRepository,
	nomineeRepo repository.NomineeRepository,
	eventRepo repository.EventRepository,
	ballotRepo repository.BallotRepository,
	collaboratorRepo repository.CollaboratorRepository,
	userRepo repository.UserRepository,
) CategoryDomain {
	return &categoryDomain{
		categoryRepo:      categoryRepo,
		nomineeRepo:       nomineeRepo,
		eventRepo:         eventRepo,
		ballotRepo:        ballotRepo,
		eventRoleVerifier: common.NewEventRoleVerifier(collaboratorRepo, userRepo),
	}
}

func (d *categoryDomain) Create(
	ctx context.Context, req *model.CreateCategoryRequest,
) (*model.CreateCategoryResponse, error) {
	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty category name")
	}

	_, err := d.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found event")
		}

		xcontext.Logger(ctx).Errorf("Cannot get event: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.eventRoleVerifier.Verify(ctx, req.EventID, entity.Owner, entity.Editor); err != nil {
		return nil, errorx.New(errorx.PermissionDenied, "Only owner or editor can create category")
	}

	lastPosition, err := d.categoryRepo.GetLastPosition(ctx, req.EventID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get last position: %v", err)
		return nil, errorx.Unknown
	}

	category := &entity.Category{
		Base:     entity.Base{ID: uuid.NewString()},
		EventID:  req.EventID,
		Name:     req.Name,
		Position: lastPosition + 1,
	}

	if err := d.categoryRepo.Create(ctx, category); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create category: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateCategoryResponse{ID: category.ID}, nil
}

func (d *categoryDomain) UpdateByID(
	ctx context.Context, req *model.UpdateCategoryRequest,
) (*model.UpdateCategoryResponse, error) {
	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty category name")
	}

	category, err := d.categoryRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found category")
		}

		xcontext.Logger(ctx).Errorf("Cannot get category: %v", err)
		return nil, errorx.Unknown
	}

	err = d.eventRoleVerifier.Verify(ctx, category.EventID, entity.Owner, entity.Editor)
	if err != nil {
		return nil, errorx.New(errorx.PermissionDenied, "Only owner or editor can update category")
	}

	err = d.categoryRepo.UpdateByID(ctx, category.ID, &entity.Category{Name: req.Name})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update category: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateCategoryResponse{}, nil
}

func (d *categoryDomain) DeleteByID(
	ctx context.Context, req *model.DeleteCategoryRequest,
) (*model.DeleteCategoryResponse, error) {
	category, err := d.categoryRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found category")
		}

		xcontext.Logger(ctx).Errorf("Cannot get category: %v", err)
		return nil, errorx.Unknown
	}

	err = d.eventRoleVerifier.Verify(ctx, category.EventID, entity.Owner, entity.Editor)
	if err != nil {
		return nil, errorx.New(errorx.PermissionDenied, "Only owner or editor can delete category")
	}

	// A category with recorded ballots is part of the audit trail and
	// cannot be removed anymore.
	totalBallots, err := d.ballotRepo.Count(ctx, category.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count ballots: %v", err)
		return nil, errorx.Unknown
	}

	if totalBallots > 0 {
		return nil, errorx.New(errorx.BadRequest, "Cannot delete a category with recorded ballots")
	}

	if err := d.categoryRepo.DeleteByID(ctx, category.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete category: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteCategoryResponse{}, nil
}

func (d *categoryDomain) GetList(
	ctx context.Context, req *model.GetCategoriesRequest,
) (*model.GetCategoriesResponse, error) {
	categories, err := d.categoryRepo.GetList(ctx, req.EventID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get categories: %v", err)
		return nil, errorx.Unknown
	}

	categoryModels := []model.Category{}
	for _, category := range categories {
		categoryModels = append(categoryModels, model.ConvertCategory(&category, nil))
	}

	return &model.GetCategoriesResponse{Categories: categoryModels}, nil
}

// SetWinner crowns a nominee of the category. Crowning again replaces the
// previous winner, so a category never has two winners at once.
func (d *categoryDomain) SetWinner(
	ctx context.Context, req *model.SetWinnerRequest,
) (*model.SetWinnerResponse, error) {
	category, err := d.categoryRepo.GetByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found category")
		}

		xcontext.Logger(ctx).Errorf("Cannot get category: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.eventRoleVerifier.Verify(ctx, category.EventID, entity.Owner); err != nil {
		return nil, errorx.New(errorx.PermissionDenied, "Only owner can set winner")
	}

	nominee, err := d.nomineeRepo.GetByID(ctx, req.NomineeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found nominee")
		}

		xcontext.Logger(ctx).Errorf("Cannot get nominee: %v", err)
		return nil, errorx.Unknown
	}

	if nominee.CategoryID != category.ID {
		return nil, errorx.New(errorx.BadRequest, "Nominee does not belong to the category")
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.nomineeRepo.ClearWinner(ctx, category.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot clear the current winner: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.nomineeRepo.SetWinner(ctx, nominee.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot set the new winner: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.SetWinnerResponse{}, nil
}
