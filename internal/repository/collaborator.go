package repository

import (
	"context"

	"github.com/eventara/backend/internal/entity"
	"github.com/eventara/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type CollaboratorRepository interface {
	Upsert(ctx context.Context, collaborator *entity.Collaborator) error
	Get(ctx context.Context, eventID, userID string) (*entity.Collaborator, error)
	GetListByEventID(ctx context.Context, eventID string) ([]entity.Collaborator, error)
	GetListByUserID(ctx context.Context, userID string) ([]entity.Collaborator, error)
	Delete(ctx context.Context, eventID, userID string) error
}

type collaboratorRepository struct{}

func NewCollaboratorRepository() CollaboratorRepository {
	return &collaboratorRepository{}
}

func (r *collaboratorRepository) Upsert(ctx context.Context, collaborator *entity.Collaborator) error {
	return xcontext.DB(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"role"}),
		}).
		Create(collaborator).Error
}

func (r *collaboratorRepository) Get(ctx context.Context, eventID, userID string) (*entity.Collaborator, error) {
	var result entity.Collaborator
	err := xcontext.DB(ctx).
		Take(&result, "event_id=? AND user_id=?", eventID, userID).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *collaboratorRepository) GetListByEventID(ctx context.Context, eventID string) ([]entity.Collaborator, error) {
	result := []entity.Collaborator{}
	if err := xcontext.DB(ctx).Find(&result, "event_id=?", eventID).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *collaboratorRepository) GetListByUserID(ctx context.Context, userID string) ([]entity.Collaborator, error) {
	result := []entity.Collaborator{}
	if err := xcontext.DB(ctx).Find(&result, "user_id=?", userID).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *collaboratorRepository) Delete(ctx context.Context, eventID, userID string) error {
	return xcontext.DB(ctx).
		Delete(&entity.Collaborator{}, "event_id=? AND user_id=?", eventID, userID).Error
}
