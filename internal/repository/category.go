package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventara/backend/internal/entity"
	"github.com/eventara/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	GetList(ctx context.Context, eventID string) ([]entity.Category, error)
	GetLastPosition(ctx context.Context, eventID string) (int, error)
	UpdateByID(ctx context.Context, id string, data *entity.Category) error
	DeleteByID(ctx context.Context, id string) error
}

type categoryRepository struct{}

func NewCategoryRepository() CategoryRepository {
	return &categoryRepository{}
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return xcontext.DB(ctx).Create(category).Error
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	var result entity.Category
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *categoryRepository) GetList(ctx context.Context, eventID string) ([]entity.Category, error) {
	result := []entity.Category{}
	err := xcontext.DB(ctx).
		Where("event_id=?", eventID).
		Order("position ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *categoryRepository) GetLastPosition(ctx context.Context, eventID string) (int, error) {
	var result int
	err := xcontext.DB(ctx).
		Model(&entity.Category{}).
		Select("position").
		Where("event_id=?", eventID).
		Order("position DESC").
		Take(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return -1, nil
		}

		return 0, err
	}

	return result, nil
}

func (r *categoryRepository) UpdateByID(ctx context.Context, id string, data *entity.Category) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Category{}).
		Where("id=?", id).
		Updates(data)
	if err := tx.Error; err != nil {
		return err
	}

	if tx.RowsAffected == 0 {
		return fmt.Errorf("row affected is empty")
	}

	return nil
}

func (r *categoryRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Delete(&entity.Category{}, "id=?", id).Error
}
