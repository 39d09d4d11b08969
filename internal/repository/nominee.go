package repository

import (
	"context"
	"fmt"

	"github.com/eventara/backend/internal/entity"
	"github.com/eventara/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type NomineeRepository interface {
	Create(ctx context.Context, nominee *entity.Nominee) error
	GetByID(ctx context.Context, id string) (*entity.Nominee, error)
	GetList(ctx context.Context, categoryID string) ([]entity.Nominee, error)
	GetListByEventID(ctx context.Context, eventID string) ([]entity.Nominee, error)
	GetLastPosition(ctx context.Context, categoryID string) (int, error)
	UpdateByID(ctx context.Context, id string, data *entity.Nominee) error
	DeleteByID(ctx context.Context, id string) error

	// IncreaseVoteCount must only be called in the same transaction as the
	// corresponding ballot insert.
	IncreaseVoteCount(ctx context.Context, id string, delta int64) error

	ClearWinner(ctx context.Context, categoryID string) error
	SetWinner(ctx context.Context, id string) error
}

type nomineeRepository struct{}

func NewNomineeRepository() NomineeRepository {
	return &nomineeRepository{}
}

func (r *nomineeRepository) Create(ctx context.Context, nominee *entity.Nominee) error {
	return xcontext.DB(ctx).Create(nominee).Error
}

func (r *nomineeRepository) GetByID(ctx context.Context, id string) (*entity.Nominee, error) {
	var result entity.Nominee
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *nomineeRepository) GetList(ctx context.Context, categoryID string) ([]entity.Nominee, error) {
	result := []entity.Nominee{}
	err := xcontext.DB(ctx).
		Where("category_id=?", categoryID).
		Order("position ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *nomineeRepository) GetListByEventID(ctx context.Context, eventID string) ([]entity.Nominee, error) {
	result := []entity.Nominee{}
	err := xcontext.DB(ctx).
		Where("event_id=?", eventID).
		Order("position ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *nomineeRepository) GetLastPosition(ctx context.Context, categoryID string) (int, error) {
	var result int
	err := xcontext.DB(ctx).
		Model(&entity.Nominee{}).
		Select("position").
		Where("category_id=?", categoryID).
		Order("position DESC").
		Take(&result).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return -1, nil
		}

		return 0, err
	}

	return result, nil
}

func (r *nomineeRepository) UpdateByID(ctx context.Context, id string, data *entity.Nominee) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Nominee{}).
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

func (r *nomineeRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Delete(&entity.Nominee{}, "id=?", id).Error
}

func (r *nomineeRepository) IncreaseVoteCount(ctx context.Context, id string, delta int64) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Nominee{}).
		Where("id=?", id).
		Update("vote_count", gorm.Expr("vote_count+?", delta))
	if err := tx.Error; err != nil {
		return err
	}

	if tx.RowsAffected == 0 {
		return fmt.Errorf("row affected is empty")
	}

	return nil
}

func (r *nomineeRepository) ClearWinner(ctx context.Context, categoryID string) error {
	return xcontext.DB(ctx).
		Model(&entity.Nominee{}).
		Where("category_id=? AND is_winner=?", categoryID, true).
		Update("is_winner", false).Error
}

func (r *nomineeRepository) SetWinner(ctx context.Context, id string) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Nominee{}).
		Where("id=?", id).
		Update("is_winner", true)
	if err := tx.Error; err != nil {
		return err
	}

	if tx.RowsAffected == 0 {
		return fmt.Errorf("row affected is empty")
	}

	return nil
}
