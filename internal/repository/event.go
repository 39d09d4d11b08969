package repository

import (
	"context"
	"fmt"

	"github.com/eventara/backend/internal/entity"
	"github.com/eventara/backend/pkg/xcontext"
)

type GetListEventFilter struct {
	Status    []entity.EventStatusType
	CreatedBy string
	Offset    int
	Limit     int
}

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	GetByID(ctx context.Context, id string) (*entity.Event, error)
	GetByHandle(ctx context.Context, handle string) (*entity.Event, error)
	GetList(ctx context.Context, filter GetListEventFilter) ([]entity.Event, error)
	UpdateByID(ctx context.Context, id string, data *entity.Event) error
	UpdateStatusByID(ctx context.Context, id string, status entity.EventStatusType) error
	DeleteByID(ctx context.Context, id string) error
}

type eventRepository struct{}

func NewEventRepository() EventRepository {
	return &eventRepository{}
}

func (r *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	return xcontext.DB(ctx).Create(event).Error
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	var result entity.Event
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *eventRepository) GetByHandle(ctx context.Context, handle string) (*entity.Event, error) {
	var result entity.Event
	if err := xcontext.DB(ctx).Take(&result, "handle=?", handle).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *eventRepository) GetList(ctx context.Context, filter GetListEventFilter) ([]entity.Event, error) {
	result := []entity.Event{}
	tx := xcontext.DB(ctx).
		Offset(filter.Offset).
		Limit(filter.Limit).
		Order("created_at DESC")

	if len(filter.Status) > 0 {
		tx = tx.Where("status IN (?)", filter.Status)
	}

	if filter.CreatedBy != "" {
		tx = tx.Where("created_by=?", filter.CreatedBy)
	}

	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *eventRepository) UpdateByID(ctx context.Context, id string, data *entity.Event) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Event{}).
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

func (r *eventRepository) UpdateStatusByID(
	ctx context.Context, id string, status entity.EventStatusType,
) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Event{}).
		Where("id=?", id).
		Update("status", status)
	if err := tx.Error; err != nil {
		return err
	}

	if tx.RowsAffected == 0 {
		return fmt.Errorf("row affected is empty")
	}

	return nil
}

func (r *eventRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Delete(&entity.Event{}, "id=?", id).Error
}
