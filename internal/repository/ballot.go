package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/eventara/backend/internal/entity"
	"github.com/eventara/backend/pkg/xcontext"
)

// ErrBallotExists is returned by Create when another ballot of the same
// user and category already exists, including the case of losing a race
// against a concurrent insert.
var ErrBallotExists = errors.New("ballot already exists")

type GetListBallotFilter struct {
	EventID    string
	CategoryID string
	UserID     string
	Offset     int
	Limit      int
}

type NomineeVoteCount struct {
	NomineeID string
	Count     int64
}

type BallotRepository interface {
	Create(ctx context.Context, ballot *entity.Ballot) error
	Get(ctx context.Context, userID, categoryID string) (*entity.Ballot, error)
	GetList(ctx context.Context, filter GetListBallotFilter) ([]entity.Ballot, error)
	Count(ctx context.Context, categoryID string) (int64, error)
	CountByNominee(ctx context.Context, categoryID string) ([]NomineeVoteCount, error)
}

type ballotRepository struct{}

func NewBallotRepository() BallotRepository {
	return &ballotRepository{}
}

func (r *ballotRepository) Create(ctx context.Context, ballot *entity.Ballot) error {
	if err := xcontext.DB(ctx).Create(ballot).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrBallotExists
		}

		return err
	}

	return nil
}

// isUniqueViolation matches the duplicate-key errors of the supported
// drivers (mysql in production, sqlite in tests).
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

func (r *ballotRepository) Get(ctx context.Context, userID, categoryID string) (*entity.Ballot, error) {
	var result entity.Ballot
	err := xcontext.DB(ctx).
		Take(&result, "user_id=? AND category_id=?", userID, categoryID).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *ballotRepository) GetList(ctx context.Context, filter GetListBallotFilter) ([]entity.Ballot, error) {
	result := []entity.Ballot{}
	tx := xcontext.DB(ctx).
		Offset(filter.Offset).
		Limit(filter.Limit).
		Order("id ASC")

	if filter.EventID != "" {
		tx = tx.Where("event_id=?", filter.EventID)
	}

	if filter.CategoryID != "" {
		tx = tx.Where("category_id=?", filter.CategoryID)
	}

	if filter.UserID != "" {
		tx = tx.Where("user_id=?", filter.UserID)
	}

	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *ballotRepository) Count(ctx context.Context, categoryID string) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).
		Model(&entity.Ballot{}).
		Where("category_id=?", categoryID).
		Count(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}

func (r *ballotRepository) CountByNominee(ctx context.Context, categoryID string) ([]NomineeVoteCount, error) {
	result := []NomineeVoteCount{}
	err := xcontext.DB(ctx).
		Model(&entity.Ballot{}).
		Select("nominee_id, COUNT(*) as count").
		Where("category_id=?", categoryID).
		Group("nominee_id").
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
