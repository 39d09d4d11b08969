package domain

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/eventara/backend/internal/common"
	"github.com/eventara/backend/internal/domain/statistic"
	"github.com/eventara/backend/internal/entity"
	"github.com/eventara/backend/internal/model"
	"github.com/eventara/backend/internal/repository"
	"github.com/eventara/backend/pkg/errorx"
	"github.com/eventara/backend/pkg/pubsub"
	"github.com/eventara/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type BallotDomain interface {
	Vote(context.Context, *model.VoteRequest) (*model.VoteResponse, error)
	GetTally(context.Context, *model.GetTallyRequest) (*model.GetTallyResponse, error)
	GetLeaderboard(context.Context, *model.GetLeaderboardRequest) (*model.GetLeaderboardResponse, error)
	GetMyBallots(context.Context, *model.GetMyBallotsRequest) (*model.GetMyBallotsResponse, error)
	GetList(context.Context, *model.GetBallotsRequest) (*model.GetBallotsResponse, error)
}

type ballotDomain struct {
	ballotRepo        repository.BallotRepository
	eventRepo         repository.EventRepository
	categoryRepo      repository.CategoryRepository
	nomineeRepo       repository.NomineeRepository
	eventRoleVerifier *common.EventRoleVerifier
	leaderboard       statistic.Leaderboard
	publisher         pubsub.Publisher
}

func NewBallotDomain(
	ballotRepo repository.BallotRepository,
	eventRepo repository.EventRepository,
	categoryRepo repository.CategoryRepository,
	nomineeRepo repository.NomineeRepository,
	collaboratorRepo repository.CollaboratorRepository,
	userRepo repository.UserRepository,
	leaderboard statistic.Leaderboard,
	publisher pubsub.Publisher,
) BallotDomain {
	return &ballotDomain{
		ballotRepo:        ballotRepo,
		eventRepo:         eventRepo,
		categoryRepo:      categoryRepo,
		nomineeRepo:       nomineeRepo,
		eventRoleVerifier: common.NewEventRoleVerifier(collaboratorRepo, userRepo),
		leaderboard:       leaderboard,
		publisher:         publisher,
	}
}

// Vote records one ballot of the requesting user. The ballot insert and the
// nominee counter increment happen in the same transaction, and the unique
// index on ballots rejects the second vote of a user in a category even
// under concurrent requests.
func (d *ballotDomain) Vote(
	ctx context.Context, req *model.VoteRequest,
) (*model.VoteResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	event, err := d.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found event")
		}

		xcontext.Logger(ctx).Errorf("Cannot get event: %v", err)
		return nil, errorx.Unknown
	}

	if !event.IsVotingOpenAt(time.Now()) {
		return nil, errorx.New(errorx.Unavailable, "Voting is not open")
	}

	category, err := d.categoryRepo.GetByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found category")
		}

		xcontext.Logger(ctx).Errorf("Cannot get category: %v", err)
		return nil, errorx.Unknown
	}

	if category.EventID != event.ID {
		return nil, errorx.New(errorx.BadRequest, "Category does not belong to the event")
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

	ballot := &entity.Ballot{
		SnowflakeBase: entity.SnowflakeBase{ID: xcontext.SnowFlake(ctx).Generate().Int64()},
		UserID:        userID,
		EventID:       event.ID,
		CategoryID:    category.ID,
		NomineeID:     nominee.ID,
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.ballotRepo.Create(ctx, ballot); err != nil {
		if errors.Is(err, repository.ErrBallotExists) {
			return nil, errorx.New(errorx.AlreadyExists, "You have already voted in this category")
		}

		xcontext.Logger(ctx).Errorf("Cannot create ballot: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.nomineeRepo.IncreaseVoteCount(ctx, nominee.ID, 1); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot increase vote count: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)

	// Everything after the commit is best effort. A failure here never
	// takes back the recorded ballot.
	err = d.leaderboard.ChangeVoteLeaderboard(ctx, 1, event.ID, nominee.ID)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot update the leaderboard: %v", err)
	}

	d.publishBallotRecorded(ctx, ballot)

	common.PromCounters[common.BallotRecordedTotal].
		WithLabelValues(event.ID).Inc()

	return &model.VoteResponse{ID: ballot.ID}, nil
}

func (d *ballotDomain) publishBallotRecorded(ctx context.Context, ballot *entity.Ballot) {
	if d.publisher == nil {
		return
	}

	b, err := json.Marshal(model.BallotRecordedEvent{
		BallotID:   ballot.ID,
		UserID:     ballot.UserID,
		EventID:    ballot.EventID,
		CategoryID: ballot.CategoryID,
		NomineeID:  ballot.NomineeID,
		CreatedAt:  ballot.CreatedAt.Format(model.DefaultTimeLayout),
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot marshal ballot recorded event: %v", err)
		return
	}

	err = d.publisher.Publish(ctx, model.BallotTopic, &pubsub.Pack{
		Key: []byte(ballot.CategoryID),
		Msg: b,
	})
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot publish ballot recorded event: %v", err)
	}
}

func (d *ballotDomain) GetTally(
	ctx context.Context, req *model.GetTallyRequest,
) (*model.GetTallyResponse, error) {
	category, err := d.categoryRepo.GetByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found category")
		}

		xcontext.Logger(ctx).Errorf("Cannot get category: %v", err)
		return nil, errorx.Unknown
	}

	nominees, err := d.nomineeRepo.GetList(ctx, category.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get nominees: %v", err)
		return nil, errorx.Unknown
	}

	var totalVotes int64
	for _, nominee := range nominees {
		totalVotes += nominee.VoteCount
	}

	tally := []model.TallyEntry{}
	for _, nominee := range nominees {
		percentage := float64(0)
		if totalVotes > 0 {
			percentage = math.Round(float64(nominee.VoteCount)*1000/float64(totalVotes)) / 10
		}

		tally = append(tally, model.TallyEntry{
			NomineeID:  nominee.ID,
			Name:       nominee.Name,
			VoteCount:  nominee.VoteCount,
			Percentage: percentage,
			IsWinner:   nominee.IsWinner,
		})
	}

	return &model.GetTallyResponse{TotalVotes: totalVotes, Tally: tally}, nil
}

func (d *ballotDomain) GetLeaderboard(
	ctx context.Context, req *model.GetLeaderboardRequest,
) (*model.GetLeaderboardResponse, error) {
	if req.EventID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty event id")
	}

	if err := checkPaginationLimit(ctx, &req.Limit); err != nil {
		return nil, err
	}

	entries, err := d.leaderboard.GetLeaderboard(ctx, req.EventID, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	return &model.GetLeaderboardResponse{Leaderboard: entries}, nil
}

func (d *ballotDomain) GetMyBallots(
	ctx context.Context, req *model.GetMyBallotsRequest,
) (*model.GetMyBallotsResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	ballots, err := d.ballotRepo.GetList(ctx, repository.GetListBallotFilter{
		EventID: req.EventID,
		UserID:  userID,
		Limit:   -1,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get ballots: %v", err)
		return nil, errorx.Unknown
	}

	ballotModels := []model.Ballot{}
	for _, ballot := range ballots {
		ballotModels = append(ballotModels, model.ConvertBallot(&ballot))
	}

	return &model.GetMyBallotsResponse{Ballots: ballotModels}, nil
}

// GetList exposes the raw ballot audit trail of a category, ordered by the
// time-ordered ballot id. Only event collaborators may read it.
func (d *ballotDomain) GetList(
	ctx context.Context, req *model.GetBallotsRequest,
) (*model.GetBallotsResponse, error) {
	category, err := d.categoryRepo.GetByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found category")
		}

		xcontext.Logger(ctx).Errorf("Cannot get category: %v", err)
		return nil, errorx.Unknown
	}

	err = d.eventRoleVerifier.Verify(
		ctx, category.EventID, entity.Owner, entity.Editor, entity.Reviewer)
	if err != nil {
		return nil, errorx.New(errorx.PermissionDenied, "Only collaborators can view ballots")
	}

	if err := checkPaginationLimit(ctx, &req.Limit); err != nil {
		return nil, err
	}

	ballots, err := d.ballotRepo.GetList(ctx, repository.GetListBallotFilter{
		CategoryID: category.ID,
		Offset:     req.Offset,
		Limit:      req.Limit,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get ballots: %v", err)
		return nil, errorx.Unknown
	}

	ballotModels := []model.Ballot{}
	for _, ballot := range ballots {
		ballotModels = append(ballotModels, model.ConvertBallot(&ballot))
	}

	return &model.GetBallotsResponse{Ballots: ballotModels}, nil
}
