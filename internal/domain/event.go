package domain

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/eventara/backend/internal/common"
	"github.com/eventara/backend/internal/entity"
	"github.com/eventara/backend/internal/model"
	"github.com/eventara/backend/internal/repository"
	"github.com/eventara/backend/pkg/crypto"
	"github.com/eventara/backend/pkg/enum"
	"github.com/eventara/backend/pkg/errorx"
	"github.com/eventara/backend/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventDomain interface {
	Create(context.Context, *model.CreateEventRequest) (*model.CreateEventResponse, error)
	UpdateByID(context.Context, *model.UpdateEventRequest) (*model.UpdateEventResponse, error)
	Review(context.Context, *model.ReviewEventRequest) (*model.ReviewEventResponse, error)
	Get(context.Context, *model.GetEventRequest) (*model.GetEventResponse, error)
	GetList(context.Context, *model.GetEventsRequest) (*model.GetEventsResponse, error)
}

type eventDomain struct {
	eventRepo          repository.EventRepository
	categoryRepo       repository.CategoryRepository
	nomineeRepo        repository.NomineeRepository
	collaboratorRepo   repository.CollaboratorRepository
	userRepo           repository.UserRepository
	eventRoleVerifier  *common.EventRoleVerifier
	globalRoleVerifier *common.GlobalRoleVerifier
}

func NewEventDomain(
	eventRepo repository.EventRepository,
	categoryRepo repository.CategoryRepository,
	nomineeRepo repository.NomineeRepository,
	collaboratorRepo repository.CollaboratorRepository,
	userRepo repository.UserRepository,
) EventDomain {
	return &eventDomain{
		eventRepo:          eventRepo,
		categoryRepo:       categoryRepo,
		nomineeRepo:        nomineeRepo,
		collaboratorRepo:   collaboratorRepo,
		userRepo:           userRepo,
		eventRoleVerifier:  common.NewEventRoleVerifier(collaboratorRepo, userRepo),
		globalRoleVerifier: common.NewGlobalRoleVerifier(userRepo),
	}
}

func (d *eventDomain) Create(
	ctx context.Context, req *model.CreateEventRequest,
) (*model.CreateEventResponse, error) {
	if err := checkEventTitle(req.Title); err != nil {
		return nil, err
	}

	if req.Handle != "" {
		if err := checkEventHandle(ctx, req.Handle); err != nil {
			return nil, err
		}

		_, err := d.eventRepo.GetByHandle(ctx, req.Handle)
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot get event by handle: %v", err)
				return nil, errorx.Unknown
			}

			return nil, errorx.New(errorx.AlreadyExists, "Duplicated handle")
		}
	} else {
		originHandle := generateEventHandle(req.Title)
		handle := originHandle
		power := 2
		for {
			if checkEventHandle(ctx, handle) == nil {
				_, err := d.eventRepo.GetByHandle(ctx, handle)
				if errors.Is(err, gorm.ErrRecordNotFound) {
					break
				} else if err != nil {
					xcontext.Logger(ctx).Errorf("Cannot get event by handle: %v", err)
					return nil, errorx.Unknown
				}
			}

			// If the handle existed, we will append a random suffix to the
			// origin handle.
			suffix := crypto.RandIntn(int(math.Pow10(power)))
			handle = fmt.Sprintf("%s_%s", originHandle, strconv.Itoa(suffix))
			power++
			continue
		}

		req.Handle = handle
	}

	startTime, err := parseRequestTime("start time", req.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := parseRequestTime("end time", req.EndTime)
	if err != nil {
		return nil, err
	}

	votingStartTime, err := parseRequestTime("voting start time", req.VotingStartTime)
	if err != nil {
		return nil, err
	}

	votingEndTime, err := parseRequestTime("voting end time", req.VotingEndTime)
	if err != nil {
		return nil, err
	}

	if req.VotingEnabled && !votingEndTime.After(votingStartTime) {
		return nil, errorx.New(errorx.BadRequest, "Voting end time must be after voting start time")
	}

	userID := xcontext.RequestUserID(ctx)
	event := &entity.Event{
		Base:               entity.Base{ID: uuid.NewString()},
		CreatedBy:          userID,
		Handle:             req.Handle,
		Title:              req.Title,
		Description:        []byte(req.Description),
		CoverURL:           req.CoverURL,
		Status:             entity.EventPending,
		StartTime:          startTime,
		EndTime:            endTime,
		VotingEnabled:      req.VotingEnabled,
		VotingStartTime:    votingStartTime,
		VotingEndTime:      votingEndTime,
		AllowMultipleVotes: req.AllowMultipleVotes,
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.eventRepo.Create(ctx, event); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create event: %v", err)
		return nil, errorx.Unknown
	}

	err = d.collaboratorRepo.Upsert(ctx, &entity.Collaborator{
		EventID:   event.ID,
		UserID:    userID,
		Role:      entity.Owner,
		CreatedBy: userID,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot assign role owner: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.CreateEventResponse{ID: event.ID, Handle: event.Handle}, nil
}

func (d *eventDomain) UpdateByID(
	ctx context.Context, req *model.UpdateEventRequest,
) (*model.UpdateEventResponse, error) {
	event, err := d.eventRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found event")
		}

		xcontext.Logger(ctx).Errorf("Cannot get event: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.eventRoleVerifier.Verify(ctx, event.ID, entity.Owner, entity.Editor); err != nil {
		return nil, errorx.New(errorx.PermissionDenied, "Only owner or editor can update event")
	}

	if err := checkEventTitle(req.Title); err != nil {
		return nil, err
	}

	startTime, err := parseRequestTime("start time", req.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := parseRequestTime("end time", req.EndTime)
	if err != nil {
		return nil, err
	}

	votingStartTime, err := parseRequestTime("voting start time", req.VotingStartTime)
	if err != nil {
		return nil, err
	}

	votingEndTime, err := parseRequestTime("voting end time", req.VotingEndTime)
	if err != nil {
		return nil, err
	}

	if req.VotingEnabled && !votingEndTime.After(votingStartTime) {
		return nil, errorx.New(errorx.BadRequest, "Voting end time must be after voting start time")
	}

	err = d.eventRepo.UpdateByID(ctx, event.ID, &entity.Event{
		Title:              req.Title,
		Description:        []byte(req.Description),
		CoverURL:           req.CoverURL,
		StartTime:          startTime,
		EndTime:            endTime,
		VotingEnabled:      req.VotingEnabled,
		VotingStartTime:    votingStartTime,
		VotingEndTime:      votingEndTime,
		AllowMultipleVotes: req.AllowMultipleVotes,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update event: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateEventResponse{}, nil
}

func (d *eventDomain) Review(
	ctx context.Context, req *model.ReviewEventRequest,
) (*model.ReviewEventResponse, error) {
	if err := d.globalRoleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	event, err := d.eventRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found event")
		}

		xcontext.Logger(ctx).Errorf("Cannot get event: %v", err)
		return nil, errorx.Unknown
	}

	if event.Status != entity.EventPending {
		return nil, errorx.New(errorx.BadRequest, "Event has been reviewed before")
	}

	var status entity.EventStatusType
	switch req.Action {
	case "approve":
		status = entity.EventApproved
	case "reject":
		status = entity.EventRejected
	default:
		return nil, errorx.New(errorx.BadRequest, "Invalid action %s", req.Action)
	}

	if err := d.eventRepo.UpdateStatusByID(ctx, event.ID, status); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update event status: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ReviewEventResponse{}, nil
}

func (d *eventDomain) Get(
	ctx context.Context, req *model.GetEventRequest,
) (*model.GetEventResponse, error) {
	if req.ID == "" && req.Handle == "" {
		return nil, errorx.New(errorx.BadRequest, "Need id or handle")
	}

	var event *entity.Event
	var err error
	if req.ID != "" {
		event, err = d.eventRepo.GetByID(ctx, req.ID)
	} else {
		event, err = d.eventRepo.GetByHandle(ctx, req.Handle)
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found event")
		}

		xcontext.Logger(ctx).Errorf("Cannot get event: %v", err)
		return nil, errorx.Unknown
	}

	categories, err := d.categoryRepo.GetList(ctx, event.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get categories: %v", err)
		return nil, errorx.Unknown
	}

	nominees, err := d.nomineeRepo.GetListByEventID(ctx, event.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get nominees: %v", err)
		return nil, errorx.Unknown
	}

	nomineesByCategory := map[string][]model.Nominee{}
	for _, nominee := range nominees {
		nomineesByCategory[nominee.CategoryID] = append(
			nomineesByCategory[nominee.CategoryID], model.ConvertNominee(&nominee))
	}

	categoryModels := []model.Category{}
	for _, category := range categories {
		categoryModels = append(categoryModels,
			model.ConvertCategory(&category, nomineesByCategory[category.ID]))
	}

	return &model.GetEventResponse{
		Event:      model.ConvertEvent(event),
		Categories: categoryModels,
	}, nil
}

func (d *eventDomain) GetList(
	ctx context.Context, req *model.GetEventsRequest,
) (*model.GetEventsResponse, error) {
	if err := checkPaginationLimit(ctx, &req.Limit); err != nil {
		return nil, err
	}

	filter := repository.GetListEventFilter{
		CreatedBy: req.CreatedBy,
		Offset:    req.Offset,
		Limit:     req.Limit,
	}

	if req.Status != "" {
		status, err := enum.ToEnum[entity.EventStatusType](req.Status)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid status %s", req.Status)
		}

		filter.Status = []entity.EventStatusType{status}
	} else {
		// Anonymous listing only shows approved events. Pending and
		// rejected events need an explicit status filter, which is
		// restricted to the creator and admins below.
		filter.Status = []entity.EventStatusType{entity.EventApproved}
	}

	if len(filter.Status) > 0 && filter.Status[0] != entity.EventApproved {
		// Creators can always see their own unreviewed events on the
		// organizer dashboard.
		if req.CreatedBy == "" || req.CreatedBy != xcontext.RequestUserID(ctx) {
			if err := d.globalRoleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
				return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
			}
		}
	}

	events, err := d.eventRepo.GetList(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get event list: %v", err)
		return nil, errorx.Unknown
	}

	eventModels := []model.Event{}
	for _, event := range events {
		eventModels = append(eventModels, model.ConvertEvent(&event))
	}

	return &model.GetEventsResponse{Events: eventModels}, nil
}
