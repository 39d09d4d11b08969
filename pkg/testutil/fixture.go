package testutil

import (
	"context"
	"time"

	"github.com/eventara/backend/internal/entity"
	"github.com/eventara/backend/internal/repository"
)

var (
	User1 = &entity.User{
		Base: entity.Base{ID: "user1"},
		Name: "user1",
		Role: entity.RoleUser,
	}

	User2 = &entity.User{
		Base: entity.Base{ID: "user2"},
		Name: "user2",
		Role: entity.RoleUser,
	}

	Admin = &entity.User{
		Base: entity.Base{ID: "admin"},
		Name: "admin",
		Role: entity.RoleAdmin,
	}

	// Event1 is approved and its voting window is open.
	Event1 = &entity.Event{
		Base:            entity.Base{ID: "user1_event1"},
		CreatedBy:       "user1",
		Handle:          "awards_2026",
		Title:           "Awards 2026",
		Status:          entity.EventApproved,
		StartTime:       time.Now().Add(-24 * time.Hour),
		EndTime:         time.Now().Add(24 * time.Hour),
		VotingEnabled:   true,
		VotingStartTime: time.Now().Add(-time.Hour),
		VotingEndTime:   time.Now().Add(time.Hour),
	}

	// Event2 is still waiting for an admin review.
	Event2 = &entity.Event{
		Base:      entity.Base{ID: "user2_event1"},
		CreatedBy: "user2",
		Handle:    "indie_awards",
		Title:     "Indie Awards",
		Status:    entity.EventPending,
	}

	Category1 = &entity.Category{
		Base:     entity.Base{ID: "event1_category1"},
		EventID:  "user1_event1",
		Name:     "Best Picture",
		Position: 0,
	}

	Category2 = &entity.Category{
		Base:     entity.Base{ID: "event1_category2"},
		EventID:  "user1_event1",
		Name:     "Best Director",
		Position: 1,
	}

	Nominee1 = &entity.Nominee{
		Base:       entity.Base{ID: "category1_nominee1"},
		CategoryID: "event1_category1",
		EventID:    "user1_event1",
		Name:       "Nominee One",
		Position:   0,
	}

	Nominee2 = &entity.Nominee{
		Base:       entity.Base{ID: "category1_nominee2"},
		CategoryID: "event1_category1",
		EventID:    "user1_event1",
		Name:       "Nominee Two",
		Position:   1,
	}

	Nominee3 = &entity.Nominee{
		Base:       entity.Base{ID: "category2_nominee1"},
		CategoryID: "event1_category2",
		EventID:    "user1_event1",
		Name:       "Nominee Three",
		Position:   0,
	}

	Collaborator1 = &entity.Collaborator{
		EventID:   "user1_event1",
		UserID:    "user1",
		Role:      entity.Owner,
		CreatedBy: "user1",
	}
)

// CreateFixtureDb inserts the sample users, events, categories, and nominees
// into the database of ctx.
func CreateFixtureDb(ctx context.Context) {
	InsertUsers(ctx)
	InsertEvents(ctx)
	InsertCategories(ctx)
	InsertNominees(ctx)
	InsertCollaborators(ctx)
}

func InsertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()
	for _, user := range []*entity.User{User1, User2, Admin} {
		u := *user
		if err := userRepo.Create(ctx, &u); err != nil {
			panic(err)
		}
	}
}

func InsertEvents(ctx context.Context) {
	eventRepo := repository.NewEventRepository()
	for _, event := range []*entity.Event{Event1, Event2} {
		e := *event
		if err := eventRepo.Create(ctx, &e); err != nil {
			panic(err)
		}
	}
}

func InsertCategories(ctx context.Context) {
	categoryRepo := repository.NewCategoryRepository()
	for _, category := range []*entity.Category{Category1, Category2} {
		c := *category
		if err := categoryRepo.Create(ctx, &c); err != nil {
			panic(err)
		}
	}
}

func InsertNominees(ctx context.Context) {
	nomineeRepo := repository.NewNomineeRepository()
	for _, nominee := range []*entity.Nominee{Nominee1, Nominee2, Nominee3} {
		n := *nominee
		if err := nomineeRepo.Create(ctx, &n); err != nil {
			panic(err)
		}
	}
}

func InsertCollaborators(ctx context.Context) {
	collaboratorRepo := repository.NewCollaboratorRepository()
	c := *Collaborator1
	if err := collaboratorRepo.Upsert(ctx, &c); err != nil {
		panic(err)
	}
}
