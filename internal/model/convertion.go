package model

import (
	"time"

	"github.com/eventara/backend/internal/entity"
)

const DefaultTimeLayout string = time.RFC3339Nano

func ConvertUser(user *entity.User) User {
	if user == nil {
		return User{}
	}

	return User{
		ID:   user.ID,
		Name: user.Name,
		Role: string(user.Role),
	}
}

func ConvertEvent(event *entity.Event) Event {
	if event == nil {
		return Event{}
	}

	return Event{
		ID:                 event.ID,
		Handle:             event.Handle,
		Title:              event.Title,
		Description:        string(event.Description),
		CoverURL:           event.CoverURL,
		Status:             string(event.Status),
		CreatedBy:          event.CreatedBy,
		StartTime:          event.StartTime.Format(DefaultTimeLayout),
		EndTime:            event.EndTime.Format(DefaultTimeLayout),
		VotingEnabled:      event.VotingEnabled,
		VotingStartTime:    event.VotingStartTime.Format(DefaultTimeLayout),
		VotingEndTime:      event.VotingEndTime.Format(DefaultTimeLayout),
		AllowMultipleVotes: event.AllowMultipleVotes,
	}
}

func ConvertCategory(category *entity.Category, nominees []Nominee) Category {
	if category == nil {
		return Category{}
	}

	return Category{
		ID:       category.ID,
		EventID:  category.EventID,
		Name:     category.Name,
		Position: category.Position,
		Nominees: nominees,
	}
}

func ConvertNominee(nominee *entity.Nominee) Nominee {
	if nominee == nil {
		return Nominee{}
	}

	return Nominee{
		ID:         nominee.ID,
		CategoryID: nominee.CategoryID,
		EventID:    nominee.EventID,
		Name:       nominee.Name,
		ImageURL:   nominee.ImageURL,
		Position:   nominee.Position,
		VoteCount:  nominee.VoteCount,
		IsWinner:   nominee.IsWinner,
	}
}

func ConvertBallot(ballot *entity.Ballot) Ballot {
	if ballot == nil {
		return Ballot{}
	}

	return Ballot{
		ID:         ballot.ID,
		UserID:     ballot.UserID,
		EventID:    ballot.EventID,
		CategoryID: ballot.CategoryID,
		NomineeID:  ballot.NomineeID,
		CreatedAt:  ballot.CreatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertCollaborator(collaborator *entity.Collaborator) Collaborator {
	if collaborator == nil {
		return Collaborator{}
	}

	return Collaborator{
		EventID: collaborator.EventID,
		UserID:  collaborator.UserID,
		Role:    string(collaborator.Role),
	}
}
