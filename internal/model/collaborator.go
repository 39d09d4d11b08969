package model

type Collaborator struct {
	EventID string `json:"event_id"`
	UserID  string `json:"user_id"`
	Role    string `json:"role"`
}

type CreateCollaboratorRequest struct {
	EventID string `json:"event_id"`
	UserID  string `json:"user_id"`
	Role    string `json:"role"`
}

type CreateCollaboratorResponse struct{}

type DeleteCollaboratorRequest struct {
	EventID string `json:"event_id"`
	UserID  string `json:"user_id"`
}

type DeleteCollaboratorResponse struct{}

type GetCollaboratorsRequest struct {
	EventID string `json:"event_id"`
}

type GetCollaboratorsResponse struct {
	Collaborators []Collaborator `json:"collaborators"`
}
