package model

type Event struct {
	ID                 string `json:"id"`
	Handle             string `json:"handle"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	CoverURL           string `json:"cover_url"`
	Status             string `json:"status"`
	CreatedBy          string `json:"created_by"`
	StartTime          string `json:"start_time"`
	EndTime            string `json:"end_time"`
	VotingEnabled      bool   `json:"voting_enabled"`
	VotingStartTime    string `json:"voting_start_time"`
	VotingEndTime      string `json:"voting_end_time"`
	AllowMultipleVotes bool   `json:"allow_multiple_votes"`
}

type CreateEventRequest struct {
	Handle             string `json:"handle"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	CoverURL           string `json:"cover_url"`
	StartTime          string `json:"start_time"`
	EndTime            string `json:"end_time"`
	VotingEnabled      bool   `json:"voting_enabled"`
	VotingStartTime    string `json:"voting_start_time"`
	VotingEndTime      string `json:"voting_end_time"`
	AllowMultipleVotes bool   `json:"allow_multiple_votes"`
}

type CreateEventResponse struct {
	ID     string `json:"id"`
	Handle string `json:"handle"`
}

type UpdateEventRequest struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	CoverURL           string `json:"cover_url"`
	StartTime          string `json:"start_time"`
	EndTime            string `json:"end_time"`
	VotingEnabled      bool   `json:"voting_enabled"`
	VotingStartTime    string `json:"voting_start_time"`
	VotingEndTime      string `json:"voting_end_time"`
	AllowMultipleVotes bool   `json:"allow_multiple_votes"`
}

type UpdateEventResponse struct{}

type ReviewEventRequest struct {
	ID     string `json:"id"`
	Action string `json:"action"` // approve or reject
}

type ReviewEventResponse struct{}

type GetEventRequest struct {
	ID     string `json:"id"`
	Handle string `json:"handle"`
}

type GetEventResponse struct {
	Event      Event      `json:"event"`
	Categories []Category `json:"categories"`
}

type GetEventsRequest struct {
	Status    string `json:"status"`
	CreatedBy string `json:"created_by"`
	Offset    int    `json:"offset"`
	Limit     int    `json:"limit"`
}

type GetEventsResponse struct {
	Events []Event `json:"events"`
}
