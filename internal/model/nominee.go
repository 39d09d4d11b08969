package model

type Nominee struct {
	ID         string `json:"id"`
	CategoryID string `json:"category_id"`
	EventID    string `json:"event_id"`
	Name       string `json:"name"`
	ImageURL   string `json:"image_url"`
	Position   int    `json:"position"`
	VoteCount  int64  `json:"vote_count"`
	IsWinner   bool   `json:"is_winner"`
}

type CreateNomineeRequest struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	ImageURL   string `json:"image_url"`
}

type CreateNomineeResponse struct {
	ID string `json:"id"`
}

type UpdateNomineeRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

type UpdateNomineeResponse struct{}

type DeleteNomineeRequest struct {
	ID string `json:"id"`
}

type DeleteNomineeResponse struct{}

type GetNomineesRequest struct {
	CategoryID string `json:"category_id"`
}

type GetNomineesResponse struct {
	Nominees []Nominee `json:"nominees"`
}
