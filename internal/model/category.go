package model

type Category struct {
	ID       string    `json:"id"`
	EventID  string    `json:"event_id"`
	Name     string    `json:"name"`
	Position int       `json:"position"`
	Nominees []Nominee `json:"nominees,omitempty"`
}

type CreateCategoryRequest struct {
	EventID string `json:"event_id"`
	Name    string `json:"name"`
}

type CreateCategoryResponse struct {
	ID string `json:"id"`
}

type UpdateCategoryRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type UpdateCategoryResponse struct{}

type DeleteCategoryRequest struct {
	ID string `json:"id"`
}

type DeleteCategoryResponse struct{}

type GetCategoriesRequest struct {
	EventID string `json:"event_id"`
}

type GetCategoriesResponse struct {
	Categories []Category `json:"categories"`
}

type SetWinnerRequest struct {
	CategoryID string `json:"category_id"`
	NomineeID  string `json:"nominee_id"`
}

type SetWinnerResponse struct{}
