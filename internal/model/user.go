package model

type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

type GetUserRequest struct{}

type GetUserResponse User
