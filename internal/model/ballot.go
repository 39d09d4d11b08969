package model

type Ballot struct {
	ID         int64  `json:"id"`
	UserID     string `json:"user_id"`
	EventID    string `json:"event_id"`
	CategoryID string `json:"category_id"`
	NomineeID  string `json:"nominee_id"`
	CreatedAt  string `json:"created_at"`
}

type VoteRequest struct {
	EventID    string `json:"event_id"`
	CategoryID string `json:"category_id"`
	NomineeID  string `json:"nominee_id"`
}

type VoteResponse struct {
	ID int64 `json:"id"`
}

type TallyEntry struct {
	NomineeID  string  `json:"nominee_id"`
	Name       string  `json:"name"`
	VoteCount  int64   `json:"vote_count"`
	Percentage float64 `json:"percentage"`
	IsWinner   bool    `json:"is_winner"`
}

type GetTallyRequest struct {
	CategoryID string `json:"category_id"`
}

type GetTallyResponse struct {
	TotalVotes int64        `json:"total_votes"`
	Tally      []TallyEntry `json:"tally"`
}

type LeaderboardEntry struct {
	NomineeID   string `json:"nominee_id"`
	VoteCount   int64  `json:"vote_count"`
	CurrentRank int    `json:"current_rank"`
}

type GetLeaderboardRequest struct {
	EventID string `json:"event_id"`
	Offset  int    `json:"offset"`
	Limit   int    `json:"limit"`
}

type GetLeaderboardResponse struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

type GetMyBallotsRequest struct {
	EventID string `json:"event_id"`
}

type GetMyBallotsResponse struct {
	Ballots []Ballot `json:"ballots"`
}

type GetBallotsRequest struct {
	CategoryID string `json:"category_id"`
	Offset     int    `json:"offset"`
	Limit      int    `json:"limit"`
}

type GetBallotsResponse struct {
	Ballots []Ballot `json:"ballots"`
}
