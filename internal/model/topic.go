package model

// BallotTopic carries ballot-recorded events for downstream consumers
// (analytics, notifications). Publishing is best effort and never blocks a
// vote from being recorded.
const BallotTopic = "ballots"

type BallotRecordedEvent struct {
	BallotID   int64  `json:"ballot_id"`
	UserID     string `json:"user_id"`
	EventID    string `json:"event_id"`
	CategoryID string `json:"category_id"`
	NomineeID  string `json:"nominee_id"`
	CreatedAt  string `json:"created_at"`
}
