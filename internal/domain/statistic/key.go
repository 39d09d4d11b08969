package statistic

import "fmt"

func redisKeyEventLeaderboard(eventID string) string {
	return fmt.Sprintf("%s:votes", eventID)
}
