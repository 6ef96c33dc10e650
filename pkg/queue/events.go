package queue

import "time"

// Activity event types published by the services. There is no consumer
// in this process; downstream systems subscribe on their own.
const (
	EventUserRegistered   = "user.registered"
	EventSessionCompleted = "session.completed"
	EventRoutineLiked     = "routine.liked"
	EventRoutineUnliked   = "routine.unliked"
)

type Event struct {
	Type      string      `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

type SessionCompletedData struct {
	UserID          string  `json:"user_id"`
	SessionID       string  `json:"session_id"`
	RoutineID       string  `json:"routine_id,omitempty"`
	TotalVolume     float64 `json:"total_volume"`
	TotalSets       int64   `json:"total_sets"`
	DurationMinutes int64   `json:"duration_minutes"`
}

type RoutineLikeData struct {
	UserID    string `json:"user_id"`
	RoutineID string `json:"routine_id"`
}
