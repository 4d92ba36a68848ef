package audit

import (
	"encoding/json"
	"time"
)

type ListQuery struct {
	Kind  string `form:"kind" binding:"omitempty,oneof=EMPLOYEE_STATUS_CHANGED CREDITS_ALLOCATED"`
	Page  int    `form:"page" binding:"omitempty,min=1"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

type EntryResponse struct {
	ID         string          `json:"id"`
	Kind       string          `json:"kind"`
	SubjectID  string          `json:"subject_id,omitempty"`
	ActorID    string          `json:"actor_id"`
	RequestID  string          `json:"request_id,omitempty"`
	Summary    string          `json:"summary"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}
