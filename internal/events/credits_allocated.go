package events

import "time"

const CreditAllocationTopic = "jample.credit.allocation.v1"

const EventCreditsAllocated = "credits_allocated"

type CreditsAllocatedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	CompanyID      int64     `json:"company_id"`
	ActorID        string    `json:"actor_id"`
	Outcome        string    `json:"outcome"`
	CreditsPerUser int64     `json:"credits_per_user"`
	ExpireDate     string    `json:"expire_date"`
	SuccessCount   int       `json:"success_count"`
	FailedCount    int       `json:"failed_count"`
	FailedUserIDs  []string  `json:"failed_user_ids,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}
