package events

import "time"

const EmployeeStatusTopic = "jample.employee.status.v1"

const EventEmployeeStatusChanged = "employee_status_changed"

type EmployeeStatusChangedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	CompanyID      int64     `json:"company_id"`
	EmployeeID     string    `json:"employee_id"`
	ActorID        string    `json:"actor_id"`
	PreviousStatus string    `json:"previous_status"`
	Status         string    `json:"status"`
	Action         string    `json:"action"`
	LeaveDate      string    `json:"leave_date,omitempty"`
	GroupID        *int64    `json:"group_id,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}
