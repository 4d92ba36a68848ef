package employee

import "strings"

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusRejected Status = "REJECTED"
	StatusActive   Status = "ACTIVE"
	StatusLeaving  Status = "LEAVING"
	StatusLeft     Status = "LEFT"
)

var AllStatuses = []Status{StatusPending, StatusRejected, StatusActive, StatusLeaving, StatusLeft}

// Action is the command sent to the backend. It is always derived, never
// picked by the admin.
type Action string

const (
	ActionApprove       Action = "APPROVE"
	ActionReject        Action = "REJECT"
	ActionScheduleLeave Action = "SCHEDULE_LEAVE"
	ActionLeave         Action = "LEAVE"
)

// transitions lists, per current status, every status the admin may pick.
// Staying in place is always included.
var transitions = map[Status][]Status{
	StatusActive:   {StatusActive, StatusLeaving, StatusLeft},
	StatusPending:  {StatusPending, StatusActive, StatusRejected},
	StatusRejected: {StatusRejected, StatusActive},
	StatusLeaving:  {StatusLeaving, StatusLeft},
	StatusLeft:     {StatusLeft},
}

var legacyStatuses = map[string]Status{
	"active":    StatusActive,
	"resigning": StatusLeaving,
	"inactive":  StatusLeft,
}

// ParseStatus normalizes a status from the backend or a request body.
// Unrecognized values come back as-is with ok=false.
func ParseStatus(raw string) (Status, bool) {
	raw = strings.TrimSpace(raw)
	if s, ok := legacyStatuses[raw]; ok {
		return s, true
	}
	s := Status(strings.ToUpper(raw))
	return s, s.Known()
}

func (s Status) Known() bool {
	_, ok := transitions[s]
	return ok
}

// AllowedTargets returns a fresh slice; unknown statuses may move anywhere.
func AllowedTargets(current Status) []Status {
	targets, ok := transitions[current]
	if !ok {
		targets = AllStatuses
	}
	out := make([]Status, len(targets))
	copy(out, targets)
	return out
}

func CanTransition(current, requested Status) bool {
	if !requested.Known() {
		return false
	}
	for _, s := range AllowedTargets(current) {
		if s == requested {
			return true
		}
	}
	return false
}

func RequiresLeaveDate(target Status) bool {
	return target == StatusLeaving || target == StatusLeft
}

func isDeparture(s Status) bool {
	return s == StatusLeaving || s == StatusLeft
}
