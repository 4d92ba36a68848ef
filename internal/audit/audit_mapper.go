package audit

import (
	"fmt"
	"strings"
	"time"

	"jample-admin/internal/events"
)

func FromStatusChanged(eventID string, ev events.EmployeeStatusChangedEvent, payload []byte) Entry {
	summary := fmt.Sprintf("%s %s: %s -> %s", ev.Action, ev.EmployeeID, ev.PreviousStatus, ev.Status)
	if ev.LeaveDate != "" {
		summary += " (leave " + ev.LeaveDate + ")"
	}
	return Entry{
		CompanyID:  ev.CompanyID,
		EventID:    eventID,
		Kind:       KindEmployeeStatusChanged,
		SubjectID:  ev.EmployeeID,
		ActorID:    ev.ActorID,
		RequestID:  ev.RequestID,
		Summary:    summary,
		Payload:    payload,
		OccurredAt: occurredAt(ev.OccurredAt),
	}
}

func FromCreditsAllocated(eventID string, ev events.CreditsAllocatedEvent, payload []byte) Entry {
	summary := fmt.Sprintf("%s: %d credits each, %d succeeded, %d failed, expires %s",
		ev.Outcome, ev.CreditsPerUser, ev.SuccessCount, ev.FailedCount, ev.ExpireDate)
	if len(ev.FailedUserIDs) > 0 {
		summary += " [failed: " + strings.Join(ev.FailedUserIDs, ", ") + "]"
	}
	return Entry{
		CompanyID:  ev.CompanyID,
		EventID:    eventID,
		Kind:       KindCreditsAllocated,
		ActorID:    ev.ActorID,
		RequestID:  ev.RequestID,
		Summary:    summary,
		Payload:    payload,
		OccurredAt: occurredAt(ev.OccurredAt),
	}
}

func occurredAt(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}

func toResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:         e.ID.String(),
		Kind:       e.Kind,
		SubjectID:  e.SubjectID,
		ActorID:    e.ActorID,
		RequestID:  e.RequestID,
		Summary:    e.Summary,
		Payload:    e.Payload,
		OccurredAt: e.OccurredAt,
	}
}
