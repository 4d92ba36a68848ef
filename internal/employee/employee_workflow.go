package employee

import (
	"time"

	"jample-admin/internal/backend"
	"jample-admin/internal/shared/dateutil"
	"jample-admin/internal/shared/verdict"
)

// StatusChange is one draft from the status form. Dates are already parsed
// into the company time zone.
type StatusChange struct {
	Current           Status
	Requested         Status
	LeaveDate         *time.Time
	RecordedLeaveDate *time.Time
	GroupID           *int64
	RejectionReason   string
}

type Evaluation struct {
	Transition      verdict.Verdict
	LeaveDate       verdict.Verdict
	Changed         bool
	CanSave         bool
	EffectiveStatus Status
	Action          Action
	GroupID         *int64
}

// ValidateLeaveDate applies the leave-date policy for the chosen target.
func ValidateLeaveDate(current, target Status, date *time.Time, today time.Time) verdict.Verdict {
	if !RequiresLeaveDate(target) {
		return verdict.OK("leave_date.not_required")
	}
	if date == nil {
		return verdict.Reject("leave_date.required")
	}

	if current == StatusLeaving && target == StatusLeaving {
		return verdict.OK("leave_date.reschedule_ok")
	}

	cmp := dateutil.CompareDays(*date, today)
	if target == StatusLeaving {
		if cmp > 0 {
			return verdict.OK("leave_date.scheduled_ok")
		}
		return verdict.Reject("leave_date.future_only")
	}
	if cmp <= 0 {
		return verdict.OK("leave_date.left_ok")
	}
	return verdict.Reject("leave_date.past_or_today_only")
}

// ResolveAction maps a requested status to the effective status and the
// backend action. A LEAVING employee re-dated to today or earlier is
// promoted to LEFT.
func ResolveAction(current, requested Status, date *time.Time, today time.Time) (Status, Action) {
	if current == StatusLeaving && requested == StatusLeaving && date != nil {
		if dateutil.CompareDays(*date, today) <= 0 {
			return StatusLeft, ActionLeave
		}
		return StatusLeaving, ActionScheduleLeave
	}

	switch requested {
	case StatusActive:
		return requested, ActionApprove
	case StatusRejected:
		return requested, ActionReject
	case StatusLeaving:
		return requested, ActionScheduleLeave
	case StatusLeft:
		return requested, ActionLeave
	default:
		return requested, ActionApprove
	}
}

func Evaluate(req StatusChange, today time.Time) Evaluation {
	ev := Evaluation{}

	switch {
	case !req.Requested.Known():
		ev.Transition = verdict.Reject("status.unknown", map[string]any{"Status": string(req.Requested)})
	case CanTransition(req.Current, req.Requested):
		ev.Transition = verdict.OK("status.transition_allowed")
	default:
		ev.Transition = verdict.Reject("status.transition_not_allowed", map[string]any{
			"Current":   string(req.Current),
			"Requested": string(req.Requested),
		})
	}

	ev.LeaveDate = ValidateLeaveDate(req.Current, req.Requested, req.LeaveDate, today)

	ev.Changed = req.Requested != req.Current ||
		(isDeparture(req.Current) && !sameDate(req.LeaveDate, req.RecordedLeaveDate))

	ev.CanSave = ev.Changed && ev.Transition.Valid &&
		(!RequiresLeaveDate(req.Requested) || ev.LeaveDate.Valid)

	ev.EffectiveStatus, ev.Action = ResolveAction(req.Current, req.Requested, req.LeaveDate, today)

	if req.Current == StatusPending && req.Requested == StatusActive {
		ev.GroupID = req.GroupID
	}
	return ev
}

// Gate explains a closed save gate with the first failing verdict.
func (ev Evaluation) Gate() verdict.Verdict {
	switch {
	case ev.CanSave:
		return verdict.OK("status.transition_allowed")
	case !ev.Transition.Valid:
		return ev.Transition
	case !ev.Changed:
		return verdict.Reject("status.nothing_to_save")
	default:
		return ev.LeaveDate
	}
}

// BuildMutationInput shapes the backend input. Optional fields are only
// sent with the actions that understand them.
func BuildMutationInput(employeeID, approverID string, ev Evaluation, leaveDate *time.Time, rejectionReason string) backend.UpdateEmployeeStatusInput {
	input := backend.UpdateEmployeeStatusInput{
		EmployeeID:      employeeID,
		Action:          string(ev.Action),
		ApproverType:    backend.ApproverTypeAdmin,
		ApproverID:      approverID,
		EmployeeGroupID: ev.GroupID,
	}

	switch ev.Action {
	case ActionScheduleLeave, ActionLeave:
		if leaveDate != nil {
			d := leaveDate.Format(dateutil.ISODate)
			input.LeaveDate = &d
		}
	case ActionReject:
		if rejectionReason != "" {
			r := rejectionReason
			input.RejectionReason = &r
		}
	}
	if ev.Action != ActionApprove {
		input.EmployeeGroupID = nil
	}
	return input
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return dateutil.SameDay(*a, *b)
}
