package credit

import "jample-admin/internal/backend"

type OutcomeKind string

const (
	OutcomeAllSucceeded OutcomeKind = "ALL_SUCCEEDED"
	OutcomePartial      OutcomeKind = "PARTIAL"
	OutcomeAllFailed    OutcomeKind = "ALL_FAILED"
)

type Failure struct {
	UserID string `json:"user_id"`
	Error  string `json:"error"`
}

// Outcome is the tagged result of an allocation mutation.
type Outcome struct {
	Kind         OutcomeKind
	SuccessCount int
	FailedCount  int
	Failures     []Failure
}

// ClassifyOutcome folds the backend per-user results into one of three
// outcomes. Counts reported by the backend win over the result list.
func ClassifyOutcome(res backend.AllocateCreditsResult) Outcome {
	out := Outcome{
		SuccessCount: res.SuccessCount,
		FailedCount:  res.FailedCount,
		Failures:     []Failure{},
	}
	succeeded := 0
	for _, r := range res.Results {
		if r.Success {
			succeeded++
			continue
		}
		msg := ""
		if r.Error != nil {
			msg = *r.Error
		}
		out.Failures = append(out.Failures, Failure{UserID: r.UserID, Error: msg})
	}
	if out.FailedCount < len(out.Failures) {
		out.FailedCount = len(out.Failures)
	}
	if out.SuccessCount < succeeded {
		out.SuccessCount = succeeded
	}

	switch {
	case out.FailedCount == 0 && (out.SuccessCount > 0 || res.Success):
		out.Kind = OutcomeAllSucceeded
	case out.SuccessCount == 0:
		out.Kind = OutcomeAllFailed
	default:
		out.Kind = OutcomePartial
	}
	return out
}

func (o Outcome) messageID() string {
	switch o.Kind {
	case OutcomeAllSucceeded:
		return "credit.outcome.all_succeeded"
	case OutcomePartial:
		return "credit.outcome.partial"
	default:
		return "credit.outcome.all_failed"
	}
}
