// Package verdict is the advisory result shape shared by the workflow
// validators: valid or not, a catalog message id and its template params.
package verdict

import "fmt"

type Verdict struct {
	Valid  bool           `json:"valid"`
	Reason string         `json:"reason"`
	Params map[string]any `json:"params,omitempty"`
}

func OK(reason string, params ...map[string]any) Verdict {
	return Verdict{Valid: true, Reason: reason, Params: first(params)}
}

func Reject(reason string, params ...map[string]any) Verdict {
	return Verdict{Valid: false, Reason: reason, Params: first(params)}
}

// Rejection carries a failed verdict through service error returns.
type Rejection struct {
	Verdict Verdict
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("rejected: %s", r.Verdict.Reason)
}

// Err returns nil for a valid verdict and a *Rejection otherwise.
func (v Verdict) Err() error {
	if v.Valid {
		return nil
	}
	return &Rejection{Verdict: v}
}

func first(params []map[string]any) map[string]any {
	if len(params) == 0 {
		return nil
	}
	return params[0]
}
