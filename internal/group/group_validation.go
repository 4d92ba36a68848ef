package group

import (
	"strings"

	"jample-admin/internal/shared/verdict"
)

const (
	DefaultRenewDate          = 1
	DefaultRolloverPercentage = 0
)

// Fields is a create or update draft. Nil fields are left untouched.
type Fields struct {
	Name               *string
	Credits            *int64
	RenewDate          *int
	RolloverPercentage *int
}

// Validate reports the first policy violation in f.
func Validate(f Fields) verdict.Verdict {
	if f.Name != nil && strings.TrimSpace(*f.Name) == "" {
		return verdict.Reject("group.name_required")
	}
	if f.Credits != nil && *f.Credits < 0 {
		return verdict.Reject("group.credits_negative")
	}
	if f.RenewDate != nil && (*f.RenewDate < 1 || *f.RenewDate > 31) {
		return verdict.Reject("group.renew_date_range", map[string]any{"Value": *f.RenewDate})
	}
	if f.RolloverPercentage != nil && (*f.RolloverPercentage < 0 || *f.RolloverPercentage > 100) {
		return verdict.Reject("group.rollover_range", map[string]any{"Value": *f.RolloverPercentage})
	}
	return verdict.OK("group.ok")
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}
