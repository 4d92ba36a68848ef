package credit

import (
	"math"
	"time"

	"jample-admin/internal/shared/dateutil"
	"jample-admin/internal/shared/verdict"
)

// QuickPickDays are the expiry shortcuts offered next to the date field.
var QuickPickDays = []int{7, 30, 90, 180}

// Draft is the allocation form as typed so far. ExpiryDate is nil while
// the date is empty; DateInvalid marks text that did not parse.
type Draft struct {
	CreditsPerPerson int64
	TargetCount      int
	ExpiryDate       *time.Time
	DateInvalid      bool
}

// TotalRequired is the amount one batch must cover. A product that does
// not fit in int64 saturates at math.MaxInt64, which no balance covers.
func (d Draft) TotalRequired() int64 {
	if d.CreditsPerPerson <= 0 || d.TargetCount <= 0 {
		return 0
	}
	if d.CreditsPerPerson > math.MaxInt64/int64(d.TargetCount) {
		return math.MaxInt64
	}
	return d.CreditsPerPerson * int64(d.TargetCount)
}

func (d Draft) entered() bool {
	return d.CreditsPerPerson > 0 && (d.ExpiryDate != nil || d.DateInvalid)
}

type QuickPick struct {
	Days    int
	Date    time.Time
	Enabled bool
}

type Assessment struct {
	AvailableTotal     int64
	TotalRequired      int64
	CoarseInsufficient bool
	Verdict            verdict.Verdict
	Candidate          *Batch
	QuickPicks         []QuickPick
	CanSubmit          bool
}

// Candidate is the earliest-expiring eligible batch that alone covers
// total, or nil.
func Candidate(eligible []Batch, total int64) *Batch {
	for i := range eligible {
		if eligible[i].Balance >= total {
			b := eligible[i]
			return &b
		}
	}
	return nil
}

// Validate decides whether the draft can be funded from one batch.
func Validate(batches []Batch, d Draft) verdict.Verdict {
	if !d.entered() {
		return verdict.Reject("credit.not_entered")
	}
	if d.DateInvalid {
		return verdict.Reject("credit.invalid_date")
	}

	required := d.TotalRequired()
	available := AvailableTotal(batches)
	if required > available {
		return verdict.Reject("credit.insufficient_total", map[string]any{
			"Required":  required,
			"Available": available,
		})
	}

	eligible := EligibleBatches(batches)
	if len(eligible) == 0 {
		return verdict.Reject("credit.no_usable_batch")
	}

	candidate := Candidate(eligible, required)
	if candidate == nil {
		return verdict.Reject("credit.single_batch_only", map[string]any{"Required": required})
	}
	if dateutil.CompareDays(*d.ExpiryDate, candidate.Expiry) > 0 {
		return verdict.Reject("credit.expiry_exceeds_batch", map[string]any{
			"Ceiling":   candidate.Expiry.Format(dateutil.ISODate),
			"BatchID":   candidate.ID,
			"BatchName": candidate.Name,
		})
	}
	return verdict.OK("credit.ok", map[string]any{
		"Required":  required,
		"BatchID":   candidate.ID,
		"BatchName": candidate.Name,
	})
}

// QuickPicks returns the shortcut dates. A shortcut past the latest
// eligible expiry is disabled; with no eligible batch all are disabled.
func QuickPicks(batches []Batch, today time.Time) []QuickPick {
	eligible := EligibleBatches(batches)
	picks := make([]QuickPick, len(QuickPickDays))
	for i, days := range QuickPickDays {
		date := dateutil.AddDays(today, days)
		enabled := len(eligible) > 0 &&
			dateutil.CompareDays(date, eligible[len(eligible)-1].Expiry) <= 0
		picks[i] = QuickPick{Days: days, Date: date, Enabled: enabled}
	}
	return picks
}

func Assess(batches []Batch, d Draft, today time.Time) Assessment {
	a := Assessment{
		AvailableTotal: AvailableTotal(batches),
		TotalRequired:  d.TotalRequired(),
		Verdict:        Validate(batches, d),
		QuickPicks:     QuickPicks(batches, today),
	}
	a.CoarseInsufficient = a.TotalRequired > a.AvailableTotal
	if a.Verdict.Valid {
		a.Candidate = Candidate(EligibleBatches(batches), a.TotalRequired)
	}
	a.CanSubmit = d.TargetCount > 0 &&
		d.CreditsPerPerson > 0 &&
		!a.CoarseInsufficient &&
		d.ExpiryDate != nil &&
		a.Verdict.Valid
	return a
}

// Gate explains why submission is closed.
func (a Assessment) Gate() verdict.Verdict {
	if a.CanSubmit {
		return a.Verdict
	}
	if a.Verdict.Valid {
		return verdict.Reject("credit.no_targets")
	}
	return a.Verdict
}
