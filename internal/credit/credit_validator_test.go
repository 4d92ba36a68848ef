package credit_test

import (
	"math"
	"testing"
	"time"

	"jample-admin/internal/backend"
	"jample-admin/internal/credit"

	"github.com/stretchr/testify/assert"
)

var kst = time.FixedZone("KST", 9*60*60)

var today = time.Date(2025, 1, 1, 0, 0, 0, 0, kst)

func date(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, kst)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(s string) *time.Time {
	t := date(s)
	return &t
}

func specBatches() []credit.Batch {
	return []credit.Batch{
		{ID: 2, Name: "2월 크레딧", Balance: 2000, Expiry: date("2025-02-01")},
		{ID: 1, Name: "1월 크레딧", Balance: 500, Expiry: date("2025-01-10")},
	}
}

func TestEligibleBatches(t *testing.T) {
	batches := append(specBatches(),
		credit.Batch{ID: 3, Balance: 900, Expiry: date("2024-12-01"), IsExpired: true},
		credit.Batch{ID: 4, Balance: 0, Expiry: date("2025-01-05")},
	)

	got := credit.EligibleBatches(batches)

	assert.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
	assert.Equal(t, int64(3400), credit.AvailableTotal(batches))
	assert.Equal(t, int64(math.MaxInt64), credit.AvailableTotal([]credit.Batch{{Balance: math.MaxInt64}, {Balance: 1}}))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		batches []credit.Batch
		draft   credit.Draft
		valid   bool
		reason  string
		params  map[string]any
	}{
		{
			name:    "satisfied by earliest batch",
			batches: specBatches(),
			draft:   credit.Draft{CreditsPerPerson: 100, TargetCount: 5, ExpiryDate: datePtr("2025-01-05")},
			valid:   true,
			reason:  "credit.ok",
			params:  map[string]any{"Required": int64(500), "BatchID": int64(1), "BatchName": "1월 크레딧"},
		},
		{
			name:    "date on the ceiling is allowed",
			batches: specBatches(),
			draft:   credit.Draft{CreditsPerPerson: 100, TargetCount: 5, ExpiryDate: datePtr("2025-01-10")},
			valid:   true,
			reason:  "credit.ok",
			params:  map[string]any{"Required": int64(500), "BatchID": int64(1), "BatchName": "1월 크레딧"},
		},
		{
			name:    "expiry past candidate is not routed to another batch",
			batches: specBatches(),
			draft:   credit.Draft{CreditsPerPerson: 100, TargetCount: 5, ExpiryDate: datePtr("2025-01-20")},
			valid:   false,
			reason:  "credit.expiry_exceeds_batch",
			params:  map[string]any{"Ceiling": "2025-01-10", "BatchID": int64(1), "BatchName": "1월 크레딧"},
		},
		{
			name: "batches cannot be combined",
			batches: []credit.Batch{
				{ID: 1, Balance: 2000, Expiry: date("2025-02-01")},
				{ID: 2, Balance: 1500, Expiry: date("2025-03-01")},
			},
			draft:  credit.Draft{CreditsPerPerson: 1000, TargetCount: 3, ExpiryDate: datePtr("2025-01-20")},
			valid:  false,
			reason: "credit.single_batch_only",
			params: map[string]any{"Required": int64(3000)},
		},
		{
			name:    "coarse check runs first",
			batches: specBatches(),
			draft:   credit.Draft{CreditsPerPerson: 1000, TargetCount: 3, ExpiryDate: datePtr("2025-01-20")},
			valid:   false,
			reason:  "credit.insufficient_total",
			params:  map[string]any{"Required": int64(3000), "Available": int64(2500)},
		},
		{
			name:    "overflowing product is insufficient",
			batches: specBatches(),
			draft:   credit.Draft{CreditsPerPerson: 1 << 62, TargetCount: 4, ExpiryDate: datePtr("2025-01-05")},
			valid:   false,
			reason:  "credit.insufficient_total",
			params:  map[string]any{"Required": int64(math.MaxInt64), "Available": int64(2500)},
		},
		{
			name:    "max amount twice",
			batches: specBatches(),
			draft:   credit.Draft{CreditsPerPerson: math.MaxInt64, TargetCount: 2, ExpiryDate: datePtr("2025-01-05")},
			valid:   false,
			reason:  "credit.insufficient_total",
		},
		{
			name:    "only expired balance",
			batches: []credit.Batch{{ID: 9, Balance: 1000, Expiry: date("2024-12-01"), IsExpired: true}},
			draft:   credit.Draft{CreditsPerPerson: 100, TargetCount: 1, ExpiryDate: datePtr("2025-01-05")},
			valid:   false,
			reason:  "credit.no_usable_batch",
		},
		{
			name:    "amount not entered",
			batches: specBatches(),
			draft:   credit.Draft{CreditsPerPerson: 0, TargetCount: 5, ExpiryDate: datePtr("2025-01-05")},
			valid:   false,
			reason:  "credit.not_entered",
		},
		{
			name:    "date not entered",
			batches: specBatches(),
			draft:   credit.Draft{CreditsPerPerson: 100, TargetCount: 5},
			valid:   false,
			reason:  "credit.not_entered",
		},
		{
			name:    "unparseable date",
			batches: specBatches(),
			draft:   credit.Draft{CreditsPerPerson: 100, TargetCount: 5, DateInvalid: true},
			valid:   false,
			reason:  "credit.invalid_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := credit.Validate(tt.batches, tt.draft)

			assert.Equal(t, tt.valid, v.Valid)
			assert.Equal(t, tt.reason, v.Reason)
			if tt.params != nil {
				assert.Equal(t, tt.params, v.Params)
			}
		})
	}
}

func TestQuickPicks(t *testing.T) {
	t.Run("shortcut past latest expiry is disabled", func(t *testing.T) {
		batches := []credit.Batch{
			{ID: 1, Balance: 100, Expiry: date("2025-05-01")},
			{ID: 2, Balance: 100, Expiry: date("2025-06-01")},
			{ID: 3, Balance: 100, Expiry: date("2026-01-01"), IsExpired: true},
		}

		picks := credit.QuickPicks(batches, today)

		assert.Len(t, picks, 4)
		assert.Equal(t, []int{7, 30, 90, 180}, []int{picks[0].Days, picks[1].Days, picks[2].Days, picks[3].Days})
		assert.Equal(t, date("2025-01-08"), picks[0].Date)
		assert.True(t, picks[0].Enabled)
		assert.True(t, picks[1].Enabled)
		assert.True(t, picks[2].Enabled)
		assert.False(t, picks[3].Enabled)
	})

	t.Run("nothing eligible disables all", func(t *testing.T) {
		picks := credit.QuickPicks([]credit.Batch{{Balance: 0, Expiry: date("2030-01-01")}}, today)
		for _, p := range picks {
			assert.False(t, p.Enabled)
		}
	})
}

func TestAssess(t *testing.T) {
	t.Run("open gate", func(t *testing.T) {
		a := credit.Assess(specBatches(), credit.Draft{CreditsPerPerson: 100, TargetCount: 5, ExpiryDate: datePtr("2025-01-05")}, today)

		assert.True(t, a.CanSubmit)
		assert.Equal(t, int64(500), a.TotalRequired)
		assert.Equal(t, int64(2500), a.AvailableTotal)
		assert.Equal(t, int64(1), a.Candidate.ID)
		assert.NoError(t, a.Gate().Err())
	})

	t.Run("no targets", func(t *testing.T) {
		a := credit.Assess(specBatches(), credit.Draft{CreditsPerPerson: 100, TargetCount: 0, ExpiryDate: datePtr("2025-01-05")}, today)

		assert.False(t, a.CanSubmit)
		assert.Equal(t, "credit.no_targets", a.Gate().Reason)
	})

	t.Run("coarse insufficiency closes the gate", func(t *testing.T) {
		a := credit.Assess(specBatches(), credit.Draft{CreditsPerPerson: 1000, TargetCount: 3, ExpiryDate: datePtr("2025-01-05")}, today)

		assert.True(t, a.CoarseInsufficient)
		assert.False(t, a.CanSubmit)
		assert.Nil(t, a.Candidate)
	})

	t.Run("overflowing total never opens the gate", func(t *testing.T) {
		a := credit.Assess(specBatches(), credit.Draft{CreditsPerPerson: 1 << 62, TargetCount: 4, ExpiryDate: datePtr("2025-01-05")}, today)

		assert.Equal(t, int64(math.MaxInt64), a.TotalRequired)
		assert.True(t, a.CoarseInsufficient)
		assert.False(t, a.CanSubmit)
		assert.Nil(t, a.Candidate)
		assert.Equal(t, "credit.insufficient_total", a.Gate().Reason)
	})

	t.Run("repeatable", func(t *testing.T) {
		d := credit.Draft{CreditsPerPerson: 100, TargetCount: 5, ExpiryDate: datePtr("2025-01-20")}
		assert.Equal(t, credit.Assess(specBatches(), d, today), credit.Assess(specBatches(), d, today))
	})
}

func TestBatchesFromSummary(t *testing.T) {
	sum := backend.CreditSummary{Credits: []backend.Credit{
		{B2bCreditID: 1, Name: "A", Balance: 10, ExpiryDate: "2025-03-31"},
		{B2bCreditID: 2, Name: "B", Balance: 20, ExpiryDate: "2025-04-30T14:59:59.000Z"},
	}}

	batches, err := credit.BatchesFromSummary(sum, kst)

	assert.NoError(t, err)
	assert.Equal(t, date("2025-03-31"), batches[0].Expiry)
	assert.Equal(t, date("2025-04-30"), batches[1].Expiry)

	_, err = credit.BatchesFromSummary(backend.CreditSummary{Credits: []backend.Credit{{ExpiryDate: "soon"}}}, kst)
	assert.Error(t, err)
}

func TestClassifyOutcome(t *testing.T) {
	errMsg := "잔액 부족"

	partial := credit.ClassifyOutcome(backend.AllocateCreditsResult{
		Success: true, SuccessCount: 3, FailedCount: 2,
		Results: []backend.AllocationResult{
			{UserID: "u1", Success: true}, {UserID: "u2", Success: true}, {UserID: "u3", Success: true},
			{UserID: "u4", Success: false, Error: &errMsg}, {UserID: "u5", Success: false},
		},
	})
	assert.Equal(t, credit.OutcomePartial, partial.Kind)
	assert.Equal(t, []credit.Failure{{UserID: "u4", Error: "잔액 부족"}, {UserID: "u5"}}, partial.Failures)

	all := credit.ClassifyOutcome(backend.AllocateCreditsResult{Success: true, SuccessCount: 5})
	assert.Equal(t, credit.OutcomeAllSucceeded, all.Kind)
	assert.Empty(t, all.Failures)

	none := credit.ClassifyOutcome(backend.AllocateCreditsResult{Success: false, FailedCount: 5})
	assert.Equal(t, credit.OutcomeAllFailed, none.Kind)
	assert.Equal(t, 5, none.FailedCount)
}
