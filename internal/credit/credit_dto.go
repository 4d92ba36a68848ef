package credit

type AllocationRequest struct {
	UserIDs            []string `json:"user_ids" binding:"required,min=1,dive,notblank"`
	CreditsPerUser     int64    `json:"credits_per_user" binding:"gte=0,max=100000000"`
	ExpireDate         string   `json:"expire_date"`
	RolloverPercentage *int     `json:"rollover_percentage" binding:"omitempty,min=0,max=100"`
	Description        string   `json:"description" binding:"max=200"`
}

type BatchResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Note            string `json:"note,omitempty"`
	TotalCredits    int64  `json:"total_credits"`
	Balance         int64  `json:"balance"`
	ExpiryDate      string `json:"expiry_date"`
	CreatedAt       string `json:"created_at"`
	IsExpired       bool   `json:"is_expired"`
	DaysUntilExpiry int    `json:"days_until_expiry"`
	Eligible        bool   `json:"eligible"`
}

type ExpiringSoonResponse struct {
	Amount          int64  `json:"amount"`
	ExpiryDate      string `json:"expiry_date"`
	DaysUntilExpiry int    `json:"days_until_expiry"`
}

type SummaryResponse struct {
	TotalCharged int64                 `json:"total_charged"`
	TotalBalance int64                 `json:"total_balance"`
	UsageRate    float64               `json:"usage_rate"`
	ExpiringSoon *ExpiringSoonResponse `json:"expiring_soon,omitempty"`
	Credits      []BatchResponse       `json:"credits"`
}

type VerdictResponse struct {
	Valid   bool           `json:"valid"`
	Reason  string         `json:"reason"`
	Params  map[string]any `json:"params,omitempty"`
	Message string         `json:"message"`
}

type QuickPickResponse struct {
	Days    int    `json:"days"`
	Date    string `json:"date"`
	Enabled bool   `json:"enabled"`
}

type PreviewResponse struct {
	TargetCount        int                 `json:"target_count"`
	AvailableTotal     int64               `json:"available_total"`
	TotalRequired      int64               `json:"total_required"`
	CoarseInsufficient bool                `json:"coarse_insufficient"`
	Verdict            VerdictResponse     `json:"verdict"`
	CandidateBatchID   *int64              `json:"candidate_batch_id,omitempty"`
	QuickPicks         []QuickPickResponse `json:"quick_picks"`
	CanSubmit          bool                `json:"can_submit"`
}

type AllocationResponse struct {
	Kind         OutcomeKind `json:"kind"`
	SuccessCount int         `json:"success_count"`
	FailedCount  int         `json:"failed_count"`
	Failures     []Failure   `json:"failures"`
	Message      string      `json:"message"`
}
