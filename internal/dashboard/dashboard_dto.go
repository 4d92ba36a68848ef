package dashboard

const (
	defaultUsageMonths  = 6
	defaultReviewDays   = 30
	defaultReviewsLimit = 5
)

type UsageQuery struct {
	Months int `form:"months" binding:"omitempty,min=1,max=24"`
}

type ReviewsQuery struct {
	Days  int `form:"days" binding:"omitempty,min=1,max=365"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=50"`
}

type MemberStatsResponse struct {
	TotalApprovedMembers int     `json:"total_approved_members"`
	SubscribingMembers   int     `json:"subscribing_members"`
	SubscriptionRate     float64 `json:"subscription_rate"`
}

type MonthlyUsageResponse struct {
	YearMonth           string  `json:"year_month"`
	TotalUsage          int64   `json:"total_usage"`
	ActiveEmployeeCount int     `json:"active_employee_count"`
	AverageUsage        float64 `json:"average_usage"`
}

type JamUsageResponse struct {
	Months              int                    `json:"months"`
	MonthlyUsage        []MonthlyUsageResponse `json:"monthly_usage"`
	OverallAverageUsage float64                `json:"overall_average_usage"`
	TotalUsage          int64                  `json:"total_usage"`
}

type ReviewResponse struct {
	Review       string  `json:"review"`
	Rating       float64 `json:"rating"`
	ProviderName string  `json:"provider_name"`
	CreatedAt    string  `json:"created_at"`
}

type ReviewsResponse struct {
	Days          int              `json:"days"`
	Reviews       []ReviewResponse `json:"reviews"`
	TotalCount    int              `json:"total_count"`
	AverageRating float64          `json:"average_rating"`
}
