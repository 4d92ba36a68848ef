package dashboard

import "jample-admin/internal/backend"

func mapToMemberStats(s backend.MemberStats) MemberStatsResponse {
	return MemberStatsResponse{
		TotalApprovedMembers: s.TotalApprovedMembers,
		SubscribingMembers:   s.SubscribingMembers,
		SubscriptionRate:     s.SubscriptionRate,
	}
}

func mapToJamUsage(months int, u backend.MonthlyJamUsage) JamUsageResponse {
	rows := make([]MonthlyUsageResponse, len(u.MonthlyUsage))
	for i, m := range u.MonthlyUsage {
		rows[i] = MonthlyUsageResponse{
			YearMonth:           m.YearMonth,
			TotalUsage:          m.TotalUsage,
			ActiveEmployeeCount: m.ActiveEmployeeCount,
			AverageUsage:        m.AverageUsage,
		}
	}
	return JamUsageResponse{
		Months:              months,
		MonthlyUsage:        rows,
		OverallAverageUsage: u.OverallAverageUsage,
		TotalUsage:          u.TotalUsage,
	}
}

func mapToReviews(days int, r backend.RecentReviews) ReviewsResponse {
	rows := make([]ReviewResponse, len(r.Reviews))
	for i, rv := range r.Reviews {
		rows[i] = ReviewResponse{
			Review:       rv.Review,
			Rating:       rv.Rating,
			ProviderName: rv.ProviderName,
			CreatedAt:    rv.CreatedAt,
		}
	}
	return ReviewsResponse{
		Days:          days,
		Reviews:       rows,
		TotalCount:    r.TotalCount,
		AverageRating: r.AverageRating,
	}
}
