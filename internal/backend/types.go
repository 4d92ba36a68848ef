package backend

// Session carries the caller identity into every backend call. The company
// id and token are explicit arguments; nothing is read from ambient state.
type Session struct {
	CompanyID int64
	UserID    string
	Token     string
}

type User struct {
	UserID    string `json:"userId"`
	CompanyID int64  `json:"companyId"`
}

type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type JamInfo struct {
	TotalJams   int64 `json:"totalJams"`
	BalanceJams int64 `json:"balanceJams"`
}

type MembershipInfo struct {
	StartDate string `json:"startDate"`
}

type EmployeeGroupRef struct {
	GroupID   int64  `json:"groupId"`
	GroupName string `json:"groupName"`
}

type Employee struct {
	ID             string            `json:"id"`
	EmployeeNumber string            `json:"employeeNumber"`
	Name           string            `json:"name"`
	PhoneNumber    string            `json:"phoneNumber"`
	Email          string            `json:"email"`
	JoinDate       string            `json:"joinDate"`
	LeaveDate      *string           `json:"leaveDate"`
	Status         string            `json:"status"`
	JamInfo        JamInfo           `json:"jamInfo"`
	MembershipInfo *MembershipInfo   `json:"membershipInfo"`
	Group          *EmployeeGroupRef `json:"group"`
}

type EmployeeList struct {
	Employees  []Employee `json:"employees"`
	TotalCount int        `json:"totalCount"`
}

const ApproverTypeAdmin = "ADMIN"

type UpdateEmployeeStatusInput struct {
	CompanyID       int64   `json:"companyId"`
	EmployeeID      string  `json:"employeeId"`
	Action          string  `json:"action"`
	ApproverType    string  `json:"approverType"`
	ApproverID      string  `json:"approverId"`
	LeaveDate       *string `json:"leaveDate,omitempty"`
	EmployeeGroupID *int64  `json:"employeeGroupId,omitempty"`
	RejectionReason *string `json:"rejectionReason,omitempty"`
}

type UpdateEmployeeStatusResult struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	EmployeeID string `json:"employeeId"`
}

type Credit struct {
	B2bCreditID     int64  `json:"b2bCreditId"`
	Name            string `json:"name"`
	Note            string `json:"note,omitempty"`
	TotalCredits    int64  `json:"totalCredits"`
	Balance         int64  `json:"balance"`
	ExpiryDate      string `json:"expiryDate"`
	CreatedAt       string `json:"createdAt"`
	IsExpired       bool   `json:"isExpired"`
	DaysUntilExpiry int    `json:"daysUntilExpiry"`
}

type ExpiringSoonCredit struct {
	Amount          int64  `json:"amount"`
	ExpiryDate      string `json:"expiryDate"`
	DaysUntilExpiry int    `json:"daysUntilExpiry"`
}

type CreditSummary struct {
	TotalCharged int64               `json:"totalCharged"`
	TotalBalance int64               `json:"totalBalance"`
	UsageRate    float64             `json:"usageRate"`
	ExpiringSoon *ExpiringSoonCredit `json:"expiringSoon,omitempty"`
	Credits      []Credit            `json:"credits"`
}

type AllocateCreditsInput struct {
	CompanyID          int64    `json:"companyId"`
	UserIDs            []string `json:"userIds"`
	CreditsPerUser     int64    `json:"creditsPerUser"`
	ExpireDate         string   `json:"expireDate"`
	RolloverPercentage *int     `json:"rolloverPercentage,omitempty"`
	Description        string   `json:"description"`
}

type AllocationResult struct {
	UserID  string  `json:"userId"`
	Success bool    `json:"success"`
	Error   *string `json:"error,omitempty"`
}

type AllocateCreditsResult struct {
	Success      bool               `json:"success"`
	SuccessCount int                `json:"successCount"`
	FailedCount  int                `json:"failedCount"`
	Results      []AllocationResult `json:"results"`
}

type EmployeeGroup struct {
	EmployeeGroupID    int64  `json:"employeeGroupId"`
	CompanyID          int64  `json:"companyId,omitempty"`
	Name               string `json:"name"`
	IsActive           bool   `json:"isActive"`
	Credits            int64  `json:"credits"`
	RenewDate          int    `json:"renewDate"`
	RolloverPercentage int    `json:"rolloverPercentage"`
	RenewalPeriodType  string `json:"renewalPeriodType,omitempty"`
	CreatedAt          string `json:"createdAt,omitempty"`
	UpdatedAt          string `json:"updatedAt,omitempty"`
	EmployeeCount      int    `json:"employeeCount"`
}

type CreateEmployeeGroupInput struct {
	CompanyID          int64   `json:"companyId"`
	Name               string  `json:"name"`
	Credits            int64   `json:"credits"`
	RenewDate          int     `json:"renewDate"`
	RolloverPercentage int     `json:"rolloverPercentage"`
	RenewalPeriodType  *string `json:"renewalPeriodType,omitempty"`
}

type UpdateEmployeeGroupInput struct {
	EmployeeGroupID    int64   `json:"employeeGroupId"`
	CompanyID          int64   `json:"companyId"`
	Name               *string `json:"name,omitempty"`
	Credits            *int64  `json:"credits,omitempty"`
	RenewDate          *int    `json:"renewDate,omitempty"`
	RolloverPercentage *int    `json:"rolloverPercentage,omitempty"`
	IsActive           *bool   `json:"isActive,omitempty"`
}

type MemberStats struct {
	TotalApprovedMembers int     `json:"totalApprovedMembers"`
	SubscribingMembers   int     `json:"subscribingMembers"`
	SubscriptionRate     float64 `json:"subscriptionRate"`
}

type MonthlyUsage struct {
	YearMonth           string  `json:"yearMonth"`
	TotalUsage          int64   `json:"totalUsage"`
	ActiveEmployeeCount int     `json:"activeEmployeeCount"`
	AverageUsage        float64 `json:"averageUsage"`
}

type MonthlyJamUsage struct {
	MonthlyUsage        []MonthlyUsage `json:"monthlyUsage"`
	OverallAverageUsage float64        `json:"overallAverageUsage"`
	TotalUsage          int64          `json:"totalUsage"`
}

type Review struct {
	Review       string  `json:"review"`
	Rating       float64 `json:"rating"`
	ProviderName string  `json:"providerName"`
	CreatedAt    string  `json:"createdAt"`
}

type RecentReviews struct {
	Reviews       []Review `json:"reviews"`
	TotalCount    int      `json:"totalCount"`
	AverageRating float64  `json:"averageRating"`
}
