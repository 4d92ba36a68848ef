package employee

type EmployeeGroupResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type EmployeeResponse struct {
	ID             string                 `json:"id"`
	EmployeeNumber string                 `json:"employee_number"`
	Name           string                 `json:"name"`
	PhoneNumber    string                 `json:"phone_number"`
	Email          string                 `json:"email"`
	JoinDate       string                 `json:"join_date"`
	MembershipFrom string                 `json:"membership_start_date,omitempty"`
	LeaveDate      *string                `json:"leave_date,omitempty"`
	Status         string                 `json:"status"`
	TotalJams      int64                  `json:"total_jams"`
	BalanceJams    int64                  `json:"balance_jams"`
	Group          *EmployeeGroupResponse `json:"group,omitempty"`
}

type ListQuery struct {
	Q        string
	Status   string
	SortBy   string
	SortDir  string
	Page     int
	PageSize int
}

type StatusChangeRequest struct {
	Status          string `json:"status" binding:"required"`
	LeaveDate       string `json:"leave_date"`
	GroupID         *int64 `json:"group_id"`
	RejectionReason string `json:"rejection_reason" binding:"max=500"`
}

type VerdictResponse struct {
	Valid   bool           `json:"valid"`
	Reason  string         `json:"reason"`
	Params  map[string]any `json:"params,omitempty"`
	Message string         `json:"message"`
}

type StatusFormResponse struct {
	EmployeeID     string   `json:"employee_id"`
	CurrentStatus  string   `json:"current_status"`
	AllowedTargets []string `json:"allowed_targets"`
	LeaveDate      *string  `json:"leave_date,omitempty"`
	GroupID        *int64   `json:"group_id,omitempty"`
	CanSave        bool     `json:"can_save"`
}

type StatusPreviewResponse struct {
	EmployeeID      string          `json:"employee_id"`
	CurrentStatus   string          `json:"current_status"`
	RequestedStatus string          `json:"requested_status"`
	EffectiveStatus string          `json:"effective_status"`
	Action          string          `json:"action"`
	Transition      VerdictResponse `json:"transition"`
	LeaveDate       VerdictResponse `json:"leave_date"`
	CanSave         bool            `json:"can_save"`
}

type StatusChangeResponse struct {
	EmployeeID     string  `json:"employee_id"`
	PreviousStatus string  `json:"previous_status"`
	Status         string  `json:"status"`
	Action         string  `json:"action"`
	LeaveDate      *string `json:"leave_date,omitempty"`
	Message        string  `json:"message"`
}
