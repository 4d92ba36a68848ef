package group

type CreateGroupRequest struct {
	Name               string  `json:"name" binding:"required,max=50"`
	Credits            int64   `json:"credits"`
	RenewDate          *int    `json:"renew_date"`
	RolloverPercentage *int    `json:"rollover_percentage"`
	RenewalPeriodType  *string `json:"renewal_period_type"`
}

type UpdateGroupRequest struct {
	Name               *string `json:"name" binding:"omitempty,max=50"`
	Credits            *int64  `json:"credits"`
	RenewDate          *int    `json:"renew_date"`
	RolloverPercentage *int    `json:"rollover_percentage"`
	IsActive           *bool   `json:"is_active"`
}

type GroupResponse struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	IsActive           bool   `json:"is_active"`
	Credits            int64  `json:"credits"`
	RenewDate          int    `json:"renew_date"`
	RolloverPercentage int    `json:"rollover_percentage"`
	RenewalPeriodType  string `json:"renewal_period_type,omitempty"`
	EmployeeCount      int    `json:"employee_count"`
	CreatedAt          string `json:"created_at,omitempty"`
	UpdatedAt          string `json:"updated_at,omitempty"`
}

type MembershipResponse struct {
	GroupID    *int64 `json:"group_id,omitempty"`
	EmployeeID string `json:"employee_id"`
	Assigned   bool   `json:"assigned"`
}
