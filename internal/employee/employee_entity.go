package employee

import "jample-admin/internal/backend"

// Employee is the directory row cached per company. The backend owns every
// field; nothing here is computed locally except the parsed status.
type Employee struct {
	ID                  string  `json:"id"`
	EmployeeNumber      string  `json:"employee_number"`
	Name                string  `json:"name"`
	PhoneNumber         string  `json:"phone_number"`
	Email               string  `json:"email"`
	JoinDate            string  `json:"join_date"`
	LeaveDate           *string `json:"leave_date,omitempty"`
	Status              Status  `json:"status"`
	TotalJams           int64   `json:"total_jams"`
	BalanceJams         int64   `json:"balance_jams"`
	MembershipStartDate string  `json:"membership_start_date,omitempty"`
	GroupID             *int64  `json:"group_id,omitempty"`
	GroupName           string  `json:"group_name,omitempty"`
}

func fromBackend(e backend.Employee) Employee {
	status, _ := ParseStatus(e.Status)
	empl := Employee{
		ID:             e.ID,
		EmployeeNumber: e.EmployeeNumber,
		Name:           e.Name,
		PhoneNumber:    e.PhoneNumber,
		Email:          e.Email,
		JoinDate:       e.JoinDate,
		LeaveDate:      e.LeaveDate,
		Status:         status,
		TotalJams:      e.JamInfo.TotalJams,
		BalanceJams:    e.JamInfo.BalanceJams,
	}
	if e.MembershipInfo != nil {
		empl.MembershipStartDate = e.MembershipInfo.StartDate
	}
	if e.Group != nil {
		id := e.Group.GroupID
		empl.GroupID = &id
		empl.GroupName = e.Group.GroupName
	}
	return empl
}
