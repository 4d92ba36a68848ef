package employee

import (
	"context"
	"fmt"

	"jample-admin/internal/i18n"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Employees"

var exportHeaders = []string{
	"export.employee_number",
	"export.name",
	"export.email",
	"export.phone_number",
	"export.join_date",
	"export.membership_start_date",
	"export.leave_date",
	"export.status",
	"export.balance",
	"export.group",
}

// BuildWorkbook renders rows as a single-sheet xlsx with localized headers.
func BuildWorkbook(ctx context.Context, rows []EmployeeResponse) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		f.Close()
		return nil, err
	}

	header := make([]interface{}, len(exportHeaders))
	for i, id := range exportHeaders {
		header[i] = i18n.T(ctx, id)
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		f.Close()
		return nil, err
	}

	for i, e := range rows {
		leaveDate := ""
		if e.LeaveDate != nil {
			leaveDate = *e.LeaveDate
		}
		group := ""
		if e.Group != nil {
			group = e.Group.Name
		}
		row := []interface{}{
			e.EmployeeNumber,
			e.Name,
			e.Email,
			e.PhoneNumber,
			e.JoinDate,
			e.MembershipFrom,
			leaveDate,
			i18n.T(ctx, "status.label."+e.Status),
			e.BalanceJams,
			group,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	return f, nil
}
