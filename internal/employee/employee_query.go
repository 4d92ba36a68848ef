package employee

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 20
	maxPageSize     = 200
)

func parseListQuery(c *gin.Context) ListQuery {
	q := ListQuery{
		Q:       strings.TrimSpace(strings.ToLower(c.Query("q"))),
		Status:  strings.TrimSpace(c.DefaultQuery("status", "all")),
		SortBy:  strings.ToLower(strings.TrimSpace(c.DefaultQuery("sort_by", "name"))),
		SortDir: strings.ToLower(strings.TrimSpace(c.DefaultQuery("sort_dir", "asc"))),
	}
	if q.SortDir != "desc" {
		q.SortDir = "asc"
	}

	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if q.Page < 1 {
		q.Page = 1
	}
	q.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if q.PageSize < 1 {
		q.PageSize = defaultPageSize
	}
	if q.PageSize > maxPageSize {
		q.PageSize = maxPageSize
	}
	return q
}

// applyListQuery filters and sorts rows in place order. Ties fall back to
// the employee id so paging is stable across requests.
func applyListQuery(rows []EmployeeResponse, q ListQuery) []EmployeeResponse {
	var wantStatus Status
	filterStatus := q.Status != "" && !strings.EqualFold(q.Status, "all")
	if filterStatus {
		wantStatus, _ = ParseStatus(q.Status)
	}

	out := make([]EmployeeResponse, 0, len(rows))
	for _, e := range rows {
		if filterStatus && Status(e.Status) != wantStatus {
			continue
		}
		if q.Q != "" &&
			!strings.Contains(strings.ToLower(e.Name), q.Q) &&
			!strings.Contains(strings.ToLower(e.EmployeeNumber), q.Q) &&
			!strings.Contains(strings.ToLower(e.Email), q.Q) {
			continue
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		c := compareBy(q.SortBy, out[i], out[j])
		if c == 0 {
			return out[i].ID < out[j].ID
		}
		if q.SortDir == "desc" {
			return c > 0
		}
		return c < 0
	})
	return out
}

func compareBy(field string, a, b EmployeeResponse) int {
	switch field {
	case "employee_number":
		return strings.Compare(a.EmployeeNumber, b.EmployeeNumber)
	case "email":
		return strings.Compare(strings.ToLower(a.Email), strings.ToLower(b.Email))
	case "join_date":
		return strings.Compare(a.JoinDate, b.JoinDate)
	case "status":
		return strings.Compare(a.Status, b.Status)
	case "balance":
		switch {
		case a.BalanceJams < b.BalanceJams:
			return -1
		case a.BalanceJams > b.BalanceJams:
			return 1
		}
		return 0
	default:
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	}
}

// paginate returns one page of rows. Pages past the end are empty; the
// offset is never computed for them, so huge page numbers cannot wrap.
func paginate(rows []EmployeeResponse, page, pageSize int) []EmployeeResponse {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if page-1 > len(rows)/pageSize {
		return rows[len(rows):]
	}
	start := (page - 1) * pageSize
	if start > len(rows) {
		start = len(rows)
	}
	end := len(rows)
	if len(rows)-start > pageSize {
		end = start + pageSize
	}
	return rows[start:end]
}
