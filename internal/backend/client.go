// Package backend is the typed gateway to the benefits GraphQL service. It
// owns no business rules; callers validate before mutating.
package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"jample-admin/internal/shared/contextutil"

	"github.com/machinebox/graphql"
	"go.uber.org/zap"
)

// ErrRejected marks an error answered by the GraphQL service itself, as
// opposed to a transport failure.
var ErrRejected = errors.New("rejected by backend")

type Client struct {
	gql    *graphql.Client
	logger *zap.Logger
}

func NewClient(endpoint string, timeout time.Duration, logger ...*zap.Logger) *Client {
	l := zap.L().Named("backend.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("backend.client")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	gql := graphql.NewClient(endpoint, graphql.WithHTTPClient(&http.Client{Timeout: timeout}))
	gql.Log = func(s string) { l.Debug(s) }

	return &Client{gql: gql, logger: l}
}

func (c *Client) run(ctx context.Context, op string, token string, query string, vars map[string]any, out any) error {
	req := graphql.NewRequest(query)
	for k, v := range vars {
		req.Var(k, v)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		req.Header.Set("X-Request-ID", rid)
	}

	started := time.Now()
	err := c.gql.Run(ctx, req, out)
	fields := []zap.Field{
		zap.String("operation", op),
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Duration("elapsed", time.Since(started)),
	}
	if err != nil {
		c.logger.Warn("backend call failed", append(fields, zap.Error(err))...)
		if isGraphQLError(err) {
			return fmt.Errorf("backend %s: %w: %w", op, ErrRejected, err)
		}
		return fmt.Errorf("backend %s: %w", op, err)
	}
	c.logger.Debug("backend call ok", fields...)
	return nil
}

func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var resp struct {
		Login LoginResult `json:"login"`
	}
	err := c.run(ctx, "Login", "", loginMutation, map[string]any{
		"email":    email,
		"password": password,
	}, &resp)
	return resp.Login, err
}

func (c *Client) ListEmployees(ctx context.Context, sess Session) (EmployeeList, error) {
	var resp struct {
		GetEmployeeList EmployeeList `json:"getEmployeeList"`
	}
	err := c.run(ctx, "GetEmployeeList", sess.Token, employeeListQuery, map[string]any{
		"companyId": sess.CompanyID,
	}, &resp)
	return resp.GetEmployeeList, err
}

// statusOperations mirrors the dashboard's per-action mutation names.
var statusOperations = map[string]string{
	"APPROVE":        "ApproveEmployee",
	"REJECT":         "RejectEmployee",
	"SCHEDULE_LEAVE": "ScheduleEmployeeLeave",
	"LEAVE":          "ProcessEmployeeLeave",
}

func (c *Client) UpdateEmployeeStatus(ctx context.Context, sess Session, input UpdateEmployeeStatusInput) (UpdateEmployeeStatusResult, error) {
	op, ok := statusOperations[input.Action]
	if !ok {
		op = "ApproveEmployee"
	}
	if input.Action == "APPROVE" && input.EmployeeGroupID != nil {
		op = "ApproveEmployeeWithGroup"
	}
	input.CompanyID = sess.CompanyID

	var resp struct {
		UpdateEmployeeStatus UpdateEmployeeStatusResult `json:"updateEmployeeStatus"`
	}
	err := c.run(ctx, op, sess.Token, fmt.Sprintf(updateEmployeeStatusTemplate, op), map[string]any{
		"input": input,
	}, &resp)
	return resp.UpdateEmployeeStatus, err
}

func (c *Client) GetCreditSummary(ctx context.Context, sess Session) (CreditSummary, error) {
	var resp struct {
		GetB2bCreditSummary CreditSummary `json:"getB2bCreditSummary"`
	}
	err := c.run(ctx, "GetB2bCreditSummary", sess.Token, creditSummaryQuery, map[string]any{
		"companyId": sess.CompanyID,
	}, &resp)
	return resp.GetB2bCreditSummary, err
}

func (c *Client) GetMemberStats(ctx context.Context, sess Session) (MemberStats, error) {
	var resp struct {
		GetMemberStats MemberStats `json:"getMemberStats"`
	}
	err := c.run(ctx, "GetMemberStats", sess.Token, memberStatsQuery, map[string]any{
		"companyId": sess.CompanyID,
	}, &resp)
	return resp.GetMemberStats, err
}

// GetMonthlyJamUsage leaves the window to the backend when months is 0.
func (c *Client) GetMonthlyJamUsage(ctx context.Context, sess Session, months int) (MonthlyJamUsage, error) {
	vars := map[string]any{"companyId": sess.CompanyID}
	if months > 0 {
		vars["months"] = months
	}
	var resp struct {
		GetMonthlyJamUsage MonthlyJamUsage `json:"getMonthlyJamUsage"`
	}
	err := c.run(ctx, "GetMonthlyJamUsage", sess.Token, monthlyJamUsageQuery, vars, &resp)
	return resp.GetMonthlyJamUsage, err
}

func (c *Client) GetRecentReviews(ctx context.Context, sess Session, days, limit int) (RecentReviews, error) {
	vars := map[string]any{"companyId": sess.CompanyID}
	if days > 0 {
		vars["days"] = days
	}
	if limit > 0 {
		vars["limit"] = limit
	}
	var resp struct {
		GetRecentReviews RecentReviews `json:"getRecentReviews"`
	}
	err := c.run(ctx, "GetRecentReviews", sess.Token, recentReviewsQuery, vars, &resp)
	return resp.GetRecentReviews, err
}

func (c *Client) AllocateCredits(ctx context.Context, sess Session, input AllocateCreditsInput) (AllocateCreditsResult, error) {
	input.CompanyID = sess.CompanyID
	var resp struct {
		AllocateCredits AllocateCreditsResult `json:"allocateCredits"`
	}
	err := c.run(ctx, "AllocateCredits", sess.Token, allocateCreditsMutation, map[string]any{
		"input": input,
	}, &resp)
	return resp.AllocateCredits, err
}

func (c *Client) ListGroups(ctx context.Context, sess Session) ([]EmployeeGroup, error) {
	var resp struct {
		GetEmployeeGroups struct {
			Groups []EmployeeGroup `json:"groups"`
		} `json:"getEmployeeGroups"`
	}
	err := c.run(ctx, "GetEmployeeGroups", sess.Token, employeeGroupsQuery, map[string]any{
		"companyId": sess.CompanyID,
	}, &resp)
	return resp.GetEmployeeGroups.Groups, err
}

func (c *Client) CreateGroup(ctx context.Context, sess Session, input CreateEmployeeGroupInput) (EmployeeGroup, error) {
	input.CompanyID = sess.CompanyID
	var resp struct {
		CreateEmployeeGroup EmployeeGroup `json:"createEmployeeGroup"`
	}
	err := c.run(ctx, "CreateEmployeeGroup", sess.Token, createEmployeeGroupMutation, map[string]any{
		"input": input,
	}, &resp)
	return resp.CreateEmployeeGroup, err
}

func (c *Client) UpdateGroup(ctx context.Context, sess Session, input UpdateEmployeeGroupInput) (EmployeeGroup, error) {
	input.CompanyID = sess.CompanyID
	var resp struct {
		UpdateEmployeeGroup EmployeeGroup `json:"updateEmployeeGroup"`
	}
	err := c.run(ctx, "UpdateEmployeeGroup", sess.Token, updateEmployeeGroupMutation, map[string]any{
		"input": input,
	}, &resp)
	return resp.UpdateEmployeeGroup, err
}

func (c *Client) DeleteGroup(ctx context.Context, sess Session, groupID int64) (bool, error) {
	var resp struct {
		DeleteEmployeeGroup bool `json:"deleteEmployeeGroup"`
	}
	err := c.run(ctx, "DeleteEmployeeGroup", sess.Token, deleteEmployeeGroupMutation, map[string]any{
		"input": map[string]any{"companyId": sess.CompanyID, "employeeGroupId": groupID},
	}, &resp)
	return resp.DeleteEmployeeGroup, err
}

func (c *Client) AssignEmployeeToGroup(ctx context.Context, sess Session, groupID int64, employeeID string) (bool, error) {
	var resp struct {
		AssignEmployeeToGroup bool `json:"assignEmployeeToGroup"`
	}
	err := c.run(ctx, "AssignEmployeeToGroup", sess.Token, assignEmployeeToGroupMutation, map[string]any{
		"input": map[string]any{
			"companyId":       sess.CompanyID,
			"employeeGroupId": groupID,
			"employeeId":      employeeID,
		},
	}, &resp)
	return resp.AssignEmployeeToGroup, err
}

func (c *Client) UnassignEmployeeFromGroup(ctx context.Context, sess Session, employeeID string) (bool, error) {
	var resp struct {
		UnassignEmployeeFromGroup bool `json:"unassignEmployeeFromGroup"`
	}
	err := c.run(ctx, "UnassignEmployeeFromGroup", sess.Token, unassignEmployeeFromGroupMutation, map[string]any{
		"input": map[string]any{
			"companyId":  sess.CompanyID,
			"employeeId": employeeID,
		},
	}, &resp)
	return resp.UnassignEmployeeFromGroup, err
}

// isGraphQLError reports whether the service answered with an errors list.
func isGraphQLError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "graphql: ") && !strings.Contains(msg, "non-200 status")
}
