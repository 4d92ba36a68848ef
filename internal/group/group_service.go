package group

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"jample-admin/internal/backend"
	"jample-admin/internal/employee"
	grouperrors "jample-admin/internal/group/errors"
	"jample-admin/internal/shared/apperror"
	"jample-admin/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const GroupListKeyPrefix = "groups:list:"

func GetGroupListKey(companyID int64) string {
	return GroupListKeyPrefix + strconv.FormatInt(companyID, 10)
}

type Service interface {
	GetAll(ctx context.Context, sess backend.Session) ([]GroupResponse, error)
	Create(ctx context.Context, sess backend.Session, req CreateGroupRequest) (GroupResponse, error)
	Update(ctx context.Context, sess backend.Session, id int64, req UpdateGroupRequest) (GroupResponse, error)
	Delete(ctx context.Context, sess backend.Session, id int64) error
	AssignEmployee(ctx context.Context, sess backend.Session, id int64, employeeID string) (MembershipResponse, error)
	UnassignEmployee(ctx context.Context, sess backend.Session, employeeID string) (MembershipResponse, error)
}

type service struct {
	repo     Repository
	rdb      *redis.Client
	sf       *singleflight.Group
	cacheTTL time.Duration
	logger   *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, cacheTTL time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("group.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("group.service")
	}
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &service{
		repo:     repo,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		cacheTTL: cacheTTL,
		logger:   l,
	}
}

func (s *service) GetAll(ctx context.Context, sess backend.Session) ([]GroupResponse, error) {
	cacheKey := GetGroupListKey(sess.CompanyID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var groups []GroupResponse
			if json.Unmarshal([]byte(cached), &groups) == nil {
				return groups, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		groups, err := s.repo.List(ctx, sess)
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		res := make([]GroupResponse, len(groups))
		for i, g := range groups {
			res[i] = mapToResponse(g)
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(res); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, s.cacheTTL)
			}
		}
		return res, nil
	})
	if err != nil {
		s.logger.Error("get all groups failed", zap.Int64("company_id", sess.CompanyID), zap.Error(err))
		return nil, err
	}

	return v.([]GroupResponse), nil
}

func (s *service) Create(ctx context.Context, sess backend.Session, req CreateGroupRequest) (GroupResponse, error) {
	renewDate := intOr(req.RenewDate, DefaultRenewDate)
	rollover := intOr(req.RolloverPercentage, DefaultRolloverPercentage)
	name := strings.TrimSpace(req.Name)

	if err := Validate(Fields{
		Name:               &name,
		Credits:            &req.Credits,
		RenewDate:          &renewDate,
		RolloverPercentage: &rollover,
	}).Err(); err != nil {
		return GroupResponse{}, err
	}

	g, err := s.repo.Create(ctx, sess, backend.CreateEmployeeGroupInput{
		Name:               name,
		Credits:            req.Credits,
		RenewDate:          renewDate,
		RolloverPercentage: rollover,
		RenewalPeriodType:  req.RenewalPeriodType,
	})
	if err != nil {
		return GroupResponse{}, mapRepositoryError(err)
	}

	s.invalidate(ctx, GetGroupListKey(sess.CompanyID))
	s.logger.Info("group created",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int64("group_id", g.EmployeeGroupID),
	)
	return mapToResponse(g), nil
}

func (s *service) Update(ctx context.Context, sess backend.Session, id int64, req UpdateGroupRequest) (GroupResponse, error) {
	if id <= 0 {
		return GroupResponse{}, grouperrors.ErrInvalidGroupID
	}
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
	}
	if err := Validate(Fields{
		Name:               req.Name,
		Credits:            req.Credits,
		RenewDate:          req.RenewDate,
		RolloverPercentage: req.RolloverPercentage,
	}).Err(); err != nil {
		return GroupResponse{}, err
	}

	g, err := s.repo.Update(ctx, sess, backend.UpdateEmployeeGroupInput{
		EmployeeGroupID:    id,
		Name:               req.Name,
		Credits:            req.Credits,
		RenewDate:          req.RenewDate,
		RolloverPercentage: req.RolloverPercentage,
		IsActive:           req.IsActive,
	})
	if err != nil {
		return GroupResponse{}, mapRepositoryError(err)
	}

	// Group names are shown in the employee directory.
	s.invalidate(ctx, GetGroupListKey(sess.CompanyID), employee.GetEmployeeListKey(sess.CompanyID))
	return mapToResponse(g), nil
}

func (s *service) Delete(ctx context.Context, sess backend.Session, id int64) error {
	if id <= 0 {
		return grouperrors.ErrInvalidGroupID
	}

	ok, err := s.repo.Delete(ctx, sess, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if !ok {
		return grouperrors.ErrNotApplied
	}

	s.invalidate(ctx, GetGroupListKey(sess.CompanyID), employee.GetEmployeeListKey(sess.CompanyID))
	s.logger.Info("group deleted",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int64("group_id", id),
	)
	return nil
}

func (s *service) AssignEmployee(ctx context.Context, sess backend.Session, id int64, employeeID string) (MembershipResponse, error) {
	if id <= 0 {
		return MembershipResponse{}, grouperrors.ErrInvalidGroupID
	}
	if strings.TrimSpace(employeeID) == "" {
		return MembershipResponse{}, grouperrors.ErrInvalidEmployeeID
	}

	ok, err := s.repo.Assign(ctx, sess, id, employeeID)
	if err != nil {
		return MembershipResponse{}, mapRepositoryError(err)
	}
	if !ok {
		return MembershipResponse{}, grouperrors.ErrNotApplied
	}

	s.invalidate(ctx, GetGroupListKey(sess.CompanyID), employee.GetEmployeeListKey(sess.CompanyID))
	return MembershipResponse{GroupID: &id, EmployeeID: employeeID, Assigned: true}, nil
}

func (s *service) UnassignEmployee(ctx context.Context, sess backend.Session, employeeID string) (MembershipResponse, error) {
	if strings.TrimSpace(employeeID) == "" {
		return MembershipResponse{}, grouperrors.ErrInvalidEmployeeID
	}

	ok, err := s.repo.Unassign(ctx, sess, employeeID)
	if err != nil {
		return MembershipResponse{}, mapRepositoryError(err)
	}
	if !ok {
		return MembershipResponse{}, grouperrors.ErrNotApplied
	}

	s.invalidate(ctx, GetGroupListKey(sess.CompanyID), employee.GetEmployeeListKey(sess.CompanyID))
	return MembershipResponse{EmployeeID: employeeID, Assigned: false}, nil
}

func (s *service) invalidate(ctx context.Context, keys ...string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.logger.Error("failed to invalidate group caches", zap.Strings("keys", keys), zap.Error(err))
	}
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.Backend(err)
}

func mapToResponse(g backend.EmployeeGroup) GroupResponse {
	return GroupResponse{
		ID:                 g.EmployeeGroupID,
		Name:               g.Name,
		IsActive:           g.IsActive,
		Credits:            g.Credits,
		RenewDate:          g.RenewDate,
		RolloverPercentage: g.RolloverPercentage,
		RenewalPeriodType:  g.RenewalPeriodType,
		EmployeeCount:      g.EmployeeCount,
		CreatedAt:          g.CreatedAt,
		UpdatedAt:          g.UpdatedAt,
	}
}
