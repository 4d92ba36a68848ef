package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"
	"time"

	"jample-admin/internal/backend"
	employeeerrors "jample-admin/internal/employee/errors"
	"jample-admin/internal/events"
	"jample-admin/internal/i18n"
	"jample-admin/internal/messaging/kafka"
	"jample-admin/internal/shared/apperror"
	"jample-admin/internal/shared/contextutil"
	"jample-admin/internal/shared/dateutil"
	"jample-admin/internal/shared/verdict"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const EmployeeListKeyPrefix = "employees:list:"

func GetEmployeeListKey(companyID int64) string {
	return EmployeeListKeyPrefix + strconv.FormatInt(companyID, 10)
}

type Service interface {
	GetAll(ctx context.Context, sess backend.Session) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, sess backend.Session, id string) (EmployeeResponse, error)
	GetStatusForm(ctx context.Context, sess backend.Session, id string) (StatusFormResponse, error)
	PreviewStatus(ctx context.Context, sess backend.Session, id string, req StatusChangeRequest) (StatusPreviewResponse, error)
	ChangeStatus(ctx context.Context, sess backend.Session, id string, req StatusChangeRequest) (StatusChangeResponse, error)
}

type Options struct {
	Location *time.Location
	CacheTTL time.Duration
	Clock    func() time.Time
}

type service struct {
	db       *sql.DB
	repo     Repository
	outbox   kafka.OutboxRepository
	rdb      *redis.Client
	sf       *singleflight.Group
	loc      *time.Location
	cacheTTL time.Duration
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	opts Options,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 5 * time.Minute
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &service{
		db:       db,
		repo:     repo,
		outbox:   outboxRepo,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		loc:      opts.Location,
		cacheTTL: opts.CacheTTL,
		now:      opts.Clock,
		logger:   l,
	}
}

func (s *service) today() time.Time {
	return dateutil.Today(s.now(), s.loc)
}

// list reads the company directory through the Redis cache. fresh skips
// the cache so mutations always start from the backend's current state.
func (s *service) list(ctx context.Context, sess backend.Session, fresh bool) ([]Employee, error) {
	cacheKey := GetEmployeeListKey(sess.CompanyID)

	if s.rdb != nil && !fresh {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var emps []Employee
			if json.Unmarshal([]byte(cached), &emps) == nil {
				return emps, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		emps, err := s.repo.List(ctx, sess)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(emps); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, jsonData, s.cacheTTL).Err(); err != nil {
					s.logger.Warn("cache employee list failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return emps, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]Employee), nil
}

func (s *service) find(ctx context.Context, sess backend.Session, id string, fresh bool) (Employee, error) {
	if id == "" {
		return Employee{}, employeeerrors.ErrInvalidEmployeeID
	}
	emps, err := s.list(ctx, sess, fresh)
	if err != nil {
		return Employee{}, err
	}
	for _, e := range emps {
		if e.ID == id {
			return e, nil
		}
	}
	return Employee{}, employeeerrors.ErrEmployeeNotFound
}

func (s *service) GetAll(ctx context.Context, sess backend.Session) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested", zap.Int64("company_id", sess.CompanyID))
	emps, err := s.list(ctx, sess, false)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(emps), nil
}

func (s *service) GetByID(ctx context.Context, sess backend.Session, id string) (EmployeeResponse, error) {
	empl, err := s.find(ctx, sess, id, false)
	if err != nil {
		return EmployeeResponse{}, err
	}
	return mapToResponse(empl), nil
}

func (s *service) GetStatusForm(ctx context.Context, sess backend.Session, id string) (StatusFormResponse, error) {
	empl, err := s.find(ctx, sess, id, false)
	if err != nil {
		return StatusFormResponse{}, err
	}

	targets := AllowedTargets(empl.Status)
	allowed := make([]string, len(targets))
	for i, t := range targets {
		allowed[i] = string(t)
	}

	return StatusFormResponse{
		EmployeeID:     empl.ID,
		CurrentStatus:  string(empl.Status),
		AllowedTargets: allowed,
		LeaveDate:      empl.LeaveDate,
		GroupID:        empl.GroupID,
		CanSave:        false,
	}, nil
}

// draft turns a request body into a workflow input. A malformed leave date
// is returned as a rejected verdict rather than an error.
func (s *service) draft(empl Employee, req StatusChangeRequest) (StatusChange, *verdict.Verdict) {
	requested, _ := ParseStatus(req.Status)
	change := StatusChange{
		Current:         empl.Status,
		Requested:       requested,
		GroupID:         req.GroupID,
		RejectionReason: req.RejectionReason,
	}

	if empl.LeaveDate != nil {
		if recorded, ok, err := dateutil.Parse(*empl.LeaveDate, s.loc); err == nil && ok {
			change.RecordedLeaveDate = &recorded
		}
	}

	date, ok, err := dateutil.Parse(req.LeaveDate, s.loc)
	if err != nil {
		// Targets without a leave date ignore whatever was typed there.
		if !RequiresLeaveDate(requested) {
			return change, nil
		}
		v := verdict.Reject("leave_date.invalid")
		return change, &v
	}
	if ok {
		change.LeaveDate = &date
	}
	return change, nil
}

func (s *service) PreviewStatus(ctx context.Context, sess backend.Session, id string, req StatusChangeRequest) (StatusPreviewResponse, error) {
	empl, err := s.find(ctx, sess, id, false)
	if err != nil {
		return StatusPreviewResponse{}, err
	}

	change, dateErr := s.draft(empl, req)
	ev := Evaluate(change, s.today())
	if dateErr != nil {
		ev.LeaveDate = *dateErr
		ev.CanSave = false
	}

	return StatusPreviewResponse{
		EmployeeID:      empl.ID,
		CurrentStatus:   string(change.Current),
		RequestedStatus: string(change.Requested),
		EffectiveStatus: string(ev.EffectiveStatus),
		Action:          string(ev.Action),
		Transition:      toVerdictResponse(ctx, ev.Transition),
		LeaveDate:       toVerdictResponse(ctx, ev.LeaveDate),
		CanSave:         ev.CanSave,
	}, nil
}

func (s *service) ChangeStatus(ctx context.Context, sess backend.Session, id string, req StatusChangeRequest) (StatusChangeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("change employee status requested",
		zap.String("request_id", rid),
		zap.Int64("company_id", sess.CompanyID),
		zap.String("employee_id", id),
		zap.String("status", req.Status),
	)

	empl, err := s.find(ctx, sess, id, true)
	if err != nil {
		return StatusChangeResponse{}, err
	}

	change, dateErr := s.draft(empl, req)
	if dateErr != nil {
		return StatusChangeResponse{}, dateErr.Err()
	}
	ev := Evaluate(change, s.today())
	if !ev.CanSave {
		gate := ev.Gate()
		s.logger.Info("change employee status rejected locally",
			zap.String("request_id", rid),
			zap.String("employee_id", id),
			zap.String("reason", gate.Reason),
		)
		return StatusChangeResponse{}, gate.Err()
	}

	input := BuildMutationInput(empl.ID, sess.UserID, ev, change.LeaveDate, change.RejectionReason)
	res, err := s.repo.UpdateStatus(ctx, sess, input)
	if err != nil {
		s.logger.Error("update employee status backend call failed",
			zap.String("request_id", rid),
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return StatusChangeResponse{}, mapRepositoryError(err)
	}
	if !res.Success {
		s.logger.Warn("update employee status refused by backend",
			zap.String("request_id", rid),
			zap.String("employee_id", id),
			zap.String("message", res.Message),
		)
		return StatusChangeResponse{}, apperror.BackendRejected(res.Message)
	}

	event := events.EmployeeStatusChangedEvent{
		EventType:      events.EventEmployeeStatusChanged,
		RequestID:      rid,
		CompanyID:      sess.CompanyID,
		EmployeeID:     empl.ID,
		ActorID:        sess.UserID,
		PreviousStatus: string(empl.Status),
		Status:         string(ev.EffectiveStatus),
		Action:         string(ev.Action),
		LeaveDate:      dateutil.Format(change.LeaveDate),
		GroupID:        input.EmployeeGroupID,
		OccurredAt:     s.now().UTC(),
	}
	// The backend has already applied the change; a lost audit event is
	// logged but never turned into a user-facing failure.
	if err := s.enqueue(ctx, event); err != nil {
		s.logger.Error("queue employee status event failed",
			zap.String("request_id", rid),
			zap.String("employee_id", empl.ID),
			zap.Error(err),
		)
	}

	s.invalidate(ctx, sess.CompanyID)

	s.logger.Info("change employee status success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID),
		zap.String("action", string(ev.Action)),
	)

	return StatusChangeResponse{
		EmployeeID:     empl.ID,
		PreviousStatus: string(empl.Status),
		Status:         string(ev.EffectiveStatus),
		Action:         string(ev.Action),
		LeaveDate:      input.LeaveDate,
		Message:        res.Message,
	}, nil
}

func (s *service) enqueue(ctx context.Context, event events.EmployeeStatusChangedEvent) error {
	if s.outbox == nil || s.db == nil {
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     event.RequestID,
		AggregateType: kafka.AggregateEmployee,
		AggregateID:   event.EmployeeID,
		EventType:     event.EventType,
		Topic:         events.EmployeeStatusTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *service) invalidate(ctx context.Context, companyID int64) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetEmployeeListKey(companyID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee list cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func toVerdictResponse(ctx context.Context, v verdict.Verdict) VerdictResponse {
	return VerdictResponse{
		Valid:   v.Valid,
		Reason:  v.Reason,
		Params:  v.Params,
		Message: i18n.T(ctx, v.Reason, v.Params),
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:             empl.ID,
		EmployeeNumber: empl.EmployeeNumber,
		Name:           empl.Name,
		PhoneNumber:    empl.PhoneNumber,
		Email:          empl.Email,
		JoinDate:       empl.JoinDate,
		MembershipFrom: empl.MembershipStartDate,
		LeaveDate:      empl.LeaveDate,
		Status:         string(empl.Status),
		TotalJams:      empl.TotalJams,
		BalanceJams:    empl.BalanceJams,
	}
	if empl.GroupID != nil {
		resp.Group = &EmployeeGroupResponse{ID: *empl.GroupID, Name: empl.GroupName}
	}
	return resp
}

func mapToListResponse(emps []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(emps))
	for i, e := range emps {
		res[i] = mapToResponse(e)
	}
	return res
}
