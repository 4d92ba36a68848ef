package audit

import (
	"context"
	"errors"
	"strings"

	auditerrors "jample-admin/internal/audit/errors"
	"jample-admin/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const (
	defaultPageSize = 20
	uniqueEventIdx  = "uq_audit_event"
)

//go:generate mockgen -source=audit_service.go -destination=mock/audit_service_mock.go -package=mock
type Service interface {
	Record(ctx context.Context, e Entry) error
	List(ctx context.Context, companyID int64, q ListQuery) ([]EntryResponse, int64, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("audit.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Record(ctx context.Context, e Entry) error {
	if e.CompanyID == 0 || e.EventID == "" || e.ActorID == "" {
		return auditerrors.ErrInvalidEvent
	}

	if err := s.repo.Create(ctx, &e); err != nil {
		if isUniqueEventViolation(err) {
			return auditerrors.ErrDuplicateEntry
		}
		s.logger.Error("record audit entry failed",
			zap.String("event_id", e.EventID),
			zap.String("kind", e.Kind),
			zap.Error(err),
		)
		return apperror.Wrap(err, apperror.CodeInternalError, apperror.ErrInternal.Message, apperror.ErrInternal.HTTPStatus)
	}
	return nil
}

func (s *service) List(ctx context.Context, companyID int64, q ListQuery) ([]EntryResponse, int64, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultPageSize
	}

	entries, total, err := s.repo.FindAllByCompany(ctx, companyID, q.Kind, (q.Page-1)*q.Limit, q.Limit)
	if err != nil {
		s.logger.Error("list audit entries failed", zap.Int64("company_id", companyID), zap.Error(err))
		return nil, 0, apperror.ErrInternal
	}

	res := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		res = append(res, toResponse(e))
	}
	return res, total, nil
}

func isUniqueEventViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == uniqueEventIdx
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, uniqueEventIdx)
}
