package credit

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"jample-admin/internal/backend"
	crediterrors "jample-admin/internal/credit/errors"
	"jample-admin/internal/employee"
	"jample-admin/internal/events"
	"jample-admin/internal/i18n"
	"jample-admin/internal/messaging/kafka"
	"jample-admin/internal/shared/contextutil"
	"jample-admin/internal/shared/dateutil"
	"jample-admin/internal/shared/verdict"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const SummaryKeyPrefix = "credits:summary:"

func GetSummaryKey(companyID int64) string {
	return SummaryKeyPrefix + strconv.FormatInt(companyID, 10)
}

type Service interface {
	GetSummary(ctx context.Context, sess backend.Session) (SummaryResponse, error)
	Preview(ctx context.Context, sess backend.Session, req AllocationRequest) (PreviewResponse, error)
	Allocate(ctx context.Context, sess backend.Session, req AllocationRequest) (AllocationResponse, error)
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
	l := zap.L().Named("credit.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("credit.service")
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 30 * time.Second
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

// summary reads the credit summary through the cache. Allocation passes
// fresh=true so the check runs against current balances.
func (s *service) summary(ctx context.Context, sess backend.Session, fresh bool) (backend.CreditSummary, error) {
	cacheKey := GetSummaryKey(sess.CompanyID)

	if s.rdb != nil && !fresh {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var sum backend.CreditSummary
			if json.Unmarshal([]byte(cached), &sum) == nil {
				return sum, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		sum, err := s.repo.Summary(ctx, sess)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(sum); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, jsonData, s.cacheTTL).Err(); err != nil {
					s.logger.Warn("cache credit summary failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return sum, nil
	})
	if err != nil {
		return backend.CreditSummary{}, err
	}

	return v.(backend.CreditSummary), nil
}

func (s *service) batches(ctx context.Context, sess backend.Session, fresh bool) (backend.CreditSummary, []Batch, error) {
	sum, err := s.summary(ctx, sess, fresh)
	if err != nil {
		return sum, nil, err
	}
	batches, err := BatchesFromSummary(sum, s.loc)
	if err != nil {
		s.logger.Error("parse credit batches failed",
			zap.Int64("company_id", sess.CompanyID),
			zap.Error(err),
		)
		return sum, nil, crediterrors.ErrMalformedSummary
	}
	return sum, batches, nil
}

func (s *service) GetSummary(ctx context.Context, sess backend.Session) (SummaryResponse, error) {
	sum, batches, err := s.batches(ctx, sess, false)
	if err != nil {
		return SummaryResponse{}, err
	}
	return mapToSummaryResponse(sum, batches), nil
}

// draft dedupes the targets and parses the free-text expiry date.
func (s *service) draft(req AllocationRequest) (Draft, []string) {
	ids := uniqueIDs(req.UserIDs)
	d := Draft{CreditsPerPerson: req.CreditsPerUser, TargetCount: len(ids)}

	date, ok, err := dateutil.Parse(req.ExpireDate, s.loc)
	switch {
	case err != nil:
		d.DateInvalid = true
	case ok:
		d.ExpiryDate = &date
	}
	return d, ids
}

func (s *service) Preview(ctx context.Context, sess backend.Session, req AllocationRequest) (PreviewResponse, error) {
	_, batches, err := s.batches(ctx, sess, false)
	if err != nil {
		return PreviewResponse{}, err
	}

	d, _ := s.draft(req)
	a := Assess(batches, d, s.today())
	return mapToPreviewResponse(ctx, d, a), nil
}

func (s *service) Allocate(ctx context.Context, sess backend.Session, req AllocationRequest) (AllocationResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.Logger(ctx, s.logger)
	log.Debug("allocate credits requested",
		zap.Int("targets", len(req.UserIDs)),
		zap.Int64("credits_per_user", req.CreditsPerUser),
	)

	_, batches, err := s.batches(ctx, sess, true)
	if err != nil {
		return AllocationResponse{}, err
	}

	d, ids := s.draft(req)
	a := Assess(batches, d, s.today())
	if !a.CanSubmit {
		gate := a.Gate()
		log.Info("allocate credits rejected locally",
			zap.String("reason", gate.Reason),
		)
		return AllocationResponse{}, gate.Err()
	}

	input := backend.AllocateCreditsInput{
		UserIDs:            ids,
		CreditsPerUser:     d.CreditsPerPerson,
		ExpireDate:         d.ExpiryDate.Format(dateutil.ISODate),
		RolloverPercentage: req.RolloverPercentage,
		Description:        strings.TrimSpace(req.Description),
	}
	res, err := s.repo.Allocate(ctx, sess, input)
	if err != nil {
		log.Error("allocate credits backend call failed",
			zap.Error(err),
		)
		return AllocationResponse{}, mapRepositoryError(err)
	}

	outcome := ClassifyOutcome(res)

	event := events.CreditsAllocatedEvent{
		EventType:      events.EventCreditsAllocated,
		RequestID:      rid,
		CompanyID:      sess.CompanyID,
		ActorID:        sess.UserID,
		Outcome:        string(outcome.Kind),
		CreditsPerUser: input.CreditsPerUser,
		ExpireDate:     input.ExpireDate,
		SuccessCount:   outcome.SuccessCount,
		FailedCount:    outcome.FailedCount,
		FailedUserIDs:  failedUserIDs(outcome),
		OccurredAt:     s.now().UTC(),
	}
	if err := s.enqueue(ctx, event); err != nil {
		log.Error("queue credit allocation event failed",
			zap.Error(err),
		)
	}

	if outcome.SuccessCount > 0 {
		s.invalidate(ctx, sess.CompanyID)
	}

	log.Info("allocate credits finished",
		zap.String("outcome", string(outcome.Kind)),
		zap.Int("success", outcome.SuccessCount),
		zap.Int("failed", outcome.FailedCount),
	)

	return mapToAllocationResponse(ctx, outcome), nil
}

func (s *service) enqueue(ctx context.Context, event events.CreditsAllocatedEvent) error {
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

	aggregateID := event.RequestID
	if aggregateID == "" {
		aggregateID = uuid.NewString()
	}
	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     event.RequestID,
		AggregateType: kafka.AggregateCredit,
		AggregateID:   aggregateID,
		EventType:     event.EventType,
		Topic:         events.CreditAllocationTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		return err
	}

	return tx.Commit()
}

// invalidate drops the summary and the employee list, whose balances
// changed with the allocation.
func (s *service) invalidate(ctx context.Context, companyID int64) {
	if s.rdb == nil {
		return
	}
	keys := []string{GetSummaryKey(companyID), employee.GetEmployeeListKey(companyID)}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.logger.Error("failed to invalidate credit caches",
			zap.Error(err),
			zap.Strings("keys", keys),
		)
	}
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func failedUserIDs(o Outcome) []string {
	ids := make([]string, len(o.Failures))
	for i, f := range o.Failures {
		ids[i] = f.UserID
	}
	return ids
}

func toVerdictResponse(ctx context.Context, v verdict.Verdict) VerdictResponse {
	return VerdictResponse{
		Valid:   v.Valid,
		Reason:  v.Reason,
		Params:  v.Params,
		Message: i18n.T(ctx, v.Reason, v.Params),
	}
}

func mapToSummaryResponse(sum backend.CreditSummary, batches []Batch) SummaryResponse {
	resp := SummaryResponse{
		TotalCharged: sum.TotalCharged,
		TotalBalance: sum.TotalBalance,
		UsageRate:    sum.UsageRate,
		Credits:      make([]BatchResponse, len(sum.Credits)),
	}
	if sum.ExpiringSoon != nil {
		resp.ExpiringSoon = &ExpiringSoonResponse{
			Amount:          sum.ExpiringSoon.Amount,
			ExpiryDate:      sum.ExpiringSoon.ExpiryDate,
			DaysUntilExpiry: sum.ExpiringSoon.DaysUntilExpiry,
		}
	}
	for i, c := range sum.Credits {
		resp.Credits[i] = BatchResponse{
			ID:              c.B2bCreditID,
			Name:            c.Name,
			Note:            c.Note,
			TotalCredits:    c.TotalCredits,
			Balance:         c.Balance,
			ExpiryDate:      batches[i].Expiry.Format(dateutil.ISODate),
			CreatedAt:       c.CreatedAt,
			IsExpired:       c.IsExpired,
			DaysUntilExpiry: c.DaysUntilExpiry,
			Eligible:        batches[i].Eligible(),
		}
	}
	return resp
}

func mapToPreviewResponse(ctx context.Context, d Draft, a Assessment) PreviewResponse {
	resp := PreviewResponse{
		TargetCount:        d.TargetCount,
		AvailableTotal:     a.AvailableTotal,
		TotalRequired:      a.TotalRequired,
		CoarseInsufficient: a.CoarseInsufficient,
		Verdict:            toVerdictResponse(ctx, a.Verdict),
		QuickPicks:         make([]QuickPickResponse, len(a.QuickPicks)),
		CanSubmit:          a.CanSubmit,
	}
	if a.Candidate != nil {
		id := a.Candidate.ID
		resp.CandidateBatchID = &id
	}
	for i, p := range a.QuickPicks {
		resp.QuickPicks[i] = QuickPickResponse{
			Days:    p.Days,
			Date:    p.Date.Format(dateutil.ISODate),
			Enabled: p.Enabled,
		}
	}
	return resp
}

func mapToAllocationResponse(ctx context.Context, o Outcome) AllocationResponse {
	return AllocationResponse{
		Kind:         o.Kind,
		SuccessCount: o.SuccessCount,
		FailedCount:  o.FailedCount,
		Failures:     o.Failures,
		Message: i18n.T(ctx, o.messageID(), map[string]any{
			"SuccessCount": o.SuccessCount,
			"FailedCount":  o.FailedCount,
		}),
	}
}
