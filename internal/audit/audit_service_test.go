package audit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"jample-admin/internal/audit"
	auditerrors "jample-admin/internal/audit/errors"
	auditMock "jample-admin/internal/audit/mock"
	"jample-admin/internal/events"
	"jample-admin/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupServiceTest(t *testing.T) (audit.Service, *auditMock.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := auditMock.NewMockRepository(ctrl)
	return audit.NewService(repo), repo
}

func statusEntry() audit.Entry {
	return audit.FromStatusChanged("evt-1", events.EmployeeStatusChangedEvent{
		RequestID:      "rid-1",
		CompanyID:      42,
		EmployeeID:     "emp-1",
		ActorID:        "admin-1",
		PreviousStatus: "ACTIVE",
		Status:         "LEAVING",
		Action:         "SCHEDULE_LEAVE",
		LeaveDate:      "2025-02-01",
		OccurredAt:     time.Date(2025, 1, 1, 1, 0, 0, 0, time.UTC),
	}, []byte(`{}`))
}

func TestAuditService_Record(t *testing.T) {
	ctx := context.Background()

	t.Run("persists entry", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *audit.Entry) error {
			assert.Equal(t, audit.KindEmployeeStatusChanged, e.Kind)
			assert.Equal(t, "emp-1", e.SubjectID)
			assert.Equal(t, "SCHEDULE_LEAVE emp-1: ACTIVE -> LEAVING (leave 2025-02-01)", e.Summary)
			return nil
		})

		require.NoError(t, svc.Record(ctx, statusEntry()))
	})

	t.Run("duplicate event", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_audit_event"})

		err := svc.Record(ctx, statusEntry())
		assert.ErrorIs(t, err, auditerrors.ErrDuplicateEntry)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc, _ := setupServiceTest(t)
		e := statusEntry()
		e.EventID = ""

		err := svc.Record(ctx, e)
		assert.ErrorIs(t, err, auditerrors.ErrInvalidEvent)
	})

	t.Run("database failure", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("connection reset"))

		err := svc.Record(ctx, statusEntry())
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeInternalError, appErr.Code)
	})
}

func TestAuditService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults page and limit", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		id := uuid.New()
		repo.EXPECT().FindAllByCompany(ctx, int64(42), "", 0, 20).Return([]audit.Entry{
			{ID: id, Kind: audit.KindCreditsAllocated, ActorID: "admin-1", Summary: "PARTIAL"},
		}, int64(1), nil)

		res, total, err := svc.List(ctx, 42, audit.ListQuery{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, res, 1)
		assert.Equal(t, id.String(), res[0].ID)
	})

	t.Run("offset from page", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		repo.EXPECT().FindAllByCompany(ctx, int64(42), audit.KindCreditsAllocated, 20, 10).Return(nil, int64(25), nil)

		res, total, err := svc.List(ctx, 42, audit.ListQuery{Kind: audit.KindCreditsAllocated, Page: 3, Limit: 10})
		require.NoError(t, err)
		assert.Empty(t, res)
		assert.Equal(t, int64(25), total)
	})

	t.Run("repository failure", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		repo.EXPECT().FindAllByCompany(ctx, int64(42), "", 0, 20).Return(nil, int64(0), errors.New("boom"))

		_, _, err := svc.List(ctx, 42, audit.ListQuery{})
		assert.ErrorIs(t, err, apperror.ErrInternal)
	})
}

func TestFromCreditsAllocated(t *testing.T) {
	e := audit.FromCreditsAllocated("evt-2", events.CreditsAllocatedEvent{
		CompanyID:      7,
		ActorID:        "admin-1",
		Outcome:        "PARTIAL",
		CreditsPerUser: 100,
		ExpireDate:     "2025-03-31",
		SuccessCount:   3,
		FailedCount:    2,
		FailedUserIDs:  []string{"u-4", "u-5"},
	}, nil)

	assert.Equal(t, audit.KindCreditsAllocated, e.Kind)
	assert.Equal(t, "PARTIAL: 100 credits each, 3 succeeded, 2 failed, expires 2025-03-31 [failed: u-4, u-5]", e.Summary)
	assert.False(t, e.OccurredAt.IsZero())
}
