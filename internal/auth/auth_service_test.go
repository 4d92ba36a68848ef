package auth_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"jample-admin/internal/auth"
	autherrors "jample-admin/internal/auth/errors"
	authMock "jample-admin/internal/auth/mock"
	"jample-admin/internal/backend"
	rbacMock "jample-admin/internal/rbac/mock"
	"jample-admin/internal/shared/apperror"

	"github.com/go-redis/redismock/v9"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "test-secret"

var issuedAt = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

type serviceDeps struct {
	repo      *authMock.MockRepository
	rbac      *rbacMock.MockService
	redisMock redismock.ClientMock
	svc       auth.Service
}

func setupServiceTest(t *testing.T) serviceDeps {
	ctrl := gomock.NewController(t)
	rdb, redisMock := redismock.NewClientMock()
	t.Cleanup(func() { rdb.Close() })

	repo := authMock.NewMockRepository(ctrl)
	rbacSvc := rbacMock.NewMockService(ctrl)
	svc := auth.NewService(repo, auth.NewSessionStore(rdb), rbacSvc, auth.Options{
		Secret: testSecret,
		Expiry: time.Hour,
		Clock:  func() time.Time { return issuedAt },
	})
	return serviceDeps{repo: repo, rbac: rbacSvc, redisMock: redisMock, svc: svc}
}

func TestAuthService_Login(t *testing.T) {
	t.Run("issues token and stores session", func(t *testing.T) {
		d := setupServiceTest(t)
		d.repo.EXPECT().Authenticate(gomock.Any(), "admin@acme.io", "pw").Return(backend.LoginResult{
			Token: "backend-token",
			User:  backend.User{UserID: "u-1", CompanyID: 42},
		}, nil)
		d.rbac.EXPECT().RolesForUser("u-1", "42").Return([]string{"role-admin"}, nil)

		d.redisMock.Regexp().ExpectSet(`^session:[0-9a-f-]{36}$`, `.*"backend_token":"backend-token".*`, time.Hour).SetVal("OK")

		res, err := d.svc.Login(context.Background(), "admin@acme.io", "pw")
		require.NoError(t, err)
		assert.Equal(t, issuedAt.Add(time.Hour), res.ExpiresAt)
		assert.Equal(t, auth.AuthResponse{UserID: "u-1", CompanyID: 42, Email: "admin@acme.io", Role: "role-admin"}, res.User)

		token, err := jwt.Parse(res.AccessToken, func(*jwt.Token) (interface{}, error) {
			return []byte(testSecret), nil
		}, jwt.WithoutClaimsValidation())
		require.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, "u-1", claims["user_id"])
		assert.Equal(t, "42", claims["company_id"])
		assert.Equal(t, "role-admin", claims["role"])
		assert.NotEmpty(t, claims["sid"])
		assert.NoError(t, d.redisMock.ExpectationsWereMet())
	})

	t.Run("backend refusal is invalid credentials", func(t *testing.T) {
		d := setupServiceTest(t)
		d.repo.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(backend.LoginResult{}, errors.Join(backend.ErrRejected, errors.New("graphql: bad password")))

		_, err := d.svc.Login(context.Background(), "admin@acme.io", "wrong")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("transport failure is a backend error", func(t *testing.T) {
		d := setupServiceTest(t)
		d.repo.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(backend.LoginResult{}, errors.New("dial tcp: connection refused"))

		_, err := d.svc.Login(context.Background(), "admin@acme.io", "pw")
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeBackendError, appErr.Code)
	})

	t.Run("missing role still logs in without one", func(t *testing.T) {
		d := setupServiceTest(t)
		d.repo.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(backend.LoginResult{
			Token: "t", User: backend.User{UserID: "u-2", CompanyID: 7},
		}, nil)
		d.rbac.EXPECT().RolesForUser("u-2", "7").Return(nil, errors.New("policy unavailable"))
		d.redisMock.Regexp().ExpectSet(`^session:`, `.*`, time.Hour).SetVal("OK")

		res, err := d.svc.Login(context.Background(), "ops@acme.io", "pw")
		require.NoError(t, err)
		assert.Empty(t, res.User.Role)
	})

	t.Run("session store failure", func(t *testing.T) {
		d := setupServiceTest(t)
		d.repo.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(backend.LoginResult{
			Token: "t", User: backend.User{UserID: "u-1", CompanyID: 42},
		}, nil)
		d.rbac.EXPECT().RolesForUser("u-1", "42").Return([]string{"role-admin"}, nil)
		d.redisMock.Regexp().ExpectSet(`^session:`, `.*`, time.Hour).SetErr(errors.New("redis down"))

		_, err := d.svc.Login(context.Background(), "admin@acme.io", "pw")
		assert.ErrorIs(t, err, apperror.ErrInternal)
	})
}

func TestAuthService_GetMe(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		d := setupServiceTest(t)
		raw, _ := json.Marshal(auth.SessionRecord{UserID: "u-1", CompanyID: 42, Email: "a@b.io", Role: "role-admin", BackendToken: "t"})
		d.redisMock.ExpectGet(auth.GetSessionKey("sid-1")).SetVal(string(raw))

		me, err := d.svc.GetMe(context.Background(), "sid-1")
		require.NoError(t, err)
		assert.Equal(t, "role-admin", me.Role)
		assert.Equal(t, int64(42), me.CompanyID)
	})

	t.Run("expired", func(t *testing.T) {
		d := setupServiceTest(t)
		d.redisMock.ExpectGet(auth.GetSessionKey("sid-1")).SetErr(redis.Nil)

		_, err := d.svc.GetMe(context.Background(), "sid-1")
		assert.ErrorIs(t, err, autherrors.ErrSessionExpired)
	})

	t.Run("redis failure", func(t *testing.T) {
		d := setupServiceTest(t)
		d.redisMock.ExpectGet(auth.GetSessionKey("sid-1")).SetErr(errors.New("timeout"))

		_, err := d.svc.GetMe(context.Background(), "sid-1")
		assert.ErrorIs(t, err, apperror.ErrInternal)
	})
}

func TestAuthService_Logout(t *testing.T) {
	d := setupServiceTest(t)
	d.redisMock.ExpectDel(auth.GetSessionKey("sid-1")).SetVal(1)

	require.NoError(t, d.svc.Logout(context.Background(), "sid-1"))
	require.NoError(t, d.svc.Logout(context.Background(), ""))
	assert.NoError(t, d.redisMock.ExpectationsWereMet())
}

func TestSessionStore_Token(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()
	defer rdb.Close()
	store := auth.NewSessionStore(rdb)

	raw, _ := json.Marshal(auth.SessionRecord{UserID: "u-1", BackendToken: "backend-token"})
	redisMock.ExpectGet(auth.GetSessionKey("sid-1")).SetVal(string(raw))
	redisMock.ExpectGet(auth.GetSessionKey("sid-2")).SetVal("{broken")

	token, err := store.Token(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.Equal(t, "backend-token", token)

	_, err = store.Token(context.Background(), "sid-2")
	assert.ErrorIs(t, err, autherrors.ErrSessionExpired)

	_, err = store.Token(context.Background(), "")
	assert.ErrorIs(t, err, autherrors.ErrSessionExpired)
}
