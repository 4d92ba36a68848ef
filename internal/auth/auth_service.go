package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	autherrors "jample-admin/internal/auth/errors"
	"jample-admin/internal/backend"
	"jample-admin/internal/rbac"
	"jample-admin/internal/middleware"
	"jample-admin/internal/shared/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	Logout(ctx context.Context, sid string) error
	GetMe(ctx context.Context, sid string) (AuthResponse, error)
}

type Options struct {
	Secret string
	Expiry time.Duration
	Clock  func() time.Time
}

type service struct {
	repo     Repository
	sessions SessionStore
	rbac     rbac.Service
	secret   []byte
	expiry   time.Duration
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(repo Repository, sessions SessionStore, rbacService rbac.Service, opts Options, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if opts.Expiry <= 0 {
		opts.Expiry = 12 * time.Hour
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &service{
		repo:     repo,
		sessions: sessions,
		rbac:     rbacService,
		secret:   []byte(opts.Secret),
		expiry:   opts.Expiry,
		now:      opts.Clock,
		logger:   l,
	}
}

func (s *service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	res, err := s.repo.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, backend.ErrRejected) {
			return LoginResult{}, autherrors.ErrInvalidCredentials
		}
		s.logger.Error("login backend call failed", zap.Error(err))
		return LoginResult{}, apperror.Backend(err)
	}
	if res.Token == "" || res.User.UserID == "" {
		return LoginResult{}, autherrors.ErrInvalidCredentials
	}

	role := ""
	roles, err := s.rbac.RolesForUser(res.User.UserID, strconv.FormatInt(res.User.CompanyID, 10))
	if err != nil {
		s.logger.Warn("load admin roles failed", zap.String("user_id", res.User.UserID), zap.Error(err))
	} else if len(roles) > 0 {
		role = roles[0]
	}

	issuedAt := s.now()
	sid := uuid.NewString()
	rec := SessionRecord{
		UserID:       res.User.UserID,
		CompanyID:    res.User.CompanyID,
		Email:        email,
		Role:         role,
		BackendToken: res.Token,
		IssuedAt:     issuedAt.UTC(),
	}
	if err := s.sessions.Save(ctx, sid, rec, s.expiry); err != nil {
		s.logger.Error("save session failed", zap.Error(err))
		return LoginResult{}, apperror.ErrInternal
	}

	expiresAt := issuedAt.Add(s.expiry)
	token, err := s.generateToken(rec, sid, issuedAt, expiresAt)
	if err != nil {
		return LoginResult{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("admin logged in",
		zap.String("user_id", rec.UserID),
		zap.Int64("company_id", rec.CompanyID),
		zap.String("role", role),
	)

	return LoginResult{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        toResponse(rec),
	}, nil
}

func (s *service) Logout(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sid); err != nil {
		s.logger.Error("delete session failed", zap.Error(err))
		return apperror.ErrInternal
	}
	return nil
}

func (s *service) GetMe(ctx context.Context, sid string) (AuthResponse, error) {
	rec, err := s.sessions.Get(ctx, sid)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return AuthResponse{}, err
		}
		s.logger.Error("load session failed", zap.Error(err))
		return AuthResponse{}, apperror.ErrInternal
	}
	return toResponse(rec), nil
}

func (s *service) generateToken(rec SessionRecord, sid string, issuedAt, expiresAt time.Time) (string, error) {
	claims := middleware.SessionClaims{
		UserID:    rec.UserID,
		CompanyID: strconv.FormatInt(rec.CompanyID, 10),
		SessionID: sid,
		Role:      rec.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func toResponse(rec SessionRecord) AuthResponse {
	return AuthResponse{
		UserID:    rec.UserID,
		CompanyID: rec.CompanyID,
		Email:     rec.Email,
		Role:      rec.Role,
	}
}
