package rbac

import (
	"sync"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadCompanyPolicy(companyID string) error
	Enforce(req EnforceRequest) (bool, error)
	RolesForUser(userID, companyID string) ([]string, error)
	ListRoles(companyID string) ([]RoleResponse, error)
	ListPermissions() ([]PermissionResponse, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

func (s *service) LoadCompanyPolicy(companyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadCompanyPolicyUnlocked(companyID)
}

// loadCompanyPolicyUnlocked replaces the enforcer's policy with one
// company's roles. The enforcer only ever holds a single company.
func (s *service) loadCompanyPolicyUnlocked(companyID string) error {
	s.enforcer.ClearPolicy()

	bindings, err := s.repo.Bindings(companyID)
	if err != nil {
		return err
	}
	for _, b := range bindings {
		if _, err := s.enforcer.AddGroupingPolicy(b.UserID, b.RoleID, companyID); err != nil {
			return err
		}
	}

	grants, err := s.repo.Grants(companyID)
	if err != nil {
		return err
	}
	for _, g := range grants {
		if _, err := s.enforcer.AddPolicy(g.RoleID, companyID, g.Resource, g.Action); err != nil {
			return err
		}
	}

	s.logger.Debug("rbac policy loaded",
		zap.String("company_id", companyID),
		zap.Int("bindings", len(bindings)),
		zap.Int("grants", len(grants)),
	)
	return nil
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadCompanyPolicyUnlocked(req.CompanyID); err != nil {
		return false, err
	}

	allowed, err := s.enforcer.Enforce(req.UserID, req.CompanyID, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("user_id", req.UserID),
			zap.String("company_id", req.CompanyID),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("user_id", req.UserID),
		zap.String("company_id", req.CompanyID),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
		zap.Strings("roles", s.enforcer.GetRolesForUserInDomain(req.UserID, req.CompanyID)),
	)
	return allowed, nil
}

// RolesForUser returns the role ids bound to an admin in one company.
func (s *service) RolesForUser(userID, companyID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadCompanyPolicyUnlocked(companyID); err != nil {
		return nil, err
	}
	return s.enforcer.GetRolesForUserInDomain(userID, companyID), nil
}

func (s *service) ListRoles(companyID string) ([]RoleResponse, error) {
	roles, err := s.repo.Roles(companyID)
	if err != nil {
		return nil, err
	}
	grants, err := s.repo.Grants(companyID)
	if err != nil {
		return nil, err
	}

	byRole := make(map[string][]string, len(roles))
	for _, g := range grants {
		byRole[g.RoleID] = append(byRole[g.RoleID], g.Key())
	}

	out := make([]RoleResponse, 0, len(roles))
	for _, r := range roles {
		perms := byRole[r.ID]
		if perms == nil {
			perms = []string{}
		}
		out = append(out, RoleResponse{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Permissions: perms,
		})
	}
	return out, nil
}

func (s *service) ListPermissions() ([]PermissionResponse, error) {
	perms, err := s.repo.Permissions()
	if err != nil {
		return nil, err
	}
	out := make([]PermissionResponse, len(perms))
	for i, p := range perms {
		out[i] = PermissionResponse{
			ID:       p.ID,
			Key:      Grant{Resource: p.Resource, Action: p.Action}.Key(),
			Resource: p.Resource,
			Action:   p.Action,
			Label:    p.Label,
			Category: p.Category,
		}
	}
	return out, nil
}
