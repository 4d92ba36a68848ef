package app

import (
	"database/sql"

	"jample-admin/internal/audit"
	"jample-admin/internal/auth"
	"jample-admin/internal/backend"
	"jample-admin/internal/config"
	"jample-admin/internal/credit"
	"jample-admin/internal/dashboard"
	"jample-admin/internal/employee"
	"jample-admin/internal/group"
	"jample-admin/internal/messaging/kafka"
	"jample-admin/internal/middleware"
	"jample-admin/internal/rbac"
	"jample-admin/internal/rbac/infra"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	gateway := backend.NewClient(cfg.GraphQLEndpoint, cfg.GraphQLTimeout, logger)

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	authRepo := auth.NewRepository(gateway)
	employeeRepo := employee.NewRepository(gateway)
	creditRepo := credit.NewRepository(gateway)
	groupRepo := group.NewRepository(gateway)
	auditRepo := audit.NewRepository(gormDB)
	dashboardRepo := dashboard.NewRepository(gateway)
	outboxRepo := kafka.NewOutboxRepository(db)
	sessions := auth.NewSessionStore(rdb)

	// --- RBAC Core ---
	if err := gormDB.AutoMigrate(rbac.Models()...); err != nil {
		return err
	}
	enforcer, err := infra.NewEnforcer(cfg.RBACModelPath)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)

	// --- Services ---
	authService := auth.NewService(authRepo, sessions, rbacService, auth.Options{
		Secret: cfg.JWTSecret,
		Expiry: cfg.JWTExpiry,
	}, logger)
	employeeService := employee.NewService(db, employeeRepo, outboxRepo, rdb, employee.Options{
		Location: cfg.Location,
		CacheTTL: cfg.EmployeeCacheTTL,
	}, logger)
	creditService := credit.NewService(db, creditRepo, outboxRepo, rdb, credit.Options{
		Location: cfg.Location,
		CacheTTL: cfg.CreditCacheTTL,
	}, logger)
	groupService := group.NewService(groupRepo, rdb, cfg.EmployeeCacheTTL, logger)
	auditService := audit.NewService(auditRepo, logger)
	dashboardService := dashboard.NewService(dashboardRepo, rdb, cfg.DashboardCacheTTL, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cfg.SecureCookies, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	creditHandler := credit.NewHandlerWithRedis(creditService, rdb, logger)
	groupHandler := group.NewHandler(groupService, logger)
	auditHandler := audit.NewHandler(auditService, logger)
	dashboardHandler := dashboard.NewHandler(dashboardService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	authMiddleware := middleware.AuthMiddleware(cfg.JWTSecret)
	sessionMiddleware := middleware.BackendSession(sessions)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, authMiddleware)
		employee.RegisterRoutes(api, employeeHandler, rbacService, authMiddleware, sessionMiddleware, logger)
		credit.RegisterRoutes(api, creditHandler, rbacService, authMiddleware, sessionMiddleware, logger, rdb)
		group.RegisterRoutes(api, groupHandler, rbacService, authMiddleware, sessionMiddleware, logger)
		audit.RegisterRoutes(api, auditHandler, rbacService, authMiddleware, sessionMiddleware, logger)
		dashboard.RegisterRoutes(api, dashboardHandler, rbacService, authMiddleware, sessionMiddleware, logger)
		rbac.RegisterRoutes(api, rbacHandler, rbacService, authMiddleware, logger)
	}

	return nil
}
