package app

import (
	"github.com/sampita/companytree/internal/account"
	"github.com/sampita/companytree/internal/auth"
	"github.com/sampita/companytree/internal/authz"
	"github.com/sampita/companytree/internal/company"
	"github.com/sampita/companytree/internal/department"
	"github.com/sampita/companytree/internal/employee"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	accountRepo := account.NewRepository(db)
	companyRepo := company.NewRepository(db)
	departmentRepo := department.NewRepository(db)
	employeeRepo := employee.NewRepository(db)

	// --- Authorization Guard ---
	guard := authz.NewGuard(db, logger)

	// --- Services ---
	authService := auth.NewService(accountRepo, guard, logger)
	companyService := company.NewService(companyRepo, guard, logger)
	departmentService := department.NewService(departmentRepo, guard, logger)
	employeeService := employee.NewService(db, employeeRepo, accountRepo, guard, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, logger)
	companyHandler := company.NewHandler(companyService, logger)
	departmentHandler := department.NewHandler(departmentService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, logger)
		company.RegisterRoutes(api, companyHandler, rdb, logger)
		department.RegisterRoutes(api, departmentHandler, rdb, logger)
		employee.RegisterRoutes(api, employeeHandler, rdb, logger)
	}

	return nil
}
