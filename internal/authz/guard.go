package authz

import (
	"context"
	"errors"

	"github.com/sampita/companytree/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Caller is the employee record behind the authenticated account, resolved
// fresh from the store on every check. The admin flag is never trusted from
// the token.
type Caller struct {
	EmployeeID uuid.UUID
	CompanyID  uuid.UUID
	IsAdmin    bool
}

//go:generate mockgen -source=guard.go -destination=mock/guard_mock.go -package=mock
type Guard interface {
	Caller(ctx context.Context, accountID string) (Caller, error)
	RequireAdmin(ctx context.Context, accountID string) (Caller, error)
}

type guard struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewGuard(db *gorm.DB, logger ...*zap.Logger) Guard {
	l := zap.L().Named("authz.guard")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("authz.guard")
	}
	return &guard{db: db, logger: l}
}

type callerRow struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	IsAdmin   bool
}

// Caller resolves the employee linked to the account. An account without an
// employee row is an authorization failure, not a lookup miss.
func (g *guard) Caller(ctx context.Context, accountID string) (Caller, error) {
	var row callerRow
	err := g.db.WithContext(ctx).
		Table("employees").
		Select("id", "company_id", "is_admin").
		Where("account_id = ?", accountID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			g.logger.Warn("account has no linked employee", zap.String("account_id", accountID))
			return Caller{}, apperror.ErrUnauthorized
		}
		g.logger.Error("resolve caller failed", zap.String("account_id", accountID), zap.Error(err))
		return Caller{}, err
	}

	return Caller{
		EmployeeID: row.ID,
		CompanyID:  row.CompanyID,
		IsAdmin:    row.IsAdmin,
	}, nil
}

// RequireAdmin gates every mutating operation. Non-admin callers get an
// explicit forbidden error instead of a silent no-op.
func (g *guard) RequireAdmin(ctx context.Context, accountID string) (Caller, error) {
	caller, err := g.Caller(ctx, accountID)
	if err != nil {
		return Caller{}, err
	}

	if !caller.IsAdmin {
		g.logger.Warn("mutation denied for non-admin caller",
			zap.String("account_id", accountID),
			zap.String("employee_id", caller.EmployeeID.String()),
		)
		return Caller{}, apperror.ErrForbidden
	}

	return caller, nil
}
