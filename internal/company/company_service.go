package company

import (
	"context"

	"github.com/sampita/companytree/internal/authz"
	"github.com/sampita/companytree/internal/shared/contextutil"
	"github.com/sampita/companytree/internal/tenant"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, accountID string, req CreateCompanyRequest) (CompanyResponse, error)
	Get(ctx context.Context, companyID string) (CompanyResponse, error)
	List(ctx context.Context, companyID string, q tenant.ListQuery) ([]CompanyResponse, error)
	Update(ctx context.Context, accountID string, req UpdateCompanyRequest) error
	Delete(ctx context.Context, accountID, id string) error
}

type service struct {
	repo   Repository
	guard  authz.Guard
	logger *zap.Logger
}

func NewService(repo Repository, guard authz.Guard, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{repo: repo, guard: guard, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	accountID string,
	req CreateCompanyRequest,
) (CompanyResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create company requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
	)

	if _, err := s.guard.RequireAdmin(ctx, accountID); err != nil {
		return CompanyResponse{}, err
	}

	comp := &Company{
		ID:   uuid.New(),
		Name: req.Name,
	}

	if err := s.repo.Create(ctx, comp); err != nil {
		s.logger.Error("create company persist failed", zap.String("request_id", rid), zap.Error(err))
		return CompanyResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create company success",
		zap.String("request_id", rid),
		zap.String("company_id", comp.ID.String()),
	)

	return mapToResponse(*comp), nil
}

// Get always returns the caller's own company; the path id is ignored by the
// handler on purpose (source behavior, see the retrieve route).
func (s *service) Get(ctx context.Context, companyID string) (CompanyResponse, error) {
	comp, err := s.repo.GetByID(ctx, companyID)
	if err != nil {
		s.logger.Error("get company failed", zap.String("company_id", companyID), zap.Error(err))
		return CompanyResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*comp), nil
}

func (s *service) List(
	ctx context.Context,
	companyID string,
	q tenant.ListQuery,
) ([]CompanyResponse, error) {
	comps, err := s.repo.List(ctx, companyID, q)
	if err != nil {
		s.logger.Error("list companies failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(comps), nil
}

// Update renames the caller's own company, not the path id.
func (s *service) Update(
	ctx context.Context,
	accountID string,
	req UpdateCompanyRequest,
) error {
	caller, err := s.guard.RequireAdmin(ctx, accountID)
	if err != nil {
		return err
	}

	comp, err := s.repo.GetByID(ctx, caller.CompanyID.String())
	if err != nil {
		s.logger.Error("update company fetch failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	comp.Name = req.Name

	if err := s.repo.Update(ctx, comp); err != nil {
		s.logger.Error("update company persist failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("update company success", zap.String("company_id", comp.ID.String()))
	return nil
}

func (s *service) Delete(ctx context.Context, accountID, id string) error {
	if _, err := s.guard.RequireAdmin(ctx, accountID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete company failed", zap.String("company_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete company success", zap.String("company_id", id))
	return nil
}

func mapToResponse(comp Company) CompanyResponse {
	return CompanyResponse{
		ID:   comp.ID.String(),
		Name: comp.Name,
	}
}

func mapToListResponse(comps []Company) []CompanyResponse {
	res := make([]CompanyResponse, len(comps))
	for i, c := range comps {
		res[i] = mapToResponse(c)
	}
	return res
}
