package department

import (
	"context"

	"github.com/sampita/companytree/internal/authz"
	"github.com/sampita/companytree/internal/shared/contextutil"
	"github.com/sampita/companytree/internal/tenant"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, accountID string, req CreateDepartmentRequest) (DepartmentResponse, error)
	Get(ctx context.Context, id string) (DepartmentResponse, error)
	List(ctx context.Context, companyID string, q tenant.ListQuery) ([]DepartmentResponse, error)
	Update(ctx context.Context, accountID, id string, req UpdateDepartmentRequest) error
	Delete(ctx context.Context, accountID, id string) error
}

type service struct {
	repo   Repository
	guard  authz.Guard
	logger *zap.Logger
}

func NewService(repo Repository, guard authz.Guard, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{repo: repo, guard: guard, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	accountID string,
	req CreateDepartmentRequest,
) (DepartmentResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create department requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
	)

	if _, err := s.guard.RequireAdmin(ctx, accountID); err != nil {
		return DepartmentResponse{}, err
	}

	dept := &Department{
		ID:       uuid.New(),
		Name:     req.Name,
		ColorHex: req.ColorHex,
	}

	if err := s.repo.Create(ctx, dept); err != nil {
		s.logger.Error("create department persist failed", zap.String("request_id", rid), zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create department success",
		zap.String("request_id", rid),
		zap.String("department_id", dept.ID.String()),
	)

	return mapToResponse(*dept), nil
}

func (s *service) Get(ctx context.Context, id string) (DepartmentResponse, error) {
	dept, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("get department failed", zap.String("department_id", id), zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*dept), nil
}

func (s *service) List(
	ctx context.Context,
	companyID string,
	q tenant.ListQuery,
) ([]DepartmentResponse, error) {
	depts, err := s.repo.List(ctx, companyID, q)
	if err != nil {
		s.logger.Error("list departments failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(depts), nil
}

func (s *service) Update(
	ctx context.Context,
	accountID, id string,
	req UpdateDepartmentRequest,
) error {
	if _, err := s.guard.RequireAdmin(ctx, accountID); err != nil {
		return err
	}

	dept, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("update department fetch failed", zap.String("department_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	// Full overwrite, no partial-patch semantics
	dept.Name = req.Name
	dept.ColorHex = req.ColorHex

	if err := s.repo.Update(ctx, dept); err != nil {
		s.logger.Error("update department persist failed", zap.String("department_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("update department success", zap.String("department_id", id))
	return nil
}

func (s *service) Delete(ctx context.Context, accountID, id string) error {
	if _, err := s.guard.RequireAdmin(ctx, accountID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete department failed", zap.String("department_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete department success", zap.String("department_id", id))
	return nil
}

func mapToResponse(dept Department) DepartmentResponse {
	return DepartmentResponse{
		ID:       dept.ID.String(),
		Name:     dept.Name,
		ColorHex: dept.ColorHex,
	}
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}
