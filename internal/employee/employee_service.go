package employee

import (
	"context"

	"github.com/sampita/companytree/internal/account"
	"github.com/sampita/companytree/internal/authz"
	"github.com/sampita/companytree/internal/shared/contextutil"
	"github.com/sampita/companytree/internal/tenant"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, accountID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, companyID, id string) (EmployeeResponse, error)
	List(ctx context.Context, companyID string, q tenant.ListQuery) ([]EmployeeResponse, error)
	Directory(ctx context.Context, companyID string) ([]DirectoryEntry, error)
	Update(ctx context.Context, accountID, id string, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, accountID, id string) error
}

type service struct {
	db       *gorm.DB
	repo     Repository
	accounts account.Repository
	guard    authz.Guard
	sf       *singleflight.Group
	logger   *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	accounts account.Repository,
	guard authz.Guard,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		accounts: accounts,
		guard:    guard,
		sf:       &singleflight.Group{},
		logger:   l,
	}
}

// Create provisions the account and the employee row in one transaction so a
// failed employee insert never leaves an orphan account behind.
func (s *service) Create(
	ctx context.Context,
	accountID string,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("username", req.Username),
	)

	caller, err := s.guard.RequireAdmin(ctx, accountID)
	if err != nil {
		return EmployeeResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("create employee hash password failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	acc := &account.Account{
		ID:        uuid.New(),
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hashed),
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	hobbies := make([]EmployeeHobby, len(req.Hobbies))
	empl := &Employee{
		ID:           uuid.New(),
		AccountID:    acc.ID,
		CompanyID:    caller.CompanyID,
		DepartmentID: uuidPtr(req.DepartmentID),
		SupervisorID: uuidPtr(req.SupervisorID),
		Position:     req.Position,
		Location:     req.Location,
		Bio:          req.Bio,
		ImageURL:     req.ImageURL,
		Tasks:        req.Tasks,
		Phone:        req.Phone,
		Slack:        req.Slack,
		IsAdmin:      req.IsAdmin,
	}
	for i, h := range req.Hobbies {
		hobbies[i] = EmployeeHobby{
			ID:         uuid.New(),
			EmployeeID: empl.ID,
			Hobby:      h,
		}
	}
	empl.Hobbies = hobbies

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.accounts.WithTx(tx).Create(ctx, acc); err != nil {
			return err
		}
		return s.repo.WithTx(tx).Create(ctx, empl)
	})
	if err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("account_id", acc.ID.String()),
	)

	return mapToResponse(*empl), nil
}

// Get scopes by id and caller company; an id that exists in another company
// reads as not found.
func (s *service) Get(ctx context.Context, companyID, id string) (EmployeeResponse, error) {
	empl, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		s.logger.Error("get employee failed",
			zap.String("company_id", companyID),
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) List(
	ctx context.Context,
	companyID string,
	q tenant.ListQuery,
) ([]EmployeeResponse, error) {
	empls, err := s.repo.List(ctx, companyID, q)
	if err != nil {
		s.logger.Error("list employees failed", zap.String("company_id", companyID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

// Directory serves the join read path. Concurrent identical reads for the
// same company collapse into one query.
func (s *service) Directory(ctx context.Context, companyID string) ([]DirectoryEntry, error) {
	v, err, _ := s.sf.Do("directory:"+companyID, func() (any, error) {
		entries, err := s.repo.Directory(ctx, companyID)
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		return entries, nil
	})
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("directory read failed",
			zap.String("company_id", companyID),
			zap.Error(err),
		)
		return nil, err
	}

	return v.([]DirectoryEntry), nil
}

func (s *service) Update(
	ctx context.Context,
	accountID, id string,
	req UpdateEmployeeRequest,
) error {
	caller, err := s.guard.RequireAdmin(ctx, accountID)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		empl, err := qtx.FindByIDAndCompany(ctx, caller.CompanyID.String(), id)
		if err != nil {
			return err
		}

		// Full overwrite, no partial-patch semantics
		empl.DepartmentID = uuidPtr(req.DepartmentID)
		empl.SupervisorID = uuidPtr(req.SupervisorID)
		empl.Position = req.Position
		empl.Location = req.Location
		empl.Bio = req.Bio
		empl.ImageURL = req.ImageURL
		empl.Tasks = req.Tasks
		empl.Phone = req.Phone
		empl.Slack = req.Slack
		empl.IsAdmin = req.IsAdmin

		if err := qtx.Update(ctx, empl); err != nil {
			return err
		}
		return qtx.ReplaceHobbies(ctx, empl.ID, req.Hobbies)
	})
	if err != nil {
		s.logger.Error("update employee failed", zap.String("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("update employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) Delete(ctx context.Context, accountID, id string) error {
	caller, err := s.guard.RequireAdmin(ctx, accountID)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Delete(ctx, caller.CompanyID.String(), id)
	})
	if err != nil {
		s.logger.Error("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	hobbies := make([]string, len(empl.Hobbies))
	for i, h := range empl.Hobbies {
		hobbies[i] = h.Hobby
	}

	return EmployeeResponse{
		ID:           empl.ID.String(),
		AccountID:    empl.AccountID.String(),
		CompanyID:    empl.CompanyID.String(),
		DepartmentID: uuidToString(empl.DepartmentID),
		SupervisorID: uuidToString(empl.SupervisorID),
		Position:     empl.Position,
		Location:     empl.Location,
		Bio:          empl.Bio,
		ImageURL:     empl.ImageURL,
		Tasks:        empl.Tasks,
		Phone:        empl.Phone,
		Slack:        empl.Slack,
		IsAdmin:      empl.IsAdmin,
		Hobbies:      hobbies,
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}

func uuidPtr(v string) *uuid.UUID {
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}

func uuidToString(v *uuid.UUID) string {
	if v == nil {
		return ""
	}
	return v.String()
}
