package employee

import (
	"context"

	"github.com/sampita/companytree/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employees are the only company-scoped resource in the list fallback. Under
// a limit the newest rows win, matching the source's created-order listing.
var listResolver = tenant.Resolver{
	SearchColumn: "position",
	LimitOrder:   "created_at DESC",
	DefaultOrder: "created_at ASC",
	CompanyScope: true,
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, empl *Employee) error
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Employee, error)
	List(ctx context.Context, companyID string, q tenant.ListQuery) ([]Employee, error)
	Update(ctx context.Context, empl *Employee) error
	ReplaceHobbies(ctx context.Context, employeeID uuid.UUID, hobbies []string) error
	Delete(ctx context.Context, companyID, id string) error
	Directory(ctx context.Context, companyID string) ([]DirectoryEntry, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the repository so the employee row, its hobbies and the
// provisioned account commit as one unit.
func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Hobbies").
		First(&empl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) List(ctx context.Context, companyID string, q tenant.ListQuery) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Scopes(listResolver.Apply(q, companyID)).
		Preload("Hobbies").
		Find(&empls).Error
	return empls, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Omit("Hobbies").Save(empl).Error
}

func (r *repository) ReplaceHobbies(ctx context.Context, employeeID uuid.UUID, hobbies []string) error {
	if err := r.db.WithContext(ctx).
		Delete(&EmployeeHobby{}, "employee_id = ?", employeeID).Error; err != nil {
		return err
	}
	if len(hobbies) == 0 {
		return nil
	}

	rows := make([]EmployeeHobby, len(hobbies))
	for i, h := range hobbies {
		rows[i] = EmployeeHobby{
			ID:         uuid.New(),
			EmployeeID: employeeID,
			Hobby:      h,
		}
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	if err := r.db.WithContext(ctx).
		Delete(&EmployeeHobby{}, "employee_id = ?", id).Error; err != nil {
		return err
	}

	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Employee{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Directory(ctx context.Context, companyID string) ([]DirectoryEntry, error) {
	var entries []DirectoryEntry
	err := r.db.WithContext(ctx).
		Raw(directorySQL, companyID).
		Scan(&entries).Error
	return entries, err
}
