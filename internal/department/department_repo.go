package department

import (
	"context"

	"github.com/sampita/companytree/internal/tenant"

	"gorm.io/gorm"
)

var listResolver = tenant.Resolver{
	SearchColumn: "name",
	LimitOrder:   "name ASC",
	DefaultOrder: "name ASC",
	CompanyScope: false,
}

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, dept *Department) error
	GetByID(ctx context.Context, id string) (*Department, error)
	List(ctx context.Context, companyID string, q tenant.ListQuery) ([]Department, error)
	Update(ctx context.Context, dept *Department) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *repository) GetByID(ctx context.Context, id string) (*Department, error) {
	var dept Department
	err := r.db.WithContext(ctx).First(&dept, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *repository) List(ctx context.Context, companyID string, q tenant.ListQuery) ([]Department, error) {
	var depts []Department
	err := r.db.WithContext(ctx).
		Scopes(listResolver.Apply(q, companyID)).
		Find(&depts).Error
	return depts, err
}

func (r *repository) Update(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Save(dept).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Department{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
