package company

import (
	"context"

	"github.com/sampita/companytree/internal/tenant"

	"gorm.io/gorm"
)

// listResolver: companies are searched and limit-ordered by name; the list
// fallback stays global while retrieve stays caller-scoped (source behavior).
var listResolver = tenant.Resolver{
	SearchColumn: "name",
	LimitOrder:   "name ASC",
	DefaultOrder: "name ASC",
	CompanyScope: false,
}

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, comp *Company) error
	GetByID(ctx context.Context, id string) (*Company, error)
	List(ctx context.Context, companyID string, q tenant.ListQuery) ([]Company, error)
	Update(ctx context.Context, comp *Company) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, comp *Company) error {
	return r.db.WithContext(ctx).Create(comp).Error
}

func (r *repository) GetByID(ctx context.Context, id string) (*Company, error) {
	var comp Company
	err := r.db.WithContext(ctx).First(&comp, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &comp, nil
}

func (r *repository) List(ctx context.Context, companyID string, q tenant.ListQuery) ([]Company, error) {
	var comps []Company
	err := r.db.WithContext(ctx).
		Scopes(listResolver.Apply(q, companyID)).
		Find(&comps).Error
	return comps, err
}

func (r *repository) Update(ctx context.Context, comp *Company) error {
	return r.db.WithContext(ctx).Save(comp).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Company{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	// gorm reports a zero-row delete as success; the caller needs a 404
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
