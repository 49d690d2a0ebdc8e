package account

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=account_repo.go -destination=mock/account_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, acc *Account) error
	GetByUsername(ctx context.Context, username string) (*Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Account, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the repository to a transaction so account writes commit
// atomically with the employee row they belong to.
func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, acc *Account) error {
	return r.db.WithContext(ctx).Create(acc).Error
}

func (r *repository) GetByUsername(ctx context.Context, username string) (*Account, error) {
	var acc Account
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&acc).Error
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	var acc Account
	err := r.db.WithContext(ctx).First(&acc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &acc, nil
}
