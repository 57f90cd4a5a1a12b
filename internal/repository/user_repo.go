package repository

import (
	"context"

	"PredictAdmin/internal/model"

	"gorm.io/gorm"
)

// UserRepository 用户仓储
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uint64) (*model.User, error)
	GetByWallet(ctx context.Context, walletAddress string) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓储
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uint64) (*model.User, error) {
	return getByID[model.User](ctx, r.db, id)
}

func (r *userRepository) GetByWallet(ctx context.Context, walletAddress string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("wallet_address = ?", walletAddress).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
