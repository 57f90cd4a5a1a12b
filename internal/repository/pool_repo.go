package repository

import (
	"context"
	"errors"

	"PredictAdmin/internal/model"

	"gorm.io/gorm"
)

// PoolRepository 奖池仓储
type PoolRepository interface {
	Create(ctx context.Context, pool *model.Pool) error
	GetByID(ctx context.Context, id uint64) (*model.Pool, error)
	// GetByGameweek 比赛周没有奖池时返回 (nil, nil)
	GetByGameweek(ctx context.Context, gameweekID uint64) (*model.Pool, error)
	List(ctx context.Context, gameweekID *uint64) ([]*model.Pool, error)
	Update(ctx context.Context, id uint64, fields map[string]interface{}) (*model.Pool, error)
}

type poolRepository struct {
	db *gorm.DB
}

// NewPoolRepository 创建奖池仓储
func NewPoolRepository(db *gorm.DB) PoolRepository {
	return &poolRepository{db: db}
}

func (r *poolRepository) Create(ctx context.Context, pool *model.Pool) error {
	return r.db.WithContext(ctx).Create(pool).Error
}

func (r *poolRepository) GetByID(ctx context.Context, id uint64) (*model.Pool, error) {
	return getByID[model.Pool](ctx, r.db, id)
}

func (r *poolRepository) GetByGameweek(ctx context.Context, gameweekID uint64) (*model.Pool, error) {
	var p model.Pool
	err := r.db.WithContext(ctx).Where("gameweek_id = ?", gameweekID).Order("id ASC").First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *poolRepository) List(ctx context.Context, gameweekID *uint64) ([]*model.Pool, error) {
	db := r.db.WithContext(ctx).Model(&model.Pool{})
	if gameweekID != nil {
		db = db.Where("gameweek_id = ?", *gameweekID)
	}
	var list []*model.Pool
	if err := db.Order("id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *poolRepository) Update(ctx context.Context, id uint64, fields map[string]interface{}) (*model.Pool, error) {
	return updateByID[model.Pool](ctx, r.db, id, fields)
}
