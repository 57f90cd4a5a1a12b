package repository

import (
	"context"

	"PredictAdmin/internal/model"

	"gorm.io/gorm"
)

// LeagueRepository 联赛仓储
type LeagueRepository interface {
	Create(ctx context.Context, league *model.League) error
	GetByID(ctx context.Context, id uint64) (*model.League, error)
	List(ctx context.Context) ([]*model.League, error)
	Update(ctx context.Context, id uint64, fields map[string]interface{}) (*model.League, error)
}

type leagueRepository struct {
	db *gorm.DB
}

// NewLeagueRepository 创建联赛仓储
func NewLeagueRepository(db *gorm.DB) LeagueRepository {
	return &leagueRepository{db: db}
}

func (r *leagueRepository) Create(ctx context.Context, league *model.League) error {
	return r.db.WithContext(ctx).Create(league).Error
}

func (r *leagueRepository) GetByID(ctx context.Context, id uint64) (*model.League, error) {
	return getByID[model.League](ctx, r.db, id)
}

func (r *leagueRepository) List(ctx context.Context) ([]*model.League, error) {
	var list []*model.League
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *leagueRepository) Update(ctx context.Context, id uint64, fields map[string]interface{}) (*model.League, error) {
	return updateByID[model.League](ctx, r.db, id, fields)
}
