package repository

import (
	"context"

	"PredictAdmin/internal/model"

	"gorm.io/gorm"
)

// TeamRepository 球队仓储
type TeamRepository interface {
	Create(ctx context.Context, team *model.Team) error
	GetByID(ctx context.Context, id uint64) (*model.Team, error)
	// List leagueID 非空时只返回该联赛的球队
	List(ctx context.Context, leagueID *uint64) ([]*model.Team, error)
	Update(ctx context.Context, id uint64, fields map[string]interface{}) (*model.Team, error)
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository 创建球队仓储
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(ctx context.Context, team *model.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

func (r *teamRepository) GetByID(ctx context.Context, id uint64) (*model.Team, error) {
	return getByID[model.Team](ctx, r.db, id)
}

func (r *teamRepository) List(ctx context.Context, leagueID *uint64) ([]*model.Team, error) {
	db := r.db.WithContext(ctx).Model(&model.Team{})
	if leagueID != nil {
		db = db.Where("league_id = ?", *leagueID)
	}
	var list []*model.Team
	if err := db.Order("id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *teamRepository) Update(ctx context.Context, id uint64, fields map[string]interface{}) (*model.Team, error) {
	return updateByID[model.Team](ctx, r.db, id, fields)
}
