package repository

import (
	"context"
	"time"

	"PredictAdmin/internal/model"

	"gorm.io/gorm"
)

// SeasonView 赛季列表行，附带联赛名称（联赛为空时 LeagueName 为 nil）
type SeasonView struct {
	ID         uint64     `json:"id"`
	LeagueID   *uint64    `json:"leagueId"`
	Name       string     `json:"name"`
	Year       int        `json:"year"`
	StartDate  *time.Time `json:"startDate"`
	EndDate    *time.Time `json:"endDate"`
	IsActive   bool       `json:"isActive"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	LeagueName *string    `json:"leagueName"`
}

// SeasonRepository 赛季仓储
type SeasonRepository interface {
	Create(ctx context.Context, season *model.Season) error
	GetByID(ctx context.Context, id uint64) (*model.Season, error)
	// ListWithLeague 左连接 leagues 取联赛名；leagueID 非空时按联赛过滤
	ListWithLeague(ctx context.Context, leagueID *uint64) ([]*SeasonView, error)
	Update(ctx context.Context, id uint64, fields map[string]interface{}) (*model.Season, error)
}

type seasonRepository struct {
	db *gorm.DB
}

// NewSeasonRepository 创建赛季仓储
func NewSeasonRepository(db *gorm.DB) SeasonRepository {
	return &seasonRepository{db: db}
}

func (r *seasonRepository) Create(ctx context.Context, season *model.Season) error {
	return r.db.WithContext(ctx).Create(season).Error
}

func (r *seasonRepository) GetByID(ctx context.Context, id uint64) (*model.Season, error) {
	return getByID[model.Season](ctx, r.db, id)
}

func (r *seasonRepository) ListWithLeague(ctx context.Context, leagueID *uint64) ([]*SeasonView, error) {
	db := r.db.WithContext(ctx).Table("seasons").
		Select("seasons.id, seasons.league_id, seasons.name, seasons.year, seasons.start_date, seasons.end_date, " +
			"seasons.is_active, seasons.created_at, seasons.updated_at, leagues.name AS league_name").
		Joins("LEFT JOIN leagues ON leagues.id = seasons.league_id")
	if leagueID != nil {
		db = db.Where("seasons.league_id = ?", *leagueID)
	}
	var list []*SeasonView
	if err := db.Order("seasons.id ASC").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *seasonRepository) Update(ctx context.Context, id uint64, fields map[string]interface{}) (*model.Season, error) {
	return updateByID[model.Season](ctx, r.db, id, fields)
}
