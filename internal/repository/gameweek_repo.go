package repository

import (
	"context"
	"time"

	"PredictAdmin/internal/model"

	"gorm.io/gorm"
)

// GameweekView 比赛周列表行，附带赛季名与联赛名（任一引用为空时对应名称为 nil）
type GameweekView struct {
	ID                   uint64               `json:"id"`
	SeasonID             *uint64              `json:"seasonId"`
	WeekNumber           int                  `json:"weekNumber"`
	Name                 string               `json:"name"`
	StartDate            time.Time            `json:"startDate"`
	EndDate              time.Time            `json:"endDate"`
	RegistrationDeadline time.Time            `json:"registrationDeadline"`
	IsActive             bool                 `json:"isActive"`
	IsClosed             bool                 `json:"isClosed"`
	IsFinished           bool                 `json:"isFinished"`
	Status               model.GameweekStatus `gorm:"-" json:"status"`
	SeasonName           *string              `json:"seasonName"`
	LeagueName           *string              `json:"leagueName"`
}

// GameweekRepository 比赛周仓储
type GameweekRepository interface {
	Create(ctx context.Context, gw *model.Gameweek) error
	GetByID(ctx context.Context, id uint64) (*model.Gameweek, error)
	// ListWithSeason gameweeks LEFT JOIN seasons LEFT JOIN leagues；seasonID 非空时按赛季过滤
	ListWithSeason(ctx context.Context, seasonID *uint64) ([]*GameweekView, error)
	Update(ctx context.Context, id uint64, fields map[string]interface{}) (*model.Gameweek, error)
	// UpdateLocked 锁定当前行后由 merge 计算更新字段，标志位的校验与写入在同一事务内完成
	UpdateLocked(ctx context.Context, id uint64, merge func(current *model.Gameweek) (map[string]interface{}, error)) (*model.Gameweek, error)
}

type gameweekRepository struct {
	db *gorm.DB
}

// NewGameweekRepository 创建比赛周仓储
func NewGameweekRepository(db *gorm.DB) GameweekRepository {
	return &gameweekRepository{db: db}
}

func (r *gameweekRepository) Create(ctx context.Context, gw *model.Gameweek) error {
	return r.db.WithContext(ctx).Create(gw).Error
}

func (r *gameweekRepository) GetByID(ctx context.Context, id uint64) (*model.Gameweek, error) {
	return getByID[model.Gameweek](ctx, r.db, id)
}

func (r *gameweekRepository) ListWithSeason(ctx context.Context, seasonID *uint64) ([]*GameweekView, error) {
	db := r.db.WithContext(ctx).Table("gameweeks").
		Select("gameweeks.id, gameweeks.season_id, gameweeks.week_number, gameweeks.name, " +
			"gameweeks.start_date, gameweeks.end_date, gameweeks.registration_deadline, " +
			"gameweeks.is_active, gameweeks.is_closed, gameweeks.is_finished, " +
			"seasons.name AS season_name, leagues.name AS league_name").
		Joins("LEFT JOIN seasons ON seasons.id = gameweeks.season_id").
		Joins("LEFT JOIN leagues ON leagues.id = seasons.league_id")
	if seasonID != nil {
		db = db.Where("gameweeks.season_id = ?", *seasonID)
	}
	var list []*GameweekView
	if err := db.Order("gameweeks.id ASC").Scan(&list).Error; err != nil {
		return nil, err
	}
	for _, v := range list {
		v.Status = model.GameweekStatusOf(v.IsActive, v.IsClosed, v.IsFinished)
	}
	return list, nil
}

func (r *gameweekRepository) Update(ctx context.Context, id uint64, fields map[string]interface{}) (*model.Gameweek, error) {
	return updateByID[model.Gameweek](ctx, r.db, id, fields)
}

func (r *gameweekRepository) UpdateLocked(ctx context.Context, id uint64, merge func(current *model.Gameweek) (map[string]interface{}, error)) (*model.Gameweek, error) {
	return updateLocked[model.Gameweek](ctx, r.db, id, merge)
}
