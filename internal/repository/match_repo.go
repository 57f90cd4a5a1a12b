package repository

import (
	"context"
	"time"

	"PredictAdmin/internal/model"

	"gorm.io/gorm"
)

// TeamRef 比赛行中的球队摘要
type TeamRef struct {
	ID        *uint64 `json:"id"`
	Name      *string `json:"name"`
	ShortName *string `json:"shortName"`
}

// MatchView 比赛列表行，主客队名称分别连接 teams 取得
type MatchView struct {
	ID           uint64    `json:"id"`
	GameweekID   *uint64   `json:"gameweekId"`
	ScheduledAt  time.Time `json:"scheduledAt"`
	Status       string    `json:"status"`
	HomeScore    *int      `json:"homeScore"`
	AwayScore    *int      `json:"awayScore"`
	IsDraw       bool      `json:"isDraw"`
	WinnerTeamID *uint64   `json:"winnerTeamId"`
	HomeTeam     TeamRef   `json:"homeTeam"`
	AwayTeam     TeamRef   `json:"awayTeam"`
}

// matchRow 扁平扫描结构，列名与 SELECT 别名一一对应
type matchRow struct {
	ID                uint64
	GameweekID        *uint64
	ScheduledAt       time.Time
	Status            string
	HomeScore         *int
	AwayScore         *int
	IsDraw            bool
	WinnerTeamID      *uint64
	HomeTeamID        *uint64
	HomeTeamName      *string
	HomeTeamShortName *string
	AwayTeamID        *uint64
	AwayTeamName      *string
	AwayTeamShortName *string
}

func (m *matchRow) view() *MatchView {
	return &MatchView{
		ID:           m.ID,
		GameweekID:   m.GameweekID,
		ScheduledAt:  m.ScheduledAt,
		Status:       m.Status,
		HomeScore:    m.HomeScore,
		AwayScore:    m.AwayScore,
		IsDraw:       m.IsDraw,
		WinnerTeamID: m.WinnerTeamID,
		HomeTeam:     TeamRef{ID: m.HomeTeamID, Name: m.HomeTeamName, ShortName: m.HomeTeamShortName},
		AwayTeam:     TeamRef{ID: m.AwayTeamID, Name: m.AwayTeamName, ShortName: m.AwayTeamShortName},
	}
}

// MatchRepository 比赛仓储
type MatchRepository interface {
	Create(ctx context.Context, match *model.Match) error
	GetByID(ctx context.Context, id uint64) (*model.Match, error)
	// ListByGameweek 只返回该比赛周的比赛，按开赛时间排序
	ListByGameweek(ctx context.Context, gameweekID uint64) ([]*MatchView, error)
	Update(ctx context.Context, id uint64, fields map[string]interface{}) (*model.Match, error)
}

type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository 创建比赛仓储
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Create(ctx context.Context, match *model.Match) error {
	return r.db.WithContext(ctx).Create(match).Error
}

func (r *matchRepository) GetByID(ctx context.Context, id uint64) (*model.Match, error) {
	return getByID[model.Match](ctx, r.db, id)
}

func (r *matchRepository) ListByGameweek(ctx context.Context, gameweekID uint64) ([]*MatchView, error) {
	var rows []*matchRow
	err := r.db.WithContext(ctx).Table("matches").
		Select("matches.id, matches.gameweek_id, matches.scheduled_at, matches.status, "+
			"matches.home_score, matches.away_score, matches.is_draw, matches.winner_team_id, "+
			"home.id AS home_team_id, home.name AS home_team_name, home.short_name AS home_team_short_name, "+
			"away.id AS away_team_id, away.name AS away_team_name, away.short_name AS away_team_short_name").
		Joins("LEFT JOIN teams AS home ON home.id = matches.home_team_id").
		Joins("LEFT JOIN teams AS away ON away.id = matches.away_team_id").
		Where("matches.gameweek_id = ?", gameweekID).
		Order("matches.scheduled_at ASC, matches.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	list := make([]*MatchView, 0, len(rows))
	for _, row := range rows {
		list = append(list, row.view())
	}
	return list, nil
}

func (r *matchRepository) Update(ctx context.Context, id uint64, fields map[string]interface{}) (*model.Match, error) {
	return updateByID[model.Match](ctx, r.db, id, fields)
}
