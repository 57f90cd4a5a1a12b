package service

import (
	"context"

	"PredictAdmin/internal/model"
	"PredictAdmin/internal/repository"
)

// CreateMatchRequest POST /matches
type CreateMatchRequest struct {
	GameweekID  uint64  `json:"gameweekId" validate:"required"`
	HomeTeamID  uint64  `json:"homeTeamId" validate:"required"`
	AwayTeamID  uint64  `json:"awayTeamId" validate:"required"`
	ScheduledAt string  `json:"scheduledAt" validate:"required"`
	Status      *string `json:"status" validate:"omitempty,max=20"`
}

// UpdateMatchRequest PUT /matches/:id，用于录入比分与结果
type UpdateMatchRequest struct {
	GameweekID   *uint64 `json:"gameweekId"`
	HomeTeamID   *uint64 `json:"homeTeamId"`
	AwayTeamID   *uint64 `json:"awayTeamId"`
	ScheduledAt  *string `json:"scheduledAt"`
	Status       *string `json:"status" validate:"omitempty,max=20"`
	HomeScore    *int    `json:"homeScore" validate:"omitempty,min=0"`
	AwayScore    *int    `json:"awayScore" validate:"omitempty,min=0"`
	WinnerTeamID *uint64 `json:"winnerTeamId"`
	IsDraw       *bool   `json:"isDraw"`
}

// MatchService 比赛管理
type MatchService struct {
	repo repository.MatchRepository
	opts Options
}

// NewMatchService 创建 MatchService
func NewMatchService(repo repository.MatchRepository, opts Options) *MatchService {
	return &MatchService{repo: repo, opts: opts.withDefaults()}
}

// Create 不检查比赛周是否已结束，也不要求主客队不同
func (s *MatchService) Create(ctx context.Context, req *CreateMatchRequest) (*model.Match, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}
	scheduledAt, err := parseTime("scheduledAt", req.ScheduledAt)
	if err != nil {
		return nil, err
	}
	status := model.MatchStatusScheduled
	if req.Status != nil && *req.Status != "" {
		status = *req.Status
	}
	gameweekID, homeID, awayID := req.GameweekID, req.HomeTeamID, req.AwayTeamID
	match := &model.Match{
		GameweekID:  &gameweekID,
		HomeTeamID:  &homeID,
		AwayTeamID:  &awayID,
		ScheduledAt: scheduledAt,
		Status:      status,
		Audit:       s.opts.audit(),
	}
	if err := s.repo.Create(ctx, match); err != nil {
		return nil, storeError(err, "Match", "create")
	}
	s.opts.Logger.WithField("match_id", match.ID).WithField("gameweek_id", gameweekID).Info("比赛已创建")
	return match, nil
}

func (s *MatchService) Get(ctx context.Context, id uint64) (*model.Match, error) {
	match, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Match", "get")
	}
	return match, nil
}

// ListByGameweek 某比赛周的比赛，附主客队名称
func (s *MatchService) ListByGameweek(ctx context.Context, gameweekID uint64) ([]*repository.MatchView, error) {
	list, err := s.repo.ListByGameweek(ctx, gameweekID)
	if err != nil {
		return nil, storeError(err, "Match", "list")
	}
	return list, nil
}

func (s *MatchService) Update(ctx context.Context, id uint64, req *UpdateMatchRequest) (*model.Match, error) {
	if err := firstError(checkRequest(req), nonEmpty("status", req.Status)); err != nil {
		return nil, err
	}
	fields := map[string]interface{}{}
	setIf(fields, "gameweek_id", req.GameweekID)
	setIf(fields, "home_team_id", req.HomeTeamID)
	setIf(fields, "away_team_id", req.AwayTeamID)
	setIf(fields, "status", req.Status)
	setIf(fields, "home_score", req.HomeScore)
	setIf(fields, "away_score", req.AwayScore)
	setIf(fields, "winner_team_id", req.WinnerTeamID)
	setIf(fields, "is_draw", req.IsDraw)
	if req.ScheduledAt != nil {
		t, err := parseTime("scheduledAt", *req.ScheduledAt)
		if err != nil {
			return nil, err
		}
		fields["scheduled_at"] = t
	}
	match, err := s.repo.Update(ctx, id, s.opts.touch(fields, true))
	if err != nil {
		return nil, storeError(err, "Match", "update")
	}
	return match, nil
}
