package service

import (
	"context"

	"PredictAdmin/internal/model"
	"PredictAdmin/internal/repository"
)

// CreateSeasonRequest POST /seasons
type CreateSeasonRequest struct {
	LeagueID  uint64  `json:"leagueId" validate:"required"`
	Name      string  `json:"name" validate:"required,max=100"`
	Year      int     `json:"year" validate:"required"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	IsActive  *bool   `json:"isActive"`
}

// UpdateSeasonRequest PUT /seasons/:id
type UpdateSeasonRequest struct {
	LeagueID  *uint64 `json:"leagueId"`
	Name      *string `json:"name" validate:"omitempty,max=100"`
	Year      *int    `json:"year"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	IsActive  *bool   `json:"isActive"`
}

// SeasonService 赛季管理
type SeasonService struct {
	repo repository.SeasonRepository
	opts Options
}

// NewSeasonService 创建 SeasonService
func NewSeasonService(repo repository.SeasonRepository, opts Options) *SeasonService {
	return &SeasonService{repo: repo, opts: opts.withDefaults()}
}

func (s *SeasonService) Create(ctx context.Context, req *CreateSeasonRequest) (*model.Season, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}
	start, err := parseOptionalTime("startDate", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseOptionalTime("endDate", req.EndDate)
	if err != nil {
		return nil, err
	}
	leagueID := req.LeagueID
	season := &model.Season{
		LeagueID:  &leagueID,
		Name:      req.Name,
		Year:      req.Year,
		StartDate: start,
		EndDate:   end,
		IsActive:  boolOr(req.IsActive, true),
		Audit:     s.opts.audit(),
	}
	if err := s.repo.Create(ctx, season); err != nil {
		return nil, storeError(err, "Season", "create")
	}
	return season, nil
}

func (s *SeasonService) Get(ctx context.Context, id uint64) (*model.Season, error) {
	season, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Season", "get")
	}
	return season, nil
}

// List 赛季列表（附联赛名），leagueID 可为 nil
func (s *SeasonService) List(ctx context.Context, leagueID *uint64) ([]*repository.SeasonView, error) {
	list, err := s.repo.ListWithLeague(ctx, leagueID)
	if err != nil {
		return nil, storeError(err, "Season", "list")
	}
	return list, nil
}

func (s *SeasonService) Update(ctx context.Context, id uint64, req *UpdateSeasonRequest) (*model.Season, error) {
	if err := firstError(checkRequest(req), nonEmpty("name", req.Name)); err != nil {
		return nil, err
	}
	fields := map[string]interface{}{}
	setIf(fields, "league_id", req.LeagueID)
	setIf(fields, "name", req.Name)
	setIf(fields, "year", req.Year)
	setIf(fields, "is_active", req.IsActive)
	if req.StartDate != nil {
		t, err := parseOptionalTime("startDate", req.StartDate)
		if err != nil {
			return nil, err
		}
		fields["start_date"] = t
	}
	if req.EndDate != nil {
		t, err := parseOptionalTime("endDate", req.EndDate)
		if err != nil {
			return nil, err
		}
		fields["end_date"] = t
	}
	season, err := s.repo.Update(ctx, id, s.opts.touch(fields, true))
	if err != nil {
		return nil, storeError(err, "Season", "update")
	}
	return season, nil
}
