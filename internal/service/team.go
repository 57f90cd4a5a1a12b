package service

import (
	"context"

	"PredictAdmin/internal/model"
	"PredictAdmin/internal/repository"
)

// CreateTeamRequest POST /teams
type CreateTeamRequest struct {
	LeagueID  uint64  `json:"leagueId" validate:"required"`
	Name      string  `json:"name" validate:"required,max=100"`
	ShortName *string `json:"shortName" validate:"omitempty,max=10"`
	City      *string `json:"city" validate:"omitempty,max=100"`
	LogoImage *string `json:"logoImage"`
	IsActive  *bool   `json:"isActive"`
}

// UpdateTeamRequest PUT /teams/:id
type UpdateTeamRequest struct {
	LeagueID  *uint64 `json:"leagueId"`
	Name      *string `json:"name" validate:"omitempty,max=100"`
	ShortName *string `json:"shortName" validate:"omitempty,max=10"`
	City      *string `json:"city" validate:"omitempty,max=100"`
	LogoImage *string `json:"logoImage"`
	IsActive  *bool   `json:"isActive"`
}

// TeamService 球队管理
type TeamService struct {
	repo repository.TeamRepository
	opts Options
}

// NewTeamService 创建 TeamService
func NewTeamService(repo repository.TeamRepository, opts Options) *TeamService {
	return &TeamService{repo: repo, opts: opts.withDefaults()}
}

func (s *TeamService) Create(ctx context.Context, req *CreateTeamRequest) (*model.Team, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}
	leagueID := req.LeagueID
	team := &model.Team{
		LeagueID:  &leagueID,
		Name:      req.Name,
		ShortName: req.ShortName,
		City:      req.City,
		LogoImage: req.LogoImage,
		IsActive:  boolOr(req.IsActive, true),
		Audit:     s.opts.audit(),
	}
	if err := s.repo.Create(ctx, team); err != nil {
		return nil, storeError(err, "Team", "create")
	}
	return team, nil
}

func (s *TeamService) Get(ctx context.Context, id uint64) (*model.Team, error) {
	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Team", "get")
	}
	return team, nil
}

func (s *TeamService) List(ctx context.Context, leagueID *uint64) ([]*model.Team, error) {
	list, err := s.repo.List(ctx, leagueID)
	if err != nil {
		return nil, storeError(err, "Team", "list")
	}
	return list, nil
}

func (s *TeamService) Update(ctx context.Context, id uint64, req *UpdateTeamRequest) (*model.Team, error) {
	if err := firstError(checkRequest(req), nonEmpty("name", req.Name)); err != nil {
		return nil, err
	}
	fields := map[string]interface{}{}
	setIf(fields, "league_id", req.LeagueID)
	setIf(fields, "name", req.Name)
	setIf(fields, "short_name", req.ShortName)
	setIf(fields, "city", req.City)
	setIf(fields, "logo_image", req.LogoImage)
	setIf(fields, "is_active", req.IsActive)
	team, err := s.repo.Update(ctx, id, s.opts.touch(fields, true))
	if err != nil {
		return nil, storeError(err, "Team", "update")
	}
	return team, nil
}
