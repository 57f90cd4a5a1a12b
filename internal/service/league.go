package service

import (
	"context"

	"PredictAdmin/internal/model"
	"PredictAdmin/internal/repository"
)

// CreateLeagueRequest POST /leagues
type CreateLeagueRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Slug        string  `json:"slug" validate:"required,max=50"`
	LogoImage   *string `json:"logoImage"`
	AllowsDraws *bool   `json:"allowsDraws"`
	IsActive    *bool   `json:"isActive"`
}

// UpdateLeagueRequest PUT /leagues/:id，nil 字段不修改
type UpdateLeagueRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Slug        *string `json:"slug" validate:"omitempty,max=50"`
	LogoImage   *string `json:"logoImage"`
	AllowsDraws *bool   `json:"allowsDraws"`
	IsActive    *bool   `json:"isActive"`
}

// LeagueService 联赛管理
type LeagueService struct {
	repo repository.LeagueRepository
	opts Options
}

// NewLeagueService 创建 LeagueService
func NewLeagueService(repo repository.LeagueRepository, opts Options) *LeagueService {
	return &LeagueService{repo: repo, opts: opts.withDefaults()}
}

func (s *LeagueService) Create(ctx context.Context, req *CreateLeagueRequest) (*model.League, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}
	league := &model.League{
		Name:        req.Name,
		Slug:        req.Slug,
		LogoImage:   req.LogoImage,
		AllowsDraws: boolOr(req.AllowsDraws, false),
		IsActive:    boolOr(req.IsActive, true),
		Audit:       s.opts.audit(),
	}
	if err := s.repo.Create(ctx, league); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, &Error{Kind: ErrConflict, Message: "league slug already exists", Err: err}
		}
		return nil, storeError(err, "League", "create")
	}
	s.opts.Logger.WithField("league_id", league.ID).WithField("slug", league.Slug).Info("联赛已创建")
	return league, nil
}

func (s *LeagueService) Get(ctx context.Context, id uint64) (*model.League, error) {
	league, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "League", "get")
	}
	return league, nil
}

func (s *LeagueService) List(ctx context.Context) ([]*model.League, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeError(err, "League", "list")
	}
	return list, nil
}

func (s *LeagueService) Update(ctx context.Context, id uint64, req *UpdateLeagueRequest) (*model.League, error) {
	if err := firstError(checkRequest(req), nonEmpty("name", req.Name), nonEmpty("slug", req.Slug)); err != nil {
		return nil, err
	}
	fields := map[string]interface{}{}
	setIf(fields, "name", req.Name)
	setIf(fields, "slug", req.Slug)
	setIf(fields, "logo_image", req.LogoImage)
	setIf(fields, "allows_draws", req.AllowsDraws)
	setIf(fields, "is_active", req.IsActive)
	league, err := s.repo.Update(ctx, id, s.opts.touch(fields, true))
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, &Error{Kind: ErrConflict, Message: "league slug already exists", Err: err}
		}
		return nil, storeError(err, "League", "update")
	}
	return league, nil
}
