package service

import (
	"context"
	"errors"

	"PredictAdmin/internal/model"
	"PredictAdmin/internal/repository"
)

// CreateGameweekRequest POST /gameweeks
type CreateGameweekRequest struct {
	SeasonID             uint64 `json:"seasonId" validate:"required"`
	WeekNumber           int    `json:"weekNumber" validate:"required"`
	Name                 string `json:"name" validate:"required,max=100"`
	StartDate            string `json:"startDate" validate:"required"`
	EndDate              string `json:"endDate" validate:"required"`
	RegistrationDeadline string `json:"registrationDeadline" validate:"required"`
}

// UpdateGameweekRequest PUT /gameweeks/:id，只修改提交的字段。
// Status 与三个标志位二选一；合并后的标志位最多一个为 true。
type UpdateGameweekRequest struct {
	SeasonID             *uint64               `json:"seasonId"`
	WeekNumber           *int                  `json:"weekNumber"`
	Name                 *string               `json:"name" validate:"omitempty,max=100"`
	StartDate            *string               `json:"startDate"`
	EndDate              *string               `json:"endDate"`
	RegistrationDeadline *string               `json:"registrationDeadline"`
	IsActive             *bool                 `json:"isActive"`
	IsClosed             *bool                 `json:"isClosed"`
	IsFinished           *bool                 `json:"isFinished"`
	Status               *model.GameweekStatus `json:"status"`
}

func (r *UpdateGameweekRequest) touchesFlags() bool {
	return r.IsActive != nil || r.IsClosed != nil || r.IsFinished != nil
}

// GameweekDetail GET /gameweeks/:id 返回的比赛周、比赛与奖池
type GameweekDetail struct {
	Gameweek *model.Gameweek         `json:"gameweek"`
	Matches  []*repository.MatchView `json:"matches"`
	Pool     *model.Pool             `json:"pool"`
}

// GameweekService 比赛周管理
type GameweekService struct {
	repo      repository.GameweekRepository
	matchRepo repository.MatchRepository
	poolRepo  repository.PoolRepository
	opts      Options
}

// NewGameweekService 创建 GameweekService
func NewGameweekService(repo repository.GameweekRepository, matchRepo repository.MatchRepository, poolRepo repository.PoolRepository, opts Options) *GameweekService {
	return &GameweekService{
		repo:      repo,
		matchRepo: matchRepo,
		poolRepo:  poolRepo,
		opts:      opts.withDefaults(),
	}
}

// Create 只校验必填字段；报名截止早于开赛等业务规则由调用方保证
func (s *GameweekService) Create(ctx context.Context, req *CreateGameweekRequest) (*model.Gameweek, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}
	start, err := parseTime("startDate", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseTime("endDate", req.EndDate)
	if err != nil {
		return nil, err
	}
	deadline, err := parseTime("registrationDeadline", req.RegistrationDeadline)
	if err != nil {
		return nil, err
	}
	seasonID := req.SeasonID
	gw := &model.Gameweek{
		SeasonID:             &seasonID,
		WeekNumber:           req.WeekNumber,
		Name:                 req.Name,
		StartDate:            start,
		EndDate:              end,
		RegistrationDeadline: deadline,
		Audit:                s.opts.audit(),
	}
	if err := s.repo.Create(ctx, gw); err != nil {
		return nil, storeError(err, "Gameweek", "create")
	}
	s.opts.Logger.WithField("gameweek_id", gw.ID).WithField("season_id", seasonID).Info("比赛周已创建")
	return gw, nil
}

func (s *GameweekService) Get(ctx context.Context, id uint64) (*model.Gameweek, error) {
	gw, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Gameweek", "get")
	}
	return gw, nil
}

// Detail 比赛周 + 比赛（含主客队名）+ 奖池（没有时为 nil）
func (s *GameweekService) Detail(ctx context.Context, id uint64) (*GameweekDetail, error) {
	gw, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	matches, err := s.matchRepo.ListByGameweek(ctx, id)
	if err != nil {
		return nil, storeError(err, "Match", "list")
	}
	pool, err := s.poolRepo.GetByGameweek(ctx, id)
	if err != nil {
		return nil, storeError(err, "Pool", "get")
	}
	return &GameweekDetail{Gameweek: gw, Matches: matches, Pool: pool}, nil
}

// List 比赛周列表（附赛季名/联赛名），seasonID 可为 nil
func (s *GameweekService) List(ctx context.Context, seasonID *uint64) ([]*repository.GameweekView, error) {
	list, err := s.repo.ListWithSeason(ctx, seasonID)
	if err != nil {
		return nil, storeError(err, "Gameweek", "list")
	}
	return list, nil
}

// Update 部分更新，总是刷新 updated_at；目标不存在返回 ErrNotFound
func (s *GameweekService) Update(ctx context.Context, id uint64, req *UpdateGameweekRequest) (*model.Gameweek, error) {
	if err := firstError(checkRequest(req), nonEmpty("name", req.Name)); err != nil {
		return nil, err
	}
	fields := map[string]interface{}{}
	setIf(fields, "season_id", req.SeasonID)
	setIf(fields, "week_number", req.WeekNumber)
	setIf(fields, "name", req.Name)
	for _, f := range []struct {
		field, column string
		value         *string
	}{
		{"startDate", "start_date", req.StartDate},
		{"endDate", "end_date", req.EndDate},
		{"registrationDeadline", "registration_deadline", req.RegistrationDeadline},
	} {
		if f.value == nil {
			continue
		}
		t, err := parseTime(f.field, *f.value)
		if err != nil {
			return nil, err
		}
		fields[f.column] = t
	}

	if req.Status != nil {
		if req.touchesFlags() {
			return nil, validationError("status cannot be combined with isActive, isClosed or isFinished")
		}
		if !req.Status.Valid() {
			return nil, validationError("status must be one of scheduled, active, closed, finished")
		}
		active, closed, finished := req.Status.Flags()
		fields["is_active"], fields["is_closed"], fields["is_finished"] = active, closed, finished
	}

	var (
		gw  *model.Gameweek
		err error
	)
	if req.Status == nil && req.touchesFlags() {
		gw, err = s.repo.UpdateLocked(ctx, id, func(current *model.Gameweek) (map[string]interface{}, error) {
			if err := mergeFlags(current, req, fields); err != nil {
				return nil, err
			}
			return s.opts.touch(fields, true), nil
		})
	} else {
		gw, err = s.repo.Update(ctx, id, s.opts.touch(fields, true))
	}
	if err != nil {
		var se *Error
		if errors.As(err, &se) {
			return nil, se
		}
		return nil, storeError(err, "Gameweek", "update")
	}
	return gw, nil
}

// mergeFlags 把提交的标志位合并到当前行上，拒绝多个阶段同时成立
func mergeFlags(current *model.Gameweek, req *UpdateGameweekRequest, fields map[string]interface{}) error {
	active := boolOr(req.IsActive, current.IsActive)
	closed := boolOr(req.IsClosed, current.IsClosed)
	finished := boolOr(req.IsFinished, current.IsFinished)
	set := 0
	for _, b := range []bool{active, closed, finished} {
		if b {
			set++
		}
	}
	if set > 1 {
		return validationError("a gameweek can only be one of active, closed or finished")
	}
	setIf(fields, "is_active", req.IsActive)
	setIf(fields, "is_closed", req.IsClosed)
	setIf(fields, "is_finished", req.IsFinished)
	return nil
}
