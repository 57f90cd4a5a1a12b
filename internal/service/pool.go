package service

import (
	"context"

	"PredictAdmin/internal/model"
	"PredictAdmin/internal/repository"

	"github.com/shopspring/decimal"
)

// CreatePoolRequest POST /pools
type CreatePoolRequest struct {
	GameweekID uint64           `json:"gameweekId" validate:"required"`
	CostUSDC   *decimal.Decimal `json:"costUsdc" validate:"required"`
	IsActive   *bool            `json:"isActive"`
}

// UpdatePoolRequest PUT /pools/:id
// participantsCount / prizeFundUsdc 由参与记录累加，不允许直接修改
type UpdatePoolRequest struct {
	CostUSDC *decimal.Decimal `json:"costUsdc"`
	IsActive *bool            `json:"isActive"`
}

// PoolService 奖池管理
type PoolService struct {
	repo repository.PoolRepository
	opts Options
}

// NewPoolService 创建 PoolService
func NewPoolService(repo repository.PoolRepository, opts Options) *PoolService {
	return &PoolService{repo: repo, opts: opts.withDefaults()}
}

func (s *PoolService) Create(ctx context.Context, req *CreatePoolRequest) (*model.Pool, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}
	if req.CostUSDC.IsNegative() {
		return nil, validationError("costUsdc must not be negative")
	}
	gameweekID := req.GameweekID
	pool := &model.Pool{
		GameweekID:    &gameweekID,
		CostUSDC:      req.CostUSDC.Round(2),
		PrizeFundUSDC: decimal.Zero,
		IsActive:      boolOr(req.IsActive, true),
		Audit:         s.opts.audit(),
	}
	if err := s.repo.Create(ctx, pool); err != nil {
		return nil, storeError(err, "Pool", "create")
	}
	s.opts.Logger.WithField("pool_id", pool.ID).WithField("cost_usdc", pool.CostUSDC.String()).Info("奖池已创建")
	return pool, nil
}

func (s *PoolService) Get(ctx context.Context, id uint64) (*model.Pool, error) {
	pool, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Pool", "get")
	}
	return pool, nil
}

func (s *PoolService) List(ctx context.Context, gameweekID *uint64) ([]*model.Pool, error) {
	list, err := s.repo.List(ctx, gameweekID)
	if err != nil {
		return nil, storeError(err, "Pool", "list")
	}
	return list, nil
}

func (s *PoolService) Update(ctx context.Context, id uint64, req *UpdatePoolRequest) (*model.Pool, error) {
	fields := map[string]interface{}{}
	if req.CostUSDC != nil {
		if req.CostUSDC.IsNegative() {
			return nil, validationError("costUsdc must not be negative")
		}
		fields["cost_usdc"] = req.CostUSDC.Round(2)
	}
	setIf(fields, "is_active", req.IsActive)
	pool, err := s.repo.Update(ctx, id, s.opts.touch(fields, true))
	if err != nil {
		return nil, storeError(err, "Pool", "update")
	}
	return pool, nil
}
