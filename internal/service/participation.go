package service

import (
	"context"
	"encoding/json"

	"PredictAdmin/internal/model"
	"PredictAdmin/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// CreateParticipationRequest POST /participations
type CreateParticipationRequest struct {
	PoolID        uint64           `json:"poolId" validate:"required"`
	UserID        uint64           `json:"userId" validate:"required"`
	WalletAddress string           `json:"walletAddress" validate:"required"`
	Picks         json.RawMessage  `json:"picks"`
	PaidUSDC      *decimal.Decimal `json:"paidUsdc" validate:"required"`
	PaidETHFee    *decimal.Decimal `json:"paidEthFee" validate:"required"`
	TxHash        *string          `json:"txHash"`
}

// UpdateParticipationRequest PUT /participations/:id，支付核验后回填
type UpdateParticipationRequest struct {
	IsValidated *bool   `json:"isValidated"`
	TxHash      *string `json:"txHash"`
}

// CreateResultRequest POST /participation-results
// accuracy 缺省时按 correctPicks / totalPicks × 100 计算
type CreateResultRequest struct {
	ParticipationID uint64           `json:"participationId" validate:"required"`
	TotalPicks      *int             `json:"totalPicks" validate:"required,min=0"`
	CorrectPicks    *int             `json:"correctPicks" validate:"omitempty,min=0"`
	Accuracy        *decimal.Decimal `json:"accuracy"`
	RankingPosition *int             `json:"rankingPosition" validate:"omitempty,min=1"`
	PrizeAmountUSDC *decimal.Decimal `json:"prizeAmountUsdc"`
	Claimed         *bool            `json:"claimed"`
}

// UpdateResultRequest PUT /participation-results/:id
type UpdateResultRequest struct {
	TotalPicks      *int             `json:"totalPicks" validate:"omitempty,min=0"`
	CorrectPicks    *int             `json:"correctPicks" validate:"omitempty,min=0"`
	Accuracy        *decimal.Decimal `json:"accuracy"`
	RankingPosition *int             `json:"rankingPosition" validate:"omitempty,min=1"`
	PrizeAmountUSDC *decimal.Decimal `json:"prizeAmountUsdc"`
	Claimed         *bool            `json:"claimed"`
}

// ParticipationService 参与记录与结算结果
type ParticipationService struct {
	repo    repository.ParticipationRepository
	results repository.ResultRepository
	opts    Options
}

// NewParticipationService 创建 ParticipationService
func NewParticipationService(repo repository.ParticipationRepository, results repository.ResultRepository, opts Options) *ParticipationService {
	return &ParticipationService{repo: repo, results: results, opts: opts.withDefaults()}
}

// Create 写入参与记录并累加奖池人数与奖金
func (s *ParticipationService) Create(ctx context.Context, req *CreateParticipationRequest) (*model.Participation, error) {
	if err := firstError(checkRequest(req), checkPicks(req.Picks)); err != nil {
		return nil, err
	}
	wallet, err := normalizeWallet("walletAddress", req.WalletAddress)
	if err != nil {
		return nil, err
	}
	if req.PaidUSDC.IsNegative() || req.PaidETHFee.IsNegative() {
		return nil, validationError("paidUsdc and paidEthFee must not be negative")
	}
	var txHash *string
	if req.TxHash != nil && *req.TxHash != "" {
		h, err := normalizeTxHash(*req.TxHash)
		if err != nil {
			return nil, err
		}
		txHash = &h
	}

	poolID, userID := req.PoolID, req.UserID
	now := s.opts.now()
	p := &model.Participation{
		PoolID:         &poolID,
		UserID:         &userID,
		WalletAddress:  wallet,
		Picks:          datatypes.JSON(req.Picks),
		PicksTimestamp: now,
		TxHash:         txHash,
		PaidUSDC:       req.PaidUSDC.Round(2),
		PaidETHFee:     req.PaidETHFee.Round(8),
		Timestamps:     model.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.repo.CreateWithPoolTally(ctx, p); err != nil {
		return nil, storeError(err, "Pool", "create participation")
	}
	s.opts.Logger.WithFields(logrus.Fields{
		"participation_id": p.ID,
		"pool_id":          poolID,
		"user_id":          userID,
		"paid_usdc":        p.PaidUSDC.String(),
	}).Info("参与记录已创建")
	return p, nil
}

func (s *ParticipationService) Get(ctx context.Context, id uint64) (*model.Participation, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Participation", "get")
	}
	return p, nil
}

func (s *ParticipationService) List(ctx context.Context, filter repository.ParticipationFilter) ([]*model.Participation, error) {
	list, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, storeError(err, "Participation", "list")
	}
	return list, nil
}

func (s *ParticipationService) Update(ctx context.Context, id uint64, req *UpdateParticipationRequest) (*model.Participation, error) {
	fields := map[string]interface{}{}
	setIf(fields, "is_validated", req.IsValidated)
	if req.TxHash != nil {
		h, err := normalizeTxHash(*req.TxHash)
		if err != nil {
			return nil, err
		}
		fields["tx_hash"] = h
	}
	p, err := s.repo.Update(ctx, id, s.opts.touch(fields, false))
	if err != nil {
		return nil, storeError(err, "Participation", "update")
	}
	return p, nil
}

// CreateResult 每个参与记录只允许一条结果
func (s *ParticipationService) CreateResult(ctx context.Context, req *CreateResultRequest) (*model.ParticipationResult, error) {
	if err := firstError(checkRequest(req), checkAccuracy(req.Accuracy)); err != nil {
		return nil, err
	}
	correct := 0
	if req.CorrectPicks != nil {
		correct = *req.CorrectPicks
	}
	total := *req.TotalPicks
	if correct > total {
		return nil, validationError("correctPicks must not exceed totalPicks")
	}
	participationID := req.ParticipationID
	res := &model.ParticipationResult{
		ParticipationID: &participationID,
		CorrectPicks:    correct,
		TotalPicks:      total,
		Accuracy:        resolveAccuracy(req.Accuracy, correct, total),
		RankingPosition: req.RankingPosition,
		PrizeAmountUSDC: decimal.Zero,
		Claimed:         boolOr(req.Claimed, false),
	}
	if req.PrizeAmountUSDC != nil {
		res.PrizeAmountUSDC = req.PrizeAmountUSDC.Round(2)
	}
	if err := s.results.CreateResult(ctx, res); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, &Error{Kind: ErrConflict, Message: "participation already has a result", Err: err}
		}
		return nil, storeError(err, "ParticipationResult", "create")
	}
	return res, nil
}

// ResultOf GET /participations/:id/result
func (s *ParticipationService) ResultOf(ctx context.Context, participationID uint64) (*model.ParticipationResult, error) {
	res, err := s.results.GetResultByParticipation(ctx, participationID)
	if err != nil {
		return nil, storeError(err, "ParticipationResult", "get")
	}
	return res, nil
}

// UpdateResult 修改了场数但未给出 accuracy 时重新计算
func (s *ParticipationService) UpdateResult(ctx context.Context, id uint64, req *UpdateResultRequest) (*model.ParticipationResult, error) {
	if err := firstError(checkRequest(req), checkAccuracy(req.Accuracy)); err != nil {
		return nil, err
	}
	fields := map[string]interface{}{}
	setIf(fields, "ranking_position", req.RankingPosition)
	setIf(fields, "claimed", req.Claimed)
	if req.PrizeAmountUSDC != nil {
		fields["prize_amount_usdc"] = req.PrizeAmountUSDC.Round(2)
	}

	if req.TotalPicks != nil || req.CorrectPicks != nil || req.Accuracy != nil {
		current, err := s.results.GetResultByID(ctx, id)
		if err != nil {
			return nil, storeError(err, "ParticipationResult", "get")
		}
		correct, total := current.CorrectPicks, current.TotalPicks
		if req.CorrectPicks != nil {
			correct = *req.CorrectPicks
		}
		if req.TotalPicks != nil {
			total = *req.TotalPicks
		}
		if correct > total {
			return nil, validationError("correctPicks must not exceed totalPicks")
		}
		fields["correct_picks"] = correct
		fields["total_picks"] = total
		fields["accuracy"] = resolveAccuracy(req.Accuracy, correct, total)
	}

	res, err := s.results.UpdateResult(ctx, id, s.opts.touch(fields, false))
	if err != nil {
		return nil, storeError(err, "ParticipationResult", "update")
	}
	return res, nil
}

var hundred = decimal.NewFromInt(100)

// checkAccuracy 显式给出的 accuracy 是百分比，只能在 [0, 100]
func checkAccuracy(given *decimal.Decimal) error {
	if given != nil && (given.IsNegative() || given.GreaterThan(hundred)) {
		return validationError("accuracy must be between 0 and 100")
	}
	return nil
}

// resolveAccuracy 显式给出的值优先；totalPicks 为 0 时为 NULL
func resolveAccuracy(given *decimal.Decimal, correct, total int) decimal.NullDecimal {
	if given != nil {
		return decimal.NewNullDecimal(given.Round(2))
	}
	if total <= 0 {
		return decimal.NullDecimal{}
	}
	acc := decimal.NewFromInt(int64(correct)).Mul(hundred).Div(decimal.NewFromInt(int64(total))).Round(2)
	return decimal.NewNullDecimal(acc)
}
