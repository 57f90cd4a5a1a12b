package repository

import (
	"context"
	"fmt"

	"PredictAdmin/internal/model"

	"gorm.io/gorm"
)

// ParticipationFilter 参与记录列表筛选
type ParticipationFilter struct {
	PoolID *uint64 // 奖池
	UserID *uint64 // 用户
}

// ParticipationRepository 参与记录持久化
type ParticipationRepository interface {
	// CreateWithPoolTally 同一事务内写入参与记录，并把奖池人数 +1、奖金累加 paid_usdc
	CreateWithPoolTally(ctx context.Context, p *model.Participation) error
	GetByID(ctx context.Context, id uint64) (*model.Participation, error)
	List(ctx context.Context, filter ParticipationFilter) ([]*model.Participation, error)
	Update(ctx context.Context, id uint64, fields map[string]interface{}) (*model.Participation, error)
}

// ResultRepository 参与结果持久化
type ResultRepository interface {
	CreateResult(ctx context.Context, res *model.ParticipationResult) error
	GetResultByID(ctx context.Context, id uint64) (*model.ParticipationResult, error)
	GetResultByParticipation(ctx context.Context, participationID uint64) (*model.ParticipationResult, error)
	UpdateResult(ctx context.Context, id uint64, fields map[string]interface{}) (*model.ParticipationResult, error)
}

type participationRepository struct {
	db *gorm.DB
}

// NewParticipationRepository 创建参与记录仓储
func NewParticipationRepository(db *gorm.DB) ParticipationRepository {
	return &participationRepository{db: db}
}

// NewResultRepository 创建参与结果仓储
func NewResultRepository(db *gorm.DB) ResultRepository {
	return &participationRepository{db: db}
}

func (r *participationRepository) CreateWithPoolTally(ctx context.Context, p *model.Participation) error {
	if p.PoolID == nil {
		return fmt.Errorf("participation without pool_id")
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		res := tx.Model(&model.Pool{}).
			Where("id = ?", *p.PoolID).
			Updates(map[string]interface{}{
				"participants_count": gorm.Expr("participants_count + ?", 1),
				"prize_fund_usdc":    gorm.Expr("prize_fund_usdc + ?", p.PaidUSDC),
				"updated_at":         p.CreatedAt,
			})
		if res.Error != nil {
			return fmt.Errorf("累加奖池失败: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *participationRepository) GetByID(ctx context.Context, id uint64) (*model.Participation, error) {
	return getByID[model.Participation](ctx, r.db, id)
}

func (r *participationRepository) List(ctx context.Context, filter ParticipationFilter) ([]*model.Participation, error) {
	db := r.db.WithContext(ctx).Model(&model.Participation{})
	if filter.PoolID != nil {
		db = db.Where("pool_id = ?", *filter.PoolID)
	}
	if filter.UserID != nil {
		db = db.Where("user_id = ?", *filter.UserID)
	}
	var list []*model.Participation
	if err := db.Order("id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *participationRepository) Update(ctx context.Context, id uint64, fields map[string]interface{}) (*model.Participation, error) {
	return updateByID[model.Participation](ctx, r.db, id, fields)
}

func (r *participationRepository) CreateResult(ctx context.Context, res *model.ParticipationResult) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *participationRepository) GetResultByID(ctx context.Context, id uint64) (*model.ParticipationResult, error) {
	return getByID[model.ParticipationResult](ctx, r.db, id)
}

func (r *participationRepository) GetResultByParticipation(ctx context.Context, participationID uint64) (*model.ParticipationResult, error) {
	var res model.ParticipationResult
	if err := r.db.WithContext(ctx).Where("participation_id = ?", participationID).First(&res).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *participationRepository) UpdateResult(ctx context.Context, id uint64, fields map[string]interface{}) (*model.ParticipationResult, error) {
	return updateByID[model.ParticipationResult](ctx, r.db, id, fields)
}
