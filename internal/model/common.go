package model

import "time"

// Audit 管理端实体的创建人/修改人（认证未接入前写入占位操作人）
type Audit struct {
	CreatedBy *uint64 `gorm:"column:created_by;type:bigint;comment:创建人" json:"createdBy"`
	UpdatedBy *uint64 `gorm:"column:updated_by;type:bigint;comment:最后修改人" json:"updatedBy"`
}

// NewAudit 创建人与修改人同为 actorID
func NewAudit(actorID uint64) Audit {
	id := actorID
	return Audit{CreatedBy: &id, UpdatedBy: &id}
}

// Timestamps 由 gorm 自动维护的创建/更新时间（时间源为 gorm.Config.NowFunc）
type Timestamps struct {
	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;autoCreateTime;comment:创建时间" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamp;autoUpdateTime;comment:更新时间" json:"updatedAt"`
}

// All 按外键依赖顺序返回全部表模型（AutoMigrate 用）
func All() []interface{} {
	return []interface{}{
		&League{},
		&Season{},
		&Gameweek{},
		&Team{},
		&Match{},
		&User{},
		&Pool{},
		&Participation{},
		&ParticipationResult{},
	}
}
