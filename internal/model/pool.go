package model

import "github.com/shopspring/decimal"

// Pool 比赛周奖池（实际使用中每个比赛周一个，表结构不强制）
type Pool struct {
	ID                uint64          `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID" json:"id"`
	GameweekID        *uint64         `gorm:"column:gameweek_id;type:bigint;index;comment:关联比赛周ID" json:"gameweekId"`
	Gameweek          *Gameweek       `gorm:"foreignKey:GameweekID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	CostUSDC          decimal.Decimal `gorm:"column:cost_usdc;type:numeric(10,2);not null;comment:参与费用USDC" json:"costUsdc"`
	PrizeFundUSDC     decimal.Decimal `gorm:"column:prize_fund_usdc;type:numeric(15,2);not null;comment:累计奖金USDC" json:"prizeFundUsdc"`
	ParticipantsCount int             `gorm:"column:participants_count;type:int;default:0;comment:参与人数" json:"participantsCount"`
	IsActive          bool            `gorm:"column:is_active;type:boolean DEFAULT TRUE;not null;comment:是否启用" json:"isActive"`
	Timestamps
	Audit
}

func (Pool) TableName() string { return "pools" }
