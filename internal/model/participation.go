package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Participation 用户在某个奖池的一次提交（竞猜选择 + 支付）
type Participation struct {
	ID             uint64          `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID" json:"id"`
	PoolID         *uint64         `gorm:"column:pool_id;type:bigint;index;comment:关联奖池ID" json:"poolId"`
	Pool           *Pool           `gorm:"foreignKey:PoolID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	UserID         *uint64         `gorm:"column:user_id;type:bigint;index;comment:关联用户ID" json:"userId"`
	User           *User           `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	WalletAddress  string          `gorm:"column:wallet_address;type:varchar(42);not null;comment:支付钱包地址" json:"walletAddress"`
	Picks          datatypes.JSON  `gorm:"column:picks;type:jsonb;not null;comment:竞猜选择" json:"picks"`
	PicksTimestamp time.Time       `gorm:"column:picks_timestamp;type:timestamp;comment:提交时间" json:"picksTimestamp"`
	TxHash         *string         `gorm:"column:tx_hash;type:varchar(66);comment:支付交易哈希" json:"txHash"`
	PaidUSDC       decimal.Decimal `gorm:"column:paid_usdc;type:numeric(10,2);not null;comment:支付USDC" json:"paidUsdc"`
	PaidETHFee     decimal.Decimal `gorm:"column:paid_eth_fee;type:numeric(18,8);not null;comment:支付ETH手续费" json:"paidEthFee"`
	IsValidated    bool            `gorm:"column:is_validated;type:boolean;default:false;not null;comment:支付是否已核验" json:"isValidated"`
	Timestamps
}

func (Participation) TableName() string { return "participations" }

// ParticipationResult 一次参与的结算结果（每个 participation 至多一条）
type ParticipationResult struct {
	ID              uint64              `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID" json:"id"`
	ParticipationID *uint64             `gorm:"column:participation_id;type:bigint;uniqueIndex;comment:关联参与记录ID" json:"participationId"`
	Participation   *Participation      `gorm:"foreignKey:ParticipationID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	CorrectPicks    int                 `gorm:"column:correct_picks;type:int;default:0;comment:猜中场数" json:"correctPicks"`
	TotalPicks      int                 `gorm:"column:total_picks;type:int;not null;comment:总场数" json:"totalPicks"`
	Accuracy        decimal.NullDecimal `gorm:"column:accuracy;type:numeric(5,2);comment:准确率(%)" json:"accuracy"`
	RankingPosition *int                `gorm:"column:ranking_position;type:int;comment:排名" json:"rankingPosition"`
	PrizeAmountUSDC decimal.Decimal     `gorm:"column:prize_amount_usdc;type:numeric(15,2);not null;comment:奖金USDC" json:"prizeAmountUsdc"`
	Claimed         bool                `gorm:"column:claimed;type:boolean;default:false;not null;comment:是否已领取" json:"claimed"`
	Timestamps
}

func (ParticipationResult) TableName() string { return "participation_results" }
