package model

import (
	"time"

	"gorm.io/gorm"
)

// GameweekStatus 由三个独立存储的标志位推导出的生命周期状态
type GameweekStatus string

const (
	GameweekScheduled GameweekStatus = "scheduled"
	GameweekActive    GameweekStatus = "active"
	GameweekClosed    GameweekStatus = "closed"
	GameweekFinished  GameweekStatus = "finished"
)

// Valid 是否为已知状态
func (s GameweekStatus) Valid() bool {
	switch s {
	case GameweekScheduled, GameweekActive, GameweekClosed, GameweekFinished:
		return true
	}
	return false
}

// Flags 状态对应的 is_active / is_closed / is_finished
func (s GameweekStatus) Flags() (active, closed, finished bool) {
	switch s {
	case GameweekActive:
		return true, false, false
	case GameweekClosed:
		return false, true, false
	case GameweekFinished:
		return false, false, true
	}
	return false, false, false
}

// GameweekStatusOf 按 finished > closed > active 的优先级推导状态。
// 历史数据中可能出现多个标志同时为 true，取最靠后的阶段。
func GameweekStatusOf(active, closed, finished bool) GameweekStatus {
	switch {
	case finished:
		return GameweekFinished
	case closed:
		return GameweekClosed
	case active:
		return GameweekActive
	}
	return GameweekScheduled
}

// Gameweek 比赛周：一段开放竞猜的比赛集合
// RegistrationDeadline 应早于比赛开始，由调用方保证
type Gameweek struct {
	ID                   uint64         `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID" json:"id"`
	SeasonID             *uint64        `gorm:"column:season_id;type:bigint;index;comment:关联赛季ID" json:"seasonId"`
	Season               *Season        `gorm:"foreignKey:SeasonID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	WeekNumber           int            `gorm:"column:week_number;type:int;not null;comment:周序号" json:"weekNumber"`
	Name                 string         `gorm:"column:name;type:varchar(100);not null;comment:名称" json:"name"`
	StartDate            time.Time      `gorm:"column:start_date;type:timestamp;not null;comment:开始时间" json:"startDate"`
	EndDate              time.Time      `gorm:"column:end_date;type:timestamp;not null;comment:结束时间" json:"endDate"`
	RegistrationDeadline time.Time      `gorm:"column:registration_deadline;type:timestamp;not null;comment:报名截止时间" json:"registrationDeadline"`
	IsActive             bool           `gorm:"column:is_active;type:boolean;default:false;not null;comment:是否进行中" json:"isActive"`
	IsClosed             bool           `gorm:"column:is_closed;type:boolean;default:false;not null;comment:是否已截止" json:"isClosed"`
	IsFinished           bool           `gorm:"column:is_finished;type:boolean;default:false;not null;comment:是否已结束" json:"isFinished"`
	Status               GameweekStatus `gorm:"-" json:"status"`
	Timestamps
	Audit
}

func (Gameweek) TableName() string { return "gameweeks" }

// Lifecycle 当前标志位对应的状态
func (g *Gameweek) Lifecycle() GameweekStatus {
	return GameweekStatusOf(g.IsActive, g.IsClosed, g.IsFinished)
}

func (g *Gameweek) AfterFind(tx *gorm.DB) error {
	g.Status = g.Lifecycle()
	return nil
}

func (g *Gameweek) AfterSave(tx *gorm.DB) error {
	g.Status = g.Lifecycle()
	return nil
}
