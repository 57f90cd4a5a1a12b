package model

import "time"

// Season 赛季，隶属某个联赛
type Season struct {
	ID        uint64     `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID" json:"id"`
	LeagueID  *uint64    `gorm:"column:league_id;type:bigint;index;comment:关联联赛ID" json:"leagueId"`
	League    *League    `gorm:"foreignKey:LeagueID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Name      string     `gorm:"column:name;type:varchar(100);not null;comment:赛季名称" json:"name"`
	Year      int        `gorm:"column:year;type:int;not null;comment:年份" json:"year"`
	StartDate *time.Time `gorm:"column:start_date;type:timestamp;comment:开始日期" json:"startDate"`
	EndDate   *time.Time `gorm:"column:end_date;type:timestamp;comment:结束日期" json:"endDate"`
	IsActive  bool       `gorm:"column:is_active;type:boolean DEFAULT TRUE;not null;comment:是否启用" json:"isActive"`
	Timestamps
	Audit
}

func (Season) TableName() string { return "seasons" }
