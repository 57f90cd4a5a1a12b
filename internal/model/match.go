package model

import "time"

const MatchStatusScheduled = "scheduled"

// Match 比赛，隶属某个比赛周，主客队与胜者均引用 teams
type Match struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID" json:"id"`
	GameweekID   *uint64   `gorm:"column:gameweek_id;type:bigint;index;comment:关联比赛周ID" json:"gameweekId"`
	Gameweek     *Gameweek `gorm:"foreignKey:GameweekID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	HomeTeamID   *uint64   `gorm:"column:home_team_id;type:bigint;comment:主队ID" json:"homeTeamId"`
	HomeTeam     *Team     `gorm:"foreignKey:HomeTeamID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	AwayTeamID   *uint64   `gorm:"column:away_team_id;type:bigint;comment:客队ID" json:"awayTeamId"`
	AwayTeam     *Team     `gorm:"foreignKey:AwayTeamID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	ScheduledAt  time.Time `gorm:"column:scheduled_at;type:timestamp;not null;comment:开赛时间" json:"scheduledAt"`
	Status       string    `gorm:"column:status;type:varchar(20);default:scheduled;not null;comment:比赛状态" json:"status"`
	HomeScore    *int      `gorm:"column:home_score;type:int;comment:主队得分" json:"homeScore"`
	AwayScore    *int      `gorm:"column:away_score;type:int;comment:客队得分" json:"awayScore"`
	WinnerTeamID *uint64   `gorm:"column:winner_team_id;type:bigint;comment:胜者球队ID" json:"winnerTeamId"`
	WinnerTeam   *Team     `gorm:"foreignKey:WinnerTeamID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	IsDraw       bool      `gorm:"column:is_draw;type:boolean;default:false;not null;comment:是否平局" json:"isDraw"`
	Timestamps
	Audit
}

func (Match) TableName() string { return "matches" }
