package model

// Team 球队，隶属某个联赛
type Team struct {
	ID        uint64  `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID" json:"id"`
	LeagueID  *uint64 `gorm:"column:league_id;type:bigint;index;comment:关联联赛ID" json:"leagueId"`
	League    *League `gorm:"foreignKey:LeagueID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Name      string  `gorm:"column:name;type:varchar(100);not null;comment:球队名称" json:"name"`
	ShortName *string `gorm:"column:short_name;type:varchar(10);comment:简称" json:"shortName"`
	LogoImage *string `gorm:"column:logo_image;type:text;comment:Logo（URL或base64）" json:"logoImage"`
	City      *string `gorm:"column:city;type:varchar(100);comment:城市" json:"city"`
	IsActive  bool    `gorm:"column:is_active;type:boolean DEFAULT TRUE;not null;comment:是否启用" json:"isActive"`
	Timestamps
	Audit
}

func (Team) TableName() string { return "teams" }
