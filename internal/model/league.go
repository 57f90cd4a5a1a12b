package model

// League 联赛，层级根节点
// is_active 的默认值写在列类型里：gorm 对带 default 标签的零值字段会跳过写入，false 会被默认值覆盖
type League struct {
	ID          uint64  `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID" json:"id"`
	Name        string  `gorm:"column:name;type:varchar(100);not null;comment:联赛名称" json:"name"`
	Slug        string  `gorm:"column:slug;type:varchar(50);uniqueIndex;not null;comment:联赛唯一短标识" json:"slug"`
	LogoImage   *string `gorm:"column:logo_image;type:text;comment:Logo（URL或base64）" json:"logoImage"`
	AllowsDraws bool    `gorm:"column:allows_draws;type:boolean;default:false;not null;comment:是否允许平局" json:"allowsDraws"`
	IsActive    bool    `gorm:"column:is_active;type:boolean DEFAULT TRUE;not null;comment:是否启用" json:"isActive"`
	Timestamps
	Audit
}

func (League) TableName() string { return "leagues" }
