package model

// User 以钱包地址唯一标识的用户
type User struct {
	ID            uint64  `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID" json:"id"`
	WalletAddress string  `gorm:"column:wallet_address;type:varchar(42);uniqueIndex;not null;comment:用户钱包地址（EIP-55）" json:"walletAddress"`
	Username      *string `gorm:"column:username;type:varchar(50);uniqueIndex;comment:用户名" json:"username"`
	AvatarImage   *string `gorm:"column:avatar_image;type:text;comment:头像（URL或base64）" json:"avatarImage"`
	Timestamps
}

func (User) TableName() string { return "users" }
