package model

import "time"

type Role string

const (
	RoleKitchen Role = "kitchen"
	RoleAdmin   Role = "admin"
)

type Staff struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Role         Role      `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime"`
}

// StaffSessionはサーバー側セッション。
// Cookieのjtiでこの行を引く。行を消せばログアウトは即時に効く。
type StaffSession struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	Username  string    `gorm:"not null;index"`
	Role      Role      `gorm:"type:varchar(20);not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
}
