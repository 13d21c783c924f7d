package models

import "time"

// Admin 管理员账户
// 仅通过注册创建，本服务内不更新、不删除。
type Admin struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:64;not null" json:"username"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName 指定表名
func (Admin) TableName() string {
	return "admins"
}
