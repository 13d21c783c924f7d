package models

import "time"

// Teacher 教师信息
type Teacher struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	Title     *string   `gorm:"size:120" json:"title"`
	Phone     *string   `gorm:"size:40" json:"phone"`
	Email     *string   `gorm:"size:160" json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 指定表名
func (Teacher) TableName() string {
	return "teachers"
}

// FieldMap 全部可变字段的列映射，用于整体替换式更新
func (t *Teacher) FieldMap() map[string]interface{} {
	return map[string]interface{}{
		"name":  t.Name,
		"title": t.Title,
		"phone": t.Phone,
		"email": t.Email,
	}
}
