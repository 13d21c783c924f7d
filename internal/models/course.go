package models

import "time"

// Course 课程信息
// code 全局唯一；teacher 为任课教师姓名文本，不关联教师表。
type Course struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"size:150;not null" json:"name"`
	Code      string    `gorm:"uniqueIndex;size:50;not null" json:"code"`
	Credit    *float64  `json:"credit"`
	Teacher   *string   `gorm:"size:120" json:"teacher"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 指定表名
func (Course) TableName() string {
	return "courses"
}

// FieldMap 全部可变字段的列映射，用于整体替换式更新
func (c *Course) FieldMap() map[string]interface{} {
	return map[string]interface{}{
		"name":    c.Name,
		"code":    c.Code,
		"credit":  c.Credit,
		"teacher": c.Teacher,
	}
}
