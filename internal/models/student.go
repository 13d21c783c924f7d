package models

import "time"

// Student 学生信息
// 可选字段使用指针，空值序列化为 null 而不是空字符串。
type Student struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Gender    *string   `gorm:"size:10" json:"gender"`
	Age       *int      `json:"age"`
	ClassName *string   `gorm:"size:120" json:"class_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 指定表名
func (Student) TableName() string {
	return "students"
}

// FieldMap 全部可变字段的列映射，用于整体替换式更新
func (s *Student) FieldMap() map[string]interface{} {
	return map[string]interface{}{
		"name":       s.Name,
		"gender":     s.Gender,
		"age":        s.Age,
		"class_name": s.ClassName,
	}
}
