package repository

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ResourceRepository 通用资源数据访问层
// 学生、课程、教师的增删改查行为完全一致，仅表结构与可检索列不同，
// 由类型参数和列描述共同决定。
type ResourceRepository[T any] struct {
	db            *gorm.DB
	searchColumns []string
}

// NewResourceRepository 创建资源Repository
// searchColumns 为子串检索覆盖的文本列集合。
func NewResourceRepository[T any](db *gorm.DB, searchColumns []string) *ResourceRepository[T] {
	return &ResourceRepository[T]{db: db, searchColumns: searchColumns}
}

// List 获取资源列表，按创建顺序倒序（新建在前）
// q 非空时在可检索列上做不区分大小写的子串匹配，任一列命中即返回。
func (r *ResourceRepository[T]) List(q string) ([]T, error) {
	items := make([]T, 0)
	tx := r.db.Model(new(T))

	if term := strings.TrimSpace(q); term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		conditions := make([]string, 0, len(r.searchColumns))
		args := make([]interface{}, 0, len(r.searchColumns))
		for _, column := range r.searchColumns {
			conditions = append(conditions, fmt.Sprintf("LOWER(%s) LIKE ?", column))
			args = append(args, pattern)
		}
		tx = tx.Where(strings.Join(conditions, " OR "), args...)
	}

	err := tx.Order("id DESC").Find(&items).Error
	return items, err
}

// Create 创建资源，id 与时间戳由系统赋值
// 唯一索引冲突透传 gorm.ErrDuplicatedKey，由路由层翻译为业务冲突。
func (r *ResourceRepository[T]) Create(item *T) error {
	return r.db.Create(item).Error
}

// GetByID 根据ID获取资源
func (r *ResourceRepository[T]) GetByID(id uint) (*T, error) {
	var item T
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update 整体替换全部可变字段并刷新 updated_at
// 未匹配到行时返回 gorm.ErrRecordNotFound，与更新执行失败区分开。
func (r *ResourceRepository[T]) Update(id uint, fields map[string]interface{}) (*T, error) {
	updates := make(map[string]interface{}, len(fields)+1)
	for column, value := range fields {
		updates[column] = value
	}
	updates["updated_at"] = time.Now()

	tx := r.db.Model(new(T)).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

// Delete 硬删除
func (r *ResourceRepository[T]) Delete(id uint) error {
	tx := r.db.Delete(new(T), id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
