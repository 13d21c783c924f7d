package models

import (
	"campus-admin/internal/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB 打开数据库连接
// TranslateError 开启后，唯一索引冲突会被转换为 gorm.ErrDuplicatedKey，
// 课程编号查重完全依赖数据库约束，不做先查后插。
func OpenDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Database.Path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// AutoMigrate 幂等建表
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Admin{},
		&Student{},
		&Course{},
		&Teacher{},
	)
}
