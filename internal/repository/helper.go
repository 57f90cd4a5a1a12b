package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostgreSQL SQLSTATE
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// IsUniqueViolation 唯一约束冲突（PostgreSQL 23505 / gorm 翻译后的 ErrDuplicatedKey / SQLite 文本）
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// IsForeignKeyViolation 外键约束冲突（引用的行不存在）
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// getByID 按主键查询单行，不存在时返回 gorm.ErrRecordNotFound
func getByID[T any](ctx context.Context, db *gorm.DB, id uint64) (*T, error) {
	var row T
	if err := db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// updateByID 按主键做部分字段更新，再读回整行。目标不存在时返回 gorm.ErrRecordNotFound
func updateByID[T any](ctx context.Context, db *gorm.DB, id uint64, fields map[string]interface{}) (*T, error) {
	var row T
	res := db.WithContext(ctx).Model(&row).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return getByID[T](ctx, db, id)
}

// updateLocked 在一个事务内 SELECT ... FOR UPDATE 读出当前行，由 merge 基于该行计算更新字段后写入。
// merge 返回的错误原样返回并回滚事务
func updateLocked[T any](ctx context.Context, db *gorm.DB, id uint64, merge func(current *T) (map[string]interface{}, error)) (*T, error) {
	var out *T
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current T
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&current).Error; err != nil {
			return err
		}
		fields, err := merge(&current)
		if err != nil {
			return err
		}
		row, err := updateByID[T](ctx, tx, id, fields)
		if err != nil {
			return err
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
