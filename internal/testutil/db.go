package testutil

import (
	"io"
	"testing"
	"time"

	"PredictAdmin/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Epoch 测试用假时钟的起点
var Epoch = time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

// NewTestDB 创建开启外键的内存 SQLite，并迁移全部表。clock 为 gorm 的时间源
func NewTestDB(t *testing.T, clock clockwork.Clock) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		NowFunc:        func() time.Time { return clock.Now().UTC() },
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	// 内存库按连接隔离，只保留一个连接
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// NewFakeClock 起点为 Epoch 的假时钟
func NewFakeClock() *clockwork.FakeClock {
	return clockwork.NewFakeClockAt(Epoch)
}

// NewLogger 丢弃输出的 logrus 实例
func NewLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
