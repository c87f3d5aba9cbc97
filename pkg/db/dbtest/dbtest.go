// Package dbtest는 테스트용 SQLite gorm 연결을 만든다.
package dbtest

import (
	"path/filepath"
	"testing"

	"bandhan/pkg/db"
	"bandhan/pkg/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open: 임시 파일 DB에 테이블을 만들고 연결 하나만 쓰도록 제한한다.
// 트랜잭션이 직렬화되므로 동시성 테스트에서도 락 에러가 나지 않는다.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "bandhan.db")
	conn, err := gorm.Open(sqlite.Open(path+"?_busy_timeout=5000&_foreign_keys=on"), db.GormConfig())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := conn.AutoMigrate(&models.Profile{}, &models.Preference{}, &models.Like{}, &models.Shortlist{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}
