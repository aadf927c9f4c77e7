package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/folio/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSQLiteTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:pages-service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := db.Open(dsn, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return gdb
}

func samePage(a, b db.Page) bool {
	return a.ID == b.ID &&
		a.Title == b.Title &&
		a.Slug == b.Slug &&
		a.Content == b.Content &&
		a.CreatedAt.Equal(b.CreatedAt)
}
