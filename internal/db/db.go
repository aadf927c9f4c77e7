package db

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Open 打开 SQLite 数据库并迁移 pages 表。
// databasePath 为空时将回退到默认值 data/folio.db。
func Open(databasePath string, config *gorm.Config) (*gorm.DB, error) {
	path := strings.TrimSpace(databasePath)
	if path == "" {
		path = "data/folio.db"
	}

	if !strings.HasPrefix(path, "file:") {
		if err := ensureParentDir(path); err != nil {
			return nil, err
		}
	}

	if config == nil {
		config = &gorm.Config{}
	}

	gdb, err := gorm.Open(sqlite.Open(path), config)
	if err != nil {
		return nil, err
	}

	if err := gdb.AutoMigrate(&Page{}); err != nil {
		return nil, err
	}

	return gdb, nil
}

// SQLiteBackend stores the collection in the pages table. Every Save upserts the
// full collection inside one transaction.
type SQLiteBackend struct {
	db *gorm.DB
}

// NewSQLiteBackend wraps an opened, migrated gorm connection.
func NewSQLiteBackend(gdb *gorm.DB) *SQLiteBackend {
	return &SQLiteBackend{db: gdb}
}

// Load returns all rows ordered by id, which is insertion order.
func (b *SQLiteBackend) Load(ctx context.Context) ([]Page, error) {
	pages := []Page{}
	if err := b.db.WithContext(ctx).Order("id ASC").Find(&pages).Error; err != nil {
		return nil, fmt.Errorf("load pages: %w", err)
	}
	return pages, nil
}

// Save writes every page of the collection; existing rows are overwritten by id.
func (b *SQLiteBackend) Save(ctx context.Context, pages []Page) error {
	if len(pages) == 0 {
		return ctx.Err()
	}

	err := b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&pages).Error
	})
	if err != nil {
		return fmt.Errorf("save pages: %w", err)
	}
	return nil
}
