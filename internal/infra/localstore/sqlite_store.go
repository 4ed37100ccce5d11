package localstore

import (
	"context"
	"errors"
	"time"

	repo "luxestore/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVの1レコード。テーブルはこれ1枚だけ。
type CartRecord struct {
	Key       string    `gorm:"primaryKey;type:varchar(255)" json:"key"`
	Value     []byte    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// 端末ローカルのsqliteファイルをKVとして使うストア。
type SqliteStore struct {
	db *gorm.DB
}

// DI
func NewSqliteStore(db *gorm.DB) (*SqliteStore, error) {
	if err := db.AutoMigrate(&CartRecord{}); err != nil {
		return nil, err
	}
	return &SqliteStore{db: db}, nil
}

func (s *SqliteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var rec CartRecord

	err := s.db.WithContext(ctx).
		Where("key = ?", key).
		First(&rec).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec.Value, nil
}

// Setは同一キーを上書きする（前回のスナップショットは残さない）。
func (s *SqliteStore) Set(ctx context.Context, key string, value []byte) error {
	rec := CartRecord{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&rec).Error
}

func (s *SqliteStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).
		Where("key = ?", key).
		Delete(&CartRecord{}).Error
}
