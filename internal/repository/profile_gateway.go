package repository

import (
	"context"

	"luxestore/internal/domain/model"
)

// 外部DBの users コレクション。1ユーザー1ドキュメント（キーはuid）。
type ProfileGateway interface {
	Find(ctx context.Context, userID string) (model.UserProfile, error)
	// Save はupsert（無ければ作成、あれば上書き）
	Save(ctx context.Context, profile model.UserProfile) error
	Delete(ctx context.Context, userID string) error
}
