package repository

import (
	"context"

	"luxestore/internal/domain/model"
)

// 外部Orderサービス。Placeが成功したときだけ呼び出し側がカートを空にする。
// 失敗時はカートに触らない（ユーザーが再試行できる）。
type OrderGateway interface {
	Place(ctx context.Context, order model.Order) (string, error)
	ListByUserID(ctx context.Context, userID string) ([]model.Order, error)
	// DeleteByUserID は退会時のカスケード削除
	DeleteByUserID(ctx context.Context, userID string) error
}
