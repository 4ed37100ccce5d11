package repository

import (
	"context"

	"luxestore/internal/domain/model"
)

// 外部Catalogサービス（ホスト型ドキュメントDBの products コレクション）。
// 取得系の失敗はリトライ可能なエラーとして呼び出し側へ返す（握りつぶさない）。
type CatalogGateway interface {
	FetchAll(ctx context.Context) ([]model.Product, error)
	FetchByCategory(ctx context.Context, category string) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (model.Product, error)

	// 管理画面用
	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, id string) error
}
