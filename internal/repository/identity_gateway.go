package repository

import (
	"context"

	"luxestore/internal/domain/model"
)

// 外部認証サービス。bearerトークンを検証してサインイン中の利用者を返す。
type IdentityGateway interface {
	VerifyToken(ctx context.Context, rawToken string) (model.User, error)
}
