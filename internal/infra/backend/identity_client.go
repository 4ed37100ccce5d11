package backend

import (
	"context"
	"errors"

	"luxestore/internal/domain/model"

	"github.com/golang-jwt/jwt/v4"
)

// 外部認証サービスが発行したトークン（HS256）を検証する。
// claims: sub=uid, email, role（無ければUSER扱い）。
type IdentityClient struct {
	secret []byte
}

func NewIdentityClient(secret string) *IdentityClient {
	return &IdentityClient{secret: []byte(secret)}
}

func (g *IdentityClient) VerifyToken(ctx context.Context, rawToken string) (model.User, error) {
	token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return g.secret, nil
	})
	if err != nil || token == nil || !token.Valid {
		return model.User{}, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.User{}, errors.New("invalid claims")
	}

	// uidを取り出す
	uid, ok := claims["sub"].(string)
	if !ok || uid == "" {
		return model.User{}, errors.New("invalid sub")
	}

	email, _ := claims["email"].(string)

	// roleを取り出す（USER/ADMIN、未指定はUSER）
	role := model.RoleUser
	if raw, ok := claims["role"].(string); ok && raw == string(model.RoleAdmin) {
		role = model.RoleAdmin
	}

	return model.User{
		ID:    uid,
		Email: email,
		Role:  role,
	}, nil
}
