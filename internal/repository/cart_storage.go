package repository

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 端末ローカルの同期KVストア。カートのスナップショット置き場。
// Getはキーが無ければ ErrNotFound を返す。
type CartStorage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
