package config

import (
	"fmt"
	"os"
	"strconv"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	BackendBaseURL string // ホスト型ドキュメントDBのベースURL
	BackendAPIKey  string // バックエンドのAPIキー（無しでも可）

	AuthJWTSecret string // 外部認証サービスのトークン検証シークレット

	TaxRate float64 // チェックアウト時の税率（default 0.08）

	CartStore  string // カート保存先: sqlite / redis / memory
	CartDBPath string // sqliteファイルのパス
	RedisAddr  string // CartStore=redis のとき必須
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port: os.Getenv("PORT"),

		BackendBaseURL: os.Getenv("BACKEND_BASE_URL"),
		BackendAPIKey:  os.Getenv("BACKEND_API_KEY"),

		AuthJWTSecret: os.Getenv("AUTH_JWT_SECRET"),

		TaxRate: 0.08,

		CartStore:  getenv("CART_STORE", "sqlite"),
		CartDBPath: getenv("CART_DB_PATH", "luxestore.db"),
		RedisAddr:  os.Getenv("REDIS_ADDR"),
	}

	if v := os.Getenv("TAX_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("TAX_RATE must be number: %w", err)
		}
		if rate < 0 || rate >= 1 {
			return Config{}, fmt.Errorf("TAX_RATE must be in [0,1)")
		}
		cfg.TaxRate = rate
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.BackendBaseURL == "" {
		return Config{}, fmt.Errorf("BACKEND_BASE_URL is required")
	}
	if cfg.AuthJWTSecret == "" {
		return Config{}, fmt.Errorf("AUTH_JWT_SECRET is required")
	}

	switch cfg.CartStore {
	case "sqlite", "memory":
	case "redis":
		if cfg.RedisAddr == "" {
			return Config{}, fmt.Errorf("REDIS_ADDR is required when CART_STORE=redis")
		}
	default:
		return Config{}, fmt.Errorf("CART_STORE must be sqlite, redis or memory")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
