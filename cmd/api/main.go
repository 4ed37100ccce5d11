package main

import (
	"context"
	"log/slog"
	"time"

	"luxestore/internal/config"
	"luxestore/internal/domain/model"
	"luxestore/internal/handler"
	"luxestore/internal/infra/backend"
	"luxestore/internal/infra/db"
	"luxestore/internal/infra/localstore"
	"luxestore/internal/middleware"
	repo "luxestore/internal/repository"
	"luxestore/internal/server"
	"luxestore/internal/usecase"
	"luxestore/internal/validator"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

// カート保存先を設定から組み立てる
func newCartStorage(cfg config.Config) (repo.CartStorage, error) {
	switch cfg.CartStore {
	case "redis":
		store := localstore.NewRedisStore(cfg.RedisAddr)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			return nil, err
		}
		return store, nil
	case "memory":
		return localstore.NewMemoryStore(), nil
	default:
		gormDB, err := db.Connect(cfg.CartDBPath)
		if err != nil {
			return nil, err
		}
		return localstore.NewSqliteStore(gormDB)
	}
}

func main() {
	//.envは無ければ環境変数だけで動かす
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//カート保存先
	storage, err := newCartStorage(cfg)
	if err != nil {
		panic(err)
	}

	//外部サービスのクライアント
	client := backend.NewClient(cfg.BackendBaseURL, cfg.BackendAPIKey)
	catalog := backend.NewCatalogClient(client)
	orders := backend.NewOrderClient(client)
	profiles := backend.NewProfileClient(client)
	identity := backend.NewIdentityClient(cfg.AuthJWTSecret)

	//サインイン状態の購読（遷移のログと、サインアウト時のストア解放）
	session := usecase.NewSession()
	carts := usecase.NewCartManager(storage)

	var lastUserID string
	session.Subscribe(func(u *model.User) {
		if u == nil {
			if lastUserID != "" {
				slog.Info("signed out", "user_id", lastUserID)
				carts.Release(lastUserID)
				lastUserID = ""
			}
			return
		}
		slog.Info("signed in", "user_id", u.ID, "email", u.Email)
		lastUserID = u.ID
	})

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	//Usecase生成
	catalogUC := usecase.NewCatalogUsecase(catalog)
	cartUC := usecase.NewCartUsecase(carts, catalog)
	checkoutUC := usecase.NewCheckoutUsecase(carts, orders, validator.NewCheckoutValidator(), idGen, clock, cfg.TaxRate)
	profileUC := usecase.NewProfileUsecase(profiles, orders, carts, validator.NewProfileValidator(), clock)
	adminUC := usecase.NewAdminProductUsecase(catalog)

	//Handler生成
	h := server.Handlers{
		Product:      handler.NewProductHandler(catalogUC),
		Cart:         handler.NewCartHandler(cartUC),
		Checkout:     handler.NewCheckoutHandler(checkoutUC),
		Auth:         handler.NewAuthHandler(session),
		Profile:      handler.NewProfileHandler(profileUC),
		AdminProduct: handler.NewAdminProductHandler(adminUC),
	}

	authMW := middleware.AuthSession(identity, session)

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	slog.Info("starting", "addr", addr, "cart_store", cfg.CartStore)
	if err := server.Start(addr, h, authMW); err != nil {
		panic(err)
	}
}
