package usecase

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	repo "luxestore/internal/repository"
)

// CartUsecase は /cart のHTTP向けロジック。
// 実際の状態管理は CartStore に任せ、ここでは商品解決とレスポンス整形だけ行う。
type CartUsecase struct {
	carts   *CartManager
	catalog repo.CatalogGateway
}

func NewCartUsecase(carts *CartManager, catalog repo.CatalogGateway) *CartUsecase {
	return &CartUsecase{carts: carts, catalog: catalog}
}

type CartLineResponse struct {
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
	Image     string `json:"image"`
	Category  string `json:"category"`
}

type CartResponse struct {
	Items     []CartLineResponse `json:"items"`
	Total     int64              `json:"total"`
	ItemCount int64              `json:"item_count"`
}

func (u *CartUsecase) GetCart(ctx context.Context, userID string) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return buildCartResponse(u.carts.ForUser(ctx, userID)), nil
}

// AddToCart はカタログで商品を解決してからカートへ入れる（同一商品は数量+1）。
func (u *CartUsecase) AddToCart(ctx context.Context, userID string, productID string) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(productID) == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	p, err := u.catalog.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusBadGateway, "catalog unavailable")
	}

	store := u.carts.ForUser(ctx, userID)
	if err := store.AddItem(ctx, p); err != nil {
		// 永続化失敗は可用性優先でログに落とすだけ（メモリ上は確定済み）
		slog.Warn("cart persist failed", "op", "add", "user_id", userID, "err", err)
	}
	return buildCartResponse(store), nil
}

// UpdateItem は数量をそのまま置き換える。0以下は削除扱い、未登録商品は何もしない。
func (u *CartUsecase) UpdateItem(ctx context.Context, userID string, productID string, quantity int64) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(productID) == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	store := u.carts.ForUser(ctx, userID)
	if err := store.UpdateQuantity(ctx, productID, quantity); err != nil {
		slog.Warn("cart persist failed", "op", "update", "user_id", userID, "err", err)
	}
	return buildCartResponse(store), nil
}

func (u *CartUsecase) RemoveItem(ctx context.Context, userID string, productID string) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(productID) == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	store := u.carts.ForUser(ctx, userID)
	if err := store.RemoveItem(ctx, productID); err != nil {
		slog.Warn("cart persist failed", "op", "remove", "user_id", userID, "err", err)
	}
	return buildCartResponse(store), nil
}

// Clear は明示操作による全削除（確認ダイアログ後に呼ばれる想定）。
func (u *CartUsecase) Clear(ctx context.Context, userID string) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	store := u.carts.ForUser(ctx, userID)
	if err := store.ClearCart(ctx); err != nil {
		slog.Warn("cart persist failed", "op", "clear", "user_id", userID, "err", err)
	}
	return buildCartResponse(store), nil
}

func buildCartResponse(store *CartStore) CartResponse {
	lines := store.Lines()

	items := make([]CartLineResponse, 0, len(lines))
	var count int64 = 0
	for _, l := range lines {
		items = append(items, CartLineResponse{
			ProductID: l.ID,
			Title:     l.Title,
			Price:     l.Price,
			Quantity:  l.Quantity,
			Image:     l.Image,
			Category:  l.Category,
		})
		count += l.Quantity
	}

	return CartResponse{
		Items:     items,
		Total:     store.Subtotal(),
		ItemCount: count,
	}
}
