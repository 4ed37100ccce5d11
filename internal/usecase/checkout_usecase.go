package usecase

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"luxestore/internal/domain/model"
	repo "luxestore/internal/repository"
)

// 注文IDの採番（実体はuuid）
type IDGenerator interface {
	NewID() string
}

type Clock interface {
	Now() time.Time
}

// 配送先フォームの検証。実装は validator パッケージ。
type CheckoutValidator interface {
	ValidateShipping(in model.ShippingInfo) error
}

// CheckoutUsecase はカートの内容を確定して外部Orderサービスへ送る。
// 成功したときだけカートを空にする。失敗時はカートをそのまま残す。
type CheckoutUsecase struct {
	carts     *CartManager
	orders    repo.OrderGateway
	validator CheckoutValidator
	idGen     IDGenerator
	clock     Clock
	taxRate   float64
}

func NewCheckoutUsecase(
	carts *CartManager,
	orders repo.OrderGateway,
	validator CheckoutValidator,
	idGen IDGenerator,
	clock Clock,
	taxRate float64,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		carts:     carts,
		orders:    orders,
		validator: validator,
		idGen:     idGen,
		clock:     clock,
		taxRate:   taxRate,
	}
}

type PlaceOrderInput struct {
	Shipping model.ShippingInfo
}

type OrderItemOutput struct {
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

type OrderOutput struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	Status    string            `json:"status"`
	Subtotal  int64             `json:"subtotal"`
	Tax       int64             `json:"tax"`
	Total     int64             `json:"total"`
	CreatedAt time.Time         `json:"created_at"`
	Items     []OrderItemOutput `json:"items"`
}

func (u *CheckoutUsecase) PlaceOrder(ctx context.Context, user model.User, in PlaceOrderInput) (OrderOutput, error) {
	if user.ID == "" {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := u.validator.ValidateShipping(in.Shipping); err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	store := u.carts.ForUser(ctx, user.ID)

	// 確定時点のスナップショット。明細と金額は必ず同じ一貫状態から作る
	// （別リクエストの同時変更が明細と合計の間に割り込めないように）。
	state := store.State()
	if len(state.Items) == 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}

	items := make([]model.OrderItem, 0, len(state.Items))
	for _, l := range state.Items {
		items = append(items, model.OrderItem{
			ProductID: l.ID,
			Title:     l.Title,
			UnitPrice: l.Price,
			Quantity:  l.Quantity,
			Image:     l.Image,
			Category:  l.Category,
		})
	}

	subtotal := state.Total
	tax := taxOn(subtotal, u.taxRate)
	total := subtotal + tax

	order := model.Order{
		ID:           u.idGen.NewID(),
		UserID:       user.ID,
		Items:        items,
		Subtotal:     subtotal,
		Tax:          tax,
		Total:        total,
		ShippingInfo: in.Shipping,
		Status:       model.OrderStatusPending,
		CreatedAt:    u.clock.Now(),
	}

	orderID, err := u.orders.Place(ctx, order)
	if err != nil {
		// カートには触らない。利用者はそのまま再試行できる。
		return OrderOutput{}, NewHTTPError(http.StatusBadGateway, "order failed")
	}

	// 成功したのでカートを空にする。スナップショット書き込みの失敗は注文を巻き戻さない。
	if err := store.ClearCart(ctx); err != nil {
		slog.Warn("cart persist failed after checkout", "user_id", user.ID, "err", err)
	}

	out := toOrderOutput(order)
	out.ID = orderID
	return out, nil
}

// ListMyOrders はサインイン中の利用者の注文履歴を外部Orderサービスから引く。
func (u *CheckoutUsecase) ListMyOrders(ctx context.Context, userID string) ([]OrderOutput, error) {
	if userID == "" {
		return []OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	orders, err := u.orders.ListByUserID(ctx, userID)
	if err != nil {
		return []OrderOutput{}, NewHTTPError(http.StatusBadGateway, "order service unavailable")
	}

	outs := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		outs = append(outs, toOrderOutput(o))
	}
	return outs, nil
}

func toOrderOutput(o model.Order) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(o.Items))
	for _, it := range o.Items {
		outItems = append(outItems, OrderItemOutput{
			ProductID: it.ProductID,
			Title:     it.Title,
			Price:     it.UnitPrice,
			Quantity:  it.Quantity,
		})
	}

	return OrderOutput{
		ID:        o.ID,
		UserID:    o.UserID,
		Status:    string(o.Status),
		Subtotal:  o.Subtotal,
		Tax:       o.Tax,
		Total:     o.Total,
		CreatedAt: o.CreatedAt,
		Items:     outItems,
	}
}
