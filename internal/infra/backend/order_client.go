package backend

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"luxestore/internal/domain/model"
	repo "luxestore/internal/repository"
)

// orders コレクションのドキュメント。金額は10進（ドル）で保存される。
type orderItemDoc struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int64   `json:"quantity"`
	Image     string  `json:"image"`
	Category  string  `json:"category"`
}

type orderDoc struct {
	ID           string             `json:"id"`
	UserID       string             `json:"userId"`
	Items        []orderItemDoc     `json:"items"`
	Subtotal     float64            `json:"subtotal"`
	Tax          float64            `json:"tax"`
	Total        float64            `json:"total"`
	ShippingInfo model.ShippingInfo `json:"shippingInfo"`
	Status       string             `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
}

type OrderClient struct {
	c *Client
}

// DI
func NewOrderClient(c *Client) *OrderClient {
	return &OrderClient{c: c}
}

// Place は注文ドキュメントを書き込み、記録された注文IDを返す。
func (g *OrderClient) Place(ctx context.Context, order model.Order) (string, error) {
	var created struct {
		ID string `json:"id"`
	}
	if err := g.c.doJSON(ctx, http.MethodPost, "/orders", fromOrder(order), &created); err != nil {
		return "", err
	}

	if created.ID == "" {
		// IDを返さないバックエンドならクライアント採番のIDがそのまま記録ID
		return order.ID, nil
	}
	return created.ID, nil
}

func (g *OrderClient) ListByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	var docs []orderDoc
	path := "/orders?userId=" + url.QueryEscape(userID)
	if err := g.c.doJSON(ctx, http.MethodGet, path, nil, &docs); err != nil {
		return nil, err
	}

	out := make([]model.Order, 0, len(docs))
	for _, d := range docs {
		out = append(out, toOrder(d))
	}
	return out, nil
}

// DeleteByUserID は該当ユーザーの注文ドキュメントを1件ずつ消す（退会時のカスケード）。
func (g *OrderClient) DeleteByUserID(ctx context.Context, userID string) error {
	orders, err := g.ListByUserID(ctx, userID)
	if err != nil {
		return err
	}

	for _, o := range orders {
		err := g.c.doJSON(ctx, http.MethodDelete, "/orders/"+url.PathEscape(o.ID), nil, nil)
		if err != nil && err != repo.ErrNotFound {
			return err
		}
	}
	return nil
}

func fromOrder(o model.Order) orderDoc {
	items := make([]orderItemDoc, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemDoc{
			ProductID: it.ProductID,
			Title:     it.Title,
			Price:     decimalFromCents(it.UnitPrice),
			Quantity:  it.Quantity,
			Image:     it.Image,
			Category:  it.Category,
		})
	}

	return orderDoc{
		ID:           o.ID,
		UserID:       o.UserID,
		Items:        items,
		Subtotal:     decimalFromCents(o.Subtotal),
		Tax:          decimalFromCents(o.Tax),
		Total:        decimalFromCents(o.Total),
		ShippingInfo: o.ShippingInfo,
		Status:       string(o.Status),
		CreatedAt:    o.CreatedAt,
	}
}

func toOrder(d orderDoc) model.Order {
	items := make([]model.OrderItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, model.OrderItem{
			ProductID: it.ProductID,
			Title:     it.Title,
			UnitPrice: centsFromDecimal(it.Price),
			Quantity:  it.Quantity,
			Image:     it.Image,
			Category:  it.Category,
		})
	}

	return model.Order{
		ID:           d.ID,
		UserID:       d.UserID,
		Items:        items,
		Subtotal:     centsFromDecimal(d.Subtotal),
		Tax:          centsFromDecimal(d.Tax),
		Total:        centsFromDecimal(d.Total),
		ShippingInfo: d.ShippingInfo,
		Status:       model.OrderStatus(d.Status),
		CreatedAt:    d.CreatedAt,
	}
}
