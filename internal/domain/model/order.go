package model

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// 配送先フォームの内容
type ShippingInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	City      string `json:"city"`
	ZipCode   string `json:"zipCode"`
}

// 注文の明細。確定時点の価格スナップショットを必ず保存。
type OrderItem struct {
	ProductID string `json:"productId"`
	Title     string `json:"title"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int64  `json:"quantity"`
	Image     string `json:"image"`
	Category  string `json:"category"`
}

// 外部Orderサービスに記録される注文。IDはクライアント採番のドキュメントID。
// 金額はすべてセント。
type Order struct {
	ID           string       `json:"id"`
	UserID       string       `json:"userId"`
	Items        []OrderItem  `json:"items"`
	Subtotal     int64        `json:"subtotal"`
	Tax          int64        `json:"tax"`
	Total        int64        `json:"total"`
	ShippingInfo ShippingInfo `json:"shippingInfo"`
	Status       OrderStatus  `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
}
