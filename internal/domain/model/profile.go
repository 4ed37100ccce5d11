package model

import "time"

// 外部DBに保存される利用者プロフィール。配送先の既定値を持つ。
// 認証情報そのものは外部認証サービス側にある。
type UserProfile struct {
	UserID    string    `json:"uid"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	ZipCode   string    `json:"zipCode"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
