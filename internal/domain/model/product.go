package model

// 商品の評価（0〜5のrateと件数）
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int64   `json:"count"`
}

// ホスト型ドキュメントDBの products コレクション由来の商品。
// IDはドキュメントID。Priceはセント（表示や外部IFの10進とは境界で変換）。
type Product struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Rating      Rating `json:"rating"`
}
