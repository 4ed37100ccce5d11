package model

// カートの明細。商品＋数量（明細の識別子は商品ID、同一商品は1明細まで）。
type CartLine struct {
	Product
	Quantity int64 `json:"quantity"`
}

// カート全体。Itemsは投入順、Totalは常に price×quantity の合計。
// ローカルストレージへの永続化レイアウトもこの構造そのまま（items + total）。
type CartState struct {
	Items []CartLine `json:"items"`
	Total int64      `json:"total"`
}
