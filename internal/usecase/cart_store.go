package usecase

import (
	"context"
	"encoding/json"
	"math"
	"sync"

	"luxestore/internal/domain/model"
	repo "luxestore/internal/repository"
)

// デフォルトの保存キー（端末につきカート1つの組み込み利用向け）
const DefaultCartKey = "shopping-cart"

// CartStore は「購入予定」の唯一の保持者。
// すべての変更は 更新→合計再計算→永続化 の順で行い、
// 合計が明細とズレた状態は外から観測できない。
//
// 同じストレージキーを複数プロセスで共有した場合は後勝ち
// （マージも競合解決もしない。カートは記録系ではなくローカルキャッシュ）。
type CartStore struct {
	mu      sync.Mutex
	storage repo.CartStorage
	key     string
	state   model.CartState
}

// NewCartStore は保存済みスナップショットを復元してストアを返す。
// スナップショットが無い・壊れている場合は空のカートとして始まる（エラーにしない）。
func NewCartStore(ctx context.Context, storage repo.CartStorage, key string) *CartStore {
	if key == "" {
		key = DefaultCartKey
	}
	return &CartStore{
		storage: storage,
		key:     key,
		state:   rehydrate(ctx, storage, key),
	}
}

func emptyState() model.CartState {
	return model.CartState{Items: []model.CartLine{}, Total: 0}
}

// 保存済みスナップショットの読み込み。復号失敗は「前回カート無し」と同じ扱い。
func rehydrate(ctx context.Context, storage repo.CartStorage, key string) model.CartState {
	raw, err := storage.Get(ctx, key)
	if err != nil {
		return emptyState()
	}

	var st model.CartState
	if err := json.Unmarshal(raw, &st); err != nil {
		return emptyState()
	}

	// 旧データ許容: 数量1未満の明細は捨て、合計は必ず取り直す
	items := make([]model.CartLine, 0, len(st.Items))
	for _, it := range st.Items {
		if it.ID == "" || it.Quantity < 1 {
			continue
		}
		items = append(items, it)
	}

	return model.CartState{Items: items, Total: computeTotal(items)}
}

func computeTotal(items []model.CartLine) int64 {
	var total int64 = 0
	for _, it := range items {
		total += it.Price * it.Quantity
	}
	return total
}

// 合計を取り直してからストレージへ書き込む（commit時に必ず永続化）。
// 書き込みエラーでもメモリ上の状態は確定済み（可用性優先、呼び出し側はログに回す）。
func (s *CartStore) commit(ctx context.Context) error {
	s.state.Total = computeTotal(s.state.Items)

	raw, err := json.Marshal(s.state)
	if err != nil {
		return err
	}
	return s.storage.Set(ctx, s.key, raw)
}

// AddItem は同一商品なら数量+1、未登録なら数量1で末尾に追加する。
// 何度呼んでも失敗しない（数量が積み上がるだけ）。
func (s *CartStore) AddItem(ctx context.Context, p model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Items {
		if s.state.Items[i].ID == p.ID {
			s.state.Items[i].Quantity++
			return s.commit(ctx)
		}
	}

	s.state.Items = append(s.state.Items, model.CartLine{Product: p, Quantity: 1})
	return s.commit(ctx)
}

// RemoveItem は該当明細を削除する。無ければ何もしない（エラーにしない）。
func (s *CartStore) RemoveItem(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]model.CartLine, 0, len(s.state.Items))
	for _, it := range s.state.Items {
		if it.ID != productID {
			items = append(items, it)
		}
	}
	s.state.Items = items

	return s.commit(ctx)
}

// UpdateQuantity は数量をそのまま置き換える（加算ではない）。
// 0以下は削除と同じ。該当明細が無ければ何もしない。
func (s *CartStore) UpdateQuantity(ctx context.Context, productID string, quantity int64) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Items {
		if s.state.Items[i].ID == productID {
			s.state.Items[i].Quantity = quantity
			break
		}
	}

	return s.commit(ctx)
}

// ClearCart はカートを空にする（注文確定後と明示操作で使う）。
func (s *CartStore) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Items = []model.CartLine{}
	return s.commit(ctx)
}

// ItemCount は全明細の数量合計（バッジ表示用）。
func (s *CartStore) ItemCount() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64 = 0
	for _, it := range s.state.Items {
		n += it.Quantity
	}
	return n
}

// Subtotal はセント単位の小計。
func (s *CartStore) Subtotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Total
}

// 税額の丸めはここ1箇所だけ
func taxOn(subtotal int64, rate float64) int64 {
	return int64(math.Round(float64(subtotal) * rate))
}

// Tax は表示時点の税額（保存しない）。
func (s *CartStore) Tax(rate float64) int64 {
	return taxOn(s.Subtotal(), rate)
}

func (s *CartStore) GrandTotal(rate float64) int64 {
	sub := s.Subtotal()
	return sub + taxOn(sub, rate)
}

// Lines は明細のコピーを返す（外からの直接変更はさせない）。
func (s *CartStore) Lines() []model.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.CartLine, len(s.state.Items))
	copy(out, s.state.Items)
	return out
}

// State は現在のスナップショットのコピーを返す。
func (s *CartStore) State() model.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]model.CartLine, len(s.state.Items))
	copy(items, s.state.Items)
	return model.CartState{Items: items, Total: s.state.Total}
}
