package usecase

import (
	"sync"

	"luxestore/internal/domain/model"
)

// サインイン状態の変化（nil=サインアウト）を受け取るコールバック
type AuthStateListener func(user *model.User)

// Session は現在のサインイン状態と、その変化の購読口。
// CartStore自体は認証に依存しない。カートやチェックアウトの見せる/見せないは
// 上位（HTTP層や組み込み側）がここを見て決める。
type Session struct {
	mu        sync.Mutex
	current   *model.User
	nextID    int
	listeners map[int]AuthStateListener
}

func NewSession() *Session {
	return &Session{listeners: map[int]AuthStateListener{}}
}

// CurrentUser はサインイン中の利用者（未サインインなら nil, false）。
func (s *Session) CurrentUser() (*model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, false
	}
	u := *s.current
	return &u, true
}

// Subscribe は状態遷移の購読を開始し、解除用の関数を返す。
// 登録時点の状態も即時に1回通知する（復元直後のUI同期用）。
func (s *Session) Subscribe(fn AuthStateListener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	current := s.current
	s.mu.Unlock()

	fn(copyUser(current))

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Observe は検証済みの利用者を反映する。同一利用者なら通知しない。
func (s *Session) Observe(user model.User) {
	s.mu.Lock()
	if s.current != nil && s.current.ID == user.ID {
		s.current = &user
		s.mu.Unlock()
		return
	}
	s.current = &user
	listeners := snapshotListeners(s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(copyUser(&user))
	}
}

// SignOut はサインアウト遷移を通知する。
func (s *Session) SignOut() {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return
	}
	s.current = nil
	listeners := snapshotListeners(s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(nil)
	}
}

func snapshotListeners(m map[int]AuthStateListener) []AuthStateListener {
	out := make([]AuthStateListener, 0, len(m))
	for _, fn := range m {
		out = append(out, fn)
	}
	return out
}

func copyUser(u *model.User) *model.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
