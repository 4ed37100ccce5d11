package usecase

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"luxestore/internal/domain/model"
	repo "luxestore/internal/repository"
)

// プロフィールの検証。実装は validator パッケージ。
type ProfileValidator interface {
	ValidateProfile(in model.UserProfile) error
}

// ProfileUsecase は外部DBの users コレクションに対する本人分のCRUD。
// 退会時は注文のカスケード削除とカートの破棄まで行う。
type ProfileUsecase struct {
	profiles  repo.ProfileGateway
	orders    repo.OrderGateway
	carts     *CartManager
	validator ProfileValidator
	clock     Clock
}

func NewProfileUsecase(
	profiles repo.ProfileGateway,
	orders repo.OrderGateway,
	carts *CartManager,
	validator ProfileValidator,
	clock Clock,
) *ProfileUsecase {
	return &ProfileUsecase{
		profiles:  profiles,
		orders:    orders,
		carts:     carts,
		validator: validator,
		clock:     clock,
	}
}

type ProfileResponse struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	ZipCode   string    `json:"zip_code"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateProfileInput struct {
	FirstName string
	LastName  string
	Address   string
	City      string
	ZipCode   string
	Phone     string
}

// GetMyProfile は本人のプロフィールを返す。
// 未保存（初回）はトークン由来のuid/emailだけ埋めた空プロフィールを返す。
func (u *ProfileUsecase) GetMyProfile(ctx context.Context, user model.User) (ProfileResponse, error) {
	if user.ID == "" {
		return ProfileResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	p, err := u.profiles.Find(ctx, user.ID)
	if err == repo.ErrNotFound {
		return ProfileResponse{UserID: user.ID, Email: user.Email}, nil
	}
	if err != nil {
		return ProfileResponse{}, NewHTTPError(http.StatusBadGateway, "account service unavailable")
	}
	return toProfileResponse(p), nil
}

// UpdateMyProfile はupsert。初回保存なら作成日時もここで入る。
func (u *ProfileUsecase) UpdateMyProfile(ctx context.Context, user model.User, in UpdateProfileInput) (ProfileResponse, error) {
	if user.ID == "" {
		return ProfileResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	now := u.clock.Now()
	createdAt := now

	existing, err := u.profiles.Find(ctx, user.ID)
	if err == nil && !existing.CreatedAt.IsZero() {
		createdAt = existing.CreatedAt
	}
	if err != nil && err != repo.ErrNotFound {
		return ProfileResponse{}, NewHTTPError(http.StatusBadGateway, "account service unavailable")
	}

	p := model.UserProfile{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Address:   strings.TrimSpace(in.Address),
		City:      strings.TrimSpace(in.City),
		ZipCode:   strings.TrimSpace(in.ZipCode),
		Phone:     strings.TrimSpace(in.Phone),
		CreatedAt: createdAt,
		UpdatedAt: now,
	}

	if err := u.validator.ValidateProfile(p); err != nil {
		return ProfileResponse{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := u.profiles.Save(ctx, p); err != nil {
		return ProfileResponse{}, NewHTTPError(http.StatusBadGateway, "account service unavailable")
	}
	return toProfileResponse(p), nil
}

// DeleteMyAccount はプロフィールと注文履歴を外部DBから消し、カートも破棄する。
// 認証アカウント自体の削除は外部認証サービス側で行う。
func (u *ProfileUsecase) DeleteMyAccount(ctx context.Context, user model.User) error {
	if user.ID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	if err := u.profiles.Delete(ctx, user.ID); err != nil && err != repo.ErrNotFound {
		return NewHTTPError(http.StatusBadGateway, "account service unavailable")
	}

	if err := u.orders.DeleteByUserID(ctx, user.ID); err != nil {
		return NewHTTPError(http.StatusBadGateway, "order service unavailable")
	}

	store := u.carts.ForUser(ctx, user.ID)
	if err := store.ClearCart(ctx); err != nil {
		slog.Warn("cart persist failed on account delete", "user_id", user.ID, "err", err)
	}
	u.carts.Release(user.ID)

	return nil
}

func toProfileResponse(p model.UserProfile) ProfileResponse {
	return ProfileResponse{
		UserID:    p.UserID,
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Address:   p.Address,
		City:      p.City,
		ZipCode:   p.ZipCode,
		Phone:     p.Phone,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
