package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"luxestore/internal/domain/model"
	"luxestore/internal/infra/localstore"
	repo "luxestore/internal/repository"
	"luxestore/internal/usecase"
	"luxestore/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =====================
// ProfileGateway モック
// =====================

type ProfileGatewayMock struct{ mock.Mock }

var _ repo.ProfileGateway = (*ProfileGatewayMock)(nil)

func (m *ProfileGatewayMock) Find(ctx context.Context, userID string) (model.UserProfile, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).(model.UserProfile)
	return p, args.Error(1)
}

func (m *ProfileGatewayMock) Save(ctx context.Context, profile model.UserProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *ProfileGatewayMock) Delete(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

// =====================
// fixture
// =====================

var profileTestNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newProfileFixture(t *testing.T) (*usecase.ProfileUsecase, *ProfileGatewayMock, *CheckoutOrderGatewayMock, *usecase.CartManager) {
	t.Helper()

	profiles := new(ProfileGatewayMock)
	orders := new(CheckoutOrderGatewayMock)
	carts := usecase.NewCartManager(localstore.NewMemoryStore())

	uc := usecase.NewProfileUsecase(
		profiles,
		orders,
		carts,
		validator.NewProfileValidator(),
		&fixedClock{now: profileTestNow},
	)
	return uc, profiles, orders, carts
}

func profileUser() model.User {
	return model.User{ID: "user-1", Email: "taro@example.com", Role: model.RoleUser}
}

func savedProfile() model.UserProfile {
	return model.UserProfile{
		UserID:    "user-1",
		Email:     "taro@example.com",
		FirstName: "Taro",
		LastName:  "Yamada",
		Address:   "1-2-3 Chuo",
		City:      "Tokyo",
		ZipCode:   "100-0001",
		Phone:     "090-0000-0000",
		CreatedAt: profileTestNow.Add(-24 * time.Hour),
		UpdatedAt: profileTestNow.Add(-time.Hour),
	}
}

// =====================
// GetMyProfile
// =====================

func TestProfileUsecase_GetMyProfile(t *testing.T) {
	uc, profiles, _, _ := newProfileFixture(t)
	profiles.On("Find", mock.Anything, "user-1").Return(savedProfile(), nil)

	out, err := uc.GetMyProfile(context.Background(), profileUser())
	require.NoError(t, err)
	assert.Equal(t, "user-1", out.UserID)
	assert.Equal(t, "Taro", out.FirstName)
	assert.Equal(t, "100-0001", out.ZipCode)
}

// 未保存の初回はトークン由来のuid/emailだけ入った空プロフィール
func TestProfileUsecase_GetMyProfile_NotSavedYet(t *testing.T) {
	uc, profiles, _, _ := newProfileFixture(t)
	profiles.On("Find", mock.Anything, "user-1").Return(model.UserProfile{}, repo.ErrNotFound)

	out, err := uc.GetMyProfile(context.Background(), profileUser())
	require.NoError(t, err)
	assert.Equal(t, "user-1", out.UserID)
	assert.Equal(t, "taro@example.com", out.Email)
	assert.Empty(t, out.FirstName)
	assert.True(t, out.CreatedAt.IsZero())
}

func TestProfileUsecase_GetMyProfile_RemoteFailure(t *testing.T) {
	uc, profiles, _, _ := newProfileFixture(t)
	profiles.On("Find", mock.Anything, "user-1").Return(model.UserProfile{}, errors.New("backend down"))

	_, err := uc.GetMyProfile(context.Background(), profileUser())
	assertErrStatus(t, err, http.StatusBadGateway, "account service unavailable")
}

func TestProfileUsecase_GetMyProfile_Unauthorized(t *testing.T) {
	uc, _, _, _ := newProfileFixture(t)

	_, err := uc.GetMyProfile(context.Background(), model.User{})
	assertErrStatus(t, err, http.StatusUnauthorized, "unauthorized")
}

// =====================
// UpdateMyProfile
// =====================

func TestProfileUsecase_UpdateMyProfile_FirstSave(t *testing.T) {
	uc, profiles, _, _ := newProfileFixture(t)
	profiles.On("Find", mock.Anything, "user-1").Return(model.UserProfile{}, repo.ErrNotFound)
	profiles.On("Save", mock.Anything, mock.MatchedBy(func(p model.UserProfile) bool {
		return p.UserID == "user-1" &&
			p.Email == "taro@example.com" &&
			p.FirstName == "Taro" &&
			p.City == "Tokyo" &&
			p.CreatedAt.Equal(profileTestNow) &&
			p.UpdatedAt.Equal(profileTestNow)
	})).Return(nil)

	out, err := uc.UpdateMyProfile(context.Background(), profileUser(), usecase.UpdateProfileInput{
		FirstName: "  Taro ",
		LastName:  "Yamada",
		City:      " Tokyo ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Taro", out.FirstName)
	profiles.AssertExpectations(t)
}

// 2回目以降の保存は作成日時を引き継ぐ
func TestProfileUsecase_UpdateMyProfile_KeepsCreatedAt(t *testing.T) {
	uc, profiles, _, _ := newProfileFixture(t)
	existing := savedProfile()
	profiles.On("Find", mock.Anything, "user-1").Return(existing, nil)
	profiles.On("Save", mock.Anything, mock.MatchedBy(func(p model.UserProfile) bool {
		return p.CreatedAt.Equal(existing.CreatedAt) && p.UpdatedAt.Equal(profileTestNow)
	})).Return(nil)

	_, err := uc.UpdateMyProfile(context.Background(), profileUser(), usecase.UpdateProfileInput{
		FirstName: "Taro",
		LastName:  "Yamada",
	})
	require.NoError(t, err)
	profiles.AssertExpectations(t)
}

func TestProfileUsecase_UpdateMyProfile_FirstNameRequired(t *testing.T) {
	uc, profiles, _, _ := newProfileFixture(t)
	profiles.On("Find", mock.Anything, "user-1").Return(model.UserProfile{}, repo.ErrNotFound)

	_, err := uc.UpdateMyProfile(context.Background(), profileUser(), usecase.UpdateProfileInput{
		LastName: "Yamada",
	})
	assertErrStatus(t, err, http.StatusBadRequest, "first name is required")
	profiles.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProfileUsecase_UpdateMyProfile_SaveFailure(t *testing.T) {
	uc, profiles, _, _ := newProfileFixture(t)
	profiles.On("Find", mock.Anything, "user-1").Return(model.UserProfile{}, repo.ErrNotFound)
	profiles.On("Save", mock.Anything, mock.Anything).Return(errors.New("backend down"))

	_, err := uc.UpdateMyProfile(context.Background(), profileUser(), usecase.UpdateProfileInput{
		FirstName: "Taro",
		LastName:  "Yamada",
	})
	assertErrStatus(t, err, http.StatusBadGateway, "account service unavailable")
}

// =====================
// DeleteMyAccount
// =====================

func TestProfileUsecase_DeleteMyAccount(t *testing.T) {
	ctx := context.Background()

	profiles := new(ProfileGatewayMock)
	orders := new(CheckoutOrderGatewayMock)
	storage := localstore.NewMemoryStore()
	carts := usecase.NewCartManager(storage)

	uc := usecase.NewProfileUsecase(profiles, orders, carts, validator.NewProfileValidator(), &fixedClock{now: profileTestNow})

	// 退会前にカートへ入れておく
	store := carts.ForUser(ctx, "user-1")
	require.NoError(t, store.AddItem(ctx, productA()))

	profiles.On("Delete", mock.Anything, "user-1").Return(nil)
	orders.On("DeleteByUserID", mock.Anything, "user-1").Return(nil)

	require.NoError(t, uc.DeleteMyAccount(ctx, profileUser()))

	// カートは空スナップショットまで書き戻されている
	restored := usecase.NewCartManager(storage).ForUser(ctx, "user-1")
	assert.Equal(t, int64(0), restored.ItemCount())

	profiles.AssertExpectations(t)
	orders.AssertExpectations(t)
}

func TestProfileUsecase_DeleteMyAccount_ProfileAlreadyGone(t *testing.T) {
	uc, profiles, orders, _ := newProfileFixture(t)

	profiles.On("Delete", mock.Anything, "user-1").Return(repo.ErrNotFound)
	orders.On("DeleteByUserID", mock.Anything, "user-1").Return(nil)

	assert.NoError(t, uc.DeleteMyAccount(context.Background(), profileUser()))
}

func TestProfileUsecase_DeleteMyAccount_OrderCascadeFailure(t *testing.T) {
	uc, profiles, orders, _ := newProfileFixture(t)

	profiles.On("Delete", mock.Anything, "user-1").Return(nil)
	orders.On("DeleteByUserID", mock.Anything, "user-1").Return(errors.New("backend down"))

	err := uc.DeleteMyAccount(context.Background(), profileUser())
	assertErrStatus(t, err, http.StatusBadGateway, "order service unavailable")
}
