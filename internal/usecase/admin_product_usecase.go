package usecase

import (
	"context"
	"net/http"
	"strings"

	"luxestore/internal/domain/model"
	repo "luxestore/internal/repository"
)

// AdminProductUsecase は管理画面の商品CRUD。
// 書き込み先は外部Catalogサービス（ロール確認は middleware 側で済んでいる前提だが
// 念のためここでも見る）。
type AdminProductUsecase struct {
	catalog repo.CatalogGateway
}

func NewAdminProductUsecase(catalog repo.CatalogGateway) *AdminProductUsecase {
	return &AdminProductUsecase{catalog: catalog}
}

type AdminProductInput struct {
	Title       string
	Price       int64
	Description string
	Category    string
	Image       string
	RatingRate  float64
	RatingCount int64
}

func validateAdminProductInput(in AdminProductInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return NewHTTPError(http.StatusBadRequest, "title required")
	}
	if in.Price < 0 {
		return NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if strings.TrimSpace(in.Category) == "" {
		return NewHTTPError(http.StatusBadRequest, "category required")
	}
	if in.RatingRate < 0 || in.RatingRate > 5 {
		return NewHTTPError(http.StatusBadRequest, "rating must be 0-5")
	}
	if in.RatingCount < 0 {
		return NewHTTPError(http.StatusBadRequest, "rating count must be >= 0")
	}
	return nil
}

func (u *AdminProductUsecase) CreateProduct(ctx context.Context, admin model.User, in AdminProductInput) (model.Product, error) {
	if admin.Role != model.RoleAdmin {
		return model.Product{}, NewHTTPError(http.StatusForbidden, "admin only")
	}
	if err := validateAdminProductInput(in); err != nil {
		return model.Product{}, err
	}

	created, err := u.catalog.Create(ctx, model.Product{
		Title:       strings.TrimSpace(in.Title),
		Price:       in.Price,
		Description: in.Description,
		Category:    strings.TrimSpace(in.Category),
		Image:       in.Image,
		Rating:      model.Rating{Rate: in.RatingRate, Count: in.RatingCount},
	})
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusBadGateway, "catalog unavailable")
	}
	return created, nil
}

func (u *AdminProductUsecase) UpdateProduct(ctx context.Context, admin model.User, productID string, in AdminProductInput) error {
	if admin.Role != model.RoleAdmin {
		return NewHTTPError(http.StatusForbidden, "admin only")
	}
	if strings.TrimSpace(productID) == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if err := validateAdminProductInput(in); err != nil {
		return err
	}

	err := u.catalog.Update(ctx, model.Product{
		ID:          productID,
		Title:       strings.TrimSpace(in.Title),
		Price:       in.Price,
		Description: in.Description,
		Category:    strings.TrimSpace(in.Category),
		Image:       in.Image,
		Rating:      model.Rating{Rate: in.RatingRate, Count: in.RatingCount},
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusBadGateway, "catalog unavailable")
	}
	return nil
}

func (u *AdminProductUsecase) DeleteProduct(ctx context.Context, admin model.User, productID string) error {
	if admin.Role != model.RoleAdmin {
		return NewHTTPError(http.StatusForbidden, "admin only")
	}
	if strings.TrimSpace(productID) == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	err := u.catalog.Delete(ctx, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusBadGateway, "catalog unavailable")
	}
	return nil
}
