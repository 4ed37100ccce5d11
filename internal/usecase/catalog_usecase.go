package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"luxestore/internal/domain/model"
	repo "luxestore/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// CatalogUsecase は商品閲覧のロジック。実体は外部Catalogサービス。
type CatalogUsecase struct {
	catalog repo.CatalogGateway
}

// DI
func NewCatalogUsecase(catalog repo.CatalogGateway) *CatalogUsecase {
	return &CatalogUsecase{catalog: catalog}
}

type ProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int             `json:"total"`
}

// ListProducts は全件またはカテゴリ絞り込みの一覧。
// 外部サービスの失敗は502で返す（リトライ可能として利用者に見せる）。
func (u *CatalogUsecase) ListProducts(ctx context.Context, category string) (ProductListOutput, error) {
	category = strings.TrimSpace(category)
	if len(category) > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid category")
	}

	var (
		items []model.Product
		err   error
	)
	if category == "" {
		items, err = u.catalog.FetchAll(ctx)
	} else {
		items, err = u.catalog.FetchByCategory(ctx, category)
	}
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusBadGateway, "catalog unavailable")
	}

	if items == nil {
		items = []model.Product{}
	}
	return ProductListOutput{Items: items, Total: len(items)}, nil
}

func (u *CatalogUsecase) GetProductDetail(ctx context.Context, productID string) (model.Product, error) {
	if strings.TrimSpace(productID) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.catalog.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusBadGateway, "catalog unavailable")
	}
	return p, nil
}
