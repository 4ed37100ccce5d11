package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"luxestore/internal/domain/model"
	repo "luxestore/internal/repository"
	"luxestore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func adminUser() model.User {
	return model.User{ID: "admin-1", Email: "admin@example.com", Role: model.RoleAdmin}
}

func validAdminInput() usecase.AdminProductInput {
	return usecase.AdminProductInput{
		Title:       "New Product",
		Price:       1500,
		Description: "desc",
		Category:    "electronics",
		RatingRate:  4.0,
		RatingCount: 10,
	}
}

func TestAdminProductUsecase_CreateProduct(t *testing.T) {
	catalog := new(CatalogGatewayMock)
	uc := usecase.NewAdminProductUsecase(catalog)

	catalog.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.Title == "New Product" && p.Price == 1500 && p.Category == "electronics"
	})).Return(model.Product{ID: "prod-new", Title: "New Product", Price: 1500}, nil)

	created, err := uc.CreateProduct(context.Background(), adminUser(), validAdminInput())
	require.NoError(t, err)
	assert.Equal(t, "prod-new", created.ID)
	catalog.AssertExpectations(t)
}

func TestAdminProductUsecase_CreateProduct_NonAdminForbidden(t *testing.T) {
	uc := usecase.NewAdminProductUsecase(new(CatalogGatewayMock))

	user := model.User{ID: "user-1", Role: model.RoleUser}
	_, err := uc.CreateProduct(context.Background(), user, validAdminInput())
	assertErrStatus(t, err, http.StatusForbidden, "admin only")
}

func TestAdminProductUsecase_CreateProduct_Validation(t *testing.T) {
	uc := usecase.NewAdminProductUsecase(new(CatalogGatewayMock))
	ctx := context.Background()

	in := validAdminInput()
	in.Title = "   "
	_, err := uc.CreateProduct(ctx, adminUser(), in)
	assertErrStatus(t, err, http.StatusBadRequest, "title required")

	in = validAdminInput()
	in.Price = -1
	_, err = uc.CreateProduct(ctx, adminUser(), in)
	assertErrStatus(t, err, http.StatusBadRequest, "price must be >= 0")

	in = validAdminInput()
	in.RatingRate = 5.5
	_, err = uc.CreateProduct(ctx, adminUser(), in)
	assertErrStatus(t, err, http.StatusBadRequest, "rating must be 0-5")
}

func TestAdminProductUsecase_UpdateProduct_NotFound(t *testing.T) {
	catalog := new(CatalogGatewayMock)
	uc := usecase.NewAdminProductUsecase(catalog)

	catalog.On("Update", mock.Anything, mock.Anything).Return(repo.ErrNotFound)

	err := uc.UpdateProduct(context.Background(), adminUser(), "nope", validAdminInput())
	assertErrStatus(t, err, http.StatusNotFound, "not found")
}

func TestAdminProductUsecase_DeleteProduct_RemoteFailure(t *testing.T) {
	catalog := new(CatalogGatewayMock)
	uc := usecase.NewAdminProductUsecase(catalog)

	catalog.On("Delete", mock.Anything, "prod-a").Return(errors.New("backend down"))

	err := uc.DeleteProduct(context.Background(), adminUser(), "prod-a")
	assertErrStatus(t, err, http.StatusBadGateway, "catalog unavailable")
}
