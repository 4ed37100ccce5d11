package backend

import (
	"context"
	"math"
	"net/http"
	"net/url"

	"luxestore/internal/domain/model"
)

// products コレクションのドキュメント。
// バックエンド側の価格は10進（ドル）。モデルとの境界でセントへ変換する。
type productDoc struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      struct {
		Rate  float64 `json:"rate"`
		Count int64   `json:"count"`
	} `json:"rating"`
}

type CatalogClient struct {
	c *Client
}

// DI
func NewCatalogClient(c *Client) *CatalogClient {
	return &CatalogClient{c: c}
}

func (g *CatalogClient) FetchAll(ctx context.Context) ([]model.Product, error) {
	var docs []productDoc
	if err := g.c.doJSON(ctx, http.MethodGet, "/products", nil, &docs); err != nil {
		return nil, err
	}
	return toProducts(docs), nil
}

func (g *CatalogClient) FetchByCategory(ctx context.Context, category string) ([]model.Product, error) {
	var docs []productDoc
	path := "/products?category=" + url.QueryEscape(category)
	if err := g.c.doJSON(ctx, http.MethodGet, path, nil, &docs); err != nil {
		return nil, err
	}
	return toProducts(docs), nil
}

func (g *CatalogClient) FindByID(ctx context.Context, id string) (model.Product, error) {
	var doc productDoc
	if err := g.c.doJSON(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, &doc); err != nil {
		return model.Product{}, err
	}
	return toProduct(doc), nil
}

func (g *CatalogClient) Create(ctx context.Context, p model.Product) (model.Product, error) {
	var doc productDoc
	if err := g.c.doJSON(ctx, http.MethodPost, "/products", fromProduct(p), &doc); err != nil {
		return model.Product{}, err
	}
	return toProduct(doc), nil
}

func (g *CatalogClient) Update(ctx context.Context, p model.Product) error {
	return g.c.doJSON(ctx, http.MethodPatch, "/products/"+url.PathEscape(p.ID), fromProduct(p), nil)
}

func (g *CatalogClient) Delete(ctx context.Context, id string) error {
	return g.c.doJSON(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil, nil)
}

func toProduct(d productDoc) model.Product {
	return model.Product{
		ID:          d.ID,
		Title:       d.Title,
		Price:       centsFromDecimal(d.Price),
		Description: d.Description,
		Category:    d.Category,
		Image:       d.Image,
		Rating: model.Rating{
			Rate:  d.Rating.Rate,
			Count: d.Rating.Count,
		},
	}
}

func toProducts(docs []productDoc) []model.Product {
	out := make([]model.Product, 0, len(docs))
	for _, d := range docs {
		out = append(out, toProduct(d))
	}
	return out
}

func fromProduct(p model.Product) productDoc {
	var d productDoc
	d.ID = p.ID
	d.Title = p.Title
	d.Price = decimalFromCents(p.Price)
	d.Description = p.Description
	d.Category = p.Category
	d.Image = p.Image
	d.Rating.Rate = p.Rating.Rate
	d.Rating.Count = p.Rating.Count
	return d
}

// 10進価格（ドル）→セント。丸めはこの境界だけ。
func centsFromDecimal(v float64) int64 {
	return int64(math.Round(v * 100))
}

func decimalFromCents(c int64) float64 {
	return float64(c) / 100
}
