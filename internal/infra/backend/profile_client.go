package backend

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"luxestore/internal/domain/model"
)

// users コレクションのドキュメント
type profileDoc struct {
	UID       string    `json:"uid"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	ZipCode   string    `json:"zipCode"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ProfileClient struct {
	c *Client
}

// DI
func NewProfileClient(c *Client) *ProfileClient {
	return &ProfileClient{c: c}
}

func (g *ProfileClient) Find(ctx context.Context, userID string) (model.UserProfile, error) {
	var doc profileDoc
	if err := g.c.doJSON(ctx, http.MethodGet, "/users/"+url.PathEscape(userID), nil, &doc); err != nil {
		return model.UserProfile{}, err
	}
	return toProfile(doc), nil
}

// Save はドキュメントIDにuidを使ったupsert
func (g *ProfileClient) Save(ctx context.Context, profile model.UserProfile) error {
	path := "/users/" + url.PathEscape(profile.UserID)
	return g.c.doJSON(ctx, http.MethodPut, path, fromProfile(profile), nil)
}

func (g *ProfileClient) Delete(ctx context.Context, userID string) error {
	return g.c.doJSON(ctx, http.MethodDelete, "/users/"+url.PathEscape(userID), nil, nil)
}

func toProfile(d profileDoc) model.UserProfile {
	return model.UserProfile{
		UserID:    d.UID,
		Email:     d.Email,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Address:   d.Address,
		City:      d.City,
		ZipCode:   d.ZipCode,
		Phone:     d.Phone,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func fromProfile(p model.UserProfile) profileDoc {
	return profileDoc{
		UID:       p.UserID,
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
