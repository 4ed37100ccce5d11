package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"luxestore/internal/domain/model"
	"luxestore/internal/infra/backend"
	repo "luxestore/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileFixture(t *testing.T, handler http.HandlerFunc) *backend.ProfileClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return backend.NewProfileClient(backend.NewClient(srv.URL, "test-key"))
}

func TestProfileClient_Find(t *testing.T) {
	c := newProfileFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/user-1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"uid":       "user-1",
			"email":     "taro@example.com",
			"firstName": "Taro",
			"zipCode":   "100-0001",
		})
	})

	p, err := c.Find(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", p.UserID)
	assert.Equal(t, "Taro", p.FirstName)
	assert.Equal(t, "100-0001", p.ZipCode)
}

func TestProfileClient_Find_NotFound(t *testing.T) {
	c := newProfileFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.Find(context.Background(), "nope")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestProfileClient_Save_PutsByUID(t *testing.T) {
	c := newProfileFixture(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/users/user-1", r.URL.Path)

		var doc map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&doc))
		assert.Equal(t, "user-1", doc["uid"])
		assert.Equal(t, "Taro", doc["firstName"])

		w.WriteHeader(http.StatusNoContent)
	})

	err := c.Save(context.Background(), model.UserProfile{UserID: "user-1", FirstName: "Taro"})
	assert.NoError(t, err)
}

func TestProfileClient_Delete(t *testing.T) {
	var deleted string
	c := newProfileFixture(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		deleted = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.Delete(context.Background(), "user-1"))
	assert.Equal(t, "/users/user-1", deleted)
}
