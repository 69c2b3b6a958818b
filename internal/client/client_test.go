package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlinks/internal/model"
)

func TestClient_CreateShortLink(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/alias", r.URL.Path)

		var req model.AliasRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "https://example.com", req.URL)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		err := json.NewEncoder(w).Encode(model.AliasResponse{
			Alias: "abc123",
			Links: model.AliasLinks{
				Self:  "https://example.com",
				Short: "https://short.ly/abc123",
			},
		})
		require.NoError(t, err)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)

	rec, err := c.CreateShortLink(context.Background(), "https://example.com")
	require.NoError(t, err)

	assert.Equal(t, "abc123", rec.ID)
	assert.Equal(t, "https://example.com", rec.OriginalURL)
	assert.Equal(t, "https://short.ly/abc123", rec.ShortenedURL)
}

func TestClient_CreateShortLink_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, err := w.Write([]byte(`{"message":"alias storage unavailable"}`))
		require.NoError(t, err)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)

	rec, err := c.CreateShortLink(context.Background(), "https://example.com")
	assert.Nil(t, rec)

	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusInternalServerError, remoteErr.StatusCode)
	assert.Equal(t, "alias storage unavailable", remoteErr.Message)
}

func TestClient_CreateShortLink_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := New(srv.URL, 20*time.Millisecond)

	rec, err := c.CreateShortLink(context.Background(), "https://example.com")
	assert.Nil(t, rec)

	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Zero(t, remoteErr.StatusCode)
}

func TestClient_FetchShortLink(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/alias/abc123", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(model.AliasResponse{
			Alias: "abc123",
			Links: model.AliasLinks{
				Self:  "https://example.com",
				Short: "https://short.ly/abc123",
			},
		})
		require.NoError(t, err)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)

	rec, err := c.FetchShortLink(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", rec.ID)
}

func TestClient_FetchShortLink_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte(`{"message":"alias not found"}`))
		require.NoError(t, err)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)

	rec, err := c.FetchShortLink(context.Background(), "missing")
	assert.Nil(t, rec)
	assert.True(t, errors.Is(err, ErrNotFound), "want ErrNotFound, got %v", err)
}
