// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/matt-FFFFFF/recipectl/internal/api"
	"github.com/matt-FFFFFF/recipectl/internal/api/apitest"
	"github.com/matt-FFFFFF/recipectl/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_BaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "default", in: "", want: api.DefaultBaseURL},
		{name: "adds slash", in: "http://example.com:8080", want: "http://example.com:8080/"},
		{name: "keeps path", in: "https://example.com/v1/", want: "https://example.com/v1/"},
		{name: "no scheme", in: "example.com", wantErr: true},
		{name: "bad scheme", in: "ftp://example.com/", wantErr: true},
		{name: "unparsable", in: "http://[::1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := api.NewClient(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, api.ErrInvalidBaseURL)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, c.BaseURL())
		})
	}
}

func TestService_URLs(t *testing.T) {
	c, err := api.NewClient("http://localhost:5000")
	require.NoError(t, err)

	recipes := api.Recipes(c)
	assert.Equal(t, "http://localhost:5000/recipes", recipes.ListURL())
	assert.Equal(t, "http://localhost:5000/recipes/7", recipes.DetailURL(7))
	assert.Equal(t, "http://localhost:5000/ingredients/1", api.Ingredients(c).DetailURL(1))
}

func TestService_RoundTrip(t *testing.T) {
	srv := apitest.New(t)
	c, err := api.NewClient(srv.BaseURL())
	require.NoError(t, err)

	ctx := t.Context()
	ingredients := api.Ingredients(c)

	empty, err := ingredients.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	created, err := ingredients.Create(ctx, models.Ingredient{Name: "Luck", Cost: 1})
	require.NoError(t, err)
	assert.Equal(t, models.Ingredient{ID: 1, Name: "Luck", Cost: 1}, created)

	got, err := ingredients.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	all, err := ingredients.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Ingredient{created}, all)
}

func TestService_NotFound(t *testing.T) {
	srv := apitest.New(t)
	c, err := api.NewClient(srv.BaseURL())
	require.NoError(t, err)

	_, err = api.Recipes(c).Get(t.Context(), 99)
	require.Error(t, err)
	assert.True(t, api.IsNotFound(err))

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, srv.URL+"/recipes/99", apiErr.URL)
	assert.Equal(t, "APIError", apiErr.Name())
	assert.Equal(t,
		"error interacting with data source. URL: "+srv.URL+"/recipes/99. Code: 404",
		err.Error())
}

func TestService_ServerError(t *testing.T) {
	srv := apitest.New(t)
	srv.FailWith(http.StatusInternalServerError)

	c, err := api.NewClient(srv.BaseURL())
	require.NoError(t, err)

	_, err = api.Recipes(c).List(t.Context())

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "Internal Server Error")
	assert.False(t, api.IsNotFound(err))
}

func TestClient_Timeout(t *testing.T) {
	srv := apitest.New(t)
	srv.Hold()
	t.Cleanup(srv.Release)

	c, err := api.NewClient(srv.BaseURL(), api.WithTimeout(30*time.Millisecond))
	require.NoError(t, err)

	_, err = api.Recipes(c).List(context.Background())
	require.Error(t, err)
}

func TestClient_ContextCancel(t *testing.T) {
	srv := apitest.New(t)
	srv.Hold()
	t.Cleanup(srv.Release)

	c, err := api.NewClient(srv.BaseURL())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err = api.Recipes(c).List(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_RateLimit(t *testing.T) {
	srv := apitest.New(t)
	c, err := api.NewClient(srv.BaseURL(), api.WithRateLimit(20, 1))
	require.NoError(t, err)

	start := time.Now()

	for range 3 {
		_, err := api.Ingredients(c).List(t.Context())
		require.NoError(t, err)
	}

	// burst of one then two waits of 50ms
	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
	assert.Equal(t, 3, srv.Requests())
}

func TestClient_RateLimitCancelled(t *testing.T) {
	srv := apitest.New(t)
	c, err := api.NewClient(srv.BaseURL(), api.WithRateLimit(0.1, 1))
	require.NoError(t, err)

	_, err = api.Ingredients(c).List(t.Context())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = api.Ingredients(c).List(ctx)
	require.Error(t, err)
	assert.Equal(t, 1, srv.Requests())
}
