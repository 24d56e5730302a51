// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/matt-FFFFFF/recipectl/internal/models"
)

// Collection routes served by the API.
const (
	RecipesRoute     = "recipes"
	IngredientsRoute = "ingredients"
)

// Service performs CRUD calls for one collection.
type Service[T any] struct {
	client *Client
	route  string
}

// NewService binds client to route, e.g. "recipes".
func NewService[T any](client *Client, route string) *Service[T] {
	return &Service[T]{client: client, route: route}
}

// Recipes returns the service for the recipes collection.
func Recipes(client *Client) *Service[models.Recipe] {
	return NewService[models.Recipe](client, RecipesRoute)
}

// Ingredients returns the service for the ingredients collection.
func Ingredients(client *Client) *Service[models.Ingredient] {
	return NewService[models.Ingredient](client, IngredientsRoute)
}

// ListURL is the URL of the collection.
func (s *Service[T]) ListURL() string {
	return s.client.URL(s.route)
}

// DetailURL is the URL of one member of the collection.
func (s *Service[T]) DetailURL(id int) string {
	return s.client.URL(s.route, strconv.Itoa(id))
}

// List fetches every member of the collection.
func (s *Service[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := s.client.Do(ctx, http.MethodGet, s.ListURL(), nil, &out); err != nil {
		return nil, err
	}

	if out == nil {
		out = []T{}
	}

	return out, nil
}

// Get fetches the member with the given id.
func (s *Service[T]) Get(ctx context.Context, id int) (T, error) {
	var out T
	err := s.client.Do(ctx, http.MethodGet, s.DetailURL(id), nil, &out)

	return out, err
}

// Create posts body to the collection and returns the stored member.
func (s *Service[T]) Create(ctx context.Context, body T) (T, error) {
	var out T
	err := s.client.Do(ctx, http.MethodPost, s.ListURL(), body, &out)

	return out, err
}
