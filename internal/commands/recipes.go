// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package commands

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/matt-FFFFFF/recipectl/internal/ctxlog"
	"github.com/matt-FFFFFF/recipectl/internal/models"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrMissingRecipeID is returned by getRecipe without a parameter.
	ErrMissingRecipeID = errors.New("missing recipe ID")
	// ErrInvalidRecipeID is returned by getRecipe when the parameter is not an integer.
	ErrInvalidRecipeID = errors.New("invalid recipe ID")
)

// RecipeDetail is a recipe with the ingredients of its items, in item order.
type RecipeDetail struct {
	Recipe      models.Recipe       `json:"recipe"                yaml:"recipe"`
	Ingredients []models.Ingredient `json:"ingredients,omitempty" yaml:"ingredients,omitempty"`
}

// Catalog is the content of both collections.
type Catalog struct {
	Recipes     []models.Recipe     `json:"recipes"     yaml:"recipes"`
	Ingredients []models.Ingredient `json:"ingredients" yaml:"ingredients"`
}

func (h *handlers) getRecipe(ctx context.Context, param string) (any, error) {
	id, err := parseID(param, ErrMissingRecipeID, ErrInvalidRecipeID)
	if err != nil {
		return nil, err
	}

	recipe, err := h.recipes.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &RecipeDetail{Recipe: recipe}
	if len(recipe.Items) == 0 {
		return detail, nil
	}

	ids := recipe.IngredientIDs()
	detail.Ingredients = make([]models.Ingredient, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.concurrency)

	for i, ingredientID := range ids {
		g.Go(func() error {
			ing, err := h.ingredients.Get(gctx, ingredientID)
			if err != nil {
				return err
			}

			detail.Ingredients[i] = ing

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	ctxlog.Debug(ctx, "fetched recipe", "id", id, "ingredients", len(ids))

	return detail, nil
}

func (h *handlers) getAll(ctx context.Context, _ string) (any, error) {
	all := &Catalog{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		all.Recipes, err = h.recipes.List(gctx)

		return err
	})

	g.Go(func() error {
		var err error
		all.Ingredients, err = h.ingredients.List(gctx)

		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return all, nil
}

func (h *handlers) createRecipe(ctx context.Context, param string) (any, error) {
	var body models.Recipe
	if err := decodeBody(param, &body); err != nil {
		return nil, err
	}

	if strings.TrimSpace(body.Name) == "" {
		return nil, ErrNameRequired
	}

	body.ID = 0

	return h.recipes.Create(ctx, body)
}

// parseID parses a positive decimal id. Trailing garbage is rejected.
func parseID(param string, missing, invalid error) (int, error) {
	param = strings.TrimSpace(param)
	if param == "" {
		return 0, missing
	}

	id, err := strconv.Atoi(param)
	if err != nil {
		return 0, invalid
	}

	return id, nil
}
