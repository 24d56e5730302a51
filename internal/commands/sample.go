// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package commands

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/recipectl/internal/models"
)

// Sample data created by createSampleData. Costs are in pennies.
var (
	sampleIngredients = []models.Ingredient{
		{Name: "Luck", Cost: 1},
		{Name: "Power", Cost: 100},
	}
	sampleRecipeName = "Victory Pie"
	sampleQuantities = []int{10, 30}
)

// createSampleData creates the ingredients one after the other, then a recipe
// that uses all of them. A failure stops the sequence; whatever was created
// before it stays in the database.
func (h *handlers) createSampleData(ctx context.Context, _ string) (any, error) {
	out := &Catalog{
		Recipes:     make([]models.Recipe, 0, 1),
		Ingredients: make([]models.Ingredient, 0, len(sampleIngredients)),
	}

	for _, ing := range sampleIngredients {
		created, err := h.ingredients.Create(ctx, ing)
		if err != nil {
			return nil, fmt.Errorf("creating ingredient %q: %w", ing.Name, err)
		}

		out.Ingredients = append(out.Ingredients, created)
	}

	recipe := models.Recipe{Name: sampleRecipeName}
	for i, ing := range out.Ingredients {
		recipe.Items = append(recipe.Items, models.RecipeItem{
			IngredientID: ing.ID,
			Quantity:     sampleQuantities[i],
		})
	}

	created, err := h.recipes.Create(ctx, recipe)
	if err != nil {
		return nil, fmt.Errorf("creating recipe %q: %w", recipe.Name, err)
	}

	out.Recipes = append(out.Recipes, created)

	return out, nil
}
