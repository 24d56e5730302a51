// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package models contains the resources served by the recipe API.
package models

// Ingredient is a single recipe input.
type Ingredient struct {
	ID   int    `json:"id,omitempty" yaml:"id,omitempty"`
	Name string `json:"name" yaml:"name"`
	Cost int    `json:"cost" yaml:"cost"` // pennies
}

// RecipeItem references an ingredient and how much of it a recipe needs.
type RecipeItem struct {
	IngredientID int `json:"ingredientId" yaml:"ingredientId"`
	Quantity     int `json:"quantity" yaml:"quantity"`
}

// Recipe is a named list of ingredient quantities.
type Recipe struct {
	ID    int          `json:"id,omitempty" yaml:"id,omitempty"`
	Name  string       `json:"name" yaml:"name"`
	Items []RecipeItem `json:"items,omitempty" yaml:"items,omitempty"`
}

// IngredientIDs returns the ingredient id of every item, in item order.
func (r Recipe) IngredientIDs() []int {
	ids := make([]int, len(r.Items))
	for i, item := range r.Items {
		ids[i] = item.IngredientID
	}

	return ids
}

// Cost returns the total cost of the recipe in pennies given its ingredients,
// keyed by id. Items whose ingredient is unknown count as zero.
func (r Recipe) Cost(ingredients map[int]Ingredient) int {
	total := 0
	for _, item := range r.Items {
		total += ingredients[item.IngredientID].Cost * item.Quantity
	}

	return total
}
