// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/matt-FFFFFF/recipectl/internal/models"
)

var (
	// ErrMissingIngredientID is returned by getIngredient without a parameter.
	ErrMissingIngredientID = errors.New("missing ingredient ID")
	// ErrInvalidIngredientID is returned by getIngredient when the parameter is not an integer.
	ErrInvalidIngredientID = errors.New("invalid ingredient ID")
	// ErrMissingBody is returned by the create commands without a parameter.
	ErrMissingBody = errors.New("missing JSON body")
	// ErrInvalidBody is returned by the create commands when the parameter is not valid JSON.
	ErrInvalidBody = errors.New("invalid JSON body")
	// ErrNameRequired is returned by the create commands when the body has no name.
	ErrNameRequired = errors.New("name is required")
)

func (h *handlers) getIngredient(ctx context.Context, param string) (any, error) {
	id, err := parseID(param, ErrMissingIngredientID, ErrInvalidIngredientID)
	if err != nil {
		return nil, err
	}

	return h.ingredients.Get(ctx, id)
}

func (h *handlers) createIngredient(ctx context.Context, param string) (any, error) {
	var body models.Ingredient
	if err := decodeBody(param, &body); err != nil {
		return nil, err
	}

	if strings.TrimSpace(body.Name) == "" {
		return nil, ErrNameRequired
	}

	body.ID = 0

	return h.ingredients.Create(ctx, body)
}

func decodeBody(param string, v any) error {
	if strings.TrimSpace(param) == "" {
		return ErrMissingBody
	}

	if err := json.Unmarshal([]byte(param), v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}

	return nil
}
