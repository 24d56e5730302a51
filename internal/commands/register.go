// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"io"
	"os"

	"github.com/matt-FFFFFF/recipectl/internal/api"
	"github.com/matt-FFFFFF/recipectl/internal/commandregistry"
	"github.com/matt-FFFFFF/recipectl/internal/models"
)

// Command names.
const (
	Help             = "help"
	GetRecipe        = "getRecipe"
	GetIngredient    = "getIngredient"
	GetAll           = "getAll"
	CreateIngredient = "createIngredient"
	CreateRecipe     = "createRecipe"
	CreateSampleData = "createSampleData"
)

// DefaultConcurrency bounds the number of parallel ingredient fetches.
const DefaultConcurrency = 4

// ErrNilClient is returned by Register when no API client is given.
var ErrNilClient = errors.New("commands need an API client")

// Env is what the handlers need from their surroundings.
type Env struct {
	Client      *api.Client
	Program     string    // Program name shown in the help table
	Out         io.Writer // Destination of the help table, os.Stdout when nil
	Concurrency int       // Parallel fetch limit, DefaultConcurrency when < 1
}

type handlers struct {
	recipes     *api.Service[models.Recipe]
	ingredients *api.Service[models.Ingredient]
	registry    *commandregistry.Registry
	program     string
	out         io.Writer
	concurrency int
}

// Register adds every recipectl command to r, in help table order.
func Register(r *commandregistry.Registry, env Env) error {
	if env.Client == nil {
		return ErrNilClient
	}

	h := &handlers{
		recipes:     api.Recipes(env.Client),
		ingredients: api.Ingredients(env.Client),
		registry:    r,
		program:     env.Program,
		out:         env.Out,
		concurrency: env.Concurrency,
	}

	if h.out == nil {
		h.out = os.Stdout
	}

	if h.concurrency < 1 {
		h.concurrency = DefaultConcurrency
	}

	cmds := []commandregistry.Command{
		{
			Name:        Help,
			Description: "Display this message",
			Handler:     h.help,
		},
		{
			Name:        GetRecipe,
			Param:       "id: int - id of recipe",
			Description: "fetch a recipe by id",
			Handler:     h.getRecipe,
		},
		{
			Name:        GetIngredient,
			Param:       "id: int - id of ingredient",
			Description: "fetch an ingredient by id",
			Handler:     h.getIngredient,
		},
		{
			Name:        GetAll,
			Description: "Fetch all recipes and ingredients",
			Handler:     h.getAll,
		},
		{
			Name:        CreateIngredient,
			Param:       `json: {"name","cost"}`,
			Description: "create an ingredient, cost is in pennies",
			Handler:     h.createIngredient,
		},
		{
			Name:        CreateRecipe,
			Param:       `json: {"name","items"}`,
			Description: "create a recipe from ingredient ids and quantities",
			Handler:     h.createRecipe,
		},
		{
			Name:        CreateSampleData,
			Description: "create some sample data in the database for testing purposes",
			Handler:     h.createSampleData,
		},
	}

	for _, cmd := range cmds {
		if err := r.Register(cmd); err != nil {
			return err
		}
	}

	return nil
}
