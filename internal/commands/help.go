// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package commands

import (
	"context"
	"io"

	"github.com/matt-FFFFFF/recipectl/internal/usage"
)

func (h *handlers) help(_ context.Context, _ string) (any, error) {
	_, err := io.WriteString(h.out, usage.Render(h.program, h.registry.Usage()))

	return nil, err
}
