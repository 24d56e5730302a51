// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color decides whether recipectl writes ANSI colour sequences and wraps
// strings in them when it does.
//
// Colour is disabled when NO_COLOR is set, forced when FORCE_COLOR is set, and
// otherwise follows whether standard output is a terminal.
package color
