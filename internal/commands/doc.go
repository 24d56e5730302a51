// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package commands provides the recipectl command handlers and registers them
// in a command registry.
//
// Each handler receives the optional positional parameter as a string and
// returns a value that is rendered as the response of a success result.
package commands
