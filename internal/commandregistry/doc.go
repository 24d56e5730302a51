// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package commandregistry maps command names to their handlers.
//
// Commands are kept in registration order so the usage table lists them the
// way they were registered. A registry is populated once at start-up and only
// read afterwards.
package commandregistry
