// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package api is a small CRUD client for the recipe REST API.
//
// A Client owns the base URL, the HTTP client and an optional request rate
// limit. Service binds a Client to one collection route and speaks JSON:
//
//	GET  <base><route>        list
//	GET  <base><route>/<id>   detail
//	POST <base><route>        create
//
// Any non-2xx response is returned as *Error. Nothing is retried.
package api
