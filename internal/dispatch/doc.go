// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package dispatch runs one command from a raw argument list.
//
// The first argument names the command and the second, if any, is its
// parameter. Unknown commands print the usage table and exit with
// ExitFailure. Known commands run to completion; their return value or error
// (including a panic) is normalized into a result.Result and written as
// structured text, successes to the standard writer and failures to the
// error writer.
package dispatch
