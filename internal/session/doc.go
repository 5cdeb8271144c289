// Copyright (c) 2026 The sessionctl Authors.
// SPDX-License-Identifier: Apache-2.0

// Package session models the cache artifact as an untyped document with a
// fixed set of optional fields. There is no strict schema: unrecognized
// fields are ignored and mismatched types degrade to absence.
package session
