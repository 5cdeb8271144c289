// Copyright (c) 2026 The sessionctl Authors.
// SPDX-License-Identifier: Apache-2.0

// Package cache locates and reads the session cache artifact. The artifact
// is read-only from this tool's point of view; a separate writer maintains
// it.
package cache
