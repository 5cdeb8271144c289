// Copyright (c) 2026 The sessionctl Authors.
// SPDX-License-Identifier: Apache-2.0

// Package version holds the build identification stamped in at link time.
package version

// Version is the sessionctl release version. Override at build time with
// -ldflags "-X github.com/designsource/sessionctl/internal/version.Version=...".
var Version = "dev"
