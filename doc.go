// Copyright (c) 2026 The sessionctl Authors.
// SPDX-License-Identifier: Apache-2.0

// sessionctl is the main package for the sessionctl command line tool. It
// wires the CLI, delegates to internal packages, and serves as the entry
// point.
package main
