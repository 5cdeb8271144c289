// Copyright (c) 2026 The sessionctl Authors.
// SPDX-License-Identifier: Apache-2.0

// Package command defines the CLI command set for sessionctl. It wires
// the root report action and shell completion.
package command
