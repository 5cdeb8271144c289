// Copyright (c) 2026 The sessionctl Authors.
// SPDX-License-Identifier: Apache-2.0

package report

import "github.com/charmbracelet/lipgloss"

// Styles. The default lipgloss renderer resolves the color profile from
// the terminal, so piped output stays plain text.
var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	hintStyle   = lipgloss.NewStyle().Faint(true)
)

// Icons.
const (
	iconProject  = "📊"
	iconSession  = "📈"
	iconPhase    = "📍"
	iconTasks    = "📌"
	iconBlockers = "🚧"
	iconWarn     = "⚠️"
	iconError    = "❌"
	iconHint     = "💡"
	iconReady    = "🚀"
)
