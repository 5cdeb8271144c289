// Copyright (c) 2026 The sessionctl Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package report

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/designsource/sessionctl/internal/session"
)

func parse(t *testing.T, raw string) *session.Document {
	t.Helper()
	doc, err := session.Parse([]byte(raw))
	require.NoError(t, err)
	return doc
}

func render(t *testing.T, raw string) string {
	t.Helper()
	var buf bytes.Buffer
	Render(parse(t, raw), &buf)
	return buf.String()
}

func TestRender_FullDocument(t *testing.T) {
	raw := `{
		"project": {"name": "orbital", "version": "2.4.1"},
		"session": {"count": 12, "last_timestamp": "2026-08-24 18:02"},
		"current_phase": {"name": "hardening", "status": "in progress"},
		"pending_tasks": ["wire retries", "tune backoff"],
		"blockers": ["flaky upstream"]
	}`

	want := strings.Join([]string{
		headerStyle.Render(iconProject + " Project Information:"),
		"  Name: orbital",
		"  Version: 2.4.1",
		"",
		headerStyle.Render(iconSession + " Session Information:"),
		"  Session: #12",
		"  Last Session: 2026-08-24 18:02",
		"",
		headerStyle.Render(iconPhase + " Current Phase:"),
		"  Phase: hardening",
		"  Status: in progress",
		"",
		headerStyle.Render(iconTasks + " Pending Tasks:"),
		"  1. wire retries",
		"  2. tune backoff",
		"",
		headerStyle.Render(iconBlockers + " Active Blockers:"),
		"  " + iconWarn + "  flaky upstream",
		"",
		iconReady + " Ready to continue where we left off!",
		"",
	}, "\n")

	assert.Equal(t, want, render(t, raw))
}

func TestRender_TaskTruncation(t *testing.T) {
	tests := []struct {
		name    string
		tasks   int
		want    []string
		notWant []string
	}{
		{
			name:    "five print in full",
			tasks:   5,
			want:    []string{"  1. task 1", "  5. task 5"},
			notWant: []string{"more"},
		},
		{
			name:    "six truncate with one left",
			tasks:   6,
			want:    []string{"  5. task 5", "  ... and 1 more"},
			notWant: []string{"  6. "},
		},
		{
			name:    "seven truncate with two left",
			tasks:   7,
			want:    []string{"  5. task 5", "  ... and 2 more"},
			notWant: []string{"  6. ", "  7. "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := make([]string, tt.tasks)
			for i := range entries {
				entries[i] = fmt.Sprintf("%q", fmt.Sprintf("task %d", i+1))
			}
			got := render(t, fmt.Sprintf(`{"pending_tasks": [%s]}`, strings.Join(entries, ",")))

			for _, line := range tt.want {
				assert.Contains(t, got, line+"\n")
			}
			for _, line := range tt.notWant {
				assert.NotContains(t, got, line)
			}
		})
	}
}

func TestRender_BlockersNeverTruncated(t *testing.T) {
	entries := make([]string, 8)
	for i := range entries {
		entries[i] = fmt.Sprintf("%q", fmt.Sprintf("blocker %d", i+1))
	}
	got := render(t, fmt.Sprintf(`{"blockers": [%s]}`, strings.Join(entries, ",")))

	for i := 1; i <= 8; i++ {
		assert.Contains(t, got, fmt.Sprintf("  %s  blocker %d\n", iconWarn, i))
	}
	assert.NotContains(t, got, "more")
}

func TestRender_EmptyDocument(t *testing.T) {
	got := render(t, `{}`)
	assert.Equal(t, iconReady+" Ready to continue where we left off!\n", got)
}

func TestRender_SectionsSuppressedWhenAbsent(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []string
		notWant []string
	}{
		{
			name:    "lone project name",
			raw:     `{"project": {"name": "orbital"}}`,
			want:    []string{"Project Information:", "  Name: orbital"},
			notWant: []string{"  Version:", "Session Information:", "Current Phase:", "Pending Tasks:", "Active Blockers:"},
		},
		{
			name:    "lone session count",
			raw:     `{"session": {"count": 3}}`,
			want:    []string{"Session Information:", "  Session: #3"},
			notWant: []string{"  Last Session:", "Project Information:"},
		},
		{
			name:    "lone phase status",
			raw:     `{"current_phase": {"status": "blocked"}}`,
			want:    []string{"Current Phase:", "  Status: blocked"},
			notWant: []string{"  Phase:", "Project Information:"},
		},
		{
			name:    "empty task and blocker arrays",
			raw:     `{"pending_tasks": [], "blockers": []}`,
			want:    []string{"Ready to continue"},
			notWant: []string{"Pending Tasks:", "Active Blockers:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(t, tt.raw)
			for _, s := range tt.want {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.notWant {
				assert.NotContains(t, got, s)
			}
		})
	}
}

func TestRender_Idempotent(t *testing.T) {
	doc := parse(t, `{
		"project": {"name": "orbital"},
		"pending_tasks": ["a", "b", "c", "d", "e", "f"]
	}`)

	var first, second bytes.Buffer
	Render(doc, &first)
	Render(doc, &second)
	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestNotFound(t *testing.T) {
	var buf bytes.Buffer
	NotFound(&buf)

	want := iconError + " No previous conversation found\n" +
		hintStyle.Render(iconHint+" Tip: Run /save-session-cache to create a cache for this project") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestReadFailure(t *testing.T) {
	var buf bytes.Buffer
	ReadFailure(&buf, errors.New("permission denied"))
	assert.Equal(t, iconError+" Failed to read cache: permission denied\n", buf.String())
}

func TestParseFailure(t *testing.T) {
	var buf bytes.Buffer
	ParseFailure(&buf)
	assert.Equal(t, iconWarn+"  Cache file exists but couldn't be parsed\n", buf.String())
}
