// Copyright (c) 2026 The sessionctl Authors.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"io"
	"os"

	"github.com/apex/log"

	"github.com/designsource/sessionctl/internal/session"
)

// maxTasks is how many pending tasks are enumerated before the report
// falls back to a single remainder line. Blockers are never truncated.
const maxTasks = 5

// NotFound prints the missing-artifact notice and the creation hint.
func NotFound(w io.Writer) {
	w = orStdout(w)
	fmt.Fprintln(w, iconError+" No previous conversation found")
	fmt.Fprintln(w, hintStyle.Render(iconHint+" Tip: Run /save-session-cache to create a cache for this project"))
}

// ReadFailure prints the read-error notice with the underlying failure
// description.
func ReadFailure(w io.Writer, err error) {
	fmt.Fprintf(orStdout(w), "%s Failed to read cache: %v\n", iconError, err)
}

// ParseFailure prints the malformed-content warning.
func ParseFailure(w io.Writer) {
	fmt.Fprintln(orStdout(w), iconWarn+"  Cache file exists but couldn't be parsed")
}

// Render prints each present section of doc in fixed order, then the
// closing confirmation line. Sections with nothing to show are skipped
// entirely, header included.
func Render(doc *session.Document, w io.Writer) {
	w = orStdout(w)

	renderProject(doc, w)
	renderSession(doc, w)
	renderPhase(doc, w)
	renderTasks(doc, w)
	renderBlockers(doc, w)

	fmt.Fprintln(w, iconReady+" Ready to continue where we left off!")
}

func renderProject(doc *session.Document, w io.Writer) {
	name, hasName := doc.ProjectName()
	version, hasVersion := doc.ProjectVersion()
	if !hasName && !hasVersion {
		return
	}

	fmt.Fprintln(w, headerStyle.Render(iconProject+" Project Information:"))
	if hasName {
		fmt.Fprintf(w, "  Name: %s\n", name)
	}
	if hasVersion {
		fmt.Fprintf(w, "  Version: %s\n", version)
	}
	fmt.Fprintln(w)
}

func renderSession(doc *session.Document, w io.Writer) {
	count, hasCount := doc.SessionCount()
	last, hasLast := doc.LastTimestamp()
	if !hasCount && !hasLast {
		return
	}

	fmt.Fprintln(w, headerStyle.Render(iconSession+" Session Information:"))
	if hasCount {
		fmt.Fprintf(w, "  Session: #%d\n", count)
	}
	if hasLast {
		fmt.Fprintf(w, "  Last Session: %s\n", last)
	}
	fmt.Fprintln(w)
}

func renderPhase(doc *session.Document, w io.Writer) {
	name, hasName := doc.PhaseName()
	status, hasStatus := doc.PhaseStatus()
	if !hasName && !hasStatus {
		return
	}

	fmt.Fprintln(w, headerStyle.Render(iconPhase+" Current Phase:"))
	if hasName {
		fmt.Fprintf(w, "  Phase: %s\n", name)
	}
	if hasStatus {
		fmt.Fprintf(w, "  Status: %s\n", status)
	}
	fmt.Fprintln(w)
}

func renderTasks(doc *session.Document, w io.Writer) {
	tasks := doc.PendingTasks()
	if len(tasks) == 0 {
		return
	}
	log.Debugf("pending tasks: %d", len(tasks))

	fmt.Fprintln(w, headerStyle.Render(iconTasks+" Pending Tasks:"))
	for i, task := range tasks {
		if i == maxTasks {
			fmt.Fprintf(w, "  ... and %d more\n", len(tasks)-maxTasks)
			break
		}
		fmt.Fprintf(w, "  %d. %s\n", i+1, task)
	}
	fmt.Fprintln(w)
}

func renderBlockers(doc *session.Document, w io.Writer) {
	blockers := doc.Blockers()
	if len(blockers) == 0 {
		return
	}
	log.Debugf("blockers: %d", len(blockers))

	fmt.Fprintln(w, headerStyle.Render(iconBlockers+" Active Blockers:"))
	for _, blocker := range blockers {
		fmt.Fprintf(w, "  %s  %s\n", iconWarn, blocker)
	}
	fmt.Fprintln(w)
}

func orStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
