// Copyright (c) 2026 The sessionctl Authors.
// SPDX-License-Identifier: Apache-2.0

// Package report renders the session context report.
//
// The report is a fixed sequence of optional sections followed by a
// closing confirmation line. A section is printed only when at least
// one of its fields is present in the document; an empty document
// produces just the closing line. Pending tasks are capped at five
// with a remainder line, blockers are always printed in full.
//
// The package also owns the notices printed when the cache artifact
// is missing, unreadable, or malformed. Every printer writes to the
// supplied io.Writer, defaulting to os.Stdout when nil.
package report
