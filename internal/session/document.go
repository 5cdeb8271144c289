// Copyright (c) 2026 The sessionctl Authors.
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"errors"
	"math"

	"github.com/apex/log"
	"github.com/tidwall/gjson"
)

// Document is one parsed session cache artifact. Every field is optional,
// and the accessors treat a type mismatch the same as absence, so a partly
// broken artifact still yields whatever can be read from it.
type Document struct {
	root gjson.Result
}

// Parse validates and parses a cache payload. Malformed JSON (including an
// empty payload) yields an error; no partial extraction is attempted.
func Parse(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("content is not well-formed JSON")
	}
	log.Debugf("parsed %d-byte cache document", len(data))
	return &Document{root: gjson.ParseBytes(data)}, nil
}

// ProjectName returns project.name.
func (d *Document) ProjectName() (string, bool) {
	return d.str("project.name")
}

// ProjectVersion returns project.version.
func (d *Document) ProjectVersion() (string, bool) {
	return d.str("project.version")
}

// SessionCount returns session.count when it is a non-negative integer.
// Negative and fractional numbers read as absent.
func (d *Document) SessionCount() (uint64, bool) {
	v := d.root.Get("session.count")
	if v.Type != gjson.Number {
		return 0, false
	}
	if v.Num < 0 || v.Num != math.Trunc(v.Num) {
		return 0, false
	}
	return v.Uint(), true
}

// LastTimestamp returns session.last_timestamp. The value is opaque; no
// time parsing is attempted.
func (d *Document) LastTimestamp() (string, bool) {
	return d.str("session.last_timestamp")
}

// PhaseName returns current_phase.name.
func (d *Document) PhaseName() (string, bool) {
	return d.str("current_phase.name")
}

// PhaseStatus returns current_phase.status.
func (d *Document) PhaseStatus() (string, bool) {
	return d.str("current_phase.status")
}

// PendingTasks returns the pending_tasks entries, in artifact order.
func (d *Document) PendingTasks() []string {
	return d.strings("pending_tasks")
}

// Blockers returns the blockers entries, in artifact order.
func (d *Document) Blockers() []string {
	return d.strings("blockers")
}

// str extracts a string-typed field. Anything else reads as absent.
func (d *Document) str(path string) (string, bool) {
	v := d.root.Get(path)
	if v.Type != gjson.String {
		return "", false
	}
	return v.Str, true
}

// strings extracts a sequence-of-strings field. A non-array value reads as
// absent; non-string elements are dropped, preserving the order of the
// rest.
func (d *Document) strings(path string) []string {
	v := d.root.Get(path)
	if !v.IsArray() {
		return nil
	}

	var out []string
	for _, el := range v.Array() {
		if el.Type != gjson.String {
			log.Debugf("%s: dropping %s element", path, el.Type)
			continue
		}
		out = append(out, el.Str)
	}
	return out
}
