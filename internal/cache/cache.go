// Copyright (c) 2026 The sessionctl Authors.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"os"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
)

// ArtifactPath is where the session cache lives, relative to the current
// working directory. The path is fixed; there is no flag or env override.
const ArtifactPath = ".claude/cache/session.json"

// Locate returns the artifact path and whether a regular file currently
// exists there.
func Locate() (string, bool) {
	fi, err := os.Stat(ArtifactPath)
	if err != nil || fi.IsDir() {
		return ArtifactPath, false
	}
	log.Debugf("artifact %s: %s, modified %s",
		ArtifactPath, humanize.Bytes(uint64(fi.Size())), humanize.Time(fi.ModTime()))
	return ArtifactPath, true
}

// Read slurps the artifact in a single bounded read. Failures are returned
// unwrapped so the caller can surface the underlying description; nothing
// here escalates.
func Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	log.Debugf("read %s from %s", humanize.Bytes(uint64(len(data))), path)
	return data, nil
}
