// Copyright (C) 2025 Tensorland, Inc.
// See LICENSE for copying information.

// Package ids derives the deterministic identifiers of ModelBox objects.
//
// An id is the decimal rendering of the xxhash64 digest of the object's
// semantic fields, written to the hasher in a fixed order. The hash is
// pinned to xxhash64 deliberately: ids must be stable across process
// restarts and across machines for the lifetime of a deployment, because
// they are what makes creates idempotent. Ids are opaque to clients.
package ids

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// New hashes the ordered parts into an object id.
func New(parts ...string) string {
	digest := xxhash.New()
	for _, part := range parts {
		_, _ = digest.WriteString(part)
	}
	return strconv.FormatUint(digest.Sum64(), 10)
}

// Experiment derives an experiment id.
func Experiment(name, owner, namespace string) string {
	return New(name, owner, namespace)
}

// Model derives a model id.
func Model(name, namespace string) string {
	return New(name, namespace)
}

// ModelVersion derives a model version id.
func ModelVersion(modelID, version string) string {
	return New(modelID, version)
}

// Metadata derives a metadata entry id.
func Metadata(key, parentID string) string {
	return New(key, parentID)
}

// Artifact derives the id of a named group of files under a parent.
func Artifact(parentID, artifactName string) string {
	return New(parentID, artifactName)
}

// File derives a file id. The timestamps participate so that distinct
// uploads of changed content produce distinct rows, while a retry of the
// same logical file converges on the same id.
func File(parentID, srcPath, checksum, fileType string, createdSec int64, createdNanos int32, updatedSec int64, updatedNanos int32) string {
	return New(parentID, srcPath, checksum, fileType,
		strconv.FormatInt(createdSec, 10), strconv.FormatInt(int64(createdNanos), 10),
		strconv.FormatInt(updatedSec, 10), strconv.FormatInt(int64(updatedNanos), 10))
}

// Event derives an event id.
func Event(parentID, name string, wallClockSec int64, wallClockNanos int32, sourceName string) string {
	return New(parentID, name,
		strconv.FormatInt(wallClockSec, 10), strconv.FormatInt(int64(wallClockNanos), 10),
		sourceName)
}
