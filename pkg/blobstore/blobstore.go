// Copyright (C) 2025 Tensorland, Inc.
// See LICENSE for copying information.

// Package blobstore stores uploaded artifact binaries.
//
// All backends share the same multipart-write contract: bytes written
// through a Writer are not observable at the object path until Commit
// returns, and Cancel leaves no object behind. A failed Commit leaves
// the path either absent or unchanged.
package blobstore

import (
	"context"
	"io"

	"github.com/zeebo/errs"
	monkit "gopkg.in/spacemonkeygo/monkit.v2"
)

var (
	mon = monkit.Package()

	// Error is the default blobstore errs class.
	Error = errs.Class("blobstore error")
)

// Writer is a multipart write in progress.
type Writer interface {
	io.Writer

	// Commit flushes and publishes the object at its path.
	Commit(ctx context.Context) error
	// Cancel aborts the write. No object becomes visible. Cancel after a
	// successful Commit is a no-op.
	Cancel(ctx context.Context) error
}

// Store writes and reads artifact blobs at opaque slash-separated paths.
type Store interface {
	// Open starts a multipart write at path.
	Open(ctx context.Context, path string) (Writer, error)
	// Reader streams the committed object at path.
	Reader(ctx context.Context, path string) (io.ReadCloser, error)
}

// ArtifactPath is the fixed layout of uploaded artifact objects under
// the configured bucket or prefix.
func ArtifactPath(parentID, fileID string) string {
	return "modelbox/artifacts/" + parentID + "/" + fileID
}
