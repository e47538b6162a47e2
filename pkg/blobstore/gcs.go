// Copyright (C) 2025 Tensorland, Inc.
// See LICENSE for copying information.

package blobstore

import (
	"context"
	"io"

	gcstorage "cloud.google.com/go/storage"
)

// GCS stores blobs as objects in a Google Cloud Storage bucket.
// Credentials come from the application default credentials environment.
// A GCS object write becomes visible only when the writer is closed, so
// Commit maps onto Close and Cancel onto aborting the write context.
type GCS struct {
	client *gcstorage.Client
	bucket string
}

// NewGCS constructs a GCS store for bucket.
func NewGCS(ctx context.Context, bucket string) (*GCS, error) {
	client, err := gcstorage.NewClient(ctx)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	return &GCS{client: client, bucket: bucket}, nil
}

// Open starts a multipart write at path.
func (store *GCS) Open(ctx context.Context, path string) (_ Writer, err error) {
	defer mon.Task()(&ctx)(&err)

	writeCtx, cancel := context.WithCancel(ctx)
	writer := store.client.Bucket(store.bucket).Object(path).NewWriter(writeCtx)
	return &gcsWriter{writer: writer, cancel: cancel}, nil
}

// Reader streams the object at path.
func (store *GCS) Reader(ctx context.Context, path string) (_ io.ReadCloser, err error) {
	defer mon.Task()(&ctx)(&err)

	reader, err := store.client.Bucket(store.bucket).Object(path).NewReader(ctx)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	return reader, nil
}

type gcsWriter struct {
	writer *gcstorage.Writer
	cancel context.CancelFunc
	done   bool
}

func (w *gcsWriter) Write(p []byte) (int, error) {
	n, err := w.writer.Write(p)
	return n, Error.Wrap(err)
}

func (w *gcsWriter) Commit(ctx context.Context) (err error) {
	defer mon.Task()(&ctx)(&err)

	if w.done {
		return Error.New("already closed")
	}
	w.done = true
	defer w.cancel()
	return Error.Wrap(w.writer.Close())
}

func (w *gcsWriter) Cancel(ctx context.Context) (err error) {
	defer mon.Task()(&ctx)(&err)

	if w.done {
		return nil
	}
	w.done = true
	// Aborting the write context discards the pending object.
	w.cancel()
	_ = w.writer.Close()
	return nil
}
