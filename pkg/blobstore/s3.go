// Copyright (C) 2025 Tensorland, Inc.
// See LICENSE for copying information.

package blobstore

import (
	"context"
	"io"

	minio "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3 stores blobs as objects in an S3 bucket. Credentials come from the
// standard AWS environment variables. S3 object puts are atomic, so the
// multipart contract holds without extra bookkeeping: the object appears
// only once the put completes.
type S3 struct {
	client *minio.Client
	bucket string
}

// NewS3 constructs an S3 store against endpoint for bucket. An empty
// endpoint targets AWS S3.
func NewS3(endpoint, bucket string) (*S3, error) {
	if endpoint == "" {
		endpoint = "s3.amazonaws.com"
	}
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewEnvAWS(),
		Secure: true,
	})
	if err != nil {
		return nil, Error.Wrap(err)
	}
	return &S3{client: client, bucket: bucket}, nil
}

// Open starts a multipart write at path. Bytes are streamed into a
// single object put through a pipe; the put finishes when Commit closes
// the pipe.
func (store *S3) Open(ctx context.Context, path string) (_ Writer, err error) {
	defer mon.Task()(&ctx)(&err)

	reader, writer := io.Pipe()
	done := make(chan error, 1)
	go func() {
		_, err := store.client.PutObject(ctx, store.bucket, path, reader, -1, minio.PutObjectOptions{})
		// Unblock the writer if the put fails mid-stream.
		_ = reader.CloseWithError(err)
		done <- err
	}()
	return &s3Writer{pipe: writer, done: done}, nil
}

// Reader streams the object at path.
func (store *S3) Reader(ctx context.Context, path string) (_ io.ReadCloser, err error) {
	defer mon.Task()(&ctx)(&err)

	object, err := store.client.GetObject(ctx, store.bucket, path, minio.GetObjectOptions{})
	if err != nil {
		return nil, Error.Wrap(err)
	}
	return object, nil
}

type s3Writer struct {
	pipe *io.PipeWriter
	done chan error
	err  error
	over bool
}

func (w *s3Writer) Write(p []byte) (int, error) {
	n, err := w.pipe.Write(p)
	return n, Error.Wrap(err)
}

func (w *s3Writer) Commit(ctx context.Context) (err error) {
	defer mon.Task()(&ctx)(&err)

	if w.over {
		return Error.Wrap(w.err)
	}
	w.over = true
	if err := w.pipe.Close(); err != nil {
		w.err = err
	}
	if err := <-w.done; err != nil && w.err == nil {
		w.err = err
	}
	return Error.Wrap(w.err)
}

func (w *s3Writer) Cancel(ctx context.Context) (err error) {
	defer mon.Task()(&ctx)(&err)

	if w.over {
		return nil
	}
	w.over = true
	_ = w.pipe.CloseWithError(Error.New("upload cancelled"))
	<-w.done
	return nil
}
