// Copyright (C) 2025 Tensorland, Inc.
// See LICENSE for copying information.

package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/zeebo/errs"
)

// FileSystem stores blobs under a local directory prefix. Writes land in
// a temp directory and are renamed into place on commit, so a partially
// written blob is never observable at its path.
type FileSystem struct {
	root string
}

// NewFileSystem constructs a filesystem store rooted at root.
func NewFileSystem(root string) (*FileSystem, error) {
	if err := os.MkdirAll(filepath.Join(root, "tmp"), 0o755); err != nil {
		return nil, Error.Wrap(err)
	}
	return &FileSystem{root: root}, nil
}

func (store *FileSystem) objectPath(path string) string {
	return filepath.Join(store.root, filepath.FromSlash(path))
}

// Open starts a multipart write at path.
func (store *FileSystem) Open(ctx context.Context, path string) (_ Writer, err error) {
	defer mon.Task()(&ctx)(&err)

	file, err := os.CreateTemp(filepath.Join(store.root, "tmp"), "blob-*.partial")
	if err != nil {
		return nil, Error.Wrap(err)
	}
	return &fileWriter{file: file, path: store.objectPath(path)}, nil
}

// Reader streams the committed object at path.
func (store *FileSystem) Reader(ctx context.Context, path string) (_ io.ReadCloser, err error) {
	defer mon.Task()(&ctx)(&err)

	file, err := os.Open(store.objectPath(path))
	if err != nil {
		return nil, Error.Wrap(err)
	}
	return file, nil
}

type fileWriter struct {
	file *os.File
	path string
	done bool
}

func (w *fileWriter) Write(p []byte) (int, error) {
	n, err := w.file.Write(p)
	return n, Error.Wrap(err)
}

func (w *fileWriter) Commit(ctx context.Context) (err error) {
	defer mon.Task()(&ctx)(&err)

	if w.done {
		return Error.New("already closed")
	}
	w.done = true

	if err := errs.Combine(w.file.Sync(), w.file.Close()); err != nil {
		return Error.Wrap(errs.Combine(err, os.Remove(w.file.Name())))
	}
	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return Error.Wrap(errs.Combine(err, os.Remove(w.file.Name())))
	}
	if err := os.Rename(w.file.Name(), w.path); err != nil {
		return Error.Wrap(errs.Combine(err, os.Remove(w.file.Name())))
	}
	return nil
}

func (w *fileWriter) Cancel(ctx context.Context) (err error) {
	defer mon.Task()(&ctx)(&err)

	if w.done {
		return nil
	}
	w.done = true
	return Error.Wrap(errs.Combine(w.file.Close(), os.Remove(w.file.Name())))
}
