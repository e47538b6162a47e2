// Copyright (C) 2025 Tensorland, Inc.
// See LICENSE for copying information.

package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileSystemCommit(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileSystem(t.TempDir())
	require.NoError(t, err)

	path := ArtifactPath("parent", "file")
	writer, err := store.Open(ctx, path)
	require.NoError(t, err)

	_, err = writer.Write([]byte("AA"))
	require.NoError(t, err)
	_, err = writer.Write([]byte("BBCC"))
	require.NoError(t, err)
	require.NoError(t, writer.Commit(ctx))

	reader, err := store.Reader(ctx, path)
	require.NoError(t, err)
	defer func() { require.NoError(t, reader.Close()) }()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.Equal(t, []byte("AABBCC"), data)
}

func TestFileSystemPartialWriteInvisible(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileSystem(t.TempDir())
	require.NoError(t, err)

	path := ArtifactPath("parent", "file")
	writer, err := store.Open(ctx, path)
	require.NoError(t, err)
	_, err = writer.Write([]byte("partial"))
	require.NoError(t, err)

	_, err = store.Reader(ctx, path)
	require.Error(t, err)

	require.NoError(t, writer.Cancel(ctx))
	_, err = store.Reader(ctx, path)
	require.Error(t, err)
}

func TestFileSystemCancelLeavesNoTemp(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	store, err := NewFileSystem(root)
	require.NoError(t, err)

	writer, err := store.Open(ctx, ArtifactPath("parent", "file"))
	require.NoError(t, err)
	_, err = writer.Write([]byte("doomed"))
	require.NoError(t, err)
	require.NoError(t, writer.Cancel(ctx))

	entries, err := os.ReadDir(filepath.Join(root, "tmp"))
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestArtifactPath(t *testing.T) {
	require.Equal(t, "modelbox/artifacts/p/f", ArtifactPath("p", "f"))
}
