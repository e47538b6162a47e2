// Copyright (C) 2025 Tensorland, Inc.
// See LICENSE for copying information.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modelbox.yaml")
	require.NoError(t, Default().Write(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Default(), loaded)
}

func TestLoad(t *testing.T) {
	raw := `grpc_listen_addr: "0.0.0.0:9000"
database_host: "db:5432"
database_name: "modelbox"
database_username: "mb"
database_password: "secret"
object_store:
  bucket: "tensorland-models"
  provider: S3
`
	path := filepath.Join(t.TempDir(), "modelbox.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	config, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:9000", config.ListenAddr)
	require.Equal(t, ProviderS3, config.ObjectStore.Provider)
	require.Equal(t, "tensorland-models", config.ObjectStore.Bucket)
	require.Equal(t, "postgres://db:5432/modelbox?user=mb&password=secret", config.DatabaseURL())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
