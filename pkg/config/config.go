// Copyright (C) 2025 Tensorland, Inc.
// See LICENSE for copying information.

// Package config loads and writes the ModelBox server configuration.
package config

import (
	"fmt"
	"os"

	"github.com/zeebo/errs"
	yaml "gopkg.in/yaml.v2"
)

// Error is the default config errs class.
var Error = errs.Class("config error")

// BlobStorageProvider selects the backend serving uploaded artifacts.
type BlobStorageProvider string

const (
	ProviderS3         BlobStorageProvider = "S3"
	ProviderGcs        BlobStorageProvider = "Gcs"
	ProviderFileSystem BlobStorageProvider = "FileSystem"
)

// ObjectStoreConfig points at the bucket or directory holding artifact
// blobs. For the filesystem provider the bucket is a local path prefix.
type ObjectStoreConfig struct {
	Bucket   string              `yaml:"bucket"`
	Provider BlobStorageProvider `yaml:"provider"`
}

// ServerConfig is the YAML configuration of the ModelBox server. Object
// store credentials are not part of the file; S3 and GCS clients read
// them from the standard environment variables of their provider.
type ServerConfig struct {
	ListenAddr       string            `yaml:"grpc_listen_addr"`
	DatabaseHost     string            `yaml:"database_host"`
	DatabaseName     string            `yaml:"database_name"`
	DatabaseUsername string            `yaml:"database_username"`
	DatabasePassword string            `yaml:"database_password"`
	ObjectStore      ObjectStoreConfig `yaml:"object_store"`
}

// Default returns the configuration written by server init-config.
func Default() *ServerConfig {
	return &ServerConfig{
		ListenAddr:       "127.0.0.1:8085",
		DatabaseHost:     "localhost:5432",
		DatabaseName:     "tensorland",
		DatabaseUsername: "postgres",
		DatabasePassword: "foo",
		ObjectStore: ObjectStoreConfig{
			Bucket:   "/tmp/modelbox/",
			Provider: ProviderFileSystem,
		},
	}
}

// Load reads and parses a server configuration from path.
func Load(path string) (*ServerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	var config ServerConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, Error.Wrap(err)
	}
	return &config, nil
}

// Write renders the configuration as YAML at path, replacing any
// existing file.
func (c *ServerConfig) Write(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return Error.Wrap(err)
	}
	return Error.Wrap(os.WriteFile(path, data, 0o644))
}

// DatabaseURL renders the postgres connection URL of the metadata store.
func (c *ServerConfig) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s/%s?user=%s&password=%s",
		c.DatabaseHost, c.DatabaseName, c.DatabaseUsername, c.DatabasePassword)
}
