// Copyright (C) 2025 Tensorland, Inc.
// See LICENSE for copying information.

package metadb

// Schema returns the DDL of the metadata tables. Deployments run their
// migrations with an external tool; this schema is used by operators
// bootstrapping a fresh database and by tests.
func Schema() string {
	return `
	CREATE TABLE IF NOT EXISTS experiments (
		id VARCHAR(40) PRIMARY KEY,
		name TEXT NOT NULL,
		external_id TEXT NOT NULL,
		owner TEXT NOT NULL,
		namespace TEXT NOT NULL,
		ml_framework INTEGER NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL,
		updated_at TIMESTAMP WITH TIME ZONE NOT NULL
	);
	CREATE INDEX IF NOT EXISTS experiments_namespace ON experiments (namespace);

	CREATE TABLE IF NOT EXISTS models (
		id VARCHAR(40) PRIMARY KEY,
		name TEXT NOT NULL,
		owner TEXT NOT NULL,
		namespace TEXT NOT NULL,
		task TEXT NOT NULL,
		description TEXT NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL,
		updated_at TIMESTAMP WITH TIME ZONE NOT NULL
	);
	CREATE INDEX IF NOT EXISTS models_namespace ON models (namespace);

	CREATE TABLE IF NOT EXISTS model_versions (
		id VARCHAR(40) PRIMARY KEY,
		name TEXT NOT NULL,
		model_id VARCHAR(40) NOT NULL,
		experiment_id VARCHAR(40) NOT NULL,
		namespace TEXT NOT NULL,
		version TEXT NOT NULL,
		description TEXT NOT NULL,
		ml_framework INTEGER NOT NULL,
		unique_tags JSONB NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL,
		updated_at TIMESTAMP WITH TIME ZONE NOT NULL
	);
	CREATE INDEX IF NOT EXISTS model_versions_model ON model_versions (model_id);

	CREATE TABLE IF NOT EXISTS metadata (
		id VARCHAR(40) PRIMARY KEY,
		parent_id VARCHAR(40) NOT NULL,
		name TEXT NOT NULL,
		meta JSONB NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL,
		updated_at TIMESTAMP WITH TIME ZONE NOT NULL
	);
	CREATE INDEX IF NOT EXISTS metadata_parent ON metadata (parent_id);

	CREATE TABLE IF NOT EXISTS files (
		id VARCHAR(40) PRIMARY KEY,
		parent_id VARCHAR(40) NOT NULL,
		src_path TEXT NOT NULL,
		upload_path TEXT,
		file_type TEXT NOT NULL,
		metadata JSONB NOT NULL,
		artifact_name TEXT NOT NULL,
		artifact_id VARCHAR(40) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL,
		updated_at TIMESTAMP WITH TIME ZONE NOT NULL
	);
	CREATE INDEX IF NOT EXISTS files_parent ON files (parent_id);

	CREATE TABLE IF NOT EXISTS events (
		id VARCHAR(40) PRIMARY KEY,
		parent_id VARCHAR(40) NOT NULL,
		name TEXT NOT NULL,
		source TEXT NOT NULL,
		metadata JSONB NOT NULL,
		source_wall_clock TIMESTAMP WITH TIME ZONE NOT NULL
	);
	CREATE INDEX IF NOT EXISTS events_parent ON events (parent_id);

	CREATE TABLE IF NOT EXISTS mutations (
		id BIGSERIAL PRIMARY KEY,
		object_id VARCHAR(40) NOT NULL,
		object_type SMALLINT NOT NULL,
		mutation_type SMALLINT NOT NULL,
		namespace TEXT NOT NULL,
		experiment_payload JSONB,
		model_payload JSONB,
		model_version_payload JSONB,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL,
		processed_at TIMESTAMP WITH TIME ZONE
	);
	CREATE INDEX IF NOT EXISTS mutations_namespace ON mutations (namespace);

	CREATE TABLE IF NOT EXISTS metrics (
		id BIGSERIAL PRIMARY KEY,
		object_id VARCHAR(40) NOT NULL,
		name TEXT NOT NULL,
		tensor TEXT,
		double_value DOUBLE PRECISION,
		step BIGINT NOT NULL,
		wall_clock BIGINT NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL
	);
	CREATE INDEX IF NOT EXISTS metrics_object ON metrics (object_id);
	`
}
