// Copyright (C) 2025 Tensorland, Inc.
// See LICENSE for copying information.

package metadb

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/zeebo/errs"
	"go.uber.org/zap"
)

// Repository owns the relational rows of all ModelBox entities.
type Repository struct {
	log *zap.Logger
	db  *DB
}

// NewRepository constructs a repository on top of an open database.
func NewRepository(log *zap.Logger, db *DB) *Repository {
	return &Repository{log: log, db: db}
}

// CreateResult reports the outcome of an idempotent create.
type CreateResult struct {
	ID        string
	Exists    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func payloadColumn(objectType ObjectType) string {
	switch objectType {
	case ObjectExperiment:
		return "experiment_payload"
	case ObjectModel:
		return "model_payload"
	default:
		return "model_version_payload"
	}
}

func insertMutation(ctx context.Context, tx *sql.Tx, mutation *Mutation) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO mutations (object_id, object_type, mutation_type, namespace, `+payloadColumn(mutation.ObjectType)+`, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		mutation.ObjectID, mutation.ObjectType, mutation.MutationType,
		mutation.Namespace, mutation.Payload, mutation.CreatedAt)
	return Error.Wrap(err)
}

// createWithMutation runs the create-with-change-log transaction: the
// mutation row is inserted first, then the entity; a conflict on the
// entity id rolls the whole transaction back and reports exists.
func (r *Repository) createWithMutation(ctx context.Context, mutation *Mutation, insertEntity func(context.Context, *sql.Tx) (sql.Result, error)) (exists bool, err error) {
	err = r.db.withTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if err := insertMutation(ctx, tx, mutation); err != nil {
			return err
		}
		result, err := insertEntity(ctx, tx)
		if err != nil {
			return Error.Wrap(err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return Error.Wrap(err)
		}
		if affected == 0 {
			return ErrRecordExists.New("%s", mutation.ObjectID)
		}
		return nil
	})
	if ErrRecordExists.Has(err) {
		return true, nil
	}
	return false, err
}

// CreateExperiment persists an experiment and its change-log row. A
// repeated create of the same experiment reports Exists with the
// original id and writes nothing.
func (r *Repository) CreateExperiment(ctx context.Context, experiment *Experiment) (_ CreateResult, err error) {
	defer mon.Task()(&ctx)(&err)

	mutation, err := newCreateMutation(experiment.ID, ObjectExperiment, experiment.Namespace, experiment)
	if err != nil {
		return CreateResult{}, Error.Wrap(err)
	}
	exists, err := r.createWithMutation(ctx, mutation, func(ctx context.Context, tx *sql.Tx) (sql.Result, error) {
		return tx.ExecContext(ctx, `
			INSERT INTO experiments (id, name, external_id, owner, namespace, ml_framework, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO NOTHING`,
			experiment.ID, experiment.Name, experiment.ExternalID, experiment.Owner,
			experiment.Namespace, experiment.Framework, experiment.CreatedAt, experiment.UpdatedAt)
	})
	if err != nil {
		return CreateResult{}, err
	}
	r.log.Debug("created experiment",
		zap.String("id", experiment.ID),
		zap.String("namespace", experiment.Namespace),
		zap.Bool("exists", exists))
	return CreateResult{
		ID:        experiment.ID,
		Exists:    exists,
		CreatedAt: experiment.CreatedAt,
		UpdatedAt: experiment.UpdatedAt,
	}, nil
}

// GetExperiment returns the experiment with the given id, or ErrNotFound.
func (r *Repository) GetExperiment(ctx context.Context, id string) (_ *Experiment, err error) {
	defer mon.Task()(&ctx)(&err)

	experiment := &Experiment{}
	err = r.db.db.QueryRowContext(ctx, `
		SELECT id, name, external_id, owner, namespace, ml_framework, created_at, updated_at
		FROM experiments WHERE id = $1`, id).Scan(
		&experiment.ID, &experiment.Name, &experiment.ExternalID, &experiment.Owner,
		&experiment.Namespace, &experiment.Framework, &experiment.CreatedAt, &experiment.UpdatedAt)
	if errs.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound.New("experiment %s", id)
	}
	if err != nil {
		return nil, Error.Wrap(err)
	}
	return experiment, nil
}

// ListExperiments returns the experiments in a namespace.
func (r *Repository) ListExperiments(ctx context.Context, namespace string) (_ []*Experiment, err error) {
	defer mon.Task()(&ctx)(&err)

	rows, err := r.db.db.QueryContext(ctx, `
		SELECT id, name, external_id, owner, namespace, ml_framework, created_at, updated_at
		FROM experiments WHERE namespace = $1`, namespace)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	defer func() { err = errs.Combine(err, Error.Wrap(rows.Close())) }()

	var experiments []*Experiment
	for rows.Next() {
		experiment := &Experiment{}
		if err := rows.Scan(
			&experiment.ID, &experiment.Name, &experiment.ExternalID, &experiment.Owner,
			&experiment.Namespace, &experiment.Framework, &experiment.CreatedAt, &experiment.UpdatedAt); err != nil {
			return nil, Error.Wrap(err)
		}
		experiments = append(experiments, experiment)
	}
	return experiments, Error.Wrap(rows.Err())
}

// CreateModel persists a model and its change-log row.
func (r *Repository) CreateModel(ctx context.Context, model *Model) (_ CreateResult, err error) {
	defer mon.Task()(&ctx)(&err)

	mutation, err := newCreateMutation(model.ID, ObjectModel, model.Namespace, model)
	if err != nil {
		return CreateResult{}, Error.Wrap(err)
	}
	exists, err := r.createWithMutation(ctx, mutation, func(ctx context.Context, tx *sql.Tx) (sql.Result, error) {
		return tx.ExecContext(ctx, `
			INSERT INTO models (id, name, owner, namespace, task, description, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO NOTHING`,
			model.ID, model.Name, model.Owner, model.Namespace,
			model.Task, model.Description, model.CreatedAt, model.UpdatedAt)
	})
	if err != nil {
		return CreateResult{}, err
	}
	r.log.Debug("created model",
		zap.String("id", model.ID),
		zap.String("namespace", model.Namespace),
		zap.Bool("exists", exists))
	return CreateResult{
		ID:        model.ID,
		Exists:    exists,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}, nil
}

// ListModels returns the models in a namespace.
func (r *Repository) ListModels(ctx context.Context, namespace string) (_ []*Model, err error) {
	defer mon.Task()(&ctx)(&err)

	rows, err := r.db.db.QueryContext(ctx, `
		SELECT id, name, owner, namespace, task, description, created_at, updated_at
		FROM models WHERE namespace = $1`, namespace)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	defer func() { err = errs.Combine(err, Error.Wrap(rows.Close())) }()

	var models []*Model
	for rows.Next() {
		model := &Model{}
		if err := rows.Scan(
			&model.ID, &model.Name, &model.Owner, &model.Namespace,
			&model.Task, &model.Description, &model.CreatedAt, &model.UpdatedAt); err != nil {
			return nil, Error.Wrap(err)
		}
		models = append(models, model)
	}
	return models, Error.Wrap(rows.Err())
}

// CreateModelVersion persists a model version and its change-log row.
func (r *Repository) CreateModelVersion(ctx context.Context, version *ModelVersion) (_ CreateResult, err error) {
	defer mon.Task()(&ctx)(&err)

	tags, err := json.Marshal(version.UniqueTags)
	if err != nil {
		return CreateResult{}, Error.Wrap(err)
	}
	mutation, err := newCreateMutation(version.ID, ObjectModelVersion, version.Namespace, version)
	if err != nil {
		return CreateResult{}, Error.Wrap(err)
	}
	exists, err := r.createWithMutation(ctx, mutation, func(ctx context.Context, tx *sql.Tx) (sql.Result, error) {
		return tx.ExecContext(ctx, `
			INSERT INTO model_versions (id, name, model_id, experiment_id, namespace, version, description, ml_framework, unique_tags, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (id) DO NOTHING`,
			version.ID, version.Name, version.ModelID, version.ExperimentID, version.Namespace,
			version.Version, version.Description, version.Framework, tags,
			version.CreatedAt, version.UpdatedAt)
	})
	if err != nil {
		return CreateResult{}, err
	}
	r.log.Debug("created model version",
		zap.String("id", version.ID),
		zap.String("model_id", version.ModelID),
		zap.Bool("exists", exists))
	return CreateResult{
		ID:        version.ID,
		Exists:    exists,
		CreatedAt: version.CreatedAt,
		UpdatedAt: version.UpdatedAt,
	}, nil
}

// ListModelVersions returns the versions of a model.
func (r *Repository) ListModelVersions(ctx context.Context, modelID string) (_ []*ModelVersion, err error) {
	defer mon.Task()(&ctx)(&err)

	rows, err := r.db.db.QueryContext(ctx, `
		SELECT id, name, model_id, experiment_id, namespace, version, description, ml_framework, unique_tags, created_at, updated_at
		FROM model_versions WHERE model_id = $1`, modelID)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	defer func() { err = errs.Combine(err, Error.Wrap(rows.Close())) }()

	var versions []*ModelVersion
	for rows.Next() {
		version := &ModelVersion{}
		var tags []byte
		if err := rows.Scan(
			&version.ID, &version.Name, &version.ModelID, &version.ExperimentID, &version.Namespace,
			&version.Version, &version.Description, &version.Framework, &tags,
			&version.CreatedAt, &version.UpdatedAt); err != nil {
			return nil, Error.Wrap(err)
		}
		if err := json.Unmarshal(tags, &version.UniqueTags); err != nil {
			return nil, Error.Wrap(err)
		}
		versions = append(versions, version)
	}
	return versions, Error.Wrap(rows.Err())
}

// UpdateMetadata upserts metadata entries. A repeated update of the same
// key replaces only the value.
func (r *Repository) UpdateMetadata(ctx context.Context, entries []*MetadataEntry) (err error) {
	defer mon.Task()(&ctx)(&err)

	return r.db.withTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		for _, entry := range entries {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO metadata (id, parent_id, name, meta, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6)
				ON CONFLICT (id) DO UPDATE SET meta = excluded.meta`,
				entry.ID, entry.ParentID, entry.Name, entry.Meta, entry.CreatedAt, entry.UpdatedAt)
			if err != nil {
				return Error.Wrap(err)
			}
		}
		return nil
	})
}

// ListMetadata returns the metadata entries of an object.
func (r *Repository) ListMetadata(ctx context.Context, parentID string) (_ []*MetadataEntry, err error) {
	defer mon.Task()(&ctx)(&err)

	rows, err := r.db.db.QueryContext(ctx, `
		SELECT id, parent_id, name, meta, created_at, updated_at
		FROM metadata WHERE parent_id = $1`, parentID)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	defer func() { err = errs.Combine(err, Error.Wrap(rows.Close())) }()

	var entries []*MetadataEntry
	for rows.Next() {
		entry := &MetadataEntry{}
		if err := rows.Scan(
			&entry.ID, &entry.ParentID, &entry.Name, &entry.Meta,
			&entry.CreatedAt, &entry.UpdatedAt); err != nil {
			return nil, Error.Wrap(err)
		}
		entries = append(entries, entry)
	}
	return entries, Error.Wrap(rows.Err())
}

// CreateFiles upserts file rows. A conflict on the derived id refreshes
// the upload path, metadata and update time, which makes retried uploads
// of the same logical file converge on one row.
func (r *Repository) CreateFiles(ctx context.Context, files []*File) (err error) {
	defer mon.Task()(&ctx)(&err)

	return r.db.withTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		for _, file := range files {
			var uploadPath sql.NullString
			if file.UploadPath != "" {
				uploadPath = sql.NullString{String: file.UploadPath, Valid: true}
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO files (id, parent_id, src_path, upload_path, file_type, metadata, artifact_name, artifact_id, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
				ON CONFLICT (id) DO UPDATE SET
					upload_path = excluded.upload_path,
					metadata = excluded.metadata,
					updated_at = excluded.updated_at`,
				file.ID, file.ParentID, file.SrcPath, uploadPath, file.FileType,
				file.Metadata, file.ArtifactName, file.ArtifactID, file.CreatedAt, file.UpdatedAt)
			if err != nil {
				return Error.Wrap(err)
			}
		}
		return nil
	})
}

// ListFiles returns the file rows under a parent object.
func (r *Repository) ListFiles(ctx context.Context, parentID string) (_ []*File, err error) {
	defer mon.Task()(&ctx)(&err)

	rows, err := r.db.db.QueryContext(ctx, `
		SELECT id, parent_id, src_path, upload_path, file_type, metadata, artifact_name, artifact_id, created_at, updated_at
		FROM files WHERE parent_id = $1`, parentID)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	defer func() { err = errs.Combine(err, Error.Wrap(rows.Close())) }()

	var files []*File
	for rows.Next() {
		file := &File{}
		var uploadPath sql.NullString
		if err := rows.Scan(
			&file.ID, &file.ParentID, &file.SrcPath, &uploadPath, &file.FileType,
			&file.Metadata, &file.ArtifactName, &file.ArtifactID,
			&file.CreatedAt, &file.UpdatedAt); err != nil {
			return nil, Error.Wrap(err)
		}
		file.UploadPath = uploadPath.String
		files = append(files, file)
	}
	return files, Error.Wrap(rows.Err())
}

// CreateEvents appends events. Replayed events with the same derived id
// are dropped.
func (r *Repository) CreateEvents(ctx context.Context, events []*Event) (err error) {
	defer mon.Task()(&ctx)(&err)

	return r.db.withTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		for _, event := range events {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO events (id, parent_id, name, source, metadata, source_wall_clock)
				VALUES ($1, $2, $3, $4, $5, $6)
				ON CONFLICT (id) DO NOTHING`,
				event.ID, event.ParentID, event.Name, event.Source, event.Metadata, event.SourceWallClock)
			if err != nil {
				return Error.Wrap(err)
			}
		}
		return nil
	})
}

// ListEvents returns the events of an object ordered by their source
// wall clock.
func (r *Repository) ListEvents(ctx context.Context, parentID string) (_ []*Event, err error) {
	defer mon.Task()(&ctx)(&err)

	rows, err := r.db.db.QueryContext(ctx, `
		SELECT id, parent_id, name, source, metadata, source_wall_clock
		FROM events WHERE parent_id = $1 ORDER BY source_wall_clock`, parentID)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	defer func() { err = errs.Combine(err, Error.Wrap(rows.Close())) }()

	var events []*Event
	for rows.Next() {
		event := &Event{}
		if err := rows.Scan(
			&event.ID, &event.ParentID, &event.Name, &event.Source,
			&event.Metadata, &event.SourceWallClock); err != nil {
			return nil, Error.Wrap(err)
		}
		events = append(events, event)
	}
	return events, Error.Wrap(rows.Err())
}

// LogMetric appends one metric sample.
func (r *Repository) LogMetric(ctx context.Context, sample *MetricSample) (err error) {
	defer mon.Task()(&ctx)(&err)

	_, err = r.db.db.ExecContext(ctx, `
		INSERT INTO metrics (object_id, name, tensor, double_value, step, wall_clock, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		sample.ObjectID, sample.Name, sample.Tensor, sample.DoubleValue,
		int64(sample.Step), int64(sample.WallClock), sample.CreatedAt)
	return Error.Wrap(err)
}

// GetMetrics returns the metric samples of an object in insertion order.
func (r *Repository) GetMetrics(ctx context.Context, objectID string) (_ []*MetricSample, err error) {
	defer mon.Task()(&ctx)(&err)

	rows, err := r.db.db.QueryContext(ctx, `
		SELECT object_id, name, tensor, double_value, step, wall_clock, created_at
		FROM metrics WHERE object_id = $1 ORDER BY id`, objectID)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	defer func() { err = errs.Combine(err, Error.Wrap(rows.Close())) }()

	var samples []*MetricSample
	for rows.Next() {
		sample := &MetricSample{}
		var step, wallClock int64
		if err := rows.Scan(
			&sample.ObjectID, &sample.Name, &sample.Tensor, &sample.DoubleValue,
			&step, &wallClock, &sample.CreatedAt); err != nil {
			return nil, Error.Wrap(err)
		}
		sample.Step = uint64(step)
		sample.WallClock = uint64(wallClock)
		samples = append(samples, sample)
	}
	return samples, Error.Wrap(rows.Err())
}
