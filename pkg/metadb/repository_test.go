// Copyright (C) 2025 Tensorland, Inc.
// See LICENSE for copying information.

package metadb

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/tensorland/modelbox/pkg/pb"
)

func newTestRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(zaptest.NewLogger(t), Wrap(db)), mock
}

func TestCreateExperiment(t *testing.T) {
	repo, mock := newTestRepository(t)
	experiment := NewExperiment("gpt2", "a@x", "ns1", "e1", pb.MLFramework_PYTORCH)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO mutations").
		WithArgs(experiment.ID, ObjectExperiment, MutationCreate, "ns1", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO experiments").
		WithArgs(experiment.ID, "gpt2", "e1", "a@x", "ns1", int32(pb.MLFramework_PYTORCH),
			experiment.CreatedAt, experiment.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := repo.CreateExperiment(context.Background(), experiment)
	require.NoError(t, err)
	require.Equal(t, experiment.ID, result.ID)
	require.False(t, result.Exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateExperimentExistsRollsBack(t *testing.T) {
	repo, mock := newTestRepository(t)
	experiment := NewExperiment("gpt2", "a@x", "ns1", "e1", pb.MLFramework_PYTORCH)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO mutations").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO experiments").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	result, err := repo.CreateExperiment(context.Background(), experiment)
	require.NoError(t, err)
	require.Equal(t, experiment.ID, result.ID)
	require.True(t, result.Exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateModelVersion(t *testing.T) {
	repo, mock := newTestRepository(t)
	version := NewModelVersion("model-1", "v1", "1.0", "", "ns1", pb.MLFramework_PYTORCH, []string{"a", "b"})

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO mutations").
		WithArgs(version.ID, ObjectModelVersion, MutationCreate, "ns1", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO model_versions").
		WithArgs(version.ID, "v1", "model-1", "", "ns1", "1.0", "",
			int32(pb.MLFramework_PYTORCH), []byte(`["a","b"]`),
			version.CreatedAt, version.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := repo.CreateModelVersion(context.Background(), version)
	require.NoError(t, err)
	require.False(t, result.Exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetExperimentNotFound(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery("SELECT (.+) FROM experiments").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "external_id", "owner", "namespace", "ml_framework", "created_at", "updated_at",
		}))

	_, err := repo.GetExperiment(context.Background(), "unknown")
	require.True(t, ErrNotFound.Has(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListExperiments(t *testing.T) {
	repo, mock := newTestRepository(t)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT (.+) FROM experiments WHERE namespace").
		WithArgs("ns1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "external_id", "owner", "namespace", "ml_framework", "created_at", "updated_at",
		}).AddRow("1", "gpt2", "e1", "a@x", "ns1", int32(1), now, now))

	experiments, err := repo.ListExperiments(context.Background(), "ns1")
	require.NoError(t, err)
	require.Len(t, experiments, 1)
	require.Equal(t, "gpt2", experiments[0].Name)
	require.Equal(t, int32(pb.MLFramework_PYTORCH), experiments[0].Framework)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMetadataUpserts(t *testing.T) {
	repo, mock := newTestRepository(t)
	entries, err := NewMetadataEntries("p", map[string]string{"k": "v2"})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO metadata (.+) ON CONFLICT \\(id\\) DO UPDATE SET meta").
		WithArgs(entries[0].ID, "p", "k", `"v2"`, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.UpdateMetadata(context.Background(), entries))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFilesUpsertsUploadPath(t *testing.T) {
	repo, mock := newTestRepository(t)
	file, err := NewFile(&pb.FileMetadata{
		ParentId: "p",
		SrcPath:  "a.bin",
		Checksum: "abc",
		FileType: pb.FileType_MODEL,
	}, "weights")
	require.NoError(t, err)
	file.UploadPath = "modelbox/artifacts/p/" + file.ID

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO files (.+) ON CONFLICT \\(id\\) DO UPDATE SET").
		WithArgs(file.ID, "p", "a.bin", sqlmock.AnyArg(), "model", file.Metadata,
			"weights", file.ArtifactID, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.CreateFiles(context.Background(), []*File{file}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLogAndGetMetrics(t *testing.T) {
	repo, mock := newTestRepository(t)
	sample := NewMetricSample("p", "loss", &pb.MetricsValue{
		Step:          1,
		WallclockTime: 1700000000,
		Value:         &pb.MetricsValue_FVal{FVal: 0.8},
	})

	mock.ExpectExec("INSERT INTO metrics").
		WithArgs("p", "loss", nil, sqlmock.AnyArg(), int64(1), int64(1700000000), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, repo.LogMetric(context.Background(), sample))

	mock.ExpectQuery("SELECT (.+) FROM metrics").
		WithArgs("p").
		WillReturnRows(sqlmock.NewRows([]string{
			"object_id", "name", "tensor", "double_value", "step", "wall_clock", "created_at",
		}).AddRow("p", "loss", nil, 0.8, int64(1), int64(1700000000), time.Now()))

	samples, err := repo.GetMetrics(context.Background(), "p")
	require.NoError(t, err)
	require.Len(t, samples, 1)
	require.Equal(t, uint64(1700000000), samples[0].WallClock)
	require.NotNil(t, samples[0].DoubleValue)
	require.InDelta(t, 0.8, *samples[0].DoubleValue, 1e-6)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEvents(t *testing.T) {
	repo, mock := newTestRepository(t)
	event, err := NewEvent("p", &pb.Event{
		Name:          "training_started",
		Source:        &pb.EventSource{Name: "worker-3"},
		WallclockTime: TimestampProto(time.Unix(1700000000, 0)),
		Metadata:      &pb.Metadata{Metadata: map[string]string{"host": "h"}},
	})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO events (.+) ON CONFLICT \\(id\\) DO NOTHING").
		WithArgs(event.ID, "p", "training_started", "worker-3", event.Metadata, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.CreateEvents(context.Background(), []*Event{event}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListEventsOrderedByWallClock(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery("SELECT (.+) FROM events WHERE parent_id (.+) ORDER BY source_wall_clock").
		WithArgs("p").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "parent_id", "name", "source", "metadata", "source_wall_clock",
		}).
			AddRow("1", "p", "started", "worker", "{}", time.Unix(1700000000, 0)).
			AddRow("2", "p", "finished", "worker", "{}", time.Unix(1700000100, 0)))

	events, err := repo.ListEvents(context.Background(), "p")
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "started", events[0].Name)
	require.Equal(t, "finished", events[1].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}
