// Copyright (C) 2025 Tensorland, Inc.
// See LICENSE for copying information.

package modelstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tensorland/modelbox/pkg/metadb"
	"github.com/tensorland/modelbox/pkg/pb"
)

// fakeRepo keeps the repository state in maps, mirroring the idempotent
// create and upsert semantics of the real one.
type fakeRepo struct {
	experiments map[string]*metadb.Experiment
	models      map[string]*metadb.Model
	versions    map[string]*metadb.ModelVersion
	metadata    map[string]*metadb.MetadataEntry
	files       map[string]*metadb.File
	events      map[string]*metadb.Event
	samples     []*metadb.MetricSample
	mutations   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		experiments: make(map[string]*metadb.Experiment),
		models:      make(map[string]*metadb.Model),
		versions:    make(map[string]*metadb.ModelVersion),
		metadata:    make(map[string]*metadb.MetadataEntry),
		files:       make(map[string]*metadb.File),
		events:      make(map[string]*metadb.Event),
	}
}

func (f *fakeRepo) CreateExperiment(ctx context.Context, experiment *metadb.Experiment) (metadb.CreateResult, error) {
	if existing, ok := f.experiments[experiment.ID]; ok {
		return metadb.CreateResult{ID: existing.ID, Exists: true, CreatedAt: existing.CreatedAt, UpdatedAt: existing.UpdatedAt}, nil
	}
	f.experiments[experiment.ID] = experiment
	f.mutations++
	return metadb.CreateResult{ID: experiment.ID, CreatedAt: experiment.CreatedAt, UpdatedAt: experiment.UpdatedAt}, nil
}

func (f *fakeRepo) GetExperiment(ctx context.Context, id string) (*metadb.Experiment, error) {
	experiment, ok := f.experiments[id]
	if !ok {
		return nil, metadb.ErrNotFound.New("experiment %s", id)
	}
	return experiment, nil
}

func (f *fakeRepo) ListExperiments(ctx context.Context, namespace string) ([]*metadb.Experiment, error) {
	var experiments []*metadb.Experiment
	for _, experiment := range f.experiments {
		if experiment.Namespace == namespace {
			experiments = append(experiments, experiment)
		}
	}
	return experiments, nil
}

func (f *fakeRepo) CreateModel(ctx context.Context, model *metadb.Model) (metadb.CreateResult, error) {
	if existing, ok := f.models[model.ID]; ok {
		return metadb.CreateResult{ID: existing.ID, Exists: true, CreatedAt: existing.CreatedAt, UpdatedAt: existing.UpdatedAt}, nil
	}
	f.models[model.ID] = model
	f.mutations++
	return metadb.CreateResult{ID: model.ID, CreatedAt: model.CreatedAt, UpdatedAt: model.UpdatedAt}, nil
}

func (f *fakeRepo) ListModels(ctx context.Context, namespace string) ([]*metadb.Model, error) {
	var models []*metadb.Model
	for _, model := range f.models {
		if model.Namespace == namespace {
			models = append(models, model)
		}
	}
	return models, nil
}

func (f *fakeRepo) CreateModelVersion(ctx context.Context, version *metadb.ModelVersion) (metadb.CreateResult, error) {
	if existing, ok := f.versions[version.ID]; ok {
		return metadb.CreateResult{ID: existing.ID, Exists: true, CreatedAt: existing.CreatedAt, UpdatedAt: existing.UpdatedAt}, nil
	}
	f.versions[version.ID] = version
	f.mutations++
	return metadb.CreateResult{ID: version.ID, CreatedAt: version.CreatedAt, UpdatedAt: version.UpdatedAt}, nil
}

func (f *fakeRepo) ListModelVersions(ctx context.Context, modelID string) ([]*metadb.ModelVersion, error) {
	var versions []*metadb.ModelVersion
	for _, version := range f.versions {
		if version.ModelID == modelID {
			versions = append(versions, version)
		}
	}
	return versions, nil
}

func (f *fakeRepo) UpdateMetadata(ctx context.Context, entries []*metadb.MetadataEntry) error {
	for _, entry := range entries {
		if existing, ok := f.metadata[entry.ID]; ok {
			existing.Meta = entry.Meta
			continue
		}
		f.metadata[entry.ID] = entry
	}
	return nil
}

func (f *fakeRepo) ListMetadata(ctx context.Context, parentID string) ([]*metadb.MetadataEntry, error) {
	var entries []*metadb.MetadataEntry
	for _, entry := range f.metadata {
		if entry.ParentID == parentID {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (f *fakeRepo) CreateFiles(ctx context.Context, files []*metadb.File) error {
	for _, file := range files {
		if existing, ok := f.files[file.ID]; ok {
			existing.UploadPath = file.UploadPath
			existing.Metadata = file.Metadata
			existing.UpdatedAt = file.UpdatedAt
			continue
		}
		f.files[file.ID] = file
	}
	return nil
}

func (f *fakeRepo) ListFiles(ctx context.Context, parentID string) ([]*metadb.File, error) {
	var files []*metadb.File
	for _, file := range f.files {
		if file.ParentID == parentID {
			files = append(files, file)
		}
	}
	return files, nil
}

func (f *fakeRepo) CreateEvents(ctx context.Context, events []*metadb.Event) error {
	for _, event := range events {
		if _, ok := f.events[event.ID]; !ok {
			f.events[event.ID] = event
		}
	}
	return nil
}

func (f *fakeRepo) ListEvents(ctx context.Context, parentID string) ([]*metadb.Event, error) {
	var events []*metadb.Event
	for _, event := range f.events {
		if event.ParentID == parentID {
			events = append(events, event)
		}
	}
	return events, nil
}

func (f *fakeRepo) LogMetric(ctx context.Context, sample *metadb.MetricSample) error {
	f.samples = append(f.samples, sample)
	return nil
}

func (f *fakeRepo) GetMetrics(ctx context.Context, objectID string) ([]*metadb.MetricSample, error) {
	var samples []*metadb.MetricSample
	for _, sample := range f.samples {
		if sample.ObjectID == objectID {
			samples = append(samples, sample)
		}
	}
	return samples, nil
}

func newTestServer(t *testing.T) (*Server, *fakeRepo) {
	repo := newFakeRepo()
	return NewServer(zaptest.NewLogger(t), repo, nil), repo
}

func TestCreateExperimentIdempotent(t *testing.T) {
	ctx := context.Background()
	server, repo := newTestServer(t)

	req := &pb.CreateExperimentRequest{
		Name:       "gpt2",
		Owner:      "a@x",
		Namespace:  "ns1",
		Framework:  pb.MLFramework_PYTORCH,
		Task:       "lm",
		ExternalId: "e1",
	}
	first, err := server.CreateExperiment(ctx, req)
	require.NoError(t, err)
	require.False(t, first.GetExperimentExists())
	require.NotEmpty(t, first.GetExperimentId())
	require.Greater(t, first.GetCreatedAt().GetSeconds(), int64(1_000_000_000))

	second, err := server.CreateExperiment(ctx, req)
	require.NoError(t, err)
	require.True(t, second.GetExperimentExists())
	require.Equal(t, first.GetExperimentId(), second.GetExperimentId())
	require.Equal(t, 1, repo.mutations)

	got, err := server.GetExperiment(ctx, &pb.GetExperimentRequest{Id: first.GetExperimentId()})
	require.NoError(t, err)
	require.Equal(t, "gpt2", got.GetExperiment().GetName())
	require.Equal(t, pb.MLFramework_PYTORCH, got.GetExperiment().GetFramework())

	list, err := server.ListExperiments(ctx, &pb.ListExperimentsRequest{Namespace: "ns1"})
	require.NoError(t, err)
	require.Len(t, list.GetExperiments(), 1)
}

func TestGetExperimentNotFound(t *testing.T) {
	server, _ := newTestServer(t)

	_, err := server.GetExperiment(context.Background(), &pb.GetExperimentRequest{Id: "unknown"})
	require.Equal(t, codes.NotFound, status.Code(err))
}

func TestModelVersionTags(t *testing.T) {
	ctx := context.Background()
	server, _ := newTestServer(t)

	model, err := server.CreateModel(ctx, &pb.CreateModelRequest{
		Name: "m", Namespace: "ns1", Owner: "a@x", Task: "t", Description: "d",
	})
	require.NoError(t, err)

	version, err := server.CreateModelVersion(ctx, &pb.CreateModelVersionRequest{
		Model:      model.GetId(),
		Name:       "v1",
		Version:    "1.0",
		Namespace:  "ns1",
		Framework:  pb.MLFramework_PYTORCH,
		UniqueTags: []string{"a", "b"},
	})
	require.NoError(t, err)
	require.False(t, version.GetExists())

	list, err := server.ListModelVersions(ctx, &pb.ListModelVersionsRequest{Model: model.GetId()})
	require.NoError(t, err)
	require.Len(t, list.GetModelVersions(), 1)
	require.Equal(t, []string{"a", "b"}, list.GetModelVersions()[0].GetUniqueTags())
}

func TestMetadataUpsert(t *testing.T) {
	ctx := context.Background()
	server, _ := newTestServer(t)

	for _, value := range []string{"v1", "v2"} {
		_, err := server.UpdateMetadata(ctx, &pb.UpdateMetadataRequest{
			ParentId: "p",
			Metadata: &pb.Metadata{Metadata: map[string]string{"k": value}},
		})
		require.NoError(t, err)
	}

	list, err := server.ListMetadata(ctx, &pb.ListMetadataRequest{ParentId: "p"})
	require.NoError(t, err)
	require.Equal(t, map[string]string{"k": "v2"}, list.GetMetadata().GetMetadata())
}

func TestArtifactGrouping(t *testing.T) {
	ctx := context.Background()
	server, _ := newTestServer(t)

	_, err := server.TrackArtifacts(ctx, &pb.TrackArtifactsRequest{
		Name: "weights",
		Files: []*pb.FileMetadata{
			{ParentId: "p", SrcPath: "a.bin", Checksum: "c1", FileType: pb.FileType_MODEL},
			{ParentId: "p", SrcPath: "b.txt", Checksum: "c2", FileType: pb.FileType_TEXT},
		},
	})
	require.NoError(t, err)

	list, err := server.ListArtifacts(ctx, &pb.ListArtifactsRequest{ObjectId: "p"})
	require.NoError(t, err)
	require.Len(t, list.GetArtifacts(), 1)

	artifact := list.GetArtifacts()[0]
	require.Equal(t, "weights", artifact.GetName())
	require.Equal(t, "p", artifact.GetObjectId())
	require.NotEmpty(t, artifact.GetId())
	require.Len(t, artifact.GetFiles(), 2)

	srcPaths := map[string]bool{}
	for _, file := range artifact.GetFiles() {
		srcPaths[file.GetSrcPath()] = true
	}
	require.Equal(t, map[string]bool{"a.bin": true, "b.txt": true}, srcPaths)
}

func TestMetricsBucketing(t *testing.T) {
	ctx := context.Background()
	server, _ := newTestServer(t)

	for i, value := range []float32{0.9, 0.8} {
		_, err := server.LogMetrics(ctx, &pb.LogMetricsRequest{
			ParentId: "p",
			Key:      "loss",
			Value: &pb.MetricsValue{
				Step:          uint64(i),
				WallclockTime: uint64(1700000000 + i),
				Value:         &pb.MetricsValue_FVal{FVal: value},
			},
		})
		require.NoError(t, err)
	}

	resp, err := server.GetMetrics(ctx, &pb.GetMetricsRequest{ParentId: "p"})
	require.NoError(t, err)
	require.Len(t, resp.GetMetrics(), 1)

	series := resp.GetMetrics()["loss"]
	require.NotNil(t, series)
	require.Len(t, series.GetValues(), 2)
	require.InDelta(t, 0.9, series.GetValues()[0].GetFVal(), 1e-6)
	require.Equal(t, uint64(1700000000), series.GetValues()[0].GetWallclockTime())
	require.Equal(t, uint64(1), series.GetValues()[1].GetStep())
}

func TestLogMetricsRequiresValue(t *testing.T) {
	server, _ := newTestServer(t)

	_, err := server.LogMetrics(context.Background(), &pb.LogMetricsRequest{ParentId: "p", Key: "loss"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestEventRoundTrip(t *testing.T) {
	ctx := context.Background()
	server, _ := newTestServer(t)

	resp, err := server.LogEvent(ctx, &pb.LogEventRequest{
		ParentId: "p",
		Event: &pb.Event{
			Name:          "training_started",
			Source:        &pb.EventSource{Name: "worker-3"},
			WallclockTime: metadb.TimestampProto(timeUnix(1700000000)),
			Metadata:      &pb.Metadata{Metadata: map[string]string{"host": "h"}},
		},
	})
	require.NoError(t, err)
	require.Greater(t, resp.GetCreatedAt().GetSeconds(), int64(1_000_000_000))

	list, err := server.ListEvents(ctx, &pb.ListEventsRequest{ParentId: "p"})
	require.NoError(t, err)
	require.Len(t, list.GetEvents(), 1)

	event := list.GetEvents()[0]
	require.Equal(t, "training_started", event.GetName())
	require.Equal(t, "worker-3", event.GetSource().GetName())
	require.Equal(t, int64(1700000000), event.GetWallclockTime().GetSeconds())
	require.Equal(t, map[string]string{"host": "h"}, event.GetMetadata().GetMetadata())
}

func TestDownloadAndWatchUnimplemented(t *testing.T) {
	server, _ := newTestServer(t)

	err := server.DownloadFile(&pb.DownloadFileRequest{}, nil)
	require.Equal(t, codes.Unimplemented, status.Code(err))

	err = server.WatchNamespace(&pb.WatchNamespaceRequest{}, nil)
	require.Equal(t, codes.Unimplemented, status.Code(err))
}
