// Copyright (C) 2025 Tensorland, Inc.
// See LICENSE for copying information.

// Package modelstore implements the modelbox.ModelStore gRPC service on
// top of the metadata repository and the blob store.
package modelstore

import (
	"context"
	"time"

	"github.com/zeebo/errs"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	monkit "gopkg.in/spacemonkeygo/monkit.v2"

	"github.com/tensorland/modelbox/pkg/blobstore"
	"github.com/tensorland/modelbox/pkg/metadb"
	"github.com/tensorland/modelbox/pkg/pb"
)

var (
	mon = monkit.Package()

	// Error is the default modelstore errs class.
	Error = errs.Class("modelstore error")
)

// Repository is the metadata persistence consumed by the service.
// Implemented by *metadb.Repository.
type Repository interface {
	CreateExperiment(ctx context.Context, experiment *metadb.Experiment) (metadb.CreateResult, error)
	GetExperiment(ctx context.Context, id string) (*metadb.Experiment, error)
	ListExperiments(ctx context.Context, namespace string) ([]*metadb.Experiment, error)
	CreateModel(ctx context.Context, model *metadb.Model) (metadb.CreateResult, error)
	ListModels(ctx context.Context, namespace string) ([]*metadb.Model, error)
	CreateModelVersion(ctx context.Context, version *metadb.ModelVersion) (metadb.CreateResult, error)
	ListModelVersions(ctx context.Context, modelID string) ([]*metadb.ModelVersion, error)
	UpdateMetadata(ctx context.Context, entries []*metadb.MetadataEntry) error
	ListMetadata(ctx context.Context, parentID string) ([]*metadb.MetadataEntry, error)
	CreateFiles(ctx context.Context, files []*metadb.File) error
	ListFiles(ctx context.Context, parentID string) ([]*metadb.File, error)
	CreateEvents(ctx context.Context, events []*metadb.Event) error
	ListEvents(ctx context.Context, parentID string) ([]*metadb.Event, error)
	LogMetric(ctx context.Context, sample *metadb.MetricSample) error
	GetMetrics(ctx context.Context, objectID string) ([]*metadb.MetricSample, error)
}

// Server implements pb.ModelStoreServer.
type Server struct {
	log   *zap.Logger
	repo  Repository
	blobs blobstore.Store
}

// NewServer constructs the service.
func NewServer(log *zap.Logger, repo Repository, blobs blobstore.Store) *Server {
	return &Server{log: log, repo: repo, blobs: blobs}
}

// internalError maps persistence errors onto gRPC status codes, keeping
// not-found distinct.
func internalError(err error) error {
	if metadb.ErrNotFound.Has(err) {
		return status.Error(codes.NotFound, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

// CreateExperiment creates an experiment; a repeated create of the same
// experiment reports experiment_exists with the original id.
func (s *Server) CreateExperiment(ctx context.Context, req *pb.CreateExperimentRequest) (_ *pb.CreateExperimentResponse, err error) {
	defer mon.Task()(&ctx)(&err)

	experiment := metadb.NewExperiment(
		req.GetName(), req.GetOwner(), req.GetNamespace(), req.GetExternalId(), req.GetFramework())
	result, err := s.repo.CreateExperiment(ctx, experiment)
	if err != nil {
		return nil, internalError(err)
	}
	return &pb.CreateExperimentResponse{
		ExperimentId:     result.ID,
		ExperimentExists: result.Exists,
		CreatedAt:        metadb.TimestampProto(result.CreatedAt),
		UpdatedAt:        metadb.TimestampProto(result.UpdatedAt),
	}, nil
}

// GetExperiment returns an experiment by id.
func (s *Server) GetExperiment(ctx context.Context, req *pb.GetExperimentRequest) (_ *pb.GetExperimentResponse, err error) {
	defer mon.Task()(&ctx)(&err)

	experiment, err := s.repo.GetExperiment(ctx, req.GetId())
	if err != nil {
		return nil, internalError(err)
	}
	return &pb.GetExperimentResponse{Experiment: experiment.ToProto()}, nil
}

// ListExperiments returns the experiments in a namespace.
func (s *Server) ListExperiments(ctx context.Context, req *pb.ListExperimentsRequest) (_ *pb.ListExperimentsResponse, err error) {
	defer mon.Task()(&ctx)(&err)

	experiments, err := s.repo.ListExperiments(ctx, req.GetNamespace())
	if err != nil {
		return nil, internalError(err)
	}
	resp := &pb.ListExperimentsResponse{}
	for _, experiment := range experiments {
		resp.Experiments = append(resp.Experiments, experiment.ToProto())
	}
	return resp, nil
}

// CreateModel creates a model.
func (s *Server) CreateModel(ctx context.Context, req *pb.CreateModelRequest) (_ *pb.CreateModelResponse, err error) {
	defer mon.Task()(&ctx)(&err)

	model := metadb.NewModel(
		req.GetName(), req.GetOwner(), req.GetNamespace(), req.GetTask(), req.GetDescription())
	result, err := s.repo.CreateModel(ctx, model)
	if err != nil {
		return nil, internalError(err)
	}
	return &pb.CreateModelResponse{
		Id:        result.ID,
		Exists:    result.Exists,
		CreatedAt: metadb.TimestampProto(result.CreatedAt),
		UpdatedAt: metadb.TimestampProto(result.UpdatedAt),
	}, nil
}

// ListModels returns the models in a namespace.
func (s *Server) ListModels(ctx context.Context, req *pb.ListModelsRequest) (_ *pb.ListModelsResponse, err error) {
	defer mon.Task()(&ctx)(&err)

	models, err := s.repo.ListModels(ctx, req.GetNamespace())
	if err != nil {
		return nil, internalError(err)
	}
	resp := &pb.ListModelsResponse{}
	for _, model := range models {
		resp.Models = append(resp.Models, model.ToProto())
	}
	return resp, nil
}

// CreateModelVersion creates a model version.
func (s *Server) CreateModelVersion(ctx context.Context, req *pb.CreateModelVersionRequest) (_ *pb.CreateModelVersionResponse, err error) {
	defer mon.Task()(&ctx)(&err)

	version := metadb.NewModelVersion(
		req.GetModel(), req.GetName(), req.GetVersion(), req.GetDescription(),
		req.GetNamespace(), req.GetFramework(), req.GetUniqueTags())
	result, err := s.repo.CreateModelVersion(ctx, version)
	if err != nil {
		return nil, internalError(err)
	}
	return &pb.CreateModelVersionResponse{
		ModelVersion: result.ID,
		Exists:       result.Exists,
		CreatedAt:    metadb.TimestampProto(result.CreatedAt),
		UpdatedAt:    metadb.TimestampProto(result.UpdatedAt),
	}, nil
}

// ListModelVersions returns the versions of a model.
func (s *Server) ListModelVersions(ctx context.Context, req *pb.ListModelVersionsRequest) (_ *pb.ListModelVersionsResponse, err error) {
	defer mon.Task()(&ctx)(&err)

	versions, err := s.repo.ListModelVersions(ctx, req.GetModel())
	if err != nil {
		return nil, internalError(err)
	}
	resp := &pb.ListModelVersionsResponse{}
	for _, version := range versions {
		resp.ModelVersions = append(resp.ModelVersions, version.ToProto())
	}
	return resp, nil
}

// UpdateMetadata upserts the metadata map of an object.
func (s *Server) UpdateMetadata(ctx context.Context, req *pb.UpdateMetadataRequest) (_ *pb.UpdateMetadataResponse, err error) {
	defer mon.Task()(&ctx)(&err)

	entries, err := metadb.NewMetadataEntries(req.GetParentId(), req.GetMetadata().GetMetadata())
	if err != nil {
		return nil, internalError(err)
	}
	if err := s.repo.UpdateMetadata(ctx, entries); err != nil {
		return nil, internalError(err)
	}
	return &pb.UpdateMetadataResponse{}, nil
}

// ListMetadata returns the metadata map of an object.
func (s *Server) ListMetadata(ctx context.Context, req *pb.ListMetadataRequest) (_ *pb.ListMetadataResponse, err error) {
	defer mon.Task()(&ctx)(&err)

	entries, err := s.repo.ListMetadata(ctx, req.GetParentId())
	if err != nil {
		return nil, internalError(err)
	}
	metadata, err := metadb.MetadataMap(entries)
	if err != nil {
		return nil, internalError(err)
	}
	return &pb.ListMetadataResponse{Metadata: &pb.Metadata{Metadata: metadata}}, nil
}

// TrackArtifacts registers files managed by another storage service
// under a named artifact group. The response id is unused and empty.
func (s *Server) TrackArtifacts(ctx context.Context, req *pb.TrackArtifactsRequest) (_ *pb.TrackArtifactsResponse, err error) {
	defer mon.Task()(&ctx)(&err)

	files := make([]*metadb.File, 0, len(req.GetFiles()))
	for _, fm := range req.GetFiles() {
		file, err := metadb.NewFile(fm, req.GetName())
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		files = append(files, file)
	}
	if err := s.repo.CreateFiles(ctx, files); err != nil {
		return nil, internalError(err)
	}
	return &pb.TrackArtifactsResponse{}, nil
}

// ListArtifacts groups the file rows of an object by artifact. The
// grouping key includes the name and parent so that names stay scoped to
// their parent even under id collisions.
func (s *Server) ListArtifacts(ctx context.Context, req *pb.ListArtifactsRequest) (_ *pb.ListArtifactsResponse, err error) {
	defer mon.Task()(&ctx)(&err)

	files, err := s.repo.ListFiles(ctx, req.GetObjectId())
	if err != nil {
		return nil, internalError(err)
	}

	type groupKey struct {
		artifactID   string
		artifactName string
		parentID     string
	}
	groups := make(map[groupKey]*pb.Artifact)
	resp := &pb.ListArtifactsResponse{}
	for _, file := range files {
		key := groupKey{file.ArtifactID, file.ArtifactName, file.ParentID}
		artifact, ok := groups[key]
		if !ok {
			artifact = &pb.Artifact{
				Id:       file.ArtifactID,
				Name:     file.ArtifactName,
				ObjectId: file.ParentID,
			}
			groups[key] = artifact
			resp.Artifacts = append(resp.Artifacts, artifact)
		}
		artifact.Files = append(artifact.Files, file.ToProto())
	}
	return resp, nil
}

// LogMetrics appends one metric sample to the named series of an object.
func (s *Server) LogMetrics(ctx context.Context, req *pb.LogMetricsRequest) (_ *pb.LogMetricsResponse, err error) {
	defer mon.Task()(&ctx)(&err)

	if req.GetValue() == nil {
		return nil, status.Error(codes.InvalidArgument, "no metric value provided")
	}
	sample := metadb.NewMetricSample(req.GetParentId(), req.GetKey(), req.GetValue())
	if err := s.repo.LogMetric(ctx, sample); err != nil {
		return nil, internalError(err)
	}
	return &pb.LogMetricsResponse{}, nil
}

// GetMetrics buckets the samples of an object by series name, in
// insertion order within each series.
func (s *Server) GetMetrics(ctx context.Context, req *pb.GetMetricsRequest) (_ *pb.GetMetricsResponse, err error) {
	defer mon.Task()(&ctx)(&err)

	samples, err := s.repo.GetMetrics(ctx, req.GetParentId())
	if err != nil {
		return nil, internalError(err)
	}
	metrics := make(map[string]*pb.Metrics)
	for _, sample := range samples {
		series, ok := metrics[sample.Name]
		if !ok {
			series = &pb.Metrics{Key: sample.Name}
			metrics[sample.Name] = series
		}
		series.Values = append(series.Values, sample.ToProto())
	}
	return &pb.GetMetricsResponse{Metrics: metrics}, nil
}

// LogEvent appends an event to an object.
func (s *Server) LogEvent(ctx context.Context, req *pb.LogEventRequest) (_ *pb.LogEventResponse, err error) {
	defer mon.Task()(&ctx)(&err)

	if req.GetEvent() == nil {
		return nil, status.Error(codes.InvalidArgument, "no event provided")
	}
	event, err := metadb.NewEvent(req.GetParentId(), req.GetEvent())
	if err != nil {
		return nil, internalError(err)
	}
	if err := s.repo.CreateEvents(ctx, []*metadb.Event{event}); err != nil {
		return nil, internalError(err)
	}
	return &pb.LogEventResponse{
		CreatedAt: metadb.TimestampProto(time.Now().UTC()),
	}, nil
}

// ListEvents returns the events of an object in insertion order. The
// since filter of the request is accepted but not yet applied.
func (s *Server) ListEvents(ctx context.Context, req *pb.ListEventsRequest) (_ *pb.ListEventsResponse, err error) {
	defer mon.Task()(&ctx)(&err)

	events, err := s.repo.ListEvents(ctx, req.GetParentId())
	if err != nil {
		return nil, internalError(err)
	}
	resp := &pb.ListEventsResponse{}
	for _, event := range events {
		wire, err := event.ToProto()
		if err != nil {
			return nil, internalError(err)
		}
		resp.Events = append(resp.Events, wire)
	}
	return resp, nil
}

// DownloadFile is declared on the wire but not implemented yet.
func (s *Server) DownloadFile(req *pb.DownloadFileRequest, stream pb.ModelStore_DownloadFileServer) error {
	return status.Error(codes.Unimplemented, "method DownloadFile not implemented")
}

// WatchNamespace is declared on the wire but not implemented yet. The
// mutation change-log rows are its future source of truth.
func (s *Server) WatchNamespace(req *pb.WatchNamespaceRequest, stream pb.ModelStore_WatchNamespaceServer) error {
	return status.Error(codes.Unimplemented, "method WatchNamespace not implemented")
}
