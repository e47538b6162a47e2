// Copyright (C) 2025 Tensorland, Inc.
// See LICENSE for copying information.

package metadb

import (
	"encoding/json"
	"time"

	timestamp "github.com/golang/protobuf/ptypes/timestamp"
	"github.com/zeebo/errs"

	"github.com/tensorland/modelbox/pkg/ids"
	"github.com/tensorland/modelbox/pkg/pb"
)

// ObjectType discriminates the payload column of a mutation row. The
// numeric codings are persisted and must not change.
type ObjectType int16

const (
	ObjectExperiment   ObjectType = 1
	ObjectModel        ObjectType = 2
	ObjectModelVersion ObjectType = 3
)

// MutationType encodes the kind of change recorded by a mutation row.
type MutationType int16

const (
	MutationCreate MutationType = 1
	MutationModify MutationType = 2
	MutationUpdate MutationType = 3
	MutationDelete MutationType = 4
)

// Experiment is a training run which produces model versions.
type Experiment struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ExternalID string    `json:"external_id"`
	Owner      string    `json:"owner"`
	Namespace  string    `json:"namespace"`
	Framework  int32     `json:"ml_framework"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewExperiment builds an experiment entity with its derived id and
// server-stamped timestamps.
func NewExperiment(name, owner, namespace, externalID string, framework pb.MLFramework) *Experiment {
	now := time.Now().UTC()
	return &Experiment{
		ID:         ids.Experiment(name, owner, namespace),
		Name:       name,
		ExternalID: externalID,
		Owner:      owner,
		Namespace:  namespace,
		Framework:  int32(framework),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// ToProto renders the experiment as a wire message.
func (e *Experiment) ToProto() *pb.Experiment {
	return &pb.Experiment{
		Id:         e.ID,
		Name:       e.Name,
		Namespace:  e.Namespace,
		Owner:      e.Owner,
		Framework:  pb.MLFramework(e.Framework),
		ExternalId: e.ExternalID,
		CreatedAt:  TimestampProto(e.CreatedAt),
		UpdatedAt:  TimestampProto(e.UpdatedAt),
	}
}

// Model is a named solution to a task, independent of any trained instance.
type Model struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Owner       string    `json:"owner"`
	Namespace   string    `json:"namespace"`
	Task        string    `json:"task"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewModel(name, owner, namespace, task, description string) *Model {
	now := time.Now().UTC()
	return &Model{
		ID:          ids.Model(name, namespace),
		Name:        name,
		Owner:       owner,
		Namespace:   namespace,
		Task:        task,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (m *Model) ToProto() *pb.Model {
	return &pb.Model{
		Id:          m.ID,
		Name:        m.Name,
		Owner:       m.Owner,
		Namespace:   m.Namespace,
		Description: m.Description,
		Task:        m.Task,
		CreatedAt:   TimestampProto(m.CreatedAt),
		UpdatedAt:   TimestampProto(m.UpdatedAt),
	}
}

// ModelVersion is a trained instance of a model. ExperimentID is reserved
// for future linkage to the producing experiment and is always empty on
// create.
type ModelVersion struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ModelID      string    `json:"model_id"`
	ExperimentID string    `json:"experiment_id"`
	Namespace    string    `json:"namespace"`
	Version      string    `json:"version"`
	Description  string    `json:"description"`
	Framework    int32     `json:"ml_framework"`
	UniqueTags   []string  `json:"unique_tags"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewModelVersion(modelID, name, version, description, namespace string, framework pb.MLFramework, uniqueTags []string) *ModelVersion {
	now := time.Now().UTC()
	return &ModelVersion{
		ID:          ids.ModelVersion(modelID, version),
		Name:        name,
		ModelID:     modelID,
		Namespace:   namespace,
		Version:     version,
		Description: description,
		Framework:   int32(framework),
		UniqueTags:  uniqueTags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (v *ModelVersion) ToProto() *pb.ModelVersion {
	return &pb.ModelVersion{
		Id:          v.ID,
		ModelId:     v.ModelID,
		Name:        v.Name,
		Version:     v.Version,
		Description: v.Description,
		Framework:   pb.MLFramework(v.Framework),
		UniqueTags:  v.UniqueTags,
		CreatedAt:   TimestampProto(v.CreatedAt),
		UpdatedAt:   TimestampProto(v.UpdatedAt),
	}
}

// MetadataEntry is one key of the free-form metadata attached to an
// object. Meta holds the JSON-encoded value.
type MetadataEntry struct {
	ID        string
	ParentID  string
	Name      string
	Meta      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMetadataEntries converts a wire metadata map into entities, JSON
// encoding each value.
func NewMetadataEntries(parentID string, metadata map[string]string) ([]*MetadataEntry, error) {
	now := time.Now().UTC()
	entries := make([]*MetadataEntry, 0, len(metadata))
	for key, value := range metadata {
		meta, err := json.Marshal(value)
		if err != nil {
			return nil, errs.Wrap(err)
		}
		entries = append(entries, &MetadataEntry{
			ID:        ids.Metadata(key, parentID),
			ParentID:  parentID,
			Name:      key,
			Meta:      string(meta),
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return entries, nil
}

// MetadataMap folds entries back into the wire map shape, decoding the
// JSON values.
func MetadataMap(entries []*MetadataEntry) (map[string]string, error) {
	metadata := make(map[string]string, len(entries))
	for _, entry := range entries {
		var value string
		if err := json.Unmarshal([]byte(entry.Meta), &value); err != nil {
			return nil, errs.Wrap(err)
		}
		metadata[entry.Name] = value
	}
	return metadata, nil
}

// FileType strings persisted in file rows. The wire enum is re-encoded as
// a string so that rows stay readable without the schema.
var fileTypeNames = map[pb.FileType]string{
	pb.FileType_UNDEFINED:  "undefined",
	pb.FileType_MODEL:      "model",
	pb.FileType_CHECKPOINT: "checkpoint",
	pb.FileType_TEXT:       "text",
	pb.FileType_IMAGE:      "image",
	pb.FileType_AUDIO:      "audio",
	pb.FileType_VIDEO:      "video",
}

var fileTypeValues = func() map[string]pb.FileType {
	values := make(map[string]pb.FileType, len(fileTypeNames))
	for t, name := range fileTypeNames {
		values[name] = t
	}
	return values
}()

// FileTypeString renders a wire file type as its persisted string,
// falling back to "undefined" for unknown values.
func FileTypeString(t pb.FileType) string {
	if name, ok := fileTypeNames[t]; ok {
		return name
	}
	return "undefined"
}

// FileTypeFromString is the inverse of FileTypeString.
func FileTypeFromString(name string) pb.FileType {
	return fileTypeValues[name]
}

// File is the metadata row of a tracked or uploaded binary. Metadata
// holds a JSON object, currently only the checksum. UploadPath is empty
// until an upload completes for the file.
type File struct {
	ID           string
	ParentID     string
	SrcPath      string
	UploadPath   string
	FileType     string
	Metadata     string
	ArtifactName string
	ArtifactID   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewFile derives a file entity from its wire metadata. The wire
// timestamps participate in the id so that a retry of the same logical
// file converges on the same row.
func NewFile(fm *pb.FileMetadata, artifactName string) (*File, error) {
	fileType := FileTypeString(fm.GetFileType())
	meta, err := json.Marshal(map[string]string{"checksum": fm.GetChecksum()})
	if err != nil {
		return nil, errs.Wrap(err)
	}
	created := fm.GetCreatedAt()
	updated := fm.GetUpdatedAt()
	id := ids.File(fm.GetParentId(), fm.GetSrcPath(), fm.GetChecksum(), fileType,
		created.GetSeconds(), created.GetNanos(), updated.GetSeconds(), updated.GetNanos())
	return &File{
		ID:           id,
		ParentID:     fm.GetParentId(),
		SrcPath:      fm.GetSrcPath(),
		UploadPath:   fm.GetUploadPath(),
		FileType:     fileType,
		Metadata:     string(meta),
		ArtifactName: artifactName,
		ArtifactID:   ids.Artifact(fm.GetParentId(), artifactName),
		CreatedAt:    time.Unix(created.GetSeconds(), int64(created.GetNanos())).UTC(),
		UpdatedAt:    time.Unix(updated.GetSeconds(), int64(updated.GetNanos())).UTC(),
	}, nil
}

// Checksum decodes the checksum out of the metadata JSON object.
func (f *File) Checksum() string {
	var meta map[string]string
	if err := json.Unmarshal([]byte(f.Metadata), &meta); err != nil {
		return ""
	}
	return meta["checksum"]
}

func (f *File) ToProto() *pb.FileMetadata {
	return &pb.FileMetadata{
		Id:         f.ID,
		ParentId:   f.ParentID,
		FileType:   FileTypeFromString(f.FileType),
		Checksum:   f.Checksum(),
		SrcPath:    f.SrcPath,
		UploadPath: f.UploadPath,
		CreatedAt:  TimestampProto(f.CreatedAt),
		UpdatedAt:  TimestampProto(f.UpdatedAt),
	}
}

// Event is an append-only labeled record attached to an object.
type Event struct {
	ID              string
	ParentID        string
	Name            string
	Source          string
	Metadata        string
	SourceWallClock time.Time
}

// NewEvent derives an event entity from the wire message. A missing
// wallclock defaults to the server clock.
func NewEvent(parentID string, event *pb.Event) (*Event, error) {
	wallClock := event.GetWallclockTime()
	if wallClock.GetSeconds() == 0 && wallClock.GetNanos() == 0 {
		now := time.Now().UTC()
		wallClock = TimestampProto(now)
	}
	meta, err := json.Marshal(event.GetMetadata().GetMetadata())
	if err != nil {
		return nil, errs.Wrap(err)
	}
	return &Event{
		ID: ids.Event(parentID, event.GetName(),
			wallClock.GetSeconds(), wallClock.GetNanos(), event.GetSource().GetName()),
		ParentID:        parentID,
		Name:            event.GetName(),
		Source:          event.GetSource().GetName(),
		Metadata:        string(meta),
		SourceWallClock: time.Unix(wallClock.GetSeconds(), int64(wallClock.GetNanos())).UTC(),
	}, nil
}

func (e *Event) ToProto() (*pb.Event, error) {
	var meta map[string]string
	if err := json.Unmarshal([]byte(e.Metadata), &meta); err != nil {
		return nil, errs.Wrap(err)
	}
	return &pb.Event{
		Name:          e.Name,
		Source:        &pb.EventSource{Name: e.Source},
		WallclockTime: TimestampProto(e.SourceWallClock),
		Metadata:      &pb.Metadata{Metadata: meta},
	}, nil
}

// MetricSample is one point of a named time series attached to an object.
// Exactly one of Tensor and DoubleValue is set.
type MetricSample struct {
	ObjectID    string
	Name        string
	Tensor      *string
	DoubleValue *float64
	Step        uint64
	WallClock   uint64
	CreatedAt   time.Time
}

// NewMetricSample derives a sample from a wire metrics value. Tensor
// payloads, string or binary, land in the tensor column; binary tensors
// are stored as their raw bytes.
func NewMetricSample(objectID, key string, value *pb.MetricsValue) *MetricSample {
	sample := &MetricSample{
		ObjectID:  objectID,
		Name:      key,
		Step:      value.GetStep(),
		WallClock: value.GetWallclockTime(),
		CreatedAt: time.Now().UTC(),
	}
	switch v := value.GetValue().(type) {
	case *pb.MetricsValue_FVal:
		val := float64(v.FVal)
		sample.DoubleValue = &val
	case *pb.MetricsValue_STensor:
		tensor := v.STensor
		sample.Tensor = &tensor
	case *pb.MetricsValue_BTensor:
		tensor := string(v.BTensor)
		sample.Tensor = &tensor
	}
	return sample
}

func (s *MetricSample) ToProto() *pb.MetricsValue {
	value := &pb.MetricsValue{
		Step:          s.Step,
		WallclockTime: s.WallClock,
	}
	switch {
	case s.Tensor != nil:
		value.Value = &pb.MetricsValue_STensor{STensor: *s.Tensor}
	case s.DoubleValue != nil:
		value.Value = &pb.MetricsValue_FVal{FVal: float32(*s.DoubleValue)}
	}
	return value
}

// Mutation is a change-log row written transactionally with every
// create. Payload is the JSON rendering of the created entity and lands
// in the payload column selected by ObjectType.
type Mutation struct {
	ObjectID     string
	ObjectType   ObjectType
	MutationType MutationType
	Namespace    string
	Payload      []byte
	CreatedAt    time.Time
}

func newCreateMutation(objectID string, objectType ObjectType, namespace string, entity interface{}) (*Mutation, error) {
	payload, err := json.Marshal(entity)
	if err != nil {
		return nil, errs.Wrap(err)
	}
	return &Mutation{
		ObjectID:     objectID,
		ObjectType:   objectType,
		MutationType: MutationCreate,
		Namespace:    namespace,
		Payload:      payload,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// TimestampProto renders a time as a wire timestamp carrying the full
// Unix epoch seconds.
func TimestampProto(t time.Time) *timestamp.Timestamp {
	return &timestamp.Timestamp{
		Seconds: t.Unix(),
		Nanos:   int32(t.Nanosecond()),
	}
}
