// Copyright (C) 2025 Tensorland, Inc.
// See LICENSE for copying information.

// Package pb contains the wire types of the modelbox.ModelStore service.
//
// The schema of record is service.proto in this directory; the Go types
// here are kept in protoc-gen-go layout with struct tags driving the
// codec. Field numbers and enum values are frozen: clients in other
// languages compile against the same schema.
package pb

import (
	proto "github.com/golang/protobuf/proto"
	timestamp "github.com/golang/protobuf/ptypes/timestamp"
)

// MLFramework enumerates the deep learning frameworks known to ModelBox.
// Clients may send values beyond this set; servers treat anything unknown
// as MLFramework_UNKNOWN.
type MLFramework int32

const (
	MLFramework_UNKNOWN MLFramework = 0
	MLFramework_PYTORCH MLFramework = 1
	MLFramework_KERAS   MLFramework = 2
)

var MLFramework_name = map[int32]string{
	0: "UNKNOWN",
	1: "PYTORCH",
	2: "KERAS",
}

var MLFramework_value = map[string]int32{
	"UNKNOWN": 0,
	"PYTORCH": 1,
	"KERAS":   2,
}

func (x MLFramework) String() string {
	return proto.EnumName(MLFramework_name, int32(x))
}

type FileType int32

const (
	FileType_UNDEFINED  FileType = 0
	FileType_MODEL      FileType = 1
	FileType_CHECKPOINT FileType = 2
	FileType_TEXT       FileType = 3
	FileType_IMAGE      FileType = 4
	FileType_AUDIO      FileType = 5
	FileType_VIDEO      FileType = 6
)

var FileType_name = map[int32]string{
	0: "UNDEFINED",
	1: "MODEL",
	2: "CHECKPOINT",
	3: "TEXT",
	4: "IMAGE",
	5: "AUDIO",
	6: "VIDEO",
}

var FileType_value = map[string]int32{
	"UNDEFINED":  0,
	"MODEL":      1,
	"CHECKPOINT": 2,
	"TEXT":       3,
	"IMAGE":      4,
	"AUDIO":      5,
	"VIDEO":      6,
}

func (x FileType) String() string {
	return proto.EnumName(FileType_name, int32(x))
}

type ChangeEvent int32

const (
	ChangeEvent_CHANGE_EVENT_UNDEFINED ChangeEvent = 0
	ChangeEvent_OBJECT_CREATED         ChangeEvent = 1
	ChangeEvent_OBJECT_UPDATED         ChangeEvent = 2
)

var ChangeEvent_name = map[int32]string{
	0: "CHANGE_EVENT_UNDEFINED",
	1: "OBJECT_CREATED",
	2: "OBJECT_UPDATED",
}

var ChangeEvent_value = map[string]int32{
	"CHANGE_EVENT_UNDEFINED": 0,
	"OBJECT_CREATED":         1,
	"OBJECT_UPDATED":         2,
}

func (x ChangeEvent) String() string {
	return proto.EnumName(ChangeEvent_name, int32(x))
}

// Experiment tracks a training run which produces model versions.
type Experiment struct {
	Id         string               `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name       string               `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Namespace  string               `protobuf:"bytes,3,opt,name=namespace,proto3" json:"namespace,omitempty"`
	Owner      string               `protobuf:"bytes,4,opt,name=owner,proto3" json:"owner,omitempty"`
	Framework  MLFramework          `protobuf:"varint,5,opt,name=framework,proto3,enum=modelbox.MLFramework" json:"framework,omitempty"`
	ExternalId string               `protobuf:"bytes,7,opt,name=external_id,json=externalId,proto3" json:"external_id,omitempty"`
	CreatedAt  *timestamp.Timestamp `protobuf:"bytes,20,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt  *timestamp.Timestamp `protobuf:"bytes,21,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
}

func (m *Experiment) Reset()         { *m = Experiment{} }
func (m *Experiment) String() string { return proto.CompactTextString(m) }
func (*Experiment) ProtoMessage()    {}

func (m *Experiment) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

func (m *Experiment) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *Experiment) GetNamespace() string {
	if m != nil {
		return m.Namespace
	}
	return ""
}

func (m *Experiment) GetOwner() string {
	if m != nil {
		return m.Owner
	}
	return ""
}

func (m *Experiment) GetFramework() MLFramework {
	if m != nil {
		return m.Framework
	}
	return MLFramework_UNKNOWN
}

func (m *Experiment) GetExternalId() string {
	if m != nil {
		return m.ExternalId
	}
	return ""
}

func (m *Experiment) GetCreatedAt() *timestamp.Timestamp {
	if m != nil {
		return m.CreatedAt
	}
	return nil
}

func (m *Experiment) GetUpdatedAt() *timestamp.Timestamp {
	if m != nil {
		return m.UpdatedAt
	}
	return nil
}

type CreateExperimentRequest struct {
	Name       string      `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Owner      string      `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	Namespace  string      `protobuf:"bytes,3,opt,name=namespace,proto3" json:"namespace,omitempty"`
	Framework  MLFramework `protobuf:"varint,4,opt,name=framework,proto3,enum=modelbox.MLFramework" json:"framework,omitempty"`
	Task       string      `protobuf:"bytes,5,opt,name=task,proto3" json:"task,omitempty"`
	ExternalId string      `protobuf:"bytes,7,opt,name=external_id,json=externalId,proto3" json:"external_id,omitempty"`
}

func (m *CreateExperimentRequest) Reset()         { *m = CreateExperimentRequest{} }
func (m *CreateExperimentRequest) String() string { return proto.CompactTextString(m) }
func (*CreateExperimentRequest) ProtoMessage()    {}

func (m *CreateExperimentRequest) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *CreateExperimentRequest) GetOwner() string {
	if m != nil {
		return m.Owner
	}
	return ""
}

func (m *CreateExperimentRequest) GetNamespace() string {
	if m != nil {
		return m.Namespace
	}
	return ""
}

func (m *CreateExperimentRequest) GetFramework() MLFramework {
	if m != nil {
		return m.Framework
	}
	return MLFramework_UNKNOWN
}

func (m *CreateExperimentRequest) GetTask() string {
	if m != nil {
		return m.Task
	}
	return ""
}

func (m *CreateExperimentRequest) GetExternalId() string {
	if m != nil {
		return m.ExternalId
	}
	return ""
}

type CreateExperimentResponse struct {
	ExperimentId     string               `protobuf:"bytes,1,opt,name=experiment_id,json=experimentId,proto3" json:"experiment_id,omitempty"`
	ExperimentExists bool                 `protobuf:"varint,2,opt,name=experiment_exists,json=experimentExists,proto3" json:"experiment_exists,omitempty"`
	CreatedAt        *timestamp.Timestamp `protobuf:"bytes,20,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt        *timestamp.Timestamp `protobuf:"bytes,21,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
}

func (m *CreateExperimentResponse) Reset()         { *m = CreateExperimentResponse{} }
func (m *CreateExperimentResponse) String() string { return proto.CompactTextString(m) }
func (*CreateExperimentResponse) ProtoMessage()    {}

func (m *CreateExperimentResponse) GetExperimentId() string {
	if m != nil {
		return m.ExperimentId
	}
	return ""
}

func (m *CreateExperimentResponse) GetExperimentExists() bool {
	if m != nil {
		return m.ExperimentExists
	}
	return false
}

func (m *CreateExperimentResponse) GetCreatedAt() *timestamp.Timestamp {
	if m != nil {
		return m.CreatedAt
	}
	return nil
}

func (m *CreateExperimentResponse) GetUpdatedAt() *timestamp.Timestamp {
	if m != nil {
		return m.UpdatedAt
	}
	return nil
}

type ListExperimentsRequest struct {
	Namespace string `protobuf:"bytes,1,opt,name=namespace,proto3" json:"namespace,omitempty"`
}

func (m *ListExperimentsRequest) Reset()         { *m = ListExperimentsRequest{} }
func (m *ListExperimentsRequest) String() string { return proto.CompactTextString(m) }
func (*ListExperimentsRequest) ProtoMessage()    {}

func (m *ListExperimentsRequest) GetNamespace() string {
	if m != nil {
		return m.Namespace
	}
	return ""
}

type ListExperimentsResponse struct {
	Experiments []*Experiment `protobuf:"bytes,1,rep,name=experiments,proto3" json:"experiments,omitempty"`
}

func (m *ListExperimentsResponse) Reset()         { *m = ListExperimentsResponse{} }
func (m *ListExperimentsResponse) String() string { return proto.CompactTextString(m) }
func (*ListExperimentsResponse) ProtoMessage()    {}

func (m *ListExperimentsResponse) GetExperiments() []*Experiment {
	if m != nil {
		return m.Experiments
	}
	return nil
}

type GetExperimentRequest struct {
	Id string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *GetExperimentRequest) Reset()         { *m = GetExperimentRequest{} }
func (m *GetExperimentRequest) String() string { return proto.CompactTextString(m) }
func (*GetExperimentRequest) ProtoMessage()    {}

func (m *GetExperimentRequest) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

type GetExperimentResponse struct {
	Experiment *Experiment `protobuf:"bytes,1,opt,name=experiment,proto3" json:"experiment,omitempty"`
}

func (m *GetExperimentResponse) Reset()         { *m = GetExperimentResponse{} }
func (m *GetExperimentResponse) String() string { return proto.CompactTextString(m) }
func (*GetExperimentResponse) ProtoMessage()    {}

func (m *GetExperimentResponse) GetExperiment() *Experiment {
	if m != nil {
		return m.Experiment
	}
	return nil
}

// Model contains metadata about a model which solves a particular use case.
type Model struct {
	Id          string               `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name        string               `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Owner       string               `protobuf:"bytes,3,opt,name=owner,proto3" json:"owner,omitempty"`
	Namespace   string               `protobuf:"bytes,4,opt,name=namespace,proto3" json:"namespace,omitempty"`
	Description string               `protobuf:"bytes,5,opt,name=description,proto3" json:"description,omitempty"`
	Task        string               `protobuf:"bytes,6,opt,name=task,proto3" json:"task,omitempty"`
	CreatedAt   *timestamp.Timestamp `protobuf:"bytes,20,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt   *timestamp.Timestamp `protobuf:"bytes,21,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
}

func (m *Model) Reset()         { *m = Model{} }
func (m *Model) String() string { return proto.CompactTextString(m) }
func (*Model) ProtoMessage()    {}

func (m *Model) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

func (m *Model) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *Model) GetOwner() string {
	if m != nil {
		return m.Owner
	}
	return ""
}

func (m *Model) GetNamespace() string {
	if m != nil {
		return m.Namespace
	}
	return ""
}

func (m *Model) GetDescription() string {
	if m != nil {
		return m.Description
	}
	return ""
}

func (m *Model) GetTask() string {
	if m != nil {
		return m.Task
	}
	return ""
}

func (m *Model) GetCreatedAt() *timestamp.Timestamp {
	if m != nil {
		return m.CreatedAt
	}
	return nil
}

func (m *Model) GetUpdatedAt() *timestamp.Timestamp {
	if m != nil {
		return m.UpdatedAt
	}
	return nil
}

type CreateModelRequest struct {
	Name        string `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Owner       string `protobuf:"bytes,3,opt,name=owner,proto3" json:"owner,omitempty"`
	Namespace   string `protobuf:"bytes,4,opt,name=namespace,proto3" json:"namespace,omitempty"`
	Task        string `protobuf:"bytes,5,opt,name=task,proto3" json:"task,omitempty"`
	Description string `protobuf:"bytes,6,opt,name=description,proto3" json:"description,omitempty"`
}

func (m *CreateModelRequest) Reset()         { *m = CreateModelRequest{} }
func (m *CreateModelRequest) String() string { return proto.CompactTextString(m) }
func (*CreateModelRequest) ProtoMessage()    {}

func (m *CreateModelRequest) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *CreateModelRequest) GetOwner() string {
	if m != nil {
		return m.Owner
	}
	return ""
}

func (m *CreateModelRequest) GetNamespace() string {
	if m != nil {
		return m.Namespace
	}
	return ""
}

func (m *CreateModelRequest) GetTask() string {
	if m != nil {
		return m.Task
	}
	return ""
}

func (m *CreateModelRequest) GetDescription() string {
	if m != nil {
		return m.Description
	}
	return ""
}

type CreateModelResponse struct {
	Id        string               `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Exists    bool                 `protobuf:"varint,2,opt,name=exists,proto3" json:"exists,omitempty"`
	CreatedAt *timestamp.Timestamp `protobuf:"bytes,20,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt *timestamp.Timestamp `protobuf:"bytes,21,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
}

func (m *CreateModelResponse) Reset()         { *m = CreateModelResponse{} }
func (m *CreateModelResponse) String() string { return proto.CompactTextString(m) }
func (*CreateModelResponse) ProtoMessage()    {}

func (m *CreateModelResponse) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

func (m *CreateModelResponse) GetExists() bool {
	if m != nil {
		return m.Exists
	}
	return false
}

func (m *CreateModelResponse) GetCreatedAt() *timestamp.Timestamp {
	if m != nil {
		return m.CreatedAt
	}
	return nil
}

func (m *CreateModelResponse) GetUpdatedAt() *timestamp.Timestamp {
	if m != nil {
		return m.UpdatedAt
	}
	return nil
}

type ListModelsRequest struct {
	Namespace string `protobuf:"bytes,1,opt,name=namespace,proto3" json:"namespace,omitempty"`
}

func (m *ListModelsRequest) Reset()         { *m = ListModelsRequest{} }
func (m *ListModelsRequest) String() string { return proto.CompactTextString(m) }
func (*ListModelsRequest) ProtoMessage()    {}

func (m *ListModelsRequest) GetNamespace() string {
	if m != nil {
		return m.Namespace
	}
	return ""
}

type ListModelsResponse struct {
	Models []*Model `protobuf:"bytes,1,rep,name=models,proto3" json:"models,omitempty"`
}

func (m *ListModelsResponse) Reset()         { *m = ListModelsResponse{} }
func (m *ListModelsResponse) String() string { return proto.CompactTextString(m) }
func (*ListModelsResponse) ProtoMessage()    {}

func (m *ListModelsResponse) GetModels() []*Model {
	if m != nil {
		return m.Models
	}
	return nil
}

// ModelVersion contains a trained model binary and metadata related to the
// model. Model versions are always linked to a model.
type ModelVersion struct {
	Id          string               `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ModelId     string               `protobuf:"bytes,2,opt,name=model_id,json=modelId,proto3" json:"model_id,omitempty"`
	Name        string               `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Version     string               `protobuf:"bytes,4,opt,name=version,proto3" json:"version,omitempty"`
	Description string               `protobuf:"bytes,5,opt,name=description,proto3" json:"description,omitempty"`
	Framework   MLFramework          `protobuf:"varint,8,opt,name=framework,proto3,enum=modelbox.MLFramework" json:"framework,omitempty"`
	UniqueTags  []string             `protobuf:"bytes,9,rep,name=unique_tags,json=uniqueTags,proto3" json:"unique_tags,omitempty"`
	CreatedAt   *timestamp.Timestamp `protobuf:"bytes,20,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt   *timestamp.Timestamp `protobuf:"bytes,21,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
}

func (m *ModelVersion) Reset()         { *m = ModelVersion{} }
func (m *ModelVersion) String() string { return proto.CompactTextString(m) }
func (*ModelVersion) ProtoMessage()    {}

func (m *ModelVersion) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

func (m *ModelVersion) GetModelId() string {
	if m != nil {
		return m.ModelId
	}
	return ""
}

func (m *ModelVersion) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *ModelVersion) GetVersion() string {
	if m != nil {
		return m.Version
	}
	return ""
}

func (m *ModelVersion) GetDescription() string {
	if m != nil {
		return m.Description
	}
	return ""
}

func (m *ModelVersion) GetFramework() MLFramework {
	if m != nil {
		return m.Framework
	}
	return MLFramework_UNKNOWN
}

func (m *ModelVersion) GetUniqueTags() []string {
	if m != nil {
		return m.UniqueTags
	}
	return nil
}

func (m *ModelVersion) GetCreatedAt() *timestamp.Timestamp {
	if m != nil {
		return m.CreatedAt
	}
	return nil
}

func (m *ModelVersion) GetUpdatedAt() *timestamp.Timestamp {
	if m != nil {
		return m.UpdatedAt
	}
	return nil
}

type CreateModelVersionRequest struct {
	Model       string      `protobuf:"bytes,1,opt,name=model,proto3" json:"model,omitempty"`
	Name        string      `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Version     string      `protobuf:"bytes,3,opt,name=version,proto3" json:"version,omitempty"`
	Description string      `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
	Namespace   string      `protobuf:"bytes,5,opt,name=namespace,proto3" json:"namespace,omitempty"`
	Framework   MLFramework `protobuf:"varint,8,opt,name=framework,proto3,enum=modelbox.MLFramework" json:"framework,omitempty"`
	UniqueTags  []string    `protobuf:"bytes,9,rep,name=unique_tags,json=uniqueTags,proto3" json:"unique_tags,omitempty"`
}

func (m *CreateModelVersionRequest) Reset()         { *m = CreateModelVersionRequest{} }
func (m *CreateModelVersionRequest) String() string { return proto.CompactTextString(m) }
func (*CreateModelVersionRequest) ProtoMessage()    {}

func (m *CreateModelVersionRequest) GetModel() string {
	if m != nil {
		return m.Model
	}
	return ""
}

func (m *CreateModelVersionRequest) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *CreateModelVersionRequest) GetVersion() string {
	if m != nil {
		return m.Version
	}
	return ""
}

func (m *CreateModelVersionRequest) GetDescription() string {
	if m != nil {
		return m.Description
	}
	return ""
}

func (m *CreateModelVersionRequest) GetNamespace() string {
	if m != nil {
		return m.Namespace
	}
	return ""
}

func (m *CreateModelVersionRequest) GetFramework() MLFramework {
	if m != nil {
		return m.Framework
	}
	return MLFramework_UNKNOWN
}

func (m *CreateModelVersionRequest) GetUniqueTags() []string {
	if m != nil {
		return m.UniqueTags
	}
	return nil
}

type CreateModelVersionResponse struct {
	ModelVersion string               `protobuf:"bytes,1,opt,name=model_version,json=modelVersion,proto3" json:"model_version,omitempty"`
	Exists       bool                 `protobuf:"varint,2,opt,name=exists,proto3" json:"exists,omitempty"`
	CreatedAt    *timestamp.Timestamp `protobuf:"bytes,20,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt    *timestamp.Timestamp `protobuf:"bytes,21,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
}

func (m *CreateModelVersionResponse) Reset()         { *m = CreateModelVersionResponse{} }
func (m *CreateModelVersionResponse) String() string { return proto.CompactTextString(m) }
func (*CreateModelVersionResponse) ProtoMessage()    {}

func (m *CreateModelVersionResponse) GetModelVersion() string {
	if m != nil {
		return m.ModelVersion
	}
	return ""
}

func (m *CreateModelVersionResponse) GetExists() bool {
	if m != nil {
		return m.Exists
	}
	return false
}

func (m *CreateModelVersionResponse) GetCreatedAt() *timestamp.Timestamp {
	if m != nil {
		return m.CreatedAt
	}
	return nil
}

func (m *CreateModelVersionResponse) GetUpdatedAt() *timestamp.Timestamp {
	if m != nil {
		return m.UpdatedAt
	}
	return nil
}

type ListModelVersionsRequest struct {
	Model string `protobuf:"bytes,1,opt,name=model,proto3" json:"model,omitempty"`
}

func (m *ListModelVersionsRequest) Reset()         { *m = ListModelVersionsRequest{} }
func (m *ListModelVersionsRequest) String() string { return proto.CompactTextString(m) }
func (*ListModelVersionsRequest) ProtoMessage()    {}

func (m *ListModelVersionsRequest) GetModel() string {
	if m != nil {
		return m.Model
	}
	return ""
}

type ListModelVersionsResponse struct {
	ModelVersions []*ModelVersion `protobuf:"bytes,1,rep,name=model_versions,json=modelVersions,proto3" json:"model_versions,omitempty"`
}

func (m *ListModelVersionsResponse) Reset()         { *m = ListModelVersionsResponse{} }
func (m *ListModelVersionsResponse) String() string { return proto.CompactTextString(m) }
func (*ListModelVersionsResponse) ProtoMessage()    {}

func (m *ListModelVersionsResponse) GetModelVersions() []*ModelVersion {
	if m != nil {
		return m.ModelVersions
	}
	return nil
}

type Metadata struct {
	Metadata map[string]string `protobuf:"bytes,1,rep,name=metadata,proto3" json:"metadata,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
}

func (m *Metadata) Reset()         { *m = Metadata{} }
func (m *Metadata) String() string { return proto.CompactTextString(m) }
func (*Metadata) ProtoMessage()    {}

func (m *Metadata) GetMetadata() map[string]string {
	if m != nil {
		return m.Metadata
	}
	return nil
}

type UpdateMetadataRequest struct {
	ParentId string    `protobuf:"bytes,1,opt,name=parent_id,json=parentId,proto3" json:"parent_id,omitempty"`
	Metadata *Metadata `protobuf:"bytes,2,opt,name=metadata,proto3" json:"metadata,omitempty"`
}

func (m *UpdateMetadataRequest) Reset()         { *m = UpdateMetadataRequest{} }
func (m *UpdateMetadataRequest) String() string { return proto.CompactTextString(m) }
func (*UpdateMetadataRequest) ProtoMessage()    {}

func (m *UpdateMetadataRequest) GetParentId() string {
	if m != nil {
		return m.ParentId
	}
	return ""
}

func (m *UpdateMetadataRequest) GetMetadata() *Metadata {
	if m != nil {
		return m.Metadata
	}
	return nil
}

type UpdateMetadataResponse struct {
}

func (m *UpdateMetadataResponse) Reset()         { *m = UpdateMetadataResponse{} }
func (m *UpdateMetadataResponse) String() string { return proto.CompactTextString(m) }
func (*UpdateMetadataResponse) ProtoMessage()    {}

type ListMetadataRequest struct {
	ParentId string `protobuf:"bytes,1,opt,name=parent_id,json=parentId,proto3" json:"parent_id,omitempty"`
}

func (m *ListMetadataRequest) Reset()         { *m = ListMetadataRequest{} }
func (m *ListMetadataRequest) String() string { return proto.CompactTextString(m) }
func (*ListMetadataRequest) ProtoMessage()    {}

func (m *ListMetadataRequest) GetParentId() string {
	if m != nil {
		return m.ParentId
	}
	return ""
}

type ListMetadataResponse struct {
	Metadata *Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
}

func (m *ListMetadataResponse) Reset()         { *m = ListMetadataResponse{} }
func (m *ListMetadataResponse) String() string { return proto.CompactTextString(m) }
func (*ListMetadataResponse) ProtoMessage()    {}

func (m *ListMetadataResponse) GetMetadata() *Metadata {
	if m != nil {
		return m.Metadata
	}
	return nil
}

// FileMetadata describes a file associated with an experiment, model or
// model version, either tracked in place or uploaded through ModelBox.
type FileMetadata struct {
	Id         string               `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ParentId   string               `protobuf:"bytes,2,opt,name=parent_id,json=parentId,proto3" json:"parent_id,omitempty"`
	FileType   FileType             `protobuf:"varint,3,opt,name=file_type,json=fileType,proto3,enum=modelbox.FileType" json:"file_type,omitempty"`
	Checksum   string               `protobuf:"bytes,4,opt,name=checksum,proto3" json:"checksum,omitempty"`
	SrcPath    string               `protobuf:"bytes,5,opt,name=src_path,json=srcPath,proto3" json:"src_path,omitempty"`
	UploadPath string               `protobuf:"bytes,6,opt,name=upload_path,json=uploadPath,proto3" json:"upload_path,omitempty"`
	CreatedAt  *timestamp.Timestamp `protobuf:"bytes,20,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt  *timestamp.Timestamp `protobuf:"bytes,21,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
}

func (m *FileMetadata) Reset()         { *m = FileMetadata{} }
func (m *FileMetadata) String() string { return proto.CompactTextString(m) }
func (*FileMetadata) ProtoMessage()    {}

func (m *FileMetadata) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

func (m *FileMetadata) GetParentId() string {
	if m != nil {
		return m.ParentId
	}
	return ""
}

func (m *FileMetadata) GetFileType() FileType {
	if m != nil {
		return m.FileType
	}
	return FileType_UNDEFINED
}

func (m *FileMetadata) GetChecksum() string {
	if m != nil {
		return m.Checksum
	}
	return ""
}

func (m *FileMetadata) GetSrcPath() string {
	if m != nil {
		return m.SrcPath
	}
	return ""
}

func (m *FileMetadata) GetUploadPath() string {
	if m != nil {
		return m.UploadPath
	}
	return ""
}

func (m *FileMetadata) GetCreatedAt() *timestamp.Timestamp {
	if m != nil {
		return m.CreatedAt
	}
	return nil
}

func (m *FileMetadata) GetUpdatedAt() *timestamp.Timestamp {
	if m != nil {
		return m.UpdatedAt
	}
	return nil
}

// UploadFileMetadata is the first frame of an upload stream.
type UploadFileMetadata struct {
	Metadata     *FileMetadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	ArtifactName string        `protobuf:"bytes,2,opt,name=artifact_name,json=artifactName,proto3" json:"artifact_name,omitempty"`
	ObjectId     string        `protobuf:"bytes,3,opt,name=object_id,json=objectId,proto3" json:"object_id,omitempty"`
}

func (m *UploadFileMetadata) Reset()         { *m = UploadFileMetadata{} }
func (m *UploadFileMetadata) String() string { return proto.CompactTextString(m) }
func (*UploadFileMetadata) ProtoMessage()    {}

func (m *UploadFileMetadata) GetMetadata() *FileMetadata {
	if m != nil {
		return m.Metadata
	}
	return nil
}

func (m *UploadFileMetadata) GetArtifactName() string {
	if m != nil {
		return m.ArtifactName
	}
	return ""
}

func (m *UploadFileMetadata) GetObjectId() string {
	if m != nil {
		return m.ObjectId
	}
	return ""
}

type UploadFileRequest struct {
	// Types that are valid to be assigned to StreamFrame:
	//	*UploadFileRequest_Metadata
	//	*UploadFileRequest_Chunks
	StreamFrame isUploadFileRequest_StreamFrame `protobuf_oneof:"stream_frame"`
}

func (m *UploadFileRequest) Reset()         { *m = UploadFileRequest{} }
func (m *UploadFileRequest) String() string { return proto.CompactTextString(m) }
func (*UploadFileRequest) ProtoMessage()    {}

type isUploadFileRequest_StreamFrame interface {
	isUploadFileRequest_StreamFrame()
}

type UploadFileRequest_Metadata struct {
	Metadata *UploadFileMetadata `protobuf:"bytes,1,opt,name=metadata,proto3,oneof"`
}

type UploadFileRequest_Chunks struct {
	Chunks []byte `protobuf:"bytes,2,opt,name=chunks,proto3,oneof"`
}

func (*UploadFileRequest_Metadata) isUploadFileRequest_StreamFrame() {}

func (*UploadFileRequest_Chunks) isUploadFileRequest_StreamFrame() {}

func (m *UploadFileRequest) GetStreamFrame() isUploadFileRequest_StreamFrame {
	if m != nil {
		return m.StreamFrame
	}
	return nil
}

func (m *UploadFileRequest) GetMetadata() *UploadFileMetadata {
	if x, ok := m.GetStreamFrame().(*UploadFileRequest_Metadata); ok {
		return x.Metadata
	}
	return nil
}

func (m *UploadFileRequest) GetChunks() []byte {
	if x, ok := m.GetStreamFrame().(*UploadFileRequest_Chunks); ok {
		return x.Chunks
	}
	return nil
}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*UploadFileRequest) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*UploadFileRequest_Metadata)(nil),
		(*UploadFileRequest_Chunks)(nil),
	}
}

type UploadFileResponse struct {
	FileId     string `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	ArtifactId string `protobuf:"bytes,2,opt,name=artifact_id,json=artifactId,proto3" json:"artifact_id,omitempty"`
}

func (m *UploadFileResponse) Reset()         { *m = UploadFileResponse{} }
func (m *UploadFileResponse) String() string { return proto.CompactTextString(m) }
func (*UploadFileResponse) ProtoMessage()    {}

func (m *UploadFileResponse) GetFileId() string {
	if m != nil {
		return m.FileId
	}
	return ""
}

func (m *UploadFileResponse) GetArtifactId() string {
	if m != nil {
		return m.ArtifactId
	}
	return ""
}

type DownloadFileRequest struct {
	FileId string `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
}

func (m *DownloadFileRequest) Reset()         { *m = DownloadFileRequest{} }
func (m *DownloadFileRequest) String() string { return proto.CompactTextString(m) }
func (*DownloadFileRequest) ProtoMessage()    {}

func (m *DownloadFileRequest) GetFileId() string {
	if m != nil {
		return m.FileId
	}
	return ""
}

type DownloadFileResponse struct {
	// Types that are valid to be assigned to StreamFrame:
	//	*DownloadFileResponse_Metadata
	//	*DownloadFileResponse_Chunks
	StreamFrame isDownloadFileResponse_StreamFrame `protobuf_oneof:"stream_frame"`
}

func (m *DownloadFileResponse) Reset()         { *m = DownloadFileResponse{} }
func (m *DownloadFileResponse) String() string { return proto.CompactTextString(m) }
func (*DownloadFileResponse) ProtoMessage()    {}

type isDownloadFileResponse_StreamFrame interface {
	isDownloadFileResponse_StreamFrame()
}

type DownloadFileResponse_Metadata struct {
	Metadata *FileMetadata `protobuf:"bytes,1,opt,name=metadata,proto3,oneof"`
}

type DownloadFileResponse_Chunks struct {
	Chunks []byte `protobuf:"bytes,2,opt,name=chunks,proto3,oneof"`
}

func (*DownloadFileResponse_Metadata) isDownloadFileResponse_StreamFrame() {}

func (*DownloadFileResponse_Chunks) isDownloadFileResponse_StreamFrame() {}

func (m *DownloadFileResponse) GetStreamFrame() isDownloadFileResponse_StreamFrame {
	if m != nil {
		return m.StreamFrame
	}
	return nil
}

func (m *DownloadFileResponse) GetMetadata() *FileMetadata {
	if x, ok := m.GetStreamFrame().(*DownloadFileResponse_Metadata); ok {
		return x.Metadata
	}
	return nil
}

func (m *DownloadFileResponse) GetChunks() []byte {
	if x, ok := m.GetStreamFrame().(*DownloadFileResponse_Chunks); ok {
		return x.Chunks
	}
	return nil
}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*DownloadFileResponse) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*DownloadFileResponse_Metadata)(nil),
		(*DownloadFileResponse_Chunks)(nil),
	}
}

type TrackArtifactsRequest struct {
	Files []*FileMetadata `protobuf:"bytes,1,rep,name=files,proto3" json:"files,omitempty"`
	Name  string          `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
}

func (m *TrackArtifactsRequest) Reset()         { *m = TrackArtifactsRequest{} }
func (m *TrackArtifactsRequest) String() string { return proto.CompactTextString(m) }
func (*TrackArtifactsRequest) ProtoMessage()    {}

func (m *TrackArtifactsRequest) GetFiles() []*FileMetadata {
	if m != nil {
		return m.Files
	}
	return nil
}

func (m *TrackArtifactsRequest) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

type TrackArtifactsResponse struct {
	Id string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *TrackArtifactsResponse) Reset()         { *m = TrackArtifactsResponse{} }
func (m *TrackArtifactsResponse) String() string { return proto.CompactTextString(m) }
func (*TrackArtifactsResponse) ProtoMessage()    {}

func (m *TrackArtifactsResponse) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

// Artifact is a named group of files tracked under a common parent.
type Artifact struct {
	Id       string          `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name     string          `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	ObjectId string          `protobuf:"bytes,3,opt,name=object_id,json=objectId,proto3" json:"object_id,omitempty"`
	Files    []*FileMetadata `protobuf:"bytes,4,rep,name=files,proto3" json:"files,omitempty"`
}

func (m *Artifact) Reset()         { *m = Artifact{} }
func (m *Artifact) String() string { return proto.CompactTextString(m) }
func (*Artifact) ProtoMessage()    {}

func (m *Artifact) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

func (m *Artifact) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *Artifact) GetObjectId() string {
	if m != nil {
		return m.ObjectId
	}
	return ""
}

func (m *Artifact) GetFiles() []*FileMetadata {
	if m != nil {
		return m.Files
	}
	return nil
}

type ListArtifactsRequest struct {
	ObjectId string `protobuf:"bytes,1,opt,name=object_id,json=objectId,proto3" json:"object_id,omitempty"`
}

func (m *ListArtifactsRequest) Reset()         { *m = ListArtifactsRequest{} }
func (m *ListArtifactsRequest) String() string { return proto.CompactTextString(m) }
func (*ListArtifactsRequest) ProtoMessage()    {}

func (m *ListArtifactsRequest) GetObjectId() string {
	if m != nil {
		return m.ObjectId
	}
	return ""
}

type ListArtifactsResponse struct {
	Artifacts []*Artifact `protobuf:"bytes,1,rep,name=artifacts,proto3" json:"artifacts,omitempty"`
}

func (m *ListArtifactsResponse) Reset()         { *m = ListArtifactsResponse{} }
func (m *ListArtifactsResponse) String() string { return proto.CompactTextString(m) }
func (*ListArtifactsResponse) ProtoMessage()    {}

func (m *ListArtifactsResponse) GetArtifacts() []*Artifact {
	if m != nil {
		return m.Artifacts
	}
	return nil
}

// MetricsValue is a metric value at a given point of time.
type MetricsValue struct {
	Step          uint64 `protobuf:"varint,1,opt,name=step,proto3" json:"step,omitempty"`
	WallclockTime uint64 `protobuf:"varint,2,opt,name=wallclock_time,json=wallclockTime,proto3" json:"wallclock_time,omitempty"`
	// Types that are valid to be assigned to Value:
	//	*MetricsValue_FVal
	//	*MetricsValue_STensor
	//	*MetricsValue_BTensor
	Value isMetricsValue_Value `protobuf_oneof:"value"`
}

func (m *MetricsValue) Reset()         { *m = MetricsValue{} }
func (m *MetricsValue) String() string { return proto.CompactTextString(m) }
func (*MetricsValue) ProtoMessage()    {}

func (m *MetricsValue) GetStep() uint64 {
	if m != nil {
		return m.Step
	}
	return 0
}

func (m *MetricsValue) GetWallclockTime() uint64 {
	if m != nil {
		return m.WallclockTime
	}
	return 0
}

type isMetricsValue_Value interface {
	isMetricsValue_Value()
}

type MetricsValue_FVal struct {
	FVal float32 `protobuf:"fixed32,5,opt,name=f_val,json=fVal,proto3,oneof"`
}

type MetricsValue_STensor struct {
	STensor string `protobuf:"bytes,6,opt,name=s_tensor,json=sTensor,proto3,oneof"`
}

type MetricsValue_BTensor struct {
	BTensor []byte `protobuf:"bytes,7,opt,name=b_tensor,json=bTensor,proto3,oneof"`
}

func (*MetricsValue_FVal) isMetricsValue_Value() {}

func (*MetricsValue_STensor) isMetricsValue_Value() {}

func (*MetricsValue_BTensor) isMetricsValue_Value() {}

func (m *MetricsValue) GetValue() isMetricsValue_Value {
	if m != nil {
		return m.Value
	}
	return nil
}

func (m *MetricsValue) GetFVal() float32 {
	if x, ok := m.GetValue().(*MetricsValue_FVal); ok {
		return x.FVal
	}
	return 0
}

func (m *MetricsValue) GetSTensor() string {
	if x, ok := m.GetValue().(*MetricsValue_STensor); ok {
		return x.STensor
	}
	return ""
}

func (m *MetricsValue) GetBTensor() []byte {
	if x, ok := m.GetValue().(*MetricsValue_BTensor); ok {
		return x.BTensor
	}
	return nil
}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*MetricsValue) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*MetricsValue_FVal)(nil),
		(*MetricsValue_STensor)(nil),
		(*MetricsValue_BTensor)(nil),
	}
}

// Metrics contain the metric values for a given key.
type Metrics struct {
	Key    string          `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Values []*MetricsValue `protobuf:"bytes,2,rep,name=values,proto3" json:"values,omitempty"`
}

func (m *Metrics) Reset()         { *m = Metrics{} }
func (m *Metrics) String() string { return proto.CompactTextString(m) }
func (*Metrics) ProtoMessage()    {}

func (m *Metrics) GetKey() string {
	if m != nil {
		return m.Key
	}
	return ""
}

func (m *Metrics) GetValues() []*MetricsValue {
	if m != nil {
		return m.Values
	}
	return nil
}

type LogMetricsRequest struct {
	ParentId string        `protobuf:"bytes,1,opt,name=parent_id,json=parentId,proto3" json:"parent_id,omitempty"`
	Key      string        `protobuf:"bytes,2,opt,name=key,proto3" json:"key,omitempty"`
	Value    *MetricsValue `protobuf:"bytes,3,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *LogMetricsRequest) Reset()         { *m = LogMetricsRequest{} }
func (m *LogMetricsRequest) String() string { return proto.CompactTextString(m) }
func (*LogMetricsRequest) ProtoMessage()    {}

func (m *LogMetricsRequest) GetParentId() string {
	if m != nil {
		return m.ParentId
	}
	return ""
}

func (m *LogMetricsRequest) GetKey() string {
	if m != nil {
		return m.Key
	}
	return ""
}

func (m *LogMetricsRequest) GetValue() *MetricsValue {
	if m != nil {
		return m.Value
	}
	return nil
}

type LogMetricsResponse struct {
}

func (m *LogMetricsResponse) Reset()         { *m = LogMetricsResponse{} }
func (m *LogMetricsResponse) String() string { return proto.CompactTextString(m) }
func (*LogMetricsResponse) ProtoMessage()    {}

type GetMetricsRequest struct {
	ParentId string `protobuf:"bytes,1,opt,name=parent_id,json=parentId,proto3" json:"parent_id,omitempty"`
}

func (m *GetMetricsRequest) Reset()         { *m = GetMetricsRequest{} }
func (m *GetMetricsRequest) String() string { return proto.CompactTextString(m) }
func (*GetMetricsRequest) ProtoMessage()    {}

func (m *GetMetricsRequest) GetParentId() string {
	if m != nil {
		return m.ParentId
	}
	return ""
}

type GetMetricsResponse struct {
	Metrics map[string]*Metrics `protobuf:"bytes,1,rep,name=metrics,proto3" json:"metrics,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
}

func (m *GetMetricsResponse) Reset()         { *m = GetMetricsResponse{} }
func (m *GetMetricsResponse) String() string { return proto.CompactTextString(m) }
func (*GetMetricsResponse) ProtoMessage()    {}

func (m *GetMetricsResponse) GetMetrics() map[string]*Metrics {
	if m != nil {
		return m.Metrics
	}
	return nil
}

type EventSource struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
}

func (m *EventSource) Reset()         { *m = EventSource{} }
func (m *EventSource) String() string { return proto.CompactTextString(m) }
func (*EventSource) ProtoMessage()    {}

func (m *EventSource) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

// Event is a timestamped labeled record attached to an object.
type Event struct {
	Name          string               `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Source        *EventSource         `protobuf:"bytes,3,opt,name=source,proto3" json:"source,omitempty"`
	WallclockTime *timestamp.Timestamp `protobuf:"bytes,4,opt,name=wallclock_time,json=wallclockTime,proto3" json:"wallclock_time,omitempty"`
	Metadata      *Metadata            `protobuf:"bytes,5,opt,name=metadata,proto3" json:"metadata,omitempty"`
}

func (m *Event) Reset()         { *m = Event{} }
func (m *Event) String() string { return proto.CompactTextString(m) }
func (*Event) ProtoMessage()    {}

func (m *Event) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *Event) GetSource() *EventSource {
	if m != nil {
		return m.Source
	}
	return nil
}

func (m *Event) GetWallclockTime() *timestamp.Timestamp {
	if m != nil {
		return m.WallclockTime
	}
	return nil
}

func (m *Event) GetMetadata() *Metadata {
	if m != nil {
		return m.Metadata
	}
	return nil
}

type LogEventRequest struct {
	ParentId string `protobuf:"bytes,1,opt,name=parent_id,json=parentId,proto3" json:"parent_id,omitempty"`
	Event    *Event `protobuf:"bytes,2,opt,name=event,proto3" json:"event,omitempty"`
}

func (m *LogEventRequest) Reset()         { *m = LogEventRequest{} }
func (m *LogEventRequest) String() string { return proto.CompactTextString(m) }
func (*LogEventRequest) ProtoMessage()    {}

func (m *LogEventRequest) GetParentId() string {
	if m != nil {
		return m.ParentId
	}
	return ""
}

func (m *LogEventRequest) GetEvent() *Event {
	if m != nil {
		return m.Event
	}
	return nil
}

type LogEventResponse struct {
	CreatedAt *timestamp.Timestamp `protobuf:"bytes,1,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
}

func (m *LogEventResponse) Reset()         { *m = LogEventResponse{} }
func (m *LogEventResponse) String() string { return proto.CompactTextString(m) }
func (*LogEventResponse) ProtoMessage()    {}

func (m *LogEventResponse) GetCreatedAt() *timestamp.Timestamp {
	if m != nil {
		return m.CreatedAt
	}
	return nil
}

type ListEventsRequest struct {
	ParentId string               `protobuf:"bytes,1,opt,name=parent_id,json=parentId,proto3" json:"parent_id,omitempty"`
	Since    *timestamp.Timestamp `protobuf:"bytes,2,opt,name=since,proto3" json:"since,omitempty"`
}

func (m *ListEventsRequest) Reset()         { *m = ListEventsRequest{} }
func (m *ListEventsRequest) String() string { return proto.CompactTextString(m) }
func (*ListEventsRequest) ProtoMessage()    {}

func (m *ListEventsRequest) GetParentId() string {
	if m != nil {
		return m.ParentId
	}
	return ""
}

func (m *ListEventsRequest) GetSince() *timestamp.Timestamp {
	if m != nil {
		return m.Since
	}
	return nil
}

type ListEventsResponse struct {
	Events []*Event `protobuf:"bytes,1,rep,name=events,proto3" json:"events,omitempty"`
}

func (m *ListEventsResponse) Reset()         { *m = ListEventsResponse{} }
func (m *ListEventsResponse) String() string { return proto.CompactTextString(m) }
func (*ListEventsResponse) ProtoMessage()    {}

func (m *ListEventsResponse) GetEvents() []*Event {
	if m != nil {
		return m.Events
	}
	return nil
}

type WatchNamespaceRequest struct {
	Namespace string `protobuf:"bytes,1,opt,name=namespace,proto3" json:"namespace,omitempty"`
	Since     uint64 `protobuf:"varint,2,opt,name=since,proto3" json:"since,omitempty"`
}

func (m *WatchNamespaceRequest) Reset()         { *m = WatchNamespaceRequest{} }
func (m *WatchNamespaceRequest) String() string { return proto.CompactTextString(m) }
func (*WatchNamespaceRequest) ProtoMessage()    {}

func (m *WatchNamespaceRequest) GetNamespace() string {
	if m != nil {
		return m.Namespace
	}
	return ""
}

func (m *WatchNamespaceRequest) GetSince() uint64 {
	if m != nil {
		return m.Since
	}
	return 0
}

type WatchNamespaceResponse struct {
	Event ChangeEvent `protobuf:"varint,1,opt,name=event,proto3,enum=modelbox.ChangeEvent" json:"event,omitempty"`
	// Types that are valid to be assigned to Payload:
	//	*WatchNamespaceResponse_Experiment
	//	*WatchNamespaceResponse_Model
	//	*WatchNamespaceResponse_ModelVersion
	Payload isWatchNamespaceResponse_Payload `protobuf_oneof:"payload"`
}

func (m *WatchNamespaceResponse) Reset()         { *m = WatchNamespaceResponse{} }
func (m *WatchNamespaceResponse) String() string { return proto.CompactTextString(m) }
func (*WatchNamespaceResponse) ProtoMessage()    {}

func (m *WatchNamespaceResponse) GetEvent() ChangeEvent {
	if m != nil {
		return m.Event
	}
	return ChangeEvent_CHANGE_EVENT_UNDEFINED
}

type isWatchNamespaceResponse_Payload interface {
	isWatchNamespaceResponse_Payload()
}

type WatchNamespaceResponse_Experiment struct {
	Experiment *Experiment `protobuf:"bytes,2,opt,name=experiment,proto3,oneof"`
}

type WatchNamespaceResponse_Model struct {
	Model *Model `protobuf:"bytes,3,opt,name=model,proto3,oneof"`
}

type WatchNamespaceResponse_ModelVersion struct {
	ModelVersion *ModelVersion `protobuf:"bytes,4,opt,name=model_version,json=modelVersion,proto3,oneof"`
}

func (*WatchNamespaceResponse_Experiment) isWatchNamespaceResponse_Payload() {}

func (*WatchNamespaceResponse_Model) isWatchNamespaceResponse_Payload() {}

func (*WatchNamespaceResponse_ModelVersion) isWatchNamespaceResponse_Payload() {}

func (m *WatchNamespaceResponse) GetPayload() isWatchNamespaceResponse_Payload {
	if m != nil {
		return m.Payload
	}
	return nil
}

func (m *WatchNamespaceResponse) GetExperiment() *Experiment {
	if x, ok := m.GetPayload().(*WatchNamespaceResponse_Experiment); ok {
		return x.Experiment
	}
	return nil
}

func (m *WatchNamespaceResponse) GetModel() *Model {
	if x, ok := m.GetPayload().(*WatchNamespaceResponse_Model); ok {
		return x.Model
	}
	return nil
}

func (m *WatchNamespaceResponse) GetModelVersion() *ModelVersion {
	if x, ok := m.GetPayload().(*WatchNamespaceResponse_ModelVersion); ok {
		return x.ModelVersion
	}
	return nil
}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*WatchNamespaceResponse) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*WatchNamespaceResponse_Experiment)(nil),
		(*WatchNamespaceResponse_Model)(nil),
		(*WatchNamespaceResponse_ModelVersion)(nil),
	}
}

func init() {
	proto.RegisterEnum("modelbox.MLFramework", MLFramework_name, MLFramework_value)
	proto.RegisterEnum("modelbox.FileType", FileType_name, FileType_value)
	proto.RegisterEnum("modelbox.ChangeEvent", ChangeEvent_name, ChangeEvent_value)
	proto.RegisterType((*Experiment)(nil), "modelbox.Experiment")
	proto.RegisterType((*CreateExperimentRequest)(nil), "modelbox.CreateExperimentRequest")
	proto.RegisterType((*CreateExperimentResponse)(nil), "modelbox.CreateExperimentResponse")
	proto.RegisterType((*ListExperimentsRequest)(nil), "modelbox.ListExperimentsRequest")
	proto.RegisterType((*ListExperimentsResponse)(nil), "modelbox.ListExperimentsResponse")
	proto.RegisterType((*GetExperimentRequest)(nil), "modelbox.GetExperimentRequest")
	proto.RegisterType((*GetExperimentResponse)(nil), "modelbox.GetExperimentResponse")
	proto.RegisterType((*Model)(nil), "modelbox.Model")
	proto.RegisterType((*CreateModelRequest)(nil), "modelbox.CreateModelRequest")
	proto.RegisterType((*CreateModelResponse)(nil), "modelbox.CreateModelResponse")
	proto.RegisterType((*ListModelsRequest)(nil), "modelbox.ListModelsRequest")
	proto.RegisterType((*ListModelsResponse)(nil), "modelbox.ListModelsResponse")
	proto.RegisterType((*ModelVersion)(nil), "modelbox.ModelVersion")
	proto.RegisterType((*CreateModelVersionRequest)(nil), "modelbox.CreateModelVersionRequest")
	proto.RegisterType((*CreateModelVersionResponse)(nil), "modelbox.CreateModelVersionResponse")
	proto.RegisterType((*ListModelVersionsRequest)(nil), "modelbox.ListModelVersionsRequest")
	proto.RegisterType((*ListModelVersionsResponse)(nil), "modelbox.ListModelVersionsResponse")
	proto.RegisterType((*Metadata)(nil), "modelbox.Metadata")
	proto.RegisterMapType((map[string]string)(nil), "modelbox.Metadata.MetadataEntry")
	proto.RegisterType((*UpdateMetadataRequest)(nil), "modelbox.UpdateMetadataRequest")
	proto.RegisterType((*UpdateMetadataResponse)(nil), "modelbox.UpdateMetadataResponse")
	proto.RegisterType((*ListMetadataRequest)(nil), "modelbox.ListMetadataRequest")
	proto.RegisterType((*ListMetadataResponse)(nil), "modelbox.ListMetadataResponse")
	proto.RegisterType((*FileMetadata)(nil), "modelbox.FileMetadata")
	proto.RegisterType((*UploadFileMetadata)(nil), "modelbox.UploadFileMetadata")
	proto.RegisterType((*UploadFileRequest)(nil), "modelbox.UploadFileRequest")
	proto.RegisterType((*UploadFileResponse)(nil), "modelbox.UploadFileResponse")
	proto.RegisterType((*DownloadFileRequest)(nil), "modelbox.DownloadFileRequest")
	proto.RegisterType((*DownloadFileResponse)(nil), "modelbox.DownloadFileResponse")
	proto.RegisterType((*TrackArtifactsRequest)(nil), "modelbox.TrackArtifactsRequest")
	proto.RegisterType((*TrackArtifactsResponse)(nil), "modelbox.TrackArtifactsResponse")
	proto.RegisterType((*Artifact)(nil), "modelbox.Artifact")
	proto.RegisterType((*ListArtifactsRequest)(nil), "modelbox.ListArtifactsRequest")
	proto.RegisterType((*ListArtifactsResponse)(nil), "modelbox.ListArtifactsResponse")
	proto.RegisterType((*MetricsValue)(nil), "modelbox.MetricsValue")
	proto.RegisterType((*Metrics)(nil), "modelbox.Metrics")
	proto.RegisterType((*LogMetricsRequest)(nil), "modelbox.LogMetricsRequest")
	proto.RegisterType((*LogMetricsResponse)(nil), "modelbox.LogMetricsResponse")
	proto.RegisterType((*GetMetricsRequest)(nil), "modelbox.GetMetricsRequest")
	proto.RegisterType((*GetMetricsResponse)(nil), "modelbox.GetMetricsResponse")
	proto.RegisterMapType((map[string]*Metrics)(nil), "modelbox.GetMetricsResponse.MetricsEntry")
	proto.RegisterType((*EventSource)(nil), "modelbox.EventSource")
	proto.RegisterType((*Event)(nil), "modelbox.Event")
	proto.RegisterType((*LogEventRequest)(nil), "modelbox.LogEventRequest")
	proto.RegisterType((*LogEventResponse)(nil), "modelbox.LogEventResponse")
	proto.RegisterType((*ListEventsRequest)(nil), "modelbox.ListEventsRequest")
	proto.RegisterType((*ListEventsResponse)(nil), "modelbox.ListEventsResponse")
	proto.RegisterType((*WatchNamespaceRequest)(nil), "modelbox.WatchNamespaceRequest")
	proto.RegisterType((*WatchNamespaceResponse)(nil), "modelbox.WatchNamespaceResponse")
}

func init() {
	proto.RegisterFile("service.proto", fileDescriptorService)
}

var fileDescriptorService = []byte{
	// 2074 bytes of a gzipped FileDescriptorProto
	0x1f, 0x8b, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x03, 0xcd, 0x18,
	0xcb, 0x72, 0xdb, 0xd6, 0x35, 0xe0, 0x9b, 0x87, 0x12, 0x4d, 0x5d, 0x4b,
	0x32, 0x8d, 0xb8, 0x91, 0x0c, 0xc7, 0xb1, 0xeb, 0xa4, 0x94, 0x2a, 0x67,
	0x3c, 0x49, 0x5a, 0x2f, 0x28, 0x0a, 0xb6, 0x19, 0x5b, 0x94, 0x42, 0x53,
	0x4a, 0x9c, 0xe9, 0x0c, 0x07, 0x04, 0x21, 0x89, 0x15, 0x49, 0xb0, 0x00,
	0x28, 0x5b, 0x1f, 0x90, 0x4d, 0xbb, 0xeb, 0x2f, 0x74, 0xd3, 0x65, 0x67,
	0xba, 0xeb, 0x4c, 0x17, 0x5d, 0x77, 0xd1, 0x55, 0x7f, 0x20, 0x5f, 0xd0,
	0x4d, 0xf7, 0xb9, 0xb8, 0x0f, 0xe0, 0x5e, 0x00, 0xa4, 0xe9, 0xa4, 0x33,
	0xea, 0x8a, 0xc4, 0x39, 0xe7, 0x9e, 0x7b, 0xde, 0x8f, 0x0b, 0xcb, 0xae,
	0xe5, 0x5c, 0x0c, 0x4c, 0xab, 0x36, 0x71, 0x6c, 0xcf, 0x46, 0x85, 0x91,
	0xdd, 0xb7, 0x86, 0x3d, 0xfb, 0x8d, 0xba, 0x71, 0x6a, 0xdb, 0xa7, 0x43,
	0x6b, 0x8b, 0xc0, 0x7b, 0xd3, 0x93, 0x2d, 0x6f, 0x30, 0xb2, 0x5c, 0xcf,
	0x18, 0x4d, 0x28, 0xa9, 0xf6, 0x97, 0x14, 0x80, 0xfe, 0x66, 0x62, 0x39,
	0x18, 0x3e, 0xf6, 0x50, 0x19, 0x52, 0x83, 0x7e, 0x55, 0xd9, 0x54, 0xee,
	0x17, 0xdb, 0xf8, 0x1f, 0x42, 0x90, 0x19, 0x1b, 0x23, 0xab, 0x9a, 0x22,
	0x10, 0xf2, 0x1f, 0xdd, 0x82, 0xa2, 0xff, 0xeb, 0x4e, 0x0c, 0xd3, 0xaa,
	0xa6, 0x09, 0x22, 0x04, 0xa0, 0x55, 0xc8, 0xda, 0xaf, 0xc7, 0x96, 0x53,
	0xcd, 0x10, 0x0c, 0xfd, 0x40, 0x0f, 0xa1, 0x78, 0xe2, 0x60, 0x9a, 0xd7,
	0xb6, 0x73, 0x5e, 0xcd, 0x62, 0x4c, 0x79, 0x67, 0xad, 0xc6, 0xa5, 0xac,
	0xed, 0xbf, 0x78, 0xc2, 0x91, 0xed, 0x90, 0x0e, 0x6d, 0x40, 0xc9, 0x7a,
	0xe3, 0x59, 0xce, 0xd8, 0x18, 0x76, 0xb1, 0x54, 0x79, 0xc2, 0x10, 0x38,
	0xa8, 0xd9, 0x47, 0x9f, 0x03, 0x98, 0x8e, 0x65, 0x78, 0x56, 0xbf, 0x6b,
	0x78, 0xd5, 0x55, 0x8c, 0x2f, 0xed, 0xa8, 0x35, 0xaa, 0x72, 0x8d, 0xab,
	0x5c, 0xeb, 0x70, 0x95, 0xdb, 0x45, 0x46, 0x5d, 0xf7, 0xfc, 0xa3, 0xd3,
	0x49, 0x9f, 0x1f, 0x5d, 0x7b, 0xfb, 0x51, 0x46, 0x5d, 0xf7, 0xb4, 0x7f,
	0x2a, 0x70, 0xa3, 0x41, 0x18, 0x85, 0x86, 0x6b, 0x5b, 0xbf, 0x9b, 0x62,
	0xca, 0xc0, 0x5e, 0x8a, 0x60, 0xaf, 0xc0, 0x22, 0x29, 0xd1, 0x22, 0xf3,
	0xad, 0x28, 0xd9, 0x2b, 0xb3, 0xa0, 0xbd, 0xf0, 0xe5, 0x9e, 0xe1, 0x52,
	0xfb, 0xe2, 0xcb, 0xfd, 0xff, 0x6f, 0xb5, 0xa1, 0xf6, 0xbd, 0x02, 0xd5,
	0xb8, 0x36, 0xee, 0xc4, 0x1e, 0xbb, 0x16, 0xba, 0x03, 0xcb, 0x56, 0x00,
	0xed, 0x06, 0x91, 0xb1, 0x14, 0x02, 0xb1, 0x17, 0x3e, 0x86, 0x15, 0x81,
	0xc8, 0x7a, 0x33, 0x70, 0x3d, 0x97, 0xe8, 0x5a, 0x68, 0x57, 0x42, 0x84,
	0x4e, 0xe0, 0x57, 0xe4, 0xb2, 0x47, 0xb0, 0xfe, 0x02, 0x5f, 0x1f, 0x6a,
	0xe8, 0x72, 0x87, 0x49, 0x6e, 0x50, 0x22, 0x6e, 0xd0, 0xbe, 0x82, 0x1b,
	0xb1, 0x73, 0xcc, 0x34, 0x8f, 0x7c, 0xc3, 0x06, 0x60, 0x7c, 0x34, 0x8d,
	0xc5, 0x59, 0x0d, 0x7d, 0x24, 0x58, 0x53, 0x24, 0xd4, 0x3e, 0x82, 0xd5,
	0xa7, 0x96, 0x17, 0x8f, 0x9c, 0x48, 0xe6, 0x69, 0xfb, 0xb0, 0x16, 0xa1,
	0x63, 0x17, 0x7f, 0x0a, 0x10, 0xf2, 0x23, 0x07, 0x66, 0xdd, 0x2b, 0xd0,
	0x69, 0x7f, 0x48, 0x41, 0x76, 0xdf, 0xa7, 0x59, 0x28, 0xc5, 0x83, 0x90,
	0x4d, 0xcf, 0x0c, 0xd9, 0x4c, 0x34, 0x64, 0x37, 0xa1, 0xd4, 0xb7, 0x5c,
	0xd3, 0x19, 0x4c, 0xbc, 0x81, 0x3d, 0x66, 0x41, 0x28, 0x82, 0x82, 0xf8,
	0xcc, 0x09, 0xf1, 0x79, 0x35, 0xf1, 0xf0, 0x47, 0x05, 0x10, 0x0d, 0x7a,
	0x62, 0x93, 0x68, 0xf6, 0xfe, 0x54, 0x53, 0x24, 0x25, 0x62, 0xc4, 0x3c,
	0xb9, 0x98, 0x79, 0xb4, 0xbf, 0x2a, 0x70, 0x5d, 0x12, 0x8a, 0x39, 0x3c,
	0xea, 0xb0, 0x75, 0xc8, 0x49, 0x49, 0xc6, 0xbe, 0xae, 0xc8, 0x94, 0xbf,
	0x84, 0x15, 0x3f, 0x45, 0x88, 0xc8, 0x0b, 0x66, 0xd5, 0x63, 0x40, 0xe2,
	0x11, 0xa6, 0xe6, 0x3d, 0xc8, 0x91, 0x20, 0xe6, 0xb9, 0x74, 0x4d, 0xa8,
	0x77, 0xc4, 0x1e, 0x0c, 0xad, 0xfd, 0x3b, 0x05, 0x4b, 0x04, 0x72, 0x6c,
	0x39, 0xae, 0x1f, 0x57, 0x51, 0x03, 0xdd, 0x04, 0xda, 0x00, 0xfd, 0x82,
	0x45, 0x5d, 0x99, 0x27, 0xdf, 0xcd, 0x30, 0xd8, 0xd3, 0x82, 0x87, 0xab,
	0x90, 0xbf, 0xa0, 0x9c, 0x98, 0x27, 0xf9, 0xe7, 0x02, 0x21, 0x2d, 0xd5,
	0xe9, 0xc2, 0xe2, 0x7d, 0x6d, 0x3a, 0x1e, 0x60, 0x4b, 0x75, 0x3d, 0xe3,
	0xd4, 0xad, 0x16, 0xb1, 0xba, 0xb8, 0x26, 0x53, 0x50, 0x07, 0x43, 0xae,
	0xc8, 0x93, 0xff, 0x55, 0xe0, 0xa6, 0x10, 0x7f, 0xcc, 0xba, 0xdc, 0xa5,
	0x38, 0x0f, 0x88, 0x5e, 0xcc, 0xce, 0xf4, 0x23, 0x31, 0x63, 0x04, 0x7b,
	0xa6, 0xe7, 0xda, 0x33, 0x13, 0xb7, 0xa7, 0x14, 0x38, 0xd9, 0xb9, 0x5d,
	0xf1, 0x7f, 0x65, 0x6d, 0xed, 0x5f, 0x0a, 0xa8, 0x49, 0x7a, 0x87, 0x3d,
	0x90, 0x46, 0x13, 0x57, 0x8a, 0xf5, 0xc0, 0x91, 0x18, 0x82, 0xff, 0x5f,
	0x39, 0xb9, 0x0d, 0xd5, 0x20, 0xc1, 0x98, 0x84, 0xee, 0x5c, 0x3f, 0x6a,
	0xdf, 0xc2, 0xcd, 0x84, 0x13, 0xcc, 0x02, 0x8f, 0xa1, 0x2c, 0x59, 0x80,
	0x67, 0xe8, 0x7a, 0x24, 0x43, 0xb9, 0xe5, 0x96, 0x45, 0xd3, 0xb8, 0xda,
	0x77, 0x0a, 0x14, 0xf6, 0x2d, 0xcf, 0xc0, 0xd2, 0x19, 0xe8, 0xd7, 0x38,
	0x37, 0xd9, 0x7f, 0xc6, 0x65, 0x53, 0xe0, 0xc2, 0x30, 0xc1, 0x1f, 0x7d,
	0xec, 0x39, 0x97, 0xed, 0xe0, 0x84, 0xfa, 0x2b, 0x58, 0x96, 0x50, 0xa8,
	0x02, 0xe9, 0x73, 0xeb, 0x92, 0xe9, 0xe2, 0xff, 0xf5, 0xf5, 0xbb, 0x30,
	0x86, 0x53, 0x1e, 0x92, 0xf4, 0xe3, 0x8b, 0xd4, 0x67, 0x8a, 0xd6, 0x87,
	0xb5, 0x23, 0x62, 0x22, 0xce, 0x82, 0x9b, 0xe4, 0x7d, 0x28, 0x4e, 0x0c,
	0x47, 0x9a, 0x70, 0x0a, 0x14, 0x80, 0x2b, 0x46, 0x4d, 0x10, 0x38, 0x45,
	0x9c, 0x80, 0xe2, 0x02, 0x87, 0x22, 0x6a, 0x55, 0x58, 0x8f, 0xde, 0x42,
	0xcd, 0xa8, 0xed, 0xc0, 0x75, 0x62, 0xe3, 0x77, 0xb8, 0x5d, 0x7b, 0x02,
	0xab, 0xf2, 0x19, 0xe6, 0x92, 0x9a, 0x64, 0xc6, 0xb7, 0x4b, 0xf5, 0x37,
	0x5c, 0x33, 0x9f, 0x0c, 0x86, 0x81, 0x50, 0xb1, 0x9a, 0x29, 0x49, 0x91,
	0x8a, 0xd8, 0x60, 0x0b, 0xe7, 0x1d, 0x3e, 0xdc, 0xf5, 0x2e, 0x27, 0xb4,
	0x74, 0x96, 0xc5, 0xeb, 0x7c, 0xbe, 0x1d, 0x8c, 0x69, 0x17, 0x4e, 0xd8,
	0x3f, 0xa4, 0x42, 0xc1, 0x3c, 0xb3, 0xcc, 0x73, 0x77, 0x3a, 0x62, 0x59,
	0x1e, 0x7c, 0xfb, 0xd5, 0xd9, 0x75, 0xcc, 0xee, 0xc4, 0xf0, 0xce, 0x58,
	0x86, 0xe7, 0xf1, 0xf7, 0x21, 0xfe, 0x24, 0xa9, 0x3a, 0x19, 0xda, 0x46,
	0x9f, 0x62, 0x69, 0x8f, 0x04, 0x0a, 0x22, 0x04, 0x57, 0x93, 0x4e, 0xbf,
	0xc7, 0xd3, 0xc2, 0x11, 0x11, 0x42, 0x32, 0xe1, 0x4e, 0xcc, 0x07, 0xeb,
	0xb2, 0x51, 0xe2, 0x7e, 0xf0, 0x8b, 0x89, 0xe1, 0x78, 0x83, 0x13, 0xc3,
	0xf4, 0xba, 0x42, 0xe1, 0x5c, 0xe2, 0xc0, 0x96, 0x5f, 0x40, 0xb1, 0x2f,
	0xec, 0xde, 0x6f, 0x2d, 0x93, 0xf8, 0x82, 0x96, 0xd0, 0x02, 0x05, 0xe0,
	0x88, 0xb8, 0x84, 0x95, 0x50, 0x16, 0x1e, 0x43, 0x5f, 0xc4, 0x44, 0xb9,
	0x15, 0x8a, 0x12, 0x17, 0xfd, 0xd9, 0x7b, 0x82, 0x48, 0x55, 0xc8, 0x99,
	0x67, 0xd3, 0xf1, 0x39, 0x2d, 0x5d, 0x4b, 0x18, 0xc7, 0xbe, 0x77, 0xcb,
	0xb0, 0xe4, 0x7a, 0xd8, 0x80, 0xa3, 0x2e, 0xa9, 0xa6, 0x5a, 0x4b, 0x34,
	0x43, 0x10, 0x8a, 0x37, 0x20, 0x4f, 0x82, 0x23, 0x08, 0xa7, 0x9c, 0xff,
	0x89, 0xa3, 0x06, 0x7b, 0x33, 0xd0, 0x35, 0x08, 0x2a, 0xe0, 0x20, 0xac,
	0x4a, 0x0d, 0xae, 0xef, 0xe1, 0x71, 0x2a, 0xaa, 0xcc, 0x2c, 0x86, 0xda,
	0x05, 0xac, 0xca, 0xf4, 0xc1, 0x44, 0xbc, 0xa0, 0x23, 0x7e, 0xa4, 0xde,
	0xaf, 0x60, 0xad, 0xe3, 0x18, 0xe6, 0x79, 0x9d, 0x89, 0x1e, 0xd4, 0xd2,
	0x4f, 0x20, 0xeb, 0x8b, 0x96, 0x50, 0x0f, 0x25, 0xf7, 0x53, 0xa2, 0xa4,
	0x5e, 0xa9, 0xdd, 0x87, 0xf5, 0x28, 0xeb, 0xe4, 0xa9, 0x0f, 0xfb, 0xbd,
	0xc0, 0x89, 0x16, 0x1a, 0xe1, 0xe7, 0x05, 0x51, 0x28, 0x78, 0x66, 0x01,
	0xc1, 0xb5, 0x87, 0xb4, 0x08, 0xc5, 0xd4, 0x97, 0xae, 0x50, 0x22, 0x71,
	0xda, 0x84, 0xb5, 0xc8, 0x21, 0xa6, 0xd8, 0x36, 0x14, 0x79, 0x0c, 0x70,
	0xc3, 0x09, 0xc5, 0x84, 0xd3, 0xb7, 0x43, 0x22, 0xed, 0x4f, 0x0a, 0x1e,
	0xf8, 0x2c, 0xcf, 0x19, 0x98, 0xee, 0xb1, 0x5f, 0xcd, 0x7d, 0x7d, 0x5d,
	0xcf, 0x9a, 0x90, 0x3b, 0x33, 0x6d, 0xf2, 0x1f, 0xdd, 0x85, 0xf2, 0x6b,
	0x63, 0x38, 0x34, 0x87, 0xb6, 0x79, 0xde, 0xf5, 0x5f, 0x39, 0x88, 0x35,
	0x32, 0xed, 0xe5, 0x00, 0xea, 0xe7, 0x36, 0x5a, 0xc3, 0x9a, 0x77, 0x71,
	0x4f, 0x20, 0xa5, 0x27, 0x85, 0x9d, 0x9e, 0x39, 0xc1, 0x3c, 0xb1, 0x2a,
	0x05, 0xb7, 0xeb, 0x59, 0x63, 0xd7, 0x76, 0x68, 0xd9, 0xc1, 0x98, 0xbc,
	0xdb, 0x21, 0x00, 0x1f, 0xd9, 0xe3, 0xc8, 0x3c, 0x8b, 0x95, 0x7c, 0x8f,
	0x22, 0x77, 0xf3, 0xac, 0xdf, 0x68, 0xcf, 0x21, 0xcf, 0x84, 0x4c, 0xe8,
	0x4a, 0x35, 0xc8, 0x11, 0x2a, 0x3f, 0xd8, 0xa2, 0xad, 0x53, 0xd0, 0xac,
	0xcd, 0xa8, 0xb4, 0x09, 0x9e, 0xaa, 0xed, 0x53, 0x86, 0x5a, 0xa8, 0x4f,
	0xb1, 0x3b, 0x53, 0xe1, 0x9d, 0x9f, 0xf0, 0x4e, 0x98, 0x8e, 0xe6, 0x84,
	0x74, 0x25, 0x13, 0x7f, 0x15, 0x0f, 0xe5, 0xc2, 0x8d, 0xac, 0x67, 0x6d,
	0xc3, 0x0a, 0xde, 0x42, 0xdf, 0x41, 0x0e, 0xed, 0xcf, 0xb8, 0x58, 0x8a,
	0x47, 0x98, 0xd7, 0x1b, 0x90, 0x1f, 0x51, 0x10, 0xf3, 0xf9, 0xcf, 0x43,
	0x71, 0xe2, 0xe4, 0x5c, 0x42, 0xda, 0xff, 0xf9, 0x49, 0x75, 0x3f, 0x88,
	0x83, 0x59, 0xdd, 0xff, 0x9e, 0xd8, 0xfd, 0x4b, 0x3b, 0x2b, 0x31, 0x9d,
	0xc5, 0x81, 0xe0, 0x36, 0x94, 0xf4, 0x0b, 0x2c, 0xf5, 0x4b, 0x7b, 0xea,
	0xd0, 0xad, 0x2d, 0xfa, 0x76, 0xa3, 0xfd, 0x5d, 0x81, 0x2c, 0xa1, 0x49,
	0xcc, 0xb1, 0x5f, 0x40, 0xce, 0x25, 0x67, 0x99, 0x89, 0x85, 0x61, 0x54,
	0x60, 0xdc, 0x66, 0x44, 0xa8, 0x1e, 0x0b, 0xd1, 0xcc, 0x5b, 0xdb, 0x50,
	0x24, 0x7c, 0xc5, 0xbe, 0x9f, 0x5d, 0xa0, 0xef, 0x1f, 0xc1, 0x35, 0xec,
	0x55, 0x22, 0xcc, 0x42, 0x51, 0x74, 0x17, 0xb2, 0x96, 0x4f, 0xcc, 0xec,
	0x77, 0x2d, 0xa2, 0x50, 0x9b, 0x62, 0xb5, 0x7d, 0xa8, 0x84, 0x6c, 0x99,
	0x87, 0xe5, 0xde, 0xac, 0xbc, 0x43, 0x6f, 0xd6, 0x7a, 0x74, 0x87, 0x24,
	0xfc, 0x16, 0x8b, 0xf6, 0x6d, 0xc8, 0xba, 0x83, 0xb1, 0xc9, 0xfd, 0x3c,
	0xef, 0x1e, 0x4a, 0xc8, 0x97, 0x4e, 0x7e, 0x47, 0xb8, 0x74, 0x12, 0x8d,
	0x12, 0x96, 0x4e, 0xaa, 0x1d, 0x43, 0xe3, 0xec, 0x5e, 0xfb, 0xda, 0xf0,
	0xcc, 0xb3, 0x16, 0x5f, 0x46, 0x16, 0x5a, 0x75, 0xfd, 0x69, 0x34, 0x94,
	0x33, 0xc3, 0x65, 0xf9, 0x8f, 0x02, 0xeb, 0x51, 0x6e, 0x4c, 0xa0, 0x8f,
	0xb9, 0x03, 0x94, 0xe8, 0x7a, 0xd3, 0x38, 0x33, 0xc6, 0xa7, 0x96, 0xe8,
	0x06, 0xf4, 0x48, 0x7a, 0x0a, 0x4a, 0xcd, 0x7e, 0x0a, 0xc2, 0x05, 0x4b,
	0xa0, 0xf4, 0xb3, 0x84, 0xee, 0x00, 0xe9, 0xa8, 0x97, 0xc9, 0x1c, 0x8f,
	0xa9, 0xd9, 0x7a, 0xf7, 0x38, 0xba, 0xfb, 0x64, 0x62, 0xa5, 0x44, 0x18,
	0xf5, 0xf1, 0x39, 0x69, 0x2b, 0xda, 0x2d, 0x42, 0x7e, 0x62, 0x5c, 0xfa,
	0xfd, 0xfa, 0xc1, 0x0e, 0x94, 0x84, 0xfd, 0x0c, 0x95, 0x20, 0x7f, 0xd4,
	0x7a, 0xde, 0x3a, 0xf8, 0xba, 0x55, 0x79, 0xcf, 0xff, 0x38, 0x7c, 0xd5,
	0x39, 0x68, 0x37, 0x9e, 0x55, 0x14, 0x54, 0x84, 0xec, 0x73, 0xbd, 0x5d,
	0x7f, 0x59, 0x49, 0x3d, 0xe8, 0x42, 0x81, 0xcf, 0x96, 0x68, 0x19, 0x8a,
	0x47, 0xad, 0x3d, 0xfd, 0x49, 0xb3, 0xa5, 0xef, 0xe1, 0x23, 0x98, 0x6a,
	0xff, 0x60, 0x4f, 0x7f, 0x81, 0x0f, 0x94, 0x01, 0x1a, 0xcf, 0xf4, 0xc6,
	0xf3, 0xc3, 0x83, 0x66, 0xab, 0x53, 0x49, 0xa1, 0x02, 0x64, 0x3a, 0xfa,
	0x37, 0x9d, 0x4a, 0xda, 0x27, 0x6a, 0xee, 0xd7, 0x9f, 0xea, 0x95, 0x8c,
	0xff, 0xb7, 0x7e, 0xb4, 0xd7, 0x3c, 0xa8, 0x64, 0xfd, 0xbf, 0xc7, 0xcd,
	0x3d, 0xfd, 0xa0, 0x92, 0x7b, 0xf0, 0x15, 0x94, 0x04, 0xab, 0xe2, 0xa9,
	0x75, 0xbd, 0xf1, 0xac, 0xde, 0x7a, 0xaa, 0x77, 0xf5, 0x63, 0xbd, 0xd5,
	0xe9, 0x8a, 0x17, 0x22, 0x28, 0x1f, 0xec, 0x7e, 0xa9, 0x37, 0x3a, 0xdd,
	0x46, 0x5b, 0xaf, 0x77, 0x30, 0x4c, 0x11, 0x60, 0x47, 0x87, 0x7b, 0x04,
	0x96, 0xda, 0xf9, 0x47, 0x09, 0x80, 0xd8, 0xe4, 0xa5, 0x67, 0x3b, 0x16,
	0xfa, 0x12, 0xdf, 0x10, 0xae, 0x96, 0x48, 0x98, 0xca, 0xe2, 0xcf, 0x4f,
	0xea, 0xcf, 0x66, 0x60, 0x59, 0x68, 0x3c, 0x05, 0x08, 0x9f, 0x4d, 0xd0,
	0xfb, 0x21, 0x71, 0xec, 0xfd, 0x45, 0xbd, 0x95, 0x8c, 0x64, 0x8c, 0xba,
	0xd2, 0xe3, 0x17, 0x5f, 0x61, 0xef, 0x24, 0xde, 0x2e, 0xbf, 0x02, 0xa8,
	0x1f, 0xce, 0x27, 0x62, 0x17, 0xfc, 0x46, 0x78, 0x13, 0xe2, 0x6b, 0x20,
	0xd2, 0x12, 0x64, 0x8a, 0x2c, 0xa7, 0xea, 0x9d, 0xb9, 0x34, 0x8c, 0xfb,
	0x2b, 0xa8, 0x44, 0x1f, 0xac, 0xd1, 0xed, 0xa8, 0x5c, 0xb1, 0x07, 0x56,
	0x55, 0x9b, 0x47, 0xc2, 0x58, 0x1f, 0xe3, 0x72, 0x29, 0xbf, 0xf7, 0xa2,
	0x4d, 0x59, 0xa4, 0xf8, 0x13, 0xb2, 0x7a, 0x7b, 0x0e, 0x05, 0xe3, 0x7b,
	0x08, 0xcb, 0xd2, 0x63, 0x2e, 0xfa, 0x40, 0xea, 0x7e, 0x71, 0x61, 0x37,
	0x66, 0xe2, 0x19, 0xc7, 0x26, 0x40, 0x38, 0x8b, 0x8b, 0xc1, 0x10, 0x5b,
	0x0e, 0xd4, 0x5b, 0xc9, 0x48, 0xca, 0xe8, 0xbe, 0x82, 0x0e, 0x60, 0x49,
	0x1c, 0xab, 0x91, 0x10, 0x86, 0x09, 0xe3, 0xb9, 0xfa, 0xc1, 0x2c, 0x34,
	0x65, 0xb8, 0xad, 0xa0, 0x97, 0x50, 0x96, 0x57, 0x60, 0xb4, 0x21, 0x8a,
	0x90, 0xb0, 0x82, 0xab, 0x9b, 0xb3, 0x09, 0x98, 0xc2, 0xb8, 0xf7, 0x8b,
	0x9b, 0xb0, 0x28, 0x65, 0xc2, 0x56, 0x2d, 0x4a, 0x99, 0xb8, 0x40, 0x63,
	0x19, 0xe5, 0xc1, 0x5b, 0x94, 0x31, 0x71, 0xda, 0x17, 0x65, 0x9c, 0x31,
	0xb3, 0x63, 0x37, 0x4b, 0x33, 0x2f, 0x8a, 0x48, 0x11, 0x63, 0xb9, 0x31,
	0x13, 0x2f, 0xe4, 0x7c, 0x30, 0x95, 0x49, 0x39, 0x1f, 0x9d, 0x0e, 0xa5,
	0x9c, 0x8f, 0x0d, 0x72, 0x3e, 0xa3, 0x70, 0xcc, 0x12, 0x19, 0xc5, 0xc6,
	0x3b, 0x91, 0x51, 0xc2, 0x20, 0x57, 0x87, 0x02, 0x6f, 0xfd, 0xe8, 0xa6,
	0x74, 0xa5, 0x38, 0x65, 0xa8, 0x6a, 0x12, 0x4a, 0x2e, 0x64, 0xb4, 0x15,
	0x47, 0x0b, 0x99, 0x34, 0x04, 0x44, 0x0b, 0x59, 0xa4, 0x7b, 0x1f, 0x41,
	0x59, 0x6e, 0xa3, 0xa2, 0x13, 0x13, 0xdb, 0xb5, 0xe8, 0xc4, 0xe4, 0x0e,
	0xbc, 0xad, 0xec, 0xde, 0xfb, 0xf6, 0xee, 0xe9, 0xc0, 0x3b, 0x9b, 0xf6,
	0x6a, 0xa6, 0x3d, 0xda, 0xa2, 0x83, 0xff, 0xd0, 0x18, 0xf7, 0xb7, 0xf8,
	0xd1, 0xad, 0xc9, 0xf9, 0xe9, 0xd6, 0xa4, 0xd7, 0xcb, 0x91, 0x71, 0xe3,
	0xe1, 0x0f, 0x05, 0xd3, 0xd6, 0xd8, 0x7f, 0x1d, 0x00, 0x00,
}
