// Copyright (C) 2025 Tensorland, Inc.
// See LICENSE for copying information.

package pb

import (
	"testing"

	"github.com/golang/protobuf/proto"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
)

func TestUploadFrameOneof(t *testing.T) {
	frame := &UploadFileRequest{
		StreamFrame: &UploadFileRequest_Metadata{
			Metadata: &UploadFileMetadata{
				Metadata:     &FileMetadata{ParentId: "p", SrcPath: "a.bin", Checksum: "abc"},
				ArtifactName: "weights",
			},
		},
	}
	data, err := proto.Marshal(frame)
	require.NoError(t, err)

	decoded := &UploadFileRequest{}
	require.NoError(t, proto.Unmarshal(data, decoded))
	require.Nil(t, decoded.GetChunks())
	require.Equal(t, "weights", decoded.GetMetadata().GetArtifactName())
	require.Equal(t, "p", decoded.GetMetadata().GetMetadata().GetParentId())

	chunks := &UploadFileRequest{
		StreamFrame: &UploadFileRequest_Chunks{Chunks: []byte("AABB")},
	}
	data, err = proto.Marshal(chunks)
	require.NoError(t, err)
	decoded = &UploadFileRequest{}
	require.NoError(t, proto.Unmarshal(data, decoded))
	require.Equal(t, []byte("AABB"), decoded.GetChunks())
	require.Nil(t, decoded.GetMetadata())
}

func TestMetricsValueOneof(t *testing.T) {
	value := &MetricsValue{
		Step:          7,
		WallclockTime: 1700000000,
		Value:         &MetricsValue_FVal{FVal: 0.25},
	}
	data, err := proto.Marshal(value)
	require.NoError(t, err)

	decoded := &MetricsValue{}
	require.NoError(t, proto.Unmarshal(data, decoded))
	require.Equal(t, uint64(7), decoded.GetStep())
	require.Equal(t, uint64(1700000000), decoded.GetWallclockTime())
	require.InDelta(t, 0.25, decoded.GetFVal(), 1e-6)
}

func TestMetadataMapField(t *testing.T) {
	metadata := &Metadata{Metadata: map[string]string{"host": "h", "rank": "0"}}
	data, err := proto.Marshal(metadata)
	require.NoError(t, err)

	decoded := &Metadata{}
	require.NoError(t, proto.Unmarshal(data, decoded))
	require.Equal(t, metadata.Metadata, decoded.Metadata)
}

func TestFileDescriptorResolvesSymbols(t *testing.T) {
	// Server reflection resolves symbols through the global file registry,
	// so grpcurl-style tooling depends on the descriptor being registered.
	desc, err := protoregistry.GlobalFiles.FindDescriptorByName("modelbox.ModelStore")
	require.NoError(t, err)

	service, ok := desc.(protoreflect.ServiceDescriptor)
	require.True(t, ok)
	require.Equal(t, 18, service.Methods().Len())

	upload := service.Methods().ByName("UploadFile")
	require.NotNil(t, upload)
	require.True(t, upload.IsStreamingClient())
	require.EqualValues(t, "modelbox.UploadFileRequest", upload.Input().FullName())

	file, err := protoregistry.GlobalFiles.FindFileByPath("service.proto")
	require.NoError(t, err)
	require.EqualValues(t, "modelbox", file.Package())

	experiment, err := protoregistry.GlobalFiles.FindDescriptorByName("modelbox.Experiment")
	require.NoError(t, err)
	message, ok := experiment.(protoreflect.MessageDescriptor)
	require.True(t, ok)
	require.EqualValues(t, 20, message.Fields().ByName("created_at").Number())
}

func TestEnumWireValues(t *testing.T) {
	// Frozen on the wire; clients in other languages compile against the
	// same schema.
	require.EqualValues(t, 2, FileType_CHECKPOINT)
	require.EqualValues(t, 6, FileType_VIDEO)
	require.EqualValues(t, 1, MLFramework_PYTORCH)
	require.EqualValues(t, 1, ChangeEvent_OBJECT_CREATED)
}
