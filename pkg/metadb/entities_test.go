// Copyright (C) 2025 Tensorland, Inc.
// See LICENSE for copying information.

package metadb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tensorland/modelbox/pkg/pb"
)

func TestExperimentTimestampsAreEpoch(t *testing.T) {
	experiment := NewExperiment("gpt2", "a@x", "ns1", "e1", pb.MLFramework_PYTORCH)
	wire := experiment.ToProto()

	// Full Unix epoch seconds, not second-of-minute.
	require.Equal(t, experiment.CreatedAt.Unix(), wire.GetCreatedAt().GetSeconds())
	require.Greater(t, wire.GetCreatedAt().GetSeconds(), int64(1_000_000_000))
	require.Equal(t, int32(experiment.CreatedAt.Nanosecond()), wire.GetCreatedAt().GetNanos())
}

func TestExperimentIdentity(t *testing.T) {
	a := NewExperiment("gpt2", "a@x", "ns1", "e1", pb.MLFramework_PYTORCH)
	b := NewExperiment("gpt2", "a@x", "ns1", "other-external", pb.MLFramework_KERAS)
	c := NewExperiment("gpt2", "a@x", "ns2", "e1", pb.MLFramework_PYTORCH)

	// external_id and framework do not participate in the identity.
	require.Equal(t, a.ID, b.ID)
	require.NotEqual(t, a.ID, c.ID)
}

func TestModelVersionIdentity(t *testing.T) {
	a := NewModelVersion("model-1", "v1", "1.0", "", "ns1", pb.MLFramework_PYTORCH, nil)
	b := NewModelVersion("model-1", "renamed", "1.0", "desc", "ns1", pb.MLFramework_KERAS, []string{"x"})
	c := NewModelVersion("model-1", "v1", "2.0", "", "ns1", pb.MLFramework_PYTORCH, nil)

	require.Equal(t, a.ID, b.ID)
	require.NotEqual(t, a.ID, c.ID)
	require.Empty(t, a.ExperimentID)
}

func TestFileTypeStrings(t *testing.T) {
	require.Equal(t, "model", FileTypeString(pb.FileType_MODEL))
	require.Equal(t, "checkpoint", FileTypeString(pb.FileType_CHECKPOINT))
	require.Equal(t, "undefined", FileTypeString(pb.FileType_UNDEFINED))
	require.Equal(t, "undefined", FileTypeString(pb.FileType(42)))

	for _, fileType := range []pb.FileType{
		pb.FileType_UNDEFINED, pb.FileType_MODEL, pb.FileType_CHECKPOINT,
		pb.FileType_TEXT, pb.FileType_IMAGE, pb.FileType_AUDIO, pb.FileType_VIDEO,
	} {
		require.Equal(t, fileType, FileTypeFromString(FileTypeString(fileType)))
	}
}

func TestNewFileDerivation(t *testing.T) {
	fm := &pb.FileMetadata{
		ParentId:  "p",
		SrcPath:   "a.bin",
		Checksum:  "abc",
		FileType:  pb.FileType_MODEL,
		CreatedAt: TimestampProto(time.Unix(1700000000, 5)),
		UpdatedAt: TimestampProto(time.Unix(1700000001, 6)),
	}
	file, err := NewFile(fm, "weights")
	require.NoError(t, err)

	require.Equal(t, "model", file.FileType)
	require.Equal(t, "abc", file.Checksum())
	require.Equal(t, `{"checksum":"abc"}`, file.Metadata)

	// Same logical file converges on the same row.
	again, err := NewFile(fm, "weights")
	require.NoError(t, err)
	require.Equal(t, file.ID, again.ID)
	require.Equal(t, file.ArtifactID, again.ArtifactID)

	changed, err := NewFile(&pb.FileMetadata{
		ParentId:  "p",
		SrcPath:   "a.bin",
		Checksum:  "other",
		FileType:  pb.FileType_MODEL,
		CreatedAt: fm.CreatedAt,
		UpdatedAt: fm.UpdatedAt,
	}, "weights")
	require.NoError(t, err)
	require.NotEqual(t, file.ID, changed.ID)
}

func TestNewEventDefaultsWallclock(t *testing.T) {
	before := time.Now().UTC()
	event, err := NewEvent("p", &pb.Event{
		Name:   "started",
		Source: &pb.EventSource{Name: "worker"},
	})
	require.NoError(t, err)
	require.False(t, event.SourceWallClock.Before(before.Truncate(time.Second)))

	wire, err := event.ToProto()
	require.NoError(t, err)
	require.Equal(t, event.SourceWallClock.Unix(), wire.GetWallclockTime().GetSeconds())
}

func TestMetricSampleConversions(t *testing.T) {
	fval := NewMetricSample("p", "loss", &pb.MetricsValue{
		Step:          3,
		WallclockTime: 1700000000,
		Value:         &pb.MetricsValue_FVal{FVal: 0.5},
	})
	require.Nil(t, fval.Tensor)
	require.NotNil(t, fval.DoubleValue)
	wire := fval.ToProto()
	require.Equal(t, uint64(1700000000), wire.GetWallclockTime())
	require.InDelta(t, 0.5, wire.GetFVal(), 1e-6)

	tensor := NewMetricSample("p", "weights", &pb.MetricsValue{
		Value: &pb.MetricsValue_STensor{STensor: "[1,2]"},
	})
	require.Nil(t, tensor.DoubleValue)
	require.Equal(t, "[1,2]", tensor.ToProto().GetSTensor())
}

func TestMetadataRoundTrip(t *testing.T) {
	entries, err := NewMetadataEntries("p", map[string]string{"k1": "v1", "k2": "v2"})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	metadata, err := MetadataMap(entries)
	require.NoError(t, err)
	require.Equal(t, map[string]string{"k1": "v1", "k2": "v2"}, metadata)
}
