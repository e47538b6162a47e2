// Copyright (C) 2025 Tensorland, Inc.
// See LICENSE for copying information.

package modelstore

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tensorland/modelbox/pkg/blobstore"
	"github.com/tensorland/modelbox/pkg/pb"
)

func timeUnix(sec int64) time.Time { return time.Unix(sec, 0).UTC() }

// uploadStream replays a fixed frame sequence into the handler.
type uploadStream struct {
	grpc.ServerStream
	frames []*pb.UploadFileRequest
	resp   *pb.UploadFileResponse
}

func (s *uploadStream) Context() context.Context { return context.Background() }

func (s *uploadStream) Recv() (*pb.UploadFileRequest, error) {
	if len(s.frames) == 0 {
		return nil, io.EOF
	}
	frame := s.frames[0]
	s.frames = s.frames[1:]
	return frame, nil
}

func (s *uploadStream) SendAndClose(resp *pb.UploadFileResponse) error {
	s.resp = resp
	return nil
}

func metadataFrame(parentID, srcPath, checksum, artifactName string) *pb.UploadFileRequest {
	return &pb.UploadFileRequest{
		StreamFrame: &pb.UploadFileRequest_Metadata{
			Metadata: &pb.UploadFileMetadata{
				Metadata: &pb.FileMetadata{
					ParentId: parentID,
					SrcPath:  srcPath,
					Checksum: checksum,
					FileType: pb.FileType_MODEL,
				},
				ArtifactName: artifactName,
				ObjectId:     parentID,
			},
		},
	}
}

func chunkFrame(data []byte) *pb.UploadFileRequest {
	return &pb.UploadFileRequest{
		StreamFrame: &pb.UploadFileRequest_Chunks{Chunks: data},
	}
}

func TestUploadFile(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	blobs, err := blobstore.NewFileSystem(t.TempDir())
	require.NoError(t, err)
	server := NewServer(zaptest.NewLogger(t), repo, blobs)

	stream := &uploadStream{frames: []*pb.UploadFileRequest{
		metadataFrame("p", "a.bin", "abc", "weights"),
		chunkFrame([]byte("AA")),
		chunkFrame([]byte("BB")),
		chunkFrame([]byte("CC")),
	}}
	require.NoError(t, server.UploadFile(stream))
	require.NotNil(t, stream.resp)
	require.NotEmpty(t, stream.resp.GetFileId())
	require.NotEmpty(t, stream.resp.GetArtifactId())

	file, ok := repo.files[stream.resp.GetFileId()]
	require.True(t, ok)
	require.Equal(t, "modelbox/artifacts/p/"+file.ID, file.UploadPath)

	reader, err := blobs.Reader(ctx, file.UploadPath)
	require.NoError(t, err)
	defer func() { require.NoError(t, reader.Close()) }()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.Equal(t, []byte("AABBCC"), data)

	list, err := server.ListArtifacts(ctx, &pb.ListArtifactsRequest{ObjectId: "p"})
	require.NoError(t, err)
	require.Len(t, list.GetArtifacts(), 1)
	require.Equal(t, "weights", list.GetArtifacts()[0].GetName())
	require.Len(t, list.GetArtifacts()[0].GetFiles(), 1)
}

func TestUploadFileRetryConverges(t *testing.T) {
	repo := newFakeRepo()
	blobs, err := blobstore.NewFileSystem(t.TempDir())
	require.NoError(t, err)
	server := NewServer(zaptest.NewLogger(t), repo, blobs)

	first := &uploadStream{frames: []*pb.UploadFileRequest{
		metadataFrame("p", "a.bin", "abc", "weights"),
		chunkFrame([]byte("AABBCC")),
	}}
	require.NoError(t, server.UploadFile(first))

	second := &uploadStream{frames: []*pb.UploadFileRequest{
		metadataFrame("p", "a.bin", "abc", "weights"),
		chunkFrame([]byte("AABBCC")),
	}}
	require.NoError(t, server.UploadFile(second))

	require.Equal(t, first.resp.GetFileId(), second.resp.GetFileId())
	require.Len(t, repo.files, 1)
}

func TestUploadFileWithoutMetadata(t *testing.T) {
	repo := newFakeRepo()
	blobs, err := blobstore.NewFileSystem(t.TempDir())
	require.NoError(t, err)
	server := NewServer(zaptest.NewLogger(t), repo, blobs)

	stream := &uploadStream{frames: []*pb.UploadFileRequest{
		chunkFrame([]byte("AA")),
	}}
	err = server.UploadFile(stream)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
	require.Equal(t, "No metadata provided", status.Convert(err).Message())
	require.Empty(t, repo.files)
}

func TestUploadFileEmptyStream(t *testing.T) {
	repo := newFakeRepo()
	blobs, err := blobstore.NewFileSystem(t.TempDir())
	require.NoError(t, err)
	server := NewServer(zaptest.NewLogger(t), repo, blobs)

	// The client closed the stream without sending a single frame.
	err = server.UploadFile(&uploadStream{})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
	require.Equal(t, "No metadata provided", status.Convert(err).Message())
	require.Empty(t, repo.files)
}
