// Copyright (C) 2025 Tensorland, Inc.
// See LICENSE for copying information.

package modelstore

import (
	"io"

	"github.com/zeebo/errs"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tensorland/modelbox/pkg/blobstore"
	"github.com/tensorland/modelbox/pkg/metadb"
	"github.com/tensorland/modelbox/pkg/pb"
)

// UploadFile stores a streamed file. The first frame must carry the file
// metadata; the file row is persisted with its upload path before any
// bytes are accepted, so an interrupted upload leaves a row that anchors
// the retry, and the remaining chunk frames are drained into a blob
// writer that publishes the object only on commit.
func (s *Server) UploadFile(stream pb.ModelStore_UploadFileServer) (err error) {
	ctx := stream.Context()
	defer mon.Task()(&ctx)(&err)

	first, err := stream.Recv()
	if errs.Is(err, io.EOF) {
		// Stream closed before the metadata frame.
		return status.Error(codes.InvalidArgument, "No metadata provided")
	}
	if err != nil {
		return status.Error(codes.Internal, err.Error())
	}
	meta := first.GetMetadata()
	if meta.GetMetadata() == nil {
		return status.Error(codes.InvalidArgument, "No metadata provided")
	}

	file, err := metadb.NewFile(meta.GetMetadata(), meta.GetArtifactName())
	if err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	file.UploadPath = blobstore.ArtifactPath(file.ParentID, file.ID)

	if err := s.repo.CreateFiles(ctx, []*metadb.File{file}); err != nil {
		return internalError(err)
	}

	writer, err := s.blobs.Open(ctx, file.UploadPath)
	if err != nil {
		return internalError(err)
	}

	for {
		frame, err := stream.Recv()
		if errs.Is(err, io.EOF) {
			break
		}
		if err != nil {
			s.log.Warn("upload stream interrupted",
				zap.String("file_id", file.ID), zap.Error(err))
			return internalError(errs.Combine(err, writer.Cancel(ctx)))
		}
		if _, err := writer.Write(frame.GetChunks()); err != nil {
			return internalError(errs.Combine(err, writer.Cancel(ctx)))
		}
	}

	if err := writer.Commit(ctx); err != nil {
		return internalError(err)
	}

	s.log.Debug("uploaded file",
		zap.String("file_id", file.ID),
		zap.String("upload_path", file.UploadPath))
	return stream.SendAndClose(&pb.UploadFileResponse{
		FileId:     file.ID,
		ArtifactId: file.ArtifactID,
	})
}
