// Copyright (C) 2025 Tensorland, Inc.
// See LICENSE for copying information.

package modelstore

import (
	"context"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/tensorland/modelbox/pkg/blobstore"
	"github.com/tensorland/modelbox/pkg/config"
	"github.com/tensorland/modelbox/pkg/metadb"
	"github.com/tensorland/modelbox/pkg/pb"
)

// Agent wires the configured stores into a serving gRPC endpoint and
// owns its lifecycle.
type Agent struct {
	log    *zap.Logger
	config *config.ServerConfig
}

// NewAgent constructs an agent for the given configuration.
func NewAgent(log *zap.Logger, config *config.ServerConfig) *Agent {
	return &Agent{log: log, config: config}
}

// newBlobStore constructs the blob backend selected by the config.
func newBlobStore(ctx context.Context, conf config.ObjectStoreConfig) (blobstore.Store, error) {
	switch conf.Provider {
	case config.ProviderS3:
		return blobstore.NewS3("", conf.Bucket)
	case config.ProviderGcs:
		return blobstore.NewGCS(ctx, conf.Bucket)
	case config.ProviderFileSystem:
		return blobstore.NewFileSystem(conf.Bucket)
	default:
		return nil, Error.New("unknown object store provider %q", conf.Provider)
	}
}

// Run serves the ModelStore service until ctx is cancelled, then stops
// gracefully.
func (a *Agent) Run(ctx context.Context) (err error) {
	defer mon.Task()(&ctx)(&err)

	blobs, err := newBlobStore(ctx, a.config.ObjectStore)
	if err != nil {
		return err
	}

	db, err := metadb.Open(ctx, a.config.DatabaseURL())
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			a.log.Warn("closing database", zap.Error(closeErr))
		}
	}()

	server := NewServer(a.log, metadb.NewRepository(a.log, db), blobs)

	listener, err := net.Listen("tcp", a.config.ListenAddr)
	if err != nil {
		return Error.Wrap(err)
	}

	grpcServer := grpc.NewServer()
	pb.RegisterModelStoreServer(grpcServer, server)
	reflection.Register(grpcServer)

	go func() {
		<-ctx.Done()
		a.log.Info("shutting down")
		grpcServer.GracefulStop()
	}()

	a.log.Info("modelbox server started",
		zap.String("addr", a.config.ListenAddr),
		zap.String("object_store", string(a.config.ObjectStore.Provider)))
	return Error.Wrap(grpcServer.Serve(listener))
}
