// Copyright © 2018 One Concern

// Package gcs implements the storage interface on top of a Google Cloud Storage bucket.
package gcs

import (
	"context"
	"io"

	gcsStorage "cloud.google.com/go/storage"
	"github.com/oneconcern/cloudops/pkg/storage"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

type gcs struct {
	client *gcsStorage.Client
	bucket string
	l      *zap.Logger
}

// New builds a store for a GCS bucket.
//
// When credentialFile is empty, application default credentials are used.
func New(ctx context.Context, bucket, credentialFile string, opts ...Option) (storage.Store, error) {
	googleStore := &gcs{
		bucket: bucket,
		l:      zap.NewNop(),
	}
	for _, apply := range opts {
		apply(googleStore)
	}
	googleStore.l = googleStore.l.With(zap.String("store", googleStore.String()))

	var err error
	googleStore.client, err = gcsStorage.NewClient(ctx, clientOptions(credentialFile, gcsStorage.ScopeReadWrite)...)
	if err != nil {
		return nil, toSentinelErrors(err)
	}
	return googleStore, nil
}

func clientOptions(credentialFile, scope string) []option.ClientOption {
	opts := []option.ClientOption{option.WithScopes(scope)}
	if credentialFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialFile))
	}
	return opts
}

func (g *gcs) String() string {
	return storage.GCSScheme + g.bucket
}

func (g *gcs) Put(ctx context.Context, objectName string, reader io.Reader, doesNotExist bool) error {
	g.l.Debug("put object", zap.String("object", objectName), zap.Bool("no-overwrite", doesNotExist))
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	object := g.client.Bucket(g.bucket).Object(objectName)
	if doesNotExist {
		object = object.If(gcsStorage.Conditions{DoesNotExist: true})
	}
	writer := object.NewWriter(ctx)
	if _, err := io.Copy(writer, reader); err != nil {
		// cancelling the context aborts the upload
		cancel()
		_ = writer.Close()
		return toSentinelErrors(err)
	}
	return toSentinelErrors(writer.Close())
}
