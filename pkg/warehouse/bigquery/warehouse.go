// Copyright © 2018 One Concern

// Package bigquery implements the warehouse interface on top of Google BigQuery.
package bigquery

import (
	"context"
	"fmt"
	"time"

	bigqueryAPI "cloud.google.com/go/bigquery"
	"github.com/oneconcern/cloudops/pkg/warehouse"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// DefaultTimeout applies to dataset and table API calls
const DefaultTimeout = 30 * time.Second

type bq struct {
	client     *bigqueryAPI.Client
	project    string
	credFile   string
	clientOpts []option.ClientOption
	timeout    time.Duration
	l          *zap.Logger
}

// New builds a BigQuery warehouse, billing jobs to the given project
func New(ctx context.Context, project string, opts ...Option) (warehouse.Warehouse, error) {
	if project == "" {
		return nil, fmt.Errorf("a project is required to connect to BigQuery")
	}
	b := &bq{
		project: project,
		timeout: DefaultTimeout,
		l:       zap.NewNop(),
	}
	for _, apply := range opts {
		apply(b)
	}

	var clientOpts []option.ClientOption
	if b.credFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(b.credFile))
	}
	clientOpts = append(clientOpts, b.clientOpts...)
	client, err := bigqueryAPI.NewClient(ctx, project, clientOpts...)
	if err != nil {
		return nil, toSentinelErrors(err)
	}
	b.client = client
	b.l = b.l.With(zap.String("warehouse", b.String()))
	return b, nil
}

func (b *bq) String() string {
	return "bigquery://" + b.project
}

func (b *bq) Project() string {
	return b.project
}

func (b *bq) dataset(ref warehouse.DatasetRef) *bigqueryAPI.Dataset {
	return b.client.DatasetInProject(ref.Project, ref.Dataset)
}

func (b *bq) table(ref warehouse.TableRef) *bigqueryAPI.Table {
	return b.dataset(ref.DatasetRef).Table(ref.Table)
}

func (b *bq) CreateDataset(ctx context.Context, ref warehouse.DatasetRef, location string) error {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	if location == "" {
		location = warehouse.DefaultLocation
	}
	b.l.Debug("create dataset", zap.Stringer("dataset", ref), zap.String("location", location))
	err := b.dataset(ref).Create(ctx, &bigqueryAPI.DatasetMetadata{Location: location})
	if err != nil {
		b.l.Debug("create dataset failed", zap.Stringer("dataset", ref), zap.Error(err))
		return toSentinelErrors(err)
	}
	return nil
}

func (b *bq) GetTable(ctx context.Context, ref warehouse.TableRef) (warehouse.TableInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	b.l.Debug("get table", zap.Stringer("table", ref))
	md, err := b.table(ref).Metadata(ctx)
	if err != nil {
		return warehouse.TableInfo{}, toSentinelErrors(err)
	}
	return warehouse.TableInfo{
		Ref:          ref,
		Location:     md.Location,
		NumRows:      md.NumRows,
		CreationTime: md.CreationTime,
	}, nil
}

func (b *bq) RunQuery(ctx context.Context, sql string, dst warehouse.TableRef) error {
	q := b.client.Query(sql)
	q.QueryConfig.Dst = b.table(dst)

	job, err := q.Run(ctx)
	if err != nil {
		return toSentinelErrors(err)
	}
	b.l.Info("query job submitted", zap.String("job", job.ID()), zap.Stringer("destination", dst))

	jobStatus, err := job.Wait(ctx)
	if err != nil {
		return toSentinelErrors(err)
	}
	if err = jobStatus.Err(); err != nil {
		return toSentinelErrors(err)
	}
	b.l.Info("query job done", zap.String("job", job.ID()))
	return nil
}

func (b *bq) Close() error {
	return b.client.Close()
}
