// Copyright © 2018 One Concern

// Package warehouse provides an interface to a cloud data warehouse,
// limited to the few dataset, table and query operations our tools need.
//
// The only backend is Google BigQuery (see package bigquery).
package warehouse

import (
	"context"
	"time"
)

// DefaultLocation is the location of datasets created when none is specified
const DefaultLocation = "US"

// Warehouse knows how to manage datasets and tables, and to run queries
// which results are materialized into a table.
type Warehouse interface {
	// Project is the project billed for jobs and owning created resources
	Project() string

	// CreateDataset creates a new dataset at some location.
	//
	// It returns status.ErrExists when the dataset exists already.
	CreateDataset(context.Context, DatasetRef, string) error

	// GetTable retrieves the metadata of a table.
	//
	// It returns status.ErrNotFound when the table does not exist.
	GetTable(context.Context, TableRef) (TableInfo, error)

	// RunQuery submits a single query job, writing its results to the
	// destination table, then waits for the job to complete.
	RunQuery(context.Context, string, TableRef) error

	Close() error
}

// DatasetRef identifies a dataset
type DatasetRef struct {
	Project string
	Dataset string
}

func (d DatasetRef) String() string {
	return d.Project + "." + d.Dataset
}

// Table returns a reference to a table in this dataset
func (d DatasetRef) Table(name string) TableRef {
	return TableRef{DatasetRef: d, Table: name}
}

// TableRef identifies a table
type TableRef struct {
	DatasetRef
	Table string
}

func (t TableRef) String() string {
	return t.DatasetRef.String() + "." + t.Table
}

// TableInfo describes an existing table
type TableInfo struct {
	Ref          TableRef
	Location     string
	NumRows      uint64
	CreationTime time.Time
}
