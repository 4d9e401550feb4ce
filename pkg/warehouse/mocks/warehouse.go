// Package mocks provides a testify mock of the warehouse interface.
package mocks

import (
	"context"

	"github.com/oneconcern/cloudops/pkg/warehouse"
	"github.com/stretchr/testify/mock"
)

var _ warehouse.Warehouse = &Warehouse{}

// Warehouse mocks a data warehouse
type Warehouse struct {
	mock.Mock
}

// NewWarehouse builds a mock billing jobs to project, with expectations asserted at the end of the test
func NewWarehouse(t interface {
	mock.TestingT
	Cleanup(func())
}, project string) *Warehouse {
	m := &Warehouse{}
	m.Mock.Test(t)
	m.On("Project").Return(project).Maybe()
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Warehouse) Project() string {
	args := m.Called()
	return args.String(0)
}

func (m *Warehouse) CreateDataset(ctx context.Context, ref warehouse.DatasetRef, location string) error {
	args := m.Called(ctx, ref, location)
	return args.Error(0)
}

func (m *Warehouse) GetTable(ctx context.Context, ref warehouse.TableRef) (warehouse.TableInfo, error) {
	args := m.Called(ctx, ref)
	return args.Get(0).(warehouse.TableInfo), args.Error(1)
}

func (m *Warehouse) RunQuery(ctx context.Context, sql string, dst warehouse.TableRef) error {
	args := m.Called(ctx, sql, dst)
	return args.Error(0)
}

func (m *Warehouse) Close() error {
	args := m.Called()
	return args.Error(0)
}
