package core

import (
	"bytes"
	"context"
	stderr "errors"
	"testing"
	"time"

	"github.com/oneconcern/cloudops/pkg/core/status"
	"github.com/oneconcern/cloudops/pkg/warehouse"
	"github.com/oneconcern/cloudops/pkg/warehouse/mocks"
	whstatus "github.com/oneconcern/cloudops/pkg/warehouse/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

const testProject = "my-project"

var (
	testDataset = warehouse.DatasetRef{Project: testProject, Dataset: "names"}
	testTable   = testDataset.Table("top10")
)

func testQueryParams() QueryTableParams {
	return QueryTableParams{
		Project:   testProject,
		Dataset:   "names",
		Table:     "top10",
		TableFlag: "table-name",
	}
}

func alreadyExists(what string) error {
	return whstatus.ErrExists.Wrap(&googleapi.Error{
		Code:    409,
		Message: "Already Exists: " + what,
		Errors:  []googleapi.ErrorItem{{Reason: "duplicate"}},
	})
}

func notFound(what string) error {
	return whstatus.ErrNotFound.Wrap(&googleapi.Error{Code: 404, Message: "Not found: " + what})
}

func TestCreateQueryTable(t *testing.T) {
	ctx := context.Background()

	t.Run("creates dataset and runs a single query job", func(t *testing.T) {
		wh := mocks.NewWarehouse(t, testProject)
		wh.On("CreateDataset", mock.Anything, testDataset, "US").Return(nil).Once()
		wh.On("GetTable", mock.Anything, testTable).Return(warehouse.TableInfo{}, notFound("Table my-project:names.top10")).Once()
		wh.On("RunQuery", mock.Anything, TopNamesQuery, testTable).Return(nil).Once()

		var out bytes.Buffer
		require.NoError(t, CreateQueryTable(ctx, wh, testQueryParams(), &out))
		assert.Equal(t,
			"Created dataset my-project.names\n"+
				"Query results loaded to the table my-project.names.top10\n",
			out.String())
		wh.AssertNumberOfCalls(t, "RunQuery", 1)
	})

	t.Run("skips existing dataset", func(t *testing.T) {
		wh := mocks.NewWarehouse(t, testProject)
		params := testQueryParams()
		params.Location = "EU"
		wh.On("CreateDataset", mock.Anything, testDataset, "EU").Return(alreadyExists("Dataset my-project:names")).Once()
		wh.On("GetTable", mock.Anything, testTable).Return(warehouse.TableInfo{}, notFound("Table my-project:names.top10")).Once()
		wh.On("RunQuery", mock.Anything, TopNamesQuery, testTable).Return(nil).Once()

		var out bytes.Buffer
		require.NoError(t, CreateQueryTable(ctx, wh, params, &out))
		assert.Equal(t,
			"Dataset my-project.names already exists.\n"+
				"Query results loaded to the table my-project.names.top10\n",
			out.String())
	})

	t.Run("does not run any query when the table exists", func(t *testing.T) {
		wh := mocks.NewWarehouse(t, testProject)
		wh.On("CreateDataset", mock.Anything, testDataset, "US").Return(alreadyExists("Dataset my-project:names")).Once()
		wh.On("GetTable", mock.Anything, testTable).Return(warehouse.TableInfo{
			Ref:          testTable,
			Location:     "US",
			NumRows:      10,
			CreationTime: time.Now(),
		}, nil).Once()

		var out bytes.Buffer
		require.NoError(t, CreateQueryTable(ctx, wh, testQueryParams(), &out))
		assert.Equal(t,
			"Dataset my-project.names already exists.\n"+
				"Table my-project.names.top10 already exists. Run script with a new --table-name argument.\n",
			out.String())
		wh.AssertNotCalled(t, "RunQuery", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("stops when the dataset cannot be created", func(t *testing.T) {
		wh := mocks.NewWarehouse(t, testProject)
		cause := whstatus.ErrForbidden.Wrap(&googleapi.Error{Code: 403, Message: "Access Denied: Project my-project"})
		wh.On("CreateDataset", mock.Anything, testDataset, "US").Return(cause).Once()

		var out bytes.Buffer
		err := CreateQueryTable(ctx, wh, testQueryParams(), &out)
		require.Error(t, err)
		assert.ErrorIs(t, err, status.ErrCreateDataset)
		assert.ErrorIs(t, err, whstatus.ErrForbidden)
		assert.Equal(t,
			"Unable to create dataset. Error with code 403 and message Access Denied: Project my-project\n",
			out.String())
		wh.AssertNotCalled(t, "GetTable", mock.Anything, mock.Anything)
	})

	t.Run("stops on a conflict other than existence", func(t *testing.T) {
		wh := mocks.NewWarehouse(t, testProject)
		cause := whstatus.ErrConflict.Wrap(&googleapi.Error{Code: 409, Message: "Dataset is being deleted"})
		wh.On("CreateDataset", mock.Anything, testDataset, "US").Return(cause).Once()

		var out bytes.Buffer
		err := CreateQueryTable(ctx, wh, testQueryParams(), &out)
		assert.ErrorIs(t, err, status.ErrCreateDataset)
		assert.Equal(t,
			"Unable to create dataset. Error with code 409 and message Dataset is being deleted\n",
			out.String())
	})

	t.Run("stops when the table cannot be verified", func(t *testing.T) {
		wh := mocks.NewWarehouse(t, testProject)
		wh.On("CreateDataset", mock.Anything, testDataset, "US").Return(nil).Once()
		wh.On("GetTable", mock.Anything, testTable).Return(warehouse.TableInfo{}, stderr.New("context deadline exceeded")).Once()

		var out bytes.Buffer
		err := CreateQueryTable(ctx, wh, testQueryParams(), &out)
		assert.ErrorIs(t, err, status.ErrVerifyTable)
		assert.Equal(t,
			"Created dataset my-project.names\n"+
				"Unable to verify if table exists. Error with code 0 and message context deadline exceeded\n",
			out.String())
		wh.AssertNotCalled(t, "RunQuery", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("reports query job failures", func(t *testing.T) {
		wh := mocks.NewWarehouse(t, testProject)
		wh.On("CreateDataset", mock.Anything, testDataset, "US").Return(nil).Once()
		wh.On("GetTable", mock.Anything, testTable).Return(warehouse.TableInfo{}, notFound("Table my-project:names.top10")).Once()
		cause := whstatus.ErrInvalid.Wrap(&googleapi.Error{Code: 400, Message: "Syntax error"})
		wh.On("RunQuery", mock.Anything, "SELECT 1", testTable).Return(cause).Once()

		params := testQueryParams()
		params.Query = "SELECT 1"
		var out bytes.Buffer
		err := CreateQueryTable(ctx, wh, params, &out)
		assert.ErrorIs(t, err, status.ErrQueryJob)
		assert.ErrorIs(t, err, whstatus.ErrInvalid)
		assert.Equal(t,
			"Created dataset my-project.names\n"+
				"Unable to run query job. Error with code 400 and message Syntax error\n",
			out.String())
	})

	t.Run("requires project, dataset and table", func(t *testing.T) {
		for _, mutate := range []func(*QueryTableParams){
			func(p *QueryTableParams) { p.Project = "" },
			func(p *QueryTableParams) { p.Dataset = "" },
			func(p *QueryTableParams) { p.Table = "" },
		} {
			wh := mocks.NewWarehouse(t, testProject)
			params := testQueryParams()
			mutate(&params)

			var out bytes.Buffer
			err := CreateQueryTable(ctx, wh, params, &out)
			assert.ErrorIs(t, err, status.ErrMissingParam)
			assert.Empty(t, out.String())
		}
	})
}
