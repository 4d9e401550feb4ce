// Copyright © 2018 One Concern

package core

import (
	"context"
	"fmt"
	"io"

	"github.com/oneconcern/cloudops/pkg/core/status"
	"github.com/oneconcern/cloudops/pkg/errors"
	"github.com/oneconcern/cloudops/pkg/warehouse"
	whstatus "github.com/oneconcern/cloudops/pkg/warehouse/status"
)

// TopNamesQuery ranks the 10 most given first names in the USA between 1910 and 2013
const TopNamesQuery = `
    SELECT
        name,
        SUM(number) AS total
        FROM
        ` + "`bigquery-public-data.usa_names.usa_1910_2013`" + `
        GROUP BY
        name
        ORDER BY
        total DESC
        LIMIT
        10;
    `

// QueryTableParams describes the table to be populated by a query
type QueryTableParams struct {
	Project  string
	Dataset  string
	Location string
	Table    string

	// Query defaults to TopNamesQuery
	Query string

	// TableFlag is the name of the flag which sets the table, and is hinted at when the table exists already
	TableFlag string
}

func (p QueryTableParams) validate() error {
	for _, required := range []struct {
		name, value string
	}{
		{"project", p.Project},
		{"dataset", p.Dataset},
		{"table", p.Table},
	} {
		if required.value == "" {
			return status.ErrMissingParam.Wrap(fmt.Errorf("%s must be specified", required.name))
		}
	}
	return nil
}

// CreateQueryTable materializes the results of a query into a new table.
//
// The dataset holding the table is created if it does not exist. If the table
// exists already, no query is run. Progress and failures are reported as
// human-readable lines on out.
func CreateQueryTable(ctx context.Context, wh warehouse.Warehouse, params QueryTableParams, out io.Writer) error {
	if err := params.validate(); err != nil {
		return err
	}
	if params.Location == "" {
		params.Location = warehouse.DefaultLocation
	}
	if params.Query == "" {
		params.Query = TopNamesQuery
	}
	if params.TableFlag == "" {
		params.TableFlag = "table"
	}

	dataset := warehouse.DatasetRef{Project: params.Project, Dataset: params.Dataset}
	err := wh.CreateDataset(ctx, dataset, params.Location)
	switch {
	case err == nil:
		fmt.Fprintf(out, "Created dataset %s.%s\n", wh.Project(), dataset.Dataset)
	case errors.Is(err, whstatus.ErrExists):
		fmt.Fprintf(out, "Dataset %s already exists.\n", dataset)
	default:
		code, msg := whstatus.Describe(err)
		fmt.Fprintf(out, "Unable to create dataset. Error with code %d and message %s\n", code, msg)
		return status.ErrCreateDataset.Wrap(err)
	}

	table := dataset.Table(params.Table)
	_, err = wh.GetTable(ctx, table)
	switch {
	case err == nil:
		fmt.Fprintf(out, "Table %s already exists. Run script with a new --%s argument.\n", table, params.TableFlag)
		return nil
	case errors.Is(err, whstatus.ErrNotFound):
	default:
		code, msg := whstatus.Describe(err)
		fmt.Fprintf(out, "Unable to verify if table exists. Error with code %d and message %s\n", code, msg)
		return status.ErrVerifyTable.Wrap(err)
	}

	if err = wh.RunQuery(ctx, params.Query, table); err != nil {
		code, msg := whstatus.Describe(err)
		fmt.Fprintf(out, "Unable to run query job. Error with code %d and message %s\n", code, msg)
		return status.ErrQueryJob.Wrap(err)
	}

	fmt.Fprintf(out, "Query results loaded to the table %s\n", table)
	return nil
}
