package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/oneconcern/cloudops/pkg/core"
	"github.com/spf13/cobra"
)

var bigqueryQueryJob = &cobra.Command{
	Use:   "create-query-job",
	Short: "Create a BigQuery query job",
	Long: `Create a BigQuery query job writing the 10 most given names in the USA to a new table.

The dataset holding the table is created if it does not exist.
If the table exists already, nothing is done: run the command again with a new --` + tableNameFlag + ` argument.
`,
	Example: `% cloudops bigquery create-query-job -p my-project --dataset-name usa_names --table-name top10
Created dataset my-project.usa_names
Query results loaded to the table my-project.usa_names.top10

% cloudops bigquery create-query-job -p my-project --dataset-name usa_names --table-name top10
Dataset my-project.usa_names already exists.
Table my-project.usa_names.top10 already exists. Run script with a new --table-name argument.
`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		optionInputs := newCliOptionInputs(config, &cloudopsFlags)
		wh, err := optionInputs.warehouse(ctx)
		if err != nil {
			wrapFatalln("failed to connect to BigQuery", err)
			return
		}
		defer func() {
			_ = wh.Close()
		}()

		params := core.QueryTableParams{
			Project:   cloudopsFlags.bigquery.ProjectID,
			Dataset:   cloudopsFlags.bigquery.DatasetName,
			Location:  cloudopsFlags.bigquery.DatasetLocation,
			Table:     cloudopsFlags.bigquery.TableName,
			TableFlag: tableNameFlag,
		}
		if err = core.CreateQueryTable(ctx, wh, params, cmd.OutOrStdout()); err != nil {
			// failures have been reported on stdout already
			wrapFatalWithCodef(1, "%v", err)
			return
		}
	},
}

func init() {
	addProjectIDFlag(bigqueryQueryJob)
	addDatasetLocationFlag(bigqueryQueryJob)
	addTimeoutFlag(bigqueryQueryJob)
	requireFlags(bigqueryQueryJob,
		addDatasetNameFlag(bigqueryQueryJob),
		addTableNameFlag(bigqueryQueryJob),
	)

	bigqueryCmd.AddCommand(bigqueryQueryJob)
}
