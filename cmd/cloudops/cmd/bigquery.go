package cmd

import "github.com/spf13/cobra"

// bigqueryCmd represents the BigQuery related commands
var bigqueryCmd = &cobra.Command{
	Use:     "bigquery",
	Aliases: []string{"bq"},
	Short:   "Commands to manage BigQuery datasets and tables",
	Long: `Commands to manage BigQuery datasets and tables.

Datasets and tables are containers in the data warehouse organizing structured data.
`,
}

func init() {
	rootCmd.AddCommand(bigqueryCmd)
}
