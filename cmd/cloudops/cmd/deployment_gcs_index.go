package cmd

import (
	"github.com/oneconcern/cloudops/pkg/manifest"
	"github.com/spf13/cobra"
)

var deploymentGCSIndex = &cobra.Command{
	Use:   manifest.GCSIndex,
	Short: "Print the Deployment of the workers indexing GCS buckets",
	Long: `Print the Deployment of the workers indexing GCS buckets into Spanner.

The workers run the getting-started-cpp/gke image of the project, and consume work items from the gke-gcs-indexing subscription.
`,
	Example: `% cloudops deployment gcs-index --project my-project | kubectl apply -f -`,
	Run: func(cmd *cobra.Command, args []string) {
		printDeployment(cmd, manifest.GCSIndex, manifest.Values{
			Project: cloudopsFlags.deployment.Project,
		})
	},
}

func init() {
	addDeploymentFlags(deploymentGCSIndex)
	deploymentCmd.AddCommand(deploymentGCSIndex)
}
