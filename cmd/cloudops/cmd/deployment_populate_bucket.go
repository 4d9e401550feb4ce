package cmd

import (
	"github.com/oneconcern/cloudops/pkg/manifest"
	"github.com/spf13/cobra"
)

var deploymentPopulateBucket = &cobra.Command{
	Use:   manifest.PopulateBucket,
	Short: "Print the Deployment of the workers populating GCS buckets",
	Long: `Print the Deployment of the workers populating GCS buckets with randomly named objects.

The workers run the cpp-samples/populate-bucket image of the project, and consume work items from the populate-bucket subscription.
`,
	Example: `% cloudops deployment populate-bucket --project my-project --image-version v0.3.1 | kubectl apply -f -

% cloudops deployment populate-bucket --project my-project --output gs://my-bucket/deploy/populate-bucket.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		printDeployment(cmd, manifest.PopulateBucket, manifest.Values{
			Project:      cloudopsFlags.deployment.Project,
			ImageVersion: cloudopsFlags.deployment.ImageVersion,
			Namespace:    cloudopsFlags.deployment.Namespace,
		}.WithDefaults())
	},
}

func init() {
	addDeploymentFlags(deploymentPopulateBucket)
	addImageVersionFlag(deploymentPopulateBucket)
	addNamespaceFlag(deploymentPopulateBucket)
	deploymentCmd.AddCommand(deploymentPopulateBucket)
}
